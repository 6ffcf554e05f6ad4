package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/output"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the twelve questionnaire items",
	RunE:  runQuestions,
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) error {
	qs := diagnosis.Questions()
	w := cmd.OutOrStdout()
	if flagJSON {
		return output.WriteJSON(w, qs)
	}

	fmt.Fprintln(w, output.Section("Questions"))
	fmt.Fprintln(w)
	t := output.NewTable("#", "Item", "Category", "Statement").MaxCellWidth(60)
	for _, q := range qs {
		t.AddRow(fmt.Sprintf("Q%d", q.ID), q.Label, q.Category.String(), q.Statement)
	}
	t.Print(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleMuted.Render(" Answer each statement from 1 (not at all) to 5 (fully)."))
	return nil
}
