package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/output"
)

var (
	analyzeScores string
	analyzePhase  string
	analyzeMemo   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Diagnose a set of answers without storing them",
	Long: `Run the brand diagnosis on twelve answers given in question order.

Example:
  brandcheck analyze --scores 4,3,3,4,2,3,3,2,1,2,1,5 --phase growth \
    --memo "Awareness is our biggest challenge; we want to expand overseas."`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeScores, "scores", "", "Twelve comma-separated answers, each 1-5")
	analyzeCmd.Flags().StringVar(&analyzePhase, "phase", "", "Business phase: ideation, launch, growth or review")
	analyzeCmd.Flags().StringVar(&analyzeMemo, "memo", "", "Free-text challenges and vision")
	_ = analyzeCmd.MarkFlagRequired("scores")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	scores, err := parseScores(analyzeScores)
	if err != nil {
		return err
	}
	set, err := diagnosis.NewScoreSet(scores)
	if err != nil {
		return err
	}
	report, err := diagnosis.Analyze(scores, analyzePhase, analyzeMemo)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return output.WriteJSON(w, report)
	}
	fmt.Fprint(w, output.RenderReport(output.ReportView{
		Title:  "Brand check · " + diagnosis.ParsePhase(analyzePhase).Label(),
		Scores: &set,
		Report: report,
	}))
	return nil
}
