package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored submission and its reports",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := svc.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), " %s Deleted %s\n", output.StyleSuccess.Render("✓"), args[0])
	return nil
}
