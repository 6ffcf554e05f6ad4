package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/export"
	"github.com/huvdesign/brandcheck/internal/survey"
)

var (
	exportFilter survey.ListFilter
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored submissions to CSV or JSON",
	Long: `Export stored submissions for spreadsheets or external analysis.
CSV output starts with a UTF-8 byte order mark so spreadsheet applications
read non-ASCII company names and memos correctly.

Examples:
  brandcheck export --out submissions.csv
  brandcheck export --phase growth --format json`,
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd, &exportFilter)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv|json)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (stdout if not specified)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	subs, err := svc.List(exportFilter)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := export.Write(w, format, subs); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	if exportOut != "" {
		log.Infof("exported %d submission(s) to %s", len(subs), exportOut)
	}
	return nil
}
