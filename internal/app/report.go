package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/output"
)

var (
	reportEditOut  string
	reportSaveFile string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show, edit and reset the report of a stored submission",
	Long: `Every stored submission has a report. By default it is recomputed from
the stored answers; a hand-edited report, once saved, is shown instead until
it is reset.

Editing workflow:
  brandcheck report edit <id> --out report.yaml
  $EDITOR report.yaml
  brandcheck report save <id> --file report.yaml`,
}

var reportShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the current report of a submission",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportShow,
}

var reportEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Write the current report as an editable YAML document",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportEdit,
}

var reportSaveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Store an edited report from a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportSave,
}

var reportResetCmd = &cobra.Command{
	Use:   "reset <id>",
	Short: "Drop the edited report so the computed one is shown again",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportReset,
}

func init() {
	reportEditCmd.Flags().StringVarP(&reportEditOut, "out", "o", "", "Output file (stdout if not specified)")
	reportSaveCmd.Flags().StringVarP(&reportSaveFile, "file", "f", "", "Edited report file (.yaml, .yml or .json)")
	_ = reportSaveCmd.MarkFlagRequired("file")

	reportCmd.AddCommand(reportShowCmd, reportEditCmd, reportSaveCmd, reportResetCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportShow(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	res, err := svc.Report(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return output.WriteJSON(w, res.Report)
	}
	sub := res.Submission
	fmt.Fprint(w, output.RenderReport(output.ReportView{
		Title:  fmt.Sprintf("%s · %s", sub.CompanyName, diagnosis.ParsePhase(sub.BusinessPhase).Label()),
		Source: string(res.Source),
		Scores: &sub.Scores,
		Report: res.Report,
	}))
	return nil
}

func runReportEdit(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	res, err := svc.Report(args[0])
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(res.Report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	header := fmt.Sprintf("# Report for %s (%s)\n# overallRating: excellent | good | needs_improvement | urgent\n",
		res.Submission.CompanyName, res.Source)
	data = append([]byte(header), data...)

	if reportEditOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(reportEditOut, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", reportEditOut, err)
	}
	log.Infof("wrote %s; save it back with 'brandcheck report save %s --file %s'", reportEditOut, args[0], reportEditOut)
	return nil
}

// readReportFile decodes an edited report by file extension.
func readReportFile(path string) (*diagnosis.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r diagnosis.Report
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &r)
	default:
		err = yaml.Unmarshal(data, &r)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &r, nil
}

func runReportSave(cmd *cobra.Command, args []string) error {
	r, err := readReportFile(reportSaveFile)
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

	if err := svc.SaveEditedReport(args[0], r); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), " %s Edited report saved for %s\n", output.StyleSuccess.Render("✓"), args[0])
	return nil
}

func runReportReset(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := svc.ResetReport(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), " %s Report reset to the computed diagnosis for %s\n", output.StyleSuccess.Render("✓"), args[0])
	return nil
}
