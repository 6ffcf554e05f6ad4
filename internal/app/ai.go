package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/aireport"
	"github.com/huvdesign/brandcheck/internal/config"
	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/llm"
	"github.com/huvdesign/brandcheck/internal/logger"
	"github.com/huvdesign/brandcheck/internal/output"
)

var (
	aiScores  string
	aiPhase   string
	aiMemo    string
	aiCompany string
	aiSave    bool
	aiStored  bool
)

var aiCmd = &cobra.Command{
	Use:   "ai [id]",
	Short: "Generate an alternative report with a remote model",
	Long: `Ask the configured model (ai.provider) for an expert report. The rating
is always the deterministic one; the prose comes from the model.

With an id the stored submission is used and --save keeps the result;
--stored prints the previously saved AI report without calling the model.
Without an id, pass the answers with --scores.

API keys are read from ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAI,
}

func init() {
	f := aiCmd.Flags()
	f.StringVar(&aiScores, "scores", "", "Twelve comma-separated answers (when no id is given)")
	f.StringVar(&aiPhase, "phase", "", "Business phase (when no id is given)")
	f.StringVar(&aiMemo, "memo", "", "Memo (when no id is given)")
	f.StringVar(&aiCompany, "company", "", "Company name (when no id is given)")
	f.BoolVar(&aiSave, "save", false, "Store the generated report with the submission")
	f.BoolVar(&aiStored, "stored", false, "Show the stored AI report instead of generating one")
	rootCmd.AddCommand(aiCmd)
}

func runAI(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if aiSave || aiStored {
			return fmt.Errorf("--save and --stored need a submission id")
		}
		return runAIForScores(cmd)
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

	id := args[0]
	sub, err := svc.Get(id)
	if err != nil {
		return err
	}

	if aiStored {
		r, err := svc.AIReport(id)
		if err != nil {
			return err
		}
		return printAIReport(cmd, r, &sub.Scores, sub.CompanyName, sub.AIModel)
	}

	res, err := generateAI(cmd, cfg.AI, log, aireport.Input{
		Company: sub.CompanyName,
		Scores:  sub.Scores.Values(),
		Phase:   sub.BusinessPhase,
		Memo:    sub.Memo,
	})
	if err != nil {
		return err
	}
	if aiSave {
		if err := svc.SaveAIReport(id, res.Report, res.Model); err != nil {
			return err
		}
		log.Infof("saved AI report for %s", id)
	}
	return printAIReport(cmd, res.Report, &sub.Scores, sub.CompanyName, res.Model)
}

func runAIForScores(cmd *cobra.Command) error {
	values, err := parseScores(aiScores)
	if err != nil {
		return err
	}
	scores, err := diagnosis.NewScoreSet(values)
	if err != nil {
		return err
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := generateAI(cmd, cfg.AI, log, aireport.Input{
		Company: aiCompany,
		Scores:  values,
		Phase:   aiPhase,
		Memo:    aiMemo,
	})
	if err != nil {
		return err
	}
	return printAIReport(cmd, res.Report, &scores, aiCompany, res.Model)
}

func generateAI(cmd *cobra.Command, cfg config.AI, log *logger.Logger, in aireport.Input) (*aireport.Result, error) {
	provider, err := llm.NewProvider(cmd.Context(), cfg, log)
	if err != nil {
		return nil, err
	}
	log.Infof("generating AI report with %s", provider.ModelID())
	res, err := aireport.NewGenerator(provider, cfg.MaxTokens, cfg.Temperature).Generate(cmd.Context(), in)
	if err != nil {
		return nil, err
	}
	log.Debugf("AI report used %d input and %d output tokens", res.Usage.InputTokens, res.Usage.OutputTokens)
	return res, nil
}

func printAIReport(cmd *cobra.Command, r *diagnosis.Report, scores *diagnosis.ScoreSet, company, model string) error {
	w := cmd.OutOrStdout()
	if flagJSON {
		return output.WriteJSON(w, r)
	}
	title := "AI report"
	if company != "" {
		title += " · " + company
	}
	fmt.Fprint(w, output.RenderReport(output.ReportView{
		Title:  title,
		Source: model,
		Scores: scores,
		Report: r,
	}))
	return nil
}
