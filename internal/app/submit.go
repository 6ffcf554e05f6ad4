package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/output"
	"github.com/huvdesign/brandcheck/internal/survey"
)

var (
	submitCompany    string
	submitRespondent string
	submitEmail      string
	submitIndustry   string
	submitRevenue    string
	submitPhase      string
	submitMemo       string
	submitScores     string
	submitAnswers    []string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Store a questionnaire response and notify the operator",
	Long: `Store a questionnaire response. Answers are given either as twelve
comma-separated scores or as individual --answer qN=score flags; questions
left unanswered with --answer default to 1.

Example:
  brandcheck submit --company Acme --respondent "Aoi Tanaka" \
    --email aoi@example.com --phase growth --answer q1=4 --answer q2=3 ...`,
	RunE: runSubmit,
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitCompany, "company", "", "Company name (required)")
	f.StringVar(&submitRespondent, "respondent", "", "Respondent name (required)")
	f.StringVar(&submitEmail, "email", "", "Respondent email; enables the respondent notice")
	f.StringVar(&submitIndustry, "industry", "", "Industry")
	f.StringVar(&submitRevenue, "revenue", "", "Revenue scale")
	f.StringVar(&submitPhase, "phase", "", "Business phase: ideation, launch, growth or review")
	f.StringVar(&submitMemo, "memo", "", "Free-text challenges and vision")
	f.StringVar(&submitScores, "scores", "", "Twelve comma-separated answers, each 1-5")
	f.StringArrayVar(&submitAnswers, "answer", nil, "Single answer as qN=score (repeatable)")
	submitCmd.MarkFlagsMutuallyExclusive("scores", "answer")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	var scores []int
	switch {
	case submitScores != "":
		var err error
		if scores, err = parseScores(submitScores); err != nil {
			return err
		}
	case len(submitAnswers) > 0:
		answers, err := parseAnswers(submitAnswers)
		if err != nil {
			return err
		}
		scores = survey.ScoresFromAnswers(answers)
	default:
		return fmt.Errorf("either --scores or --answer is required")
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

	sub, err := svc.Submit(cmd.Context(), survey.NewSubmission{
		CompanyName:     submitCompany,
		RespondentName:  submitRespondent,
		RespondentEmail: submitEmail,
		Industry:        submitIndustry,
		RevenueScale:    submitRevenue,
		BusinessPhase:   submitPhase,
		Memo:            submitMemo,
		Scores:          scores,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return output.WriteJSON(w, map[string]any{
			"id":      sub.ID,
			"average": diagnosis.FormatScore(sub.AvgScore),
			"rating":  diagnosis.ClassifyRating(sub.AvgScore),
		})
	}
	fmt.Fprintf(w, " %s %s\n", output.StyleSuccess.Render("✓"), "Submission stored")
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("ID"), sub.ID)
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Average"), output.ScoreBar(sub.AvgScore, 20))
	fmt.Fprintf(w, "\n Run 'brandcheck report show %s' to see the diagnosis.\n", sub.ID)
	return nil
}
