package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

// Summary is what notices say about a submission.
type Summary struct {
	SubmissionID string
	Company      string
	Respondent   string
	Email        string
	Industry     string
	RevenueScale string
	Phase        string
	AvgScore     float64
	Scores       diagnosis.ScoreSet
	CreatedAt    time.Time
}

const notRecorded = "not provided"

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return notRecorded
	}
	return s
}

// ResultLink joins the result base URL and the submission id. It returns an
// empty string when no base URL is configured.
func ResultLink(baseURL, id string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + id
}

// OperatorNotice builds the notice telling the operator about a new
// submission.
func OperatorNotice(s Summary, to, resultURL string) Notice {
	var b strings.Builder
	b.WriteString("## New brand check submission\n\n")
	fmt.Fprintf(&b, "- **Company:** %s\n", s.Company)
	fmt.Fprintf(&b, "- **Respondent:** %s\n", s.Respondent)
	fmt.Fprintf(&b, "- **Email:** %s\n", orDefault(s.Email))
	fmt.Fprintf(&b, "- **Industry:** %s\n", orDefault(s.Industry))
	fmt.Fprintf(&b, "- **Annual revenue:** %s\n", orDefault(s.RevenueScale))
	fmt.Fprintf(&b, "- **Business phase:** %s\n", orDefault(s.Phase))
	fmt.Fprintf(&b, "\n**Overall score:** %s / 5.0\n", diagnosis.FormatScore(s.AvgScore))
	if link := ResultLink(resultURL, s.SubmissionID); link != "" {
		fmt.Fprintf(&b, "\n[Open the result](%s)\n", link)
	}
	b.WriteString("\nNext actions:\n\n")
	b.WriteString("- Review the AI report\n")
	b.WriteString("- Follow up with the client\n")
	b.WriteString("- Prepare a consulting proposal\n")

	return Notice{
		Kind:      KindOperator,
		To:        to,
		Subject:   fmt.Sprintf("New brand check from %s", s.Company),
		Body:      b.String(),
		CreatedAt: s.CreatedAt,
	}
}

// RespondentNotice builds the thank-you notice with the respondent's scores.
func RespondentNotice(s Summary, resultURL string) Notice {
	var b strings.Builder
	b.WriteString("## Your brand check results\n\n")
	fmt.Fprintf(&b, "%s, %s\n\n", s.Company, s.Respondent)
	b.WriteString("Thank you for completing the brand check. Your results are below.\n\n")
	fmt.Fprintf(&b, "**Overall score:** %s / 5.0\n\n", diagnosis.FormatScore(s.AvgScore))
	b.WriteString("| Question | Score |\n|---|---|\n")
	for _, q := range diagnosis.Questions() {
		fmt.Fprintf(&b, "| %s | %d |\n", q.Label, s.Scores.Score(q.ID))
	}
	if link := ResultLink(resultURL, s.SubmissionID); link != "" {
		fmt.Fprintf(&b, "\n[See the full diagnosis](%s)\n", link)
	}

	return Notice{
		Kind:      KindRespondent,
		To:        s.Email,
		Subject:   "Your brand check results",
		Body:      b.String(),
		CreatedAt: s.CreatedAt,
	}
}
