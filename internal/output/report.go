package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

// ReportView is everything shown on a rendered report page.
type ReportView struct {
	Title  string
	Source string
	Scores *diagnosis.ScoreSet
	Report *diagnosis.Report
}

type reportSection struct {
	title string
	items func(*diagnosis.Report) []string
	empty string
}

var reportSections = []reportSection{
	{"Strengths", func(r *diagnosis.Report) []string { return r.Strengths }, "none"},
	{"Weaknesses", func(r *diagnosis.Report) []string { return r.Weaknesses }, "none"},
	{"Contradictions", func(r *diagnosis.Report) []string { return r.Contradictions }, "no contradictions found"},
	{"Failure patterns", func(r *diagnosis.Report) []string { return r.FailurePatterns }, "no failure patterns found"},
	{"Memo analysis", func(r *diagnosis.Report) []string { return r.MemoAnalysis }, "memo not analyzed"},
	{"Priority actions", func(r *diagnosis.Report) []string { return r.PriorityActions }, "none"},
	{"Risk alerts", func(r *diagnosis.Report) []string { return r.RiskAlerts }, "no risks flagged"},
	{"Recommendations", func(r *diagnosis.Report) []string { return r.Recommendations }, "none"},
	{"Success path", func(r *diagnosis.Report) []string { return r.SuccessPath }, "none"},
}

// RenderReport returns the styled terminal form of a report.
func RenderReport(v ReportView) string {
	var sb strings.Builder
	r := v.Report

	title := v.Title
	if title == "" {
		title = "Brand check"
	}
	sb.WriteString(Section(title))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, " %s %s", StyleLabel.Render("Overall rating"), RatingBadge(r.OverallRating))
	if v.Source != "" {
		sb.WriteString("  " + StyleMuted.Render("("+v.Source+")"))
	}
	sb.WriteString("\n")

	if v.Scores != nil {
		avg := diagnosis.Aggregate(*v.Scores)
		fmt.Fprintf(&sb, " %s %s\n", StyleLabel.Render("Overall average"), ScoreBar(avg.Overall, 20))
		for _, c := range diagnosis.Categories {
			fmt.Fprintf(&sb, " %s %s\n", StyleLabel.Render(c.String()), ScoreBar(avg.Of(c), 20))
		}
	}

	sb.WriteString("\n " + r.OverallComment + "\n")

	for _, s := range reportSections {
		sb.WriteString(Section(s.title))
		sb.WriteString("\n")
		sb.WriteString(Bullets(s.items(r), s.empty))
	}

	if r.PhaseAdvice != "" {
		sb.WriteString(Section("Phase advice"))
		sb.WriteString("\n " + r.PhaseAdvice + "\n")
	}
	return sb.String()
}

// ScoreTable lists every question with its score.
func ScoreTable(scores diagnosis.ScoreSet) *Table {
	t := NewTable("#", "Question", "Category", "Score").AlignRight(3)
	for _, q := range diagnosis.Questions() {
		t.AddRow(fmt.Sprintf("Q%d", q.ID), q.Label, q.Category.String(), fmt.Sprintf("%d", scores.Score(q.ID)))
	}
	return t
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
