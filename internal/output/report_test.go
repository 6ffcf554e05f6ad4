package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		score  float64
		filled int
		label  string
	}{
		{5, 10, "5.0"},
		{2.5, 5, "2.5"},
		{1, 2, "1.0"},
		{7, 10, "7.0"},
	}
	for _, tc := range tests {
		got := ScoreBar(tc.score, 10)
		if n := strings.Count(got, "█"); n != tc.filled {
			t.Errorf("ScoreBar(%v) filled = %d, want %d", tc.score, n, tc.filled)
		}
		if !strings.HasSuffix(got, tc.label) {
			t.Errorf("ScoreBar(%v) = %q, want suffix %q", tc.score, got, tc.label)
		}
	}
}

func TestRenderReport(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	scores := diagnosis.ScoreSet{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	r, err := diagnosis.Analyze(scores.Values(), "growth", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	out := RenderReport(ReportView{Title: "Acme", Source: "computed", Scores: &scores, Report: r})

	for _, want := range []string{
		"Acme",
		diagnosis.RatingExcellent.Label(),
		"(computed)",
		"Strategy",
		"Results",
		"Strengths",
		"no contradictions found",
		"memo not analyzed",
		"Phase advice",
		r.OverallComment,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no ANSI codes with color disabled")
	}
}

func TestRenderReport_WithoutScores(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	r := &diagnosis.Report{OverallRating: diagnosis.RatingUrgent}
	r.Normalize()
	out := RenderReport(ReportView{Report: r})
	if strings.Contains(out, "Overall average") {
		t.Error("averages shown without scores")
	}
	if !strings.Contains(out, "Brand check") {
		t.Error("expected default title")
	}
}

func TestScoreTable(t *testing.T) {
	tbl := ScoreTable(diagnosis.ScoreSet{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2})
	if tbl.Len() != diagnosis.NumQuestions {
		t.Fatalf("expected %d rows, got %d", diagnosis.NumQuestions, tbl.Len())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\n  \"a\": 1\n}\n" {
		t.Errorf("unexpected JSON: %q", buf.String())
	}
}
