package diagnosis

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestAnalyze_AllMaximal(t *testing.T) {
	r, err := Analyze(uniform(5), "成長中", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.OverallRating != RatingExcellent {
		t.Errorf("rating = %q, want %q", r.OverallRating, RatingExcellent)
	}
	if r.OverallComment != OverallComment(RatingExcellent, PhaseGrowth) {
		t.Errorf("comment = %q", r.OverallComment)
	}
	if len(r.Strengths) != MaxStrengths {
		t.Errorf("expected %d strengths, got %d", MaxStrengths, len(r.Strengths))
	}
	for name, l := range map[string][]string{
		"weaknesses":      r.Weaknesses,
		"contradictions":  r.Contradictions,
		"failurePatterns": r.FailurePatterns,
		"memoAnalysis":    r.MemoAnalysis,
		"riskAlerts":      r.RiskAlerts,
	} {
		if l == nil || len(l) != 0 {
			t.Errorf("%s = %#v, want empty list", name, l)
		}
	}
	if !strings.HasPrefix(r.PhaseAdvice, "[Growth]") {
		t.Errorf("phase advice = %q", r.PhaseAdvice)
	}
}

func TestAnalyze_JSONFieldsAlwaysPresent(t *testing.T) {
	r, err := Analyze(uniform(5), "", "")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{
		`"overallRating":"excellent"`, `"overallComment":`, `"strengths":[`,
		`"weaknesses":[]`, `"recommendations":[`, `"phaseAdvice":`,
		`"contradictions":[]`, `"memoAnalysis":[]`, `"priorityActions":[]`,
		`"riskAlerts":[]`, `"successPath":[`, `"failurePatterns":[]`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("expected %s in %s", field, data)
		}
	}
}

func TestAnalyze_InvalidScores(t *testing.T) {
	for _, scores := range [][]int{
		{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
		{3, 3, 3, 3, 3, 0, 3, 3, 3, 3, 3, 3},
		{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 6},
	} {
		r, err := Analyze(scores, "growth", "a memo long enough to analyse")
		if !errors.Is(err, ErrInvalidScoreSet) {
			t.Errorf("Analyze(%v) error = %v, want ErrInvalidScoreSet", scores, err)
		}
		if r != nil {
			t.Errorf("Analyze(%v) returned a partial report", scores)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	scores := []int{2, 2, 5, 3, 1, 4, 5, 1, 2, 4, 1, 5}
	memo := "競合との差別化が課題。今後は新市場への展開を目指す。"
	e := NewEngine()
	a, err := e.Analyze(Input{Scores: scores, Phase: "launch", Memo: memo})
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Analyze(Input{Scores: scores, Phase: "launch", Memo: memo})
	if err != nil {
		t.Fatal(err)
	}
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Errorf("reports differ:\n%s\n%s", ja, jb)
	}
}

func TestAnalyze_ContradictionCountFeedsPriorities(t *testing.T) {
	r, err := Analyze([]int{2, 2, 5, 3, 3, 3, 3, 3, 3, 3, 3, 3}, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Contradictions) != 3 {
		t.Fatalf("expected 3 contradictions, got %q", r.Contradictions)
	}
	if len(r.PriorityActions) != 1 || !strings.Contains(r.PriorityActions[0], "3 contradictions") {
		t.Errorf("priority actions = %q", r.PriorityActions)
	}
}

func TestAnalyze_ManyContradictionsRaiseRisks(t *testing.T) {
	scores := []int{1, 1, 1, 5, 5, 5, 5, 1, 1, 1, 1, 5}
	p := mustProfile(t, scores)
	var fired []string
	for _, r := range ContradictionRules() {
		if r.When(p) {
			fired = append(fired, r.Name)
		}
	}
	want := []string{
		"uniqueness-without-competition", "uniqueness-without-any-competition", "value-without-market",
		"self-value", "inner-communication", "results-growth", "value-not-delivered",
	}
	if !reflect.DeepEqual(fired, want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}

	r, err := Analyze(scores, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Contradictions) != 7 {
		t.Fatalf("expected 7 contradictions, got %d", len(r.Contradictions))
	}
	if len(r.PriorityActions) != 2 || !strings.HasPrefix(r.PriorityActions[0], urgencyCritical) ||
		r.PriorityActions[1] != urgencyImportant+" 7 contradictions detected: improve in logical order" {
		t.Errorf("priority actions = %q", r.PriorityActions)
	}
	if len(r.RiskAlerts) != 2 || !strings.Contains(r.RiskAlerts[0], "Organisational risk") ||
		!strings.Contains(r.RiskAlerts[1], "7 serious contradictions") {
		t.Errorf("risk alerts = %q", r.RiskAlerts)
	}
}

func TestAnalyze_Concurrent(t *testing.T) {
	e := NewEngine()
	want, err := e.Analyze(Input{Scores: uniform(2), Phase: "review", Memo: "組織への浸透が課題です。"})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Analyze(Input{Scores: uniform(2), Phase: "review", Memo: "組織への浸透が課題です。"})
			if err != nil {
				errs <- err.Error()
				return
			}
			if !reflect.DeepEqual(got, want) {
				errs <- "report mismatch"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestEngine_WithMemoRules(t *testing.T) {
	e := NewEngine().WithMemoRules(nil, nil)
	r, err := e.Analyze(Input{Scores: uniform(4), Memo: "awareness is our challenge"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(r.MemoAnalysis, []string{promptNoVision}) {
		t.Errorf("memo analysis = %q", r.MemoAnalysis)
	}
}
