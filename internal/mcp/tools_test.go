package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/store"
	"github.com/huvdesign/brandcheck/internal/survey"
)

// newTestServer creates a Server backed by an in-memory store.
func newTestServer(t *testing.T) (*Server, *survey.Service) {
	t.Helper()
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	svc := survey.NewService(db)
	return NewServer(diagnosis.NewEngine(), WithReports(svc)), svc
}

func submit(t *testing.T, svc *survey.Service, company string, scores []int) *store.Submission {
	t.Helper()
	sub, err := svc.Submit(context.Background(), survey.NewSubmission{
		CompanyName:    company,
		RespondentName: "Aoi",
		BusinessPhase:  "growth",
		Scores:         scores,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return sub
}

// callTool invokes the named tool handler and returns the typed result.
func callTool(s *Server, name string, args json.RawMessage) (any, error) {
	def, ok := s.tool(name)
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	return def.Handler(context.Background(), args)
}

func TestAddTools_StatelessOnly(t *testing.T) {
	s := newEmptyServer()
	if _, err := callTool(s, "get_report", json.RawMessage(`{"id":"x"}`)); err == nil {
		t.Fatal("get_report should not be registered without reports")
	}
	if len(s.tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(s.tools))
	}
}

func TestAnalyzeScores(t *testing.T) {
	s := newEmptyServer()
	got, err := callTool(s, "analyze_scores",
		json.RawMessage(`{"scores":[5,5,5,5,5,5,5,5,5,5,5,5],"phase":"成長中"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := got.(*diagnosis.Report)
	if !ok {
		t.Fatalf("expected *diagnosis.Report, got %T", got)
	}
	if r.OverallRating != diagnosis.RatingExcellent {
		t.Errorf("expected excellent, got %s", r.OverallRating)
	}
	if !strings.HasPrefix(r.PhaseAdvice, "[Growth]") {
		t.Errorf("unexpected phase advice: %q", r.PhaseAdvice)
	}
}

func TestAnalyzeScores_Invalid(t *testing.T) {
	s := newEmptyServer()
	for _, args := range []string{`{"scores":[5,5]}`, `{"scores":[0,5,5,5,5,5,5,5,5,5,5,5]}`, `{"scores":"nope"}`} {
		if _, err := callTool(s, "analyze_scores", json.RawMessage(args)); err == nil {
			t.Errorf("%s: expected error", args)
		}
	}
}

func TestListQuestions(t *testing.T) {
	s := newEmptyServer()
	got, err := callTool(s, "list_questions", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	qs := got.([]diagnosis.Question)
	if len(qs) != diagnosis.NumQuestions {
		t.Fatalf("expected %d questions, got %d", diagnosis.NumQuestions, len(qs))
	}
	data, _ := json.Marshal(qs[0])
	if !strings.Contains(string(data), `"category":"Strategy"`) {
		t.Errorf("category not encoded by name: %s", data)
	}
}

func TestGetReport(t *testing.T) {
	s, svc := newTestServer(t)
	sub := submit(t, svc, "Acme", []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4})

	got, err := callTool(s, "get_report", json.RawMessage(fmt.Sprintf(`{"id":%q}`, sub.ID)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := got.(ReportResult)
	if res.Company != "Acme" || res.Average != "4.0" || res.Source != "computed" {
		t.Errorf("unexpected result: %+v", res)
	}

	if _, err := callTool(s, "get_report", json.RawMessage(`{"id":"missing"}`)); err == nil {
		t.Error("expected error for unknown id")
	}
	if _, err := callTool(s, "get_report", json.RawMessage(`{}`)); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestListSubmissions(t *testing.T) {
	s, svc := newTestServer(t)
	for i := range 12 {
		submit(t, svc, fmt.Sprintf("Company %d", i), []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	}

	got, err := callTool(s, "list_submissions", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := got.(SubmissionsResult)
	if len(res.Submissions) != defaultListLimit {
		t.Fatalf("expected %d submissions, got %d", defaultListLimit, len(res.Submissions))
	}
	if res.Submissions[0].Rating != string(diagnosis.RatingNeedsImprovement) {
		t.Errorf("unexpected rating: %s", res.Submissions[0].Rating)
	}

	got, err = callTool(s, "list_submissions", json.RawMessage(`{"limit":3,"company":"Company 1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "Company 1", "Company 10", "Company 11".
	if n := len(got.(SubmissionsResult).Submissions); n != 3 {
		t.Errorf("expected 3 submissions, got %d", n)
	}
}
