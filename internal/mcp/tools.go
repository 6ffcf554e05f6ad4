package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/survey"
)

// ReportResult is a resolved report of a stored submission.
type ReportResult struct {
	SubmissionID string            `json:"submission_id"`
	Company      string            `json:"company"`
	Phase        string            `json:"phase,omitempty"`
	Average      string            `json:"average"`
	Source       string            `json:"source"`
	Report       *diagnosis.Report `json:"report"`
}

// SubmissionsResult holds a list of recent submissions.
type SubmissionsResult struct {
	Submissions []SubmissionSummary `json:"submissions"`
}

// SubmissionSummary holds summary data for a single submission.
type SubmissionSummary struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Company   string `json:"company"`
	Industry  string `json:"industry,omitempty"`
	Phase     string `json:"phase,omitempty"`
	Average   string `json:"average"`
	Rating    string `json:"rating"`
}

var (
	noArgsSchema   = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	analyzeSchema  = json.RawMessage(`{"type":"object","properties":{"scores":{"type":"array","items":{"type":"integer","minimum":1,"maximum":5},"minItems":12,"maxItems":12,"description":"Twelve answers in question order, each 1-5"},"phase":{"type":"string","description":"Business phase: ideation, launch, growth or review"},"memo":{"type":"string","description":"Free-text challenges and vision"}},"required":["scores"],"additionalProperties":false}`)
	reportIDSchema = json.RawMessage(`{"type":"object","properties":{"id":{"type":"string","description":"Submission id"}},"required":["id"],"additionalProperties":false}`)
	listSchema     = json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer","description":"Number of submissions to return (default 10)"},"company":{"type":"string","description":"Company name substring"},"phase":{"type":"string"}},"additionalProperties":false}`)
)

const defaultListLimit = 10

// addTools registers the tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "analyze_scores",
		Description: "Run the brand diagnosis on twelve 1-5 answers with an optional phase and memo.",
		InputSchema: analyzeSchema,
		Handler:     s.handleAnalyzeScores,
	})
	s.registerTool(toolDef{
		Name:        "list_questions",
		Description: "The twelve questionnaire items with their categories.",
		InputSchema: noArgsSchema,
		Handler:     s.handleListQuestions,
	})
	if s.reports == nil {
		return
	}
	s.registerTool(toolDef{
		Name:        "get_report",
		Description: "The current report of a stored submission (hand-edited if one was saved).",
		InputSchema: reportIDSchema,
		Handler:     s.handleGetReport,
	})
	s.registerTool(toolDef{
		Name:        "list_submissions",
		Description: "Most recent submissions with average and rating.",
		InputSchema: listSchema,
		Handler:     s.handleListSubmissions,
	})
}

func (s *Server) handleAnalyzeScores(_ context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Scores []int  `json:"scores"`
		Phase  string `json:"phase"`
		Memo   string `json:"memo"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return s.engine.Analyze(diagnosis.Input{Scores: params.Scores, Phase: params.Phase, Memo: params.Memo})
}

func (s *Server) handleListQuestions(context.Context, json.RawMessage) (any, error) {
	return diagnosis.Questions(), nil
}

func (s *Server) handleGetReport(_ context.Context, args json.RawMessage) (any, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.ID == "" {
		return nil, errors.New("id is required")
	}

	res, err := s.reports.Report(params.ID)
	if err != nil {
		return nil, err
	}
	sub := res.Submission
	return ReportResult{
		SubmissionID: sub.ID,
		Company:      sub.CompanyName,
		Phase:        sub.BusinessPhase,
		Average:      diagnosis.FormatScore(sub.AvgScore),
		Source:       string(res.Source),
		Report:       res.Report,
	}, nil
}

func (s *Server) handleListSubmissions(_ context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Limit   *int   `json:"limit"`
		Company string `json:"company"`
		Phase   string `json:"phase"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	limit := defaultListLimit
	if params.Limit != nil && *params.Limit > 0 {
		limit = *params.Limit
	}

	subs, err := s.reports.List(survey.ListFilter{Company: params.Company, Phase: params.Phase, Limit: limit})
	if err != nil {
		return nil, err
	}

	out := SubmissionsResult{Submissions: make([]SubmissionSummary, 0, len(subs))}
	for _, sub := range subs {
		out.Submissions = append(out.Submissions, SubmissionSummary{
			ID:        sub.ID,
			CreatedAt: sub.CreatedAt.UTC().Format(time.RFC3339),
			Company:   sub.CompanyName,
			Industry:  sub.Industry,
			Phase:     sub.BusinessPhase,
			Average:   diagnosis.FormatScore(sub.AvgScore),
			Rating:    string(diagnosis.ClassifyRating(sub.AvgScore)),
		})
	}
	return out, nil
}
