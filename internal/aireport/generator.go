// Package aireport writes an alternative brand report with a remote model.
// The deterministic rating still comes from the diagnosis package.
package aireport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/llm"
)

// Input is what the model is told about one questionnaire.
type Input struct {
	Company string
	Scores  []int
	Phase   string
	Memo    string
}

// Result is a generated report with the model that wrote it.
type Result struct {
	Report *diagnosis.Report
	Model  string
	Usage  llm.Usage
}

// Generator produces AI reports.
type Generator struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewGenerator creates a Generator.
func NewGenerator(p llm.Provider, maxTokens int, temperature float64) *Generator {
	return &Generator{provider: p, maxTokens: maxTokens, temperature: temperature}
}

type reportOutput struct {
	OverallComment  string   `json:"overallComment"`
	Contradictions  []string `json:"contradictions"`
	PriorityActions []string `json:"priorityActions"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	SuccessPath     []string `json:"successPath"`
	PhaseAdvice     string   `json:"phaseAdvice"`
}

// Generate validates the scores, asks the model for a report and maps the
// answer onto a diagnosis.Report. Memo analysis, risk alerts and failure
// patterns are left empty.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	scores, err := diagnosis.NewScoreSet(in.Scores)
	if err != nil {
		return nil, err
	}

	req := llm.UserPrompt(systemPrompt, buildUserMessage(in, scores))
	req.Schema = ReportSchema
	req.MaxTokens = g.maxTokens
	req.Temperature = g.temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating AI report: %w", err)
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse AI report: %w", err)
	}

	r := &diagnosis.Report{
		OverallRating:   diagnosis.ClassifyRating(diagnosis.Aggregate(scores).Overall),
		OverallComment:  out.OverallComment,
		Strengths:       out.Strengths,
		Weaknesses:      out.Weaknesses,
		Recommendations: out.Recommendations,
		PhaseAdvice:     out.PhaseAdvice,
		Contradictions:  out.Contradictions,
		PriorityActions: out.PriorityActions,
		SuccessPath:     out.SuccessPath,
	}
	r.Normalize()

	model := resp.Model
	if model == "" {
		model = g.provider.ModelID()
	}
	return &Result{Report: r, Model: model, Usage: resp.Usage}, nil
}
