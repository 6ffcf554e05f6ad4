package aireport

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/llm"
)

const sampleOutput = `{
  "overallComment": "Solid foundation, weak execution.",
  "contradictions": ["High uniqueness without competitive analysis"],
  "priorityActions": ["Define the target customer", "Map competitors", "Set brand KPIs"],
  "strengths": ["Clear growth intent"],
  "weaknesses": ["No KPI tracking"],
  "recommendations": ["a", "b", "c", "d", "e"],
  "successPath": ["3 months", "6 months", "1 year"],
  "phaseAdvice": "Focus on repeatable acquisition."
}`

func scores(vals ...int) []int { return vals }

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleOutput)})
	g := NewGenerator(mock, 4000, 0.7)

	res, err := g.Generate(context.Background(), Input{
		Company: "Acme",
		Scores:  scores(4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4),
		Phase:   "成長中",
		Memo:    "Our challenge is awareness.",
	})
	require.NoError(t, err)

	r := res.Report
	assert.Equal(t, diagnosis.RatingExcellent, r.OverallRating)
	assert.Equal(t, "Solid foundation, weak execution.", r.OverallComment)
	assert.Len(t, r.PriorityActions, 3)
	assert.Len(t, r.Recommendations, 5)
	assert.Equal(t, "Focus on repeatable acquisition.", r.PhaseAdvice)
	assert.NotNil(t, r.MemoAnalysis)
	assert.Empty(t, r.MemoAnalysis)
	assert.Empty(t, r.RiskAlerts)
	assert.Empty(t, r.FailurePatterns)
	assert.Equal(t, "mock", res.Model)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, ReportSchema, req.Schema)
	assert.Equal(t, 4000, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Name: Acme")
	assert.Contains(t, msg, "Business phase: Growth")
	assert.Contains(t, msg, "Market understanding: 4")
	assert.Contains(t, msg, "Average: 4.0")
	assert.Contains(t, msg, "Our challenge is awareness.")
	assert.Contains(t, msg, "specific to the Growth phase")
}

func TestGenerate_FencedOutput(t *testing.T) {
	fenced := "Here is the analysis:\n```json\n" + sampleOutput + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})

	res, err := NewGenerator(mock, 1000, 0).Generate(context.Background(), Input{
		Scores: scores(2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, diagnosis.RatingNeedsImprovement, res.Report.OverallRating)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Name: not provided")
	assert.Contains(t, msg, "Business phase: not provided")
}

func TestGenerate_InvalidScores(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := NewGenerator(mock, 1000, 0).Generate(context.Background(), Input{Scores: scores(3, 3)})
	assert.ErrorIs(t, err, diagnosis.ErrInvalidScoreSet)
	assert.Zero(t, mock.CallCount(), "no request for invalid input")
}

func TestGenerate_SchemaMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"overallComment": "only this"}`)})
	_, err := NewGenerator(mock, 1000, 0).Generate(context.Background(), Input{
		Scores: scores(3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
	})
	var invalid *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid), "got %v", err)
}
