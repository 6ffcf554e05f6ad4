// Package store provides SQLite persistence for survey submissions and the
// reports attached to them.
package store

import (
	"errors"
	"time"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

// ErrNotFound is returned when no submission has the requested id.
var ErrNotFound = errors.New("submission not found")

// Submission is one stored survey response.
type Submission struct {
	ID              string             `json:"id"`
	CreatedAt       time.Time          `json:"created_at"`
	CompanyName     string             `json:"company_name"`
	RespondentName  string             `json:"respondent_name"`
	RespondentEmail string             `json:"respondent_email,omitempty"`
	Industry        string             `json:"industry,omitempty"`
	RevenueScale    string             `json:"revenue_scale,omitempty"`
	BusinessPhase   string             `json:"business_phase,omitempty"`
	Memo            string             `json:"memo,omitempty"`
	Scores          diagnosis.ScoreSet `json:"scores"`
	AvgScore        float64            `json:"avg_score"`

	// EditedReport is a hand-edited report that replaces the computed one.
	EditedReport *diagnosis.Report `json:"edited_report,omitempty"`

	AIReport      *diagnosis.Report `json:"ai_report,omitempty"`
	AIModel       string            `json:"ai_model,omitempty"`
	AIGeneratedAt *time.Time        `json:"ai_generated_at,omitempty"`
}

// ListFilter narrows ListSubmissions. Zero fields match everything.
type ListFilter struct {
	// Company matches as a case-insensitive substring.
	Company  string
	Phase    string
	Industry string
	Limit    int
}
