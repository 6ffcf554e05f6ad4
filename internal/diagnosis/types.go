// Package diagnosis implements the deterministic brand-assessment engine.
//
// The engine turns twelve Likert scores plus the respondent's business phase
// and free-text memo into a structured Report. Every stage is a pure function
// of its inputs, so an Engine may be shared between goroutines freely.
package diagnosis

import "strings"

// Category groups three questions for aggregate-level rules.
type Category int

const (
	CategoryStrategy Category = iota
	CategoryValue
	CategoryExecution
	CategoryResults
)

// Categories lists every category in evaluation order.
var Categories = []Category{CategoryStrategy, CategoryValue, CategoryExecution, CategoryResults}

func (c Category) String() string {
	switch c {
	case CategoryStrategy:
		return "Strategy"
	case CategoryValue:
		return "Value"
	case CategoryExecution:
		return "Execution"
	case CategoryResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Rating is the overall tier assigned from the overall average.
type Rating string

const (
	RatingExcellent        Rating = "excellent"
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs_improvement"
	RatingUrgent           Rating = "urgent"
)

// Valid reports whether r is one of the four tiers.
func (r Rating) Valid() bool {
	switch r {
	case RatingExcellent, RatingGood, RatingNeedsImprovement, RatingUrgent:
		return true
	}
	return false
}

// Label returns the display form of the rating.
func (r Rating) Label() string {
	switch r {
	case RatingExcellent:
		return "Excellent"
	case RatingGood:
		return "Good"
	case RatingNeedsImprovement:
		return "Needs improvement"
	case RatingUrgent:
		return "Urgent action needed"
	default:
		return string(r)
	}
}

// Phase is the respondent's self-declared business lifecycle stage.
type Phase int

const (
	PhaseUnknown Phase = iota
	PhaseIdeation
	PhaseLaunch
	PhaseGrowth
	PhaseReview
)

// phaseAliases maps accepted input spellings to phases. The Japanese labels
// are the ones the survey form submits.
var phaseAliases = map[string]Phase{
	"ideation":   PhaseIdeation,
	"concept":    PhaseIdeation,
	"構想中":        PhaseIdeation,
	"launch":     PhaseLaunch,
	"launching":  PhaseLaunch,
	"売り出し中":      PhaseLaunch,
	"growth":     PhaseGrowth,
	"growing":    PhaseGrowth,
	"成長中":        PhaseGrowth,
	"review":     PhaseReview,
	"reviewing":  PhaseReview,
	"見直し中":       PhaseReview,
}

// ParsePhase normalizes a raw phase label. Unrecognized or empty input yields
// PhaseUnknown; it is never an error.
func ParsePhase(s string) Phase {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := phaseAliases[key]; ok {
		return p
	}
	return PhaseUnknown
}

func (p Phase) String() string {
	switch p {
	case PhaseIdeation:
		return "ideation"
	case PhaseLaunch:
		return "launch"
	case PhaseGrowth:
		return "growth"
	case PhaseReview:
		return "review"
	default:
		return "unknown"
	}
}

// Label returns the display form of the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseIdeation:
		return "Ideation"
	case PhaseLaunch:
		return "Launch"
	case PhaseGrowth:
		return "Growth"
	case PhaseReview:
		return "Review"
	default:
		return "Unspecified"
	}
}

// Report is the diagnostic output of one analysis. Reports are built fresh
// for every call and are not modified afterwards; list fields are never nil.
type Report struct {
	OverallRating   Rating   `json:"overallRating" yaml:"overallRating"`
	OverallComment  string   `json:"overallComment" yaml:"overallComment"`
	Strengths       []string `json:"strengths" yaml:"strengths"`
	Weaknesses      []string `json:"weaknesses" yaml:"weaknesses"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	PhaseAdvice     string   `json:"phaseAdvice" yaml:"phaseAdvice"`
	Contradictions  []string `json:"contradictions" yaml:"contradictions"`
	MemoAnalysis    []string `json:"memoAnalysis" yaml:"memoAnalysis"`
	PriorityActions []string `json:"priorityActions" yaml:"priorityActions"`
	RiskAlerts      []string `json:"riskAlerts" yaml:"riskAlerts"`
	SuccessPath     []string `json:"successPath" yaml:"successPath"`
	FailurePatterns []string `json:"failurePatterns" yaml:"failurePatterns"`
}

// Normalize replaces nil list fields with empty lists. Reports decoded from
// storage or produced by another generator go through it before use.
func (r *Report) Normalize() {
	for _, l := range []*[]string{
		&r.Strengths, &r.Weaknesses, &r.Recommendations, &r.Contradictions,
		&r.MemoAnalysis, &r.PriorityActions, &r.RiskAlerts, &r.SuccessPath,
		&r.FailurePatterns,
	} {
		if *l == nil {
			*l = []string{}
		}
	}
}
