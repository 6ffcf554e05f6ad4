package diagnosis

import (
	"errors"
	"fmt"
	"math"
)

// Score bounds of the Likert scale.
const (
	MinScore = 1
	MaxScore = 5
)

// ErrInvalidScoreSet is returned when a score sequence does not hold exactly
// twelve values in [MinScore, MaxScore].
var ErrInvalidScoreSet = errors.New("invalid score set")

// ScoreSetError describes why a score sequence was rejected. Index is the
// 0-based position of the first out-of-range value, or -1 for a length error.
type ScoreSetError struct {
	Len   int
	Index int
	Value int
}

func (e *ScoreSetError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid score set: want %d scores, got %d", NumQuestions, e.Len)
	}
	return fmt.Sprintf("invalid score set: q%d = %d is outside [%d, %d]",
		e.Index+1, e.Value, MinScore, MaxScore)
}

func (e *ScoreSetError) Unwrap() error { return ErrInvalidScoreSet }

// ScoreSet holds the twelve answers positionally aligned to question ids.
type ScoreSet [NumQuestions]int

// NewScoreSet validates values and builds a ScoreSet. It never clamps.
func NewScoreSet(values []int) (ScoreSet, error) {
	var s ScoreSet
	if len(values) != NumQuestions {
		return s, &ScoreSetError{Len: len(values), Index: -1}
	}
	for i, v := range values {
		if v < MinScore || v > MaxScore {
			return s, &ScoreSetError{Len: len(values), Index: i, Value: v}
		}
		s[i] = v
	}
	return s, nil
}

// Score returns the answer for a question.
func (s ScoreSet) Score(id QuestionID) int {
	return s[id-1]
}

// Values returns the scores as a slice.
func (s ScoreSet) Values() []int {
	out := make([]int, NumQuestions)
	copy(out, s[:])
	return out
}

// Averages holds the overall mean and the four category means. Values are
// kept unrounded; formatting is left to presentation.
type Averages struct {
	Overall   float64 `json:"overall"`
	Strategy  float64 `json:"strategy"`
	Value     float64 `json:"value"`
	Execution float64 `json:"execution"`
	Results   float64 `json:"results"`
}

// Of returns the average of one category.
func (a Averages) Of(c Category) float64 {
	switch c {
	case CategoryStrategy:
		return a.Strategy
	case CategoryValue:
		return a.Value
	case CategoryExecution:
		return a.Execution
	case CategoryResults:
		return a.Results
	default:
		return 0
	}
}

// Aggregate computes the overall and per-category averages.
func Aggregate(s ScoreSet) Averages {
	sum := 0
	for _, v := range s {
		sum += v
	}
	return Averages{
		Overall:   float64(sum) / NumQuestions,
		Strategy:  categoryMean(s, CategoryStrategy),
		Value:     categoryMean(s, CategoryValue),
		Execution: categoryMean(s, CategoryExecution),
		Results:   categoryMean(s, CategoryResults),
	}
}

func categoryMean(s ScoreSet, c Category) float64 {
	ids := CategoryMembers(c)
	sum := 0
	for _, id := range ids {
		sum += s.Score(id)
	}
	return float64(sum) / float64(len(ids))
}

// FormatScore renders an average with one decimal, rounding halves up so
// that 2.25 prints as 2.3.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.1f", math.Floor(v*10+0.5)/10)
}
