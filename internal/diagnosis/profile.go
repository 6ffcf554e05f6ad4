package diagnosis

import "fmt"

// Profile is the validated input of one analysis together with its derived
// averages. Rules only ever read from it.
type Profile struct {
	Scores ScoreSet
	Averages
	Phase Phase
	Memo  string

	// ContradictionCount is filled in once the contradiction battery has
	// run; priority and risk rules read it.
	ContradictionCount int
}

// NewProfile validates scores and derives the averages.
func NewProfile(scores []int, phase Phase, memo string) (*Profile, error) {
	s, err := NewScoreSet(scores)
	if err != nil {
		return nil, err
	}
	return &Profile{Scores: s, Averages: Aggregate(s), Phase: phase, Memo: memo}, nil
}

// Q returns a question score as float64 so rules can compare against
// fractional cut points such as 2.5.
func (p *Profile) Q(id QuestionID) float64 {
	return float64(p.Scores.Score(id))
}

// pt renders a question score for messages, e.g. "2 pts".
func (p *Profile) pt(id QuestionID) string {
	return fmt.Sprintf("%d pts", p.Scores.Score(id))
}

// avg renders an average for messages, e.g. "2.7 pts".
func avg(v float64) string {
	return FormatScore(v) + " pts"
}

// Condition is a predicate over a profile.
type Condition func(p *Profile) bool

// Rule pairs a predicate with the finding it produces. Batteries of rules are
// evaluated in declaration order, every rule independently.
type Rule struct {
	Name    string
	When    Condition
	Message func(p *Profile) string
}

// Evaluate runs every rule and concatenates the messages of those that fire.
// The result is never nil.
func Evaluate(rules []Rule, p *Profile) []string {
	out := []string{}
	for _, r := range rules {
		if r.When(p) {
			out = append(out, r.Message(p))
		}
	}
	return out
}

// text wraps a fixed message.
func text(s string) func(*Profile) string {
	return func(*Profile) string { return s }
}

// capList returns at most n leading entries of l.
func capList(l []string, n int) []string {
	if len(l) <= n {
		return l
	}
	return l[:n]
}
