package diagnosis

// Input is the raw, unvalidated request to the engine. Phase is accepted as
// free text and normalized with ParsePhase.
type Input struct {
	Scores []int
	Phase  string
	Memo   string
}

// Engine holds the rule batteries used to build reports. The batteries are
// read-only after construction, so one Engine can serve concurrent callers.
type Engine struct {
	contradictions []Rule
	patterns       []Rule
	memo           MemoAnalyzer
}

// NewEngine creates an engine with the standard rule batteries.
func NewEngine() *Engine {
	return &Engine{
		contradictions: ContradictionRules(),
		patterns:       FailurePatternRules(),
		memo: MemoAnalyzer{
			Challenges: defaultChallengeRules,
			Visions:    defaultVisionRules,
		},
	}
}

// WithMemoRules returns a copy of the engine that cross-references memos with
// the given keyword tables instead of the standard ones.
func (e *Engine) WithMemoRules(challenges []ChallengeRule, visions []VisionRule) *Engine {
	cp := *e
	cp.memo = MemoAnalyzer{Challenges: challenges, Visions: visions}
	return &cp
}

// Analyze validates the input and derives a report. Invalid scores fail
// before any rule runs; no partial report is returned.
func (e *Engine) Analyze(in Input) (*Report, error) {
	p, err := NewProfile(in.Scores, ParsePhase(in.Phase), in.Memo)
	if err != nil {
		return nil, err
	}
	return e.build(p), nil
}

func (e *Engine) build(p *Profile) *Report {
	rating := ClassifyRating(p.Overall)

	contradictions := Evaluate(e.contradictions, p)
	p.ContradictionCount = len(contradictions)

	return &Report{
		OverallRating:   rating,
		OverallComment:  OverallComment(rating, p.Phase),
		Strengths:       capList(StrengthCandidates(p), MaxStrengths),
		Weaknesses:      capList(WeaknessCandidates(p), MaxWeaknesses),
		Recommendations: Recommendations(p),
		PhaseAdvice:     PhaseAdvice(p),
		Contradictions:  contradictions,
		MemoAnalysis:    e.memo.Analyze(p),
		PriorityActions: PriorityActions(p),
		RiskAlerts:      RiskAlerts(p),
		SuccessPath:     SuccessPath(p),
		FailurePatterns: Evaluate(e.patterns, p),
	}
}

var defaultEngine = NewEngine()

// Analyze runs the standard engine.
func Analyze(scores []int, phase, memo string) (*Report, error) {
	return defaultEngine.Analyze(Input{Scores: scores, Phase: phase, Memo: memo})
}
