package diagnosis

// Report caps for the list fields that are truncated.
const (
	MaxStrengths       = 4
	MaxWeaknesses      = 4
	MaxRecommendations = 5
)

const fallbackStrength = "A willingness to work on improvement is present"

var strengthRules = []Rule{
	{Name: "strategy-avg", When: func(p *Profile) bool { return p.Strategy >= 3.5 },
		Message: text("Solid grounding in market, competitor and self-analysis")},
	{Name: "value-avg", When: func(p *Profile) bool { return p.Value >= 3.5 },
		Message: text("Clear value delivery and uniqueness")},
	{Name: "execution-avg", When: func(p *Profile) bool { return p.Execution >= 3.5 },
		Message: text("Effective communication backed by the organisation")},
	{Name: "results-avg", When: func(p *Profile) bool { return p.Results >= 3.5 },
		Message: text("Delivering results with a sustained drive to grow")},
	{Name: "market", When: func(p *Profile) bool { return p.Q(QMarket) >= 4 },
		Message: text("Strong market understanding and a grasp of customer needs")},
	{Name: "value-proposition", When: func(p *Profile) bool { return p.Q(QValueProposition) >= 4 },
		Message: text("A clear and convincing value proposition")},
	{Name: "uniqueness", When: func(p *Profile) bool { return p.Q(QUniqueness) >= 4 },
		Message: text("Clear differentiation from competitors")},
	{Name: "communication", When: func(p *Profile) bool { return p.Q(QCommunication) >= 4 },
		Message: text("Excellent brand communication")},
	{Name: "results", When: func(p *Profile) bool { return p.Q(QResults) >= 4 },
		Message: text("Brand activities are producing results")},
}

var weaknessRules = []Rule{
	{Name: "strategy-avg", When: func(p *Profile) bool { return p.Strategy < 2.5 },
		Message: text("Market, competitor and self-analysis are insufficient")},
	{Name: "value-avg", When: func(p *Profile) bool { return p.Value < 2.5 },
		Message: text("Value delivery and uniqueness need to be clarified")},
	{Name: "execution-avg", When: func(p *Profile) bool { return p.Execution < 2.5 },
		Message: text("Communication and organisational backing need strengthening")},
	{Name: "results-avg", When: func(p *Profile) bool { return p.Results < 2.5 },
		Message: text("Mechanisms for measuring results and continuous improvement are missing")},
	{Name: "competition", When: func(p *Profile) bool { return p.Q(QCompetition) < 3 },
		Message: text("Competitive analysis needs strengthening")},
	{Name: "self-analysis", When: func(p *Profile) bool { return p.Q(QSelfAnalysis) < 3 },
		Message: text("Self-analysis and a clear statement of strengths are needed")},
	{Name: "product-service", When: func(p *Profile) bool { return p.Q(QProductService) < 3 },
		Message: text("The brand experience delivered through products and services needs work")},
	{Name: "inner-branding", When: func(p *Profile) bool { return p.Q(QInnerBranding) < 3 },
		Message: text("Inner branding needs strengthening")},
	{Name: "kpi", When: func(p *Profile) bool { return p.Q(QKPI) < 3 },
		Message: text("KPIs and a way to measure them need to be set up")},
}

// StrengthCandidates returns every strength that fires, in rule order,
// before capping. When none fire the fallback strength is returned.
func StrengthCandidates(p *Profile) []string {
	out := Evaluate(strengthRules, p)
	if len(out) == 0 {
		out = append(out, fallbackStrength)
	}
	return out
}

// WeaknessCandidates returns every weakness that fires, in rule order,
// before capping.
func WeaknessCandidates(p *Profile) []string {
	return Evaluate(weaknessRules, p)
}
