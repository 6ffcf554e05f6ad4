package diagnosis

import "fmt"

// lowHigh builds a contradiction that fires when question low scores below
// the cut point while question high scores at least atLeast.
func lowHigh(name string, low QuestionID, below float64, high QuestionID, atLeast float64, why string) Rule {
	return Rule{
		Name: name,
		When: func(p *Profile) bool { return p.Q(low) < below && p.Q(high) >= atLeast },
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ %s is only %s but %s scores %s: %s",
				label(low), p.pt(low), label(high), p.pt(high), why)
		},
	}
}

// relativeRules flag self-assessments that lack the external reference
// points they are relative to.
var relativeRules = []Rule{
	{
		Name: "self-without-reference",
		When: func(p *Profile) bool {
			return (p.Q(QMarket) < 3 || p.Q(QCompetition) < 3) && p.Q(QSelfAnalysis) >= 4
		},
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ Market understanding (%s) or competitive analysis (%s) is insufficient, yet self-analysis scores high (%s): "+
				"strengths are only strengths relative to the market and competitors. Rating yourself highly without knowing them is subjective; an objective analysis is needed.",
				p.pt(QMarket), p.pt(QCompetition), p.pt(QSelfAnalysis))
		},
	},
	{
		Name: "self-without-any-reference",
		When: func(p *Profile) bool {
			return p.Q(QMarket) < 3 && p.Q(QCompetition) < 3 && p.Q(QSelfAnalysis) >= 3
		},
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ Both market (%s) and competitor (%s) understanding are lacking, yet self-analysis is rated moderately or better (%s): "+
				"strengths and weaknesses are relative. Without something to compare against, an accurate self-assessment is not possible.",
				p.pt(QMarket), p.pt(QCompetition), p.pt(QSelfAnalysis))
		},
	},
	lowHigh("uniqueness-without-competition", QCompetition, 3, QUniqueness, 4,
		"uniqueness means being different from competitors. Claiming differentiation without knowing them has no basis; analyse competitors in detail."),
	lowHigh("uniqueness-without-any-competition", QCompetition, 2.5, QUniqueness, 3,
		"unique compared to what? Understand competitors' strengths and weaknesses, then reassess uniqueness."),
	lowHigh("value-without-market", QMarket, 3, QValueProposition, 4,
		"a value proposition is what customers want. Defining value without understanding the market is risky; prioritise market research."),
}

// dependencyRules follow the prerequisite links of the catalog: a
// downstream answer should not outrun the answer it builds on.
var dependencyRules = []Rule{
	lowHigh("market-competition", QMarket, 3, QCompetition, 4,
		"competitors cannot be positioned accurately without understanding the market as a whole. Start with the market structure."),
	lowHigh("self-value", QSelfAnalysis, 3, QValueProposition, 4,
		"a convincing value proposition needs a clear view of your own strengths. Make explicit what your weapons are."),
	lowHigh("value-product", QValueProposition, 3, QProductService, 4,
		"the offering was built while what it should deliver is still vague. Redefine the value."),
	lowHigh("value-communication", QValueProposition, 3, QCommunication, 4,
		"there is plenty of messaging but no settled message. Clarify what you want to say first."),
	lowHigh("uniqueness-product", QUniqueness, 3, QProductService, 4,
		"products were built while the point of difference is unclear. Make explicit what sets you apart."),
	lowHigh("communication-inner", QCommunication, 3, QInnerBranding, 4,
		"the brand lives inside the company but does not reach the outside. Strengthen external communication."),
	lowHigh("inner-communication", QInnerBranding, 2.5, QCommunication, 4,
		"employees do not understand the brand while it is promoted externally, risking a gap between words and actions."),
	lowHigh("kpi-results", QKPI, 3, QResults, 4,
		"judging results without measuring them is risky. You cannot tell what works, so success is not repeatable; verify with objective indicators."),
	lowHigh("results-growth", QResults, 2.5, QGrowthIntent, 4,
		"aiming to expand without improving the current state is risky. Secure the footing first."),
}

var categoryRules = []Rule{
	{
		Name: "plan-without-action",
		When: func(p *Profile) bool { return p.Strategy >= 3.5 && p.Execution < 2.5 },
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ Strategy is strong (%s) but execution is weak (%s): a plan that stays on paper. "+
				"Build the execution structure and an action plan urgently.", avg(p.Strategy), avg(p.Execution))
		},
	},
	{
		Name: "action-without-results",
		When: func(p *Profile) bool { return p.Execution >= 3.5 && p.Results < 2.5 },
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ Execution is active (%s) but results are missing (%s): either the direction or the KPIs are wrong. "+
				"Revisit the strategy and run the PDCA cycle.", avg(p.Execution), avg(p.Results))
		},
	},
	{
		Name: "value-not-delivered",
		When: func(p *Profile) bool { return p.Value >= 3.5 && p.Execution < 2.5 },
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ The value is there (%s) but it is not being conveyed (%s): a strong proposition is not reaching the market. "+
				"Revisit the communication strategy.", avg(p.Value), avg(p.Execution))
		},
	},
	{
		Name: "action-without-strategy",
		When: func(p *Profile) bool { return p.Strategy < 2.5 && p.Execution >= 3.0 },
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ Strategy is insufficient (%s) yet execution is under way (%s): activity without a settled direction. "+
				"Firm up the strategy first.", avg(p.Strategy), avg(p.Execution))
		},
	},
}

var protectionRules = []Rule{
	{
		Name: "unprotected-asset",
		When: func(p *Profile) bool {
			return (p.Q(QResults) >= 4 || p.Overall >= 3.5) && p.Q(QIPProtection) < 2.5
		},
		Message: func(p *Profile) string {
			return fmt.Sprintf("⚠️ Results (%s) and brand value are high but IP protection is lacking (%s): "+
				"the brand asset is growing without legal protection and is exposed to imitation.",
				p.pt(QResults), p.pt(QIPProtection))
		},
	},
}

// ContradictionRules returns the full contradiction battery in evaluation
// order: relative, dependency, category, protection.
func ContradictionRules() []Rule {
	var rules []Rule
	rules = append(rules, relativeRules...)
	rules = append(rules, dependencyRules...)
	rules = append(rules, categoryRules...)
	rules = append(rules, protectionRules...)
	return rules
}
