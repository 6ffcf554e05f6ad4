package diagnosis

import "fmt"

// minRecommendations is the length the recommendation list is filled up to
// before the cap is applied.
const minRecommendations = 3

// recommendationFillers are appended in order while the list is short. The
// quarterly check always comes first. The other two exist because zero or one
// firing rules would otherwise leave fewer than minRecommendations entries.
var recommendationFillers = []string{
	"Run a brand check every quarter and keep improving",
	"Share these results across the team and agree on the next improvement theme",
	"Keep a record of brand initiatives so their effect can be compared over time",
}

var recommendationRules = []Rule{
	{Name: "strategy", When: func(p *Profile) bool { return p.Strategy < 3.0 },
		Message: text("Run a 3C analysis (customers, competitors, company) to lay the strategic foundation")},
	{Name: "value", When: func(p *Profile) bool { return p.Value < 3.0 },
		Message: text("Interview customers to clarify and differentiate the value proposition")},
	{Name: "execution", When: func(p *Profile) bool { return p.Execution < 3.0 },
		Message: text("Write brand guidelines and communicate consistently")},
	{Name: "results", When: func(p *Profile) bool { return p.Results < 3.0 },
		Message: text("Set three to five KPIs and measure their effect monthly")},
	{Name: "ip", When: func(p *Profile) bool { return p.Q(QIPProtection) < 3 },
		Message: text("Protect intellectual property with trademark registration and design rights")},
}

// Recommendations returns the capped recommendation list. Fillers are
// appended before the cap is applied.
func Recommendations(p *Profile) []string {
	out := Evaluate(recommendationRules, p)
	for i := 0; len(out) < minRecommendations && i < len(recommendationFillers); i++ {
		out = append(out, recommendationFillers[i])
	}
	return capList(out, MaxRecommendations)
}

// Urgency labels embedded in priority actions.
const (
	urgencyCritical  = "[Most urgent]"
	urgencyImportant = "[Important]"
	urgencyMedium    = "[Medium]"
)

var priorityRules = []Rule{
	{Name: "strategy-floor", When: func(p *Profile) bool { return p.Strategy < 2.0 },
		Message: text(urgencyCritical + " Start a 3C analysis of market, competitors and company now (within one week)")},
	{Name: "value-floor", When: func(p *Profile) bool { return p.Value < 2.0 },
		Message: text(urgencyCritical + " Interview five to ten customers and redefine the value (within two weeks)")},
	{Name: "contradictions", When: func(p *Profile) bool { return p.ContradictionCount >= 3 },
		Message: func(p *Profile) string {
			return fmt.Sprintf("%s %d contradictions detected: improve in logical order", urgencyImportant, p.ContradictionCount)
		}},
	{Name: "plan-to-action", When: func(p *Profile) bool { return p.Strategy >= 3.5 && p.Execution < 2.5 },
		Message: text(urgencyImportant + " Write an action plan that puts the strategy into practice (within one month)")},
	{Name: "kpi", When: func(p *Profile) bool { return p.Execution >= 3.0 && p.Q(QKPI) < 2.5 },
		Message: text(urgencyImportant + " Set three to five KPIs to measure impact (within two weeks)")},
	{Name: "inner-branding", When: func(p *Profile) bool { return p.Q(QInnerBranding) < 2.5 && p.Overall >= 3.0 },
		Message: text(urgencyMedium + " Run an internal brand adoption programme (three-month plan)")},
	{Name: "ip", When: func(p *Profile) bool { return p.Q(QIPProtection) < 2.5 && p.Overall >= 3.5 },
		Message: text(urgencyMedium + " Consider trademark registration and other IP protection (consult a specialist)")},
}

// PriorityActions returns every priority action that fires, uncapped.
func PriorityActions(p *Profile) []string {
	return Evaluate(priorityRules, p)
}

var riskRules = []Rule{
	{Name: "wasted-resources", When: func(p *Profile) bool { return p.Strategy < 2.5 && p.Execution >= 3.0 },
		Message: text("🚨 High risk: executing without a clear direction. Resources are being wasted.")},
	{Name: "results-disconnect", When: func(p *Profile) bool { return p.Execution >= 3.0 && p.Results < 2.0 },
		Message: text("🚨 High risk: initiatives are not turning into results. The strategy needs revisiting.")},
	{Name: "legal", When: func(p *Profile) bool {
		return p.Q(QIPProtection) < 2.0 && (p.Overall >= 3.5 || p.Q(QResults) >= 4.0)
	},
		Message: text("🚨 Legal risk: the brand asset is growing but unprotected and exposed to imitation.")},
	{Name: "organisational", When: func(p *Profile) bool { return p.Q(QInnerBranding) < 2.0 && p.Q(QCommunication) >= 4.0 },
		Message: text("🚨 Organisational risk: internal and external messages diverge, which can damage the brand.")},
	{Name: "structural", When: func(p *Profile) bool { return p.ContradictionCount >= 5 },
		Message: func(p *Profile) string {
			return fmt.Sprintf("🚨 Structural problem: %d serious contradictions. A fundamental review is needed.", p.ContradictionCount)
		}},
}

// RiskAlerts returns every risk alert that fires, uncapped.
func RiskAlerts(p *Profile) []string {
	return Evaluate(riskRules, p)
}
