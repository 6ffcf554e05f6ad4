package diagnosis

import "fmt"

var remediationPath = []string{
	"🎯 Step 1: Lay the strategic foundation with a 3C analysis (2 months)",
	"🎯 Step 2: Clarify the value proposition and points of difference (1 month)",
	"🎯 Step 3: Write brand guidelines and roll them out internally (2 months)",
	"🎯 Step 4: Execute communication initiatives and measure KPIs (ongoing)",
}

var reinforcementSteps = []Rule{
	{Name: "strategy", When: func(p *Profile) bool { return p.Strategy < 3.0 },
		Message: text("🎯 Priority: strengthen the strategic base → dig deeper into market, competitor and self-analysis")},
	{Name: "execution", When: func(p *Profile) bool { return p.Execution < 3.0 },
		Message: text("🎯 Priority: strengthen execution → brand guidelines and consistent communication")},
	{Name: "results", When: func(p *Profile) bool { return p.Results < 3.0 },
		Message: text("🎯 Priority: systematise measurement → KPI setting and monthly reviews")},
}

// SuccessPath selects exactly one path variant by overall-average tier.
func SuccessPath(p *Profile) []string {
	switch {
	case p.Overall < 2.5:
		out := make([]string, len(remediationPath))
		copy(out, remediationPath)
		return out
	case p.Overall < 3.5:
		out := Evaluate(reinforcementSteps, p)
		return append(out, "🎯 Next step: once the weak points are reinforced, extend the strengths further")
	default:
		out := []string{"🎯 Now: there is a strong foundation. Maintain these strengths"}
		if p.Q(QIPProtection) < 3.0 {
			out = append(out, "🎯 Next step: legal protection of brand assets (trademark registration and similar)")
		}
		if p.Q(QGrowthIntent) >= 4.0 {
			out = append(out, "🎯 Growth phase: you are ready to consider new markets and new businesses")
		} else {
			out = append(out, "🎯 Next step: formulate a growth strategy and an execution plan")
		}
		return out
	}
}

const genericPhaseAdvice = "Prioritise improvements to match your current business phase and work through them in order."

// PhaseAdvice returns the phase template, extended with a conditional clause
// when the phase-relevant score is below its threshold.
func PhaseAdvice(p *Profile) string {
	switch p.Phase {
	case PhaseIdeation:
		s := "[Ideation] A 3C analysis of market, competitors and company matters most. Polish a unique value proposition and build a solid brand foundation."
		if p.Strategy < 3.0 {
			s += fmt.Sprintf(" In particular, raising the strategic base (currently %s) to 3.0 or above is the key to success.", avg(p.Strategy))
		}
		return s
	case PhaseLaunch:
		s := "[Launch] Raising brand awareness is the top priority. Penetrate the market with a consistent message and focus on relationships with early customers."
		if p.Execution < 3.0 {
			s += fmt.Sprintf(" Strengthen the communication strategy (currently %s) to reach the target audience.", avg(p.Execution))
		}
		return s
	case PhaseGrowth:
		s := "[Growth] Scaling while keeping quality is what matters. Strengthen inner branding so the whole organisation embodies the brand value."
		if p.Q(QInnerBranding) < 3.0 {
			s += fmt.Sprintf(" Fast growth risks internal adoption (currently %s) falling behind; speed up employee training.", p.pt(QInnerBranding))
		}
		return s
	case PhaseReview:
		s := "[Review] Reassess changes in the market and your own strengths. Consider repositioning or refreshing the brand and look for new growth opportunities."
		if p.Strategy < 3.0 {
			s += " Start by redoing the 3C analysis and rebuild the strategy around the changed environment."
		}
		return s
	default:
		return genericPhaseAdvice
	}
}
