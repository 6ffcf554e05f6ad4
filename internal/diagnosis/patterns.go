package diagnosis

// FailurePatternRules returns the named anti-pattern battery in evaluation
// order.
func FailurePatternRules() []Rule {
	return []Rule{
		{Name: "strategy-less-execution",
			When: func(p *Profile) bool { return p.Strategy < 2.5 && p.Execution >= 3.0 },
			Message: text("❌ [Execution without strategy] Activity is running without a settled direction. " +
				"The risk of wasting resources is high.")},
		{Name: "how-before-what",
			When: func(p *Profile) bool { return p.Q(QValueProposition) < 2.5 && p.Q(QCommunication) >= 3.5 },
			Message: text("❌ [How before what] Messages go out while the value to convey is still vague. " +
				"Clarify the message first.")},
		{Name: "execution-without-measurement",
			When: func(p *Profile) bool { return p.Execution >= 3.0 && p.Q(QKPI) < 2.5 },
			Message: text("❌ [Execution without measurement] Initiatives continue without verifying their effect. " +
				"You cannot improve what you do not know is working.")},
		{Name: "outward-only",
			When: func(p *Profile) bool { return p.Q(QCommunication) >= 4.0 && p.Q(QInnerBranding) < 2.5 },
			Message: text("❌ [Outward only] Effort goes into external audiences while the organisation is left behind. " +
				"Employee behaviour will drift from the message.")},
		{Name: "unprotected-growing-asset",
			When: func(p *Profile) bool { return p.Overall >= 3.5 && p.Q(QIPProtection) < 2.0 },
			Message: text("❌ [Unprotected asset] The brand asset is growing with no legal protection. " +
				"It is exposed to imitation.")},
		{Name: "premature-scaling",
			When: func(p *Profile) bool { return p.Strategy < 2.5 && p.Q(QGrowthIntent) >= 4.0 },
			Message: text("❌ [Too much haste] Expansion is being rushed on a weak foundation. " +
				"Secure the base before aiming for growth.")},
		{Name: "market-only-blindness",
			When: func(p *Profile) bool {
				return p.Q(QMarket) >= 4.0 && p.Q(QCompetition) < 2.5 && p.Q(QSelfAnalysis) < 2.5
			},
			Message: text("❌ [Market only] The market is visible but competitors and your own company are not. " +
				"No strategy can be formed this way.")},
	}
}
