package diagnosis

// ClassifyRating maps the overall average to a rating tier.
func ClassifyRating(avg float64) Rating {
	switch {
	case avg >= 4.0:
		return RatingExcellent
	case avg >= 3.0:
		return RatingGood
	case avg >= 2.0:
		return RatingNeedsImprovement
	default:
		return RatingUrgent
	}
}

// overallComments is indexed by rating, then by phase. Index PhaseUnknown
// holds the phase-neutral comment.
var overallComments = map[Rating][5]string{
	RatingExcellent: {
		PhaseUnknown:  "You have an excellent brand strategy. Keep these strengths while aiming for further growth.",
		PhaseIdeation: "Outstanding preparation for the ideation stage. Build on this strategic foundation and move the business forward steadily.",
		PhaseLaunch:   "An excellent brand strategy for the launch stage. Use these strengths to accelerate market penetration.",
		PhaseGrowth:   "An ideal brand foundation for the growth stage. Keep these strengths while pursuing further expansion.",
		PhaseReview:   "Remarkable for a business under review. The strategic foundation is solid, so a change of direction should go smoothly.",
	},
	RatingGood: {
		PhaseUnknown:  "There is a good brand foundation with room to improve. Reinforcing the weak points will make the brand stronger still.",
		PhaseIdeation: "A good start for the ideation stage. Strengthening a few areas will make the launch more reliable.",
		PhaseLaunch:   "A good brand foundation for the launch stage. Reinforcing the weak points will raise your presence in the market.",
		PhaseGrowth:   "A foundation is in place for the growth stage, but there is room to improve. Shore up the weak points before scaling.",
		PhaseReview:   "A good moment to review. The foundation exists, and revisiting a few areas will put you on a new growth track.",
	},
	RatingNeedsImprovement: {
		PhaseUnknown:  "The brand strategy needs revisiting. Focus on the lowest-scoring items and draw up an improvement plan.",
		PhaseIdeation: "It is fortunate to notice this while still in ideation. Firming up the strategic foundation before launch is the key to success.",
		PhaseLaunch:   "Issues are visible at launch. Improving early prevents initial failures; prioritise a strategy review.",
		PhaseGrowth:   "The business is growing, but the foundation is fragile. Rebuild the brand strategy before expanding further.",
		PhaseReview:   "As you already recognise, a review is needed. Work on a fundamental rebuild of the strategy.",
	},
	RatingUrgent: {
		PhaseUnknown:  "The brand strategy needs a fundamental overhaul. Working with a specialist is strongly recommended.",
		PhaseIdeation: "A fundamental rethink is needed before launch. Start from market, competitor and self-analysis and build the strategy from scratch.",
		PhaseLaunch:   "Continuing as is would be risky. Pause, overhaul the brand strategy, and consider specialist support.",
		PhaseGrowth:   "The business is growing on a very fragile brand foundation. Pause expansion and make rebuilding the strategy the top priority.",
		PhaseReview:   "An urgent, fundamental review is required; the business will struggle to continue as it is. Rebuild the strategy with a specialist.",
	},
}

// OverallComment returns the comment for a rating tier in the given phase,
// falling back to the phase-neutral text for an unknown phase.
func OverallComment(r Rating, phase Phase) string {
	variants, ok := overallComments[r]
	if !ok {
		return ""
	}
	if phase < PhaseUnknown || phase > PhaseReview {
		phase = PhaseUnknown
	}
	return variants[phase]
}
