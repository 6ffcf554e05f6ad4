package diagnosis

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinMemoLength is the shortest memo, in characters, that is analysed.
const MinMemoLength = 10

// ChallengeRule checks a challenge stated in the memo against the score of
// the question that governs it. Consistent is emitted when the score is below
// Threshold, Divergent otherwise.
type ChallengeRule struct {
	Name       string
	Triggers   []string
	Question   QuestionID
	Threshold  float64
	Consistent string
	Divergent  string
}

// VisionRule checks a stated ambition against a feasibility condition.
type VisionRule struct {
	Name     string
	Triggers []string
	Feasible Condition
	Positive func(p *Profile) string
	Negative func(p *Profile) string
}

// Trigger words keep the survey's original Japanese vocabulary next to the
// English one. Matching is case-sensitive substring containment on the raw
// memo, so English triggers must not occur inside common words ("aim" in
// "maintain", "team" in "steam").
var defaultChallengeRules = []ChallengeRule{
	{
		Name:       "awareness",
		Triggers:   []string{"認知", "知名度", "知らない", "届いていない", "awareness", "visibility"},
		Question:   QCommunication,
		Threshold:  3,
		Consistent: "✓ The awareness challenge matches the communication score. Prioritise more exposure to the target audience.",
		Divergent:  "💡 Awareness is named as a challenge, yet the communication score is relatively high. Revisit targeting and the precision of the message.",
	},
	{
		Name:       "differentiation",
		Triggers:   []string{"差別化", "独自性", "競合", "埋もれ", "differentiat", "competitor"},
		Question:   QUniqueness,
		Threshold:  3,
		Consistent: "✓ The differentiation challenge matches the uniqueness score. Define clear differences from competitors and strengthen the appeal.",
		Divergent:  "💡 Differentiation is named as a challenge, yet the uniqueness score is not bad. Improve how the points of difference are communicated.",
	},
	{
		Name:       "organisation",
		Triggers:   []string{"組織", "社内", "従業員", "浸透", "チーム", "employee"},
		Question:   QInnerBranding,
		Threshold:  3,
		Consistent: "✓ The organisational challenge matches the inner-branding score. Run an internal adoption programme and employee training.",
		Divergent:  "💡 The organisation is named as a challenge, yet the inner-branding score is relatively high. Pin down the specific issue.",
	},
	{
		Name:       "results",
		Triggers:   []string{"売上", "成果", "効果", "結果", "ROI", "revenue"},
		Question:   QResults,
		Threshold:  3,
		Consistent: "✓ The results challenge matches the score. Set KPIs, build a way to measure impact and run the PDCA cycle.",
		Divergent:  "💡 Results are named as a challenge, yet the results score is not bad. Analyse the gap between expectations and actual performance.",
	},
	{
		Name:       "market",
		Triggers:   []string{"市場", "顧客", "ニーズ", "ターゲット", "market", "customer"},
		Question:   QMarket,
		Threshold:  3,
		Consistent: "✓ The market-understanding challenge matches the score. Carry out thorough customer research and market analysis.",
		Divergent:  "💡 Market understanding is named as a challenge, yet its score is relatively high. Deeper insight may be what is missing.",
	},
	{
		Name:       "value",
		Triggers:   []string{"価値", "提供", "ベネフィット", "強み", "value proposition", "benefit"},
		Question:   QValueProposition,
		Threshold:  3,
		Consistent: "✓ The value-proposition challenge matches the score. Redefine the concrete value for customers.",
		Divergent:  "💡 The value proposition is named as a challenge, yet its score is relatively high. Improving how it is pitched may help.",
	},
}

var defaultVisionRules = []VisionRule{
	{
		Name:     "growth",
		Triggers: []string{"拡大", "成長", "スケール", "展開", "expand", "growth"},
		Feasible: func(p *Profile) bool { return p.Strategy >= 3.0 && p.Execution >= 3.0 },
		Positive: text("✓ The growth ambition is achievable: strategy and execution are in place. Proceed steadily."),
		Negative: func(p *Profile) string {
			return fmt.Sprintf("⚠️ There is a growth ambition, but the foundation needs work first. Strengthen strategy (%s) and execution (%s).",
				avg(p.Strategy), avg(p.Execution))
		},
	},
	{
		Name:     "new-business",
		Triggers: []string{"新規", "新事業", "新市場", "多角化", "new business", "new market", "diversif"},
		Feasible: func(p *Profile) bool { return p.Overall >= 3.5 },
		Positive: text("✓ There is an ambition for new ventures and the existing business is well founded. Take the challenge while managing risk."),
		Negative: func(p *Profile) string {
			return fmt.Sprintf("⚠️ There is an ambition for new ventures, but consolidating the existing business should come first (overall %s).",
				avg(p.Overall))
		},
	},
	{
		Name:     "rebrand",
		Triggers: []string{"ブランド", "リブランディング", "刷新", "rebrand"},
		Feasible: func(p *Profile) bool { return p.Strategy >= 3.0 },
		Positive: text("✓ There is an ambition to refresh the brand and a strategic foundation to support it. Proceed to plan."),
		Negative: text("⚠️ Before refreshing the brand, firm up the current strategy."),
	},
	{
		Name:     "recognition",
		Triggers: []string{"認知", "知名度向上", "PR", "awareness"},
		Feasible: func(p *Profile) bool { return p.Q(QCommunication) >= 3.0 && p.Q(QValueProposition) >= 3.0 },
		Positive: text("✓ The ambition to raise awareness is achievable: a value proposition and communication base exist."),
		Negative: func(p *Profile) string {
			return fmt.Sprintf("⚠️ Before raising awareness, strengthen the value to convey (%s) and communication (%s).",
				p.pt(QValueProposition), p.pt(QCommunication))
		},
	},
}

var (
	challengeWords = []string{"課題", "問題", "悩み", "困っ", "難しい", "challenge", "problem", "struggl", "difficult"}
	visionWords    = []string{"目指", "展望", "将来", "今後", "目標", "vision", "future", "goal"}
)

const (
	promptNoChallenge = "💡 The scores reveal areas to improve, but no challenges are described. An objective look at the current state is the first step."
	promptNoVision    = "💡 The foundation is good, but no future direction is described. Sketch out the next growth stage."
	confirmBalanced   = "✓ Both challenges and ambitions are clear and at an achievable level. Work on them to a plan."
)

// MemoAnalyzer cross-references the memo with the scores.
type MemoAnalyzer struct {
	Challenges []ChallengeRule
	Visions    []VisionRule
}

// Analyze returns the memo findings. A memo shorter than MinMemoLength
// characters yields an empty list.
func (m *MemoAnalyzer) Analyze(p *Profile) []string {
	out := []string{}
	memo := p.Memo
	if utf8.RuneCountInString(memo) < MinMemoLength {
		return out
	}

	for _, c := range m.Challenges {
		if !containsAny(memo, c.Triggers) {
			continue
		}
		if p.Q(c.Question) < c.Threshold {
			out = append(out, c.Consistent)
		} else {
			out = append(out, c.Divergent)
		}
	}

	for _, v := range m.Visions {
		if !containsAny(memo, v.Triggers) {
			continue
		}
		if v.Feasible(p) {
			out = append(out, v.Positive(p))
		} else {
			out = append(out, v.Negative(p))
		}
	}

	hasChallenges := containsAny(memo, challengeWords)
	hasVisions := containsAny(memo, visionWords)

	if !hasChallenges && p.Overall < 3.0 {
		out = append(out, promptNoChallenge)
	}
	if !hasVisions && p.Overall >= 3.5 {
		out = append(out, promptNoVision)
	}
	if hasChallenges && hasVisions && p.Overall >= 3.0 {
		out = append(out, confirmBalanced)
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
