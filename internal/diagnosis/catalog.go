package diagnosis

// QuestionID is the 1-based ordinal of a survey question.
type QuestionID int

const (
	QMarket QuestionID = iota + 1
	QCompetition
	QSelfAnalysis
	QValueProposition
	QUniqueness
	QProductService
	QCommunication
	QInnerBranding
	QKPI
	QResults
	QIPProtection
	QGrowthIntent
)

// NumQuestions is the fixed size of the questionnaire.
const NumQuestions = 12

// Question is one catalog entry. Prerequisite names the question whose score
// is expected to ground this one; zero means none.
type Question struct {
	ID           QuestionID `json:"id"`
	Key          string     `json:"key"`
	Label        string     `json:"label"`
	Statement    string     `json:"statement"`
	Category     Category   `json:"category"`
	Prerequisite QuestionID `json:"prerequisite,omitempty"`
}

// HasPrerequisite reports whether the question depends on another one.
func (q Question) HasPrerequisite() bool {
	return q.Prerequisite != 0
}

var catalog = [NumQuestions]Question{
	{QMarket, "market_understanding", "Market understanding",
		"Our ideal customer is clearly defined and shared across the company.",
		CategoryStrategy, 0},
	{QCompetition, "competitive_analysis", "Competitive analysis",
		"We can explain in words how we differ from our main competitors.",
		CategoryStrategy, QMarket},
	{QSelfAnalysis, "self_analysis", "Self-analysis",
		"We know our strengths and weaknesses well enough to explain them to an outsider.",
		CategoryStrategy, QMarket},
	{QValueProposition, "value_proposition", "Value proposition",
		"Who we serve, what value we deliver and why we can deliver it is written down.",
		CategoryValue, QSelfAnalysis},
	{QUniqueness, "uniqueness", "Uniqueness",
		"We have a meaning or world view that competitors cannot copy.",
		CategoryValue, QCompetition},
	{QProductService, "product_service", "Product & service",
		"Our products and services are consistent with the brand's philosophy.",
		CategoryValue, QValueProposition},
	{QCommunication, "communication", "Communication",
		"The brand message is consistent across web, sales, hiring and every other channel.",
		CategoryExecution, QValueProposition},
	{QInnerBranding, "inner_branding", "Inner branding",
		"Employees understand the brand's value and embody it in daily work.",
		CategoryExecution, QCommunication},
	{QKPI, "kpi_management", "KPI management",
		"We monitor brand goals and indicators on a regular schedule.",
		CategoryExecution, 0},
	{QResults, "results", "Results",
		"Brand initiatives have visibly moved sales, hiring or customer satisfaction.",
		CategoryResults, QKPI},
	{QIPProtection, "ip_protection", "IP protection",
		"We pay attention to legal protection (trademarks, designs) of our name, logo and design.",
		CategoryResults, 0},
	{QGrowthIntent, "growth_intent", "Growth intent",
		"We intend to grow the brand as a company asset.",
		CategoryResults, QResults},
}

// Questions returns a copy of the catalog in id order.
func Questions() []Question {
	out := make([]Question, NumQuestions)
	copy(out, catalog[:])
	return out
}

// QuestionByID looks up a catalog entry.
func QuestionByID(id QuestionID) (Question, bool) {
	if id < 1 || int(id) > NumQuestions {
		return Question{}, false
	}
	return catalog[id-1], true
}

// CategoryMembers returns the three question ids of a category.
func CategoryMembers(c Category) []QuestionID {
	var ids []QuestionID
	for _, q := range catalog {
		if q.Category == c {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

func label(id QuestionID) string {
	return catalog[id-1].Label
}
