package aireport

import (
	"fmt"
	"strings"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

const systemPrompt = `You are a branding expert reviewing the results of a brand self-assessment questionnaire. You write in a professional, demanding tone and always answer with a single JSON document.`

const notProvided = "not provided"

func orDefault(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return notProvided
	}
	return s
}

func buildUserMessage(in Input, scores diagnosis.ScoreSet) string {
	var b strings.Builder

	b.WriteString("Company:\n")
	fmt.Fprintf(&b, "Name: %s\n", orDefault(in.Company))
	fmt.Fprintf(&b, "Business phase: %s\n", phaseText(in.Phase))

	b.WriteString("\nScores (out of 5):\n")
	for _, q := range diagnosis.Questions() {
		fmt.Fprintf(&b, "%s: %d\n", q.Label, scores.Score(q.ID))
	}
	fmt.Fprintf(&b, "Average: %s\n", diagnosis.FormatScore(diagnosis.Aggregate(scores).Overall))

	b.WriteString("\nManager's memo (challenges and vision):\n")
	b.WriteString(orDefault(in.Memo))
	b.WriteString("\n")

	fmt.Fprintf(&b, `
Instructions:
Analyze the following strictly and concretely:
1. overallComment: assess the average score and the overall situation in 3-4 sentences.
2. contradictions: point out 3-5 inconsistencies between scores (for example a high value proposition with low market understanding).
3. priorityActions: the 3 most urgent actions, most urgent first.
4. strengths: 2-3 strengths among the items scored 4 or higher.
5. weaknesses: 2-3 areas needing improvement among the items scored 2 or lower.
6. recommendations: 5 concrete, executable actions.
7. successPath: one goal each for 3 months, 6 months and 1 year.
8. phaseAdvice: 2-3 sentences of advice specific to the %s phase.

Rules:
- Take the memo into account and refer to the challenges and goals it names.
- Check the memo against the scores and call out any inconsistency firmly.
- Prefer specific, executable proposals over abstract ones.

Answer with JSON only, using exactly these keys: overallComment, contradictions, priorityActions, strengths, weaknesses, recommendations, successPath, phaseAdvice.`, phaseText(in.Phase))

	return b.String()
}

// phaseText shows recognized phases by label and anything else as entered.
func phaseText(raw string) string {
	if p := diagnosis.ParsePhase(raw); p != diagnosis.PhaseUnknown {
		return p.Label()
	}
	return orDefault(raw)
}
