package aireport

import "github.com/huvdesign/brandcheck/internal/llm"

func stringArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items":       map[string]any{"type": "string"},
	}
}

// ReportSchema is the structured output requested from the model.
var ReportSchema = &llm.Schema{
	Name:        "brand_report",
	Description: "Expert brand diagnosis for one questionnaire",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallComment": map[string]any{
				"type":        "string",
				"description": "Overall assessment in 3-4 sentences",
			},
			"contradictions":  stringArray("3-5 inconsistencies between scores"),
			"priorityActions": stringArray("The 3 most urgent actions, most urgent first"),
			"strengths":       stringArray("2-3 strengths among items scored 4 or higher"),
			"weaknesses":      stringArray("2-3 weaknesses among items scored 2 or lower"),
			"recommendations": stringArray("5 concrete, actionable improvements"),
			"successPath":     stringArray("Goals for 3 months, 6 months and 1 year"),
			"phaseAdvice": map[string]any{
				"type":        "string",
				"description": "2-3 sentences of advice specific to the business phase",
			},
		},
		"required": []string{
			"overallComment", "contradictions", "priorityActions", "strengths",
			"weaknesses", "recommendations", "successPath", "phaseAdvice",
		},
		"additionalProperties": false,
	},
}
