package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

// ScoreBar renders a bar for a score on the 1-5 scale.
// Example: "████████░░ 4.0"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(score / diagnosis.MaxScore * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", scoreStyle(score).Render(bar), StyleBold.Render(diagnosis.FormatScore(score)))
}

// scoreStyle colors a 1-5 score with the rating tier thresholds.
func scoreStyle(score float64) lipgloss.Style {
	return RatingStyle(diagnosis.ClassifyRating(score))
}

// RatingStyle returns the style for a rating tier.
func RatingStyle(r diagnosis.Rating) lipgloss.Style {
	switch r {
	case diagnosis.RatingExcellent:
		return StyleSuccess
	case diagnosis.RatingGood:
		return StyleWarning
	case diagnosis.RatingNeedsImprovement:
		return StyleCaution
	default:
		return StyleError
	}
}

// RatingBadge renders a rating label styled by its tier.
func RatingBadge(r diagnosis.Rating) string {
	return RatingStyle(r).Bold(!noColor).Render(r.Label())
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Bullets renders items as an indented list. An empty list renders the
// placeholder in muted style.
func Bullets(items []string, placeholder string) string {
	if len(items) == 0 {
		return "   " + StyleMuted.Render(placeholder) + "\n"
	}
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString("   • ")
		sb.WriteString(it)
		sb.WriteString("\n")
	}
	return sb.String()
}
