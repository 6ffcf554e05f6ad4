// Package output provides styled terminal rendering for brandcheck.
package output

import "github.com/charmbracelet/lipgloss"

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for the top rating tier and high scores.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for urgent ratings and low scores.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for middling scores.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorCaution sits between warning and error.
	ColorCaution = lipgloss.Color("#ffb74d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader  lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleCaution lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleBold    lipgloss.Style

	// StyleLabel is used for metric labels.
	StyleLabel lipgloss.Style
)

func init() {
	SetNoColor(false)
}

var noColor bool

// SetNoColor disables or enables color output globally by reassigning the
// package-level styles.
func SetNoColor(disabled bool) {
	noColor = disabled
	plain := lipgloss.NewStyle()
	if disabled {
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleCaution = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(22)
		return
	}
	StyleHeader = plain.Foreground(ColorPrimary).Bold(true)
	StyleSuccess = plain.Foreground(ColorSuccess)
	StyleError = plain.Foreground(ColorError)
	StyleWarning = plain.Foreground(ColorWarning)
	StyleCaution = plain.Foreground(ColorCaution)
	StyleMuted = plain.Foreground(ColorMuted)
	StyleBold = plain.Bold(true)
	StyleLabel = plain.Width(22)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
