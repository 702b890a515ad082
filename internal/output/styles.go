package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorCyan   = lipgloss.Color("14")
	ColorGreen  = lipgloss.Color("10")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("204")
)

// Semantic styles.
var (
	// StyleNoun styles paths, package names and class names.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles hints and secondary detail.
	StyleDim = lipgloss.NewStyle().Faint(true)

	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleFailure = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
)

// FormatSuccess renders a green checkmark followed by msg.
func FormatSuccess(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreen).Render("✔")
	return check + " " + msg
}

// FormatFailure renders msg with a red cross.
func FormatFailure(msg string) string {
	return StyleFailure.Render("✖ " + msg)
}

// FormatWarning renders a warning bullet.
func FormatWarning(msg string) string {
	return StyleWarning.Render("! ") + msg
}

// FormatHint renders a dimmed follow-up line.
func FormatHint(msg string) string {
	return StyleDim.Render("  " + msg)
}
