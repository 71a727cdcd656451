package app

import "github.com/charmbracelet/lipgloss"

// Summary colors.
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	colorError   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"}
)

// Styles contains the lipgloss styles used by the summary renderer.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Skipped lipgloss.Style
	Reason  lipgloss.Style
}

// DefaultStyles returns the default summary styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Failure: lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Skipped: lipgloss.NewStyle().Foreground(colorMuted),
		Reason:  lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
