package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	validStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

func verdict(ok bool) string {
	if ok {
		return validStyle.Render("valid")
	}
	return invalidStyle.Render("invalid")
}
