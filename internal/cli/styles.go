package cli

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pizzeria/internal/config"
)

var (
	SuccessStyle = lipgloss.NewStyle()
	ErrorStyle   = lipgloss.NewStyle()
	SubtleStyle  = lipgloss.NewStyle()
)

// InitStyles initializes CLI styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))
}
