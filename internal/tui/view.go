package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pizzeria/internal/config"
	"github.com/thenoetrevino/pizzeria/internal/tui/toppingform"
)

const title = "Add a topping"

// Styles holds every style of the screen
type Styles struct {
	Title lipgloss.Style
	Help  lipgloss.Style
	Info  lipgloss.Style
	Error lipgloss.Style
	Form  toppingform.Styles
}

// NewStyles builds styles from the configured colors
func NewStyles(colors config.ColorScheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Title)).
			Bold(true).
			MarginBottom(1),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Subtle)),
		Info:  inlineStyle(colors.InfoFg, colors.InfoBg),
		Error: inlineStyle(colors.ErrorFg, colors.ErrorBg),
		Form:  toppingform.NewStyles(colors.Accent, colors.Subtle, colors.ErrorFg),
	}
}

func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.form.View())
	b.WriteString("\n\n")

	if !m.status.IsZero() {
		b.WriteString(m.styles.renderInline(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("enter: add • " + m.keys.Quit + ": quit"))

	content := b.String()
	if m.width > 0 {
		content = lipgloss.NewStyle().MaxWidth(m.width).Render(content)
	}
	return content
}
