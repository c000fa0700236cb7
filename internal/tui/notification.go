package tui

import "charm.land/lipgloss/v2"

// Level is the severity of a status line
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is the status line shown under the form
type Notification struct {
	Level   Level
	Message string
}

// IsZero reports whether there is nothing to show
func (n Notification) IsZero() bool {
	return n.Message == ""
}

// renderInline renders a compact single-line notification
func (s Styles) renderInline(n Notification) string {
	icon, style := "🔔", s.Info
	if n.Level == LevelError {
		icon, style = "✕", s.Error
	}
	return style.Render(icon + " " + n.Message)
}

func inlineStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}
