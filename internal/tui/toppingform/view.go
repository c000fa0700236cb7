package toppingform

import (
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	submitLabel  = "Add Topping"
	pendingLabel = "Adding..."
	requiredText = "Please fill out this field."
)

// Styles controls how the form renders. The zero value renders unstyled.
type Styles struct {
	Field  lipgloss.Style
	Button lipgloss.Style
	Busy   lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
}

// NewStyles builds form styles from hex colors
func NewStyles(accent, subtle, errorFg string) Styles {
	return Styles{
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true),
		Busy: lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorFg)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)),
	}
}

// View renders the input, the submit control and, below them, the current
// error text. Only the latest error is shown.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Field.Render(m.input.View()))
	b.WriteString("\n")

	if m.phase == Submitting {
		b.WriteString(m.styles.Busy.Render(pendingLabel))
	} else {
		b.WriteString(m.styles.Button.Render("[ " + submitLabel + " ]"))
	}

	if m.requiredHint {
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render(requiredText))
	}

	if m.state.HasError() {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.state.ErrorMessage()))
	}

	return b.String()
}
