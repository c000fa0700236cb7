// Package tui is the terminal front-end around the topping form.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pizzeria/internal/client"
	"github.com/thenoetrevino/pizzeria/internal/config"
	"github.com/thenoetrevino/pizzeria/internal/tui/toppingform"
)

// Service is what the screen needs from the topping API
type Service interface {
	client.ToppingCreator
	client.ToppingLister
}

// menuRefreshedMsg reports the topping count fetched after a successful add
type menuRefreshedMsg struct {
	count int
	err   error
}

// Model is the root bubbletea model
type Model struct {
	form   toppingform.Model
	keys   config.KeyMappings
	styles Styles

	status Notification
	width  int
}

// InitialModel builds the screen. The form's OnAdded hook refreshes the
// topping count through svc.
func InitialModel(ctx context.Context, svc Service, cfg *config.Config) Model {
	styles := NewStyles(cfg.ColorScheme)
	onAdded := func() tea.Cmd {
		return refreshMenu(ctx, svc)
	}

	return Model{
		form:   toppingform.New(ctx, svc, onAdded, styles.Form),
		keys:   cfg.KeyMappings,
		styles: styles,
	}
}

func refreshMenu(ctx context.Context, lister client.ToppingLister) tea.Cmd {
	return func() tea.Msg {
		toppings, err := lister.ListToppings(ctx)
		if err != nil {
			return menuRefreshedMsg{err: err}
		}
		return menuRefreshedMsg{count: len(toppings)}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case m.keys.Quit, m.keys.ForceQuit:
			return m, tea.Quit
		}

	case menuRefreshedMsg:
		if msg.err != nil {
			slog.Error("Error refreshing toppings", "error", msg.err)
			m.status = Notification{Level: LevelError, Message: "Topping added, but the menu could not be refreshed"}
			return m, nil
		}
		m.status = Notification{Level: LevelInfo, Message: fmt.Sprintf("Topping added (%d on the menu)", msg.count)}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

// Status returns the current status line
func (m Model) Status() Notification {
	return m.status
}

// Form returns the hosted form
func (m Model) Form() toppingform.Model {
	return m.form
}
