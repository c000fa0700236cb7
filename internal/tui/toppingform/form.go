// Package toppingform implements the single-field form that adds a topping.
//
// The form owns its state exclusively. A submission issues one create request;
// success clears the field and calls the caller's OnAdded hook, failure shows
// the server's message inline and keeps the typed name for a retry. Failures
// never leave the form.
package toppingform

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pizzeria/internal/client"
)

// Placeholder is the hint shown in the empty field
const Placeholder = "New Topping Name"

// AddedFunc is called once per successful submission. The returned command,
// if any, is run by the program; callers use it to refresh their own views.
type AddedFunc func() tea.Cmd

// submittedMsg carries the outcome of a create request back into Update
type submittedMsg struct {
	result client.Result
}

// Model is the topping submission form
type Model struct {
	ctx     context.Context
	service client.ToppingCreator
	onAdded AddedFunc

	state FormState
	phase Phase
	input textinput.Model

	// requiredHint is set when an empty submission was refused
	requiredHint bool

	styles Styles
}

// New creates a focused, empty form that submits through service.
// onAdded may be nil.
func New(ctx context.Context, service client.ToppingCreator, onAdded AddedFunc, styles Styles) Model {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		ctx:     ctx,
		service: service,
		onAdded: onAdded,
		phase:   Idle,
		input:   ti,
		styles:  styles,
	}
}

// Update handles key presses and submission outcomes. Enter submits; every
// other key goes to the text field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return m.handleResult(msg.result)

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return m.Submit()
		}
	}

	// The field stays editable while a request is in flight
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.state.Name() {
		m = m.fieldChanged(value)
	}
	return m, cmd
}

// SetName sets the field value as if the user had typed it
func (m Model) SetName(value string) Model {
	m.input.SetValue(value)
	return m.fieldChanged(value)
}

func (m Model) fieldChanged(value string) Model {
	m.state.SetName(value)
	m.requiredHint = false
	return m
}

// Submit sends the current name. An empty name or a request already in
// flight means nothing is sent. The name is sent exactly as typed.
func (m Model) Submit() (Model, tea.Cmd) {
	if m.phase == Submitting {
		return m, nil
	}
	name := m.state.Name()
	if name == "" {
		m.requiredHint = true
		return m, nil
	}

	m.phase = Submitting
	ctx, service := m.ctx, m.service
	return m, func() tea.Msg {
		return submittedMsg{result: service.CreateTopping(ctx, name)}
	}
}

func (m Model) handleResult(result client.Result) (Model, tea.Cmd) {
	m.phase = Idle

	if !result.IsOk() {
		m.state.Fail(result.Message())
		return m, nil
	}

	m.state.Succeed()
	m.input.SetValue("")
	if m.onAdded == nil {
		return m, nil
	}
	return m, m.onAdded()
}

// Name returns the current field value
func (m Model) Name() string {
	return m.state.Name()
}

// ErrorMessage returns the displayed error text, empty when there is none
func (m Model) ErrorMessage() string {
	return m.state.ErrorMessage()
}

// Phase returns the current submit phase
func (m Model) Phase() Phase {
	return m.phase
}
