package toppingform

import (
	"context"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pizzeria/internal/client"
)

// fakeCreator records every CreateTopping call and answers with result
type fakeCreator struct {
	mu     sync.Mutex
	names  []string
	result client.Result
}

func (f *fakeCreator) CreateTopping(_ context.Context, name string) client.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = append(f.names, name)
	return f.result
}

func (f *fakeCreator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...)
}

// addedCounter counts OnAdded invocations
type addedCounter struct {
	n int
}

func (c *addedCounter) hook() tea.Cmd {
	c.n++
	return nil
}

func newForm(t *testing.T, creator *fakeCreator) (Model, *addedCounter) {
	t.Helper()
	counter := &addedCounter{}
	return New(context.Background(), creator, counter.hook, Styles{}), counter
}

func enter() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
}

// submit presses enter and runs the resulting command through Update,
// the way the program would deliver it
func submit(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := m.Update(enter())
	require.NotNil(t, cmd, "expected a submit command")
	m, _ = m.Update(cmd())
	return m
}

func TestSubmit_SuccessClearsFieldAndNotifiesOnce(t *testing.T) {
	creator := &fakeCreator{result: client.Ok()}
	m, added := newForm(t, creator)

	m = m.SetName("Pepperoni")
	m = submit(t, m)

	assert.Equal(t, []string{"Pepperoni"}, creator.calls())
	assert.Equal(t, "", m.Name())
	assert.Equal(t, "", m.ErrorMessage())
	assert.Equal(t, 1, added.n)
	assert.Equal(t, Idle, m.Phase())
}

func TestSubmit_FailureShowsServerMessage(t *testing.T) {
	creator := &fakeCreator{result: client.Err("Topping already exists")}
	m, added := newForm(t, creator)

	m = m.SetName("Olives")
	m = submit(t, m)

	assert.Equal(t, "Olives", m.Name(), "name should survive a failed submission")
	assert.Equal(t, "Topping already exists", m.ErrorMessage())
	assert.Equal(t, 0, added.n)
	assert.Contains(t, m.View(), "Topping already exists")
}

func TestSubmit_FailureWithoutMessageUsesFallback(t *testing.T) {
	creator := &fakeCreator{result: client.Err("")}
	m, added := newForm(t, creator)

	m = m.SetName("Olives")
	m = submit(t, m)

	assert.Equal(t, client.FallbackErrorMessage, m.ErrorMessage())
	assert.Equal(t, "An error occurred.", m.ErrorMessage())
	assert.Equal(t, "Olives", m.Name())
	assert.Equal(t, 0, added.n)
}

func TestSubmit_EmptyNameSendsNothing(t *testing.T) {
	creator := &fakeCreator{result: client.Ok()}
	m, added := newForm(t, creator)

	m, cmd := m.Update(enter())

	assert.Nil(t, cmd)
	assert.Empty(t, creator.calls())
	assert.Equal(t, 0, added.n)
	assert.Equal(t, Idle, m.Phase())
	assert.Contains(t, m.View(), requiredText)

	m = m.SetName("B")
	assert.NotContains(t, m.View(), requiredText, "typing should clear the required hint")
}

func TestSubmit_NameSentAsTyped(t *testing.T) {
	creator := &fakeCreator{result: client.Ok()}
	m, _ := newForm(t, creator)

	m = m.SetName("  Basil ")
	_ = submit(t, m)

	assert.Equal(t, []string{"  Basil "}, creator.calls())
}

func TestSubmit_OneRequestPerSubmission(t *testing.T) {
	creator := &fakeCreator{result: client.Ok()}
	m, added := newForm(t, creator)

	m = m.SetName("Ham")
	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)
	assert.Equal(t, Submitting, m.Phase())

	// A second enter while the first request is in flight is ignored
	m, second := m.Update(enter())
	assert.Nil(t, second)

	m, _ = m.Update(cmd())

	assert.Len(t, creator.calls(), 1)
	assert.Equal(t, 1, added.n)
	assert.Equal(t, Idle, m.Phase())
}

func TestSubmit_SuccessClearsPreviousError(t *testing.T) {
	creator := &fakeCreator{result: client.Err("Topping 'Olives' already exists.")}
	m, added := newForm(t, creator)

	m = m.SetName("Olives")
	m = submit(t, m)
	require.Equal(t, "Topping 'Olives' already exists.", m.ErrorMessage())

	creator.result = client.Ok()
	m = m.SetName("Anchovies")
	m = submit(t, m)

	assert.Equal(t, "", m.ErrorMessage())
	assert.Equal(t, "", m.Name())
	assert.NotContains(t, m.View(), "already exists")
	assert.Equal(t, 1, added.n)
}

func TestSubmit_ErrorIsReplacedNotAccumulated(t *testing.T) {
	creator := &fakeCreator{result: client.Err("first")}
	m, _ := newForm(t, creator)

	m = m.SetName("X")
	m = submit(t, m)
	creator.result = client.Err("second")
	m = submit(t, m)

	assert.Equal(t, "second", m.ErrorMessage())
	view := m.View()
	assert.Contains(t, view, "second")
	assert.NotContains(t, view, "first")
}

func TestSubmit_NilOnAdded(t *testing.T) {
	creator := &fakeCreator{result: client.Ok()}
	m := New(context.Background(), creator, nil, Styles{})

	m = m.SetName("Mushroom")
	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)
	m, after := m.Update(cmd())

	assert.Nil(t, after)
	assert.Equal(t, "", m.Name())
}

func TestSubmit_OnAddedCommandIsReturned(t *testing.T) {
	type refreshed struct{}
	creator := &fakeCreator{result: client.Ok()}
	m := New(context.Background(), creator, func() tea.Cmd {
		return func() tea.Msg { return refreshed{} }
	}, Styles{})

	m = m.SetName("Onion")
	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)
	_, after := m.Update(cmd())

	require.NotNil(t, after)
	assert.IsType(t, refreshed{}, after())
}

func TestTyping_UpdatesName(t *testing.T) {
	creator := &fakeCreator{result: client.Ok()}
	m, _ := newForm(t, creator)

	for _, r := range "Feta" {
		m, _ = m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}

	assert.Equal(t, "Feta", m.Name())
}

func TestTyping_AllowedWhileSubmitting(t *testing.T) {
	creator := &fakeCreator{result: client.Err("nope")}
	m, _ := newForm(t, creator)

	m = m.SetName("Kale")
	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)

	m = m.SetName("Kale!")
	assert.Equal(t, Submitting, m.Phase())

	m, _ = m.Update(cmd())
	assert.Equal(t, "Kale!", m.Name())
	assert.Equal(t, []string{"Kale"}, creator.calls())
}

func TestView_PendingLabel(t *testing.T) {
	creator := &fakeCreator{result: client.Ok()}
	m, _ := newForm(t, creator)

	assert.Contains(t, m.View(), submitLabel)

	m = m.SetName("Corn")
	m, _ = m.Update(enter())
	assert.Contains(t, m.View(), pendingLabel)
}

func TestFormState(t *testing.T) {
	var s FormState
	s.SetName("Olives")
	s.Fail("")
	assert.Equal(t, client.FallbackErrorMessage, s.ErrorMessage())
	assert.Equal(t, "Olives", s.Name())
	assert.True(t, s.HasError())

	s.Succeed()
	assert.Equal(t, "", s.Name())
	assert.False(t, s.HasError())
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Idle, "idle"},
		{Submitting, "submitting"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.phase.String())
	}
}
