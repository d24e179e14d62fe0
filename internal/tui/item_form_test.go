package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
	"github.com/stretchr/testify/assert"
)

var (
	formMembers = []domain.Member{
		{ID: "m-1", FirstName: "Grace", LastName: "Hopper"},
		{ID: "m-2", FirstName: "Linus", LastName: "Torvalds"},
	}
	formCategories = []domain.AgendaItemCategory{
		{ID: "cat-1", Name: "Logistics"},
		{ID: "cat-2", Name: "Speakers"},
	}
)

func TestItemForm_CreateFields(t *testing.T) {
	f := newItemForm(store.ItemForm{DueDate: "2024-05-06"}, true, formMembers, formCategories)

	view := f.View()
	assert.Contains(t, view, "Category")
	assert.NotContains(t, view, "Post Completion Notes")
	assert.NotContains(t, view, "Completed")
	assert.Equal(t, "2024-05-06", f.Values().DueDate)
	assert.Empty(t, f.Values().AssigneeID)
}

func TestItemForm_UpdateFields(t *testing.T) {
	values := store.ItemForm{AssigneeID: "m-2", CategoryID: "cat-1", PreCompletionNotes: "Before", IsCompleted: true}
	f := newItemForm(values, false, formMembers, formCategories)

	view := f.View()
	assert.NotContains(t, view, "Category")
	assert.Contains(t, view, "Post Completion Notes")
	assert.Contains(t, view, "[x] Completed")

	got := f.Values()
	assert.Equal(t, "m-2", got.AssigneeID)
	assert.Equal(t, "Before", got.PreCompletionNotes)
	assert.True(t, got.IsCompleted)
}

func TestItemForm_PickersCycle(t *testing.T) {
	f := newItemForm(store.ItemForm{}, true, formMembers, formCategories)

	f, _ = f.Update(runeKey('h'))
	assert.Equal(t, "m-2", f.Values().AssigneeID)
	f, _ = f.Update(runeKey('l'))
	assert.Equal(t, "m-1", f.Values().AssigneeID)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f, _ = f.Update(runeKey('l'))
	f, _ = f.Update(runeKey('l'))
	assert.Equal(t, "cat-2", f.Values().CategoryID)

	// shift+tab goes back to the assignee
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldAssignee, f.focused())
}

func TestItemForm_ToggleCompleted(t *testing.T) {
	f := newItemForm(store.ItemForm{}, false, formMembers, formCategories)

	// Focus wraps backwards to the last field
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldCompleted, f.focused())

	f, _ = f.Update(spaceKey())
	assert.True(t, f.Values().IsCompleted)
	f, _ = f.Update(runeKey('x'))
	assert.False(t, f.Values().IsCompleted)
}

func TestItemForm_DateInput(t *testing.T) {
	f := newItemForm(store.ItemForm{}, true, formMembers, formCategories)

	for i := 0; i < 3; i++ {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, fieldDueDate, f.focused())

	for _, r := range "2024-06-01" {
		f, _ = f.Update(runeKey(r))
	}
	assert.Equal(t, "2024-06-01", f.Values().DueDate)
}
