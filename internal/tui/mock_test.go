package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/gql"
	"github.com/stretchr/testify/require"
)

// mockAPI records calls and returns canned data.
type mockAPI struct {
	mu sync.Mutex

	items      []domain.AgendaItem
	categories []domain.AgendaItemCategory
	members    []domain.Member

	itemsErr      error
	categoriesErr error
	membersErr    error
	mutationErr   error

	queries         []gql.ItemQuery
	created         []gql.CreateItemInput
	updated         map[string]gql.UpdateItemInput
	removed         []string
	createdCategory []string
	categoryPatches map[string]gql.CategoryPatch
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		items: []domain.AgendaItem{
			{
				ID:                 "item-1",
				Assignee:           domain.Member{ID: "m-1", FirstName: "Grace", LastName: "Hopper"},
				Category:           domain.AgendaItemCategory{ID: "cat-1", Name: "Logistics"},
				PreCompletionNotes: "Book the main hall and two breakout rooms",
				DueDate:            "2024-03-01",
				Event:              &domain.EventRef{ID: "event-1", Title: "Spring Summit"},
			},
			{
				ID:                  "item-2",
				Assignee:            domain.Member{ID: "m-2", FirstName: "Linus", LastName: "Torvalds"},
				Category:            domain.AgendaItemCategory{ID: "cat-2", Name: "Speakers"},
				PreCompletionNotes:  "Confirm keynote",
				PostCompletionNotes: "Done",
				DueDate:             "2024-03-05",
				IsCompleted:         true,
			},
		},
		categories: []domain.AgendaItemCategory{
			{ID: "cat-1", Name: "Logistics"},
			{ID: "cat-2", Name: "Speakers"},
			{ID: "cat-3", Name: "Archive", IsDisabled: true},
		},
		members: []domain.Member{
			{ID: "m-1", FirstName: "Grace", LastName: "Hopper"},
			{ID: "m-2", FirstName: "Linus", LastName: "Torvalds"},
		},
		updated:         map[string]gql.UpdateItemInput{},
		categoryPatches: map[string]gql.CategoryPatch{},
	}
}

func (a *mockAPI) ListAgendaItems(_ context.Context, q gql.ItemQuery) ([]domain.AgendaItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.queries = append(a.queries, q)
	return a.items, a.itemsErr
}

func (a *mockAPI) ListCategories(_ context.Context, _ string) ([]domain.AgendaItemCategory, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.AgendaItemCategory(nil), a.categories...), a.categoriesErr
}

func (a *mockAPI) ListMembers(_ context.Context, _ string) ([]domain.Member, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.members, a.membersErr
}

func (a *mockAPI) CreateAgendaItem(_ context.Context, in gql.CreateItemInput) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.created = append(a.created, in)
	return "new-item", a.mutationErr
}

func (a *mockAPI) UpdateAgendaItem(_ context.Context, id string, in gql.UpdateItemInput) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.updated[id] = in
	return a.mutationErr
}

func (a *mockAPI) RemoveAgendaItem(_ context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.removed = append(a.removed, id)
	return a.mutationErr
}

func (a *mockAPI) CreateCategory(_ context.Context, name, _ string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.createdCategory = append(a.createdCategory, name)
	return "new-cat", a.mutationErr
}

func (a *mockAPI) UpdateCategory(_ context.Context, id string, patch gql.CategoryPatch) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.categoryPatches[id] = patch
	if a.mutationErr != nil {
		return a.mutationErr
	}

	// Apply the patch to a copy so earlier results keep their values
	categories := append([]domain.AgendaItemCategory(nil), a.categories...)
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		if patch.Name != nil {
			categories[i].Name = *patch.Name
		}
		if patch.IsDisabled != nil {
			categories[i].IsDisabled = *patch.IsDisabled
		}
	}
	a.categories = categories
	return nil
}

// Key helpers

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func submitKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlS}
}

// collect runs cmd and every batched command it produces, returning the
// messages that are not spinner ticks or window size requests.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var out []tea.Msg
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collect(t, c)...)
		}
	default:
		if isNoise(msg) {
			return nil
		}
		out = append(out, msg)
	}
	return out
}

func isNoise(msg tea.Msg) bool {
	switch fmt.Sprintf("%T", msg) {
	case "spinner.TickMsg", "tea.windowSizeMsg", "cursor.initialBlinkMsg", "cursor.BlinkMsg", "cursor.blinkCanceled":
		return true
	}
	return false
}

// feedItems applies msgs to an items model in order.
func feedItems(t *testing.T, m ItemsModel, msgs ...tea.Msg) ItemsModel {
	t.Helper()
	for _, msg := range msgs {
		model, _ := m.Update(msg)
		var ok bool
		m, ok = model.(ItemsModel)
		require.True(t, ok)
	}
	return m
}

// pressItems sends msg and returns the updated model and its command
// without running it.
func pressItems(t *testing.T, m ItemsModel, msg tea.Msg) (ItemsModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(ItemsModel)
	require.True(t, ok)
	return next, cmd
}
