package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendApp(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(AppModel)
	require.True(t, ok)
	return next, cmd
}

// drain feeds the results of cmd back into the app until nothing is left.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	pending := collect(t, cmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		var next tea.Cmd
		m, next = sendApp(t, m, msg)
		// Only follow data and navigation messages, not refetch loops
		switch msg.(type) {
		case showCategoriesMsg, showItemsMsg, openEventMsg, closeEventMsg:
			pending = append(pending, collect(t, next)...)
		}
	}
	return m
}

func newTestApp(t *testing.T, api *mockAPI, opts Options) AppModel {
	t.Helper()
	if opts.OrganizationID == "" {
		opts.OrganizationID = "org-1"
	}
	m := NewAppModel(api, context.Background(), opts)
	m, _ = sendApp(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	return drain(t, m, m.Init())
}

func TestAppModel_StartsOnItems(t *testing.T) {
	m := newTestApp(t, newMockAPI(), Options{})

	assert.Equal(t, ScreenItems, m.Screen())
	assert.Contains(t, m.View(), "Grace Hopper")
}

func TestAppModel_StartsInEventPopup(t *testing.T) {
	api := newMockAPI()
	m := newTestApp(t, api, Options{EventID: "event-1", EventTitle: "Spring Summit"})

	assert.Equal(t, ScreenEvent, m.Screen())
	assert.Contains(t, m.View(), "Event Agenda Items")
	assert.Equal(t, "event-1", api.queries[0].EventID)
}

func TestAppModel_CategoriesRoundTrip(t *testing.T) {
	m := newTestApp(t, newMockAPI(), Options{})

	m, cmd := sendApp(t, m, runeKey('g'))
	m = drain(t, m, cmd)
	assert.Equal(t, ScreenCategories, m.Screen())
	assert.Contains(t, m.View(), "Agenda Item Categories")

	m, cmd = sendApp(t, m, escKey())
	m = drain(t, m, cmd)
	assert.Equal(t, ScreenItems, m.Screen())
}

func TestAppModel_CategoryToggleFinishesAfterLeaving(t *testing.T) {
	api := newMockAPI()
	m := newTestApp(t, api, Options{})

	m, cmd := sendApp(t, m, runeKey('g'))
	m = drain(t, m, cmd)
	m, toggle := sendApp(t, m, runeKey('t'))
	require.NotNil(t, toggle)
	require.True(t, m.categories.toggling)

	// Back to the items before the mutation returns
	m, cmd = sendApp(t, m, escKey())
	m = drain(t, m, cmd)
	require.Equal(t, ScreenItems, m.Screen())

	result := collect(t, toggle)
	require.Len(t, result, 1)
	m, cmd = sendApp(t, m, result[0])
	m = drain(t, m, cmd)
	assert.False(t, m.categories.toggling)
	assert.Equal(t, "Category disabled", m.categories.toast.text)
	assert.True(t, m.items.store.Categories()[0].IsDisabled)

	m, cmd = sendApp(t, m, runeKey('g'))
	m = drain(t, m, cmd)
	_, toggle = sendApp(t, m, runeKey('t'))
	assert.NotNil(t, toggle)
}

func TestAppModel_EventPopup(t *testing.T) {
	api := newMockAPI()
	m := newTestApp(t, api, Options{})

	m, cmd := sendApp(t, m, runeKey('E'))
	m = drain(t, m, cmd)
	require.Equal(t, ScreenEvent, m.Screen())
	require.NotNil(t, m.event)
	assert.Equal(t, "event-1", m.event.store.EventID())
	assert.Contains(t, m.View(), "Spring Summit")

	m, cmd = sendApp(t, m, escKey())
	m = drain(t, m, cmd)
	assert.Equal(t, ScreenItems, m.Screen())
	assert.Nil(t, m.event)
}

func TestAppModel_HelpOverlay(t *testing.T) {
	m := newTestApp(t, newMockAPI(), Options{})

	m, _ = sendApp(t, m, runeKey('?'))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Agenda Items Keys")

	// Keys do not reach the screen while help is open
	m, _ = sendApp(t, m, runeKey('d'))
	assert.True(t, m.showHelp)

	m, _ = sendApp(t, m, escKey())
	assert.False(t, m.showHelp)
}

func TestAppModel_QuitIsInputAware(t *testing.T) {
	m := newTestApp(t, newMockAPI(), Options{})

	_, cmd := sendApp(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// In the status modal q is typed into the note
	m, _ = sendApp(t, m, spaceKey())
	m, _ = sendApp(t, m, runeKey('q'))
	assert.Equal(t, "q", m.items.note.Value())
}

func TestAppModel_OpenEventKeepsOrganizationState(t *testing.T) {
	api := newMockAPI()
	m := newTestApp(t, api, Options{})

	m, cmd := sendApp(t, m, runeKey('s'))
	m = drain(t, m, cmd)

	m, _ = sendApp(t, m, openEventMsg{event: domain.EventRef{ID: "event-1"}})
	m, cmd = sendApp(t, m, closeEventMsg{})
	drain(t, m, cmd)

	assert.Equal(t, "Earliest", m.items.store.Filter.Sort.String())
}
