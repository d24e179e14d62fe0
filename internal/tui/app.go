package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
)

// AppScreen represents the screens of the admin panel.
type AppScreen int

const (
	ScreenItems AppScreen = iota
	ScreenCategories
	ScreenEvent
)

// Options configures the initial state of the app.
type Options struct {
	OrganizationID string
	// EventID starts the app in the event popup of that event.
	EventID    string
	EventTitle string
	// WebURL is the base URL of the web admin, used to open events.
	WebURL string
}

// screen is implemented by the item and category models.
type screen interface {
	tea.Model
	CapturingInput() bool
}

// AppModel is the root Bubble Tea model. It routes messages to the active
// screen and owns the global keys: help, quit and screen switches.
type AppModel struct {
	client API
	ctx    context.Context
	opts   Options

	keymap KeyMap
	help   HelpModel

	currentScreen AppScreen
	items         ItemsModel
	categories    CategoriesModel
	event         *ItemsModel // Open event popup, nil otherwise
	showHelp      bool

	width  int
	height int
}

// NewAppModel creates the app for one organization.
func NewAppModel(client API, ctx context.Context, opts Options) AppModel {
	keymap := DefaultKeyMap()
	orgStore := store.New(opts.OrganizationID, "")

	m := AppModel{
		client:        client,
		ctx:           ctx,
		opts:          opts,
		keymap:        keymap,
		help:          NewHelpModel(keymap),
		currentScreen: ScreenItems,
		items:         NewItemsModel(client, ctx, orgStore, nil, opts.WebURL),
		categories:    NewCategoriesModel(client, ctx, orgStore),
	}

	if opts.EventID != "" {
		event := m.newEventModel(domain.EventRef{ID: opts.EventID, Title: opts.EventTitle})
		m.event = &event
		m.currentScreen = ScreenEvent
	}
	return m
}

func (m AppModel) newEventModel(event domain.EventRef) ItemsModel {
	s := store.New(m.opts.OrganizationID, event.ID)
	return NewItemsModel(m.client, m.ctx, s, &event, m.opts.WebURL)
}

// Screen returns the active screen.
func (m AppModel) Screen() AppScreen {
	return m.currentScreen
}

func (m AppModel) active() screen {
	switch m.currentScreen {
	case ScreenCategories:
		return m.categories
	case ScreenEvent:
		if m.event != nil {
			return *m.event
		}
	}
	return m.items
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	if m.currentScreen == ScreenEvent {
		return m.event.Init()
	}
	return m.items.Init()
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every screen keeps its size, not only the active one
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.items, cmd = updateItems(m.items, msg)
		cmds = append(cmds, cmd)
		m.categories, cmd = updateCategories(m.categories, msg)
		cmds = append(cmds, cmd)
		if m.event != nil {
			event, cmd := updateItems(*m.event, eventWindow(msg))
			m.event = &event
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			if key.Matches(msg, m.keymap.Help, m.keymap.Cancel) {
				m.showHelp = false
			}
			return m, nil
		}
		if !m.active().CapturingInput() {
			switch {
			case key.Matches(msg, m.keymap.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keymap.Help):
				m.showHelp = true
				return m, nil
			}
		}

	case categorySavedMsg, categoryToggledMsg:
		// The user may have left the category screen before the result came back
		var cmd tea.Cmd
		m.categories, cmd = updateCategories(m.categories, msg)
		return m, cmd

	case showCategoriesMsg:
		m.currentScreen = ScreenCategories
		return m, m.categories.Init()

	case showItemsMsg:
		m.currentScreen = ScreenItems
		model, cmd := m.items.refetchAll()
		m.items = model.(ItemsModel)
		return m, cmd

	case openEventMsg:
		event := m.newEventModel(msg.event)
		if m.width > 0 {
			event, _ = updateItems(event, eventWindow(tea.WindowSizeMsg{Width: m.width, Height: m.height}))
		}
		m.event = &event
		m.currentScreen = ScreenEvent
		return m, event.Init()

	case closeEventMsg:
		m.event = nil
		m.currentScreen = ScreenItems
		// Changes made in the popup show up in the organization list
		model, cmd := m.items.refetchAll()
		m.items = model.(ItemsModel)
		return m, cmd
	}

	return m.updateActive(msg)
}

func (m AppModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenCategories:
		m.categories, cmd = updateCategories(m.categories, msg)
	case ScreenEvent:
		if m.event != nil {
			event, c := updateItems(*m.event, msg)
			m.event = &event
			cmd = c
		}
	default:
		m.items, cmd = updateItems(m.items, msg)
	}
	return m, cmd
}

func updateItems(m ItemsModel, msg tea.Msg) (ItemsModel, tea.Cmd) {
	model, cmd := m.Update(msg)
	return model.(ItemsModel), cmd
}

func updateCategories(m CategoriesModel, msg tea.Msg) (CategoriesModel, tea.Cmd) {
	model, cmd := m.Update(msg)
	return model.(CategoriesModel), cmd
}

// eventWindow is the space inside the event popup border.
func eventWindow(msg tea.WindowSizeMsg) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: msg.Width - 4, Height: msg.Height - 2}
}

// View renders the active screen, with the help overlay on top when open.
func (m AppModel) View() string {
	if m.showHelp {
		width := m.width
		if width == 0 {
			width = 80
		}
		title := "Agenda Items"
		if m.currentScreen == ScreenCategories {
			title = "Agenda Item Categories"
		}
		return lipgloss.Place(width, max(m.height, 20), lipgloss.Center, lipgloss.Center, m.help.View(title+" Keys", min(width, 90)))
	}

	return m.active().View()
}
