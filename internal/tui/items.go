package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

// Lines used by the title, filter bar and footer around the list.
const itemsChromeLines = 6

// Names used in the load error panel, in precedence order.
const (
	sourceCategories = "Agenda Item Categories"
	sourceMembers    = "Members List"
	sourceItems      = "Agenda Items List"
)

// loadState tracks the three queries behind an items screen.
type loadState struct {
	categories, members, items          bool // Pending
	categoriesErr, membersErr, itemsErr error
}

func (s loadState) pending() bool {
	return s.categories || s.members || s.items
}

// firstError returns the failing query with the highest precedence.
func (s loadState) firstError() (string, error) {
	switch {
	case s.categoriesErr != nil:
		return sourceCategories, s.categoriesErr
	case s.membersErr != nil:
		return sourceMembers, s.membersErr
	case s.itemsErr != nil:
		return sourceItems, s.itemsErr
	}
	return "", nil
}

// LoadErrorText is the heading of the load error panel for a data source.
func LoadErrorText(source string) string {
	return fmt.Sprintf("Error occurred while loading %s Data", source)
}

// ItemsModel is the agenda item list of an organization, or of a single
// event when the store is event-scoped. The event variant renders as a
// bordered popup without the filter bar.
type ItemsModel struct {
	// Dependencies
	client API
	ctx    context.Context
	store  *store.Store
	flow   *store.Workflow

	// UI components
	keymap  KeyMap
	spinner spinner.Model
	list    itemList
	form    itemFormModel
	note    textarea.Model
	picker  *CategoryPickerModel

	// State
	event  *domain.EventRef // Set for the event popup
	webURL string
	load   loadState
	toast  toast

	// View dimensions
	width  int
	height int
}

// NewItemsModel creates an items screen over s. A non-nil event marks the
// event popup; s must then be scoped to the same event.
func NewItemsModel(client API, ctx context.Context, s *store.Store, event *domain.EventRef, webURL string) ItemsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	note := newNoteArea("")
	note.SetHeight(4)

	return ItemsModel{
		client:  client,
		ctx:     ctx,
		store:   s,
		flow:    store.NewWorkflow(),
		keymap:  DefaultKeyMap(),
		spinner: sp,
		note:    note,
		event:   event,
		webURL:  webURL,
		load:    loadState{categories: true, members: true, items: true},
	}
}

// Init starts the spinner and the initial fetch.
func (m ItemsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.WindowSize(), m.fetchAll())
}

// Scoped reports whether this is the event popup.
func (m ItemsModel) Scoped() bool {
	return m.event != nil
}

// CapturingInput reports whether keys belong to an open modal or picker.
func (m ItemsModel) CapturingInput() bool {
	return m.picker != nil || m.flow.Mode() != store.ModeIdle
}

// Update handles messages
func (m ItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetRows(m.height - itemsChromeLines)
		m.form.SetWidth(min(m.width, 80))
		m.note.SetWidth(min(m.width, 80) - 8)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case categoriesLoadedMsg:
		m.load.categories = false
		m.load.categoriesErr = msg.err
		if msg.err == nil {
			m.store.SetCategories(msg.categories)
		}
		return m, nil

	case membersLoadedMsg:
		m.load.members = false
		m.load.membersErr = msg.err
		if msg.err == nil {
			m.store.SetMembers(msg.members)
			m.list.SetItems(m.store.Items(), m.store.Members())
		}
		return m, nil

	case itemsLoadedMsg:
		// A filter changed while this was in flight; the newer query's
		// result is still coming.
		if msg.query != m.store.Query() {
			return m, nil
		}
		m.load.items = false
		m.load.itemsErr = msg.err
		if msg.err == nil {
			m.store.SetItems(msg.items)
			m.list.SetItems(m.store.Items(), m.store.Members())
		}
		return m, nil

	case itemMutatedMsg:
		return m.handleMutation(msg)

	case categoryPickedMsg:
		m.picker = nil
		m.store.Filter.SetCategory(store.CategoryFilter{ID: msg.category.ID, Name: msg.category.Name})
		return m.refetchItems()

	case pickerCancelledMsg:
		m.picker = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	// Cursor blink and similar for the focused input
	switch m.flow.Mode() {
	case store.ModeCreating, store.ModeEditing:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case store.ModeChangingStatus:
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m ItemsModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = toast{}

	if m.picker != nil {
		picker, cmd := m.picker.Update(msg)
		m.picker = &picker
		return m, cmd
	}

	switch m.flow.Mode() {
	case store.ModeCreating, store.ModeEditing:
		return m.handleFormKeys(msg)
	case store.ModePreviewing:
		switch msg.String() {
		case "esc", "enter", "p", "q":
			m.flow.Cancel()
		}
		return m, nil
	case store.ModeDeleting:
		switch msg.String() {
		case "y", "Y", "enter":
			return m.submit()
		case "n", "N", "esc":
			m.flow.Cancel()
		}
		return m, nil
	case store.ModeChangingStatus:
		switch {
		case key.Matches(msg, m.keymap.Cancel):
			m.flow.Cancel()
			m.note.Blur()
			return m, nil
		case key.Matches(msg, m.keymap.Submit):
			m.flow.Status.Note = m.note.Value()
			return m.submit()
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}

	return m.handleListKeys(msg)
}

func (m ItemsModel) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.flow.Cancel()
		return m, nil
	case key.Matches(msg, m.keymap.Submit):
		if m.flow.Pending() {
			return m, nil
		}
		m.flow.Form = m.form.Values()
		return m.submit()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m ItemsModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keymap

	if key.Matches(msg, k.Cancel) && m.Scoped() {
		return m, func() tea.Msg { return closeEventMsg{} }
	}
	if key.Matches(msg, k.Refresh) {
		return m.refetchAll()
	}
	if key.Matches(msg, k.Categories) && !m.Scoped() {
		return m, func() tea.Msg { return showCategoriesMsg{} }
	}

	// Nothing else applies while the error panel is shown
	if _, err := m.load.firstError(); err != nil {
		return m, nil
	}

	if !m.Scoped() {
		if model, cmd, handled := m.handleFilterKeys(msg); handled {
			return model, cmd
		}
	}

	// Filters may change during a load, rows wait for the new list
	if m.load.pending() {
		return m, nil
	}

	item, hasItem := m.list.Selected()

	switch {
	case key.Matches(msg, k.Up):
		m.list.Move(-1)
	case key.Matches(msg, k.Down):
		m.list.Move(1)
	case key.Matches(msg, k.Create):
		if err := m.flow.Create(); err == nil {
			m.form = newItemForm(m.flow.Form, true, m.store.Members(), m.store.EnabledCategories())
			m.form.SetWidth(min(m.width, 80))
		}
	case !hasItem:
		return m, nil
	case key.Matches(msg, k.ToggleStatus):
		if err := m.flow.ChangeStatus(item); err == nil {
			m.note.SetValue(m.flow.Status.Note)
			m.note.Focus()
		}
	case key.Matches(msg, k.Preview):
		_ = m.flow.Preview(item)
	case key.Matches(msg, k.Edit):
		if err := m.flow.Edit(item); err == nil {
			m.form = newItemForm(m.flow.Form, false, m.store.Members(), m.store.EnabledCategories())
			m.form.SetWidth(min(m.width, 80))
		}
	case key.Matches(msg, k.Delete):
		_ = m.flow.Delete(item)
	case key.Matches(msg, k.OpenEvent):
		return m.openEventInBrowser(item)
	case key.Matches(msg, k.EventItems):
		if item.Event != nil && !m.Scoped() {
			event := *item.Event
			return m, func() tea.Msg { return openEventMsg{event: event} }
		}
		m.toast = warningToast("This agenda item is not tied to an event")
	}

	return m, nil
}

// handleFilterKeys applies filter shortcuts. Every change refetches.
func (m ItemsModel) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	k := m.keymap
	f := &m.store.Filter

	switch {
	case key.Matches(msg, k.Sort):
		f.ToggleSort()
	case key.Matches(msg, k.Status):
		f.CycleStatus()
	case key.Matches(msg, k.ClearStatus):
		f.ClearStatus()
	case key.Matches(msg, k.ClearCategory):
		f.ClearCategory()
	case key.Matches(msg, k.ClearAll):
		f.ClearAll()
	case key.Matches(msg, k.Category):
		if m.load.pending() {
			return m, nil, true
		}
		picker := NewCategoryPickerModel(m.store.EnabledCategories())
		m.picker = &picker
		return m, nil, true
	default:
		return m, nil, false
	}

	model, cmd := m.refetchItems()
	return model, cmd, true
}

func (m ItemsModel) openEventInBrowser(item domain.AgendaItem) (tea.Model, tea.Cmd) {
	if item.Event == nil {
		m.toast = warningToast("This agenda item is not tied to an event")
		return m, nil
	}
	if m.webURL == "" {
		m.toast = warningToast("Set web_url in the config to open events")
		return m, nil
	}
	url := EventURL(m.webURL, m.store.OrganizationID(), item.Event.ID)
	if err := browser.OpenURL(url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to open browser")
		m.toast = errorToast(fmt.Sprintf("Failed to open browser: %v", err))
	}
	return m, nil
}

// EventURL is the web admin page of an event.
func EventURL(webURL, organizationID, eventID string) string {
	return fmt.Sprintf("%s/event/%s/%s", strings.TrimRight(webURL, "/"), organizationID, eventID)
}

// submit starts the mutation of the open modal. A second submit while one
// is pending is ignored.
func (m ItemsModel) submit() (tea.Model, tea.Cmd) {
	mode := m.flow.Mode()
	if err := m.flow.BeginSubmit(); err != nil {
		if errors.Is(err, store.ErrSubmitInFlight) || errors.Is(err, store.ErrNotOpen) {
			return m, nil
		}
		m.toast = errorToast(err.Error())
		return m, nil
	}

	item := m.flow.Item()
	switch mode {
	case store.ModeCreating:
		in := m.flow.Form.CreateInput(m.store.EventID())
		return m, m.mutate(mode, func(ctx context.Context) error {
			_, err := m.client.CreateAgendaItem(ctx, in)
			return err
		})
	case store.ModeEditing:
		in := m.flow.Form.UpdateInput()
		return m, m.mutate(mode, func(ctx context.Context) error {
			return m.client.UpdateAgendaItem(ctx, item.ID, in)
		})
	case store.ModeDeleting:
		return m, m.mutate(mode, func(ctx context.Context) error {
			return m.client.RemoveAgendaItem(ctx, item.ID)
		})
	case store.ModeChangingStatus:
		in := m.flow.Status.Input()
		return m, m.mutate(mode, func(ctx context.Context) error {
			return m.client.UpdateAgendaItem(ctx, item.ID, in)
		})
	}
	return m, nil
}

func (m ItemsModel) mutate(mode store.Mode, run func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return itemMutatedMsg{mode: mode, err: run(ctx)}
	}
}

// handleMutation closes the modal and refetches on success. On failure the
// modal stays open with its values.
func (m ItemsModel) handleMutation(msg itemMutatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error().Err(msg.err).Str("op", msg.mode.String()).Msg("agenda item mutation failed")
		m.flow.Fail(msg.err)
		m.toast = errorToast(failureText(msg.mode, msg.err))
		return m, nil
	}

	mode := m.flow.Succeed()
	m.note.Reset()
	m.note.Blur()
	m.toast = successToast(mode.SuccessMessage())
	return m.refetchAll()
}

func failureText(mode store.Mode, err error) string {
	action := mode.String()
	if mode == store.ModeChangingStatus {
		action = "update status of"
	}
	return fmt.Sprintf("Failed to %s agenda item: %v", action, err)
}

func (m ItemsModel) refetchAll() (tea.Model, tea.Cmd) {
	m.load = loadState{categories: true, members: true, items: true}
	return m, tea.Batch(m.spinner.Tick, m.fetchAll())
}

func (m ItemsModel) refetchItems() (tea.Model, tea.Cmd) {
	m.load.items = true
	m.load.itemsErr = nil
	return m, m.fetchItems()
}

// fetchAll issues the three queries of the screen concurrently.
func (m ItemsModel) fetchAll() tea.Cmd {
	return tea.Batch(m.fetchCategories(), m.fetchMembers(), m.fetchItems())
}

func (m ItemsModel) fetchCategories() tea.Cmd {
	client, ctx, orgID := m.client, m.ctx, m.store.OrganizationID()
	return func() tea.Msg {
		categories, err := client.ListCategories(ctx, orgID)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m ItemsModel) fetchMembers() tea.Cmd {
	client, ctx, orgID := m.client, m.ctx, m.store.OrganizationID()
	return func() tea.Msg {
		members, err := client.ListMembers(ctx, orgID)
		return membersLoadedMsg{members: members, err: err}
	}
}

func (m ItemsModel) fetchItems() tea.Cmd {
	client, ctx, q := m.client, m.ctx, m.store.Query()
	return func() tea.Msg {
		items, err := client.ListAgendaItems(ctx, q)
		return itemsLoadedMsg{query: q, items: items, err: err}
	}
}

// View renders the screen, or the event popup when scoped.
func (m ItemsModel) View() string {
	width := m.width
	height := m.height
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 30
	}

	if m.Scoped() {
		inner := m.renderContent(width-4, height-4)
		title := TitleStyle.Render("Event Agenda Items")
		if m.event.Title != "" {
			title += dimStyle.Render("  " + m.event.Title)
		}
		return eventPopupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, inner))
	}

	title := TitleStyle.Render("Agenda Items")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.renderFilterBar(), m.renderContent(width, height-3))
}

func (m ItemsModel) renderContent(width, height int) string {
	var body string
	switch {
	case m.load.pending():
		body = lipgloss.Place(width, max(height-2, 3), lipgloss.Center, lipgloss.Center, m.spinner.View()+" Loading...")
	case m.hasLoadError():
		body = m.renderLoadError(width)
	case m.picker != nil:
		body = m.picker.View()
	case m.flow.Mode() != store.ModeIdle:
		body = m.renderModal(width)
	default:
		body = m.list.View(width, height-2)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.renderFooter())
}

func (m ItemsModel) hasLoadError() bool {
	_, err := m.load.firstError()
	return err != nil
}

func (m ItemsModel) renderLoadError(width int) string {
	source, err := m.load.firstError()
	content := lipgloss.JoinVertical(lipgloss.Left,
		ErrorStyle.Render(LoadErrorText(source)),
		"",
		wrapText(err.Error(), min(width, 80)-6),
		"",
		dimStyle.Render("press r to retry"),
	)
	return errorPanelStyle.Render(content)
}

func (m ItemsModel) renderFilterBar() string {
	f := m.store.Filter
	parts := []string{
		labelStyle.Render("Sort: ") + valueStyle.Render(f.Sort.String()),
		labelStyle.Render("Status: ") + valueStyle.Render(f.Status.String()),
	}
	category := "All"
	if f.Category.IsSet() {
		category = f.Category.Name
	}
	parts = append(parts, labelStyle.Render("Category: ")+valueStyle.Render(category))

	badges := f.Badges()
	var badgeView string
	if len(badges) == 0 {
		badgeView = dimStyle.Render("No Filters")
	} else {
		rendered := make([]string, len(badges))
		for i, b := range badges {
			rendered[i] = badgeStyle.Render(b)
		}
		badgeView = strings.Join(rendered, " ")
	}

	return strings.Join(parts, dimStyle.Render(" | ")) + "   " + badgeView
}

func (m ItemsModel) renderFooter() string {
	if !m.toast.empty() {
		return m.toast.View()
	}
	if m.Scoped() {
		return dimStyle.Render("j/k:row space:status p:preview e:edit d:delete n:new esc:close ?:help")
	}
	return dimStyle.Render("j/k:row space:status p:preview e:edit d:delete n:new s/S/c:filter g:categories ?:help")
}
