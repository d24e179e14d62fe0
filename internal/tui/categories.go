package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/gql"
	"github.com/h0rv/agendactl/internal/store"
	"github.com/rs/zerolog/log"
)

// CategoriesModel lists the organization's agenda item categories and
// manages them: create, rename and enable/disable.
type CategoriesModel struct {
	client API
	ctx    context.Context
	store  *store.Store

	keymap  KeyMap
	spinner spinner.Model
	input   textinput.Model
	editor  store.CategoryEditor

	cursor   int
	loading  bool
	loadErr  error
	toggling bool
	toast    toast

	width  int
	height int
}

// NewCategoriesModel creates the category screen. Loaded categories are
// written to s so the item screens see them too.
func NewCategoriesModel(client API, ctx context.Context, s *store.Store) CategoriesModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "Category name"
	ti.CharLimit = 100
	ti.Width = 40

	return CategoriesModel{
		client:  client,
		ctx:     ctx,
		store:   s,
		keymap:  DefaultKeyMap(),
		spinner: sp,
		input:   ti,
		loading: true,
	}
}

// Init starts the spinner and loads the categories.
func (m CategoriesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// CapturingInput reports whether the name input has focus.
func (m CategoriesModel) CapturingInput() bool {
	return m.editor.IsOpen()
}

func (m CategoriesModel) fetch() tea.Cmd {
	client, ctx, orgID := m.client, m.ctx, m.store.OrganizationID()
	return func() tea.Msg {
		categories, err := client.ListCategories(ctx, orgID)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m CategoriesModel) selected() (domain.AgendaItemCategory, bool) {
	categories := m.store.Categories()
	if m.cursor < 0 || m.cursor >= len(categories) {
		return domain.AgendaItemCategory{}, false
	}
	return categories[m.cursor], true
}

// Update handles messages
func (m CategoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case categoriesLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.store.SetCategories(msg.categories)
			if m.cursor >= len(msg.categories) {
				m.cursor = max(len(msg.categories)-1, 0)
			}
		}
		return m, nil

	case categorySavedMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Bool("creating", msg.creating).Msg("failed to save category")
			m.editor.Fail()
			m.toast = errorToast(fmt.Sprintf("Failed to save category: %v", msg.err))
			return m, nil
		}
		m.editor.Succeed()
		m.input.Reset()
		m.input.Blur()
		if msg.creating {
			m.toast = successToast("Category created")
		} else {
			m.toast = successToast("Category updated")
		}
		return m.refetch()

	case categoryToggledMsg:
		m.toggling = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("failed to toggle category")
			m.toast = errorToast(fmt.Sprintf("Failed to update category: %v", msg.err))
			return m, nil
		}
		m.toast = successToast(store.ToggleMessage(msg.wasDisabled))
		return m.refetch()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.editor.IsOpen() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m CategoriesModel) refetch() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.fetch())
}

// handleKeyPress processes keyboard input
func (m CategoriesModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = toast{}
	k := m.keymap

	if m.editor.IsOpen() {
		switch {
		case key.Matches(msg, k.Cancel):
			if m.editor.Close() {
				m.input.Reset()
				m.input.Blur()
			}
			return m, nil
		case msg.String() == "enter" || key.Matches(msg, k.Submit):
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, k.Cancel), key.Matches(msg, k.Categories):
		return m, func() tea.Msg { return showItemsMsg{} }
	case key.Matches(msg, k.Refresh):
		return m.refetch()
	}

	if m.loadErr != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.store.Categories())-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Create):
		m.editor.OpenCreate()
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, k.Edit):
		if cat, ok := m.selected(); ok {
			m.editor.OpenRename(cat)
			m.input.SetValue(cat.Name)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
	case key.Matches(msg, k.ToggleCategory):
		if cat, ok := m.selected(); ok && !m.toggling {
			m.toggling = true
			return m, m.toggle(cat)
		}
	}
	return m, nil
}

// submit validates the name and sends the create or rename mutation.
func (m CategoriesModel) submit() (tea.Model, tea.Cmd) {
	m.editor.SetName(m.input.Value())
	name := strings.TrimSpace(m.editor.Name)

	if m.editor.Creating() && !m.editor.Pending() {
		if existing, ok := store.FindByName(m.store.Categories(), name); ok {
			m.toast = warningToast(fmt.Sprintf("A category named %q already exists", existing.Name))
			return m, nil
		}
	}

	if err := m.editor.BeginSubmit(); err != nil {
		switch {
		case errors.Is(err, store.ErrSubmitInFlight), errors.Is(err, store.ErrNotOpen):
		case errors.Is(err, store.ErrSameName):
			m.toast = errorToast("Category name is unchanged")
		default:
			m.toast = errorToast(err.Error())
		}
		return m, nil
	}

	client, ctx := m.client, m.ctx
	if m.editor.Creating() {
		orgID := m.store.OrganizationID()
		return m, func() tea.Msg {
			_, err := client.CreateCategory(ctx, name, orgID)
			return categorySavedMsg{creating: true, err: err}
		}
	}

	id := m.editor.Category().ID
	return m, func() tea.Msg {
		err := client.UpdateCategory(ctx, id, gql.CategoryPatch{Name: &name})
		return categorySavedMsg{err: err}
	}
}

func (m CategoriesModel) toggle(cat domain.AgendaItemCategory) tea.Cmd {
	client, ctx := m.client, m.ctx
	disabled := !cat.IsDisabled
	return func() tea.Msg {
		err := client.UpdateCategory(ctx, cat.ID, gql.CategoryPatch{IsDisabled: &disabled})
		return categoryToggledMsg{wasDisabled: cat.IsDisabled, err: err}
	}
}

// View renders the category table, the editor modal or the error panel.
func (m CategoriesModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	title := TitleStyle.Render("Agenda Item Categories")

	var body string
	switch {
	case m.loading && len(m.store.Categories()) == 0:
		body = m.spinner.View() + " Loading categories..."
	case m.loadErr != nil:
		body = errorPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			ErrorStyle.Render(LoadErrorText(sourceCategories)),
			"",
			wrapText(m.loadErr.Error(), min(width, maxModalWidth)-6),
			"",
			dimStyle.Render("press r to retry"),
		))
	case m.editor.IsOpen():
		body = m.renderEditor()
	default:
		body = m.renderTable()
	}

	footer := dimStyle.Render("j/k:row n:new e:rename t:enable/disable r:refresh esc:back ?:help")
	if !m.toast.empty() {
		footer = m.toast.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, "", footer)
}

func (m CategoriesModel) renderTable() string {
	categories := m.store.Categories()
	if len(categories) == 0 {
		return dimStyle.Render("No categories yet. Press n to create one.")
	}

	cell := func(s string, w int) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).MaxHeight(1).Render(s)
	}

	lines := []string{headerStyle.Render("  " + cell("Name", 30) + cell("Description", 36) + cell("Status", 10))}
	for i, c := range categories {
		status := "Enabled"
		if c.IsDisabled {
			status = "Disabled"
		}
		row := cell(c.Name, 30) + cell(c.Description, 36) + cell(status, 10)

		switch {
		case i == m.cursor:
			lines = append(lines, SelectedItemStyle.Render("> "+row))
		case c.IsDisabled:
			lines = append(lines, dimStyle.Render("  "+row))
		default:
			lines = append(lines, NormalItemStyle.Render("  "+row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m CategoriesModel) renderEditor() string {
	title := "Create Category"
	action := "Create"
	if !m.editor.Creating() {
		title = "Rename Category"
		action = "Save"
	}

	status := ""
	if m.editor.Pending() {
		status = m.spinner.View() + " Saving..."
	}

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(title),
		labelStyle.Render("Name"),
		m.input.View(),
		"",
		status,
		PromptStyle.Render("[enter] "+action)+"  "+dimStyle.Render("[esc] Cancel"),
	))
}
