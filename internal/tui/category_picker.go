package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/agendactl/internal/domain"
)

// categoryItem wraps a domain.AgendaItemCategory for use in bubbles/list.
type categoryItem struct {
	category domain.AgendaItemCategory
}

func (i categoryItem) FilterValue() string {
	return i.category.Name
}

// categoryDelegate renders one line per category.
type categoryDelegate struct{}

func (d categoryDelegate) Height() int                             { return 1 }
func (d categoryDelegate) Spacing() int                            { return 0 }
func (d categoryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d categoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(categoryItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.category.Name)
	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> "+str))
	} else {
		fmt.Fprint(w, NormalItemStyle.Render("  "+str))
	}
}

// CategoryPickerModel lets the user pick the category filter. Only enabled
// categories are offered.
type CategoryPickerModel struct {
	list list.Model
}

// NewCategoryPickerModel creates a picker over categories.
func NewCategoryPickerModel(categories []domain.AgendaItemCategory) CategoryPickerModel {
	items := make([]list.Item, len(categories))
	for i, c := range categories {
		items[i] = categoryItem{category: c}
	}

	l := list.New(items, categoryDelegate{}, 40, 12)
	l.Title = "Filter by Category"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle

	return CategoryPickerModel{list: l}
}

// Update handles messages and updates the model state.
func (m CategoryPickerModel) Update(msg tea.Msg) (CategoryPickerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return pickerCancelledMsg{} }
		case "enter":
			if item, ok := m.list.SelectedItem().(categoryItem); ok {
				return m, func() tea.Msg { return categoryPickedMsg{category: item.category} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m CategoryPickerModel) View() string {
	if len(m.list.Items()) == 0 {
		return modalStyle.Render("No enabled categories\n\n" + dimStyle.Render("esc to close"))
	}
	return modalStyle.Render(m.list.View())
}
