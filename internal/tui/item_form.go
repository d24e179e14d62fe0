package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
)

// Focusable fields of the item form.
type formField int

const (
	fieldAssignee formField = iota
	fieldCategory
	fieldPreNotes
	fieldPostNotes
	fieldDueDate
	fieldCompletionDate
	fieldCompleted
)

var (
	createFields = []formField{fieldAssignee, fieldCategory, fieldPreNotes, fieldDueDate}
	updateFields = []formField{fieldAssignee, fieldPreNotes, fieldPostNotes, fieldDueDate, fieldCompletionDate, fieldCompleted}
)

// itemFormModel is the controlled create/update form. Pickers cycle with
// left/right, tab moves between fields.
type itemFormModel struct {
	creating   bool
	members    []domain.Member
	categories []domain.AgendaItemCategory // Enabled categories only

	assignee  int // Index into members, -1 for none
	category  int // Index into categories, -1 for none
	preNotes  textarea.Model
	postNotes textarea.Model
	dueDate   textinput.Model
	doneDate  textinput.Model
	completed bool

	fields []formField
	focus  int
}

func newNoteArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 2000
	ta.SetHeight(3)
	ta.SetWidth(50)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	return ta
}

func newDateInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = len(domain.DateLayout)
	ti.Width = 12
	return ti
}

// newItemForm builds a form pre-filled with values.
func newItemForm(values store.ItemForm, creating bool, members []domain.Member, categories []domain.AgendaItemCategory) itemFormModel {
	f := itemFormModel{
		creating:   creating,
		members:    members,
		categories: categories,
		assignee:   -1,
		category:   -1,
		preNotes:   newNoteArea(domain.NotePreCompletion.Label()),
		postNotes:  newNoteArea(domain.NotePostCompletion.Label()),
		dueDate:    newDateInput(),
		doneDate:   newDateInput(),
		completed:  values.IsCompleted,
		fields:     updateFields,
	}
	if creating {
		f.fields = createFields
	}

	for i, m := range members {
		if m.ID == values.AssigneeID {
			f.assignee = i
		}
	}
	for i, c := range categories {
		if c.ID == values.CategoryID {
			f.category = i
		}
	}
	f.preNotes.SetValue(values.PreCompletionNotes)
	f.postNotes.SetValue(values.PostCompletionNotes)
	f.dueDate.SetValue(values.DueDate)
	f.doneDate.SetValue(values.CompletionDate)

	f.applyFocus()
	return f
}

// Values returns the current form values.
func (f itemFormModel) Values() store.ItemForm {
	v := store.ItemForm{
		PreCompletionNotes:  f.preNotes.Value(),
		PostCompletionNotes: f.postNotes.Value(),
		DueDate:             strings.TrimSpace(f.dueDate.Value()),
		CompletionDate:      strings.TrimSpace(f.doneDate.Value()),
		IsCompleted:         f.completed,
	}
	if f.assignee >= 0 && f.assignee < len(f.members) {
		v.AssigneeID = f.members[f.assignee].ID
	}
	if f.category >= 0 && f.category < len(f.categories) {
		v.CategoryID = f.categories[f.category].ID
	}
	return v
}

func (f itemFormModel) focused() formField {
	return f.fields[f.focus]
}

func (f *itemFormModel) applyFocus() {
	f.preNotes.Blur()
	f.postNotes.Blur()
	f.dueDate.Blur()
	f.doneDate.Blur()

	switch f.focused() {
	case fieldPreNotes:
		f.preNotes.Focus()
	case fieldPostNotes:
		f.postNotes.Focus()
	case fieldDueDate:
		f.dueDate.Focus()
	case fieldCompletionDate:
		f.doneDate.Focus()
	}
}

func cycle(idx, delta, n int) int {
	if n == 0 {
		return -1
	}
	if idx < 0 {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	return (idx + delta + n) % n
}

// Update handles navigation and forwards other keys to the focused input.
func (f itemFormModel) Update(msg tea.Msg) (itemFormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	switch key.String() {
	case "tab":
		f.focus = (f.focus + 1) % len(f.fields)
		f.applyFocus()
		return f, nil
	case "shift+tab":
		f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
		f.applyFocus()
		return f, nil
	}

	switch f.focused() {
	case fieldAssignee, fieldCategory:
		delta := 0
		switch key.String() {
		case "right", "l", "j", "down":
			delta = 1
		case "left", "h", "k", "up":
			delta = -1
		}
		if delta != 0 {
			if f.focused() == fieldAssignee {
				f.assignee = cycle(f.assignee, delta, len(f.members))
			} else {
				f.category = cycle(f.category, delta, len(f.categories))
			}
		}
		return f, nil
	case fieldCompleted:
		if key.String() == " " || key.String() == "x" {
			f.completed = !f.completed
		}
		return f, nil
	}

	return f.updateInputs(msg)
}

func (f itemFormModel) updateInputs(msg tea.Msg) (itemFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focused() {
	case fieldPreNotes:
		f.preNotes, cmd = f.preNotes.Update(msg)
	case fieldPostNotes:
		f.postNotes, cmd = f.postNotes.Update(msg)
	case fieldDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
	case fieldCompletionDate:
		f.doneDate, cmd = f.doneDate.Update(msg)
	}
	return f, cmd
}

// SetWidth resizes the text inputs.
func (f *itemFormModel) SetWidth(width int) {
	if f.fields == nil {
		return // No form open
	}
	w := width - 8
	if w < 20 {
		w = 20
	}
	f.preNotes.SetWidth(w)
	f.postNotes.SetWidth(w)
}

func (f itemFormModel) label(field formField, text string) string {
	if f.focused() == field {
		return SelectedItemStyle.Render("> " + text)
	}
	return labelStyle.Render("  " + text)
}

func picker(selected string, focused bool) string {
	if selected == "" {
		selected = "(none)"
	}
	if focused {
		return "  ◀ " + SelectedItemStyle.Render(selected) + " ▶"
	}
	return "    " + valueStyle.Render(selected)
}

// View renders the form body.
func (f itemFormModel) View() string {
	var b strings.Builder

	for _, field := range f.fields {
		switch field {
		case fieldAssignee:
			name := ""
			if f.assignee >= 0 {
				name = f.members[f.assignee].FullName()
			}
			b.WriteString(f.label(field, "Assignee") + "\n")
			b.WriteString(picker(name, f.focused() == field) + "\n")
		case fieldCategory:
			name := ""
			if f.category >= 0 {
				name = f.categories[f.category].Name
			}
			b.WriteString(f.label(field, "Category") + "\n")
			b.WriteString(picker(name, f.focused() == field) + "\n")
		case fieldPreNotes:
			b.WriteString(f.label(field, domain.NotePreCompletion.Label()) + "\n")
			b.WriteString(f.preNotes.View() + "\n")
		case fieldPostNotes:
			b.WriteString(f.label(field, domain.NotePostCompletion.Label()) + "\n")
			b.WriteString(f.postNotes.View() + "\n")
		case fieldDueDate:
			b.WriteString(f.label(field, "Due Date") + "\n")
			b.WriteString("  " + f.dueDate.View() + "\n")
		case fieldCompletionDate:
			b.WriteString(f.label(field, "Completion Date") + "\n")
			b.WriteString("  " + f.doneDate.View() + "\n")
		case fieldCompleted:
			box := "[ ]"
			if f.completed {
				box = "[x]"
			}
			b.WriteString(f.label(field, fmt.Sprintf("%s Completed", box)) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
