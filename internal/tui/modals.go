package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
	"github.com/muesli/reflow/wordwrap"
)

const maxModalWidth = 80

func wrapText(s string, width int) string {
	if width < 20 {
		width = 20
	}
	return wordwrap.String(s, width)
}

// renderModal renders the open item modal.
func (m ItemsModel) renderModal(width int) string {
	w := min(width, maxModalWidth)

	var content string
	switch m.flow.Mode() {
	case store.ModeCreating:
		content = m.renderFormModal("Create Agenda Item", "Create")
	case store.ModeEditing:
		content = m.renderFormModal("Update Agenda Item", "Update")
	case store.ModePreviewing:
		content = m.renderPreview(w - 6)
	case store.ModeDeleting:
		content = m.renderDelete()
	case store.ModeChangingStatus:
		content = m.renderStatus()
	}

	return modalStyle.Width(w - 2).Render(content)
}

func (m ItemsModel) renderFormModal(title, action string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(title),
		m.form.View(),
		"",
		m.renderModalStatus(),
		m.buttons(action),
	)
}

// renderModalStatus shows the submit spinner or the last failure.
func (m ItemsModel) renderModalStatus() string {
	if m.flow.Pending() {
		return m.spinner.View() + " Saving..."
	}
	if err := m.flow.Err(); err != nil {
		return ErrorStyle.Render(err.Error())
	}
	return ""
}

func (m ItemsModel) buttons(action string) string {
	return PromptStyle.Render("[ctrl+s] "+action) + "  " + dimStyle.Render("[esc] Cancel")
}

func field(label, value string) string {
	if value == "" {
		value = dimStyle.Render("None")
	} else {
		value = valueStyle.Render(value)
	}
	return labelStyle.Render(fmt.Sprintf("%-18s", label)) + value
}

func (m ItemsModel) memberName(member domain.Member) string {
	if name := member.FullName(); name != "" {
		return name
	}
	if member.ID == "" {
		return ""
	}
	return m.store.MemberName(member.ID)
}

func (m ItemsModel) renderPreview(width int) string {
	item := m.flow.Item()

	status := activeBadgeStyle.Render("Active")
	if item.IsCompleted {
		status = successStyle.Render("Completed")
	}

	event := ""
	if item.Event != nil {
		event = item.Event.Title
	}

	lines := []string{
		TitleStyle.Render("Agenda Item Details"),
		field("Assignee", m.memberName(item.Assignee)),
		field("Assigner", m.memberName(item.Assigner)),
		field("Category", item.Category.Name),
		field("Event", event),
		labelStyle.Render(fmt.Sprintf("%-18s", "Status")) + status,
		field("Assignment Date", item.AssignmentDate),
		field("Due Date", item.DueDate),
		field("Completion Date", item.CompletionDate),
		"",
		labelStyle.Render(domain.NotePreCompletion.Label()),
		notes(item.PreCompletionNotes, width),
		labelStyle.Render(domain.NotePostCompletion.Label()),
		notes(item.PostCompletionNotes, width),
		dimStyle.Render("esc to close"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func notes(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return dimStyle.Render("  None") + "\n"
	}
	return renderMarkdown(text, width)
}

func (m ItemsModel) renderDelete() string {
	item := m.flow.Item()
	preview, _ := store.Truncate(item.PreCompletionNotes)

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Delete Agenda Item"),
		fmt.Sprintf("Delete the item assigned to %s?", valueStyle.Render(m.memberName(item.Assignee))),
		dimStyle.Render(preview),
		"",
		warningStyle.Render("This cannot be undone."),
		m.renderModalStatus(),
		PromptStyle.Render("[y] Yes")+"  "+dimStyle.Render("[n] No"),
	)
}

func (m ItemsModel) renderStatus() string {
	change := m.flow.Status
	target := "active"
	if change.TargetCompleted {
		target = "completed"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Change Status"),
		fmt.Sprintf("Mark this item as %s.", target),
		"",
		labelStyle.Render(change.Field.Label()),
		m.note.View(),
		"",
		m.renderModalStatus(),
		m.buttons(change.SubmitLabel()),
	)
}
