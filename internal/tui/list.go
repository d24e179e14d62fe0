package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
	"github.com/muesli/reflow/wordwrap"
)

// EmptyListText replaces the table body when there are no items.
const EmptyListText = "No agenda items found"

// Column widths of the item table. Notes fit store.PreviewLength plus "...".
const (
	assigneeWidth = 20
	categoryWidth = 16
	noteWidth     = store.PreviewLength + 5
	dateWidth     = 12
	doneWidth     = 6
)

// itemList renders agenda items as table rows in the order given; it never
// re-sorts. The row under the cursor is the hover target: when one of its
// notes is truncated, a popover with the full text is shown for that item.
type itemList struct {
	items   []domain.AgendaItem
	members []domain.Member
	cursor  int
	offset  int
	rows    int    // Visible rows, set from the window height
	hoverID string // Item whose popover is shown, "" for none
}

// SetRows sets how many rows fit on screen.
func (l *itemList) SetRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	l.rows = rows
	l.scroll()
}

// scroll keeps the cursor inside the visible window.
func (l *itemList) scroll() {
	rows := l.rows
	if rows < 1 {
		rows = 1
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

// SetItems replaces the rows, keeping the cursor in range.
func (l *itemList) SetItems(items []domain.AgendaItem, members []domain.Member) {
	l.items = items
	l.members = members
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.scroll()
	l.hover()
}

// Move moves the cursor by delta, clamped to the rows.
func (l *itemList) Move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	l.scroll()
	l.hover()
}

// Selected returns the item under the cursor.
func (l itemList) Selected() (domain.AgendaItem, bool) {
	if len(l.items) == 0 {
		return domain.AgendaItem{}, false
	}
	return l.items[l.cursor], true
}

// hover points the popover at the selected row if it has truncated text,
// hiding it otherwise.
func (l *itemList) hover() {
	l.hoverID = ""
	item, ok := l.Selected()
	if !ok {
		return
	}
	_, preCut := store.Truncate(item.PreCompletionNotes)
	_, postCut := store.Truncate(item.PostCompletionNotes)
	if preCut || (item.IsCompleted && postCut) {
		l.hoverID = item.ID
	}
}

func (l itemList) assigneeName(item domain.AgendaItem) string {
	if name := item.Assignee.FullName(); name != "" {
		return name
	}
	for _, m := range l.members {
		if m.ID == item.Assignee.ID {
			return m.FullName()
		}
	}
	return "Unknown"
}

// View renders the header and as many rows as fit in height.
func (l itemList) View(width, height int) string {
	if len(l.items) == 0 {
		return lipgloss.Place(width, max(height, 3), lipgloss.Center, lipgloss.Center, dimStyle.Render(EmptyListText))
	}

	var lines []string
	lines = append(lines, headerStyle.Render(l.row("  ", "Assignee", "Category", "Pre Completion Notes", "Post Completion Notes", "Due Date", "Done")))

	popover := l.popover(width)
	rows := height - 1
	if popover != "" {
		rows -= lipgloss.Height(popover)
	}
	if rows < 1 {
		rows = 1
	}
	// The popover can shrink the window below l.rows
	offset := l.offset
	if l.cursor >= offset+rows {
		offset = l.cursor - rows + 1
	}

	end := offset + rows
	if end > len(l.items) {
		end = len(l.items)
	}
	for i := offset; i < end; i++ {
		item := l.items[i]
		pre, _ := store.Truncate(item.PreCompletionNotes)

		post := activeBadgeStyle.Render("Active")
		if item.IsCompleted {
			post, _ = store.Truncate(item.PostCompletionNotes)
		}

		done := "[ ]"
		if item.IsCompleted {
			done = "[x]"
		}

		prefix := "  "
		style := NormalItemStyle
		if i == l.cursor {
			prefix = "> "
			style = SelectedItemStyle
		}
		lines = append(lines, style.Render(l.row(prefix, l.assigneeName(item), item.Category.Name, pre, post, item.DueDate, done)))
	}

	if remaining := len(l.items) - end; remaining > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  ↓ %d more", remaining)))
	}
	if popover != "" {
		lines = append(lines, popover)
	}

	return strings.Join(lines, "\n")
}

func (l itemList) row(prefix, assignee, category, pre, post, due, done string) string {
	cell := func(s string, w int) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).MaxHeight(1).Render(s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		prefix,
		cell(assignee, assigneeWidth),
		cell(category, categoryWidth),
		cell(pre, noteWidth),
		cell(post, noteWidth),
		cell(due, dateWidth),
		cell(done, doneWidth),
	)
}

// popover renders the full notes of the hovered item.
func (l itemList) popover(width int) string {
	item, ok := l.Selected()
	if !ok || l.hoverID == "" || l.hoverID != item.ID {
		return ""
	}

	wrap := width - 6
	if wrap < 20 {
		wrap = 20
	}

	var parts []string
	if _, cut := store.Truncate(item.PreCompletionNotes); cut {
		parts = append(parts, labelStyle.Render(domain.NotePreCompletion.Label()), wordwrap.String(item.PreCompletionNotes, wrap))
	}
	if _, cut := store.Truncate(item.PostCompletionNotes); cut && item.IsCompleted {
		parts = append(parts, labelStyle.Render(domain.NotePostCompletion.Label()), wordwrap.String(item.PostCompletionNotes, wrap))
	}
	return popoverStyle.Render(strings.Join(parts, "\n"))
}
