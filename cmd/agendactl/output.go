package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
)

// JSON shapes of the --json output.
type (
	memberJSON struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	eventJSON struct {
		ID    string `json:"id"`
		Title string `json:"title,omitempty"`
	}
	categoryJSON struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		IsDisabled  bool   `json:"isDisabled"`
	}
	itemJSON struct {
		ID                  string     `json:"id"`
		Assignee            memberJSON `json:"assignee"`
		Assigner            memberJSON `json:"assigner"`
		Category            string     `json:"category"`
		PreCompletionNotes  string     `json:"preCompletionNotes"`
		PostCompletionNotes string     `json:"postCompletionNotes"`
		DueDate             string     `json:"dueDate"`
		CompletionDate      string     `json:"completionDate,omitempty"`
		AssignmentDate      string     `json:"assignmentDate,omitempty"`
		CreatedAt           string     `json:"createdAt,omitempty"`
		IsCompleted         bool       `json:"isCompleted"`
		Event               *eventJSON `json:"event,omitempty"`
	}
	sectionJSON struct {
		ID          string     `json:"id"`
		Description string     `json:"description"`
		Sequence    int        `json:"sequence"`
		Event       *eventJSON `json:"event,omitempty"`
		Items       []string   `json:"items"`
	}
)

func toMemberJSON(m domain.Member) memberJSON {
	return memberJSON{ID: m.ID, Name: m.FullName()}
}

func toEventJSON(e *domain.EventRef) *eventJSON {
	if e == nil {
		return nil
	}
	return &eventJSON{ID: e.ID, Title: e.Title}
}

func toItemJSON(it domain.AgendaItem) itemJSON {
	return itemJSON{
		ID:                  it.ID,
		Assignee:            toMemberJSON(it.Assignee),
		Assigner:            toMemberJSON(it.Assigner),
		Category:            it.Category.Name,
		PreCompletionNotes:  it.PreCompletionNotes,
		PostCompletionNotes: it.PostCompletionNotes,
		DueDate:             it.DueDate,
		CompletionDate:      it.CompletionDate,
		AssignmentDate:      it.AssignmentDate,
		CreatedAt:           it.CreatedAt,
		IsCompleted:         it.IsCompleted,
		Event:               toEventJSON(it.Event),
	}
}

func toCategoryJSON(c domain.AgendaItemCategory) categoryJSON {
	return categoryJSON{ID: c.ID, Name: c.Name, Description: c.Description, IsDisabled: c.IsDisabled}
}

func toSectionJSON(s domain.AgendaSection) sectionJSON {
	items := s.ItemIDs
	if items == nil {
		items = []string{}
	}
	return sectionJSON{ID: s.ID, Description: s.Description, Sequence: s.Sequence, Event: toEventJSON(s.RelatedEvent), Items: items}
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

var headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var bodyCell = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
}

func writeItemsTable(w io.Writer, items []domain.AgendaItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No agenda items found")
		return err
	}

	t := newTable("ID", "Assignee", "Category", "Pre Completion Notes", "Post Completion Notes", "Due Date", "Done")
	for _, it := range items {
		pre, _ := store.Truncate(it.PreCompletionNotes)
		post := "Active"
		if it.IsCompleted {
			post, _ = store.Truncate(it.PostCompletionNotes)
		}
		done := "no"
		if it.IsCompleted {
			done = "yes"
		}
		t.Row(it.ID, it.Assignee.FullName(), it.Category.Name, pre, post, it.DueDate, done)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeItemDetail(w io.Writer, it domain.AgendaItem) error {
	status := "Active"
	if it.IsCompleted {
		status = "Completed"
	}
	event := ""
	if it.Event != nil {
		event = it.Event.Title
	}

	rows := [][2]string{
		{"ID", it.ID},
		{"Assignee", it.Assignee.FullName()},
		{"Assigner", it.Assigner.FullName()},
		{"Category", it.Category.Name},
		{"Event", event},
		{"Status", status},
		{"Assignment Date", it.AssignmentDate},
		{"Due Date", it.DueDate},
		{"Completion Date", it.CompletionDate},
		{domain.NotePreCompletion.Label(), it.PreCompletionNotes},
		{domain.NotePostCompletion.Label(), it.PostCompletionNotes},
	}
	return writeFields(w, rows)
}

func writeFields(w io.Writer, rows [][2]string) error {
	var b strings.Builder
	for _, r := range rows {
		value := r[1]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "%-22s %s\n", r[0]+":", value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeCategoriesTable(w io.Writer, categories []domain.AgendaItemCategory) error {
	t := newTable("ID", "Name", "Description", "Status")
	for _, c := range categories {
		status := "enabled"
		if c.IsDisabled {
			status = "disabled"
		}
		t.Row(c.ID, c.Name, c.Description, status)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeSectionDetail(w io.Writer, s domain.AgendaSection) error {
	event := ""
	if s.RelatedEvent != nil {
		event = s.RelatedEvent.ID
	}
	return writeFields(w, [][2]string{
		{"ID", s.ID},
		{"Description", s.Description},
		{"Sequence", strconv.Itoa(s.Sequence)},
		{"Event", event},
		{"Items", strings.Join(s.ItemIDs, ", ")},
	})
}
