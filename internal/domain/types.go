// Package domain defines the normalized domain types for organization agenda items.
// These types represent the core concepts independent of the GraphQL API structure.
package domain

import "strings"

// DateLayout is the wire and display format for calendar dates (due, completion, assignment).
const DateLayout = "2006-01-02"

// Member represents a member of the organization (read-only reference data).
type Member struct {
	ID        string // Member node ID
	FirstName string
	LastName  string
	Email     string
}

// FullName returns "First Last", trimming missing parts.
func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// AgendaItemCategory tags agenda items. Names are unique per organization only as a UX warning.
type AgendaItemCategory struct {
	ID          string // Category node ID
	Name        string
	Description string
	IsDisabled  bool // Disabled categories are hidden from pickers and filters
}

// EventRef is a lightweight reference to an organization event.
type EventRef struct {
	ID    string
	Title string
}

// AgendaItem is a task assigned to a member, optionally tied to an event.
type AgendaItem struct {
	ID                  string             // Agenda item node ID
	Assignee            Member             // Member the item is assigned to
	Assigner            Member             // Member who assigned it
	Creator             Member             // Member who created it
	Category            AgendaItemCategory // Category reference (ID + name)
	PreCompletionNotes  string             // Note edited while the item is active
	PostCompletionNotes string             // Note edited once the item is completed
	DueDate             string             // YYYY-MM-DD
	CompletionDate      string             // YYYY-MM-DD, may be empty
	AssignmentDate      string             // YYYY-MM-DD
	CreatedAt           string             // ISO8601 timestamp of creation
	IsCompleted         bool
	Event               *EventRef // Related event, nil for organization-wide items
}

// AgendaSection groups agenda items under an event.
type AgendaSection struct {
	ID           string
	Description  string
	Sequence     int
	RelatedEvent *EventRef
	ItemIDs      []string
}

// NoteField identifies which of the two item notes is being edited.
type NoteField int

const (
	NotePreCompletion NoteField = iota
	NotePostCompletion
)

// Label returns the human readable field name.
func (f NoteField) Label() string {
	if f == NotePostCompletion {
		return "Post Completion Notes"
	}
	return "Pre Completion Notes"
}
