package store

import (
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/gql"
)

// NoteFieldFor returns the note a status change asks for: completing an
// item asks for the post-completion note, reopening it for the
// pre-completion note.
func NoteFieldFor(targetCompleted bool) domain.NoteField {
	if targetCompleted {
		return domain.NotePostCompletion
	}
	return domain.NotePreCompletion
}

// StatusChange is a pending completion toggle awaiting its note.
type StatusChange struct {
	Item            domain.AgendaItem
	TargetCompleted bool
	Field           domain.NoteField
	Note            string
}

// NewStatusChange prepares the toggle of item, pre-filling the note with
// the item's current value of the prompted field.
func NewStatusChange(item domain.AgendaItem) StatusChange {
	target := !item.IsCompleted
	field := NoteFieldFor(target)

	note := item.PreCompletionNotes
	if field == domain.NotePostCompletion {
		note = item.PostCompletionNotes
	}

	return StatusChange{
		Item:            item,
		TargetCompleted: target,
		Field:           field,
		Note:            note,
	}
}

// SubmitLabel is the text of the confirm button.
func (c StatusChange) SubmitLabel() string {
	if c.TargetCompleted {
		return "Mark completed"
	}
	return "Make active"
}

// Input returns the update that flips the completion flag and stores the note.
// The other fields are carried over unchanged.
func (c StatusChange) Input() gql.UpdateItemInput {
	in := gql.UpdateItemInput{
		AssigneeID:          c.Item.Assignee.ID,
		PreCompletionNotes:  c.Item.PreCompletionNotes,
		PostCompletionNotes: c.Item.PostCompletionNotes,
		DueDate:             c.Item.DueDate,
		CompletionDate:      c.Item.CompletionDate,
		IsCompleted:         c.TargetCompleted,
	}
	if c.Field == domain.NotePostCompletion {
		in.PostCompletionNotes = c.Note
	} else {
		in.PreCompletionNotes = c.Note
	}
	return in
}
