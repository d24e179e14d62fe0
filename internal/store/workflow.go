package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/gql"
)

var (
	// ErrSubmitInFlight indicates a submission is already pending.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrNotOpen indicates no modal is open.
	ErrNotOpen = errors.New("no modal open")
	// ErrModalOpen indicates another modal is already open.
	ErrModalOpen = errors.New("another modal is open")
	// ErrMissingAssignee indicates the form has no assignee.
	ErrMissingAssignee = errors.New("assignee is required")
	// ErrMissingCategory indicates the form has no category.
	ErrMissingCategory = errors.New("category is required")
	// ErrInvalidDate indicates a date field is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)

// Mode is the modal currently open on an items screen.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModePreviewing
	ModeEditing
	ModeDeleting
	ModeChangingStatus
)

func (m Mode) String() string {
	switch m {
	case ModeCreating:
		return "create"
	case ModePreviewing:
		return "preview"
	case ModeEditing:
		return "update"
	case ModeDeleting:
		return "delete"
	case ModeChangingStatus:
		return "status"
	default:
		return "idle"
	}
}

// SuccessMessage is the toast shown after a mutation of mode m succeeds.
func (m Mode) SuccessMessage() string {
	switch m {
	case ModeCreating:
		return "Agenda item created"
	case ModeEditing:
		return "Agenda item updated"
	case ModeDeleting:
		return "Agenda item deleted"
	case ModeChangingStatus:
		return "Agenda item status updated"
	default:
		return ""
	}
}

// ItemForm holds the values of the create/update modal.
type ItemForm struct {
	AssigneeID          string
	CategoryID          string
	PreCompletionNotes  string
	PostCompletionNotes string
	DueDate             string // YYYY-MM-DD
	CompletionDate      string // YYYY-MM-DD
	IsCompleted         bool
}

// FormFromItem pre-fills a form with the values of item.
func FormFromItem(item domain.AgendaItem) ItemForm {
	return ItemForm{
		AssigneeID:          item.Assignee.ID,
		CategoryID:          item.Category.ID,
		PreCompletionNotes:  item.PreCompletionNotes,
		PostCompletionNotes: item.PostCompletionNotes,
		DueDate:             item.DueDate,
		CompletionDate:      item.CompletionDate,
		IsCompleted:         item.IsCompleted,
	}
}

// Validate checks the form before it is sent. Creating requires an
// assignee and a category; non-empty dates must be YYYY-MM-DD.
func (f ItemForm) Validate(creating bool) error {
	if creating {
		if f.AssigneeID == "" {
			return ErrMissingAssignee
		}
		if f.CategoryID == "" {
			return ErrMissingCategory
		}
	}
	if err := checkDate("due date", f.DueDate); err != nil {
		return err
	}
	return checkDate("completion date", f.CompletionDate)
}

func checkDate(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidDate, name, value)
	}
	return nil
}

// CreateInput converts the form to a create mutation, optionally tied to an event.
func (f ItemForm) CreateInput(eventID string) gql.CreateItemInput {
	return gql.CreateItemInput{
		AssigneeID:         f.AssigneeID,
		CategoryID:         f.CategoryID,
		PreCompletionNotes: strings.TrimSpace(f.PreCompletionNotes),
		DueDate:            f.DueDate,
		EventID:            eventID,
	}
}

// UpdateInput converts the form to an update mutation.
func (f ItemForm) UpdateInput() gql.UpdateItemInput {
	return gql.UpdateItemInput{
		AssigneeID:          f.AssigneeID,
		PreCompletionNotes:  strings.TrimSpace(f.PreCompletionNotes),
		PostCompletionNotes: strings.TrimSpace(f.PostCompletionNotes),
		DueDate:             f.DueDate,
		CompletionDate:      f.CompletionDate,
		IsCompleted:         f.IsCompleted,
	}
}

// Workflow is the modal state of an items screen: which modal is open,
// on which item, the form values, and whether a submission is pending.
// At most one modal is open at a time.
type Workflow struct {
	mode    Mode
	item    domain.AgendaItem
	pending bool
	err     error

	Form   ItemForm
	Status StatusChange

	now func() time.Time
}

// NewWorkflow creates an idle workflow.
func NewWorkflow() *Workflow {
	return &Workflow{now: time.Now}
}

// Mode returns the open modal.
func (w *Workflow) Mode() Mode {
	return w.mode
}

// Item returns the item the open modal acts on.
func (w *Workflow) Item() domain.AgendaItem {
	return w.item
}

// Pending reports whether a submission is in flight.
func (w *Workflow) Pending() bool {
	return w.pending
}

// Err returns the error of the last failed submission, if any.
func (w *Workflow) Err() error {
	return w.err
}

func (w *Workflow) open(mode Mode, item domain.AgendaItem) error {
	if w.mode != ModeIdle {
		return fmt.Errorf("%w: %s", ErrModalOpen, w.mode)
	}
	w.mode = mode
	w.item = item
	w.err = nil
	return nil
}

// Create opens the create modal with a blank form due today.
func (w *Workflow) Create() error {
	if err := w.open(ModeCreating, domain.AgendaItem{}); err != nil {
		return err
	}
	w.Form = ItemForm{DueDate: w.now().Format(domain.DateLayout)}
	return nil
}

// Preview opens the read-only detail of item.
func (w *Workflow) Preview(item domain.AgendaItem) error {
	return w.open(ModePreviewing, item)
}

// Edit opens the update modal pre-filled with item.
func (w *Workflow) Edit(item domain.AgendaItem) error {
	if err := w.open(ModeEditing, item); err != nil {
		return err
	}
	w.Form = FormFromItem(item)
	return nil
}

// Delete opens the delete confirmation for item.
func (w *Workflow) Delete(item domain.AgendaItem) error {
	return w.open(ModeDeleting, item)
}

// ChangeStatus opens the status modal asking for the note of the new state.
func (w *Workflow) ChangeStatus(item domain.AgendaItem) error {
	if err := w.open(ModeChangingStatus, item); err != nil {
		return err
	}
	w.Status = NewStatusChange(item)
	return nil
}

// Cancel closes the open modal without submitting. It is a no-op while a
// submission is pending.
func (w *Workflow) Cancel() bool {
	if w.pending {
		return false
	}
	w.reset()
	return true
}

// BeginSubmit marks the open modal as submitting. Form modals are
// validated first; a validation error leaves the modal open and idle.
func (w *Workflow) BeginSubmit() error {
	switch {
	case w.mode == ModeIdle || w.mode == ModePreviewing:
		return ErrNotOpen
	case w.pending:
		return ErrSubmitInFlight
	}

	switch w.mode {
	case ModeCreating, ModeEditing:
		if err := w.Form.Validate(w.mode == ModeCreating); err != nil {
			w.err = err
			return err
		}
	}

	w.pending = true
	w.err = nil
	return nil
}

// Succeed closes the modal after a successful submission and returns the
// mode that was open.
func (w *Workflow) Succeed() Mode {
	mode := w.mode
	w.reset()
	return mode
}

// Fail records a failed submission. The modal stays open with its values.
func (w *Workflow) Fail(err error) {
	w.pending = false
	w.err = err
}

func (w *Workflow) reset() {
	w.mode = ModeIdle
	w.item = domain.AgendaItem{}
	w.pending = false
	w.err = nil
	w.Form = ItemForm{}
	w.Status = StatusChange{}
}
