package store

import (
	"errors"
	"testing"
	"time"

	"github.com/h0rv/agendactl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkflow() *Workflow {
	w := NewWorkflow()
	w.now = func() time.Time { return time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC) }
	return w
}

func TestNoteFieldFor(t *testing.T) {
	assert.Equal(t, domain.NotePostCompletion, NoteFieldFor(true))
	assert.Equal(t, domain.NotePreCompletion, NoteFieldFor(false))
}

func TestStatusChangeCompleting(t *testing.T) {
	item := createTestItems()[0]

	change := NewStatusChange(item)
	assert.True(t, change.TargetCompleted)
	assert.Equal(t, domain.NotePostCompletion, change.Field)
	assert.Equal(t, "Post Completion Notes", change.Field.Label())
	assert.Equal(t, "Mark completed", change.SubmitLabel())
	assert.Empty(t, change.Note)

	change.Note = "Venue booked"
	in := change.Input()
	assert.True(t, in.IsCompleted)
	assert.Equal(t, "Venue booked", in.PostCompletionNotes)
	assert.Equal(t, "Book the venue", in.PreCompletionNotes)
	assert.Equal(t, "m1", in.AssigneeID)
}

func TestStatusChangeReopening(t *testing.T) {
	item := createTestItems()[1]

	change := NewStatusChange(item)
	assert.False(t, change.TargetCompleted)
	assert.Equal(t, domain.NotePreCompletion, change.Field)
	assert.Equal(t, "Make active", change.SubmitLabel())
	assert.Equal(t, "Send invites", change.Note)

	change.Note = "Resend to late signups"
	in := change.Input()
	assert.False(t, in.IsCompleted)
	assert.Equal(t, "Resend to late signups", in.PreCompletionNotes)
	assert.Equal(t, "Sent", in.PostCompletionNotes)
}

func TestWorkflowCreate(t *testing.T) {
	w := newTestWorkflow()
	require.NoError(t, w.Create())

	assert.Equal(t, ModeCreating, w.Mode())
	assert.Equal(t, "2024-05-06", w.Form.DueDate)

	err := w.BeginSubmit()
	assert.ErrorIs(t, err, ErrMissingAssignee)
	assert.False(t, w.Pending())
	assert.Equal(t, ModeCreating, w.Mode())

	w.Form.AssigneeID = "m1"
	assert.ErrorIs(t, w.BeginSubmit(), ErrMissingCategory)

	w.Form.CategoryID = "c1"
	require.NoError(t, w.BeginSubmit())
	assert.True(t, w.Pending())

	assert.Equal(t, ModeCreating, w.Succeed())
	assert.Equal(t, ModeIdle, w.Mode())
	assert.Equal(t, ItemForm{}, w.Form)
}

func TestWorkflowRejectsDoubleSubmit(t *testing.T) {
	w := newTestWorkflow()
	require.NoError(t, w.Delete(createTestItems()[0]))

	require.NoError(t, w.BeginSubmit())
	assert.ErrorIs(t, w.BeginSubmit(), ErrSubmitInFlight)
	assert.False(t, w.Cancel())
	assert.Equal(t, ModeDeleting, w.Mode())
}

func TestWorkflowFailureKeepsValues(t *testing.T) {
	w := newTestWorkflow()
	item := createTestItems()[0]
	require.NoError(t, w.Edit(item))
	w.Form.PreCompletionNotes = "Book the venue and catering"

	require.NoError(t, w.BeginSubmit())
	w.Fail(errors.New("network down"))

	assert.Equal(t, ModeEditing, w.Mode())
	assert.False(t, w.Pending())
	assert.EqualError(t, w.Err(), "network down")
	assert.Equal(t, "Book the venue and catering", w.Form.PreCompletionNotes)
	assert.Equal(t, item.ID, w.Item().ID)

	// Retry is allowed after a failure
	require.NoError(t, w.BeginSubmit())
	assert.Nil(t, w.Err())
}

func TestWorkflowOneModalAtATime(t *testing.T) {
	w := newTestWorkflow()
	item := createTestItems()[0]
	require.NoError(t, w.Preview(item))

	assert.ErrorIs(t, w.Edit(item), ErrModalOpen)
	assert.Equal(t, ModePreviewing, w.Mode())

	assert.True(t, w.Cancel())
	require.NoError(t, w.Edit(item))
	assert.Equal(t, FormFromItem(item), w.Form)
}

func TestWorkflowSubmitWhenIdle(t *testing.T) {
	w := newTestWorkflow()
	assert.ErrorIs(t, w.BeginSubmit(), ErrNotOpen)

	require.NoError(t, w.Preview(createTestItems()[0]))
	assert.ErrorIs(t, w.BeginSubmit(), ErrNotOpen)
}

func TestWorkflowChangeStatus(t *testing.T) {
	w := newTestWorkflow()
	require.NoError(t, w.ChangeStatus(createTestItems()[1]))

	assert.Equal(t, ModeChangingStatus, w.Mode())
	assert.Equal(t, domain.NotePreCompletion, w.Status.Field)
	require.NoError(t, w.BeginSubmit())
	assert.Equal(t, ModeChangingStatus, w.Succeed())
	assert.Equal(t, StatusChange{}, w.Status)
}

func TestItemFormValidateDates(t *testing.T) {
	f := ItemForm{AssigneeID: "m1", CategoryID: "c1", DueDate: "2024-13-01"}
	assert.ErrorIs(t, f.Validate(true), ErrInvalidDate)

	f.DueDate = "2024-12-01"
	f.CompletionDate = "yesterday"
	assert.ErrorIs(t, f.Validate(false), ErrInvalidDate)

	f.CompletionDate = ""
	assert.NoError(t, f.Validate(true))

	// Updates do not require assignee or category
	assert.NoError(t, ItemForm{}.Validate(false))
}

func TestItemFormInputs(t *testing.T) {
	f := ItemForm{
		AssigneeID:         "m1",
		CategoryID:         "c1",
		PreCompletionNotes: "  Print badges \n",
		DueDate:            "2024-06-01",
	}

	in := f.CreateInput("ev1")
	assert.Equal(t, "Print badges", in.PreCompletionNotes)
	assert.Equal(t, "ev1", in.EventID)
	assert.Equal(t, "c1", in.CategoryID)

	up := f.UpdateInput()
	assert.Equal(t, "m1", up.AssigneeID)
	assert.False(t, up.IsCompleted)
}

func TestModeSuccessMessage(t *testing.T) {
	assert.Equal(t, "Agenda item created", ModeCreating.SuccessMessage())
	assert.Equal(t, "Agenda item deleted", ModeDeleting.SuccessMessage())
	assert.Empty(t, ModePreviewing.SuccessMessage())
}
