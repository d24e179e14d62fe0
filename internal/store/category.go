package store

import (
	"errors"
	"strings"

	"github.com/h0rv/agendactl/internal/domain"
)

var (
	// ErrSameName indicates a rename to the category's current name.
	ErrSameName = errors.New("category name is unchanged")
	// ErrEmptyName indicates a blank category name.
	ErrEmptyName = errors.New("category name is required")
)

// CategoryEditor is the state of the category create/rename modal.
type CategoryEditor struct {
	open     bool
	category *domain.AgendaItemCategory // nil when creating
	currName string
	pending  bool

	Name string
}

// IsOpen reports whether the modal is open.
func (e *CategoryEditor) IsOpen() bool {
	return e.open
}

// Creating reports whether the modal creates a new category.
func (e *CategoryEditor) Creating() bool {
	return e.category == nil
}

// Category returns the category being renamed, or nil when creating.
func (e *CategoryEditor) Category() *domain.AgendaItemCategory {
	return e.category
}

// Pending reports whether a submission is in flight.
func (e *CategoryEditor) Pending() bool {
	return e.pending
}

// OpenCreate opens the modal with an empty name.
func (e *CategoryEditor) OpenCreate() {
	*e = CategoryEditor{open: true}
}

// OpenRename opens the modal on cat, pre-filled with its current name.
func (e *CategoryEditor) OpenRename(cat domain.AgendaItemCategory) {
	*e = CategoryEditor{open: true, category: &cat, currName: cat.Name, Name: cat.Name}
}

// SetName updates the name input.
func (e *CategoryEditor) SetName(name string) {
	e.Name = name
}

// Validate checks the input before any request is made.
func (e *CategoryEditor) Validate() error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return ErrEmptyName
	}
	if e.category != nil && name == e.currName {
		return ErrSameName
	}
	return nil
}

// BeginSubmit validates the input and marks the modal as submitting.
func (e *CategoryEditor) BeginSubmit() error {
	if !e.open {
		return ErrNotOpen
	}
	if e.pending {
		return ErrSubmitInFlight
	}
	if err := e.Validate(); err != nil {
		return err
	}
	e.pending = true
	return nil
}

// Succeed clears the input and closes the modal.
func (e *CategoryEditor) Succeed() {
	*e = CategoryEditor{}
}

// Fail keeps the modal open with its input.
func (e *CategoryEditor) Fail() {
	e.pending = false
}

// Close discards the modal unless a submission is pending.
func (e *CategoryEditor) Close() bool {
	if e.pending {
		return false
	}
	*e = CategoryEditor{}
	return true
}

// ToggleMessage is the toast shown after enabling or disabling a category.
func ToggleMessage(wasDisabled bool) string {
	if wasDisabled {
		return "Category enabled"
	}
	return "Category disabled"
}

// EnabledCategories returns the categories offered by pickers and filters.
func EnabledCategories(categories []domain.AgendaItemCategory) []domain.AgendaItemCategory {
	enabled := make([]domain.AgendaItemCategory, 0, len(categories))
	for _, c := range categories {
		if !c.IsDisabled {
			enabled = append(enabled, c)
		}
	}
	return enabled
}

// FindByName returns the category named name, ignoring case and surrounding spaces.
func FindByName(categories []domain.AgendaItemCategory, name string) (domain.AgendaItemCategory, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return domain.AgendaItemCategory{}, false
}
