// Package tui provides Bubble Tea models for the interactive TUI.
package tui

import (
	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/gql"
	"github.com/h0rv/agendactl/internal/store"
)

// Screen switches between the organization item list and the category screen.
type (
	showCategoriesMsg struct{}
	showItemsMsg      struct{}
)

// Event popup lifecycle.
type (
	openEventMsg  struct{ event domain.EventRef }
	closeEventMsg struct{}
)

// Query results. Each carries its own error so the screen can tell which
// query failed. Item results also carry the query they answer.
type (
	itemsLoadedMsg struct {
		query gql.ItemQuery
		items []domain.AgendaItem
		err   error
	}
	categoriesLoadedMsg struct {
		categories []domain.AgendaItemCategory
		err        error
	}
	membersLoadedMsg struct {
		members []domain.Member
		err     error
	}
)

// Mutation results.
type (
	itemMutatedMsg struct {
		mode store.Mode
		err  error
	}
	categorySavedMsg struct {
		creating bool
		err      error
	}
	categoryToggledMsg struct {
		wasDisabled bool
		err         error
	}
)

// Category filter picker results.
type (
	categoryPickedMsg  struct{ category domain.AgendaItemCategory }
	pickerCancelledMsg struct{}
)
