// Package store provides the in-memory state of the agenda screens.
// It holds the snapshot of the last fetch (items, categories, members)
// together with the filter selection and the modal workflows, following
// the "deep modules" principle - simple interface hiding the state rules.
package store

import (
	"errors"

	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/gql"
)

// ErrItemNotFound indicates the requested item is not in the snapshot.
var ErrItemNotFound = errors.New("agenda item not found")

// Store holds the last fetched data for one organization, optionally
// scoped to a single event. Items are kept in server order and are
// replaced wholesale on each refetch.
type Store struct {
	organizationID string
	eventID        string // Empty for the organization-wide list

	items      []domain.AgendaItem
	index      map[string]int // ItemID -> position in items
	categories []domain.AgendaItemCategory
	members    []domain.Member

	Filter Filter
}

// New creates an empty Store for an organization. A non-empty eventID
// scopes the item list to that event.
func New(organizationID, eventID string) *Store {
	return &Store{
		organizationID: organizationID,
		eventID:        eventID,
		index:          make(map[string]int),
	}
}

// OrganizationID returns the organization the store belongs to.
func (s *Store) OrganizationID() string {
	return s.organizationID
}

// EventID returns the event scope, or "" for the organization-wide list.
func (s *Store) EventID() string {
	return s.eventID
}

// SetItems replaces the items with a fresh fetch, preserving its order.
func (s *Store) SetItems(items []domain.AgendaItem) {
	s.items = items
	s.index = make(map[string]int, len(items))
	for i, it := range items {
		s.index[it.ID] = i
	}
}

// Items returns the items in server order.
func (s *Store) Items() []domain.AgendaItem {
	return s.items
}

// GetItem returns the item with id, or ErrItemNotFound.
func (s *Store) GetItem(id string) (domain.AgendaItem, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.AgendaItem{}, ErrItemNotFound
	}
	return s.items[i], nil
}

// SetCategories replaces the categories, disabled ones included.
func (s *Store) SetCategories(categories []domain.AgendaItemCategory) {
	s.categories = categories
}

// Categories returns all categories.
func (s *Store) Categories() []domain.AgendaItemCategory {
	return s.categories
}

// EnabledCategories returns the categories offered by pickers and filters.
func (s *Store) EnabledCategories() []domain.AgendaItemCategory {
	return EnabledCategories(s.categories)
}

// SetMembers replaces the organization members.
func (s *Store) SetMembers(members []domain.Member) {
	s.members = members
}

// Members returns the organization members.
func (s *Store) Members() []domain.Member {
	return s.members
}

// MemberName returns the full name of the member with id, or "" if unknown.
func (s *Store) MemberName(id string) string {
	for _, m := range s.members {
		if m.ID == id {
			return m.FullName()
		}
	}
	return ""
}

// Query returns the item query for the current filter and scope.
func (s *Store) Query() gql.ItemQuery {
	return s.Filter.Query(s.organizationID, s.eventID)
}

// Clear drops the fetched data, preserving scope and filter.
func (s *Store) Clear() {
	s.items = nil
	s.index = make(map[string]int)
	s.categories = nil
	s.members = nil
}
