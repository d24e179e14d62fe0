package store

import "github.com/h0rv/agendactl/internal/gql"

// SortOrder is the creation-date ordering requested from the server.
type SortOrder int

const (
	SortLatest SortOrder = iota // Newest first (default)
	SortEarliest
)

// String returns the label shown in the filter bar.
func (o SortOrder) String() string {
	if o == SortEarliest {
		return "Earliest"
	}
	return "Latest"
}

// OrderBy returns the orderBy query variable for o.
func (o SortOrder) OrderBy() string {
	if o == SortEarliest {
		return gql.OrderCreatedAtAsc
	}
	return gql.OrderCreatedAtDesc
}

// StatusFilter restricts the list to active or completed items.
type StatusFilter int

const (
	StatusAll StatusFilter = iota // No status filter (default)
	StatusActive
	StatusCompleted
)

// String returns the label shown in the filter bar.
func (s StatusFilter) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// CategoryFilter restricts the list to one category. A zero value means unset.
type CategoryFilter struct {
	ID   string
	Name string
}

// IsSet reports whether a category is selected.
func (c CategoryFilter) IsSet() bool {
	return c.ID != ""
}

// Filter is the sort/status/category selection of the items screen.
// The list is never filtered locally: each change is turned into query
// variables and the list is refetched.
type Filter struct {
	Sort     SortOrder
	Status   StatusFilter
	Category CategoryFilter
}

// SetSort selects the sort order.
func (f *Filter) SetSort(order SortOrder) {
	f.Sort = order
}

// ToggleSort switches between Latest and Earliest.
func (f *Filter) ToggleSort() {
	if f.Sort == SortLatest {
		f.Sort = SortEarliest
		return
	}
	f.Sort = SortLatest
}

// SetStatus selects the status filter.
func (f *Filter) SetStatus(status StatusFilter) {
	f.Status = status
}

// CycleStatus moves All -> Active -> Completed -> Active.
func (f *Filter) CycleStatus() {
	if f.Status == StatusActive {
		f.Status = StatusCompleted
		return
	}
	f.Status = StatusActive
}

// SetCategory selects a category.
func (f *Filter) SetCategory(c CategoryFilter) {
	f.Category = c
}

// ClearSort resets the sort order only.
func (f *Filter) ClearSort() {
	f.Sort = SortLatest
}

// ClearStatus resets the status filter only.
func (f *Filter) ClearStatus() {
	f.Status = StatusAll
}

// ClearCategory resets the category filter only.
func (f *Filter) ClearCategory() {
	f.Category = CategoryFilter{}
}

// ClearAll resets every selector to its default.
func (f *Filter) ClearAll() {
	*f = Filter{}
}

// IsDefault reports whether no selector differs from its default.
func (f Filter) IsDefault() bool {
	return f == Filter{}
}

// Badges returns the labels of the selectors that differ from the default.
func (f Filter) Badges() []string {
	var badges []string
	if f.Sort != SortLatest {
		badges = append(badges, "Sort: "+f.Sort.String())
	}
	if f.Status != StatusAll {
		badges = append(badges, "Status: "+f.Status.String())
	}
	if f.Category.IsSet() {
		badges = append(badges, "Category: "+f.Category.Name)
	}
	return badges
}

// Query builds the item query variables for an organization, optionally
// scoped to one event. Event scope carries no filters.
func (f Filter) Query(organizationID, eventID string) gql.ItemQuery {
	if eventID != "" {
		return gql.ItemQuery{
			OrganizationID: organizationID,
			EventID:        eventID,
			OrderBy:        gql.OrderCreatedAtDesc,
		}
	}
	return gql.ItemQuery{
		OrganizationID: organizationID,
		CategoryID:     f.Category.ID,
		OrderBy:        f.Sort.OrderBy(),
		IsActive:       f.Status == StatusActive,
		IsCompleted:    f.Status == StatusCompleted,
	}
}
