package gql

// OrderBy values accepted by the agendaItemsByOrganization query.
const (
	OrderCreatedAtAsc  = "createdAt_ASC"
	OrderCreatedAtDesc = "createdAt_DESC"
)

// ItemQuery holds the variables of the AgendaItemsByOrganization query.
type ItemQuery struct {
	OrganizationID string
	EventID        string // Non-empty scopes the list to one event
	CategoryID     string // Empty means no category filter
	OrderBy        string // OrderCreatedAtAsc or OrderCreatedAtDesc
	IsActive       bool
	IsCompleted    bool
}

// vars returns the request variables. Event-scoped queries carry only the
// organization, event and ordering; organization queries carry the filters.
func (q ItemQuery) vars() map[string]interface{} {
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = OrderCreatedAtDesc
	}

	v := map[string]interface{}{
		"organizationId": q.OrganizationID,
		"orderBy":        orderBy,
	}
	if q.EventID != "" {
		v["eventId"] = q.EventID
		return v
	}
	v["agendaItemCategoryId"] = q.CategoryID
	v["isActive"] = q.IsActive
	v["isCompleted"] = q.IsCompleted
	return v
}

// CreateItemInput holds the variables of the CreateAgendaItem mutation.
type CreateItemInput struct {
	AssigneeID         string
	CategoryID         string
	PreCompletionNotes string
	DueDate            string // YYYY-MM-DD
	EventID            string // Optional
}

// UpdateItemInput holds the variables of the UpdateAgendaItem mutation.
type UpdateItemInput struct {
	AssigneeID          string
	PreCompletionNotes  string
	PostCompletionNotes string
	DueDate             string // YYYY-MM-DD
	CompletionDate      string // YYYY-MM-DD
	IsCompleted         bool
}

// CategoryPatch holds the optional fields of the UpdateAgendaItemCategory mutation.
// Nil fields are not sent.
type CategoryPatch struct {
	Name       *string
	IsDisabled *bool
}

// SectionInput is the input of CreateAgendaSection and UpdateAgendaSection.
// For updates, zero-valued fields are not sent.
type SectionInput struct {
	Description    string
	Sequence       int
	RelatedEventID string
	ItemIDs        []string
}

func (in SectionInput) vars() map[string]interface{} {
	v := map[string]interface{}{}
	if in.Description != "" {
		v["description"] = in.Description
	}
	if in.Sequence != 0 {
		v["sequence"] = in.Sequence
	}
	if in.RelatedEventID != "" {
		v["relatedEvent"] = in.RelatedEventID
	}
	if len(in.ItemIDs) > 0 {
		v["items"] = in.ItemIDs
	}
	return v
}

// optional maps an empty string to a JSON null.
func optional(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
