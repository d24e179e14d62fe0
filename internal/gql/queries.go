package gql

import (
	"context"
	"fmt"

	"github.com/h0rv/agendactl/internal/domain"
	"github.com/machinebox/graphql"
)

// Wire shapes shared by the item queries.
type (
	memberNode struct {
		ID        string `json:"_id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}

	eventNode struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}

	categoryNode struct {
		ID          string `json:"_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		IsDisabled  bool   `json:"isDisabled"`
	}

	itemNode struct {
		ID                  string        `json:"_id"`
		Assignee            *memberNode   `json:"assignee"`
		Assigner            *memberNode   `json:"assigner"`
		Creator             *memberNode   `json:"creator"`
		AgendaItemCategory  *categoryNode `json:"agendaItemCategory"`
		PreCompletionNotes  string        `json:"preCompletionNotes"`
		PostCompletionNotes string        `json:"postCompletionNotes"`
		AssignmentDate      string        `json:"assignmentDate"`
		DueDate             string        `json:"dueDate"`
		CompletionDate      string        `json:"completionDate"`
		CreatedAt           string        `json:"createdAt"`
		IsCompleted         bool          `json:"isCompleted"`
		Event               *eventNode    `json:"event"`
	}
)

// ListAgendaItems fetches the agenda items matching q, in server order.
func (c *Client) ListAgendaItems(ctx context.Context, q ItemQuery) ([]domain.AgendaItem, error) {
	req := graphql.NewRequest(agendaItemsByOrganizationQuery)
	for k, v := range q.vars() {
		req.Var(k, v)
	}

	var resp struct {
		AgendaItemsByOrganization []itemNode `json:"agendaItemsByOrganization"`
	}

	if err := c.makeRequest(ctx, OpAgendaItemsByOrganization, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to list agenda items: %w", err)
	}

	return toItems(resp.AgendaItemsByOrganization), nil
}

// GetAgendaItem fetches a single agenda item by id.
func (c *Client) GetAgendaItem(ctx context.Context, id string) (domain.AgendaItem, error) {
	req := graphql.NewRequest(getAgendaItemQuery)
	req.Var("getAgendaItemId", id)

	var resp struct {
		GetAgendaItem *itemNode `json:"getAgendaItem"`
	}

	if err := c.makeRequest(ctx, OpGetAgendaItem, req, &resp); err != nil {
		return domain.AgendaItem{}, fmt.Errorf("failed to get agenda item: %w", err)
	}

	if resp.GetAgendaItem == nil {
		return domain.AgendaItem{}, fmt.Errorf("agenda item %s not found", id)
	}

	return toItem(*resp.GetAgendaItem), nil
}

// ListAllAgendaItems fetches every agenda item visible to the caller.
func (c *Client) ListAllAgendaItems(ctx context.Context) ([]domain.AgendaItem, error) {
	req := graphql.NewRequest(getAllAgendaItemsQuery)

	var resp struct {
		GetAllAgendaItems []itemNode `json:"getAllAgendaItems"`
	}

	if err := c.makeRequest(ctx, OpGetAllAgendaItems, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to list all agenda items: %w", err)
	}

	return toItems(resp.GetAllAgendaItems), nil
}

// ListCategories fetches all agenda item categories of an organization, disabled ones included.
func (c *Client) ListCategories(ctx context.Context, organizationID string) ([]domain.AgendaItemCategory, error) {
	req := graphql.NewRequest(agendaItemCategoriesByOrganizationQuery)
	req.Var("organizationId", organizationID)

	var resp struct {
		Categories []categoryNode `json:"agendaItemCategoriesByOrganization"`
	}

	if err := c.makeRequest(ctx, OpAgendaItemCategoriesByOrganization, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to list agenda item categories: %w", err)
	}

	categories := make([]domain.AgendaItemCategory, 0, len(resp.Categories))
	for _, node := range resp.Categories {
		categories = append(categories, toCategory(node))
	}

	return categories, nil
}

// GetCategory fetches a single category by id.
func (c *Client) GetCategory(ctx context.Context, id string) (domain.AgendaItemCategory, error) {
	req := graphql.NewRequest(agendaItemCategoryQuery)
	req.Var("agendaItemCategoryId", id)

	var resp struct {
		Category *categoryNode `json:"agendaItemCategory"`
	}

	if err := c.makeRequest(ctx, OpAgendaItemCategory, req, &resp); err != nil {
		return domain.AgendaItemCategory{}, fmt.Errorf("failed to get agenda item category: %w", err)
	}

	if resp.Category == nil {
		return domain.AgendaItemCategory{}, fmt.Errorf("agenda item category %s not found", id)
	}

	return toCategory(*resp.Category), nil
}

// ListMembers fetches the members of an organization (used by assignee pickers).
func (c *Client) ListMembers(ctx context.Context, organizationID string) ([]domain.Member, error) {
	req := graphql.NewRequest(organizationMembersQuery)
	req.Var("id", organizationID)

	var resp struct {
		Organizations []struct {
			ID      string       `json:"_id"`
			Members []memberNode `json:"members"`
		} `json:"organizations"`
	}

	if err := c.makeRequest(ctx, OpOrganizationMembers, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	if len(resp.Organizations) == 0 {
		return nil, fmt.Errorf("organization %s not found", organizationID)
	}

	members := make([]domain.Member, 0, len(resp.Organizations[0].Members))
	for _, node := range resp.Organizations[0].Members {
		members = append(members, toMember(&node))
	}

	return members, nil
}

// GetSection fetches a single agenda section by id.
func (c *Client) GetSection(ctx context.Context, id string) (domain.AgendaSection, error) {
	req := graphql.NewRequest(getAgendaSectionQuery)
	req.Var("getAgendaSectionId", id)

	var resp struct {
		GetAgendaSection *struct {
			ID           string     `json:"_id"`
			Description  string     `json:"description"`
			Sequence     int        `json:"sequence"`
			RelatedEvent *eventNode `json:"relatedEvent"`
			Items        []struct {
				ID string `json:"_id"`
			} `json:"items"`
		} `json:"getAgendaSection"`
	}

	if err := c.makeRequest(ctx, OpGetAgendaSection, req, &resp); err != nil {
		return domain.AgendaSection{}, fmt.Errorf("failed to get agenda section: %w", err)
	}

	node := resp.GetAgendaSection
	if node == nil {
		return domain.AgendaSection{}, fmt.Errorf("agenda section %s not found", id)
	}

	section := domain.AgendaSection{
		ID:          node.ID,
		Description: node.Description,
		Sequence:    node.Sequence,
		ItemIDs:     make([]string, 0, len(node.Items)),
	}
	if node.RelatedEvent != nil {
		section.RelatedEvent = &domain.EventRef{ID: node.RelatedEvent.ID, Title: node.RelatedEvent.Title}
	}
	for _, it := range node.Items {
		section.ItemIDs = append(section.ItemIDs, it.ID)
	}

	return section, nil
}

func toItems(nodes []itemNode) []domain.AgendaItem {
	items := make([]domain.AgendaItem, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, toItem(node))
	}
	return items
}

func toItem(node itemNode) domain.AgendaItem {
	item := domain.AgendaItem{
		ID:                  node.ID,
		Assignee:            toMember(node.Assignee),
		Assigner:            toMember(node.Assigner),
		Creator:             toMember(node.Creator),
		PreCompletionNotes:  node.PreCompletionNotes,
		PostCompletionNotes: node.PostCompletionNotes,
		AssignmentDate:      dateOnly(node.AssignmentDate),
		DueDate:             dateOnly(node.DueDate),
		CompletionDate:      dateOnly(node.CompletionDate),
		CreatedAt:           node.CreatedAt,
		IsCompleted:         node.IsCompleted,
	}

	if node.AgendaItemCategory != nil {
		item.Category = toCategory(*node.AgendaItemCategory)
	}

	// Null event means an organization-wide item
	if node.Event != nil {
		item.Event = &domain.EventRef{ID: node.Event.ID, Title: node.Event.Title}
	}

	return item
}

// toMember handles deleted users (nil member).
func toMember(node *memberNode) domain.Member {
	if node == nil {
		return domain.Member{}
	}
	return domain.Member{
		ID:        node.ID,
		FirstName: node.FirstName,
		LastName:  node.LastName,
		Email:     node.Email,
	}
}

func toCategory(node categoryNode) domain.AgendaItemCategory {
	return domain.AgendaItemCategory{
		ID:          node.ID,
		Name:        node.Name,
		Description: node.Description,
		IsDisabled:  node.IsDisabled,
	}
}

// dateOnly trims ISO8601 timestamps down to YYYY-MM-DD.
func dateOnly(s string) string {
	if len(s) > len(domain.DateLayout) {
		return s[:len(domain.DateLayout)]
	}
	return s
}
