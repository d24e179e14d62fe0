package gql

import (
	"context"
	"errors"
	"fmt"

	"github.com/machinebox/graphql"
)

type idPayload struct {
	ID string `json:"_id"`
}

// CreateAgendaItem creates an agenda item and returns its id.
func (c *Client) CreateAgendaItem(ctx context.Context, in CreateItemInput) (string, error) {
	req := graphql.NewRequest(createAgendaItemMutation)
	req.Var("assigneeId", in.AssigneeID)
	req.Var("agendaItemCategoryId", in.CategoryID)
	req.Var("preCompletionNotes", in.PreCompletionNotes)
	req.Var("dueDate", optional(in.DueDate))
	if in.EventID != "" {
		req.Var("eventId", in.EventID)
	}

	var resp struct {
		CreateAgendaItem idPayload `json:"createAgendaItem"`
	}

	if err := c.makeRequest(ctx, OpCreateAgendaItem, req, &resp); err != nil {
		return "", fmt.Errorf("failed to create agenda item: %w", err)
	}

	return resp.CreateAgendaItem.ID, nil
}

// UpdateAgendaItem updates any editable field of an agenda item.
// The status-toggle shortcut goes through here too, with the flipped flag and the new note.
func (c *Client) UpdateAgendaItem(ctx context.Context, id string, in UpdateItemInput) error {
	req := graphql.NewRequest(updateAgendaItemMutation)
	req.Var("agendaItemId", id)
	req.Var("assigneeId", optional(in.AssigneeID))
	req.Var("preCompletionNotes", in.PreCompletionNotes)
	req.Var("postCompletionNotes", in.PostCompletionNotes)
	req.Var("dueDate", optional(in.DueDate))
	req.Var("completionDate", optional(in.CompletionDate))
	req.Var("isCompleted", in.IsCompleted)

	var resp struct {
		UpdateAgendaItem idPayload `json:"updateAgendaItem"`
	}

	if err := c.makeRequest(ctx, OpUpdateAgendaItem, req, &resp); err != nil {
		return fmt.Errorf("failed to update agenda item: %w", err)
	}

	return nil
}

// RemoveAgendaItem deletes an agenda item.
func (c *Client) RemoveAgendaItem(ctx context.Context, id string) error {
	req := graphql.NewRequest(removeAgendaItemMutation)
	req.Var("agendaItemId", id)

	var resp struct {
		RemoveAgendaItem idPayload `json:"removeAgendaItem"`
	}

	if err := c.makeRequest(ctx, OpRemoveAgendaItem, req, &resp); err != nil {
		return fmt.Errorf("failed to remove agenda item: %w", err)
	}

	return nil
}

// CreateCategory creates an agenda item category in an organization and returns its id.
func (c *Client) CreateCategory(ctx context.Context, name, organizationID string) (string, error) {
	req := graphql.NewRequest(createAgendaItemCategoryMutation)
	req.Var("name", name)
	req.Var("organizationId", organizationID)

	var resp struct {
		CreateAgendaItemCategory idPayload `json:"createAgendaItemCategory"`
	}

	if err := c.makeRequest(ctx, OpCreateAgendaItemCategory, req, &resp); err != nil {
		return "", fmt.Errorf("failed to create agenda item category: %w", err)
	}

	return resp.CreateAgendaItemCategory.ID, nil
}

// UpdateCategory renames and/or enables/disables a category. Only the set fields of patch are sent.
func (c *Client) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) error {
	if patch.Name == nil && patch.IsDisabled == nil {
		return errors.New("empty category update")
	}

	req := graphql.NewRequest(updateAgendaItemCategoryMutation)
	req.Var("agendaItemCategoryId", id)
	if patch.Name != nil {
		req.Var("name", *patch.Name)
	}
	if patch.IsDisabled != nil {
		req.Var("isDisabled", *patch.IsDisabled)
	}

	var resp struct {
		UpdateAgendaItemCategory idPayload `json:"updateAgendaItemCategory"`
	}

	if err := c.makeRequest(ctx, OpUpdateAgendaItemCategory, req, &resp); err != nil {
		return fmt.Errorf("failed to update agenda item category: %w", err)
	}

	return nil
}

// CreateSection creates an agenda section and returns its id.
func (c *Client) CreateSection(ctx context.Context, in SectionInput) (string, error) {
	req := graphql.NewRequest(createAgendaSectionMutation)
	req.Var("input", in.vars())

	var resp struct {
		CreateAgendaSection idPayload `json:"createAgendaSection"`
	}

	if err := c.makeRequest(ctx, OpCreateAgendaSection, req, &resp); err != nil {
		return "", fmt.Errorf("failed to create agenda section: %w", err)
	}

	return resp.CreateAgendaSection.ID, nil
}

// UpdateSection updates the non-zero fields of in on an agenda section.
func (c *Client) UpdateSection(ctx context.Context, id string, in SectionInput) error {
	req := graphql.NewRequest(updateAgendaSectionMutation)
	req.Var("updateAgendaSectionId", id)
	req.Var("input", in.vars())

	var resp struct {
		UpdateAgendaSection idPayload `json:"updateAgendaSection"`
	}

	if err := c.makeRequest(ctx, OpUpdateAgendaSection, req, &resp); err != nil {
		return fmt.Errorf("failed to update agenda section: %w", err)
	}

	return nil
}

// RemoveSection deletes an agenda section.
func (c *Client) RemoveSection(ctx context.Context, id string) error {
	req := graphql.NewRequest(removeAgendaSectionMutation)
	req.Var("removeAgendaSectionId", id)

	var resp struct {
		RemoveAgendaSection string `json:"removeAgendaSection"`
	}

	if err := c.makeRequest(ctx, OpRemoveAgendaSection, req, &resp); err != nil {
		return fmt.Errorf("failed to remove agenda section: %w", err)
	}

	return nil
}
