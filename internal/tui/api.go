package tui

import (
	"context"

	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/gql"
)

// API is the subset of the GraphQL client used by the screens.
// *gql.Client implements it.
type API interface {
	ListAgendaItems(ctx context.Context, q gql.ItemQuery) ([]domain.AgendaItem, error)
	ListCategories(ctx context.Context, organizationID string) ([]domain.AgendaItemCategory, error)
	ListMembers(ctx context.Context, organizationID string) ([]domain.Member, error)

	CreateAgendaItem(ctx context.Context, in gql.CreateItemInput) (string, error)
	UpdateAgendaItem(ctx context.Context, id string, in gql.UpdateItemInput) error
	RemoveAgendaItem(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, name, organizationID string) (string, error)
	UpdateCategory(ctx context.Context, id string, patch gql.CategoryPatch) error
}

var _ API = (*gql.Client)(nil)
