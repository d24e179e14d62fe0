package gql

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/h0rv/agendactl/internal/config"
	"github.com/h0rv/agendactl/internal/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrg = "org1"

func newTestClient(t *testing.T, token string) (*Client, *fakeapi.Server) {
	t.Helper()
	api := fakeapi.New()
	api.Seed(testOrg)
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)
	return NewWithToken(srv.URL+fakeapi.Path, token, 5*time.Second), api
}

func TestListAgendaItemsSendsFilters(t *testing.T) {
	client, api := newTestClient(t, "secret")
	ctx := context.Background()

	items, err := client.ListAgendaItems(ctx, ItemQuery{
		OrganizationID: testOrg,
		OrderBy:        OrderCreatedAtAsc,
		IsActive:       true,
	})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.False(t, it.IsCompleted)
	}
	assert.Equal(t, "Book the main hall and two breakout rooms", items[0].PreCompletionNotes)

	vars := api.LastVariables(OpAgendaItemsByOrganization)
	assert.Equal(t, testOrg, vars["organizationId"])
	assert.Equal(t, OrderCreatedAtAsc, vars["orderBy"])
	assert.Equal(t, "", vars["agendaItemCategoryId"])
	assert.Equal(t, true, vars["isActive"])
	assert.Equal(t, false, vars["isCompleted"])
	assert.NotContains(t, vars, "eventId")
}

func TestListAgendaItemsEventScope(t *testing.T) {
	client, api := newTestClient(t, "")

	items, err := client.ListAgendaItems(context.Background(), ItemQuery{
		OrganizationID: testOrg,
		EventID:        fakeapi.DemoEventID,
	})
	require.NoError(t, err)
	assert.Len(t, items, 3)
	require.NotNil(t, items[0].Event)
	assert.Equal(t, fakeapi.DemoEventID, items[0].Event.ID)

	vars := api.LastVariables(OpAgendaItemsByOrganization)
	assert.Equal(t, OrderCreatedAtDesc, vars["orderBy"])
	assert.Equal(t, fakeapi.DemoEventID, vars["eventId"])
	assert.NotContains(t, vars, "agendaItemCategoryId")
	assert.NotContains(t, vars, "isActive")
}

func TestListAllAgendaItems(t *testing.T) {
	client, _ := newTestClient(t, "")

	items, err := client.ListAllAgendaItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Book the main hall and two breakout rooms", items[0].PreCompletionNotes)
	assert.Equal(t, "Order badges", items[4].PreCompletionNotes)
}

func TestRequestHeaders(t *testing.T) {
	client, api := newTestClient(t, "secret")

	_, err := client.ListCategories(context.Background(), testOrg)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", api.LastHeader("Authorization"))
	assert.NotEmpty(t, api.LastHeader("X-Request-ID"))

	anon, api2 := newTestClient(t, "")
	_, err = anon.ListCategories(context.Background(), testOrg)
	require.NoError(t, err)
	assert.Empty(t, api2.LastHeader("Authorization"))
}

func TestListCategoriesIncludesDisabled(t *testing.T) {
	client, _ := newTestClient(t, "")

	categories, err := client.ListCategories(context.Background(), testOrg)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.True(t, categories[3].IsDisabled)
	assert.Equal(t, "Archive", categories[3].Name)
}

func TestListMembers(t *testing.T) {
	client, _ := newTestClient(t, "")

	members, err := client.ListMembers(context.Background(), testOrg)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Ada Lovelace", members[0].FullName())
}

func TestCreateUpdateRemoveItem(t *testing.T) {
	client, api := newTestClient(t, "")
	ctx := context.Background()

	categories, err := client.ListCategories(ctx, testOrg)
	require.NoError(t, err)

	id, err := client.CreateAgendaItem(ctx, CreateItemInput{
		AssigneeID:         fakeapi.DemoViewerID,
		CategoryID:         categories[0].ID,
		PreCompletionNotes: "Print programmes",
		DueDate:            "2024-04-01",
		EventID:            fakeapi.DemoEventID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	item, err := client.GetAgendaItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", item.DueDate)
	assert.Equal(t, "Logistics", item.Category.Name)
	assert.Equal(t, "Ada", item.Creator.FirstName)
	assert.Len(t, item.CreatedAt, len("2006-01-02T15:04:05Z"))

	err = client.UpdateAgendaItem(ctx, id, UpdateItemInput{
		PreCompletionNotes:  item.PreCompletionNotes,
		PostCompletionNotes: "Done at the print shop",
		CompletionDate:      "2024-03-30",
		IsCompleted:         true,
	})
	require.NoError(t, err)

	vars := api.LastVariables(OpUpdateAgendaItem)
	assert.Nil(t, vars["assigneeId"])
	assert.Nil(t, vars["dueDate"])
	assert.Equal(t, true, vars["isCompleted"])

	stored, ok := api.Item(id)
	require.True(t, ok)
	assert.True(t, stored.IsCompleted)
	assert.Equal(t, "Done at the print shop", stored.PostCompletionNotes)
	assert.Equal(t, "2024-04-01", stored.DueDate)

	require.NoError(t, client.RemoveAgendaItem(ctx, id))
	_, err = client.GetAgendaItem(ctx, id)
	assert.ErrorContains(t, err, "not found")
}

func TestUpdateCategorySendsOnlySetFields(t *testing.T) {
	client, api := newTestClient(t, "")
	ctx := context.Background()

	id, err := client.CreateCategory(ctx, "Budget", testOrg)
	require.NoError(t, err)

	disabled := true
	require.NoError(t, client.UpdateCategory(ctx, id, CategoryPatch{IsDisabled: &disabled}))
	vars := api.LastVariables(OpUpdateAgendaItemCategory)
	assert.NotContains(t, vars, "name")
	assert.Equal(t, true, vars["isDisabled"])

	name := "Finance"
	require.NoError(t, client.UpdateCategory(ctx, id, CategoryPatch{Name: &name}))
	vars = api.LastVariables(OpUpdateAgendaItemCategory)
	assert.NotContains(t, vars, "isDisabled")

	got, err := client.GetCategory(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Name)
	assert.True(t, got.IsDisabled)

	assert.Error(t, client.UpdateCategory(ctx, id, CategoryPatch{}))
}

func TestSections(t *testing.T) {
	client, _ := newTestClient(t, "")
	ctx := context.Background()

	id, err := client.CreateSection(ctx, SectionInput{
		Description:    "Opening",
		Sequence:       1,
		RelatedEventID: fakeapi.DemoEventID,
		ItemIDs:        []string{"a"},
	})
	require.NoError(t, err)

	require.NoError(t, client.UpdateSection(ctx, id, SectionInput{Sequence: 2}))

	section, err := client.GetSection(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Opening", section.Description)
	assert.Equal(t, 2, section.Sequence)
	assert.Equal(t, []string{"a"}, section.ItemIDs)
	require.NotNil(t, section.RelatedEvent)
	assert.Equal(t, "Spring Summit", section.RelatedEvent.Title)

	require.NoError(t, client.RemoveSection(ctx, id))
	_, err = client.GetSection(ctx, id)
	assert.Error(t, err)
}

func TestErrorsAreWrapped(t *testing.T) {
	client, api := newTestClient(t, "")
	api.FailNext(OpOrganizationMembers, "database offline")

	_, err := client.ListMembers(context.Background(), testOrg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list members")
	assert.Contains(t, err.Error(), "database offline")
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New(config.Config{})
	assert.ErrorIs(t, err, config.ErrNoEndpoint)
}

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-01", dateOnly("2024-03-01T00:00:00.000Z"))
	assert.Equal(t, "2024-03-01", dateOnly("2024-03-01"))
	assert.Equal(t, "", dateOnly(""))
}
