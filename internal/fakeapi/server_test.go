package fakeapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

func post(t *testing.T, s *Server, query string, vars map[string]interface{}) response {
	t.Helper()
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, Path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestItemsFilteredAndOrdered(t *testing.T) {
	s := New()
	s.Seed("org1")

	resp := post(t, s, "query AgendaItemsByOrganization { x }", map[string]interface{}{
		"organizationId": "org1",
		"orderBy":        "createdAt_ASC",
		"isCompleted":    true,
	})
	require.Empty(t, resp.Errors)

	var items []wireItem
	require.NoError(t, json.Unmarshal(resp.Data["agendaItemsByOrganization"], &items))
	require.Len(t, items, 2)
	assert.True(t, items[0].IsCompleted)
	assert.Equal(t, "Draft newsletter", items[0].PreCompletionNotes)
	assert.Equal(t, "Order badges", items[1].PreCompletionNotes)
	assert.Equal(t, "Ada", items[0].Assigner.FirstName)
}

func TestItemsScopedToEvent(t *testing.T) {
	s := New()
	s.Seed("org1")

	resp := post(t, s, "query AgendaItemsByOrganization { x }", map[string]interface{}{
		"organizationId": "org1",
		"eventId":        DemoEventID,
	})

	var items []wireItem
	require.NoError(t, json.Unmarshal(resp.Data["agendaItemsByOrganization"], &items))
	assert.Len(t, items, 3)
	for _, it := range items {
		require.NotNil(t, it.Event)
		assert.Equal(t, "Spring Summit", it.Event.Title)
	}
}

func TestCreateItemRecordsViewer(t *testing.T) {
	s := New()
	s.Seed("org1")
	cat := s.AddCategory(Category{OrganizationID: "org1", Name: "Budget"})

	resp := post(t, s, "mutation CreateAgendaItem { x }", map[string]interface{}{
		"assigneeId":           DemoViewerID,
		"agendaItemCategoryId": cat,
		"preCompletionNotes":   "Approve budget",
	})
	require.Empty(t, resp.Errors)

	var created wireID
	require.NoError(t, json.Unmarshal(resp.Data["createAgendaItem"], &created))
	it, ok := s.Item(created.ID)
	require.True(t, ok)
	assert.Equal(t, DemoViewerID, it.CreatorID)
	assert.Equal(t, "org1", it.OrganizationID)
	assert.False(t, it.IsCompleted)
}

func TestFailNextIsConsumed(t *testing.T) {
	s := New()
	s.FailNext("AgendaItemCategoriesByOrganization", "boom")

	resp := post(t, s, "query AgendaItemCategoriesByOrganization { x }", map[string]interface{}{"organizationId": "o"})
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "boom", resp.Errors[0].Message)

	resp = post(t, s, "query AgendaItemCategoriesByOrganization { x }", map[string]interface{}{"organizationId": "o"})
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 2, s.Calls("AgendaItemCategoriesByOrganization"))
}

func TestUnknownAndAnonymousOperations(t *testing.T) {
	s := New()

	resp := post(t, s, "query Nope { x }", nil)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Message, "unknown operation")

	resp = post(t, s, "{ x }", nil)
	require.Len(t, resp.Errors, 1)
}

func TestSectionLifecycle(t *testing.T) {
	s := New()

	resp := post(t, s, "mutation CreateAgendaSection { x }", map[string]interface{}{
		"input": map[string]interface{}{"description": "Opening", "sequence": 1, "items": []string{"a", "b"}},
	})
	require.Empty(t, resp.Errors)
	var created wireID
	require.NoError(t, json.Unmarshal(resp.Data["createAgendaSection"], &created))

	sec, ok := s.Section(created.ID)
	require.True(t, ok)
	assert.Equal(t, 1, sec.Sequence)
	assert.Equal(t, []string{"a", "b"}, sec.ItemIDs)

	resp = post(t, s, "mutation RemoveAgendaSection { x }", map[string]interface{}{"removeAgendaSectionId": created.ID})
	require.Empty(t, resp.Errors)
	_, ok = s.Section(created.ID)
	assert.False(t, ok)
}
