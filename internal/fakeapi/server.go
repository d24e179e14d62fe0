// Package fakeapi is an in-memory implementation of the agenda GraphQL API.
// It backs the client tests and the `demo` command. Requests are dispatched on
// the operation name of the document, so only the named operations declared by
// the gql package are understood.
package fakeapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Path is where the GraphQL endpoint is mounted.
const Path = "/graphql"

var operationRe = regexp.MustCompile(`^\s*(query|mutation)\s+(\w+)`)

// Member is a seeded organization member.
type Member struct {
	ID             string
	OrganizationID string
	FirstName      string
	LastName       string
	Email          string
}

// Category is a stored agenda item category.
type Category struct {
	ID             string
	OrganizationID string
	Name           string
	Description    string
	IsDisabled     bool
}

// Item is a stored agenda item.
type Item struct {
	ID                  string
	OrganizationID      string
	EventID             string
	AssigneeID          string
	AssignerID          string
	CreatorID           string
	CategoryID          string
	PreCompletionNotes  string
	PostCompletionNotes string
	AssignmentDate      string
	DueDate             string
	CompletionDate      string
	IsCompleted         bool
	CreatedAt           time.Time
}

// Section is a stored agenda section.
type Section struct {
	ID          string
	Description string
	Sequence    int
	EventID     string
	ItemIDs     []string
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

// Server holds the fake API state. All methods are safe for concurrent use.
type Server struct {
	mu sync.Mutex

	viewerID   string
	members    []Member
	categories []Category
	items      []Item
	sections   []Section
	events     map[string]string // event id -> title

	failures    map[string]string // op -> message, consumed on use
	calls       map[string]int
	lastVars    map[string]map[string]interface{}
	lastHeaders http.Header

	clock time.Time
	echo  *echo.Echo
}

// New creates an empty server. Creation timestamps advance one minute per
// created item so ordering by createdAt is deterministic.
func New() *Server {
	s := &Server{
		events:   make(map[string]string),
		failures: make(map[string]string),
		calls:    make(map[string]int),
		lastVars: make(map[string]map[string]interface{}),
		clock:    time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.POST(Path, s.handle)
	s.echo = e

	return s
}

// Handler returns the HTTP handler serving the GraphQL endpoint.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until the server is shut down.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Serve serves on an existing listener until the server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	s.echo.Listener = ln
	return s.echo.Start("")
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// SetViewer sets the member recorded as assigner/creator of new items.
func (s *Server) SetViewer(memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewerID = memberID
}

// AddMember seeds a member and returns its id.
func (s *Server) AddMember(m Member) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	s.members = append(s.members, m)
	return m.ID
}

// AddEvent seeds an event and returns its id.
func (s *Server) AddEvent(id, title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	s.events[id] = title
	return id
}

// AddCategory seeds a category and returns its id.
func (s *Server) AddCategory(c Category) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.categories = append(s.categories, c)
	return c.ID
}

// AddItem seeds an item and returns its id.
func (s *Server) AddItem(it Item) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = s.tick()
	}
	s.items = append(s.items, it)
	return it.ID
}

// Category returns a copy of the stored category.
func (s *Server) Category(id string) (Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Item returns a copy of the stored item.
func (s *Server) Item(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.itemIndex(id); idx >= 0 {
		return s.items[idx], true
	}
	return Item{}, false
}

// Section returns a copy of the stored section.
func (s *Server) Section(id string) (Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// FailNext makes the next request for op fail with message.
func (s *Server) FailNext(op, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = message
}

// Calls returns how many requests for op were received.
func (s *Server) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// LastVariables returns the variables of the last request for op.
func (s *Server) LastVariables(op string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastVars[op]
}

// LastHeader returns a header of the most recent request.
func (s *Server) LastHeader(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastHeaders == nil {
		return ""
	}
	return s.lastHeaders.Get(name)
}

func (s *Server) handle(c echo.Context) error {
	var req gqlRequest
	if err := sonic.ConfigStd.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": []gqlError{{Message: "invalid request body"}},
		})
	}

	m := operationRe.FindStringSubmatch(req.Query)
	if m == nil {
		return c.JSON(http.StatusOK, errorResponse("anonymous operations are not supported"))
	}
	op := m[2]
	if req.Variables == nil {
		req.Variables = map[string]interface{}{}
	}

	s.mu.Lock()
	s.calls[op]++
	s.lastVars[op] = req.Variables
	s.lastHeaders = c.Request().Header.Clone()
	failure, fail := s.failures[op]
	delete(s.failures, op)
	s.mu.Unlock()

	if fail {
		return c.JSON(http.StatusOK, errorResponse(failure))
	}

	data, err := s.dispatch(op, req.Variables)
	if err != nil {
		return c.JSON(http.StatusOK, errorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": data})
}

func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{
		"data":   nil,
		"errors": []gqlError{{Message: message}},
	}
}

var errUnknownOperation = errors.New("unknown operation")

func (s *Server) dispatch(op string, vars map[string]interface{}) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch op {
	case "AgendaItemsByOrganization":
		return s.agendaItemsByOrganization(vars)
	case "GetAgendaItem":
		return s.getAgendaItem(vars)
	case "GetAllAgendaItems":
		return s.getAllAgendaItems()
	case "AgendaItemCategoriesByOrganization":
		return s.categoriesByOrganization(vars)
	case "AgendaItemCategory":
		return s.agendaItemCategory(vars)
	case "OrganizationMembers":
		return s.organizationMembers(vars)
	case "GetAgendaSection":
		return s.getAgendaSection(vars)
	case "CreateAgendaItem":
		return s.createAgendaItem(vars)
	case "UpdateAgendaItem":
		return s.updateAgendaItem(vars)
	case "RemoveAgendaItem":
		return s.removeAgendaItem(vars)
	case "CreateAgendaItemCategory":
		return s.createCategory(vars)
	case "UpdateAgendaItemCategory":
		return s.updateCategory(vars)
	case "CreateAgendaSection":
		return s.createSection(vars)
	case "UpdateAgendaSection":
		return s.updateSection(vars)
	case "RemoveAgendaSection":
		return s.removeSection(vars)
	}
	return nil, fmt.Errorf("%w: %s", errUnknownOperation, op)
}

// tick advances the fake clock; callers hold s.mu.
func (s *Server) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *Server) itemIndex(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) categoryIndex(id string) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) sectionIndex(id string) int {
	for i, sec := range s.sections {
		if sec.ID == id {
			return i
		}
	}
	return -1
}

func sortItems(items []Item, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
