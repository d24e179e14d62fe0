package fakeapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Resolvers run with s.mu held.

type wireMember struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

type wireRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

type wireCategory struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDisabled  bool   `json:"isDisabled"`
}

type wireItem struct {
	ID                  string      `json:"_id"`
	Assignee            *wireMember `json:"assignee"`
	Assigner            *wireMember `json:"assigner"`
	Creator             *wireMember `json:"creator"`
	AgendaItemCategory  *wireRef    `json:"agendaItemCategory"`
	PreCompletionNotes  string      `json:"preCompletionNotes"`
	PostCompletionNotes string      `json:"postCompletionNotes"`
	AssignmentDate      string      `json:"assignmentDate"`
	DueDate             string      `json:"dueDate"`
	CompletionDate      string      `json:"completionDate"`
	CreatedAt           string      `json:"createdAt"`
	IsCompleted         bool        `json:"isCompleted"`
	Event               *wireRef    `json:"event"`
}

type wireID struct {
	ID string `json:"_id"`
}

func str(vars map[string]interface{}, key string) string {
	v, _ := vars[key].(string)
	return v
}

func boolean(vars map[string]interface{}, key string) (bool, bool) {
	v, ok := vars[key].(bool)
	return v, ok
}

func required(vars map[string]interface{}, key string) (string, error) {
	v := str(vars, key)
	if v == "" {
		return "", fmt.Errorf("variable $%s is required", key)
	}
	return v, nil
}

func (s *Server) member(id string) *wireMember {
	for _, m := range s.members {
		if m.ID == id {
			return &wireMember{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, Email: m.Email}
		}
	}
	return nil
}

func (s *Server) wire(it Item) wireItem {
	w := wireItem{
		ID:                  it.ID,
		Assignee:            s.member(it.AssigneeID),
		Assigner:            s.member(it.AssignerID),
		Creator:             s.member(it.CreatorID),
		PreCompletionNotes:  it.PreCompletionNotes,
		PostCompletionNotes: it.PostCompletionNotes,
		AssignmentDate:      it.AssignmentDate,
		DueDate:             it.DueDate,
		CompletionDate:      it.CompletionDate,
		CreatedAt:           it.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		IsCompleted:         it.IsCompleted,
	}
	if idx := s.categoryIndex(it.CategoryID); idx >= 0 {
		w.AgendaItemCategory = &wireRef{ID: it.CategoryID, Name: s.categories[idx].Name}
	}
	if it.EventID != "" {
		w.Event = &wireRef{ID: it.EventID, Title: s.events[it.EventID]}
	}
	return w
}

func (s *Server) agendaItemsByOrganization(vars map[string]interface{}) (map[string]interface{}, error) {
	orgID, err := required(vars, "organizationId")
	if err != nil {
		return nil, err
	}
	eventID := str(vars, "eventId")
	categoryID := str(vars, "agendaItemCategoryId")
	onlyActive, _ := boolean(vars, "isActive")
	onlyCompleted, _ := boolean(vars, "isCompleted")

	matched := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.OrganizationID != orgID {
			continue
		}
		if eventID != "" && it.EventID != eventID {
			continue
		}
		if categoryID != "" && it.CategoryID != categoryID {
			continue
		}
		if onlyActive && it.IsCompleted {
			continue
		}
		if onlyCompleted && !it.IsCompleted {
			continue
		}
		matched = append(matched, it)
	}
	sortItems(matched, str(vars, "orderBy") == "createdAt_ASC")

	out := make([]wireItem, 0, len(matched))
	for _, it := range matched {
		out = append(out, s.wire(it))
	}
	return map[string]interface{}{"agendaItemsByOrganization": out}, nil
}

func (s *Server) getAgendaItem(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "getAgendaItemId")
	if err != nil {
		return nil, err
	}
	idx := s.itemIndex(id)
	if idx < 0 {
		return map[string]interface{}{"getAgendaItem": nil}, nil
	}
	return map[string]interface{}{"getAgendaItem": s.wire(s.items[idx])}, nil
}

func (s *Server) getAllAgendaItems() (map[string]interface{}, error) {
	all := append([]Item(nil), s.items...)
	sortItems(all, true)

	out := make([]wireItem, 0, len(all))
	for _, it := range all {
		out = append(out, s.wire(it))
	}
	return map[string]interface{}{"getAllAgendaItems": out}, nil
}

func (s *Server) categoriesByOrganization(vars map[string]interface{}) (map[string]interface{}, error) {
	orgID, err := required(vars, "organizationId")
	if err != nil {
		return nil, err
	}
	out := make([]wireCategory, 0)
	for _, c := range s.categories {
		if c.OrganizationID == orgID {
			out = append(out, wireCategory{ID: c.ID, Name: c.Name, Description: c.Description, IsDisabled: c.IsDisabled})
		}
	}
	return map[string]interface{}{"agendaItemCategoriesByOrganization": out}, nil
}

func (s *Server) agendaItemCategory(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "agendaItemCategoryId")
	if err != nil {
		return nil, err
	}
	idx := s.categoryIndex(id)
	if idx < 0 {
		return map[string]interface{}{"agendaItemCategory": nil}, nil
	}
	c := s.categories[idx]
	return map[string]interface{}{
		"agendaItemCategory": wireCategory{ID: c.ID, Name: c.Name, Description: c.Description, IsDisabled: c.IsDisabled},
	}, nil
}

func (s *Server) organizationMembers(vars map[string]interface{}) (map[string]interface{}, error) {
	orgID, err := required(vars, "id")
	if err != nil {
		return nil, err
	}
	members := make([]wireMember, 0)
	for _, m := range s.members {
		if m.OrganizationID == orgID {
			members = append(members, wireMember{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, Email: m.Email})
		}
	}
	org := map[string]interface{}{"_id": orgID, "members": members}
	return map[string]interface{}{"organizations": []interface{}{org}}, nil
}

func (s *Server) getAgendaSection(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "getAgendaSectionId")
	if err != nil {
		return nil, err
	}
	idx := s.sectionIndex(id)
	if idx < 0 {
		return map[string]interface{}{"getAgendaSection": nil}, nil
	}
	sec := s.sections[idx]
	items := make([]wireID, 0, len(sec.ItemIDs))
	for _, itemID := range sec.ItemIDs {
		items = append(items, wireID{ID: itemID})
	}
	out := map[string]interface{}{
		"_id":          sec.ID,
		"description":  sec.Description,
		"sequence":     sec.Sequence,
		"relatedEvent": nil,
		"items":        items,
	}
	if sec.EventID != "" {
		out["relatedEvent"] = wireRef{ID: sec.EventID, Title: s.events[sec.EventID]}
	}
	return map[string]interface{}{"getAgendaSection": out}, nil
}

func (s *Server) createAgendaItem(vars map[string]interface{}) (map[string]interface{}, error) {
	assigneeID, err := required(vars, "assigneeId")
	if err != nil {
		return nil, err
	}
	categoryID, err := required(vars, "agendaItemCategoryId")
	if err != nil {
		return nil, err
	}
	cidx := s.categoryIndex(categoryID)
	if cidx < 0 {
		return nil, errors.New("agenda item category not found")
	}
	if s.member(assigneeID) == nil {
		return nil, errors.New("assignee not found")
	}

	created := s.tick()
	it := Item{
		ID:                 uuid.NewString(),
		OrganizationID:     s.categories[cidx].OrganizationID,
		EventID:            str(vars, "eventId"),
		AssigneeID:         assigneeID,
		AssignerID:         s.viewerID,
		CreatorID:          s.viewerID,
		CategoryID:         categoryID,
		PreCompletionNotes: str(vars, "preCompletionNotes"),
		AssignmentDate:     created.Format("2006-01-02"),
		DueDate:            str(vars, "dueDate"),
		CreatedAt:          created,
	}
	s.items = append(s.items, it)
	return map[string]interface{}{"createAgendaItem": wireID{ID: it.ID}}, nil
}

func (s *Server) updateAgendaItem(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "agendaItemId")
	if err != nil {
		return nil, err
	}
	idx := s.itemIndex(id)
	if idx < 0 {
		return nil, errors.New("agenda item not found")
	}

	it := &s.items[idx]
	if v := str(vars, "assigneeId"); v != "" {
		it.AssigneeID = v
	}
	if v, ok := vars["preCompletionNotes"].(string); ok {
		it.PreCompletionNotes = v
	}
	if v, ok := vars["postCompletionNotes"].(string); ok {
		it.PostCompletionNotes = v
	}
	if v := str(vars, "dueDate"); v != "" {
		it.DueDate = v
	}
	if v := str(vars, "completionDate"); v != "" {
		it.CompletionDate = v
	}
	if v, ok := boolean(vars, "isCompleted"); ok {
		it.IsCompleted = v
	}
	return map[string]interface{}{"updateAgendaItem": wireID{ID: id}}, nil
}

func (s *Server) removeAgendaItem(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "agendaItemId")
	if err != nil {
		return nil, err
	}
	idx := s.itemIndex(id)
	if idx < 0 {
		return nil, errors.New("agenda item not found")
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return map[string]interface{}{"removeAgendaItem": wireID{ID: id}}, nil
}

func (s *Server) createCategory(vars map[string]interface{}) (map[string]interface{}, error) {
	name, err := required(vars, "name")
	if err != nil {
		return nil, err
	}
	orgID, err := required(vars, "organizationId")
	if err != nil {
		return nil, err
	}
	c := Category{ID: uuid.NewString(), OrganizationID: orgID, Name: strings.TrimSpace(name)}
	s.categories = append(s.categories, c)
	return map[string]interface{}{"createAgendaItemCategory": wireID{ID: c.ID}}, nil
}

func (s *Server) updateCategory(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "agendaItemCategoryId")
	if err != nil {
		return nil, err
	}
	idx := s.categoryIndex(id)
	if idx < 0 {
		return nil, errors.New("agenda item category not found")
	}
	if v := str(vars, "name"); v != "" {
		s.categories[idx].Name = v
	}
	if v, ok := boolean(vars, "isDisabled"); ok {
		s.categories[idx].IsDisabled = v
	}
	return map[string]interface{}{"updateAgendaItemCategory": wireID{ID: id}}, nil
}

func sectionFields(input map[string]interface{}, sec *Section) {
	if v := str(input, "description"); v != "" {
		sec.Description = v
	}
	if v, ok := input["sequence"].(float64); ok {
		sec.Sequence = int(v)
	}
	if v := str(input, "relatedEvent"); v != "" {
		sec.EventID = v
	}
	if raw, ok := input["items"].([]interface{}); ok {
		sec.ItemIDs = sec.ItemIDs[:0]
		for _, r := range raw {
			if id, ok := r.(string); ok {
				sec.ItemIDs = append(sec.ItemIDs, id)
			}
		}
	}
}

func (s *Server) createSection(vars map[string]interface{}) (map[string]interface{}, error) {
	input, ok := vars["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("variable $input is required")
	}
	sec := Section{ID: uuid.NewString()}
	sectionFields(input, &sec)
	s.sections = append(s.sections, sec)
	return map[string]interface{}{"createAgendaSection": wireID{ID: sec.ID}}, nil
}

func (s *Server) updateSection(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "updateAgendaSectionId")
	if err != nil {
		return nil, err
	}
	idx := s.sectionIndex(id)
	if idx < 0 {
		return nil, errors.New("agenda section not found")
	}
	input, _ := vars["input"].(map[string]interface{})
	sectionFields(input, &s.sections[idx])
	return map[string]interface{}{"updateAgendaSection": wireID{ID: id}}, nil
}

func (s *Server) removeSection(vars map[string]interface{}) (map[string]interface{}, error) {
	id, err := required(vars, "removeAgendaSectionId")
	if err != nil {
		return nil, err
	}
	idx := s.sectionIndex(id)
	if idx < 0 {
		return nil, errors.New("agenda section not found")
	}
	s.sections = append(s.sections[:idx], s.sections[idx+1:]...)
	return map[string]interface{}{"removeAgendaSection": id}, nil
}
