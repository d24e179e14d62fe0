package fakeapi

// Fixed ids of the seeded demo data.
const (
	DemoEventID  = "event-spring-summit"
	DemoViewerID = "member-ada"
)

// Seed fills the server with a small organization: three members, one
// event, four categories (one disabled) and a mix of active and completed
// items. The first member is the viewer.
func (s *Server) Seed(orgID string) {
	ada := s.AddMember(Member{ID: DemoViewerID, OrganizationID: orgID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"})
	grace := s.AddMember(Member{OrganizationID: orgID, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.org"})
	linus := s.AddMember(Member{OrganizationID: orgID, FirstName: "Linus", LastName: "Torvalds", Email: "linus@example.org"})
	s.SetViewer(ada)

	event := s.AddEvent(DemoEventID, "Spring Summit")

	logistics := s.AddCategory(Category{OrganizationID: orgID, Name: "Logistics", Description: "Venue, catering and travel"})
	speakers := s.AddCategory(Category{OrganizationID: orgID, Name: "Speakers", Description: "Talks and speaker care"})
	outreach := s.AddCategory(Category{OrganizationID: orgID, Name: "Outreach"})
	s.AddCategory(Category{OrganizationID: orgID, Name: "Archive", Description: "Retired category", IsDisabled: true})

	items := []Item{
		{AssigneeID: grace, CategoryID: logistics, EventID: event, PreCompletionNotes: "Book the main hall and two breakout rooms", DueDate: "2024-03-01"},
		{AssigneeID: linus, CategoryID: speakers, EventID: event, PreCompletionNotes: "Confirm keynote", DueDate: "2024-03-05"},
		{AssigneeID: ada, CategoryID: outreach, PreCompletionNotes: "Draft newsletter", PostCompletionNotes: "Sent to 1,204 subscribers", DueDate: "2024-02-20", CompletionDate: "2024-02-19", IsCompleted: true},
		{AssigneeID: grace, CategoryID: speakers, PreCompletionNotes: "Collect slides from all speakers before the dry run", DueDate: "2024-03-10"},
		{AssigneeID: linus, CategoryID: logistics, EventID: event, PreCompletionNotes: "Order badges", PostCompletionNotes: "Delivered", DueDate: "2024-02-28", CompletionDate: "2024-02-27", IsCompleted: true},
	}
	for _, it := range items {
		it.OrganizationID = orgID
		it.AssignerID = ada
		it.CreatorID = ada
		it.AssignmentDate = "2024-02-14"
		s.AddItem(it)
	}
}
