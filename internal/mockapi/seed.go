package mockapi

import (
	"runmate/internal/domain"
)

// AddUser registers an account directly, bypassing validation. An empty ID
// is generated.
func (s *Server) AddUser(u domain.User, password string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = domain.UserID(newID("usr"))
	}
	s.addAccountLocked(u, password)
	return u
}

// AddRaces appends race listings.
func (s *Server) AddRaces(races ...domain.Race) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.races = append(s.races, races...)
}

// AddEvents appends events.
func (s *Server) AddEvents(events ...domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range events {
		e := events[i]
		s.events = append(s.events, &e)
	}
}

// AddGroup appends a group whose owner is its first member.
func (s *Server) AddGroup(g domain.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, &g)
	s.members[g.ID] = map[domain.UserID]bool{}
	if g.OwnerID != "" {
		s.members[g.ID][g.OwnerID] = true
	}
}

// Deliver posts a message from one user to another, opening a conversation
// between them if needed.
func (s *Server) Deliver(from, to domain.UserID, body string) domain.ConversationID {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	cv := s.conversationWithLocked(from, to)
	if cv == nil {
		cv = &conversation{id: domain.ConversationID(newID("conv")), members: [2]domain.UserID{from, to}}
		s.convs = append(s.convs, cv)
	}
	cv.messages = append(cv.messages, domain.Message{
		ID:             newID("msg"),
		ConversationID: cv.id,
		SenderID:       from,
		Body:           body,
		SentAt:         now,
	})
	cv.updated = now
	return cv.id
}

// Seed fills the server with demo data. Every demo account uses the
// password "password123".
func (s *Server) Seed() {
	const pw = "password123"
	ana := s.AddUser(domain.User{
		ID: "usr_ana", Email: "ana@example.com", FirstName: "Ana", LastName: "Silva",
		City: "Lisbon", Country: "Portugal", PaceMinPerKm: 5.2, Distances: []float64{10, 21.1}, Level: "intermediate",
		Bio: "Sunday long runs along the river.",
	}, pw)
	ben := s.AddUser(domain.User{
		ID: "usr_ben", Email: "ben@example.com", FirstName: "Ben", LastName: "Okafor",
		City: "Lisbon", Country: "Portugal", PaceMinPerKm: 5.0, Distances: []float64{10, 42.195}, Level: "advanced",
	}, pw)
	s.AddUser(domain.User{
		ID: "usr_chloe", Email: "chloe@example.com", FirstName: "Chloe", LastName: "Martin",
		City: "Lyon", Country: "France", PaceMinPerKm: 6.1, Distances: []float64{5, 10}, Level: "beginner",
	}, pw)
	s.AddUser(domain.User{
		ID: "usr_dev", Email: "dev@example.com", FirstName: "Dev", LastName: "Patel",
		City: "Berlin", Country: "Germany", PaceMinPerKm: 4.4, Distances: []float64{21.1, 42.195}, Level: "advanced",
	}, pw)

	s.AddRaces(
		domain.Race{ID: "race_lisbon_half", Name: "Lisbon Half Marathon", Location: "Lisbon, Portugal", StartDate: "2026-03-08", Distances: []float64{21.1}, Description: "Crosses the **25 de Abril** bridge."},
		domain.Race{ID: "race_berlin", Name: "Berlin Marathon", Location: "Berlin (Germany)", StartDate: "2026-09-27", Distances: []float64{42.195}},
		domain.Race{ID: "race_lyon", Name: "Run in Lyon", Location: "Lyon, France", StartDate: "2026-10-04", Distances: []float64{10, 21.1, 42.195}},
		domain.Race{ID: "race_paris_10k", Name: "Paris Centre 10K", Location: "Paris, France", StartDate: "2025-06-15", Distances: []float64{10}},
	)
	s.AddGroup(domain.Group{ID: "grp_lx", Name: "Lisbon Riverside Runners", City: "Lisbon", OwnerID: ana.ID, Description: "Easy pace, all levels."})
	s.AddEvents(
		domain.Event{ID: "evt_sunday", Title: "Sunday long run", Location: "Belem, Lisbon (Portugal)", StartDate: "2026-11-01T08:00:00Z", Distances: []float64{21.1}, Category: "long-run", OrganizerID: ana.ID, GroupID: "grp_lx", Participants: []domain.UserID{ana.ID}},
		domain.Event{ID: "evt_track", Title: "Track intervals", Location: "Estadio Universitario, Lisbon, Portugal", StartDate: "2026-10-22T18:30:00Z", Distances: []float64{5}, Category: "intervals", OrganizerID: ben.ID, Participants: []domain.UserID{ben.ID}},
	)
	s.Deliver(ben.ID, ana.ID, "Up for the Sunday long run?")
}
