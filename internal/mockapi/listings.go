package mockapi

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"runmate/internal/domain"
)

func (s *Server) listRaces(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, append([]domain.Race{}, s.races...))
}

func (s *Server) getRace(c *gin.Context) {
	id := domain.RaceID(c.Param("id"))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.races {
		if r.ID == id {
			c.JSON(http.StatusOK, r)
			return
		}
	}
	abort(c, http.StatusNotFound, codeNotFound, "race not found")
}

func copyEvent(e *domain.Event) domain.Event {
	out := *e
	out.Participants = append([]domain.UserID(nil), e.Participants...)
	out.Distances = append([]float64(nil), e.Distances...)
	return out
}

func (s *Server) listEvents(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, copyEvent(e))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) findEventLocked(c *gin.Context) *domain.Event {
	id := domain.EventID(c.Param("id"))
	for _, e := range s.events {
		if e.ID == id {
			return e
		}
	}
	abort(c, http.StatusNotFound, codeNotFound, "event not found")
	return nil
}

func (s *Server) getEvent(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e := s.findEventLocked(c); e != nil {
		c.JSON(http.StatusOK, copyEvent(e))
	}
}

func (s *Server) createEvent(c *gin.Context) {
	var req domain.NewEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}
	switch {
	case strings.TrimSpace(req.Title) == "":
		abort(c, http.StatusUnprocessableEntity, codeValidation, "title is required")
		return
	case strings.TrimSpace(req.Location) == "":
		abort(c, http.StatusUnprocessableEntity, codeValidation, "location is required")
		return
	case strings.TrimSpace(req.StartDate) == "":
		abort(c, http.StatusUnprocessableEntity, codeValidation, "start_date is required")
		return
	}
	me := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &domain.Event{
		ID:           domain.EventID(newID("evt")),
		Title:        req.Title,
		Location:     req.Location,
		StartDate:    req.StartDate,
		Distances:    req.Distances,
		Category:     req.Category,
		OrganizerID:  me,
		GroupID:      req.GroupID,
		Description:  req.Description,
		Participants: []domain.UserID{me},
	}
	s.events = append(s.events, e)
	c.JSON(http.StatusCreated, copyEvent(e))
}

func (s *Server) joinEvent(join bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		me := currentUser(c)

		s.mu.Lock()
		defer s.mu.Unlock()

		e := s.findEventLocked(c)
		if e == nil {
			return
		}
		i := slices.Index(e.Participants, me)
		switch {
		case join && i >= 0:
			abort(c, http.StatusConflict, codeAlreadyMember, "already participating")
			return
		case !join && i < 0:
			abort(c, http.StatusConflict, codeNotMember, "not participating")
			return
		case join:
			e.Participants = append(e.Participants, me)
		default:
			e.Participants = slices.Delete(e.Participants, i, i+1)
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) groupView(g *domain.Group, me domain.UserID) domain.Group {
	out := *g
	out.MembersCount = len(s.members[g.ID])
	out.IsMember = s.members[g.ID][me]
	return out
}

func (s *Server) listGroups(c *gin.Context) {
	me := currentUser(c)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, s.groupView(g, me))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) findGroupLocked(c *gin.Context) *domain.Group {
	id := domain.GroupID(c.Param("id"))
	for _, g := range s.groups {
		if g.ID == id {
			return g
		}
	}
	abort(c, http.StatusNotFound, codeNotFound, "group not found")
	return nil
}

func (s *Server) getGroup(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if g := s.findGroupLocked(c); g != nil {
		c.JSON(http.StatusOK, s.groupView(g, currentUser(c)))
	}
}

func (s *Server) createGroup(c *gin.Context) {
	var req domain.NewGroup
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		abort(c, http.StatusUnprocessableEntity, codeValidation, "name is required")
		return
	}
	me := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	g := &domain.Group{
		ID:          domain.GroupID(newID("grp")),
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		OwnerID:     me,
	}
	s.groups = append(s.groups, g)
	s.members[g.ID] = map[domain.UserID]bool{me: true}
	c.JSON(http.StatusCreated, s.groupView(g, me))
}

func (s *Server) joinGroup(join bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		me := currentUser(c)

		s.mu.Lock()
		defer s.mu.Unlock()

		g := s.findGroupLocked(c)
		if g == nil {
			return
		}
		if s.members[g.ID] == nil {
			s.members[g.ID] = make(map[domain.UserID]bool)
		}
		member := s.members[g.ID][me]
		switch {
		case join && member:
			abort(c, http.StatusConflict, codeAlreadyMember, "already a member")
			return
		case !join && !member:
			abort(c, http.StatusConflict, codeNotMember, "not a member")
			return
		case join:
			s.members[g.ID][me] = true
		default:
			delete(s.members[g.ID], me)
		}
		c.Status(http.StatusNoContent)
	}
}
