package mockapi

import (
	"math"
	"net/http"
	"slices"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"runmate/internal/domain"
)

func (s *Server) sortedUserIDsLocked() []domain.UserID {
	ids := make([]domain.UserID, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// score is a toy compatibility measure on pace and shared distances.
func score(a, b domain.User) float64 {
	sc := 70.0
	if a.PaceMinPerKm > 0 && b.PaceMinPerKm > 0 {
		sc -= 10 * math.Abs(a.PaceMinPerKm-b.PaceMinPerKm)
	}
	for _, d := range a.Distances {
		if slices.Contains(b.Distances, d) {
			sc += 10
		}
	}
	if a.City != "" && strings.EqualFold(a.City, b.City) {
		sc += 10
	}
	return math.Max(0, math.Min(100, math.Round(sc*10)/10))
}

func (s *Server) listMatches(c *gin.Context) {
	me := currentUser(c)

	s.mu.RLock()
	defer s.mu.RUnlock()

	self := s.accounts[me].user
	out := []domain.Match{}
	for _, uid := range s.sortedUserIDsLocked() {
		if uid == me || s.decided[me][uid] {
			continue
		}
		other := s.accounts[uid].user
		out = append(out, domain.Match{
			ID:        domain.MatchID(uid),
			User:      public(other),
			Score:     score(self, other),
			CreatedAt: s.now().UTC(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	c.JSON(http.StatusOK, out)
}

func (s *Server) decide(like bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		me := currentUser(c)
		other := domain.UserID(c.Param("id"))

		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.accounts[other]; !ok || other == me {
			abort(c, http.StatusNotFound, codeNotFound, "match not found")
			return
		}
		if s.decided[me] == nil {
			s.decided[me] = make(map[domain.UserID]bool)
		}
		s.decided[me][other] = true
		if like && s.conversationWithLocked(me, other) == nil {
			s.convs = append(s.convs, &conversation{
				id:      domain.ConversationID(newID("conv")),
				members: [2]domain.UserID{me, other},
				updated: s.now().UTC(),
			})
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) conversationWithLocked(a, b domain.UserID) *conversation {
	for _, cv := range s.convs {
		if (cv.members[0] == a && cv.members[1] == b) || (cv.members[0] == b && cv.members[1] == a) {
			return cv
		}
	}
	return nil
}

func (cv *conversation) has(uid domain.UserID) bool {
	return cv.members[0] == uid || cv.members[1] == uid
}

func (cv *conversation) peer(uid domain.UserID) domain.UserID {
	if cv.members[0] == uid {
		return cv.members[1]
	}
	return cv.members[0]
}

func (s *Server) findConversationLocked(c *gin.Context) *conversation {
	id := domain.ConversationID(c.Param("id"))
	me := currentUser(c)
	for _, cv := range s.convs {
		if cv.id == id && cv.has(me) {
			return cv
		}
	}
	abort(c, http.StatusNotFound, codeNotFound, "conversation not found")
	return nil
}

func (s *Server) listConversations(c *gin.Context) {
	me := currentUser(c)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Conversation{}
	for _, cv := range s.convs {
		if !cv.has(me) {
			continue
		}
		item := domain.Conversation{
			ID:        cv.id,
			Peer:      public(s.accounts[cv.peer(me)].user),
			UpdatedAt: cv.updated,
		}
		for _, m := range cv.messages {
			if m.SenderID != me && !m.Read {
				item.UnreadCount++
			}
		}
		if n := len(cv.messages); n > 0 {
			item.LastMessage = cv.messages[n-1].Body
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	c.JSON(http.StatusOK, out)
}

func (s *Server) listMessages(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cv := s.findConversationLocked(c)
	if cv == nil {
		return
	}
	c.JSON(http.StatusOK, append([]domain.Message{}, cv.messages...))
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

func (s *Server) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		abort(c, http.StatusUnprocessableEntity, codeValidation, "body is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cv := s.findConversationLocked(c)
	if cv == nil {
		return
	}
	now := s.now().UTC()
	msg := domain.Message{
		ID:             newID("msg"),
		ConversationID: cv.id,
		SenderID:       currentUser(c),
		Body:           req.Body,
		SentAt:         now,
	}
	cv.messages = append(cv.messages, msg)
	cv.updated = now
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) markRead(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cv := s.findConversationLocked(c)
	if cv == nil {
		return
	}
	me := currentUser(c)
	for i := range cv.messages {
		if cv.messages[i].SenderID != me {
			cv.messages[i].Read = true
		}
	}
	c.Status(http.StatusNoContent)
}
