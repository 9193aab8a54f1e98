package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"runmate/internal/domain"
)

func (s *Server) listPlans(c *gin.Context) {
	c.JSON(http.StatusOK, s.plans)
}

type subscribeRequest struct {
	PlanID string `json:"plan_id"`
}

func (s *Server) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}
	var plan *domain.Plan
	for i := range s.plans {
		if s.plans[i].ID == req.PlanID {
			plan = &s.plans[i]
		}
	}
	if plan == nil {
		abort(c, http.StatusNotFound, codeNotFound, "plan not found")
		return
	}
	me := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	end := now.AddDate(0, 1, 0)
	if plan.Interval == "year" {
		end = now.AddDate(1, 0, 0)
	}
	intent := strings.ReplaceAll(uuid.NewString(), "-", "")
	sub := &domain.Subscription{
		ID:               newID("sub"),
		PlanID:           plan.ID,
		Status:           domain.SubscriptionActive,
		ClientSecret:     "pi_" + intent[:16] + "_secret_" + intent[16:],
		CurrentPeriodEnd: end,
	}
	s.subs[me] = sub
	s.accounts[me].user.Subscribed = true
	c.JSON(http.StatusCreated, *sub)
}

func (s *Server) getSubscription(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[currentUser(c)]
	if !ok {
		abort(c, http.StatusNotFound, codeNoSubscription, "no subscription")
		return
	}
	out := *sub
	out.ClientSecret = ""
	c.JSON(http.StatusOK, out)
}

func (s *Server) cancelSubscription(c *gin.Context) {
	me := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[me]
	if !ok || sub.Status == domain.SubscriptionCanceled {
		abort(c, http.StatusNotFound, codeNoSubscription, "no active subscription")
		return
	}
	sub.Status = domain.SubscriptionCanceled
	s.accounts[me].user.Subscribed = false
	c.Status(http.StatusNoContent)
}

func (s *Server) registerPush(c *gin.Context) {
	var req domain.PushRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		abort(c, http.StatusUnprocessableEntity, codeValidation, "token is required")
		return
	}
	if req.Platform == "" {
		req.Platform = "unknown"
	}
	me := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.pushToken[me] {
		if r.Token == req.Token {
			c.Status(http.StatusNoContent)
			return
		}
	}
	s.pushToken[me] = append(s.pushToken[me], req)
	c.Status(http.StatusNoContent)
}

// PushTokens returns the device tokens registered for uid.
func (s *Server) PushTokens(uid domain.UserID) []domain.PushRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PushRegistration(nil), s.pushToken[uid]...)
}
