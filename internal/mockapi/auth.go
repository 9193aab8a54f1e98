package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"runmate/internal/domain"
)

func (s *Server) login(c *gin.Context) {
	var req domain.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uid, ok := s.byEmail[strings.ToLower(strings.TrimSpace(req.Email))]
	if !ok || s.accounts[uid].password != req.Password {
		abort(c, http.StatusUnauthorized, codeInvalidCredentials, "invalid email or password")
		return
	}
	c.JSON(http.StatusOK, domain.Session{Token: s.issueToken(uid), User: s.accounts[uid].user})
}

func (s *Server) register(c *gin.Context) {
	var req domain.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case !strings.Contains(email, "@"):
		abort(c, http.StatusUnprocessableEntity, codeValidation, "email is invalid")
		return
	case len(req.Password) < 8:
		abort(c, http.StatusUnprocessableEntity, codeValidation, "password must be at least 8 characters")
		return
	case req.FirstName == "":
		abort(c, http.StatusUnprocessableEntity, codeValidation, "first_name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		abort(c, http.StatusConflict, codeEmailTaken, "an account with this email already exists")
		return
	}
	u := domain.User{
		ID:           domain.UserID(newID("usr")),
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		Gender:       req.Gender,
		City:         req.City,
		Country:      req.Country,
		PaceMinPerKm: req.PaceMinPerKm,
		Distances:    req.Distances,
		Level:        req.Level,
		Photos:       req.Photos,
	}
	s.addAccountLocked(u, req.Password)
	c.JSON(http.StatusCreated, domain.Session{Token: s.issueToken(u.ID), User: u})
}

// addAccountLocked must be called with s.mu held for writing.
func (s *Server) addAccountLocked(u domain.User, password string) {
	s.accounts[u.ID] = &account{user: u, password: password}
	s.byEmail[strings.ToLower(u.Email)] = u.ID
}

func (s *Server) me(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.accounts[currentUser(c)].user)
}

func (s *Server) updateMe(c *gin.Context) {
	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}
	if req.PaceMinPerKm != nil && *req.PaceMinPerKm <= 0 {
		abort(c, http.StatusUnprocessableEntity, codeValidation, "pace_min_per_km must be positive")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := &s.accounts[currentUser(c)].user
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.City != nil {
		u.City = *req.City
	}
	if req.Country != nil {
		u.Country = *req.Country
	}
	if req.Latitude != nil {
		u.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		u.Longitude = req.Longitude
	}
	if req.PaceMinPerKm != nil {
		u.PaceMinPerKm = *req.PaceMinPerKm
	}
	if req.Distances != nil {
		u.Distances = req.Distances
	}
	if req.Level != nil {
		u.Level = *req.Level
	}
	if req.Photos != nil {
		u.Photos = req.Photos
	}
	c.JSON(http.StatusOK, *u)
}

func (s *Server) searchUsers(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	me := currentUser(c)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.User{}
	if q == "" {
		c.JSON(http.StatusOK, out)
		return
	}
	for _, uid := range s.sortedUserIDsLocked() {
		if uid == me {
			continue
		}
		u := s.accounts[uid].user
		hay := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.City)
		if strings.Contains(hay, q) {
			out = append(out, public(u))
		}
	}
	c.JSON(http.StatusOK, out)
}

// public strips private fields before a user is shown to someone else.
func public(u domain.User) domain.User {
	u.Email = ""
	u.Latitude, u.Longitude = nil, nil
	return u
}
