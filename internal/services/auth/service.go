package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"runmate/internal/domain"
	"runmate/internal/signup"
)

// Client is the part of the backend the auth service talks to.
type Client interface {
	domain.AuthAPI
	SetToken(token string)
}

// Service manages the logged-in session.
type Service struct {
	api      Client
	sessions domain.SessionStore
	log      *zap.Logger
}

// New constructs an auth Service.
func New(api Client, sessions domain.SessionStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, sessions: sessions, log: log}
}

// Login authenticates and persists the session under passphrase.
func (s *Service) Login(ctx context.Context, passphrase string, creds domain.Credentials) (domain.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := signup.ValidateEmail(creds.Email); err != nil {
		return domain.Session{}, err
	}
	if creds.Password == "" {
		return domain.Session{}, domain.Invalid("password", "is required")
	}
	sess, err := s.api.Login(ctx, creds)
	if err != nil {
		return domain.Session{}, err
	}
	if err := s.Adopt(passphrase, sess); err != nil {
		return domain.Session{}, err
	}
	s.log.Info("logged in", zap.String("user", sess.User.ID.String()))
	return sess, nil
}

// Adopt stores a session obtained elsewhere, e.g. from sign-up.
func (s *Service) Adopt(passphrase string, sess domain.Session) error {
	if err := s.sessions.SaveSession(passphrase, sess); err != nil {
		return err
	}
	s.api.SetToken(sess.Token)
	return nil
}

// Logout forgets the session. It is not an error to log out twice.
func (s *Service) Logout() error {
	s.api.SetToken("")
	return s.sessions.ClearSession()
}

// Current returns the stored session without touching the network.
func (s *Service) Current(passphrase string) (domain.Session, bool, error) {
	return s.sessions.LoadSession(passphrase)
}

// Restore loads the stored session and installs its token, or returns
// domain.ErrNotLoggedIn.
func (s *Service) Restore(passphrase string) (domain.Session, error) {
	sess, ok, err := s.sessions.LoadSession(passphrase)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrNotLoggedIn
	}
	s.api.SetToken(sess.Token)
	return sess, nil
}

// Refresh re-fetches the user and updates the cached copy. A rejected token
// clears the stored session.
func (s *Service) Refresh(ctx context.Context, passphrase string) (domain.Session, error) {
	sess, err := s.Restore(passphrase)
	if err != nil {
		return domain.Session{}, err
	}
	me, err := s.api.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.Warn("stored session rejected; logging out")
			if cerr := s.Logout(); cerr != nil {
				s.log.Warn("clear session", zap.Error(cerr))
			}
			return domain.Session{}, domain.ErrNotLoggedIn
		}
		return domain.Session{}, err
	}
	sess.User = me
	if err := s.sessions.SaveSession(passphrase, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}
