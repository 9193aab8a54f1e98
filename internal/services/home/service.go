package home

import (
	"context"

	"golang.org/x/sync/errgroup"

	"runmate/internal/domain"
	"runmate/internal/services/events"
	"runmate/internal/services/matching"
	"runmate/internal/services/messaging"
)

// Limits for each dashboard section.
const (
	TopMatches     = 3
	UpcomingEvents = 3
)

// Dashboard is what the home screen shows.
type Dashboard struct {
	Matches       []domain.Match
	Conversations []domain.Conversation
	Unread        int
	Upcoming      []domain.Event
}

// Service loads the dashboard.
type Service struct {
	matches  *matching.Service
	messages *messaging.Service
	events   *events.Service
}

// New constructs a home Service from the section services.
func New(matches *matching.Service, messages *messaging.Service, evs *events.Service) *Service {
	return &Service{matches: matches, messages: messages, events: evs}
}

// Load fetches every section concurrently. The first failure cancels the
// remaining requests and is returned.
func (s *Service) Load(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ms, err := s.matches.Deck(ctx)
		if err != nil {
			return err
		}
		if len(ms) > TopMatches {
			ms = ms[:TopMatches]
		}
		d.Matches = ms
		return nil
	})
	g.Go(func() error {
		convs, err := s.messages.Conversations(ctx)
		if err != nil {
			return err
		}
		d.Conversations = convs
		d.Unread = s.messages.Unread().Total()
		return nil
	})
	g.Go(func() error {
		evs, err := s.events.Upcoming(ctx, UpcomingEvents)
		if err != nil {
			return err
		}
		d.Upcoming = evs
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
