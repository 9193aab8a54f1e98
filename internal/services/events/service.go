package events

import (
	"context"
	"strings"
	"time"

	"runmate/internal/domain"
	"runmate/internal/listfilter"
)

// Service wraps race and event endpoints.
type Service struct {
	api domain.ListingAPI
	now func() time.Time
}

// New constructs an events Service. now defaults to time.Now.
func New(api domain.ListingAPI, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{api: api, now: now}
}

// Races returns the races matching c, soonest first.
func (s *Service) Races(ctx context.Context, c listfilter.Criteria) ([]domain.Race, error) {
	races, err := s.api.Races(ctx)
	if err != nil {
		return nil, err
	}
	return listfilter.Apply(races, c, s.now()), nil
}

// Race returns one race.
func (s *Service) Race(ctx context.Context, id domain.RaceID) (domain.Race, error) {
	if id == "" {
		return domain.Race{}, domain.Invalid("race", "id is required")
	}
	return s.api.Race(ctx, id)
}

// Events returns the events matching c, soonest first.
func (s *Service) Events(ctx context.Context, c listfilter.Criteria) ([]domain.Event, error) {
	evs, err := s.api.Events(ctx)
	if err != nil {
		return nil, err
	}
	return listfilter.Apply(evs, c, s.now()), nil
}

// Upcoming returns at most limit events from today on. limit <= 0 means all.
func (s *Service) Upcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	evs, err := s.Events(ctx, listfilter.Criteria{FutureOnly: true})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(evs) > limit {
		evs = evs[:limit]
	}
	return evs, nil
}

// Event returns one event.
func (s *Service) Event(ctx context.Context, id domain.EventID) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, domain.Invalid("event", "id is required")
	}
	return s.api.Event(ctx, id)
}

// Create validates and publishes a new event. The start date must parse and
// must not be in the past.
func (s *Service) Create(ctx context.Context, ev domain.NewEvent) (domain.Event, error) {
	ev.Title = strings.TrimSpace(ev.Title)
	ev.Location = strings.TrimSpace(ev.Location)
	ev.StartDate = strings.TrimSpace(ev.StartDate)
	if ev.Title == "" {
		return domain.Event{}, domain.Invalid("title", "is required")
	}
	if ev.Location == "" {
		return domain.Event{}, domain.Invalid("location", "is required")
	}
	now := s.now()
	start, ok := listfilter.ParseDate(ev.StartDate, now.Location())
	if !ok {
		return domain.Event{}, domain.Invalid("start_date", "use YYYY-MM-DD or an RFC 3339 time")
	}
	y, m, d := now.Date()
	if start.Before(time.Date(y, m, d, 0, 0, 0, 0, now.Location())) {
		return domain.Event{}, domain.Invalid("start_date", "is in the past")
	}
	for _, d := range ev.Distances {
		if d <= 0 {
			return domain.Event{}, domain.Invalid("distances", "must be positive")
		}
	}
	return s.api.CreateEvent(ctx, ev)
}

// Join adds the caller to an event.
func (s *Service) Join(ctx context.Context, id domain.EventID) error {
	if id == "" {
		return domain.Invalid("event", "id is required")
	}
	return s.api.JoinEvent(ctx, id)
}

// Leave removes the caller from an event.
func (s *Service) Leave(ctx context.Context, id domain.EventID) error {
	if id == "" {
		return domain.Invalid("event", "id is required")
	}
	return s.api.LeaveEvent(ctx, id)
}
