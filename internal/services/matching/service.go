package matching

import (
	"context"
	"sort"

	"runmate/internal/domain"
)

// Service wraps the match endpoints.
type Service struct {
	api domain.MatchAPI
}

// New constructs a matching Service.
func New(api domain.MatchAPI) *Service {
	return &Service{api: api}
}

// Deck returns undecided matches, best score first. Ties keep backend order.
func (s *Service) Deck(ctx context.Context) ([]domain.Match, error) {
	ms, err := s.api.Matches(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Score > ms[j].Score })
	return ms, nil
}

// Like accepts a match; the backend opens a conversation with them.
func (s *Service) Like(ctx context.Context, id domain.MatchID) error {
	if id == "" {
		return domain.Invalid("match", "id is required")
	}
	return s.api.Like(ctx, id)
}

// Pass dismisses a match.
func (s *Service) Pass(ctx context.Context, id domain.MatchID) error {
	if id == "" {
		return domain.Invalid("match", "id is required")
	}
	return s.api.Pass(ctx, id)
}

// Remove drops the match with id from ms, returning the shortened slice.
func Remove(ms []domain.Match, id domain.MatchID) []domain.Match {
	out := ms[:0:0]
	for _, m := range ms {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
