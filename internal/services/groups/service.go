package groups

import (
	"context"
	"sort"
	"strings"

	"runmate/internal/domain"
)

// Service wraps the group endpoints.
type Service struct {
	api domain.ListingAPI
}

// New constructs a groups Service.
func New(api domain.ListingAPI) *Service {
	return &Service{api: api}
}

// List returns every group, the caller's own first, then by name.
func (s *Service) List(ctx context.Context) ([]domain.Group, error) {
	gs, err := s.api.Groups(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(gs, func(i, j int) bool {
		if gs[i].IsMember != gs[j].IsMember {
			return gs[i].IsMember
		}
		return strings.ToLower(gs[i].Name) < strings.ToLower(gs[j].Name)
	})
	return gs, nil
}

// Show returns one group.
func (s *Service) Show(ctx context.Context, id domain.GroupID) (domain.Group, error) {
	if id == "" {
		return domain.Group{}, domain.Invalid("group", "id is required")
	}
	return s.api.Group(ctx, id)
}

// Create starts a new group owned by the caller.
func (s *Service) Create(ctx context.Context, g domain.NewGroup) (domain.Group, error) {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return domain.Group{}, domain.Invalid("name", "is required")
	}
	g.City = strings.TrimSpace(g.City)
	return s.api.CreateGroup(ctx, g)
}

// Join adds the caller to a group.
func (s *Service) Join(ctx context.Context, id domain.GroupID) error {
	if id == "" {
		return domain.Invalid("group", "id is required")
	}
	return s.api.JoinGroup(ctx, id)
}

// Leave removes the caller from a group.
func (s *Service) Leave(ctx context.Context, id domain.GroupID) error {
	if id == "" {
		return domain.Invalid("group", "id is required")
	}
	return s.api.LeaveGroup(ctx, id)
}
