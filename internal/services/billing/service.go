package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"runmate/internal/domain"
)

// Service wraps the payment endpoints.
type Service struct {
	api domain.BillingAPI
}

// New constructs a billing Service.
func New(api domain.BillingAPI) *Service {
	return &Service{api: api}
}

// Plans lists the purchasable plans.
func (s *Service) Plans(ctx context.Context) ([]domain.Plan, error) {
	return s.api.Plans(ctx)
}

// Subscribe starts a subscription to planID. The returned client secret is
// what a payment sheet would confirm.
func (s *Service) Subscribe(ctx context.Context, planID string) (domain.Subscription, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return domain.Subscription{}, domain.Invalid("plan", "is required")
	}
	cur, active, err := s.Status(ctx)
	if err != nil {
		return domain.Subscription{}, err
	}
	if active && cur.PlanID == planID {
		return domain.Subscription{}, domain.Invalid("plan", "already subscribed to "+planID)
	}
	return s.api.Subscribe(ctx, planID)
}

// Status returns the current subscription and whether it is active. Having
// no subscription is not an error.
func (s *Service) Status(ctx context.Context) (domain.Subscription, bool, error) {
	sub, err := s.api.Subscription(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Subscription{}, false, nil
	}
	if err != nil {
		return domain.Subscription{}, false, err
	}
	return sub, sub.Status == domain.SubscriptionActive, nil
}

// Cancel ends the active subscription.
func (s *Service) Cancel(ctx context.Context) error {
	if err := s.api.CancelSubscription(ctx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("nothing to cancel: %w", err)
		}
		return err
	}
	return nil
}

// FormatPrice renders cents as "9.99 EUR".
func FormatPrice(p domain.Plan) string {
	return fmt.Sprintf("%d.%02d %s", p.PriceCents/100, p.PriceCents%100, strings.ToUpper(p.Currency))
}
