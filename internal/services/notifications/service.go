package notifications

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"runmate/internal/domain"
)

// DefaultPlatform is sent when the caller does not name one.
const DefaultPlatform = "cli"

// Service wraps push-token registration.
type Service struct {
	api domain.BillingAPI
	log *zap.Logger
}

// New constructs a notifications Service.
func New(api domain.BillingAPI, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, log: log}
}

// Register sends token to the backend. Registering the same token twice is
// harmless.
func (s *Service) Register(ctx context.Context, token, platform string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Invalid("token", "is required")
	}
	if platform = strings.TrimSpace(platform); platform == "" {
		platform = DefaultPlatform
	}
	if err := s.api.RegisterPushToken(ctx, domain.PushRegistration{Token: token, Platform: platform}); err != nil {
		return err
	}
	s.log.Debug("push token registered", zap.String("platform", platform))
	return nil
}
