package app

import (
	"net/http"

	"go.uber.org/zap"

	"runmate/internal/api"
	"runmate/internal/services/auth"
	"runmate/internal/services/billing"
	"runmate/internal/services/events"
	"runmate/internal/services/groups"
	"runmate/internal/services/home"
	"runmate/internal/services/matching"
	"runmate/internal/services/messaging"
	"runmate/internal/services/notifications"
	"runmate/internal/services/profile"
	"runmate/internal/services/search"
	"runmate/internal/store"
	"runmate/internal/unread"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	API      *api.HTTP
	Sessions *store.SessionFileStore
	Drafts   *store.DraftFileStore
	Unread   *unread.Counter

	Auth          *auth.Service
	Matching      *matching.Service
	Messaging     *messaging.Service
	Events        *events.Service
	Groups        *groups.Service
	Profile       *profile.Service
	Billing       *billing.Service
	Search        *search.Service
	Notifications *notifications.Service
	Home          *home.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	// File-based stores
	sessions := store.NewSessionFileStore(cfg.Home)
	drafts := store.NewDraftFileStore(cfg.Home)

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.GetAPITimeout()}
	}

	client := api.NewHTTP(cfg.BaseURL(), api.Options{
		HTTP:          httpClient,
		Logger:        log.Named("api"),
		RatePerSecond: cfg.API.RatePerSecond,
		Burst:         cfg.API.Burst,
	})

	// High-level services
	counter := unread.New()
	matchSvc := matching.New(client)
	messageSvc := messaging.New(client, counter)
	eventSvc := events.New(client, nil)

	return &Wire{
		API:      client,
		Sessions: sessions,
		Drafts:   drafts,
		Unread:   counter,

		Auth:          auth.New(client, sessions, log.Named("auth")),
		Matching:      matchSvc,
		Messaging:     messageSvc,
		Events:        eventSvc,
		Groups:        groups.New(client),
		Profile:       profile.New(client, nil),
		Billing:       billing.New(client),
		Search:        search.New(client, cfg.GetSearchDebounce(), log.Named("search")),
		Notifications: notifications.New(client, log.Named("notifications")),
		Home:          home.New(matchSvc, messageSvc, eventSvc),
	}, nil
}
