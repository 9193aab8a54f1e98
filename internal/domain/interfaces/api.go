package interfaces

import (
	"context"

	domaintypes "runmate/internal/domain/types"
)

// AuthAPI covers login, registration and the caller's own profile.
type AuthAPI interface {
	Login(ctx context.Context, creds domaintypes.Credentials) (domaintypes.Session, error)
	Register(ctx context.Context, reg domaintypes.Registration) (domaintypes.Session, error)
	Me(ctx context.Context) (domaintypes.User, error)
	UpdateProfile(ctx context.Context, update domaintypes.ProfileUpdate) (domaintypes.User, error)
	SearchUsers(ctx context.Context, query string) ([]domaintypes.User, error)
}

// MatchAPI exposes the backend's pre-computed matches.
type MatchAPI interface {
	Matches(ctx context.Context) ([]domaintypes.Match, error)
	Like(ctx context.Context, id domaintypes.MatchID) error
	Pass(ctx context.Context, id domaintypes.MatchID) error
}

// MessageAPI is the inbox and chat threads.
type MessageAPI interface {
	Conversations(ctx context.Context) ([]domaintypes.Conversation, error)
	Messages(ctx context.Context, id domaintypes.ConversationID) ([]domaintypes.Message, error)
	SendMessage(ctx context.Context, id domaintypes.ConversationID, body string) (domaintypes.Message, error)
	MarkRead(ctx context.Context, id domaintypes.ConversationID) error
}

// ListingAPI serves races, events and groups.
type ListingAPI interface {
	Races(ctx context.Context) ([]domaintypes.Race, error)
	Race(ctx context.Context, id domaintypes.RaceID) (domaintypes.Race, error)

	Events(ctx context.Context) ([]domaintypes.Event, error)
	Event(ctx context.Context, id domaintypes.EventID) (domaintypes.Event, error)
	CreateEvent(ctx context.Context, ev domaintypes.NewEvent) (domaintypes.Event, error)
	JoinEvent(ctx context.Context, id domaintypes.EventID) error
	LeaveEvent(ctx context.Context, id domaintypes.EventID) error

	Groups(ctx context.Context) ([]domaintypes.Group, error)
	Group(ctx context.Context, id domaintypes.GroupID) (domaintypes.Group, error)
	CreateGroup(ctx context.Context, g domaintypes.NewGroup) (domaintypes.Group, error)
	JoinGroup(ctx context.Context, id domaintypes.GroupID) error
	LeaveGroup(ctx context.Context, id domaintypes.GroupID) error
}

// BillingAPI proxies the backend's payment endpoints.
type BillingAPI interface {
	Plans(ctx context.Context) ([]domaintypes.Plan, error)
	Subscribe(ctx context.Context, planID string) (domaintypes.Subscription, error)
	Subscription(ctx context.Context) (domaintypes.Subscription, error)
	CancelSubscription(ctx context.Context) error
	RegisterPushToken(ctx context.Context, reg domaintypes.PushRegistration) error
}

// APIClient is the full backend surface.
type APIClient interface {
	AuthAPI
	MatchAPI
	MessageAPI
	ListingAPI
	BillingAPI

	// SetToken installs the bearer token used for subsequent calls.
	SetToken(token string)
}
