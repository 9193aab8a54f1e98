package api

import (
	"context"
	"net/http"
	"net/url"

	"runmate/internal/domain"
)

// ---------- Auth & profile ----------

func (c *HTTP) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	var out domain.Session
	err := c.post(ctx, "/auth/login", creds, &out)
	return out, err
}

func (c *HTTP) Register(ctx context.Context, reg domain.Registration) (domain.Session, error) {
	var out domain.Session
	err := c.post(ctx, "/auth/register", reg, &out)
	return out, err
}

func (c *HTTP) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := c.get(ctx, "/users/me", &out)
	return out, err
}

func (c *HTTP) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPut, "/users/me", update, &out)
	return out, err
}

func (c *HTTP) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	var out []domain.User
	err := c.get(ctx, "/users/search?q="+url.QueryEscape(query), &out)
	return out, err
}

// ---------- Matches ----------

func (c *HTTP) Matches(ctx context.Context) ([]domain.Match, error) {
	var out []domain.Match
	err := c.get(ctx, "/matches", &out)
	return out, err
}

func (c *HTTP) Like(ctx context.Context, id domain.MatchID) error {
	return c.post(ctx, "/matches/"+url.PathEscape(id.String())+"/like", nil, nil)
}

func (c *HTTP) Pass(ctx context.Context, id domain.MatchID) error {
	return c.post(ctx, "/matches/"+url.PathEscape(id.String())+"/pass", nil, nil)
}

// ---------- Messaging ----------

func (c *HTTP) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	var out []domain.Conversation
	err := c.get(ctx, "/conversations", &out)
	return out, err
}

func (c *HTTP) Messages(ctx context.Context, id domain.ConversationID) ([]domain.Message, error) {
	var out []domain.Message
	err := c.get(ctx, "/conversations/"+url.PathEscape(id.String())+"/messages", &out)
	return out, err
}

func (c *HTTP) SendMessage(ctx context.Context, id domain.ConversationID, body string) (domain.Message, error) {
	var out domain.Message
	in := struct {
		Body string `json:"body"`
	}{Body: body}
	err := c.post(ctx, "/conversations/"+url.PathEscape(id.String())+"/messages", in, &out)
	return out, err
}

func (c *HTTP) MarkRead(ctx context.Context, id domain.ConversationID) error {
	return c.post(ctx, "/conversations/"+url.PathEscape(id.String())+"/read", nil, nil)
}

// ---------- Races, events, groups ----------

func (c *HTTP) Races(ctx context.Context) ([]domain.Race, error) {
	var out []domain.Race
	err := c.get(ctx, "/races", &out)
	return out, err
}

func (c *HTTP) Race(ctx context.Context, id domain.RaceID) (domain.Race, error) {
	var out domain.Race
	err := c.get(ctx, "/races/"+url.PathEscape(id.String()), &out)
	return out, err
}

func (c *HTTP) Events(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	err := c.get(ctx, "/events", &out)
	return out, err
}

func (c *HTTP) Event(ctx context.Context, id domain.EventID) (domain.Event, error) {
	var out domain.Event
	err := c.get(ctx, "/events/"+url.PathEscape(id.String()), &out)
	return out, err
}

func (c *HTTP) CreateEvent(ctx context.Context, ev domain.NewEvent) (domain.Event, error) {
	var out domain.Event
	err := c.post(ctx, "/events", ev, &out)
	return out, err
}

func (c *HTTP) JoinEvent(ctx context.Context, id domain.EventID) error {
	return c.post(ctx, "/events/"+url.PathEscape(id.String())+"/join", nil, nil)
}

func (c *HTTP) LeaveEvent(ctx context.Context, id domain.EventID) error {
	return c.post(ctx, "/events/"+url.PathEscape(id.String())+"/leave", nil, nil)
}

func (c *HTTP) Groups(ctx context.Context) ([]domain.Group, error) {
	var out []domain.Group
	err := c.get(ctx, "/groups", &out)
	return out, err
}

func (c *HTTP) Group(ctx context.Context, id domain.GroupID) (domain.Group, error) {
	var out domain.Group
	err := c.get(ctx, "/groups/"+url.PathEscape(id.String()), &out)
	return out, err
}

func (c *HTTP) CreateGroup(ctx context.Context, g domain.NewGroup) (domain.Group, error) {
	var out domain.Group
	err := c.post(ctx, "/groups", g, &out)
	return out, err
}

func (c *HTTP) JoinGroup(ctx context.Context, id domain.GroupID) error {
	return c.post(ctx, "/groups/"+url.PathEscape(id.String())+"/join", nil, nil)
}

func (c *HTTP) LeaveGroup(ctx context.Context, id domain.GroupID) error {
	return c.post(ctx, "/groups/"+url.PathEscape(id.String())+"/leave", nil, nil)
}

// ---------- Billing & notifications ----------

func (c *HTTP) Plans(ctx context.Context) ([]domain.Plan, error) {
	var out []domain.Plan
	err := c.get(ctx, "/payments/plans", &out)
	return out, err
}

func (c *HTTP) Subscribe(ctx context.Context, planID string) (domain.Subscription, error) {
	var out domain.Subscription
	in := struct {
		PlanID string `json:"plan_id"`
	}{PlanID: planID}
	err := c.post(ctx, "/payments/subscribe", in, &out)
	return out, err
}

func (c *HTTP) Subscription(ctx context.Context) (domain.Subscription, error) {
	var out domain.Subscription
	err := c.get(ctx, "/payments/subscription", &out)
	return out, err
}

func (c *HTTP) CancelSubscription(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/payments/subscription", nil, nil)
}

func (c *HTTP) RegisterPushToken(ctx context.Context, reg domain.PushRegistration) error {
	return c.post(ctx, "/notifications/register", reg, nil)
}
