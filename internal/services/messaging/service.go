package messaging

import (
	"context"
	"strings"
	"unicode/utf8"

	"runmate/internal/domain"
	"runmate/internal/unread"
)

// MaxBodyLen caps a message body, in runes.
const MaxBodyLen = 2000

// Service wraps the conversation endpoints.
type Service struct {
	api    domain.MessageAPI
	unread *unread.Counter
}

// New constructs a messaging Service. counter may be shared with other
// consumers such as the inbox badge.
func New(api domain.MessageAPI, counter *unread.Counter) *Service {
	if counter == nil {
		counter = unread.New()
	}
	return &Service{api: api, unread: counter}
}

// Unread exposes the shared counter.
func (s *Service) Unread() *unread.Counter { return s.unread }

// Conversations lists the inbox, newest first, and refreshes the counter.
func (s *Service) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	convs, err := s.api.Conversations(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.ConversationID]int, len(convs))
	for _, c := range convs {
		counts[c.ID] = c.UnreadCount
	}
	s.unread.Reset(counts)
	return convs, nil
}

// RefreshUnread reloads the inbox and returns the new total.
func (s *Service) RefreshUnread(ctx context.Context) (int, error) {
	if _, err := s.Conversations(ctx); err != nil {
		return 0, err
	}
	return s.unread.Total(), nil
}

// Thread returns the messages of a conversation, oldest first.
func (s *Service) Thread(ctx context.Context, id domain.ConversationID) ([]domain.Message, error) {
	if id == "" {
		return nil, domain.Invalid("conversation", "id is required")
	}
	return s.api.Messages(ctx, id)
}

// Send posts body to a conversation.
func (s *Service) Send(ctx context.Context, id domain.ConversationID, body string) (domain.Message, error) {
	body = strings.TrimSpace(body)
	switch {
	case id == "":
		return domain.Message{}, domain.Invalid("conversation", "id is required")
	case body == "":
		return domain.Message{}, domain.Invalid("body", "message is empty")
	case utf8.RuneCountInString(body) > MaxBodyLen:
		return domain.Message{}, domain.Invalid("body", "message is too long")
	}
	return s.api.SendMessage(ctx, id, body)
}

// MarkRead clears a conversation's unread messages on the backend and in the
// counter.
func (s *Service) MarkRead(ctx context.Context, id domain.ConversationID) error {
	if id == "" {
		return domain.Invalid("conversation", "id is required")
	}
	if err := s.api.MarkRead(ctx, id); err != nil {
		return err
	}
	s.unread.MarkRead(id)
	return nil
}
