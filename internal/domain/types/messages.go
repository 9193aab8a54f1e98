package types

import "time"

// Match is a backend-computed pairing with a compatibility score.
type Match struct {
	ID        MatchID   `json:"id"`
	User      User      `json:"user"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is one entry of the inbox.
type Conversation struct {
	ID          ConversationID `json:"id"`
	Peer        User           `json:"peer"`
	LastMessage string         `json:"last_message,omitempty"`
	UnreadCount int            `json:"unread_count"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Message is a single chat message.
type Message struct {
	ID             string         `json:"id"`
	ConversationID ConversationID `json:"conversation_id"`
	SenderID       UserID         `json:"sender_id"`
	Body           string         `json:"body"`
	SentAt         time.Time      `json:"sent_at"`
	Read           bool           `json:"read"`
}
