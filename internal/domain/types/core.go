package types

// UserID identifies a backend user.
type UserID string

// String returns the string form of the identifier.
func (id UserID) String() string { return string(id) }

// RaceID identifies a race listing.
type RaceID string

// String returns the string form of the identifier.
func (id RaceID) String() string { return string(id) }

// EventID identifies a community event.
type EventID string

// String returns the string form of the identifier.
func (id EventID) String() string { return string(id) }

// GroupID identifies a running group.
type GroupID string

// String returns the string form of the identifier.
func (id GroupID) String() string { return string(id) }

// MatchID identifies a backend-computed pairing.
type MatchID string

// String returns the string form of the identifier.
func (id MatchID) String() string { return string(id) }

// ConversationID identifies a conversation with another user.
type ConversationID string

// String returns the string form of the conversation identifier.
func (id ConversationID) String() string { return string(id) }
