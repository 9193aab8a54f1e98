package interfaces

import domaintypes "runmate/internal/domain/types"

// SessionStore keeps the auth token and user blob in secure storage.
type SessionStore interface {
	SaveSession(passphrase string, session domaintypes.Session) error
	LoadSession(passphrase string) (domaintypes.Session, bool, error)
	ClearSession() error
}

// DraftStore keeps the partially completed sign-up wizard.
type DraftStore interface {
	SaveDraft(passphrase string, draft domaintypes.SignupDraft) error
	LoadDraft(passphrase string) (domaintypes.SignupDraft, bool, error)
	ClearDraft() error
}
