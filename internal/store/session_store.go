package store

import "runmate/internal/domain"

const sessionFilename = "session.enc"

// SessionFileStore persists the auth token and cached user blob, encrypted.
type SessionFileStore struct {
	f *secureFile
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{f: newSecureFile(dir, sessionFilename)}
}

// SaveSession writes the encrypted session to disk.
func (s *SessionFileStore) SaveSession(passphrase string, session domain.Session) error {
	return s.f.save(passphrase, session)
}

// LoadSession reads and decrypts the session, reporting whether one exists.
func (s *SessionFileStore) LoadSession(passphrase string) (domain.Session, bool, error) {
	var session domain.Session
	ok, err := s.f.load(passphrase, &session)
	if err != nil || !ok {
		return domain.Session{}, false, err
	}
	return session, session.Token != "", nil
}

// ClearSession removes the stored session (logout).
func (s *SessionFileStore) ClearSession() error { return s.f.clear() }

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
