package store

import "runmate/internal/domain"

const draftFilename = "signup_draft.enc"

// DraftFileStore persists the in-progress sign-up wizard. The draft holds the
// chosen password, so it is kept encrypted like the session.
type DraftFileStore struct {
	f *secureFile
}

// NewDraftFileStore returns a DraftFileStore rooted at dir.
func NewDraftFileStore(dir string) *DraftFileStore {
	return &DraftFileStore{f: newSecureFile(dir, draftFilename)}
}

// SaveDraft writes the encrypted draft.
func (s *DraftFileStore) SaveDraft(passphrase string, draft domain.SignupDraft) error {
	return s.f.save(passphrase, draft)
}

// LoadDraft returns the stored draft and whether it was present.
func (s *DraftFileStore) LoadDraft(passphrase string) (domain.SignupDraft, bool, error) {
	var d domain.SignupDraft
	ok, err := s.f.load(passphrase, &d)
	if err != nil || !ok {
		return domain.SignupDraft{}, false, err
	}
	return d, true, nil
}

// ClearDraft removes the draft once sign-up completes.
func (s *DraftFileStore) ClearDraft() error { return s.f.clear() }

// Compile-time assertion that DraftFileStore implements domain.DraftStore.
var _ domain.DraftStore = (*DraftFileStore)(nil)
