package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"runmate/internal/util/memzero"
)

// secureFile is one encrypted JSON record on disk.
type secureFile struct {
	path string
	name string
	mu   sync.Mutex
}

func newSecureFile(dir, name string) *secureFile {
	return &secureFile{path: filepath.Join(dir, name), name: name}
}

// save encrypts v under passphrase and writes it atomically.
func (f *secureFile) save(passphrase string, v any) error {
	if passphrase == "" {
		return ErrPassphraseRequired
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)
	ct, err := seal(passphrase, f.name, raw, defaultKDF)
	if err != nil {
		return err
	}
	return writeFile(f.path, ct, 0o600)
}

// load decrypts the record into out. ok is false when nothing is stored.
func (f *secureFile) load(passphrase string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := readFile(f.path)
	if err != nil {
		return false, err
	}
	if b == nil { // file didn't exist
		return false, nil
	}
	if passphrase == "" {
		return false, ErrPassphraseRequired
	}
	pt, err := open(passphrase, f.name, b)
	if err != nil {
		return false, err
	}
	defer memzero.Zero(pt)
	if err := json.Unmarshal(pt, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *secureFile) clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return removeFile(f.path)
}
