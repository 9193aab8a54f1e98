package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"runmate/internal/domain"
	"runmate/internal/util/memzero"
)

// envelopeVersion is written into every sealed record.
const envelopeVersion = 1

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// record has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted secure storage")

	// ErrPassphraseRequired is domain.ErrPassphraseRequired.
	ErrPassphraseRequired = domain.ErrPassphraseRequired
)

// kdfParams are the scrypt cost parameters stored alongside each record.
type kdfParams struct {
	N int `json:"scrypt_N"`
	R int `json:"scrypt_r"`
	P int `json:"scrypt_p"`
}

var defaultKDF = kdfParams{N: 1 << 15, R: 8, P: 1}

func (k kdfParams) derive(passphrase string, salt []byte) ([]byte, error) {
	if k.N <= 1 || k.R <= 0 || k.P <= 0 {
		return nil, fmt.Errorf("invalid scrypt parameters N=%d r=%d p=%d", k.N, k.R, k.P)
	}
	return scrypt.Key([]byte(passphrase), salt, k.N, k.R, k.P, chacha20poly1305.KeySize)
}

// envelope is the on-disk JSON form of a sealed record.
type envelope struct {
	V int `json:"v"`
	kdfParams
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// seal encrypts raw under a key derived from passphrase. The record name is
// authenticated with the ciphertext so a record cannot be replayed under
// another file name.
func seal(passphrase, name string, raw []byte, kdf kdfParams) ([]byte, error) {
	env := envelope{
		V:         envelopeVersion,
		kdfParams: kdf,
		Salt:      make([]byte, 16),
		Nonce:     make([]byte, chacha20poly1305.NonceSize),
	}
	if _, err := rand.Read(env.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(env.Nonce); err != nil {
		return nil, err
	}

	key, err := kdf.derive(passphrase, env.Salt)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	env.Cipher = aead.Seal(nil, env.Nonce, raw, recordAD(name, env.Salt))
	return json.Marshal(env)
}

// open reverses seal.
func open(passphrase, name string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode secure record %s: %w", name, err)
	}
	switch {
	case env.V > envelopeVersion:
		return nil, fmt.Errorf("unsupported secure storage version %d", env.V)
	case len(env.Nonce) != chacha20poly1305.NonceSize:
		return nil, ErrWrongPassphrase
	}

	key, err := env.derive(passphrase, env.Salt)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, recordAD(name, env.Salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func recordAD(name string, salt []byte) []byte {
	return append([]byte(name+"\x00"), salt...)
}
