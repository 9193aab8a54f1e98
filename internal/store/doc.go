// Package store provides the client's secure on-device storage.
//
// Records are serialised as JSON, sealed with ChaCha20-Poly1305 under a key
// derived from the user's passphrase with scrypt, and written atomically
// (temp file then rename) with 0600 permissions. All methods are
// concurrency-safe via per-record locking. Files live under the configured
// home directory (default ~/.runmate).
//
// The package includes stores for:
//   - The authenticated session: token and user blob (SessionFileStore)
//   - The sign-up wizard draft (DraftFileStore)
package store
