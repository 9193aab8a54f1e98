// Package profile shows and edits the caller's own profile. Edits are
// validated locally with the same rules as sign-up before any request.
package profile
