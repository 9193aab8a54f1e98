package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure at the network boundary.
type Kind int

const (
	KindServer Kind = iota
	KindNetwork
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "server"
	}
}

var (
	ErrNetwork      = errors.New("network failure")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("not authorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")

	// ErrNotLoggedIn is returned when a command needs a stored session.
	ErrNotLoggedIn = errors.New("not logged in; run `runmate login` first")

	// ErrPassphraseRequired is returned when secure storage is used without
	// a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required (-p or RUNMATE_PASSPHRASE)")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindValidation:
		return ErrValidation
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	default:
		return ErrServer
	}
}

// APIError is the typed error every backend call returns.
type APIError struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for transport failures
	Code    string // backend error code, if any
	Message string
	Op      string // method and path, e.g. "GET /races"
	Err     error  // underlying transport error, if any
}

func (e *APIError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s (%d)", e.Op, e.Message, e.Status)
	default:
		return fmt.Sprintf("%s: %s", e.Op, http.StatusText(e.Status))
	}
}

// Is matches the sentinel of the error's kind.
func (e *APIError) Is(target error) bool { return target == e.Kind.sentinel() }

func (e *APIError) Unwrap() error { return e.Err }

// KindForStatus maps an HTTP status to an error kind.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	default:
		return KindServer
	}
}

// ValidationError reports a client-side check that failed before any request
// was sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets callers treat client and server validation failures alike.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid is shorthand for a *ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
