// ================== pkg/errors/errors.go =================
package errors

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
	ErrInvalidID = errors.New("invalid id")
)

// AuthKind classifies why a request was not allowed through the guard chain.
type AuthKind int

const (
	// Missing means no assertion was presented.
	Missing AuthKind = iota + 1
	// Malformed means an assertion was presented but could not be parsed.
	Malformed
	// Invalid means the signature check failed.
	Invalid
	// Expired means the assertion is past its validity window.
	Expired
	// Forbidden means the principal is authenticated but not allowed to act on the resource.
	Forbidden
)

var authKindNames = map[AuthKind]string{
	Missing:   "missing",
	Malformed: "malformed",
	Invalid:   "invalid",
	Expired:   "expired",
	Forbidden: "forbidden",
}

func (k AuthKind) String() string {
	if name, ok := authKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// AuthError is the terminal failure produced by token verification or authorization.
type AuthError struct {
	Kind    AuthKind
	Message string
	cause   error
}

// NewAuthError builds an AuthError of the given kind with a client-facing message.
func NewAuthError(kind AuthKind, message string) *AuthError {
	return &AuthError{Kind: kind, Message: message}
}

// WithCause records the underlying error for logging. It is never sent to clients.
func (e *AuthError) WithCause(err error) *AuthError {
	e.cause = err
	return e
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

// Is matches another *AuthError of the same kind, so errors.Is(err, errors.ErrExpired) works.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// StatusCode maps the kind to its HTTP status: 403 for Forbidden, 401 otherwise.
func (e *AuthError) StatusCode() int {
	if e.Kind == Forbidden {
		return http.StatusForbidden
	}
	return http.StatusUnauthorized
}

// Code is the machine-readable error code sent alongside the message.
func (e *AuthError) Code() string {
	switch e.Kind {
	case Missing:
		return "AUTH_REQUIRED"
	case Malformed:
		return "AUTH_MALFORMED"
	case Invalid:
		return "AUTH_INVALID_TOKEN"
	case Expired:
		return "AUTH_TOKEN_EXPIRED"
	case Forbidden:
		return "FORBIDDEN"
	default:
		return "AUTH_FAILED"
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrMissing   = NewAuthError(Missing, "You are not authenticated!")
	ErrMalformed = NewAuthError(Malformed, "Token is malformed")
	ErrInvalid   = NewAuthError(Invalid, "Token is not valid!")
	ErrExpired   = NewAuthError(Expired, "Token has expired")
	ErrForbidden = NewAuthError(Forbidden, "You are not allowed to do that!")
)

// AsAuthError extracts an *AuthError from err.
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}
