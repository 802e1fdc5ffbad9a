// Package apperr classifies failures from the remote auth and shopping
// services so callers can branch on the condition rather than on wire
// details.
package apperr

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the failure taxonomy surfaced to users.
type Kind uint8

const (
	// Unknown covers anything not classified below.
	Unknown Kind = iota
	// NetworkUnavailable means the request never reached the service.
	NetworkUnavailable
	// ValidationRejected is a service-side business-rule rejection, e.g.
	// insufficient stock. Reason carries the server's human-readable text.
	ValidationRejected
	// AuthExpired means the credential was rejected; re-login is the only
	// recovery path.
	AuthExpired
)

func (k Kind) String() string {
	switch k {
	case NetworkUnavailable:
		return "network_unavailable"
	case ValidationRejected:
		return "validation_rejected"
	case AuthExpired:
		return "auth_expired"
	default:
		return "unknown"
	}
}

// Error is a classified remote failure. Status holds the HTTP status code
// when one was received, 0 otherwise.
type Error struct {
	Kind   Kind
	Reason string
	Status int
	cause  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a classified error with a stack trace.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason, cause: errors.New(reason)}
}

// Wrap classifies an underlying error.
func Wrap(err error, kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason, cause: errors.Wrap(err, reason)}
}

// WithStatus attaches the HTTP status code that produced the error.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// KindOf extracts the Kind from any error; non-classified errors are Unknown.
func KindOf(err error) Kind {
	var ae *Error
	if stderrors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

// Reason returns the human-readable reason, falling back to err.Error().
func Reason(err error) string {
	var ae *Error
	if stderrors.As(err, &ae) {
		return ae.Reason
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// HTTPStatus returns the HTTP status attached to the error, 0 if none.
func HTTPStatus(err error) int {
	var ae *Error
	if stderrors.As(err, &ae) {
		return ae.Status
	}
	return 0
}
