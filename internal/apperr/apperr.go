// Package apperr defines the client-wide error taxonomy. The gateway
// classifies every failed backend call into exactly one Kind; all other
// layers pass the classified error through unchanged.
package apperr

import (
	"errors"
	"fmt"
)

// Kind partitions failures by how the UI must react to them.
type Kind int

const (
	// KindValidation is a client-side form error; no request was sent.
	KindValidation Kind = iota
	// KindAuthentication is a 401: the session is invalid or expired.
	KindAuthentication
	// KindAuthorization is a 403: authenticated but insufficient role.
	KindAuthorization
	// KindNotFound is a 404.
	KindNotFound
	// KindServer is any 5xx.
	KindServer
	// KindConnectivity means no response was received at all.
	KindConnectivity
	// KindUnexpected is any other non-2xx status.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindConnectivity:
		return "connectivity"
	default:
		return "unexpected"
	}
}

// Error is a classified failure. Message is safe to show to the user;
// Status is the HTTP status when one was received, zero otherwise.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error with a user-facing message.
func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Message: message, Status: status}
}

// Wrap creates a classified error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind of a classified error. Unclassified errors
// report KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// MessageOf extracts the user-facing message, falling back to a generic one.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "An unexpected error occurred."
}

// IsAuthentication reports whether the error is a 401 classification.
func IsAuthentication(err error) bool { return is(err, KindAuthentication) }

// IsValidation reports whether the error is a client-side form error.
func IsValidation(err error) bool { return is(err, KindValidation) }

// IsConnectivity reports whether no response was received.
func IsConnectivity(err error) bool { return is(err, KindConnectivity) }

// IsNotFound reports whether the error is a 404 classification.
func IsNotFound(err error) bool { return is(err, KindNotFound) }

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
