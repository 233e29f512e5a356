// Package errs defines the error kinds shared by services, middlewares and handlers.
//
// Every error that is allowed to reach a client is an *Error carrying a Kind.
// Anything else is treated as internal and answered with a generic body.
package errs

import "errors"

// Kind classifies an error for the HTTP layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindNotFound
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a client-safe error: Message is returned verbatim in the response body.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation returns a validation error with the given message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrEmailTaken    = &Error{Kind: KindConflict, Message: "Email already registered"}
	ErrUsernameTaken = &Error{Kind: KindConflict, Message: "Username already taken"}

	// ErrInvalidCredentials is returned both for an unknown email and a wrong password.
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Message: "Invalid email or password"}

	ErrNoToken      = &Error{Kind: KindAuthentication, Message: "No token provided"}
	ErrInvalidToken = &Error{Kind: KindAuthentication, Message: "Invalid token"}
	ErrTokenExpired = &Error{Kind: KindAuthentication, Message: "Token expired"}

	// ErrPasswordNotFound covers both a missing record and a record owned by someone else.
	ErrPasswordNotFound = &Error{Kind: KindNotFound, Message: "Password not found"}
	ErrInvalidID        = &Error{Kind: KindValidation, Message: "Invalid password id"}
)
