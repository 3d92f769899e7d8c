// Package apperr carries typed request errors from services to the HTTP
// boundary. Handlers decode an *Error exactly once into a status code and
// a client-safe message; wrapped causes stay server-side.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a request failure tagged with an HTTP status. Message is safe
// to return to the client; Err (optional) is the underlying cause and is
// only logged.
type Error struct {
	Status  int
	Message string
	// Expired marks a 401 caused specifically by access-token expiry so
	// clients know a refresh attempt is worthwhile.
	Expired bool
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports missing or malformed input.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Authentication reports a missing or invalid credential.
func Authentication(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Expired reports an expired access credential. The flag lets the client
// attempt a silent renewal instead of failing outright.
func Expired(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message, Expired: true}
}

// Authorization reports an authenticated caller with insufficient privilege.
func Authorization(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound reports an absent referenced entity.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate unique key, e.g. a taken username.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Integrity reports an operation that would violate a referential
// invariant, e.g. deleting a product referenced by an order item.
func Integrity(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Internal wraps an unexpected failure. The cause is logged server-side;
// the client only sees a generic message.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}

// From extracts the *Error from err, wrapping anything untyped as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
