// Package apperrors defines the error taxonomy shared by handlers,
// middleware, and the store layer. Every failure a handler can see is an
// AppError with a Kind; the Kind alone decides the HTTP status.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindInvalidInput marks user-correctable input errors (malformed URL).
	KindInvalidInput Kind = iota
	// KindUnauthorized marks a missing or incorrect API key.
	KindUnauthorized
	// KindNotFound marks a lookup for an id that has no row.
	KindNotFound
	// KindConflict marks a unique-key violation on insert. It is retried by
	// the create handler and never reaches a response.
	KindConflict
	// KindExhausted marks the create handler running out of id candidates.
	KindExhausted
	// KindInternal marks timeouts and unclassified store failures.
	KindInternal
)

// AppError is a custom error type that carries a Kind and a client-safe message
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the Kind to its one HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func InvalidInput(msg string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: msg}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func Conflict(err error) *AppError {
	return &AppError{Kind: KindConflict, Message: "duplicate id", Err: err}
}

func Exhausted(msg string) *AppError {
	return &AppError{Kind: KindExhausted, Message: msg}
}

// Internal wraps a store failure or timeout. The message is deliberately
// generic; the cause stays in Err for logging only.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf extracts the Kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
