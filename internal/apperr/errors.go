// Package apperr is the error taxonomy shared by both services. Every failure a
// handler can surface is one of a handful of kinds, each mapped to one HTTP status.
package apperr

import (
	"errors"   // Error matching
	"fmt"      // Error formatting
	"net/http" // HTTP status codes
)

// Kind classifies an error for the HTTP layer
type Kind string

const (
	NotFound     Kind = "NOT_FOUND"
	Conflict     Kind = "CONFLICT"
	Unauthorized Kind = "UNAUTHORIZED"
	BadRequest   Kind = "BAD_REQUEST"
	Internal     Kind = "INTERNAL_ERROR"
)

// Error is a classified failure. Message is static and safe to show to clients;
// Err keeps the cause for logs.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %s -> %v", e.Kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewNotFound(op, msg string) *Error {
	return &Error{Kind: NotFound, Op: op, Message: msg}
}

func NewConflict(op, msg string) *Error {
	return &Error{Kind: Conflict, Op: op, Message: msg}
}

func NewUnauthorized(op, msg string, err error) *Error {
	return &Error{Kind: Unauthorized, Op: op, Message: msg, Err: err}
}

func NewBadRequest(op, msg string, err error) *Error {
	return &Error{Kind: BadRequest, Op: op, Message: msg, Err: err}
}

func NewInternal(op string, err error) *Error {
	return &Error{Kind: Internal, Op: op, Message: "Internal server error", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the client-facing message of err
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Internal server error"
}

// Status maps err to an HTTP status code
func Status(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
