// Package apperr defines the error taxonomy shared by services and the REST
// gateway: every failure a handler can surface is one of these kinds.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota // unexpected store failure, generic 500
	InvalidInput
	NotFound
	Conflict
	Unauthorized
)

// FieldError describes a single failed validation rule for a request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithFields attaches a field-level error list for 400 responses.
func (e *Error) WithFields(fields []FieldError) *Error {
	e.Fields = fields
	return e
}

// KindOf reports the kind of err; anything untyped is Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Status maps err to its HTTP status code. Conflict maps to 400, not 409,
// matching the gateway's contract for duplicate usernames and favorites.
func Status(err error) int {
	switch KindOf(err) {
	case InvalidInput, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FieldsOf returns the field-level error list of err, if any.
func FieldsOf(err error) []FieldError {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
