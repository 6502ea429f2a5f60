package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("name already exists")
	ErrNotFound   = errors.New("not found")
	ErrEmptyName  = errors.New("name cannot be empty")
)

// ValidationError reports a field that would leave an entity in an invalid state
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Result is the outcome of an aggregate operation or a setter-style mutation.
// A failed Result never leaves the aggregate partially invalid; the message is
// meant to be shown to the user as-is.
type Result struct {
	OK      bool
	Message string

	kind error
}

func success(message string) Result {
	return Result{OK: true, Message: message}
}

func failure(kind error, message string) Result {
	return Result{Message: message, kind: kind}
}

// Err returns nil for a successful result, otherwise an error that wraps the
// failure category (ErrValidation, ErrConflict, ErrNotFound or ErrEmptyName).
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	if r.kind == nil {
		return errors.New(r.Message)
	}
	return &resultError{kind: r.kind, message: r.Message}
}

// String returns the message, falling back to a generic word when empty
func (r Result) String() string {
	if r.Message != "" {
		return r.Message
	}
	if r.OK {
		return "ok"
	}
	return "failed"
}

type resultError struct {
	kind    error
	message string
}

func (e *resultError) Error() string { return e.message }
func (e *resultError) Unwrap() error { return e.kind }
