// Package apperr defines the error type shared by all breathe packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a message template and an optional
// underlying cause.
type Error struct {
	Cause    error
	Message  string
	template string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is derived from the same error value.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.base() == t.base()
}

func (e *Error) base() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.base(),
	}
}

// Wrap returns a copy of the error with err attached as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		template: e.base(),
	}
}
