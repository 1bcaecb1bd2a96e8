// Package fault classifies the errors returned by mig's domain packages.
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the kind of errors caused by a missing or unusable input value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is the kind of errors caused by something that could not be located.
	ErrNotFound = errors.New("not found")
)

// Error is an error message tagged with its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Unwrap returns the kind, so that errors.Is(err, ErrNotFound) works.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New returns an error of the given kind.
func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf returns an error of the given kind with a formatted message.
func Newf(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
