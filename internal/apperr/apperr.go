// Package apperr defines the typed errors surfaced to the CLI and TUI.
package apperr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies an error for the CLI exit path and the TUI message.
type Kind string

const (
	KindLoadFailure  Kind = "LOAD_FAILURE"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindInternal     Kind = "INTERNAL"
)

// Error carries a kind, a message for humans and the stack where it was
// created. The stack is only written to the log, never shown to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error, keeping the stack of err when it already has one.
func New(kind Kind, message string, err error) *Error {
	var stack []byte
	if err != nil {
		var ge *goerrors.Error
		if errors.As(err, &ge) {
			stack = ge.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}
	return &Error{Kind: kind, Message: message, Err: err, Stack: stack}
}

// LoadFailure reports that the listings could not be fetched or decoded.
func LoadFailure(message string, err error) *Error {
	return New(KindLoadFailure, message, err)
}

// InvalidInput reports a bad flag, config value or filter option.
func InvalidInput(message string, err error) *Error {
	return New(KindInvalidInput, message, err)
}

// Internal reports a programming or wiring error.
func Internal(message string, err error) *Error {
	return New(KindInternal, message, err)
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StackOf returns the captured stack, or nil when err carries none.
func StackOf(err error) []byte {
	var e *Error
	if errors.As(err, &e) {
		return e.Stack
	}
	return nil
}
