// Package apperr defines the error taxonomy shared by the service layer.
// Every data-access fault that is not already one of these kinds gets
// wrapped as Internal before it reaches a caller.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a service-level failure.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalidOperation
	KindInvalidArgument
)

// Error carries a failure kind alongside a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports an absent entity.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a duplicate where uniqueness is required.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidOperation reports an operation that does not apply to the current
// state, such as removing a cart item that is not there.
func InvalidOperation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument reports missing or malformed caller input.
func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected fault. The wrapped error stays reachable
// through errors.Unwrap for diagnostics.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// Wrap returns err unchanged when it is already a taxonomy error, and wraps
// it as Internal otherwise.
func Wrap(message string, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return Internal(message, err)
}

// KindOf extracts the kind of err, defaulting to KindInternal for errors
// outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err belongs to the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
