// Package apperr carries the workflow error taxonomy. Every failure that
// crosses a package boundary is an *Error with one of the closed codes
// below; handlers translate codes to HTTP statuses in exactly one place.
package apperr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Code string

const (
	CodeValidation        Code = "VALIDATION"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
	CodeForbidden         Code = "FORBIDDEN"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidTransition Code = "INVALID_TRANSITION"
	CodeDuplicate         Code = "DUPLICATE_SUBMISSION"
	CodeConflict          Code = "CONFLICT"
	CodeUnavailable       Code = "UNAVAILABLE"
	CodeInternal          Code = "INTERNAL"
)

type Error struct {
	Code    Code
	Message string
	Err     error
	// Details is echoed to the client alongside the message, e.g. the
	// current status after a refused transition.
	Details map[string]string
	stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Stack() []byte { return e.stack }

func New(code Code, message string, err error) *Error {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}
	return &Error{Code: code, Message: message, Err: err, stack: stack}
}

func Validation(message string) *Error {
	return New(CodeValidation, message, nil)
}

func Unauthenticated(message string) *Error {
	return New(CodeUnauthenticated, message, nil)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, message, nil)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message, nil)
}

// InvalidTransition echoes the entity's current status so the client can
// reconcile its stale view.
func InvalidTransition(message, currentStatus string) *Error {
	e := New(CodeInvalidTransition, message, nil)
	e.Details = map[string]string{"current_status": currentStatus}
	return e
}

func Duplicate(message string) *Error {
	return New(CodeDuplicate, message, nil)
}

func Conflict(message string) *Error {
	return New(CodeConflict, message, nil)
}

func Unavailable(message string, err error) *Error {
	return New(CodeUnavailable, message, err)
}

func Internal(message string, err error) *Error {
	return New(CodeInternal, message, err)
}

// CodeOf extracts the taxonomy code, defaulting to INTERNAL for errors that
// escaped classification.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
