// Package domainerrors defines the coded error type shared by the domain and
// application layers. Every expected failure carries a code that maps onto an
// HTTP status, so transports never inspect error strings.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error by the kind of rule that was violated.
type Code string

const (
	// CodeValidation marks field-level format violations raised by value
	// objects (bad email, short address, weak password).
	CodeValidation Code = "validation"

	// CodeInvariantViolation marks cross-field or aggregate-level rule
	// violations (missing landline and phone, bad status transition).
	CodeInvariantViolation Code = "invariant_violation"

	// CodeUnauthorized marks failed credential checks (wrong or missing
	// current password on a password change).
	CodeUnauthorized Code = "unauthorized"

	// CodeNotFound marks lookups for entities that do not exist.
	CodeNotFound Code = "not_found"

	// CodeConflict marks uniqueness violations against stored state.
	CodeConflict Code = "conflict"

	// CodeInternal marks unexpected infrastructure failures.
	CodeInternal Code = "internal"
)

// Error is a domain or application error with an HTTP-mappable code.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New constructs an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is/errors.As chains.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is treats two coded errors with equal code and message as equivalent, so
// exported sentinel values like ErrInvalidEmail survive wrapping.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && e.Message == other.Message
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var coded *Error
	if !errors.As(err, &coded) {
		return false
	}
	return coded.Code == code
}

// CodeOf returns the code carried by err, or CodeInternal when err is not a
// coded error.
func CodeOf(err error) Code {
	var coded *Error
	if !errors.As(err, &coded) {
		return CodeInternal
	}
	return coded.Code
}

// HTTPStatus maps an error code onto its transport status. Transports are
// expected to use this verbatim.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation, CodeInvariantViolation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
