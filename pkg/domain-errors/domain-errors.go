package domainerrors

import "errors"

// Code represents a domain error category independent of transport layer.
// Registration rejections each get their own code so the HTTP layer can pick a
// status while the message carries the feedback text shown to the caller.
type Code string

const (
	CodeNotFound   Code = "not_found"
	CodeBadRequest Code = "bad_request"
	CodeInternal   Code = "internal_error"

	// Registration rejections
	CodeMissingAttribute  Code = "missing_attribute"
	CodeInvalidCitizenID  Code = "invalid_citizen_id"
	CodeInvalidBirthDate  Code = "invalid_birth_date"
	CodeBelowMinimumAge   Code = "below_minimum_age"
	CodeAlreadyRegistered Code = "already_registered"
)

// Error wraps domain or infrastructure failures with a stable code.
// It is transport-agnostic and can be used across service, store, and other layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsRejection reports whether err is one of the registration rejection codes.
func IsRejection(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case CodeMissingAttribute, CodeInvalidCitizenID, CodeInvalidBirthDate,
		CodeBelowMinimumAge, CodeAlreadyRegistered:
		return true
	default:
		return false
	}
}
