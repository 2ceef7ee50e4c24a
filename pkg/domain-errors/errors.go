// Package errors is the shared taxonomy for domain failures.
//
// Every domain failure is an *Error carrying a Code. Callers branch on the code
// with HasCode; infrastructure facts wrapped inside (see pkg/platform/sentinel)
// stay reachable through errors.Is.
package errors

import (
	stderrors "errors"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeArgumentMissing: a required value was absent when an entity was built.
	CodeArgumentMissing Code = "argument_missing"
	// CodeNullabilityContract: nil was assigned to a property that must never be nil.
	CodeNullabilityContract Code = "nullability_contract"
	// CodeInvalidEntityState: an entity invariant does not hold.
	CodeInvalidEntityState Code = "invalid_entity_state"
	// CodeValidation: expected, recoverable input failure reported by try operations.
	CodeValidation Code = "validation_error"
	// CodeConflict: the value collides with one already held.
	CodeConflict Code = "conflict"
)

// Error is the root domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// New builds an Error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error. The message is what
// Error() reports; the cause is only reachable through Unwrap.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code so errors.Is(err, &Error{Code: c}) works
// without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// Is is errors.Is, re-exported so callers importing this package as dErrors
// need not also import the standard errors package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
