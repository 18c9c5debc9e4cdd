package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the handler layer can map it to a
// response without string matching.
type Kind string

const (
	NotFound         Kind = "NOT_FOUND"
	Forbidden        Kind = "FORBIDDEN"
	AlreadyScheduled Kind = "ALREADY_SCHEDULED"
	NotScheduled     Kind = "NOT_SCHEDULED"
	JobNotApplied    Kind = "JOB_NOT_APPLIED"
	InvalidClient    Kind = "INVALID_CLIENT"
	Validation       Kind = "VALIDATION_ERROR"
	DateRange        Kind = "DATE_RANGE_ERROR"
	Internal         Kind = "INTERNAL"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error while keeping it unwrappable.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the classification of err, or Internal for anything
// that escaped unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
