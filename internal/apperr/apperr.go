package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so entry points can decide how to report it.
type Kind int8

const (
	KindUnknown Kind = iota
	KindAuth
	KindMissingField
	KindUpstream
	KindInvalidInput
	KindNotConfigured
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindMissingField:
		return "missing_field"
	case KindUpstream:
		return "upstream"
	case KindInvalidInput:
		return "invalid_input"
	case KindNotConfigured:
		return "not_configured"
	default:
		return "unknown"
	}
}

// Error carries a Kind alongside the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind and operation name.
func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf builds a kinded error from a format string.
func Newf(kind Kind, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}

func IsMissingField(err error) bool {
	return KindOf(err) == KindMissingField
}
