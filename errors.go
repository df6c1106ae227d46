package pdftables

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the failures this module surfaces. Kinds are not
// distinct Go types — a single Error carries a Kind so callers can switch on
// it without a type-assertion per kind.
type ErrorKind int

const (
	// KindUsageError covers caller misuse: a negative page index.
	KindUsageError ErrorKind = iota
	// KindNotFound covers a path that does not resolve.
	KindNotFound
	// KindAuthFailed covers a missing or wrong password on an encrypted document.
	KindAuthFailed
	// KindBackendError covers any failure reported by the native PDF library.
	KindBackendError
	// KindIndexOutOfRange covers a page index >= page count.
	KindIndexOutOfRange
	// KindInvalidState covers operations on a closed document or a table
	// whose text was never extracted.
	KindInvalidState
	// KindValidationError covers a configuration field failing its precondition.
	KindValidationError
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsageError:
		return "usage error"
	case KindNotFound:
		return "not found"
	case KindAuthFailed:
		return "authentication failed"
	case KindBackendError:
		return "backend error"
	case KindIndexOutOfRange:
		return "index out of range"
	case KindInvalidState:
		return "invalid state"
	case KindValidationError:
		return "validation error"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type surfaced by this module. Field is only
// meaningful for KindValidationError.
type Error struct {
	Kind  ErrorKind
	Field string
	cause error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %v", e.Kind, e.Field, e.cause)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return e.Kind.String()
}

// Unwrap allows errors.Is/errors.As to reach the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, pdftables.ErrNotFound) style checks via the sentinel
// values below, or compare kinds directly.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// newError wraps cause (which may be nil) with a message and kind.
func newError(kind ErrorKind, cause error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	var wrapped error
	if cause != nil {
		wrapped = errors.Wrap(cause, msg)
	} else {
		wrapped = errors.New(msg)
	}
	return &Error{Kind: kind, cause: wrapped}
}

func usageErrorf(format string, args ...any) *Error {
	return newError(KindUsageError, nil, format, args...)
}

func notFoundErrorf(format string, args ...any) *Error {
	return newError(KindNotFound, nil, format, args...)
}

func authFailedErrorf(format string, args ...any) *Error {
	return newError(KindAuthFailed, nil, format, args...)
}

func backendErrorf(format string, args ...any) *Error {
	return newError(KindBackendError, nil, format, args...)
}

func indexOutOfRangeErrorf(format string, args ...any) *Error {
	return newError(KindIndexOutOfRange, nil, format, args...)
}

func invalidStateErrorf(format string, args ...any) *Error {
	return newError(KindInvalidState, nil, format, args...)
}

// validationErrorf builds a KindValidationError naming the offending field,
// the message names the field.
func validationErrorf(field, format string, args ...any) *Error {
	err := newError(KindValidationError, nil, format, args...)
	err.Field = field
	return err
}

// ErrNotFound etc. are sentinels for errors.Is comparisons against a Kind only
// (cause and field are ignored by (*Error).Is).
var (
	ErrUsage           = &Error{Kind: KindUsageError}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrAuthFailed      = &Error{Kind: KindAuthFailed}
	ErrBackend         = &Error{Kind: KindBackendError}
	ErrIndexOutOfRange = &Error{Kind: KindIndexOutOfRange}
	ErrInvalidState    = &Error{Kind: KindInvalidState}
	ErrValidation      = &Error{Kind: KindValidationError}
)
