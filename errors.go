package structs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies why an operation failed. The set is closed: every
// failure the engine produces carries exactly one of these.
type ErrorCode int

const (
	// ErrNotFound covers an unresolved path component, an unknown field or
	// variant name, or an index past the end of an array when setting is
	// not permitted.
	ErrNotFound ErrorCode = iota + 1
	// ErrDomain covers an index at or beyond an array's length on a read.
	ErrDomain
	// ErrInvalid covers malformed text input, truncated binary, or an
	// unknown variant name in wire form.
	ErrInvalid
	// ErrNotSupported covers an operation that does not exist for a given
	// primitive, e.g. ascifying an opaque blob without a charset.
	ErrNotSupported
	// ErrOutOfMemory covers allocation failure.
	ErrOutOfMemory
	// ErrDepthExceeded covers the document loader's stack limit being hit.
	ErrDepthExceeded
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNotFound:
		return "not found"
	case ErrDomain:
		return "domain error"
	case ErrInvalid:
		return "invalid"
	case ErrNotSupported:
		return "not supported"
	case ErrOutOfMemory:
		return "out of memory"
	case ErrDepthExceeded:
		return "depth exceeded"
	default:
		return "unknown error"
	}
}

// Error is the error type every operation in this package returns. It
// carries the path being resolved (if any) so a caller can report where in
// a large value a failure occurred.
type Error struct {
	Code ErrorCode
	Path string
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("structs: %s at %q: %s", e.Code, e.Path, e.msg)
	}
	return fmt.Sprintf("structs: %s: %s", e.Code, e.msg)
}

// Unwrap exposes the underlying cause, if any, so callers may use
// errors.Is/errors.As against it.
func (e *Error) Unwrap() error { return e.err }

// newErr builds an *Error with a captured stack trace via pkg/errors, so
// diagnostics retain where inside the engine the failure originated.
func newErr(code ErrorCode, path, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Code: code, Path: path, msg: msg, err: errors.New(msg)}
}

// wrapErr attaches a path to an error already produced by a nested
// operation, without discarding its code if it is already an *Error.
func wrapErr(path string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		if se.Path == "" {
			return &Error{Code: se.Code, Path: path, msg: se.msg, err: errors.WithStack(err)}
		}
		return se
	}
	return &Error{Code: ErrInvalid, Path: path, msg: err.Error(), err: errors.WithStack(err)}
}

func errNotFound(path, format string, args ...any) error {
	return newErr(ErrNotFound, path, format, args...)
}

func errDomain(path, format string, args ...any) error {
	return newErr(ErrDomain, path, format, args...)
}

func errInvalid(path, format string, args ...any) error {
	return newErr(ErrInvalid, path, format, args...)
}

func errNotSupported(path, format string, args ...any) error {
	return newErr(ErrNotSupported, path, format, args...)
}

func errDepthExceeded(path, format string, args ...any) error {
	return newErr(ErrDepthExceeded, path, format, args...)
}
