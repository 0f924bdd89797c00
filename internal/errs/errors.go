// Package errs is the structured error/warning idiom shared across the
// package store, object store, style resolver, cell decoder and
// traversal engine.
package errs

import "fmt"

// Code categorizes a core error, per the policy summary: corruption is
// fatal, missing references and unknown subtypes are tolerated by
// skipping (recorded as Warnings instead), visitor and OCR failures are
// surfaced but do not corrupt engine state.
type Code string

const (
	CodePackageNotFound Code = "PACKAGE_NOT_FOUND"
	CodeEntryNotFound   Code = "ENTRY_NOT_FOUND"
	CodePackageCorrupt  Code = "PACKAGE_CORRUPT"
	CodeSchemaUnknown   Code = "SCHEMA_UNKNOWN"
	CodeDereferenceMiss Code = "DEREFERENCE_MISS"
	CodeVisitorError    Code = "VISITOR_ERROR"
	CodeOCRFailure      Code = "OCR_FAILURE"
)

// Error is the core's structured error type.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches by Code, ignoring Message/Cause/Context, so callers can
// test `errors.Is(err, errs.New(errs.CodeEntryNotFound, ""))`.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithContext adds a context field and returns the same error for
// chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func Wrapf(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// As extracts an *Error from err, if it is one.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}
