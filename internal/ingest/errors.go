// Package ingest decodes uploaded bank-statement files and normalizes
// their rows into canonical transactions.
package ingest

import "fmt"

// ErrorCode identifies the failure class surfaced to the caller.
type ErrorCode string

const (
	ErrUnsupportedFormat   ErrorCode = "UNSUPPORTED_FORMAT"
	ErrUndecodableContent  ErrorCode = "UNDECODABLE_CONTENT"
	ErrUnresolvableColumns ErrorCode = "UNRESOLVABLE_COLUMNS"
	ErrEmptyInput          ErrorCode = "EMPTY_INPUT"
)

// Error is a structured ingestion failure. Row-local problems are never
// wrapped in an Error: they are logged and the row is skipped.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
