package extract

import (
	"errors"
	"fmt"
)

// Kind is the closed set of fatal extraction failures.
type Kind string

const (
	KindEmptyFile         Kind = "EMPTY_FILE"
	KindFileTooLarge      Kind = "FILE_TOO_LARGE"
	KindUnsupportedFormat Kind = "UNSUPPORTED_FORMAT"
	KindExhausted         Kind = "EXTRACTION_EXHAUSTED"
)

// Error is a fatal extraction failure with a user-facing message,
// a suggested remediation, and the strategies attempted so far.
type Error struct {
	Kind       Kind
	Message    string
	Suggestion string
	Attempts   []Attempt
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches on Kind so callers can use errors.Is with the sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrEmptyFile         = &Error{Kind: KindEmptyFile}
	ErrFileTooLarge      = &Error{Kind: KindFileTooLarge}
	ErrUnsupportedFormat = &Error{Kind: KindUnsupportedFormat}
	ErrExhausted         = &Error{Kind: KindExhausted}
)

func newEmptyFile(name string) *Error {
	return &Error{
		Kind:       KindEmptyFile,
		Message:    fmt.Sprintf("%q is empty", name),
		Suggestion: "re-export the resume and upload it again",
	}
}

func newFileTooLarge(name string, size, limit int64) *Error {
	return &Error{
		Kind:       KindFileTooLarge,
		Message:    fmt.Sprintf("%q is %d bytes (limit %d)", name, size, limit),
		Suggestion: "reduce the file size, e.g. export without embedded images",
	}
}

func newUnsupportedFormat(name, mediaType string) *Error {
	return &Error{
		Kind:       KindUnsupportedFormat,
		Message:    fmt.Sprintf("%q (%s) is not a supported resume format", name, mediaType),
		Suggestion: "convert the resume to PDF, DOCX, or plain text",
	}
}

func newExhausted(attempts []Attempt, cause error) *Error {
	return &Error{
		Kind:       KindExhausted,
		Message:    "no extraction strategy produced usable text",
		Suggestion: "try a text-based PDF; the scan quality may be too low for OCR",
		Attempts:   attempts,
		Cause:      cause,
	}
}
