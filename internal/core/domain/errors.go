package domain

import (
	"errors"
	"fmt"
)

// Extraction error categories.
// An *ExtractError unwraps to one of these, so callers can branch with errors.Is.
var (
	// ErrInvalidInput indicates a missing or malformed argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFilterUnavailable indicates no content filter handles the file type.
	ErrFilterUnavailable = errors.New("filter unavailable")

	// ErrConfigRejected indicates the filter rejected its initialisation flags.
	ErrConfigRejected = errors.New("configuration rejected")

	// ErrAccessDenied indicates a security policy or file-system access failure.
	ErrAccessDenied = errors.New("access denied")

	// ErrPasswordProtected indicates the document is password protected.
	// It is a kind of ErrAccessDenied.
	ErrPasswordProtected = fmt.Errorf("%w: password protected", ErrAccessDenied)

	// ErrResourceExhausted indicates insufficient memory or handles.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrProtocolViolation indicates a filter broke the chunk protocol,
	// such as a text chunk that yields no text.
	ErrProtocolViolation = errors.New("filter protocol violation")

	// ErrUnexpected indicates any other failure, including recovered panics.
	ErrUnexpected = errors.New("extraction failed")
)

// ErrUnsupportedType indicates an unknown setting key.
var ErrUnsupportedType = errors.New("unsupported type")

// Extraction operations, used as ExtractError.Op.
const (
	OpExtractText = "ExtractText"
	OpLoadFilter  = "LoadFilter"
	OpInit        = "Init"
	OpGetChunk    = "GetChunk"
	OpGetText     = "GetText"
)

// ExtractError is the structured failure returned by an extraction.
type ExtractError struct {
	// Op is the protocol step that failed.
	Op string

	// Kind is the error category (ErrAccessDenied, ErrUnexpected, ...).
	Kind error

	// Status is the protocol status reported by the filter.
	Status Status

	// Reason is a human-readable description of the failure.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

// Error implements error.
func (e *ExtractError) Error() string {
	msg := e.Op + ": " + e.Reason
	if e.Err != nil && e.Err != error(e.Status) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the category and the underlying cause.
func (e *ExtractError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	} else if e.Status != StatusOK {
		errs = append(errs, e.Status)
	}
	return errs
}

// NewExtractError builds an ExtractError, taking the status from cause.
func NewExtractError(op string, kind error, reason string, cause error) *ExtractError {
	status := StatusOf(cause)
	if cause == nil {
		status = StatusUnexpected
	}
	return &ExtractError{
		Op:     op,
		Kind:   kind,
		Status: status,
		Reason: reason,
		Err:    cause,
	}
}
