package domain

import "errors"

// Status is a filter protocol status code.
// Every status other than StatusOK implements error, so filters return
// them directly or wrapped with fmt.Errorf("...: %w", status).
type Status uint32

// Filter protocol statuses.
const (
	// StatusOK means the call succeeded.
	StatusOK Status = iota

	// StatusTruncated is the soft-success result of hitting the length cap.
	StatusTruncated

	// StatusLastText means this GetText call returned the final text of the chunk.
	StatusLastText

	// StatusEndOfChunks means the filter has no further chunks.
	StatusEndOfChunks

	// StatusNoMoreText means the current chunk has no text left.
	StatusNoMoreText

	// StatusNoText means the current chunk does not carry text at all.
	StatusNoText

	// StatusEmbeddingUnavailable means an embedded object could not be filtered.
	StatusEmbeddingUnavailable

	// StatusLinkUnavailable means linked content could not be filtered.
	StatusLinkUnavailable

	// StatusPassword means a password or similar security measure blocked access.
	StatusPassword

	// StatusAccess means the file could not be accessed.
	StatusAccess

	// StatusAccessDenied means access to the filter itself was denied.
	StatusAccessDenied

	// StatusInvalidArg means a parameter was invalid.
	StatusInvalidArg

	// StatusPointer means a required destination was missing.
	StatusPointer

	// StatusHandle means a handle was invalid, usually from memory pressure.
	StatusHandle

	// StatusOutOfMemory means there were not enough resources to continue.
	StatusOutOfMemory

	// StatusFail is an unspecified failure.
	StatusFail

	// StatusFilterNotFound means no filter is registered for the file type.
	StatusFilterNotFound

	// StatusUnexpected is any failure outside the protocol.
	StatusUnexpected
)

var statusText = map[Status]string{
	StatusOK:                   "ok",
	StatusTruncated:            "truncated",
	StatusLastText:             "last text in chunk",
	StatusEndOfChunks:          "end of chunks",
	StatusNoMoreText:           "no more text in chunk",
	StatusNoText:               "chunk does not contain text",
	StatusEmbeddingUnavailable: "embedded object unavailable",
	StatusLinkUnavailable:      "linked object unavailable",
	StatusPassword:             "password protected",
	StatusAccess:               "access failure",
	StatusAccessDenied:         "access denied",
	StatusInvalidArg:           "invalid argument",
	StatusPointer:              "invalid pointer",
	StatusHandle:               "invalid handle",
	StatusOutOfMemory:          "out of memory",
	StatusFail:                 "unspecified failure",
	StatusFilterNotFound:       "no filter for file type",
	StatusUnexpected:           "unexpected failure",
}

// String returns a short description of the status.
func (s Status) String() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return "unknown status"
}

// Error implements error.
func (s Status) Error() string {
	return s.String()
}

// StatusOf returns the protocol status carried by err.
// A nil error is StatusOK; an error without a status is StatusUnexpected.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return StatusUnexpected
}
