package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrFilterUnavailable", ErrFilterUnavailable},
		{"ErrConfigRejected", ErrConfigRejected},
		{"ErrAccessDenied", ErrAccessDenied},
		{"ErrPasswordProtected", ErrPasswordProtected},
		{"ErrResourceExhausted", ErrResourceExhausted},
		{"ErrProtocolViolation", ErrProtocolViolation},
		{"ErrUnexpected", ErrUnexpected},
		{"ErrUnsupportedType", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrPasswordProtected tests that password protection is an access failure
func TestErrPasswordProtected(t *testing.T) {
	assert.True(t, errors.Is(ErrPasswordProtected, ErrAccessDenied))
	assert.False(t, errors.Is(ErrAccessDenied, ErrPasswordProtected))
	assert.Equal(t, "access denied: password protected", ErrPasswordProtected.Error())
}

func TestExtractError(t *testing.T) {
	t.Run("matches kind and status", func(t *testing.T) {
		err := NewExtractError(OpInit, ErrPasswordProtected, "document is password protected", StatusPassword)

		assert.ErrorIs(t, err, ErrPasswordProtected)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.ErrorIs(t, err, StatusPassword)
		assert.NotErrorIs(t, err, ErrUnexpected)
		assert.Equal(t, StatusPassword, err.Status)
		assert.Equal(t, "Init: document is password protected", err.Error())
	})

	t.Run("wrapped status keeps cause text", func(t *testing.T) {
		cause := fmt.Errorf("open report.pdf: %w", StatusAccess)
		err := NewExtractError(OpLoadFilter, ErrAccessDenied, "unable to access file", cause)

		assert.Equal(t, StatusAccess, err.Status)
		assert.ErrorIs(t, err, StatusAccess)
		assert.Equal(t, "LoadFilter: unable to access file: open report.pdf: access failure", err.Error())
	})

	t.Run("plain cause is unexpected", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewExtractError(OpGetChunk, ErrUnexpected, "unexpected error", cause)

		assert.Equal(t, StatusUnexpected, err.Status)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "GetChunk: unexpected error: boom", err.Error())
	})

	t.Run("nil cause", func(t *testing.T) {
		err := NewExtractError(OpExtractText, ErrUnexpected, "unexpected exception", nil)

		assert.Equal(t, StatusUnexpected, err.Status)
		assert.ErrorIs(t, err, StatusUnexpected)
		assert.ErrorIs(t, err, ErrUnexpected)
	})

	t.Run("errors.As recovers the struct", func(t *testing.T) {
		var wrapped error = fmt.Errorf("extract: %w",
			NewExtractError(OpGetText, ErrProtocolViolation, "chunk has no text", StatusNoText))

		var extractErr *ExtractError
		assert.True(t, errors.As(wrapped, &extractErr))
		assert.Equal(t, OpGetText, extractErr.Op)
		assert.Equal(t, StatusNoText, StatusOf(wrapped))
	})
}
