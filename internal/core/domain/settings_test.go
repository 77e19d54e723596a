package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLineBreakMode_IsValid tests all valid and invalid line break modes
func TestLineBreakMode_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		mode     LineBreakMode
		expected bool
	}{
		{name: "crlf is valid", mode: LineBreakCRLF, expected: true},
		{name: "lf is valid", mode: LineBreakLF, expected: true},
		{name: "empty string is invalid", mode: LineBreakMode(""), expected: false},
		{name: "cr is invalid", mode: LineBreakMode("cr"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.IsValid())
		})
	}
}

func TestLineBreakMode_Sequence(t *testing.T) {
	assert.Equal(t, "\r\n", LineBreakCRLF.Sequence())
	assert.Equal(t, "\n", LineBreakLF.Sequence())
	assert.Equal(t, "\r\n", LineBreakMode("bogus").Sequence())
}

func TestLineBreakMode_Description(t *testing.T) {
	for _, m := range AllLineBreakModes() {
		assert.NotEqual(t, "Unknown", m.Description())
	}
	assert.Equal(t, "Unknown", LineBreakMode("x").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 0, s.Extract.MaxLength)
	assert.Equal(t, LineBreakCRLF, s.Extract.LineBreak)
	require.Greater(t, s.Extract.Jobs, 0)
	assert.True(t, s.Filters.Sniff)
	assert.False(t, s.Filters.Readability)
	assert.Empty(t, s.Filters.Disabled)
	assert.Greater(t, s.Watch.EventsPerSecond, 0.0)
	assert.Greater(t, s.Watch.Burst, 0)
}

func TestFilterSettings_IsDisabled(t *testing.T) {
	s := FilterSettings{Disabled: []string{"pdf", "docconv"}}

	assert.True(t, s.IsDisabled("pdf"))
	assert.True(t, s.IsDisabled("docconv"))
	assert.False(t, s.IsDisabled("html"))
}
