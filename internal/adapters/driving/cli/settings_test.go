package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/extracttext/internal/core/domain"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set", "keys", "line-break"}, names)
}

func TestSettingsShow(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.settings.Extract.MaxLength = 0
	ts.settings.settings.Filters.Disabled = []string{"docconv"}

	out, _, err := execute(t, "", "settings", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[Extract]")
	assert.Contains(t, out, "Max length: unbounded")
	assert.Contains(t, out, "Line break: CR LF (Windows style)")
	assert.Contains(t, out, "Disabled: docconv")
	assert.Contains(t, out, "[Watch]")
	assert.Contains(t, out, "Burst: 8")
}

func TestSettingsShow_GetError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.getErr = errors.New("bad env")

	_, _, err := execute(t, "", "settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad env")
}

func TestSettingsSet(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "", "settings", "set", "extract.max_length", "1024")
	require.NoError(t, err)

	assert.Equal(t, "1024", ts.settings.values["extract.max_length"])
	assert.Contains(t, out, "Set extract.max_length to 1024")
}

func TestSettingsSet_Error(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.setErr = domain.ErrUnsupportedType

	_, _, err := execute(t, "", "settings", "set", "nope", "1")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "", "settings", "set", "extract.jobs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsKeys(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "", "settings", "keys")
	require.NoError(t, err)
	assert.Equal(t, "extract.line_break\nextract.max_length\nwatch.burst\n", out)
}

func TestSettingsLineBreak(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "2\n", "settings", "line-break")
	require.NoError(t, err)

	require.NotNil(t, ts.settings.saved)
	assert.Equal(t, domain.LineBreakLF, ts.settings.saved.Extract.LineBreak)
	assert.Contains(t, out, "Set line break to: LF (Unix style)")
}

func TestSettingsLineBreak_DefaultKeepsCurrent(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.settings.Extract.LineBreak = domain.LineBreakLF

	out, _, err := execute(t, "\n", "settings", "line-break")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter choice [2]")
	assert.Equal(t, domain.LineBreakLF, ts.settings.saved.Extract.LineBreak)
}

func TestSettings_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	for _, args := range [][]string{
		{"settings", "show"},
		{"settings", "keys"},
		{"settings", "set", "a", "b"},
		{"settings", "line-break"},
	} {
		_, _, err := execute(t, "", args...)
		assert.ErrorIs(t, err, errNoSettings, args)
	}
}

func TestFormatMaxLength(t *testing.T) {
	assert.Equal(t, "unbounded", formatMaxLength(0))
	assert.Equal(t, "4096 code units", formatMaxLength(4096))
}
