package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/extracttext/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/extracttext/internal/core/domain"
)

func newTestSettings(t *testing.T, values map[string]any, env map[string]string) *SettingsService {
	t.Helper()
	svc := NewSettingsService(memory.NewConfigStore(values))
	svc.lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return svc
}

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := newTestSettings(t, nil, nil)

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, svc.GetDefaults(), *settings)
	assert.Equal(t, domain.LineBreakCRLF, settings.Extract.LineBreak)
	assert.Zero(t, settings.Extract.MaxLength)
	assert.True(t, settings.Filters.Sniff)
}

func TestSettingsService_GetFromStore(t *testing.T) {
	svc := newTestSettings(t, map[string]any{
		KeyMaxLength:       int64(5000),
		KeyLineBreak:       "lf",
		KeyJobs:            int64(3),
		KeyDisabledFilters: []any{"pdf"},
		KeySniff:           false,
		KeyReadability:     true,
		KeyWatchRate:       1.5,
		KeyWatchBurst:      int64(2),
	}, nil)

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 5000, settings.Extract.MaxLength)
	assert.Equal(t, domain.LineBreakLF, settings.Extract.LineBreak)
	assert.Equal(t, 3, settings.Extract.Jobs)
	assert.Equal(t, []string{"pdf"}, settings.Filters.Disabled)
	assert.False(t, settings.Filters.Sniff)
	assert.True(t, settings.Filters.Readability)
	assert.InDelta(t, 1.5, settings.Watch.EventsPerSecond, 1e-9)
	assert.Equal(t, 2, settings.Watch.Burst)
}

func TestSettingsService_InvalidStoredValuesFallBack(t *testing.T) {
	svc := newTestSettings(t, map[string]any{
		KeyMaxLength: -5,
		KeyLineBreak: "cr",
		KeyJobs:      0,
		KeyWatchRate: -1.0,
	}, nil)

	settings, err := svc.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Extract.MaxLength, settings.Extract.MaxLength)
	assert.Equal(t, defaults.Extract.LineBreak, settings.Extract.LineBreak)
	assert.Equal(t, defaults.Extract.Jobs, settings.Extract.Jobs)
	assert.InDelta(t, defaults.Watch.EventsPerSecond, settings.Watch.EventsPerSecond, 1e-9)
}

func TestSettingsService_EnvOverridesStore(t *testing.T) {
	svc := newTestSettings(t,
		map[string]any{KeyMaxLength: 100, KeyLineBreak: "crlf", KeySniff: true},
		map[string]string{
			EnvMaxLength:   "250",
			EnvLineBreak:   "LF",
			EnvJobs:        "6",
			EnvSniff:       "false",
			EnvReadability: "1",
		})

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 250, settings.Extract.MaxLength)
	assert.Equal(t, domain.LineBreakLF, settings.Extract.LineBreak)
	assert.Equal(t, 6, settings.Extract.Jobs)
	assert.False(t, settings.Filters.Sniff)
	assert.True(t, settings.Filters.Readability)
}

func TestSettingsService_InvalidEnv(t *testing.T) {
	tests := map[string]string{
		EnvMaxLength:   "-1",
		EnvLineBreak:   "cr",
		EnvJobs:        "zero",
		EnvSniff:       "maybe",
		EnvReadability: "perhaps",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			svc := newTestSettings(t, nil, map[string]string{key: value})

			_, err := svc.Get()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestSettingsService_UseEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("EXTRACTTEXT_MAX_LENGTH=42\nEXTRACTTEXT_JOBS=2\n"), 0600))

	svc := newTestSettings(t, nil, map[string]string{EnvJobs: "8"})
	require.NoError(t, svc.UseEnvFile(envFile))

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 42, settings.Extract.MaxLength)
	assert.Equal(t, 8, settings.Extract.Jobs, "process environment wins over the env file")
}

func TestSettingsService_UseEnvFile_Missing(t *testing.T) {
	svc := newTestSettings(t, nil, nil)
	assert.NoError(t, svc.UseEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	svc := newTestSettings(t, nil, nil)

	settings := domain.DefaultAppSettings()
	settings.Extract.MaxLength = 1234
	settings.Extract.LineBreak = domain.LineBreakLF
	settings.Filters.Disabled = []string{"html"}
	settings.Watch.Burst = 1

	require.NoError(t, svc.Save(&settings))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_SaveInvalidLineBreak(t *testing.T) {
	svc := newTestSettings(t, nil, nil)

	settings := domain.DefaultAppSettings()
	settings.Extract.LineBreak = "cr"

	assert.Error(t, svc.Save(&settings))
}

func TestSettingsService_Set(t *testing.T) {
	svc := newTestSettings(t, nil, nil)

	require.NoError(t, svc.Set(KeyMaxLength, "900"))
	require.NoError(t, svc.Set(KeyLineBreak, "LF"))
	require.NoError(t, svc.Set(KeyJobs, "2"))
	require.NoError(t, svc.Set(KeyDisabledFilters, "pdf, docconv,,"))
	require.NoError(t, svc.Set(KeySniff, "false"))
	require.NoError(t, svc.Set(KeyReadability, "true"))
	require.NoError(t, svc.Set(KeyWatchRate, "0.25"))
	require.NoError(t, svc.Set(KeyWatchBurst, "3"))

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 900, settings.Extract.MaxLength)
	assert.Equal(t, domain.LineBreakLF, settings.Extract.LineBreak)
	assert.Equal(t, 2, settings.Extract.Jobs)
	assert.Equal(t, []string{"pdf", "docconv"}, settings.Filters.Disabled)
	assert.False(t, settings.Filters.Sniff)
	assert.True(t, settings.Filters.Readability)
	assert.InDelta(t, 0.25, settings.Watch.EventsPerSecond, 1e-9)
	assert.Equal(t, 3, settings.Watch.Burst)
}

func TestSettingsService_SetInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyMaxLength, "-1"},
		{KeyMaxLength, "lots"},
		{KeyJobs, "0"},
		{KeyLineBreak, "cr"},
		{KeySniff, "sometimes"},
		{KeyWatchRate, "0"},
		{KeyWatchRate, "fast"},
		{KeyWatchBurst, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			svc := newTestSettings(t, nil, nil)
			assert.Error(t, svc.Set(tt.key, tt.value))
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		svc := newTestSettings(t, nil, nil)
		err := svc.Set("search.mode", "hybrid")
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})
}

func TestSettingsService_Keys(t *testing.T) {
	svc := newTestSettings(t, nil, nil)

	keys := svc.Keys()
	assert.Len(t, keys, 8)
	assert.IsIncreasing(t, keys)
	for _, key := range keys {
		assert.NotErrorIs(t, svc.Set(key, "1"), domain.ErrUnsupportedType, key)
	}
}
