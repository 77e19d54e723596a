package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyMaxLength       = "extract.max_length"
	KeyLineBreak       = "extract.line_break"
	KeyJobs            = "extract.jobs"
	KeyDisabledFilters = "filters.disabled"
	KeySniff           = "filters.sniff"
	KeyReadability     = "filters.readability"
	KeyWatchRate       = "watch.events_per_second"
	KeyWatchBurst      = "watch.burst"
)

// Environment variables that override stored settings.
const (
	EnvMaxLength   = "EXTRACTTEXT_MAX_LENGTH"
	EnvLineBreak   = "EXTRACTTEXT_LINE_BREAK"
	EnvJobs        = "EXTRACTTEXT_JOBS"
	EnvSniff       = "EXTRACTTEXT_SNIFF"
	EnvReadability = "EXTRACTTEXT_READABILITY"
)

// SettingsService manages application settings.
// Values resolve as defaults, then the config store, then the environment.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service reading the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// UseEnvFile layers variables from a dotenv file under the process environment.
// Process variables win. A missing file is not an error.
func (s *SettingsService) UseEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	logger.Debug("Loaded %d variables from %s", len(vars), path)

	next := s.lookupEnv
	s.lookupEnv = func(key string) (string, bool) {
		if v, ok := next(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	return nil
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Extract: domain.ExtractSettings{
			MaxLength: s.getNonNegative(KeyMaxLength, defaults.Extract.MaxLength),
			LineBreak: s.getLineBreak(defaults.Extract.LineBreak),
			Jobs:      s.getPositive(KeyJobs, defaults.Extract.Jobs),
		},
		Filters: domain.FilterSettings{
			Disabled:    s.configStore.GetStringSlice(KeyDisabledFilters),
			Sniff:       s.getBool(KeySniff, defaults.Filters.Sniff),
			Readability: s.getBool(KeyReadability, defaults.Filters.Readability),
		},
		Watch: domain.WatchSettings{
			EventsPerSecond: s.getRate(defaults.Watch.EventsPerSecond),
			Burst:           s.getPositive(KeyWatchBurst, defaults.Watch.Burst),
		},
	}

	if err := s.applyEnv(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Extract.LineBreak.IsValid() {
		return fmt.Errorf("invalid line break: %s", settings.Extract.LineBreak)
	}

	// Save extract settings
	if err := s.configStore.Set(KeyMaxLength, settings.Extract.MaxLength); err != nil {
		return fmt.Errorf("save max length: %w", err)
	}
	if err := s.configStore.Set(KeyLineBreak, settings.Extract.LineBreak.String()); err != nil {
		return fmt.Errorf("save line break: %w", err)
	}
	if err := s.configStore.Set(KeyJobs, settings.Extract.Jobs); err != nil {
		return fmt.Errorf("save jobs: %w", err)
	}

	// Save filter settings
	if err := s.configStore.Set(KeyDisabledFilters, settings.Filters.Disabled); err != nil {
		return fmt.Errorf("save disabled filters: %w", err)
	}
	if err := s.configStore.Set(KeySniff, settings.Filters.Sniff); err != nil {
		return fmt.Errorf("save sniff: %w", err)
	}
	if err := s.configStore.Set(KeyReadability, settings.Filters.Readability); err != nil {
		return fmt.Errorf("save readability: %w", err)
	}

	// Save watch settings
	if err := s.configStore.Set(KeyWatchRate, settings.Watch.EventsPerSecond); err != nil {
		return fmt.Errorf("save watch rate: %w", err)
	}
	if err := s.configStore.Set(KeyWatchBurst, settings.Watch.Burst); err != nil {
		return fmt.Errorf("save watch burst: %w", err)
	}

	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	var stored any
	switch key {
	case KeyMaxLength:
		n, err := parseCount(value, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		stored = n
	case KeyJobs, KeyWatchBurst:
		n, err := parseCount(value, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		stored = n
	case KeyLineBreak:
		mode := domain.LineBreakMode(strings.ToLower(value))
		if !mode.IsValid() {
			return fmt.Errorf("%s: invalid line break %q", key, value)
		}
		stored = mode.String()
	case KeySniff, KeyReadability:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		stored = b
	case KeyWatchRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if f <= 0 {
			return fmt.Errorf("%s: must be positive", key)
		}
		stored = f
	case KeyDisabledFilters:
		stored = splitList(value)
	default:
		return fmt.Errorf("%w: setting %q", domain.ErrUnsupportedType, key)
	}

	return s.configStore.Set(key, stored)
}

// Keys returns the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyMaxLength, KeyLineBreak, KeyJobs,
		KeyDisabledFilters, KeySniff, KeyReadability,
		KeyWatchRate, KeyWatchBurst,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// applyEnv overrides settings from environment variables.
func (s *SettingsService) applyEnv(settings *domain.AppSettings) error {
	if v, ok := s.lookupEnv(EnvMaxLength); ok {
		n, err := parseCount(v, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxLength, err)
		}
		settings.Extract.MaxLength = n
	}
	if v, ok := s.lookupEnv(EnvLineBreak); ok {
		mode := domain.LineBreakMode(strings.ToLower(v))
		if !mode.IsValid() {
			return fmt.Errorf("%s: invalid line break %q", EnvLineBreak, v)
		}
		settings.Extract.LineBreak = mode
	}
	if v, ok := s.lookupEnv(EnvJobs); ok {
		n, err := parseCount(v, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJobs, err)
		}
		settings.Extract.Jobs = n
	}
	if v, ok := s.lookupEnv(EnvSniff); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSniff, err)
		}
		settings.Filters.Sniff = b
	}
	if v, ok := s.lookupEnv(EnvReadability); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReadability, err)
		}
		settings.Filters.Readability = b
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getNonNegative(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositive(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getRate(defaultVal float64) float64 {
	val := s.configStore.GetFloat(KeyWatchRate)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getLineBreak(defaultVal domain.LineBreakMode) domain.LineBreakMode {
	val := s.configStore.GetString(KeyLineBreak)
	if val == "" {
		return defaultVal
	}
	mode := domain.LineBreakMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func parseCount(value string, minimum int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if n < minimum {
		return 0, fmt.Errorf("must be at least %d, got %d", minimum, n)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
