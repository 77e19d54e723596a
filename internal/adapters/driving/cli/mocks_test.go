package cli

import (
	"context"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
)

// mockExtractor is a mock implementation of driving.TextExtractor.
type mockExtractor struct {
	results map[string]*domain.Extraction
	errs    map[string]error

	paths      []string
	maxLengths []int
	jobs       []int
}

func newMockExtractor() *mockExtractor {
	return &mockExtractor{
		results: make(map[string]*domain.Extraction),
		errs:    make(map[string]error),
	}
}

func (m *mockExtractor) Extract(_ context.Context, path string, maxLength int) (*domain.Extraction, error) {
	m.paths = append(m.paths, path)
	m.maxLengths = append(m.maxLengths, maxLength)
	if err := m.errs[path]; err != nil {
		return nil, err
	}
	if res, ok := m.results[path]; ok {
		return res, nil
	}
	return &domain.Extraction{Path: path, Filter: "plaintext", Text: "text of " + path, Status: domain.StatusOK}, nil
}

func (m *mockExtractor) ExtractTo(
	ctx context.Context, path string, maxLength int, w io.Writer,
) (*domain.Extraction, error) {
	res, err := m.Extract(ctx, path, maxLength)
	if err != nil {
		return nil, err
	}
	_, err = io.WriteString(w, res.Text)
	return res, err
}

func (m *mockExtractor) ExtractAll(
	ctx context.Context, paths []string, maxLength, jobs int,
) ([]domain.BatchResult, error) {
	m.jobs = append(m.jobs, jobs)
	results := make([]domain.BatchResult, len(paths))
	for i, p := range paths {
		res, err := m.Extract(ctx, p, maxLength)
		results[i] = domain.BatchResult{Path: p, Extraction: res, Err: err}
	}
	return results, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	values   map[string]string
	saved    *domain.AppSettings
	getErr   error
	setErr   error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		values:   make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.saved = settings
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	keys := []string{"extract.max_length", "extract.line_break", "watch.burst"}
	sort.Strings(keys)
	return keys
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockCatalogue is a mock implementation of driven.FilterCatalogue.
type mockCatalogue struct {
	filters []driven.FilterInfo
}

func (m *mockCatalogue) Filters() []driven.FilterInfo {
	return m.filters
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	extractor *mockExtractor
	settings  *mockSettingsService
	catalogue *mockCatalogue
	lineBreak []domain.LineBreakMode
}

// setupTestServices installs mocks as the package services and returns a
// cleanup function restoring the previous state.
func setupTestServices() (*testServices, func()) {
	origExtractor := extractor
	origSettings := settingsService
	origCatalogue := catalogue
	origNewExtractor := newExtractor
	origBuilder := builder

	ts := &testServices{
		extractor: newMockExtractor(),
		settings:  newMockSettingsService(),
		catalogue: &mockCatalogue{},
	}

	extractor = ts.extractor
	settingsService = ts.settings
	catalogue = ts.catalogue
	newExtractor = func(mode domain.LineBreakMode) driving.TextExtractor {
		ts.lineBreak = append(ts.lineBreak, mode)
		return ts.extractor
	}
	builder = nil

	return ts, func() {
		extractor = origExtractor
		settingsService = origSettings
		catalogue = origCatalogue
		newExtractor = origNewExtractor
		builder = origBuilder
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	}
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
