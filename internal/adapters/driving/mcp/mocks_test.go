package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
)

// mockExtractor is a mock implementation of driving.TextExtractor.
type mockExtractor struct {
	result *domain.Extraction
	err    error

	paths      []string
	maxLengths []int
}

func (m *mockExtractor) Extract(_ context.Context, path string, maxLength int) (*domain.Extraction, error) {
	m.paths = append(m.paths, path)
	m.maxLengths = append(m.maxLengths, maxLength)
	return m.result, m.err
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
	ctx context.Context, paths []string, maxLength, _ int,
) ([]domain.BatchResult, error) {
	results := make([]domain.BatchResult, len(paths))
	for i, p := range paths {
		res, err := m.Extract(ctx, p, maxLength)
		results[i] = domain.BatchResult{Path: p, Extraction: res, Err: err}
	}
	return results, nil
}

// mockCatalogue is a mock implementation of driven.FilterCatalogue.
type mockCatalogue struct {
	filters []driven.FilterInfo
}

func (m *mockCatalogue) Filters() []driven.FilterInfo {
	return m.filters
}
