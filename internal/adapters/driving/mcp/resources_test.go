package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleFiltersResource(t *testing.T) {
	catalogue := &mockCatalogue{filters: []driven.FilterInfo{
		{Name: "docx", Extensions: []string{".docx"}},
	}}
	server, err := NewServer(&Ports{Extractor: &mockExtractor{}, Catalogue: catalogue})
	require.NoError(t, err)

	result, err := server.handleFiltersResource(context.Background(), readRequest("extracttext://filters"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var filters []FilterOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &filters))
	require.Len(t, filters, 1)
	assert.Equal(t, "docx", filters[0].Name)
}

func TestServer_handleTextResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns text", func(t *testing.T) {
		extractor := &mockExtractor{result: &domain.Extraction{Text: "file text"}}
		server, err := NewServer(&Ports{Extractor: extractor, MaxLength: 10})
		require.NoError(t, err)

		result, err := server.handleTextResource(ctx, readRequest("extracttext://text//tmp/my%20notes.txt"))
		require.NoError(t, err)
		assert.Equal(t, "file text", result.Contents[0].Text)
		assert.Equal(t, []string{"/tmp/my notes.txt"}, extractor.paths)
		assert.Equal(t, []int{10}, extractor.maxLengths)
	})

	t.Run("bad uri", func(t *testing.T) {
		server, err := NewServer(&Ports{Extractor: &mockExtractor{}})
		require.NoError(t, err)

		_, err = server.handleTextResource(ctx, readRequest("extracttext://other"))
		assert.Error(t, err)
	})

	t.Run("extractor error", func(t *testing.T) {
		extractErr := errors.New("boom")
		server, err := NewServer(&Ports{Extractor: &mockExtractor{err: extractErr}})
		require.NoError(t, err)

		_, err = server.handleTextResource(ctx, readRequest("extracttext://text//a.pdf"))
		assert.ErrorIs(t, err, extractErr)
	})
}

func TestExtractPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"extracttext://text//home/u/a.pdf", "/home/u/a.pdf"},
		{"extracttext://text/relative.txt", "relative.txt"},
		{"extracttext://text/a%20b.txt", "a b.txt"},
		{"extracttext://text/", ""},
		{"extracttext://filters", ""},
		{"other://text/a", ""},
		{"extracttext://text/%zz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPath(tt.uri))
		})
	}
}
