package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/extracttext/internal/folding"
)

// ExtractInput is the input schema for the extract_text tool.
type ExtractInput struct {
	Path      string `json:"path" jsonschema:"absolute path of the file to extract"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"soft cap on the output length in UTF-16 code units (0 = server default)"`
}

// ExtractOutput is the output schema for the extract_text tool.
type ExtractOutput struct {
	Text      string `json:"text"`
	Filter    string `json:"filter"`
	Status    string `json:"status"`
	Truncated bool   `json:"truncated"`
	Chunks    int    `json:"chunks"`
	Skipped   int    `json:"skipped"`
	Units     int    `json:"units"`
}

// FoldInput is the input schema for the fold_text tool.
type FoldInput struct {
	Text string `json:"text" jsonschema:"the text to fold to ASCII"`
}

// FoldOutput is the output schema for the fold_text tool.
type FoldOutput struct {
	Text string `json:"text"`
}

// ListFiltersInput is the (empty) input schema for the list_filters tool.
type ListFiltersInput struct{}

// ListFiltersOutput is the output schema for the list_filters tool.
type ListFiltersOutput struct {
	Filters []FilterOutput `json:"filters"`
	Count   int            `json:"count"`
}

// FilterOutput describes one registered filter.
type FilterOutput struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	MIMETypes  []string `json:"mime_types"`
}

var errPathRequired = errors.New("path is required")

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_text",
		Description: "Extract the plain text of a local document, folded to ASCII",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fold_text",
		Description: "Fold Unicode punctuation, symbols and fullwidth forms to ASCII",
	}, s.handleFold)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_filters",
		Description: "List the document filters and the file types they handle",
	}, s.handleListFilters)
}

// handleExtract handles the extract_text tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	if input.Path == "" {
		return nil, ExtractOutput{}, errPathRequired
	}

	maxLength := input.MaxLength
	if maxLength <= 0 {
		maxLength = s.ports.MaxLength
	}

	result, err := s.ports.Extractor.Extract(ctx, input.Path, maxLength)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	return nil, ExtractOutput{
		Text:      result.Text,
		Filter:    result.Filter,
		Status:    result.Status.String(),
		Truncated: result.Truncated,
		Chunks:    result.Chunks,
		Skipped:   result.Skipped,
		Units:     result.Units,
	}, nil
}

// handleFold handles the fold_text tool invocation.
func (s *Server) handleFold(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FoldInput,
) (*mcp.CallToolResult, FoldOutput, error) {
	return nil, FoldOutput{Text: folding.String(input.Text)}, nil
}

// handleListFilters handles the list_filters tool invocation.
func (s *Server) handleListFilters(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListFiltersInput,
) (*mcp.CallToolResult, ListFiltersOutput, error) {
	output := ListFiltersOutput{Filters: []FilterOutput{}}
	if s.ports.Catalogue == nil {
		return nil, output, nil
	}

	for _, f := range s.ports.Catalogue.Filters() {
		output.Filters = append(output.Filters, FilterOutput{
			Name:       f.Name,
			Extensions: f.Extensions,
			MIMETypes:  f.MIMETypes,
		})
	}
	output.Count = len(output.Filters)
	return nil, output, nil
}
