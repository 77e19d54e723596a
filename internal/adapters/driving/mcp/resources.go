package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for extracttext resources.
	uriScheme = "extracttext://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing filters.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "filters",
		Name:        "filters",
		Description: "Document filters and the file types they handle",
		MIMEType:    "application/json",
	}, s.handleFiltersResource)

	// Template for the extracted text of a file.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "text/{+path}",
		Name:        "file-text",
		Description: "Extracted plain text of a local file",
		MIMEType:    "text/plain",
	}, s.handleTextResource)
}

// handleFiltersResource returns the registered filters.
func (s *Server) handleFiltersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, output, err := s.handleListFilters(ctx, nil, ListFiltersInput{})
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(output.Filters, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling filters: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTextResource returns the extracted text of a file.
func (s *Server) handleTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path := extractPath(req.Params.URI)
	if path == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.Extractor.Extract(ctx, path, s.ports.MaxLength)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     result.Text,
		}},
	}, nil
}

// extractPath extracts the file path from a URI like extracttext://text/{path}.
// The path is percent-decoded.
func extractPath(uri string) string {
	const prefix = uriScheme + "text/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	path, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return path
}
