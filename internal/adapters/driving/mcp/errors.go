// Package mcp provides an MCP (Model Context Protocol) server adapter for extracttext.
// It lets AI assistants extract and fold the text of local files.
package mcp

import "errors"

// ErrMissingExtractor is returned when the text extractor is not provided.
var ErrMissingExtractor = errors.New("mcp: text extractor is required")
