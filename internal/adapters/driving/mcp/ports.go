package mcp

import (
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extractor extracts normalised text from files.
	Extractor driving.TextExtractor

	// Catalogue lists the available filters. Optional.
	Catalogue driven.FilterCatalogue

	// MaxLength is the default length cap for tool calls that give none.
	MaxLength int
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Extractor == nil {
		return ErrMissingExtractor
	}
	return nil
}
