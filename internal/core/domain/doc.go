// Package domain defines the core types for text extraction.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Status: Filter protocol status codes (non-OK statuses are errors)
//   - ChunkDescriptor: Metadata for one unit of filter content
//   - Extraction: The normalised text produced for one file
//   - ExtractError: The structured failure of an extraction
//   - AppSettings: User configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
