package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/extracttext/internal/core/domain"
)

// TextExtractor extracts normalised plain text from files.
type TextExtractor interface {
	// Extract returns the normalised text of path.
	// maxLength is a soft cap in UTF-16 code units; zero means unbounded.
	// Hitting the cap is not an error: the result has Status StatusTruncated.
	Extract(ctx context.Context, path string, maxLength int) (*domain.Extraction, error)

	// ExtractTo extracts path and writes the text to w.
	ExtractTo(ctx context.Context, path string, maxLength int, w io.Writer) (*domain.Extraction, error)

	// ExtractAll extracts several files concurrently, at most jobs at a time.
	// Results are returned in the order of paths.
	ExtractAll(ctx context.Context, paths []string, maxLength, jobs int) ([]domain.BatchResult, error)
}
