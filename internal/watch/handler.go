package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// OutputExt is appended to a document path to name its text file.
const OutputExt = ".txt"

// ExtractOptions configures NewExtractHandler.
type ExtractOptions struct {
	// Root is the watched directory. Output paths mirror paths under it.
	Root string

	// OutputDir receives one text file per document. When empty, text is
	// written to Out instead.
	OutputDir string

	// Out receives text when OutputDir is empty.
	Out io.Writer

	// MaxLength caps each extraction in UTF-16 code units. Zero is unbounded.
	MaxLength int
}

// NewExtractHandler returns a Handler that re-extracts created and updated
// files. Removed files have their output file deleted. Files with no
// matching filter are ignored.
func NewExtractHandler(extractor driving.TextExtractor, opts ExtractOptions) Handler {
	var mu sync.Mutex

	return func(ctx context.Context, change Change) error {
		if opts.OutputDir != "" && within(opts.OutputDir, change.Path) {
			return nil
		}
		if change.Type == ChangeRemoved {
			return removeOutput(opts, change.Path)
		}

		result, err := extractor.Extract(ctx, change.Path, opts.MaxLength)
		if err != nil {
			if errors.Is(err, domain.ErrFilterUnavailable) {
				logger.Debug("No filter for %s", change.Path)
				return nil
			}
			return err
		}
		if result.Truncated {
			logger.Warn("%s truncated at %d units", change.Path, opts.MaxLength)
		}

		if opts.OutputDir == "" {
			if opts.Out == nil {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			_, err := fmt.Fprintf(opts.Out, "==> %s <==\n%s\n", change.Path, result.Text)
			return err
		}

		target, err := outputPath(opts, change.Path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(result.Text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		logger.Info("Wrote %s (%d units)", target, result.Units)
		return nil
	}
}

// outputPath maps a document under opts.Root to its text file.
func outputPath(opts ExtractOptions, path string) (string, error) {
	rel, err := filepath.Rel(opts.Root, path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return filepath.Join(opts.OutputDir, rel+OutputExt), nil
}

// within reports whether path lies in dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func removeOutput(opts ExtractOptions, path string) error {
	if opts.OutputDir == "" {
		return nil
	}
	target, err := outputPath(opts, path)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", target, err)
	}
	return nil
}
