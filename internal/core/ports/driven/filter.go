package driven

import (
	"context"

	"github.com/custodia-labs/extracttext/internal/core/domain"
)

// Filter is a loaded content filter bound to one file.
// A Filter is single-use: one linear pass, then Close. It is not safe
// for concurrent use.
type Filter interface {
	// Init prepares the filter. It is called once, before NextChunk.
	// Password protection, unreadable content and unsupported formats
	// are reported here as statuses.
	Init(flags domain.InitFlags) (domain.FilterFlags, error)

	// NextChunk advances to the next chunk.
	// Returns domain.StatusEndOfChunks once the file is exhausted.
	NextChunk() (domain.ChunkDescriptor, error)

	// GetText copies text from the current chunk into buf and returns the
	// number of code units written. Like io.Reader, n > 0 may be returned
	// together with domain.StatusLastText. domain.StatusNoMoreText ends the
	// chunk; domain.StatusNoText means the chunk carries no text.
	GetText(buf []uint16) (int, error)

	// Close releases the underlying file. It is safe to call more than once.
	Close() error
}

// NamedFilter is implemented by filters that can report their name.
type NamedFilter interface {
	Filter

	// Name returns the filter name (e.g. "pdf", "docx").
	Name() string
}

// FilterLoader loads the filter registered for a file.
type FilterLoader interface {
	// Load opens path and returns an uninitialised filter for it.
	// Returns an error carrying domain.StatusFilterNotFound when no filter
	// handles the file type.
	Load(ctx context.Context, path string) (Filter, error)
}

// FilterInfo describes a registered filter for display.
type FilterInfo struct {
	// Name is the filter name.
	Name string

	// Extensions are the file extensions the filter is selected for.
	Extensions []string

	// MIMETypes are the sniffed MIME types the filter is selected for.
	MIMETypes []string
}

// FilterCatalogue lists the filters a loader can select from.
type FilterCatalogue interface {
	// Filters returns the registered filters in selection order.
	Filters() []FilterInfo
}
