// Package chunked serves parsed document content through the driven.Filter
// chunk protocol.
//
// Concrete filters read their file in Load, then hand New a ParseFunc that
// turns the bytes into Segments. The ParseFunc runs in Init, so format and
// encryption failures surface as Init statuses.
package chunked

import (
	"io"
	"unicode/utf16"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
)

// Chunk attributes.
const (
	// AttributeContent is the attribute of ordinary body text chunks.
	AttributeContent = "content"

	// AttributeTitle is the attribute of document title chunks.
	AttributeTitle = "title"
)

// Segment is one chunk of parsed content.
type Segment struct {
	// Text is the chunk text. Ignored when Err is set.
	Text string

	// Break separates the chunk from the previous one.
	Break domain.BreakType

	// Attribute names the property; empty means AttributeContent.
	Attribute string

	// Value marks a property value chunk rather than body text.
	Value bool

	// Err, when set, is returned by NextChunk in place of a descriptor.
	// Use it for embedded or linked content that cannot be filtered.
	Err error
}

// ParseFunc parses loaded content into segments.
type ParseFunc func() ([]Segment, error)

// Ensure Filter implements the interface.
var _ driven.NamedFilter = (*Filter)(nil)

// Filter is a driven.Filter over a slice of segments.
type Filter struct {
	name   string
	parse  ParseFunc
	closer io.Closer

	flags    domain.InitFlags
	segments []Segment
	inited   bool
	closed   bool

	pos     int
	nextID  uint32
	current *Segment
	pending []uint16
}

// New creates a filter that parses with parse on Init.
// closer, if not nil, is closed by Close.
func New(name string, parse ParseFunc, closer io.Closer) *Filter {
	return &Filter{
		name:   name,
		parse:  parse,
		closer: closer,
	}
}

// Name returns the filter name.
func (f *Filter) Name() string {
	return f.name
}

// Init parses the content. It fails with StatusFail when called twice.
func (f *Filter) Init(flags domain.InitFlags) (domain.FilterFlags, error) {
	if f.inited {
		return 0, domain.StatusFail
	}
	if f.closed {
		return 0, domain.StatusHandle
	}

	segments, err := f.parse()
	if err != nil {
		return 0, err
	}

	f.flags = flags
	f.inited = true
	f.segments = segments[:0:0]
	for _, s := range segments {
		if s.Value && !flags.Has(domain.InitApplyIndexAttributes) {
			continue
		}
		f.segments = append(f.segments, s)
	}
	return 0, nil
}

// NextChunk advances to the next segment.
func (f *Filter) NextChunk() (domain.ChunkDescriptor, error) {
	f.current = nil
	f.pending = nil

	if !f.inited {
		return domain.ChunkDescriptor{}, domain.StatusFail
	}
	if f.pos >= len(f.segments) {
		return domain.ChunkDescriptor{}, domain.StatusEndOfChunks
	}

	seg := &f.segments[f.pos]
	f.pos++
	if seg.Err != nil {
		return domain.ChunkDescriptor{}, seg.Err
	}

	f.nextID++
	desc := domain.ChunkDescriptor{
		ID:        f.nextID,
		BreakType: seg.Break,
		Flags:     domain.ChunkText,
		Attribute: seg.Attribute,
	}
	if desc.Attribute == "" {
		desc.Attribute = AttributeContent
	}
	if seg.Value {
		desc.Flags = domain.ChunkValue
	}

	f.current = seg
	if !seg.Value {
		f.pending = utf16.Encode([]rune(Canonicalise(seg.Text, f.flags)))
	}
	return desc, nil
}

// GetText copies the rest of the current text chunk into buf.
func (f *Filter) GetText(buf []uint16) (int, error) {
	if f.current == nil || f.current.Value {
		return 0, domain.StatusNoText
	}
	if len(f.pending) == 0 {
		return 0, domain.StatusNoMoreText
	}

	n := copy(buf, f.pending)
	f.pending = f.pending[n:]
	if len(f.pending) == 0 {
		return n, domain.StatusLastText
	}
	return n, nil
}

// Close releases the underlying resource. Safe to call more than once.
func (f *Filter) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.segments = nil
	f.current = nil
	f.pending = nil
	if f.closer != nil {
		return f.closer.Close()
	}
	return nil
}
