package services

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf16"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
)

// mockRead is one scripted GetText result.
type mockRead struct {
	units []uint16
	n     int // overrides the reported count when non-zero
	err   error
}

// mockChunk is one scripted NextChunk result and the reads that follow it.
type mockChunk struct {
	desc  domain.ChunkDescriptor
	err   error
	reads []mockRead
}

// mockFilter replays a script of chunks.
type mockFilter struct {
	name      string
	initErr   error
	chunks    []mockChunk
	panicIn   string
	initFlags domain.InitFlags

	pos     int
	pending []mockRead
	getText int
	closed  int
}

var _ driven.NamedFilter = (*mockFilter)(nil)

func (f *mockFilter) Name() string {
	return f.name
}

func (f *mockFilter) Init(flags domain.InitFlags) (domain.FilterFlags, error) {
	if f.panicIn == "Init" {
		panic("init exploded")
	}
	f.initFlags = flags
	return 0, f.initErr
}

func (f *mockFilter) NextChunk() (domain.ChunkDescriptor, error) {
	if f.panicIn == "NextChunk" {
		panic("next chunk exploded")
	}
	if f.pos >= len(f.chunks) {
		return domain.ChunkDescriptor{}, domain.StatusEndOfChunks
	}
	c := f.chunks[f.pos]
	f.pos++
	f.pending = c.reads
	return c.desc, c.err
}

func (f *mockFilter) GetText(buf []uint16) (int, error) {
	f.getText++
	if len(f.pending) == 0 {
		return 0, domain.StatusNoMoreText
	}
	r := f.pending[0]
	f.pending = f.pending[1:]
	if r.n != 0 {
		return r.n, r.err
	}
	return copy(buf, r.units), r.err
}

func (f *mockFilter) Close() error {
	f.closed++
	return nil
}

// textChunk scripts a text chunk served in one read followed by NoMoreText.
func textChunk(id uint32, b domain.BreakType, text string) mockChunk {
	return mockChunk{
		desc:  domain.ChunkDescriptor{ID: id, BreakType: b, Flags: domain.ChunkText, Attribute: "content"},
		reads: []mockRead{{units: utf16.Encode([]rune(text))}},
	}
}

// lastTextChunk scripts a text chunk whose only read carries StatusLastText.
func lastTextChunk(id uint32, b domain.BreakType, text string) mockChunk {
	return mockChunk{
		desc:  domain.ChunkDescriptor{ID: id, BreakType: b, Flags: domain.ChunkText, Attribute: "content"},
		reads: []mockRead{{units: utf16.Encode([]rune(text)), err: domain.StatusLastText}},
	}
}

// bulkChunk scripts a text chunk of reads full buffers of 'x'.
func bulkChunk(id uint32, reads int) mockChunk {
	full := make([]uint16, domain.TextBufferSize)
	for i := range full {
		full[i] = 'x'
	}
	c := mockChunk{desc: domain.ChunkDescriptor{ID: id, Flags: domain.ChunkText}}
	for i := 0; i < reads; i++ {
		c.reads = append(c.reads, mockRead{units: full})
	}
	return c
}

// mockLoader serves one scripted filter per path.
type mockLoader struct {
	mu      sync.Mutex
	filters map[string]*mockFilter
	err     error
	loaded  []string
}

func newMockLoader(filters map[string]*mockFilter) *mockLoader {
	return &mockLoader{filters: filters}
}

func (l *mockLoader) Load(_ context.Context, path string) (driven.Filter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = append(l.loaded, path)
	if l.err != nil {
		return nil, l.err
	}
	f, ok := l.filters[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.StatusFilterNotFound)
	}
	return f, nil
}
