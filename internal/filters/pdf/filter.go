// Package pdf filters PDF documents using a pure Go reader.
//
// The reader panics on some malformed input, so every call into it runs
// under recover. A page that cannot be read is skipped; a document that
// cannot be opened fails Init.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// Name is the filter name.
const Name = "pdf"

// Factory creates PDF filters.
type Factory struct{}

// New creates a new PDF filter factory.
func New() *Factory {
	return &Factory{}
}

// Name returns the filter name.
func (f *Factory) Name() string {
	return Name
}

// Extensions returns the file extensions this filter handles.
func (f *Factory) Extensions() []string {
	return []string{".pdf"}
}

// MIMETypes returns the MIME types this filter handles.
func (f *Factory) MIMETypes() []string {
	return []string{"application/pdf"}
}

// Priority returns the selection priority.
func (f *Factory) Priority() int {
	return 50 // Generic MIME filter
}

// Load opens path and returns an uninitialised filter that holds the file
// open until Close. Each page becomes one chunk.
func (f *Factory) Load(_ context.Context, path string) (driven.Filter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, chunked.StatError(path, err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, chunked.StatError(path, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.StatusInvalidArg)
	}

	return chunked.New(Name, func() ([]chunked.Segment, error) {
		return parse(file, info.Size(), path)
	}, file), nil
}

func parse(file *os.File, size int64, path string) (segs []chunked.Segment, err error) {
	defer func() {
		if r := recover(); r != nil {
			segs = nil
			err = chunked.Corrupt("pdf", fmt.Errorf("panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(file, size)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, fmt.Errorf("open pdf: %w", errors.Join(err, domain.StatusPassword))
		}
		return nil, chunked.Corrupt("pdf", err)
	}

	pages := reader.NumPage()
	logger.Debug("PDF %s has %d pages", path, pages)

	var body []chunked.Segment
	for i := 1; i <= pages; i++ {
		text, ok := pageText(reader, i)
		if !ok {
			logger.Debug("Skipping unreadable page %d of %s", i, path)
			continue
		}
		if text == "" {
			continue
		}
		body = append(body, chunked.Segment{Text: text, Break: domain.BreakEndOfChunk})
	}
	if len(body) > 0 {
		body[0].Break = domain.BreakNone
	}

	title := documentTitle(reader)
	if title == "" {
		title = chunked.TitleFromPath(path)
	}
	return chunked.Prepend(chunked.Title(title), body), nil
}

// pageText returns the text of page i, one line per text row.
// ok is false when the page could not be read.
func pageText(reader *pdf.Reader, i int) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	page := reader.Page(i)
	if page.V.IsNull() {
		return "", false
	}
	return strings.TrimSpace(Rows(page.Content().Text)), true
}

// Rows joins positioned text items into lines. An item starts a new line
// when its baseline moves by more than half its font size, and gets a
// leading space when it starts clearly past the end of the previous item.
func Rows(items []pdf.Text) string {
	var b strings.Builder
	var prev *pdf.Text
	for i := range items {
		item := &items[i]
		if item.S == "" {
			continue
		}
		if prev != nil {
			size := math.Max(item.FontSize, 1)
			switch {
			case math.Abs(item.Y-prev.Y) > size/2:
				b.WriteByte('\n')
			case item.X-(prev.X+prev.W) > size*0.25 &&
				!strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(item.S, " "):
				b.WriteByte(' ')
			}
		}
		b.WriteString(item.S)
		prev = item
	}
	return b.String()
}

func documentTitle(reader *pdf.Reader) (title string) {
	defer func() {
		if r := recover(); r != nil {
			title = ""
		}
	}()
	return strings.TrimSpace(reader.Trailer().Key("Info").Key("Title").Text())
}
