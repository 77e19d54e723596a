// Package docconv filters office formats through the docconv converters.
//
// Some formats need external tools at run time (wvText for .doc, unrtf
// for .rtf). When a tool is missing the conversion fails and Init reports
// StatusFail.
package docconv

import (
	"bytes"
	"context"
	"mime"
	"sort"
	"strings"

	"code.sajari.com/docconv"
	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// Name is the filter name.
const Name = "docconv"

const octetStream = "application/octet-stream"

// Factory creates docconv filters.
type Factory struct {
	readability bool
}

// New creates a new docconv filter factory. readability enables the
// readability pass for HTML-like content.
func New(readability bool) *Factory {
	return &Factory{readability: readability}
}

// Name returns the filter name.
func (f *Factory) Name() string {
	return Name
}

// Extensions returns the file extensions this filter handles.
func (f *Factory) Extensions() []string {
	return []string{".doc", ".rtf", ".odt", ".pages", ".pptx"}
}

// MIMETypes returns the MIME types this filter handles.
func (f *Factory) MIMETypes() []string {
	return []string{
		"application/msword",
		"application/rtf",
		"text/rtf",
		"application/vnd.oasis.opendocument.text",
		"application/vnd.apple.pages",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	}
}

// Priority returns the selection priority.
func (f *Factory) Priority() int {
	return 40 // Below the native format filters
}

// Load reads path and returns an uninitialised filter.
// Document metadata becomes value chunks, sorted by key.
func (f *Factory) Load(_ context.Context, path string) (driven.Filter, error) {
	data, err := chunked.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return chunked.New(Name, func() ([]chunked.Segment, error) {
		mimeType := detect(path, data)
		logger.Debug("docconv: converting %s as %s", path, mimeType)

		res, err := docconv.Convert(bytes.NewReader(data), mimeType, f.readability)
		if err != nil {
			return nil, chunked.Corrupt(mimeType, err)
		}
		return segments(res, path), nil
	}, nil), nil
}

// detect picks the MIME type docconv converts by, preferring the file
// extension over content sniffing.
func detect(path string, data []byte) string {
	if mt := docconv.MimeTypeByExtension(path); mt != octetStream {
		return mt
	}
	mt, _, err := mime.ParseMediaType(mimetype.Detect(data).String())
	if err != nil {
		return octetStream
	}
	return mt
}

func segments(res *docconv.Response, path string) []chunked.Segment {
	title := ""
	keys := make([]string, 0, len(res.Meta))
	for k, v := range res.Meta {
		if strings.EqualFold(k, "title") {
			title = v
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if strings.TrimSpace(title) == "" {
		title = chunked.TitleFromPath(path)
	}
	head := chunked.Title(title)
	for _, k := range keys {
		if v := strings.TrimSpace(res.Meta[k]); v != "" {
			head = append(head, chunked.Segment{Text: v, Attribute: strings.ToLower(k), Value: true})
		}
	}
	return chunked.Prepend(head, chunked.Paragraphs(res.Body))
}
