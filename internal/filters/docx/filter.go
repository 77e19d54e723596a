// Package docx filters Office Open XML word processing documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
)

// Name is the filter name.
const Name = "docx"

// oleSignature starts compound files. A .docx stored in one is encrypted.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Factory creates DOCX filters.
type Factory struct{}

// New creates a new DOCX filter factory.
func New() *Factory {
	return &Factory{}
}

// Name returns the filter name.
func (f *Factory) Name() string {
	return Name
}

// Extensions returns the file extensions this filter handles.
func (f *Factory) Extensions() []string {
	return []string{".docx"}
}

// MIMETypes returns the MIME types this filter handles.
func (f *Factory) MIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// Priority returns the selection priority.
func (f *Factory) Priority() int {
	return 50 // Generic MIME filter
}

// Load reads path and returns an uninitialised filter.
// Each document paragraph becomes one chunk.
func (f *Factory) Load(_ context.Context, path string) (driven.Filter, error) {
	data, err := chunked.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return chunked.New(Name, func() ([]chunked.Segment, error) {
		return parse(data, path)
	}, nil), nil
}

func parse(data []byte, path string) ([]chunked.Segment, error) {
	if bytes.HasPrefix(data, oleSignature) {
		return nil, fmt.Errorf("encrypted document: %w", domain.StatusPassword)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, chunked.Corrupt("docx", err)
	}

	content, err := readPart(reader, "word/document.xml")
	if err != nil {
		return nil, chunked.Corrupt("docx", err)
	}
	paragraphs, err := parseDocumentXML(content)
	if err != nil {
		return nil, chunked.Corrupt("docx", err)
	}

	var body []chunked.Segment
	for _, p := range paragraphs {
		body = append(body, chunked.Segment{Text: p, Break: domain.BreakEndOfParagraph})
	}
	if len(body) > 0 {
		body[0].Break = domain.BreakNone
	}

	return chunked.Prepend(chunked.Title(extractTitle(reader, path)), body), nil
}

var errMissingPart = errors.New("missing part")

// readPart returns the contents of the named archive member.
func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: %s", errMissingPart, name)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Content []runContent `xml:",any"`
}

type runContent struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// parseDocumentXML returns the non-empty paragraph texts of the document.
func parseDocumentXML(content []byte) ([]string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	var paragraphs []string
	for _, para := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, r := range para.Runs {
			for _, c := range r.Content {
				switch c.XMLName.Local {
				case "t":
					b.WriteString(c.Text)
				case "tab":
					b.WriteByte('\t')
				case "br", "cr":
					b.WriteByte('\n')
				}
			}
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs, nil
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// extractTitle reads the title from docProps/core.xml or falls back to
// the file name.
func extractTitle(reader *zip.Reader, path string) string {
	content, err := readPart(reader, "docProps/core.xml")
	if err == nil {
		var core coreXML
		if err := xml.Unmarshal(content, &core); err == nil && strings.TrimSpace(core.Title) != "" {
			return strings.TrimSpace(core.Title)
		}
	}
	return chunked.TitleFromPath(path)
}
