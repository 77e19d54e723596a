// Package plaintext filters plain text and source files.
package plaintext

import (
	"bytes"
	"context"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
)

// Name is the filter name.
const Name = "plaintext"

// Factory creates plain text filters.
type Factory struct{}

// New creates a new plain text filter factory.
func New() *Factory {
	return &Factory{}
}

// Name returns the filter name.
func (f *Factory) Name() string {
	return Name
}

// Extensions returns the file extensions this filter handles.
func (f *Factory) Extensions() []string {
	return []string{
		".txt", ".text", ".log", ".csv", ".tsv",
		".json", ".xml", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf",
		".go", ".py", ".rs", ".java", ".c", ".h", ".cpp", ".hpp",
		".rb", ".sh", ".sql", ".js", ".jsx", ".ts", ".tsx", ".css", ".svg",
	}
}

// MIMETypes returns the MIME types this filter handles.
func (f *Factory) MIMETypes() []string {
	return []string{
		"text/plain",
		"text/x-go",
		"text/x-python",
		"text/x-rust",
		"text/x-java",
		"text/x-c",
		"text/x-c++",
		"text/x-ruby",
		"text/x-shellscript",
		"text/x-sql",
		"text/csv",
		"text/tab-separated-values",
		"text/yaml",
		"text/toml",
		"text/javascript",
		"text/css",
		"application/json",
		"application/xml",
		"text/xml",
		"image/svg+xml",
	}
}

// Priority returns the selection priority.
func (f *Factory) Priority() int {
	return 5 // Fallback for anything textual
}

// Load reads path and returns an uninitialised filter.
func (f *Factory) Load(_ context.Context, path string) (driven.Filter, error) {
	data, err := chunked.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return chunked.New(Name, func() ([]chunked.Segment, error) {
		text, err := Decode(data)
		if err != nil {
			return nil, chunked.Corrupt("text", err)
		}
		return chunked.Prepend(chunked.Title(chunked.TitleFromPath(path)), chunked.Paragraphs(text)), nil
	}, nil), nil
}

// Decode converts file bytes to a string. A byte order mark selects
// UTF-8 or UTF-16; without one, valid UTF-8 is kept and anything else
// is read as Windows-1252.
func Decode(data []byte) (string, error) {
	if hasBOM(data) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF}, // UTF-8
	{0xFE, 0xFF},       // UTF-16 BE
	{0xFF, 0xFE},       // UTF-16 LE
}

func hasBOM(data []byte) bool {
	for _, bom := range boms {
		if bytes.HasPrefix(data, bom) {
			return true
		}
	}
	return false
}
