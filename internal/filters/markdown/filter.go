// Package markdown filters Markdown documents.
package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
	"github.com/custodia-labs/extracttext/internal/filters/plaintext"
)

// Name is the filter name.
const Name = "markdown"

// Factory creates Markdown filters.
type Factory struct{}

// New creates a new Markdown filter factory.
func New() *Factory {
	return &Factory{}
}

// Name returns the filter name.
func (f *Factory) Name() string {
	return Name
}

// Extensions returns the file extensions this filter handles.
func (f *Factory) Extensions() []string {
	return []string{".md", ".markdown", ".mdown", ".mkd"}
}

// MIMETypes returns the MIME types this filter handles.
func (f *Factory) MIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (f *Factory) Priority() int {
	return 50 // Generic MIME filter, higher than plaintext
}

// Load reads path and returns an uninitialised filter.
// The title chunk comes from the first H1 heading, or the file name.
func (f *Factory) Load(_ context.Context, path string) (driven.Filter, error) {
	data, err := chunked.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return chunked.New(Name, func() ([]chunked.Segment, error) {
		raw, err := plaintext.Decode(data)
		if err != nil {
			return nil, chunked.Corrupt("markdown", err)
		}
		title := extractTitle(raw)
		if title == "" {
			title = chunked.TitleFromPath(path)
		}
		return chunked.Prepend(chunked.Title(title), chunked.Paragraphs(Strip(raw))), nil
	}, nil), nil
}

var (
	fence         = regexp.MustCompile("(?m)^[ \t]*(```|~~~).*$")
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	images        = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasis      = regexp.MustCompile(`(\*\*|__|\*|\b_)([^*_\n]+)(\*\*|__|\*|_\b)`)
	blockquote    = regexp.MustCompile(`(?m)^>\s?`)
	horizontal    = regexp.MustCompile(`(?m)^[ \t]*([-*_][ \t]*){3,}$`)
	listMarkers   = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	numberedList  = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	htmlTags      = regexp.MustCompile(`<[^>\n]+>`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// extractTitle returns the text of the first H1 heading.
func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return ""
}

// Strip removes Markdown formatting, keeping the readable text.
// Code block contents are kept; image alt text and link text replace
// the markup.
func Strip(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = fence.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "$1")
	content = links.ReplaceAllString(content, "$1")
	content = horizontal.ReplaceAllString(content, "")
	content = headings.ReplaceAllString(content, "")
	content = blockquote.ReplaceAllString(content, "")
	content = listMarkers.ReplaceAllString(content, "")
	content = numberedList.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")
	content = htmlTags.ReplaceAllString(content, "")
	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
