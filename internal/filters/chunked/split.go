package chunked

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/extracttext/internal/core/domain"
)

var blankLines = regexp.MustCompile(`\r?\n[ \t]*(?:\r?\n[ \t]*)+`)

// Paragraphs splits text at blank lines into one segment per paragraph.
// The first segment has no break; the rest break by paragraph.
func Paragraphs(text string) []Segment {
	var segs []Segment
	for _, p := range blankLines.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		segs = append(segs, Segment{Text: p, Break: domain.BreakEndOfParagraph})
	}
	if len(segs) > 0 {
		segs[0].Break = domain.BreakNone
	}
	return segs
}

// Lines returns one segment per non-empty line, breaking by paragraph.
func Lines(text string) []Segment {
	var segs []Segment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		segs = append(segs, Segment{Text: line, Break: domain.BreakEndOfParagraph})
	}
	if len(segs) > 0 {
		segs[0].Break = domain.BreakNone
	}
	return segs
}

// Prepend puts head before body. When head carries text, an unbroken
// first body segment is separated from it by a paragraph break. Value
// chunks in head leave the body's breaks alone.
func Prepend(head []Segment, body []Segment) []Segment {
	if len(body) > 0 && body[0].Break == domain.BreakNone && hasText(head) {
		body[0].Break = domain.BreakEndOfParagraph
	}
	return append(head, body...)
}

func hasText(segs []Segment) bool {
	for _, s := range segs {
		if !s.Value && s.Err == nil {
			return true
		}
	}
	return false
}

// TitleFromPath derives a readable title from a file name:
// "quarterly_report-v2.txt" becomes "quarterly report v2".
func TitleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ReplaceAll(name, "-", " ")
}

// Title returns a title value chunk, or nil when title is blank.
func Title(title string) []Segment {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	return []Segment{{Text: title, Attribute: AttributeTitle, Value: true}}
}
