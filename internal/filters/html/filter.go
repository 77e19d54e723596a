package html

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
	"github.com/custodia-labs/extracttext/internal/filters/plaintext"
)

// Name is the filter name.
const Name = "html"

// Factory creates HTML filters.
type Factory struct{}

// New creates a new HTML filter factory.
func New() *Factory {
	return &Factory{}
}

// Name returns the filter name.
func (f *Factory) Name() string {
	return Name
}

// Extensions returns the file extensions this filter handles.
func (f *Factory) Extensions() []string {
	return []string{".html", ".htm", ".xhtml"}
}

// MIMETypes returns the MIME types this filter handles.
func (f *Factory) MIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (f *Factory) Priority() int {
	return 50 // Generic MIME filter, higher than plaintext
}

// Load reads path and returns an uninitialised filter.
func (f *Factory) Load(_ context.Context, path string) (driven.Filter, error) {
	data, err := chunked.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return chunked.New(Name, func() ([]chunked.Segment, error) {
		raw, err := plaintext.Decode(data)
		if err != nil {
			return nil, chunked.Corrupt("html", err)
		}

		title := extractTitle(raw)
		if title == "" {
			title = chunked.TitleFromPath(path)
		}

		segs := chunked.Prepend(chunked.Title(title), chunked.Lines(Strip(raw)))
		for _, src := range embeddedSources(data) {
			segs = append(segs, chunked.Segment{
				Err: fmt.Errorf("linked content %s: %w", src, domain.StatusLinkUnavailable),
			})
		}
		return segs, nil
	}, nil), nil
}

// Pre-compiled regular expressions for HTML parsing performance.
var (
	titleTag          = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	scriptTag         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag       = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag           = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag            = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements     = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|td|th|blockquote|pre|table|section|article)>`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	brTags            = regexp.MustCompile(`(?i)<br\s*/?>`)
	hrTags            = regexp.MustCompile(`(?i)<hr\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	multiSpaces       = regexp.MustCompile(`[ \t]+`)
)

// extractTitle returns the decoded <title> text.
func extractTitle(content string) string {
	matches := titleTag.FindStringSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(matches[1]))
}

// Strip removes HTML markup and returns one line per block of text.
func Strip(content string) string {
	// Remove non-content elements entirely
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = noscriptTag.ReplaceAllString(content, "")
	content = headTag.ReplaceAllString(content, "")
	content = svgTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")

	// Block boundaries become newlines
	content = openBlockElements.ReplaceAllString(content, "\n")
	content = blockElements.ReplaceAllString(content, "\n")
	content = brTags.ReplaceAllString(content, "\n")
	content = hrTags.ReplaceAllString(content, "\n")

	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	var result []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// embedAttrs maps embedding elements to the attribute naming their content.
var embedAttrs = map[string]string{
	"iframe": "src",
	"frame":  "src",
	"embed":  "src",
	"object": "data",
}

// embeddedSources lists the targets of frames and embedded objects in
// document order.
func embeddedSources(data []byte) []string {
	var sources []string
	z := nethtml.NewTokenizer(bytes.NewReader(data))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			// io.EOF or a read error; either way the scan is over
			return sources
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			tok := z.Token()
			want, ok := embedAttrs[tok.Data]
			if !ok {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key == want && strings.TrimSpace(attr.Val) != "" {
					sources = append(sources, strings.TrimSpace(attr.Val))
					break
				}
			}
		}
	}
}
