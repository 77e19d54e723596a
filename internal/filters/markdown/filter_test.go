package markdown

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
)

func load(t *testing.T, name, content string, flags domain.InitFlags) driven.Filter {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := New().Load(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	_, err = f.Init(flags)
	require.NoError(t, err)
	return f
}

// collect returns the attribute and text of every chunk.
func collect(t *testing.T, f driven.Filter) ([]string, []string) {
	t.Helper()
	var attrs, texts []string
	buf := make([]uint16, 64)
	for {
		desc, err := f.NextChunk()
		if errors.Is(err, domain.StatusEndOfChunks) {
			return attrs, texts
		}
		require.NoError(t, err)
		attrs = append(attrs, desc.Attribute)
		if !desc.Flags.IsText() {
			texts = append(texts, "")
			continue
		}
		var units []uint16
		for {
			n, err := f.GetText(buf)
			units = append(units, buf[:n]...)
			if err != nil {
				break
			}
		}
		texts = append(texts, string(utf16.Decode(units)))
	}
}

func TestFactory(t *testing.T) {
	f := New()
	assert.Equal(t, "markdown", f.Name())
	assert.Equal(t, 50, f.Priority())
	assert.Equal(t, []string{"text/markdown", "text/x-markdown"}, f.MIMETypes())
	assert.Contains(t, f.Extensions(), ".md")
}

func TestLoad_TitleFromHeading(t *testing.T) {
	f := load(t, "doc.md", "# Project Guide\n\nSome **bold** text.\n\n- item one\n- item two\n",
		domain.InitApplyIndexAttributes)

	attrs, texts := collect(t, f)
	require.Len(t, attrs, 4)
	assert.Equal(t, "title", attrs[0])
	assert.Equal(t, []string{"", "Project Guide", "Some bold text.", "item one\nitem two"}, texts)
}

func TestLoad_TitleFromFilename(t *testing.T) {
	f := load(t, "getting_started.md", "No heading here.", domain.InitApplyIndexAttributes)

	attrs, texts := collect(t, f)
	require.Len(t, attrs, 2)
	assert.Equal(t, "title", attrs[0])
	assert.Equal(t, "content", attrs[1])
	assert.Equal(t, "No heading here.", texts[1])
}

func TestLoad_NoAttributes(t *testing.T) {
	f := load(t, "doc.md", "# Title\n\nBody", 0)

	attrs, texts := collect(t, f)
	assert.Equal(t, []string{"content", "content"}, attrs)
	assert.Equal(t, []string{"Title", "Body"}, texts)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"heading", "## Section", "Section"},
		{"link", "see [the docs](https://example.com)", "see the docs"},
		{"image", "![diagram](img.png)", "diagram"},
		{"inline code", "run `go test`", "run go test"},
		{"fenced code", "```go\nfmt.Println()\n```", "fmt.Println()"},
		{"emphasis", "*very* __strong__", "very strong"},
		{"snake case kept", "use max_length here", "use max_length here"},
		{"blockquote", "> quoted", "quoted"},
		{"numbered list", "1. first\n2. second", "first\nsecond"},
		{"horizontal rule", "above\n\n---\n\nbelow", "above\n\nbelow"},
		{"html", "a <br/> b", "a  b"},
		{"crlf", "# T\r\n\r\nbody", "T\n\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Main", extractTitle("intro\n# Main\n# Other"))
	assert.Equal(t, "", extractTitle("## Only h2"))
	assert.Equal(t, "", extractTitle(""))
}
