// Package eml filters RFC 822 email messages.
package eml

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
	"github.com/custodia-labs/extracttext/internal/filters/html"
)

// Name is the filter name.
const Name = "eml"

// Factory creates email filters.
type Factory struct{}

// New creates a new email filter factory.
func New() *Factory {
	return &Factory{}
}

// Name returns the filter name.
func (f *Factory) Name() string {
	return Name
}

// Extensions returns the file extensions this filter handles.
func (f *Factory) Extensions() []string {
	return []string{".eml"}
}

// MIMETypes returns the MIME types this filter handles.
func (f *Factory) MIMETypes() []string {
	return []string{"message/rfc822"}
}

// Priority returns the selection priority.
func (f *Factory) Priority() int {
	return 50 // Generic MIME filter
}

// Load reads path and returns an uninitialised filter.
// Headers become one chunk each, followed by the body paragraphs.
// Attachments are reported as unavailable embeddings.
func (f *Factory) Load(_ context.Context, path string) (driven.Filter, error) {
	data, err := chunked.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return chunked.New(Name, func() ([]chunked.Segment, error) {
		return parse(data, path)
	}, nil), nil
}

var headers = []string{"From", "To", "Cc", "Date", "Subject"}

func parse(data []byte, path string) ([]chunked.Segment, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(data))
	if err != nil {
		return nil, chunked.Corrupt("email", err)
	}

	subject := decodeHeader(msg.Header.Get("Subject"))
	title := subject
	if title == "" {
		title = chunked.TitleFromPath(path)
	}

	var head []chunked.Segment
	for _, name := range headers {
		value := decodeHeader(msg.Header.Get(name))
		if value == "" {
			continue
		}
		head = append(head, chunked.Segment{
			Text:  name + ": " + value,
			Break: domain.BreakEndOfSentence,
		})
	}
	if len(head) > 0 {
		head[0].Break = domain.BreakNone
	}

	body, attachments := extractBody(msg.Header, msg.Body)

	segs := chunked.Prepend(chunked.Title(title), head)
	segs = chunked.Prepend(segs, chunked.Paragraphs(body))
	for _, name := range attachments {
		segs = append(segs, chunked.Segment{
			Err: fmt.Errorf("attachment %s: %w", name, domain.StatusEmbeddingUnavailable),
		})
	}
	return segs, nil
}

// decodeHeader decodes RFC 2047 encoded headers.
func decodeHeader(header string) string {
	if header == "" {
		return ""
	}
	dec := &mime.WordDecoder{CharsetReader: charsetReader}
	decoded, err := dec.DecodeHeader(header)
	if err != nil {
		return header // Return original if decoding fails
	}
	return strings.TrimSpace(decoded)
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(input), nil
}

// partHeader is the subset of header access shared by mail and multipart.
type partHeader interface {
	Get(key string) string
}

// extractBody returns the text of a message or part and the names of any
// attachments found under it. Plain text is preferred over HTML.
func extractBody(h partHeader, r io.Reader) (string, []string) {
	contentType := h.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, params = "text/plain", nil
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipartBody(r, params["boundary"])
	}

	content, err := io.ReadAll(decodeTransfer(h.Get("Content-Transfer-Encoding"), r))
	if err != nil {
		return "", nil
	}
	text := decodeCharset(params["charset"], content)
	if mediaType == "text/html" {
		return html.Strip(text), nil
	}
	return text, nil
}

// extractMultipartBody extracts text from multipart messages.
func extractMultipartBody(r io.Reader, boundary string) (string, []string) {
	if boundary == "" {
		return "", nil
	}

	mr := multipart.NewReader(r, boundary)
	var textParts, htmlParts, attachments []string

	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}

		if name := attachmentName(part); name != "" {
			attachments = append(attachments, name)
			_ = part.Close()
			continue
		}

		mediaType, _, parseErr := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if parseErr != nil {
			mediaType = "text/plain"
		}

		text, nested := extractBody(part.Header, part)
		_ = part.Close()
		attachments = append(attachments, nested...)

		switch {
		case text == "":
		case mediaType == "text/html":
			htmlParts = append(htmlParts, text)
		case mediaType == "text/plain", strings.HasPrefix(mediaType, "multipart/"):
			textParts = append(textParts, text)
		}
	}

	// Prefer plain text over HTML
	if len(textParts) > 0 {
		return strings.Join(textParts, "\n\n"), attachments
	}
	return strings.Join(htmlParts, "\n\n"), attachments
}

// attachmentName returns the file name of an attachment part, or "" for
// inline content.
func attachmentName(part *multipart.Part) string {
	disposition, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil || disposition != "attachment" {
		return ""
	}
	if name := decodeHeader(params["filename"]); name != "" {
		return name
	}
	return "unnamed"
}

func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

// decodeCharset converts content in charset to a string.
// Unknown charsets are passed through unchanged.
func decodeCharset(charset string, content []byte) string {
	if charset == "" {
		return string(content)
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return string(content)
	}
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
