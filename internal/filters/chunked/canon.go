package chunked

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/extracttext/internal/core/domain"
)

// Marks written for the canonicalisation flags.
const (
	ParagraphSeparator = '\u2029'
	LineSeparator      = '\u2028'
	softHyphen         = '\u00AD'
	nonBreakingHyphen  = '\u2011'
)

var (
	paragraphBreak = regexp.MustCompile(`\r?\n[ \t]*(?:\r?\n[ \t]*)+`)
	lineBreak      = regexp.MustCompile(`\r\n|\r|\n`)
)

var specialSpaces = strings.NewReplacer(
	"\u00A0", " ", // no-break space
	"\u2000", " ", "\u2001", " ", "\u2002", " ", "\u2003", " ",
	"\u2004", " ", "\u2005", " ", "\u2006", " ", "\u2007", " ",
	"\u2008", " ", "\u2009", " ", "\u200A", " ",
	"\u202F", " ", // narrow no-break space
	"\u205F", " ", // medium mathematical space
	"\u3000", " ", // ideographic space
)

var hyphens = strings.NewReplacer(
	string(softHyphen), "\x00",
	string(nonBreakingHyphen), "-",
)

// Canonicalise applies the text rewrites requested by flags.
//
//   - InitCanonSpaces: special spaces become U+0020.
//   - InitCanonHyphens: soft hyphens become U+0000, non-breaking hyphens U+002D.
//   - InitCanonParagraphs: blank-line paragraph breaks become U+2029.
//   - InitHardLineBreaks: remaining line breaks become U+2028.
func Canonicalise(text string, flags domain.InitFlags) string {
	if flags.Has(domain.InitCanonSpaces) {
		text = specialSpaces.Replace(text)
	}
	if flags.Has(domain.InitCanonHyphens) {
		text = hyphens.Replace(text)
	}
	if flags.Has(domain.InitCanonParagraphs) {
		text = paragraphBreak.ReplaceAllLiteralString(text, string(ParagraphSeparator))
	}
	if flags.Has(domain.InitHardLineBreaks) {
		text = lineBreak.ReplaceAllLiteralString(text, string(LineSeparator))
	}
	return text
}
