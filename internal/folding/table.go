package folding

// foldTable maps single code units to their simplified form.
// It is consulted before the range rules and never mutated.
var foldTable = map[uint16]uint16{
	// Embedded null and special spaces.
	0x0000: ' ',
	0x2000: ' ', // en quad
	0x2001: ' ', // em quad
	0x2002: ' ', // en space
	0x2003: ' ', // em space
	0x2004: ' ', // three-per-em space
	0x2005: ' ', // four-per-em space
	0x2006: ' ', // six-per-em space
	0x2007: ' ', // figure space
	0x2008: ' ', // punctuation space
	0x2009: ' ', // thin space
	0x200A: ' ', // hair space
	0x200B: ' ', // zero width space
	0x200C: ' ', // zero width non-joiner
	0x200D: ' ', // zero width joiner
	0x202F: ' ', // narrow no-break space
	0x3000: ' ', // ideographic space

	// Line breaks.
	0x00B6: '\n', // pilcrow
	0x2028: '\n', // line separator
	0x2029: '\n', // paragraph separator

	// Hyphens and dashes.
	0x00AD: '-', // soft hyphen
	0x00B7: '-', // middle dot
	0x2010: '-', // hyphen
	0x2011: '-', // non-breaking hyphen
	0x2012: '-', // figure dash
	0x2013: '-', // en dash
	0x2014: '-', // em dash
	0x2015: '-', // horizontal bar
	0x2027: '-', // hyphenation point
	0x2043: '-', // hyphen bullet
	0x208B: '-', // subscript minus
	0xFE31: '-', // vertical em dash
	0xFE32: '-', // vertical en dash
	0xFE58: '-', // small em dash
	0xFE63: '-', // small hyphen-minus

	// Single quotes and primes.
	0x00B0: '\'', // degree sign
	0x2018: '\'', // left single quotation mark
	0x2019: '\'', // right single quotation mark
	0x201A: '\'', // single low-9 quotation mark
	0x201B: '\'', // single high-reversed-9 quotation mark
	0x2032: '\'', // prime
	0x2035: '\'', // reversed prime
	0x2039: '\'', // single left-pointing angle quotation mark
	0x203A: '\'', // single right-pointing angle quotation mark

	// Double quotes, double primes and ditto marks.
	0x00AB: '"', // left-pointing double angle quotation mark
	0x00BB: '"', // right-pointing double angle quotation mark
	0x201C: '"', // left double quotation mark
	0x201D: '"', // right double quotation mark
	0x201E: '"', // double low-9 quotation mark
	0x201F: '"', // double high-reversed-9 quotation mark
	0x2033: '"', // double prime
	0x2034: '"', // triple prime
	0x2036: '"', // reversed double prime
	0x2037: '"', // reversed triple prime
	0x3003: '"', // ditto mark
	0x301D: '"', // reversed double prime quotation mark
	0x301E: '"', // double prime quotation mark
	0x301F: '"', // low double prime quotation mark

	// Section, dagger, bullet and reference marks.
	0x00A7: ':', // section sign
	0x2020: ':', // dagger
	0x2021: ':', // double dagger
	0x2022: ':', // bullet
	0x2023: ':', // triangular bullet
	0x203B: ':', // reference mark
	0xFE55: ':', // small colon

	// Leaders and full stops.
	0x2024: '.', // one dot leader
	0x2025: '.', // two dot leader
	0x2026: '.', // horizontal ellipsis
	0x3002: '.', // ideographic full stop
	0xFE30: '.', // presentation form for vertical two dot leader
	0xFE52: '.', // small full stop

	// Commas and semicolons.
	0x3001: ',', // ideographic comma
	0xFE50: ',', // small comma
	0xFE51: ',', // small ideographic comma
	0xFE54: ';', // small semicolon

	// Bars.
	0x00A6: '|', // broken bar
	0x2016: '|', // double vertical line

	// Low lines and overlines.
	0x2017: '_', // double low line
	0x203E: '_', // overline
	0x203F: '_', // undertie
	0x2040: '_', // character tie
	0xFE33: '_', // presentation form for vertical low line
	0xFE49: '_', // dashed overline
	0xFE4A: '_', // centreline overline
	0xFE4D: '_', // dashed low line
	0xFE4E: '_', // centreline low line

	// Wave dashes.
	0x301C: '~', // wave dash
	0x3030: '~', // wavy dash
	0xFE34: '~', // presentation form for vertical wavy low line
	0xFE4B: '~', // wavy overline
	0xFE4C: '~', // double wavy overline
	0xFE4F: '~', // wavy low line

	// Carets.
	0x2038: '^', // caret
	0x2041: '^', // caret insertion point

	// Percent and at signs.
	0x2030: '%', // per mille sign
	0x2031: '%', // per ten thousand sign
	0xFE6A: '%', // small percent sign
	0xFE6B: '@', // small commercial at

	// Letter-like symbols.
	0x00A9: 'c', // copyright sign
	0x00B5: 'u', // micro sign
	0x00AE: 'r', // registered sign

	// Arithmetic and other small forms.
	0x207A: '+',  // superscript plus sign
	0x208A: '+',  // subscript plus sign
	0xFE62: '+',  // small plus sign
	0x2044: '/',  // fraction slash
	0x2042: '*',  // asterism
	0xFE61: '*',  // small asterisk
	0x208C: '=',  // subscript equals sign
	0xFE66: '=',  // small equals sign
	0xFE68: '\\', // small reverse solidus
	0xFE5F: '#',  // small number sign
	0xFE60: '&',  // small ampersand
	0xFE69: '$',  // small dollar sign

	// Square bracket family. Older tables key the vertical presentation
	// forms at U+FF3D..U+FF44; those code points are fullwidth ASCII and
	// follow the fullwidth rule instead.
	0x2045: '[', // left square bracket with quill
	0x3010: '[', // left black lenticular bracket
	0x3016: '[', // left white lenticular bracket
	0x301A: '[', // left white square bracket
	0xFE3B: '[', // presentation form for vertical left black lenticular bracket
	0xFE41: '[', // presentation form for vertical left corner bracket
	0xFE43: '[', // presentation form for vertical left white corner bracket
	0x2046: ']', // right square bracket with quill
	0x3011: ']', // right black lenticular bracket
	0x3017: ']', // right white lenticular bracket
	0x301B: ']', // right white square bracket
	0xFE3C: ']', // presentation form for vertical right black lenticular bracket
	0xFE42: ']', // presentation form for vertical right corner bracket
	0xFE44: ']', // presentation form for vertical right white corner bracket

	// Parenthesis family.
	0x208D: '(', // subscript left parenthesis
	0x3014: '(', // left tortoise shell bracket
	0x3018: '(', // left white tortoise shell bracket
	0xFE35: '(', // presentation form for vertical left parenthesis
	0xFE39: '(', // presentation form for vertical left tortoise shell bracket
	0xFE59: '(', // small left parenthesis
	0xFE5D: '(', // small left tortoise shell bracket
	0x208E: ')', // subscript right parenthesis
	0x3015: ')', // right tortoise shell bracket
	0x3019: ')', // right white tortoise shell bracket
	0xFE36: ')', // presentation form for vertical right parenthesis
	0xFE3A: ')', // presentation form for vertical right tortoise shell bracket
	0xFE5A: ')', // small right parenthesis
	0xFE5E: ')', // small right tortoise shell bracket

	// Angle bracket family.
	0x3008: '<', // left angle bracket
	0x300A: '<', // left double angle bracket
	0xFE3D: '<', // presentation form for vertical left double angle bracket
	0xFE3F: '<', // presentation form for vertical left angle bracket
	0xFE64: '<', // small less-than sign
	0xFF64: '<', // small less-than sign, legacy code point
	0x3009: '>', // right angle bracket
	0x300B: '>', // right double angle bracket
	0xFE3E: '>', // presentation form for vertical right double angle bracket
	0xFE40: '>', // presentation form for vertical right angle bracket
	0xFE65: '>', // small greater-than sign
	0xFF65: '>', // small greater-than sign, legacy code point

	// Curly bracket family.
	0xFE37: '{', // presentation form for vertical left curly bracket
	0xFE5B: '{', // small left curly bracket
	0xFE38: '}', // presentation form for vertical right curly bracket
	0xFE5C: '}', // small right curly bracket

	// Exclamation and question marks.
	0x00A1: '!', // inverted exclamation mark
	0x00AC: '!', // not sign
	0x203C: '!', // double exclamation mark
	0x203D: '!', // interrobang
	0xFE57: '!', // small exclamation mark
	0x00BF: '?', // inverted question mark
	0xFE56: '?', // small question mark

	// Latin-1 superscripts and zeros.
	0x00B9: '1', // superscript one
	0x00B2: '2', // superscript two
	0x00B3: '3', // superscript three
	0x3007: '0', // ideographic number zero
	0x24EA: '0', // circled digit zero
}
