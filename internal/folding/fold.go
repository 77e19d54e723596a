package folding

import (
	"strings"
	"unicode/utf8"
)

// Characters kept below the printable range.
const (
	tab            = 0x09
	lineFeed       = 0x0A
	carriageReturn = 0x0D
)

// replacement substitutes any code unit that is not legal in XML output.
const replacement = ' '

// Normalise folds buf[:n] in place and returns it.
// n is authoritative: embedded nulls are folded like any other unit
// and nothing past n is read.
func Normalise(buf []uint16, n int) []uint16 {
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 {
		return buf[:0]
	}
	out := buf[:n]
	for i, u := range out {
		out[i] = Unit(u)
	}
	return out
}

// Unit folds a single UTF-16 code unit.
func Unit(u uint16) uint16 {
	if f, ok := foldTable[u]; ok {
		return f
	}
	for _, r := range rangeRules {
		if r.contains(u) {
			return r.fold(u)
		}
	}
	return Valid(u)
}

// Valid returns u when it is legal in XML 1.0 character data, or a space.
// Surrogate halves and the private use area below U+F8FF are not legal.
func Valid(u uint16) uint16 {
	switch {
	case u == tab || u == lineFeed || u == carriageReturn:
		return u
	case u < 0x20:
		return replacement
	case u <= 0xD7FF:
		return u
	case u >= 0xF8FF && u <= 0xFFFD:
		return u
	default:
		return replacement
	}
}

// Rune folds r. Runes outside the Basic Multilingual Plane become a space.
func Rune(r rune) rune {
	if r < 0 || r > 0xFFFF {
		return replacement
	}
	return rune(Unit(uint16(r)))
}

// String folds every rune of s. Invalid UTF-8 bytes become a space.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(replacement)
			continue
		}
		b.WriteRune(Rune(r))
	}
	return b.String()
}
