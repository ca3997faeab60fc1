package scanner

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

var (
	idStart = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
	)
	idContinue = rangetable.Merge(
		idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	)
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicode.Is(idStart, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	// ZWNJ and ZWJ
	return chr == '\u200c' || chr == '\u200d' || unicode.Is(idContinue, chr)
}

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', '\u0020', '\u00a0', '\ufeff':
		return true
	}
	return chr >= utf8.RuneSelf && unicode.Is(unicode.Zs, chr)
}

func (s *Scanner) hexDigit() (rune, bool) {
	b, ok := s.PeekByte()
	if !ok {
		return 0, false
	}
	if v := digitValue(b); v < 16 {
		s.ConsumeByte()
		return rune(v), true
	}
	return 0, false
}

func (s *Scanner) hexFourDigits() rune {
	var val rune
	for i := 0; i < 4; i++ {
		next, ok := s.hexDigit()
		if !ok {
			return -1
		}
		val = (val << 4) | next
	}
	return val
}

// codePoint reads the body of a \u{...} escape, the `{` already consumed.
func (s *Scanner) codePoint() rune {
	val, ok := s.hexDigit()
	if !ok {
		return -1
	}
	for {
		next, ok := s.hexDigit()
		if !ok {
			break
		}
		val = (val << 4) | next
		if val > unicode.MaxRune {
			return -1
		}
	}
	if !s.AdvanceIfByteEquals('}') {
		return -1
	}
	return val
}

// unicodeEscape reads what follows `\u`: four hex digits or a braced code
// point. A surrogate pair spelled as two escapes is joined when joinPairs is
// set.
func (s *Scanner) unicodeEscape(joinPairs bool) rune {
	if s.AdvanceIfByteEquals('{') {
		return s.codePoint()
	}
	high := s.hexFourDigits()
	if !joinPairs || high < 0 || !utf16.IsSurrogate(high) {
		return high
	}
	if a, ok := s.src.PeekByteAt(0); !ok || a != '\\' {
		return high
	}
	if b, ok := s.src.PeekByteAt(1); !ok || b != 'u' {
		return high
	}
	mark := s.src.pos
	s.ConsumeByte()
	s.ConsumeByte()
	low := s.hexFourDigits()
	if low < 0 || !utf16.IsSurrogate(low) {
		s.src.pos = mark
		return high
	}
	return utf16.DecodeRune(high, low)
}

// identifierUnicodeEscapeSequence decodes an escape inside an identifier,
// the backslash already consumed.
func (s *Scanner) identifierUnicodeEscapeSequence(str *strings.Builder, start bool) bool {
	if !s.AdvanceIfByteEquals('u') {
		return false
	}
	value := s.unicodeEscape(false)
	if value < 0 {
		return false
	}
	if start && !isIdentifierStart(value) || !start && !isIdentifierPart(value) {
		return false
	}
	str.WriteRune(value)
	return true
}
