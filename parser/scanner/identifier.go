package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-esm/token"
)

// scanIdentifier reads an identifier starting at the cursor and classifies
// it. The first character is known to start an identifier or be a backslash.
func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.Offset()
	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		if b < utf8.RuneSelf {
			if asciiContinue[b] {
				s.ConsumeByte()
				continue
			}
			if b == '\\' {
				return s.scanIdentifierBackslash(s.src.FromPositionToCurrent(start))
			}
			break
		}
		c, _ := s.PeekRune()
		if !isIdentifierPart(c) && !(s.src.Offset() == start && isIdentifierStart(c)) {
			break
		}
		s.ConsumeRune()
	}

	name := s.src.FromPositionToCurrent(start)
	s.Token.Value = name
	kind, _ := token.LiteralKeyword(name)
	return kind
}

func (s *Scanner) scanIdentifierBackslash(soFar string) token.Token {
	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		if b == '\\' {
			escStart := s.src.Offset()
			s.ConsumeByte()
			if !s.identifierUnicodeEscapeSequence(str, str.Len() == 0) {
				s.error(invalidUnicodeEscapeSequence(escStart, s.src.Offset()))
				return token.Illegal
			}
			continue
		}
		c, _ := s.PeekRune()
		if !isIdentifierPart(c) {
			break
		}
		str.WriteRune(s.ConsumeRune())
	}

	s.Token.Value = str.String()
	s.Token.HasEscape = true

	// Escaped reserved words never act as keywords; contextual keywords
	// degrade to plain identifiers.
	if kind, _ := token.LiteralKeyword(s.Token.Value); token.Reserved(kind) {
		return token.EscapedReservedWord
	}
	return token.Identifier
}
