package scanner

import (
	"strings"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

func (s *Scanner) scanStringLiteral(delim byte) token.Token {
	s.ConsumeByte()
	afterOpen := s.src.Offset()

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(s.unterminatedRange()))
			return token.Illegal
		}
		switch b {
		case delim:
			s.Token.Value = s.src.FromPositionToCurrent(afterOpen)
			s.ConsumeByte()
			return token.String
		case '\\':
			return s.scanStringLiteralEscaped(delim, afterOpen)
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) scanStringLiteralEscaped(delim byte, afterOpen ast.Idx) token.Token {
	soFar := s.src.FromPositionToCurrent(afterOpen)
	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(s.unterminatedRange()))
			return token.Illegal
		}
		switch b {
		case delim:
			s.ConsumeByte()
			s.Token.Value = str.String()
			s.Token.HasEscape = true
			return token.String
		case '\\':
			escStart := s.src.Offset()
			s.ConsumeByte()
			if !s.readStringEscapeSequence(str, false) {
				s.error(invalidEscapeSequence(escStart, s.src.Offset()))
				return token.Illegal
			}
		default:
			str.WriteRune(s.ConsumeRune())
		}
	}
}

// readStringEscapeSequence decodes one escape, the backslash already
// consumed. It reports false for a malformed escape. In templates, octal
// escapes are malformed too.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder, inTemplate bool) bool {
	chr, ok := s.NextRune()
	if !ok {
		return false
	}

	switch chr {
	case '\u000a', '\u2028', '\u2029':
		// line continuation
	case '\u000d':
		s.AdvanceIfByteEquals('\n')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'n':
		str.WriteByte('\n')
	case 'r':
		str.WriteByte('\r')
	case 't':
		str.WriteByte('\t')
	case 'v':
		str.WriteByte('\v')
	case 'x':
		d, ok := s.hexDigit()
		if !ok {
			return false
		}
		next, ok := s.hexDigit()
		if !ok {
			return false
		}
		str.WriteRune(d<<4 | next)
	case 'u':
		value := s.unicodeEscape(true)
		if value < 0 {
			return false
		}
		str.WriteRune(value)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		next, _ := s.PeekByte()
		if chr == '0' && (next < '0' || next > '9') {
			str.WriteByte(0)
			return true
		}
		if inTemplate {
			return false
		}
		s.Token.Octal = true
		value := chr - '0'
		// Up to three digits, the value staying below 0o400.
		for i := 0; i < 2; i++ {
			b, ok := s.PeekByte()
			if !ok || b < '0' || b > '7' || value*8+rune(b-'0') > 0o377 {
				break
			}
			value = value*8 + rune(b-'0')
			s.ConsumeByte()
		}
		str.WriteRune(value)
	case '8', '9':
		if inTemplate {
			return false
		}
		s.Token.Octal = true
		str.WriteRune(chr)
	default:
		str.WriteRune(chr)
	}
	return true
}
