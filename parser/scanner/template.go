package scanner

import (
	"strings"

	"github.com/t14raptor/go-esm/token"
)

// ReadTemplateLiteral scans the body of a template literal piece.
// The opening delimiter (` or }) must already have been consumed by the caller.
// sub is the Token to return when encountering ${, tail is for closing `.
func (s *Scanner) ReadTemplateLiteral(sub, tail token.Token) token.Token {
	str := &strings.Builder{}
	chunkStart := s.src.Offset()
	valid := true

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.error(unterminatedTemplateLiteral(s.unterminatedRange()))
			return token.Illegal
		}

		switch b {
		case '`':
			str.WriteString(s.src.FromPositionToCurrent(chunkStart))
			s.ConsumeByte()
			s.finishTemplate(str, valid)
			return tail
		case '$':
			if next, ok := s.src.PeekByteAt(1); ok && next == '{' {
				str.WriteString(s.src.FromPositionToCurrent(chunkStart))
				s.ConsumeByte() // $
				s.ConsumeByte() // {
				s.finishTemplate(str, valid)
				return sub
			}
			s.ConsumeByte()
		case '\r':
			// \r and \r\n cook to \n
			str.WriteString(s.src.FromPositionToCurrent(chunkStart))
			s.ConsumeByte()
			s.AdvanceIfByteEquals('\n')
			str.WriteByte('\n')
			chunkStart = s.src.Offset()
		case '\\':
			str.WriteString(s.src.FromPositionToCurrent(chunkStart))
			s.ConsumeByte()
			if !s.readStringEscapeSequence(str, true) {
				valid = false
			}
			chunkStart = s.src.Offset()
		default:
			s.ConsumeByte()
		}
	}
}

func (s *Scanner) finishTemplate(str *strings.Builder, valid bool) {
	s.Token.Invalid = !valid
	if valid {
		s.Token.Value = str.String()
	}
}

// RescanTemplateContinuation re-reads the current `}` token as the start of
// a template middle or tail piece.
func (s *Scanner) RescanTemplateContinuation() {
	onNewLine := s.Token.OnNewLine
	s.src.SetPosition(s.Token.Idx0 + 1)
	s.Token = Token{Idx0: s.Token.Idx0, OnNewLine: onNewLine}
	s.Token.Kind = s.ReadTemplateLiteral(token.TemplateMiddle, token.TemplateTail)
	s.Token.Idx1 = s.src.Offset()
}
