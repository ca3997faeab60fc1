package scanner

import (
	"strings"

	"github.com/t14raptor/go-esm/token"
)

// RescanRegExp re-reads the current / or /= token as a regular expression
// literal and returns its body and flags.
func (s *Scanner) RescanRegExp() (pattern, flags string) {
	start := s.Token.Idx0
	s.src.SetPosition(start + 1)

	var inEscape, inCharClass bool
	for {
		chr, ok := s.NextRune()
		if !ok || isLineTerminator(chr) {
			s.error(unterminatedRegExp(start, s.src.Offset()))
			s.Token.Kind = token.Illegal
			s.Token.Idx1 = s.src.Offset()
			return "", ""
		}

		if inEscape {
			inEscape = false
		} else if chr == '/' && !inCharClass {
			break
		} else if chr == '[' {
			inCharClass = true
		} else if chr == '\\' {
			inEscape = true
		} else if chr == ']' {
			inCharClass = false
		}
	}
	pattern = s.src.Slice(start+1, s.src.Offset()-1)

	flagStart := s.src.Offset()
	for {
		c, ok := s.PeekRune()
		if !ok || !isIdentifierPart(c) {
			break
		}
		flagOffset := s.src.Offset()
		s.ConsumeRune()
		if !strings.ContainsRune("dgimsuy", c) {
			s.error(regExpFlag(c, flagOffset, s.src.Offset()))
			s.Token.Kind = token.Illegal
			break
		}
		if strings.ContainsRune(s.src.Slice(flagStart, flagOffset), c) {
			s.error(regExpFlagTwice(c, flagOffset, s.src.Offset()))
			s.Token.Kind = token.Illegal
			break
		}
	}
	flags = s.src.FromPositionToCurrent(flagStart)

	if s.Token.Kind != token.Illegal {
		s.Token.Kind = token.RegExp
	}
	s.Token.Idx1 = s.src.Offset()
	return pattern, flags
}
