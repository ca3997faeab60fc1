package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/go-esm/ast"
)

// Source is a read cursor over the program text.
type Source struct {
	str string
	pos int
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return s.pos >= len(s.str)
}

func (s *Source) Offset() ast.Idx {
	return ast.Idx(s.pos)
}

func (s *Source) EndOffset() ast.Idx {
	return ast.Idx(len(s.str))
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = int(pos)
}

func (s *Source) ReadPosition(pos ast.Idx) byte {
	return s.str[pos]
}

func (s *Source) NextRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		s.pos++
		return rune(b), true
	}
	chr, size := utf8.DecodeRuneInString(s.str[s.pos:])
	s.pos += size
	return chr, true
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b), true
	}
	chr, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return chr, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.NextByteUnchecked(), true
}

func (s *Source) NextByteUnchecked() byte {
	b := s.str[s.pos]
	s.pos++
	return b
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n positions after the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	if s.pos+n >= len(s.str) {
		return 0, false
	}
	return s.str[s.pos+n], true
}

func (s *Source) AdvanceIfByteEquals(b byte) (matched bool) {
	if s.pos < len(s.str) && s.str[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}
