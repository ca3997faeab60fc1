package scanner

import (
	"github.com/t14raptor/go-esm/ast"
)

// Scanner tokenizes ECMAScript source on demand. It has no hidden state
// besides the cursor, so copying a Scanner value yields an independent
// scanner positioned at the same token.
type Scanner struct {
	Token Token
	// Err is the first lexical error encountered, if any. The token that
	// produced it has kind Illegal.
	Err *Error

	src Source
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: NewSource(src),
	}
}

// Source returns the complete program text.
func (s *Scanner) Source() string {
	return s.src.str
}

// Offset returns the cursor position, i.e. the end of the current token.
func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

func (s *Scanner) NextRune() (rune, bool) {
	return s.src.NextRune()
}

func (s *Scanner) NextByte() (byte, bool) {
	return s.src.NextByte()
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) ConsumeByte() byte {
	return s.src.NextByteUnchecked()
}

func (s *Scanner) PeekRune() (rune, bool) {
	return s.src.PeekRune()
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}

func (s *Scanner) error(err Error) {
	if s.Err == nil {
		s.Err = &err
	}
}

func (s *Scanner) unterminatedRange() (ast.Idx, ast.Idx) {
	return s.Token.Idx0, s.src.Offset()
}
