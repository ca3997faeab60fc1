package scanner

func (s *Scanner) skipSingleLineComment() {
	for {
		c, ok := s.PeekRune()
		if !ok || isLineTerminator(c) {
			return
		}
		s.ConsumeRune()
	}
}

// skipMultiLineComment skips to the closing */, the opening already consumed.
func (s *Scanner) skipMultiLineComment() bool {
	start := s.src.Offset() - 2
	for {
		c, ok := s.NextRune()
		if !ok {
			s.error(unterminatedMultiLineComment(start, s.src.Offset()))
			return false
		}
		if isLineTerminator(c) {
			s.Token.OnNewLine = true
		}
		if c == '*' && s.AdvanceIfByteEquals('/') {
			return true
		}
	}
}
