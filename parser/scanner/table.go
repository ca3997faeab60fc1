package scanner

import (
	"github.com/t14raptor/go-esm/token"
)

// Next advances to the following token. A / is always scanned as a division
// operator and a } as a brace; the parser rescans them as regular expression
// or template pieces where the grammar calls for it.
func (s *Scanner) Next() {
	s.Token = Token{}

	for {
		s.Token.Idx0 = s.src.Offset()

		b, ok := s.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		switch b {
		// ---- Whitespace ----
		case '\t', ' ', 0x0B, 0x0C:
			s.ConsumeByte()
			continue

		case '\n', '\r':
			s.ConsumeByte()
			s.Token.OnNewLine = true
			continue

		// ---- Single-character punctuation / delimiters ----
		case '(':
			s.ConsumeByte()
			s.Token.Kind = token.LeftParenthesis
		case ')':
			s.ConsumeByte()
			s.Token.Kind = token.RightParenthesis
		case ',':
			s.ConsumeByte()
			s.Token.Kind = token.Comma
		case ':':
			s.ConsumeByte()
			s.Token.Kind = token.Colon
		case ';':
			s.ConsumeByte()
			s.Token.Kind = token.Semicolon
		case '[':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBracket
		case ']':
			s.ConsumeByte()
			s.Token.Kind = token.RightBracket
		case '{':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBrace
		case '}':
			s.ConsumeByte()
			s.Token.Kind = token.RightBrace
		case '~':
			s.ConsumeByte()
			s.Token.Kind = token.BitwiseNot

		// ---- Operators / multi-character punctuation ----
		case '!':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.StrictNotEqual
				} else {
					s.Token.Kind = token.NotEqual
				}
			} else {
				s.Token.Kind = token.Not
			}

		case '%':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.RemainderAssign
			} else {
				s.Token.Kind = token.Remainder
			}

		case '&':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('&') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.LogicalAndAssign
				} else {
					s.Token.Kind = token.LogicalAnd
				}
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.AndAssign
			} else {
				s.Token.Kind = token.And
			}

		case '*':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('*') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.ExponentAssign
				} else {
					s.Token.Kind = token.Exponent
				}
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.MultiplyAssign
			} else {
				s.Token.Kind = token.Multiply
			}

		case '+':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('+') {
				s.Token.Kind = token.Increment
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.AddAssign
			} else {
				s.Token.Kind = token.Plus
			}

		case '-':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('-') {
				s.Token.Kind = token.Decrement
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.SubtractAssign
			} else {
				s.Token.Kind = token.Minus
			}

		case '.':
			s.ConsumeByte()
			s.Token.Kind = s.readDot()

		case '/':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('/') {
				s.skipSingleLineComment()
				continue
			}
			if s.AdvanceIfByteEquals('*') {
				if !s.skipMultiLineComment() {
					s.Token.Kind = token.Illegal
					break
				}
				continue
			}
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.QuotientAssign
			} else {
				s.Token.Kind = token.Slash
			}

		case '<':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('<') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.ShiftLeftAssign
				} else {
					s.Token.Kind = token.ShiftLeft
				}
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.LessOrEqual
			} else {
				s.Token.Kind = token.Less
			}

		case '=':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.StrictEqual
				} else {
					s.Token.Kind = token.Equal
				}
			} else if s.AdvanceIfByteEquals('>') {
				s.Token.Kind = token.Arrow
			} else {
				s.Token.Kind = token.Assign
			}

		case '>':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.GreaterOrEqual
			} else if s.AdvanceIfByteEquals('>') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.ShiftRightAssign
				} else if s.AdvanceIfByteEquals('>') {
					if s.AdvanceIfByteEquals('=') {
						s.Token.Kind = token.UnsignedShiftRightAssign
					} else {
						s.Token.Kind = token.UnsignedShiftRight
					}
				} else {
					s.Token.Kind = token.ShiftRight
				}
			} else {
				s.Token.Kind = token.Greater
			}

		case '?':
			s.ConsumeByte()
			next, _ := s.src.PeekByteAt(0)
			after, _ := s.src.PeekByteAt(1)
			switch {
			case next == '?' && after == '=':
				s.ConsumeByte()
				s.ConsumeByte()
				s.Token.Kind = token.CoalesceAssign
			case next == '?':
				s.ConsumeByte()
				s.Token.Kind = token.Coalesce
			case next == '.' && !isDecimalDigit(after):
				s.ConsumeByte()
				s.Token.Kind = token.QuestionDot
			default:
				s.Token.Kind = token.QuestionMark
			}

		case '^':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.ExclusiveOrAssign
			} else {
				s.Token.Kind = token.ExclusiveOr
			}

		case '|':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('|') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.LogicalOrAssign
				} else {
					s.Token.Kind = token.LogicalOr
				}
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.OrAssign
			} else {
				s.Token.Kind = token.Or
			}

		// ---- String / template literals ----

		case '"', '\'':
			s.Token.Kind = s.scanStringLiteral(b)

		case '`':
			s.ConsumeByte()
			s.Token.Kind = s.ReadTemplateLiteral(token.TemplateHead, token.NoSubstitutionTemplate)

		// ---- Special ----

		case '#':
			if s.src.Offset() == 0 {
				if next, ok := s.src.PeekByteAt(1); ok && next == '!' {
					s.skipSingleLineComment()
					continue
				}
			}
			s.ConsumeByte()
			if c, ok := s.PeekRune(); !ok || !(isIdentifierStart(c) || c == '\\') {
				s.error(invalidCharacter('#', s.Token.Idx0, s.src.Offset()))
				s.Token.Kind = token.Illegal
				break
			}
			if s.scanIdentifier() == token.Illegal {
				s.Token.Kind = token.Illegal
				break
			}
			s.Token.Kind = token.PrivateIdentifier

		// ---- Numeric literals ----

		case '0':
			s.ConsumeByte()
			s.Token.Kind = s.readZero()

		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			s.ConsumeByte()
			s.Token.Kind = s.decimalLiteralAfterFirstDigit()

		default:
			if b < 0x80 {
				if asciiStart[b] || b == '\\' {
					s.Token.Kind = s.scanIdentifier()
					break
				}
				c := s.ConsumeRune()
				s.error(invalidCharacter(c, s.Token.Idx0, s.src.Offset()))
				s.Token.Kind = token.Illegal
				break
			}

			// ---- Non-ASCII ----
			switch c, _ := s.PeekRune(); {
			case isLineTerminator(c):
				s.ConsumeRune()
				s.Token.OnNewLine = true
				continue
			case isWhiteSpace(c):
				s.ConsumeRune()
				continue
			case isIdentifierStart(c):
				s.Token.Kind = s.scanIdentifier()
			default:
				s.ConsumeRune()
				s.error(invalidCharacter(c, s.Token.Idx0, s.src.Offset()))
				s.Token.Kind = token.Illegal
			}
		}
		break
	}
	s.Token.Idx1 = s.src.Offset()
}

func (s *Scanner) readDot() token.Token {
	if next, ok := s.src.PeekByteAt(0); ok && next == '.' {
		if after, ok := s.src.PeekByteAt(1); ok && after == '.' {
			s.ConsumeByte()
			s.ConsumeByte()
			return token.Ellipsis
		}
	}
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		return s.decLitAfterDecPoint()
	}
	return token.Period
}
