package scanner

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/t14raptor/go-esm/token"
)

func (s *Scanner) readZero() token.Token {
	b, ok := s.PeekByte()
	if !ok {
		return token.Number
	}

	switch b {
	case 'b', 'B':
		s.ConsumeByte()
		return s.readNonDecimal(2)
	case 'o', 'O':
		s.ConsumeByte()
		return s.readNonDecimal(8)
	case 'x', 'X':
		s.ConsumeByte()
		return s.readNonDecimal(16)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.readLegacyOctal()
	case '_':
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()+1))
		return token.Illegal
	}
	return s.decimalLiteralAfterFirstDigit()
}

func (s *Scanner) readNonDecimal(base int) token.Token {
	if !s.readDigits(base) {
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
		return token.Illegal
	}
	s.AdvanceIfByteEquals('n')
	return s.checkAfterNumericLiteral()
}

// readLegacyOctal reads 017 or 089 style literals. Those containing 8 or 9
// are decimal and may carry a fraction.
func (s *Scanner) readLegacyOctal() token.Token {
	s.Token.Octal = true
	decimal := false
	for {
		b, ok := s.PeekByte()
		if !ok || !isDecimalDigit(b) {
			break
		}
		if b >= '8' {
			decimal = true
		}
		s.ConsumeByte()
	}
	if decimal {
		if s.AdvanceIfByteEquals('.') {
			s.optionalDecDigits()
		}
		if !s.optionalExp() {
			return token.Illegal
		}
	}
	return s.checkAfterNumericLiteral()
}

func (s *Scanner) decimalLiteralAfterFirstDigit() token.Token {
	if !s.decimalDigitsAfterFirstDigit() {
		return token.Illegal
	}
	if s.AdvanceIfByteEquals('n') {
		return s.checkAfterNumericLiteral()
	}
	if s.AdvanceIfByteEquals('.') {
		return s.decLitAfterDecPointAfterDigits()
	}
	if !s.optionalExp() {
		return token.Illegal
	}
	return s.checkAfterNumericLiteral()
}

// decLitAfterDecPoint reads the fraction of a literal starting with a dot.
func (s *Scanner) decLitAfterDecPoint() token.Token {
	if !s.readDigits(10) {
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
		return token.Illegal
	}
	if !s.optionalExp() {
		return token.Illegal
	}
	return s.checkAfterNumericLiteral()
}

func (s *Scanner) decLitAfterDecPointAfterDigits() token.Token {
	if !s.optionalDecDigits() || !s.optionalExp() {
		return token.Illegal
	}
	return s.checkAfterNumericLiteral()
}

func (s *Scanner) optionalDecDigits() bool {
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		return s.readDigits(10)
	}
	return true
}

func (s *Scanner) optionalExp() bool {
	b, ok := s.PeekByte()
	if !ok || (b != 'e' && b != 'E') {
		return true
	}
	s.ConsumeByte()
	if b, ok := s.PeekByte(); ok && (b == '+' || b == '-') {
		s.ConsumeByte()
	}
	if !s.readDigits(10) {
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
		return false
	}
	return true
}

// readDigits reads at least one digit of base, allowing single _ separators
// between digits.
func (s *Scanner) readDigits(base int) bool {
	if b, ok := s.PeekByte(); !ok || digitValue(b) >= base {
		return false
	}
	s.ConsumeByte()
	return s.digitsAfterFirst(base)
}

func (s *Scanner) decimalDigitsAfterFirstDigit() bool {
	return s.digitsAfterFirst(10)
}

func (s *Scanner) digitsAfterFirst(base int) bool {
	for {
		b, ok := s.PeekByte()
		if !ok {
			return true
		}
		if b == '_' {
			s.ConsumeByte()
			if b, ok := s.PeekByte(); !ok || digitValue(b) >= base {
				s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
				return false
			}
			continue
		}
		if digitValue(b) >= base {
			return true
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) checkAfterNumericLiteral() token.Token {
	c, ok := s.PeekRune()
	if !ok || !(isIdentifierStart(c) || c == '\\' || c >= '0' && c <= '9') {
		return token.Number
	}
	start := s.src.Offset()
	s.ConsumeRune()
	s.error(invalidNumberEnd(start, s.src.Offset()))
	return token.Illegal
}

func isDecimalDigit(chr byte) bool {
	return '0' <= chr && chr <= '9'
}

func digitValue(chr byte) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

// NumberValue computes the value of a numeric literal from its raw text.
// bigint reports a trailing n suffix.
func NumberValue(raw string) (value float64, bigint bool, err error) {
	literal := strings.ReplaceAll(raw, "_", "")
	if strings.HasSuffix(literal, "n") {
		bigint = true
		literal = literal[:len(literal)-1]
	}

	base := 10
	if len(literal) > 1 && literal[0] == '0' {
		switch literal[1] {
		case 'x', 'X':
			base, literal = 16, literal[2:]
		case 'o', 'O':
			base, literal = 8, literal[2:]
		case 'b', 'B':
			base, literal = 2, literal[2:]
		default:
			if strings.IndexFunc(literal, func(r rune) bool { return r < '0' || r > '7' }) < 0 {
				base = 8
			}
		}
	}

	if base == 10 && !bigint {
		value, err = strconv.ParseFloat(literal, 64)
		if err != nil && math.IsInf(value, 0) {
			err = nil
		}
		return value, false, err
	}

	if n, perr := strconv.ParseUint(literal, base, 64); perr == nil {
		return float64(n), bigint, nil
	}
	n, ok := new(big.Int).SetString(literal, base)
	if !ok {
		return 0, bigint, strconv.ErrSyntax
	}
	value, _ = new(big.Float).SetInt(n).Float64()
	return value, bigint, nil
}
