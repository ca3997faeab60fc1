package parser

import "github.com/t14raptor/go-esm/token"

// Precedence is the left binding power of a binary operator.
//
// Even values are left-associative and odd values right-associative. The
// binary loop stops when lbp <= min and recurses with lbp ^ 1, so a
// left-associative operator of the same level breaks out and a
// right-associative one continues.
type Precedence uint8

const (
	PrecedenceLowest            Precedence = 0
	PrecedenceNullishCoalescing Precedence = 12 // ??
	PrecedenceLogicalOr         Precedence = 14 // ||
	PrecedenceLogicalAnd        Precedence = 16 // &&
	PrecedenceBitwiseOr         Precedence = 18 // |
	PrecedenceBitwiseXor        Precedence = 20 // ^
	PrecedenceBitwiseAnd        Precedence = 22 // &
	PrecedenceEquals            Precedence = 24 // == != === !==
	PrecedenceCompare           Precedence = 26 // < > <= >= instanceof in
	PrecedenceShift             Precedence = 28 // << >> >>>
	PrecedenceAdd               Precedence = 30 // + -
	PrecedenceMultiply          Precedence = 32 // * / %
	PrecedenceExponentiation    Precedence = 35 // ** (right-assoc)
)

// tokenPrecedence is indexed by token kind. Zero means not a binary operator.
var tokenPrecedence [256]Precedence

func init() {
	for kind, prec := range map[token.Token]Precedence{
		token.Coalesce:           PrecedenceNullishCoalescing,
		token.LogicalOr:          PrecedenceLogicalOr,
		token.LogicalAnd:         PrecedenceLogicalAnd,
		token.Or:                 PrecedenceBitwiseOr,
		token.ExclusiveOr:        PrecedenceBitwiseXor,
		token.And:                PrecedenceBitwiseAnd,
		token.Equal:              PrecedenceEquals,
		token.StrictEqual:        PrecedenceEquals,
		token.NotEqual:           PrecedenceEquals,
		token.StrictNotEqual:     PrecedenceEquals,
		token.Less:               PrecedenceCompare,
		token.Greater:            PrecedenceCompare,
		token.LessOrEqual:        PrecedenceCompare,
		token.GreaterOrEqual:     PrecedenceCompare,
		token.InstanceOf:         PrecedenceCompare,
		token.In:                 PrecedenceCompare,
		token.ShiftLeft:          PrecedenceShift,
		token.ShiftRight:         PrecedenceShift,
		token.UnsignedShiftRight: PrecedenceShift,
		token.Plus:               PrecedenceAdd,
		token.Minus:              PrecedenceAdd,
		token.Multiply:           PrecedenceMultiply,
		token.Slash:              PrecedenceMultiply,
		token.Remainder:          PrecedenceMultiply,
		token.Exponent:           PrecedenceExponentiation,
	} {
		tokenPrecedence[kind] = prec
	}
}

func kindToPrecedence(kind token.Token) Precedence {
	return tokenPrecedence[kind]
}

// isLogicalOperator reports whether kind is &&, || or ??.
func isLogicalOperator(kind token.Token) bool {
	return kind == token.LogicalAnd || kind == token.LogicalOr || kind == token.Coalesce
}
