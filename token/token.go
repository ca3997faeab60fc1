package token

import (
	"strconv"
)

// Token is the set of lexical tokens in ECMAScript.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// keyword ...
type keyword struct {
	token  Token
	strict bool
}

// LiteralKeyword returns the keyword token for literal, or Identifier if literal is not a keyword.
// strict reports whether the word is only reserved in strict mode code.
func LiteralKeyword(literal string) (tkn Token, strict bool) {
	if k, exists := keywordTable[literal]; exists {
		return k.token, k.strict
	}
	return Identifier, false
}

// IsStrictReserved reports whether name is a future reserved word in strict mode code.
func IsStrictReserved(name string) bool {
	switch name {
	case "implements", "interface", "package", "private", "protected", "public", "let", "static", "yield":
		return true
	}
	return false
}

// ID reports whether the token can be used as an IdentifierName (property keys, export names).
func ID(token Token) bool {
	return token >= Identifier
}

// Reserved reports whether the token is a reserved word that can never be a binding.
func Reserved(token Token) bool {
	return token > Identifier && token <= EscapedReservedWord
}

// UnreservedWord reports whether the token is an identifier or a contextual keyword.
func UnreservedWord(token Token) bool {
	return token == Identifier || token > EscapedReservedWord
}

// IsAssignment reports whether the token is = or a compound assignment operator.
func IsAssignment(t Token) bool {
	return t == Assign || (t >= AddAssign && t <= UnsignedShiftRightAssign) ||
		(t >= LogicalAndAssign && t <= CoalesceAssign)
}

// IsTemplate reports whether the token is one of the template literal pieces.
func IsTemplate(t Token) bool {
	return t >= TemplateHead && t <= NoSubstitutionTemplate
}
