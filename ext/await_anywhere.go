package ext

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
	"github.com/t14raptor/go-esm/token"
)

// AwaitAnywhere accepts await expressions outside async functions, including
// at the top level of scripts and modules.
//
// In modules await is always a keyword, so every await is accepted. In
// scripts await is also an ordinary identifier; there an await is accepted
// only when the token after it sits on the same line and can only start an
// operand, so `await(x)`, `await[0]`, `await++` and await`tag` keep their
// identifier meaning.
type AwaitAnywhere struct{}

func (AwaitAnywhere) Name() string { return NameAwaitAnywhere }

func (AwaitAnywhere) Install(h *parser.Hooks) error {
	return h.OnAwait(relaxAwait)
}

func relaxAwait(p *parser.Parser, idx ast.Idx, forAwait bool) bool {
	if p.InModule() || forAwait {
		return true
	}
	pk := parser.Lookahead(p)
	if pk.OnNewLine {
		return false
	}
	return startsOperand(pk.Kind)
}

// startsOperand reports whether a token can begin an expression operand but
// cannot continue an expression whose left side is an identifier.
func startsOperand(kind token.Token) bool {
	switch kind {
	case token.String, token.Number, token.Boolean, token.Null, token.This, token.New,
		token.Function, token.Class, token.Import, token.Super, token.Not, token.BitwiseNot,
		token.Typeof, token.Void, token.Delete, token.PrivateIdentifier:
		return true
	}
	return token.UnreservedWord(kind)
}
