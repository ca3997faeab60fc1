package ext

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
	"github.com/t14raptor/go-esm/token"
)

// DynamicImport adds import(specifier) expressions. The call takes exactly
// one argument and may appear anywhere an expression can, in scripts and
// modules alike.
type DynamicImport struct{}

func (DynamicImport) Name() string { return NameDynamicImport }

func (DynamicImport) Install(h *parser.Hooks) error {
	if err := h.OnAtom(parseDynamicImport); err != nil {
		return err
	}
	return h.OnStatement(parseDynamicImportStatement)
}

func isDynamicImport(p *parser.Parser) bool {
	return p.Kind() == token.Import && parser.Lookahead(p).Kind == token.LeftParenthesis
}

func parseDynamicImport(p *parser.Parser) (*ast.Expression, bool) {
	if !isDynamicImport(p) {
		return nil, false
	}

	idx := p.Offset()
	p.Next()
	call := &ast.CallExpression{
		Callee:          &ast.Expression{Expr: &ast.Import{Idx: idx}},
		LeftParenthesis: p.Expect(token.LeftParenthesis),
	}
	switch p.Kind() {
	case token.RightParenthesis:
		p.Raise(idx, "Dynamic import requires exactly one argument")
	case token.Ellipsis:
		p.Unexpected()
	}

	call.ArgumentList = ast.Expressions{*p.ParseAssignmentExpression()}
	if p.Kind() == token.Comma {
		comma := p.Offset()
		p.Next()
		if p.Kind() == token.RightParenthesis {
			p.Raise(comma, "Trailing comma is not allowed in import()")
		}
		p.Raise(idx, "Dynamic import requires exactly one argument")
	}
	call.RightParenthesis = p.Expect(token.RightParenthesis)
	return &ast.Expression{Expr: call}, true
}

// parseDynamicImportStatement keeps `import(...)` at statement level from
// being read as an import declaration.
func parseDynamicImportStatement(p *parser.Parser) (*ast.Statement, bool) {
	if !isDynamicImport(p) {
		return nil, false
	}
	return p.ParseExpressionStatement(), true
}
