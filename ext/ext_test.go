package ext_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
)

var script = &parser.Options{SourceType: ast.SourceTypeScript}

func parse(code string, opts *parser.Options, exts ...parser.Extension) (*ast.Program, error) {
	p, err := parser.New(code, opts)
	if err != nil {
		return nil, err
	}
	for _, e := range exts {
		if err := p.Install(e); err != nil {
			return nil, err
		}
	}
	return p.Parse()
}

func mustParse(t *testing.T, code string, opts *parser.Options, exts ...parser.Extension) *ast.Program {
	t.Helper()
	prog, err := parse(code, opts, exts...)
	require.NoError(t, err, code)
	return prog
}

// syntaxError returns the syntax error code must fail with.
func syntaxError(t *testing.T, code string, opts *parser.Options, exts ...parser.Extension) *parser.SyntaxError {
	t.Helper()
	_, err := parse(code, opts, exts...)
	require.Error(t, err, code)
	se, ok := err.(*parser.SyntaxError)
	require.True(t, ok, "%s: %T", code, err)
	return se
}

func exprOf(s ast.Statement) ast.Expr {
	return s.Stmt.(*ast.ExpressionStatement).Expression.Expr
}
