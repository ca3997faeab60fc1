package ext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/ext"
	"github.com/t14raptor/go-esm/parser"
)

func TestDynamicImportStatement(t *testing.T) {
	for _, opts := range []*parser.Options{nil, script} {
		prog := mustParse(t, `import("foo")`, opts, ext.DynamicImport{})
		require.Len(t, prog.Body, 1)

		call, ok := exprOf(prog.Body[0]).(*ast.CallExpression)
		require.True(t, ok)
		assert.True(t, ast.IsDynamicImport(call))
		assert.Equal(t, ast.KindImport, call.Callee.Kind())
		assert.Equal(t, ast.Idx(6), call.LeftParenthesis)
		assert.Equal(t, ast.Idx(12), call.RightParenthesis)

		require.Len(t, call.ArgumentList, 1)
		assert.Equal(t, "foo", call.ArgumentList[0].Expr.(*ast.StringLiteral).Value)
	}
}

func TestDynamicImportExpression(t *testing.T) {
	cases := []string{
		`const m = import("m")`,
		`import("m").then(f)`,
		`async function f() { await import("m") }`,
		`f(import(a + b))`,
		`import(` + "`./${name}.js`" + `)`,
		`if (a) import("m")`,
		`x = () => import("m")`,
		`import d from "m"; import("n")`,
	}
	for _, code := range cases {
		found := 0
		ast.Inspect(mustParse(t, code, nil, ext.DynamicImport{}), func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpression); ok && ast.IsDynamicImport(call) {
				found++
			}
			return true
		})
		assert.Equal(t, 1, found, code)
	}
}

func TestDynamicImportMember(t *testing.T) {
	prog := mustParse(t, `import("m").then(f)`, nil, ext.DynamicImport{})
	call := exprOf(prog.Body[0]).(*ast.CallExpression)
	member := call.Callee.Expr.(*ast.MemberExpression)
	assert.True(t, ast.IsDynamicImport(member.Object.Expr))
}

func TestDynamicImportErrors(t *testing.T) {
	cases := []struct {
		code string
		msg  string
		idx  ast.Idx
	}{
		{"import()", "Dynamic import requires exactly one argument", 0},
		{"x = import()", "Dynamic import requires exactly one argument", 4},
		{"import(a, b)", "Dynamic import requires exactly one argument", 0},
		{"import(a,)", "Trailing comma is not allowed in import()", 8},
		{"import(...a)", "Unexpected token", 7},
		{"new import(a)", "Cannot use new with import()", 4},
	}
	for _, c := range cases {
		se := syntaxError(t, c.code, nil, ext.DynamicImport{})
		assert.Equal(t, c.msg, se.Message, c.code)
		assert.Equal(t, c.idx, se.Idx, c.code)
	}
}

func TestDynamicImportDisabled(t *testing.T) {
	se := syntaxError(t, `import("m")`, nil)
	assert.Equal(t, "Unexpected token", se.Message)

	se = syntaxError(t, `x = import("m")`, nil)
	assert.Equal(t, "Unexpected token", se.Message)
}

func TestDynamicImportLeavesDeclarations(t *testing.T) {
	prog := mustParse(t, `import {a} from "m"; import "n"`, nil, ext.DynamicImport{})
	require.Len(t, prog.Body, 2)
	for _, stmt := range prog.Body {
		_, ok := stmt.Stmt.(*ast.ImportDeclaration)
		assert.True(t, ok, "%T", stmt.Stmt)
	}
}
