package ext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/ext"
	"github.com/t14raptor/go-esm/parser"
)

func TestAwaitAnywhereModuleTopLevel(t *testing.T) {
	prog := mustParse(t, "await foo", nil, ext.AwaitAnywhere{})
	await, ok := exprOf(prog.Body[0]).(*ast.AwaitExpression)
	require.True(t, ok)
	assert.True(t, await.Relaxed)
	assert.True(t, prog.TopLevelAwait)
	assert.True(t, prog.RelaxedAwait)
}

func TestAwaitAnywhereModuleFunction(t *testing.T) {
	prog := mustParse(t, "function f() { await foo }", nil, ext.AwaitAnywhere{})
	fn := prog.Body[0].Stmt.(*ast.FunctionDeclaration).Function
	assert.True(t, fn.RelaxedAwait)
	assert.False(t, prog.TopLevelAwait)
	assert.False(t, prog.RelaxedAwait)
}

func TestAwaitAnywhereAsyncUnchanged(t *testing.T) {
	prog := mustParse(t, "async function f() { await foo }", nil, ext.AwaitAnywhere{})
	fn := prog.Body[0].Stmt.(*ast.FunctionDeclaration).Function
	await := fn.Body.List[0].Stmt.(*ast.ExpressionStatement).Expression.Expr.(*ast.AwaitExpression)
	assert.False(t, await.Relaxed)
	assert.False(t, fn.RelaxedAwait)
}

func TestAwaitAnywhereScript(t *testing.T) {
	cases := []struct {
		code  string
		await bool
	}{
		{"await foo", true},
		{"await 'x'", true},
		{"await new Foo()", true},
		{"await import_", true},
		{"await !x", true},
		{"await typeof x", true},
		{"await(x)", false},
		{"await[0]", false},
		{"await.x", false},
		{"await + 1", false},
		{"await++", false},
		{"await`x`", false},
		{"await\nfoo", false},
		{"await", false},
	}
	for _, c := range cases {
		prog := mustParse(t, c.code, script, ext.AwaitAnywhere{})
		_, isAwait := exprOf(prog.Body[0]).(*ast.AwaitExpression)
		assert.Equal(t, c.await, isAwait, c.code)
		assert.Equal(t, c.await, prog.TopLevelAwait, c.code)
	}
}

func TestAwaitAnywhereForAwait(t *testing.T) {
	for _, opts := range []*parser.Options{nil, script} {
		prog := mustParse(t, "for await (const x of xs) {}", opts, ext.AwaitAnywhere{})
		loop, ok := prog.Body[0].Stmt.(*ast.ForOfStatement)
		require.True(t, ok)
		assert.True(t, loop.Await)
		assert.True(t, prog.TopLevelAwait)
		assert.True(t, prog.RelaxedAwait)
	}
}

func TestAwaitAnywhereDisabled(t *testing.T) {
	se := syntaxError(t, "await foo", nil)
	assert.Equal(t, "Cannot use keyword 'await' outside an async function", se.Message)

	_, err := parse("await foo", script)
	assert.Error(t, err)

	prog := mustParse(t, "await(foo)", script)
	_, ok := exprOf(prog.Body[0]).(*ast.CallExpression)
	assert.True(t, ok)
}
