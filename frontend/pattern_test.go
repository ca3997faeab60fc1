package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/frontend"
)

func declarationTarget(t *testing.T, code string) *ast.Expression {
	t.Helper()
	prog, err := frontend.Parse(code, nil)
	require.NoError(t, err)
	return prog.Body[0].Stmt.(*ast.VariableDeclaration).List[0].Target
}

func TestGetNamesFromPattern(t *testing.T) {
	cases := []struct {
		code string
		want []string
	}{
		{"var a = 1", []string{"a"}},
		{"var [a, , b] = c", []string{"a", "b"}},
		{"var [a = 1, ...b] = c", []string{"a", "b"}},
		{"var {a, b: c} = d", []string{"a", "c"}},
		{"var {a, b: [c, , ...d], e = 1, ...f} = o", []string{"a", "f", "c", "e", "d"}},
		{"var {b: x, a} = o", []string{"x", "a"}},
		{"var {a = 1, b: c} = o", []string{"c", "a"}},
		{"var {a: b = 1, c} = o", []string{"c", "b"}},
		{"var [{a = 1}, b] = o", []string{"b", "a"}},
		{"var [a, [b], ...[c]] = o", []string{"a", "b", "c"}},
		{"var {a: {b: {c}}} = o", []string{"c"}},
		{"var [[a], {b}] = o", []string{"a", "b"}},
	}
	for _, c := range cases {
		got := frontend.GetNamesFromPattern(declarationTarget(t, c.code))
		assert.Equal(t, c.want, got, c.code)
	}
}

func TestGetNamesFromParameters(t *testing.T) {
	prog, err := frontend.Parse("function f(a, [b] = [], {c: d = 1}, ...e) {}", nil)
	require.NoError(t, err)
	params := prog.Body[0].Stmt.(*ast.FunctionDeclaration).Function.ParameterList.List

	var names []string
	for i := range params {
		names = append(names, frontend.GetNamesFromPattern(&params[i])...)
	}
	assert.Equal(t, []string{"a", "b", "d", "e"}, names)
}

func TestGetNamesFromPatternNodes(t *testing.T) {
	assert.Equal(t, []string{"x"}, frontend.GetNamesFromPattern(&ast.Identifier{Name: "x"}))
	assert.Empty(t, frontend.GetNamesFromPattern(&ast.Expression{}))
	assert.Empty(t, frontend.GetNamesFromPattern(&ast.NumberLiteral{Value: 1}))

	recovered := &ast.RecoveredExpression{
		Expression: &ast.Expression{Expr: &ast.Identifier{Name: "eval"}},
	}
	assert.Equal(t, []string{"eval"}, frontend.GetNamesFromPattern(recovered))

	assign := &ast.AssignPattern{
		Left:  &ast.Expression{Expr: &ast.Identifier{Name: "a"}},
		Right: &ast.Expression{Expr: &ast.Identifier{Name: "b"}},
	}
	assert.Equal(t, []string{"a"}, frontend.GetNamesFromPattern(assign))
}
