package ext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/ext"
)

func TestToleranceKinds(t *testing.T) {
	code := "1 = 2; delete x; 017; with (a) {}\nexport var a; export {a}"
	prog := mustParse(t, code, nil, ext.Tolerance{})

	require.Len(t, prog.Irregularities, 5)
	var kinds []ast.IrregularityKind
	for _, irr := range prog.Irregularities {
		kinds = append(kinds, irr.Kind)
	}
	assert.Equal(t, ext.Tolerated, kinds)

	assert.Equal(t, ast.Idx(0), prog.Irregularities[0].Idx)
	assert.Equal(t, "Invalid left-hand side in assignment", prog.Irregularities[0].Message)
	assert.Equal(t, "Duplicate export 'a'", prog.Irregularities[4].Message)
}

func TestToleranceWrapsNodes(t *testing.T) {
	prog := mustParse(t, "delete x; export var a; export {a}", nil, ext.Tolerance{})
	require.Len(t, prog.Body, 3)

	rec, ok := exprOf(prog.Body[0]).(*ast.RecoveredExpression)
	require.True(t, ok)
	assert.Equal(t, ast.IrregularStrictDelete, rec.Irregularity.Kind)
	assert.Equal(t, ast.KindUnary, rec.Expression.Kind())

	stmt, ok := prog.Body[2].Stmt.(*ast.RecoveredStatement)
	require.True(t, ok)
	assert.Equal(t, ast.IrregularDuplicateExport, stmt.Irregularity.Kind)
	_, ok = stmt.Statement.Stmt.(*ast.ExportNamedDeclaration)
	assert.True(t, ok)
}

func TestToleranceScript(t *testing.T) {
	prog := mustParse(t, "'use strict'; eval = 1; arguments++", script, ext.Tolerance{})
	require.Len(t, prog.Irregularities, 2)
	assert.Equal(t, "Assigning to eval in strict mode", prog.Irregularities[0].Message)
	assert.Equal(t, "Assigning to arguments in strict mode", prog.Irregularities[1].Message)

	sloppy := mustParse(t, "eval = 1; with (a) {}", script, ext.Tolerance{})
	assert.Empty(t, sloppy.Irregularities)
}

func TestToleranceKeepsFatalErrors(t *testing.T) {
	cases := map[string]string{
		"function f(a, a) {}": "Argument name clash",
		"break":               "Unsyntactic break",
		"var [a];":            "Complex binding patterns require an initialization value",
		"({a = 1})":           "Shorthand property assignments are valid only in destructuring patterns",
	}
	for code, msg := range cases {
		se := syntaxError(t, code, nil, ext.Tolerance{})
		assert.Equal(t, msg, se.Message, code)
	}
}
