package ext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/ext"
)

func importKinds(decl *ast.ImportDeclaration) []string {
	var kinds []string
	for _, spec := range decl.Specifiers {
		switch spec.(type) {
		case *ast.ImportDefaultSpecifier:
			kinds = append(kinds, "default")
		case *ast.ImportNamespaceSpecifier:
			kinds = append(kinds, "namespace")
		case *ast.ImportSpecifier:
			kinds = append(kinds, "named")
		}
	}
	return kinds
}

func TestImportExtensions(t *testing.T) {
	cases := []struct {
		code  string
		kinds []string
	}{
		{`import * as ns, {a, b as c} from "m"`, []string{"namespace", "named", "named"}},
		{`import d, * as ns, {a} from "m"`, []string{"default", "namespace", "named"}},
		{`import d, {a} from "m"`, []string{"default", "named"}},
		{`import d from "m"`, []string{"default"}},
		{`import * as ns from "m"`, []string{"namespace"}},
		{`import {} from "m"`, nil},
		{`import "m"`, nil},
	}
	for _, c := range cases {
		prog := mustParse(t, c.code, nil, ext.ImportExtensions{})
		decl, ok := prog.Body[0].Stmt.(*ast.ImportDeclaration)
		require.True(t, ok, c.code)
		assert.Equal(t, c.kinds, importKinds(decl), c.code)
		assert.Equal(t, "m", decl.Source.Value, c.code)
		assert.Equal(t, ast.Idx(len(c.code)), decl.End, c.code)
	}
}

func TestImportExtensionsLocalNames(t *testing.T) {
	prog := mustParse(t, `import d, * as ns, {a as b} from "m"`, nil, ext.ImportExtensions{})
	decl := prog.Body[0].Stmt.(*ast.ImportDeclaration)
	require.Len(t, decl.Specifiers, 3)
	assert.Equal(t, "d", decl.Specifiers[0].(*ast.ImportDefaultSpecifier).Local.Name)
	assert.Equal(t, "ns", decl.Specifiers[1].(*ast.ImportNamespaceSpecifier).Local.Name)
	named := decl.Specifiers[2].(*ast.ImportSpecifier)
	assert.Equal(t, "a", named.Imported.Name)
	assert.Equal(t, "b", named.Local.Name)
}

func TestImportExtensionErrors(t *testing.T) {
	cases := []string{
		`import * as a, * as b from "m"`,
		`import {a}, {b} from "m"`,
		`import d, e from "m"`,
		`import * as ns, from "m"`,
		`import {a}, d from "m"`,
		`import d, * as ns, {a}, {b} from "m"`,
	}
	for _, code := range cases {
		_, err := parse(code, nil, ext.ImportExtensions{})
		assert.Error(t, err, code)
	}

	se := syntaxError(t, `import {a}, * as ns from "m"`, nil, ext.ImportExtensions{})
	assert.Equal(t, "Unexpected token", se.Message)
	assert.Equal(t, ast.Idx(10), se.Idx)

	se = syntaxError(t, `import * as ns, {a} from "m"`, script, ext.ImportExtensions{})
	assert.Equal(t, "'import' and 'export' may appear only with 'sourceType: module'", se.Message)
}

func TestImportExtensionsDisabled(t *testing.T) {
	_, err := parse(`import * as ns, {a} from "m"`, nil)
	assert.Error(t, err)
}

func TestImportExtensionsWithDynamicImport(t *testing.T) {
	prog := mustParse(t, `import * as ns, {a} from "m"; import("n")`, nil,
		ext.DynamicImport{}, ext.ImportExtensions{})
	require.Len(t, prog.Body, 2)
	assert.True(t, ast.IsDynamicImport(exprOf(prog.Body[1])))
}
