package ext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/ext"
	"github.com/t14raptor/go-esm/parser"
)

func exportedNames(t *testing.T, code string, exts ...parser.Extension) []string {
	t.Helper()
	p, err := parser.New(code, nil)
	require.NoError(t, err)
	for _, e := range exts {
		require.NoError(t, p.Install(e))
	}
	_, err = p.Parse()
	require.NoError(t, err, code)
	return p.ExportedNames()
}

func TestExportDefaultFrom(t *testing.T) {
	prog := mustParse(t, `export v from "mod"`, nil, ext.ExportExtensions{})
	decl, ok := prog.Body[0].Stmt.(*ast.ExportNamedDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Specifiers, 1)

	spec, ok := decl.Specifiers[0].(*ast.ExportDefaultSpecifier)
	require.True(t, ok)
	assert.Equal(t, "v", spec.Exported.Name)
	assert.Equal(t, "mod", decl.Source.Value)
	assert.Nil(t, decl.Declaration)
	assert.Equal(t, ast.Idx(19), decl.End)
}

func TestExportNamespaceFrom(t *testing.T) {
	prog := mustParse(t, `export * as ns from "mod";`, nil, ext.ExportExtensions{})
	decl, ok := prog.Body[0].Stmt.(*ast.ExportAllDeclaration)
	require.True(t, ok)
	require.NotNil(t, decl.Exported)
	assert.Equal(t, "ns", decl.Exported.Name)
	assert.Equal(t, "mod", decl.Source.Value)
	assert.Equal(t, ast.Idx(26), decl.End)
}

func TestExportCombined(t *testing.T) {
	cases := []struct {
		code  string
		kinds []string
	}{
		{`export v, * as ns from "mod"`, []string{"default", "namespace"}},
		{`export v, {a, b as c} from "mod"`, []string{"default", "named", "named"}},
		{`export v, * as ns, {a} from "mod"`, []string{"default", "namespace", "named"}},
	}
	for _, c := range cases {
		prog := mustParse(t, c.code, nil, ext.ExportExtensions{})
		decl := prog.Body[0].Stmt.(*ast.ExportNamedDeclaration)

		var kinds []string
		for _, spec := range decl.Specifiers {
			switch spec.(type) {
			case *ast.ExportDefaultSpecifier:
				kinds = append(kinds, "default")
			case *ast.ExportNamespaceSpecifier:
				kinds = append(kinds, "namespace")
			case *ast.ExportSpecifier:
				kinds = append(kinds, "named")
			}
		}
		assert.Equal(t, c.kinds, kinds, c.code)
	}

	names := exportedNames(t, `export v, * as ns, {a, b as c} from "mod"`, ext.ExportExtensions{})
	assert.Equal(t, []string{"a", "c", "ns", "v"}, names)
}

func TestExportExtensionsKeepStandardForms(t *testing.T) {
	code := `export {a} from "m"; export * from "n"; export default 1;
export const x = 1; export let y = 2; export async function f() {} export class C {}`
	names := exportedNames(t, code, ext.ExportExtensions{})
	assert.Equal(t, []string{"C", "a", "default", "f", "x", "y"}, names)
}

func TestExportExtensionErrors(t *testing.T) {
	cases := []string{
		`export v, * as a, * as b from "m"`,
		`export v, w from "m"`,
		`export v, {a}, * as ns from "m"`,
		`export v`,
		`export * as ns`,
	}
	for _, code := range cases {
		_, err := parse(code, nil, ext.ExportExtensions{})
		assert.Error(t, err, code)
	}
}

func TestExportExtensionsDuplicate(t *testing.T) {
	code := `export v from "m"; export {v} from "n"`
	se := syntaxError(t, code, nil, ext.ExportExtensions{})
	assert.Equal(t, "Duplicate export 'v'", se.Message)
	assert.Equal(t, ast.Idx(27), se.Idx)

	prog := mustParse(t, code, nil, ext.ExportExtensions{}, ext.Tolerance{})
	_, ok := prog.Body[1].Stmt.(*ast.RecoveredStatement)
	assert.True(t, ok)
}

func TestExportExtensionsDisabled(t *testing.T) {
	for _, code := range []string{`export v from "m"`, `export v, {a} from "m"`} {
		_, err := parse(code, nil)
		assert.Error(t, err, code)
	}
	_, err := parse(`export * as ns from "m"`, nil)
	assert.Error(t, err)
}
