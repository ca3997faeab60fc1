package frontend_test

import (
	"errors"
	"os"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/ext"
	"github.com/t14raptor/go-esm/frontend"
	"github.com/t14raptor/go-esm/parser"
)

type parseCase struct {
	Name    string          `yaml:"name"`
	Code    string          `yaml:"code"`
	Options *parser.Options `yaml:"options"`
	Fails   bool            `yaml:"fails"`
	Message string          `yaml:"message"`
}

func loadYAML(t *testing.T, path string, out interface{}) {
	t.Helper()
	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(buf, out))
}

func TestParseCases(t *testing.T) {
	var cases []parseCase
	loadYAML(t, "testdata/parse.yaml", &cases)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		prog, err := frontend.Parse(c.Code, c.Options)
		if !c.Fails && c.Message == "" {
			assert.NoError(t, err, c.Name)
			assert.NotNil(t, prog, c.Name)
			continue
		}
		if !assert.Error(t, err, c.Name) {
			continue
		}
		if c.Message != "" {
			var se *parser.SyntaxError
			require.True(t, errors.As(err, &se), c.Name)
			assert.Equal(t, c.Message, se.Message, c.Name)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	prog, err := frontend.Parse("await import('m')", nil)
	require.NoError(t, err)
	assert.Equal(t, ast.SourceTypeModule, prog.SourceType)
	assert.True(t, prog.TopLevelAwait)
	assert.True(t, prog.RelaxedAwait)

	p, err := frontend.New("", nil)
	require.NoError(t, err)
	assert.Equal(t, parser.DefaultEcmaVersion, p.Options().EcmaVersion)
	assert.Equal(t, ast.SourceTypeModule, p.Options().SourceType)
}

func TestParseInvalidOptions(t *testing.T) {
	_, err := frontend.Parse("", &parser.Options{EcmaVersion: 4})
	assert.True(t, errors.Is(err, parser.ErrInvalidOptions))

	_, err = frontend.New("", &parser.Options{SourceType: "json"})
	assert.True(t, errors.Is(err, parser.ErrInvalidOptions))
}

func TestExtensionOrder(t *testing.T) {
	p, err := frontend.New("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		ext.NameAwaitAnywhere,
		ext.NameDynamicImport,
		ext.NameTolerance,
	}, p.Installed())

	p, err = frontend.New("", &parser.Options{
		EnableExportExtensions: true,
		EnableImportExtensions: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		ext.NameAwaitAnywhere,
		ext.NameDynamicImport,
		ext.NameTolerance,
		ext.NameExportExtensions,
		ext.NameImportExtensions,
	}, p.Installed())

	p, err = frontend.New("", &parser.Options{EnableImportExtensions: true})
	require.NoError(t, err)
	assert.Equal(t, ext.NameImportExtensions, p.Installed()[3])
}

func TestNewReturnsUnparsedParser(t *testing.T) {
	p, err := frontend.New("export v from 'm'", &parser.Options{EnableExportExtensions: true})
	require.NoError(t, err)
	assert.Nil(t, p.Program())

	prog, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, prog, p.Program())
	assert.Equal(t, []string{"v"}, p.ExportedNames())
}

func TestParseDeterministic(t *testing.T) {
	code := `import d, {a as b} from "m"
export const [x, {y = 1}] = await import("n")
with (o) { delete q }
label: for await (const z of zs) { if (z) break label }`

	first, err := frontend.Parse(code, nil)
	require.NoError(t, err)
	second, err := frontend.Parse(code, nil)
	require.NoError(t, err)

	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Errorf("two parses differ:\n%s", pretty.Sprint(diff))
	}
	assert.Len(t, first.Irregularities, 2)
}
