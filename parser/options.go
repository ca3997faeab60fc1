package parser

import (
	"fmt"

	"github.com/t14raptor/go-esm/ast"
)

const (
	// DefaultEcmaVersion is used when Options.EcmaVersion is zero.
	DefaultEcmaVersion = 9
	// LatestEcmaVersion is the newest edition the parser understands.
	LatestEcmaVersion = 13
)

// Options configures a parse. The zero value parses ES2018 module code.
type Options struct {
	// EcmaVersion is the language edition, either as an edition number (3, 5,
	// 6..13) or as a year (2015..2022).
	EcmaVersion int `yaml:"ecmaVersion"`
	// SourceType is "module" or "script".
	SourceType string `yaml:"sourceType"`
	// AllowReturnOutsideFunction permits top-level return statements.
	AllowReturnOutsideFunction bool `yaml:"allowReturnOutsideFunction"`
	// EnableExportExtensions turns on the export extension grammar
	// (export v from, export * as ns from, and combinations).
	EnableExportExtensions bool `yaml:"enableExportExtensions"`
	// EnableImportExtensions turns on the import extension grammar (namespace
	// and named imports in the same declaration).
	EnableImportExtensions bool `yaml:"enableImportExtensions"`
}

// ResolveOptions fills in defaults and validates opts. A nil opts yields the
// defaults.
func ResolveOptions(opts *Options) (Options, error) {
	var o Options
	if opts != nil {
		o = *opts
	}

	switch {
	case o.EcmaVersion == 0:
		o.EcmaVersion = DefaultEcmaVersion
	case o.EcmaVersion >= 2015:
		o.EcmaVersion -= 2009
	}
	switch {
	case o.EcmaVersion == 3, o.EcmaVersion == 5:
	case o.EcmaVersion >= 6 && o.EcmaVersion <= LatestEcmaVersion:
	default:
		return o, fmt.Errorf("%w: unsupported ecmaVersion %d", ErrInvalidOptions, opts.EcmaVersion)
	}

	switch o.SourceType {
	case "":
		o.SourceType = ast.SourceTypeModule
	case ast.SourceTypeModule, ast.SourceTypeScript:
	default:
		return o, fmt.Errorf("%w: unknown sourceType %q", ErrInvalidOptions, o.SourceType)
	}

	if o.SourceType == ast.SourceTypeModule && o.EcmaVersion < 6 {
		return o, fmt.Errorf("%w: modules require ecmaVersion 6 or later", ErrInvalidOptions)
	}
	return o, nil
}

// Module reports whether the options select module code.
func (o Options) Module() bool {
	return o.SourceType == ast.SourceTypeModule
}
