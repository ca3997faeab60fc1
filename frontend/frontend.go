/*
Package frontend is the entry point for parsing ECMAScript modules with the
grammar extensions installed.

	program, err := frontend.Parse(src, &parser.Options{
		EnableExportExtensions: true,
	})

Parse always installs AwaitAnywhere, DynamicImport and Tolerance; the export
and import extensions are opt-in through the options. The remaining functions
are small utilities shared by the extensions and their callers.
*/
package frontend

import (
	"github.com/tliron/commonlog"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/ext"
	"github.com/t14raptor/go-esm/parser"
)

var log = commonlog.GetLogger("esm.frontend")

// Parse parses code with options merged over the defaults (ecmaVersion 9,
// sourceType module) and returns the program.
func Parse(code string, options *parser.Options) (*ast.Program, error) {
	p, err := New(code, options)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// New returns a parser for code with the extensions selected by options
// installed, ready for Parse.
func New(code string, options *parser.Options) (*parser.Parser, error) {
	opts, err := parser.ResolveOptions(options)
	if err != nil {
		return nil, err
	}
	p, err := parser.New(code, &opts)
	if err != nil {
		return nil, err
	}
	if err := extend(p, opts); err != nil {
		return nil, err
	}
	return p, nil
}

// extensions returns the extensions to install for opts, in installation
// order.
func extensions(opts parser.Options) []parser.Extension {
	exts := []parser.Extension{
		ext.AwaitAnywhere{},
		ext.DynamicImport{},
		ext.Tolerance{},
	}
	if opts.EnableExportExtensions {
		exts = append(exts, ext.ExportExtensions{})
	}
	if opts.EnableImportExtensions {
		exts = append(exts, ext.ImportExtensions{})
	}
	return exts
}

func extend(p *parser.Parser, opts parser.Options) error {
	for _, e := range extensions(opts) {
		if err := p.Install(e); err != nil {
			return err
		}
	}
	log.Debugf("extensions: %v", p.Installed())
	return nil
}

// Lookahead returns the token after the cursor of p. p is not modified.
func Lookahead(p *parser.Parser) parser.Peek {
	return parser.Lookahead(p)
}
