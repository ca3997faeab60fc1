/*
Package parser implements a parser for ECMAScript source code with explicit
extension points for grammar extensions.

	p, err := parser.New(src, &parser.Options{SourceType: "module"})
	if err != nil {
		return err
	}
	program, err := p.Parse()

A Parser is single-use and not safe for concurrent use. Extensions are
installed through Install before Parse is called.
*/
package parser

import (
	"errors"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser/scanner"
	"github.com/t14raptor/go-esm/token"
)

// ErrReused is returned by Parse on a parser that has already run.
var ErrReused = errors.New("parser has already been used")

type Parser struct {
	str  string
	opts Options

	scanner *scanner.Scanner
	token   scanner.Token
	prevEnd ast.Idx

	scope  *scope
	blocks *blockScope
	hooks  Hooks

	program *ast.Program
	exports map[string]ast.Idx
	// Locally exported names not declared at the top level yet.
	undefinedExports     map[string]*ast.Identifier
	undefinedExportOrder []string

	// Shorthand initializers ({a = 1}) not yet claimed by a pattern.
	coverInits []*ast.PropertyShort
	// coverDepth is non-zero while parsing something that may still turn
	// into a pattern.
	coverDepth    int
	parenthesized map[ast.Expr]bool
	// Comma positions after a trailing spread in array and object literals.
	trailingComma map[ast.Expr]ast.Idx
	// First yield and await expressions inside a possible arrow parameter
	// list, or noIdx.
	yieldPos, awaitPos ast.Idx
}

// New creates a parser for src. A nil opts selects the defaults.
func New(src string, opts *Options) (*Parser, error) {
	o, err := ResolveOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Parser{
		str:              src,
		opts:             o,
		scanner:          scanner.NewScanner(src),
		exports:          make(map[string]ast.Idx),
		undefinedExports: make(map[string]*ast.Identifier),
		parenthesized:    make(map[ast.Expr]bool),
		trailingComma:    make(map[ast.Expr]ast.Idx),
		yieldPos:         noIdx,
		awaitPos:         noIdx,
	}, nil
}

// Parse parses the whole source as a Program.
func (p *Parser) Parse() (program *ast.Program, err error) {
	if p.hooks.frozen {
		return nil, ErrReused
	}
	p.hooks.frozen = true

	log.Debugf("parsing %d bytes as %s (ecma %d, extensions %v)",
		len(p.str), p.opts.SourceType, p.opts.EcmaVersion, p.hooks.installed)
	err = p.Catch(func() {
		program = p.parseProgram()
	})
	if err != nil {
		return nil, err
	}
	return program, nil
}

// Options returns the resolved options.
func (p *Parser) Options() Options {
	return p.opts
}

// Source returns the text being parsed.
func (p *Parser) Source() string {
	return p.str
}

// Program returns the program under construction, or nil before Parse.
func (p *Parser) Program() *ast.Program {
	return p.program
}

// Strict reports whether the cursor is in strict mode code.
func (p *Parser) Strict() bool {
	return p.scope != nil && p.scope.strict
}

// InModule reports whether module code is being parsed.
func (p *Parser) InModule() bool {
	return p.opts.Module()
}

// Kind returns the kind of the current token.
func (p *Parser) Kind() token.Token {
	return p.token.Kind
}

// Value returns the cooked value of the current token, or its raw text.
func (p *Parser) Value() string {
	return p.token.String(p.scanner)
}

// Raw returns the source text of the current token.
func (p *Parser) Raw() string {
	return p.token.Raw(p.scanner)
}

// Offset returns the start of the current token.
func (p *Parser) Offset() ast.Idx {
	return p.token.Idx0
}

// End returns the end of the current token.
func (p *Parser) End() ast.Idx {
	return p.token.Idx1
}

// PrevEnd returns the end of the previous token.
func (p *Parser) PrevEnd() ast.Idx {
	return p.prevEnd
}

// OnNewLine reports whether a line terminator precedes the current token.
func (p *Parser) OnNewLine() bool {
	return p.token.OnNewLine
}

// Next advances to the next token.
func (p *Parser) Next() {
	p.next()
}

func (p *Parser) next() {
	p.prevEnd = p.token.Idx1
	p.scanner.Next()
	p.token = p.scanner.Token
	if p.token.Kind == token.Illegal {
		p.errorUnexpectedToken(p.token)
	}
}

// Eat consumes the current token if it has kind k.
func (p *Parser) Eat(k token.Token) bool {
	if p.token.Kind == k {
		p.next()
		return true
	}
	return false
}

// Expect consumes a token of kind k, failing otherwise, and returns its
// start.
func (p *Parser) Expect(k token.Token) ast.Idx {
	idx := p.token.Idx0
	if p.token.Kind != k {
		p.errorUnexpectedToken(p.token)
	}
	p.next()
	return idx
}

// IsContextual reports whether the current token is the unescaped word name.
func (p *Parser) IsContextual(name string) bool {
	return token.ID(p.token.Kind) && !p.token.HasEscape && p.token.Value == name
}

// EatContextual consumes the word name if it is the current token.
func (p *Parser) EatContextual(name string) bool {
	if p.IsContextual(name) {
		p.next()
		return true
	}
	return false
}

// ExpectContextual consumes the word name, failing otherwise.
func (p *Parser) ExpectContextual(name string) {
	if !p.EatContextual(name) {
		p.Unexpected()
	}
}

func (p *Parser) canInsertSemicolon() bool {
	return p.token.Kind == token.Eof || p.token.Kind == token.RightBrace || p.token.OnNewLine
}

// Semicolon consumes a statement terminator, inserting one where allowed.
func (p *Parser) Semicolon() {
	p.semicolon()
}

func (p *Parser) semicolon() {
	if !p.Eat(token.Semicolon) && !p.canInsertSemicolon() {
		p.Unexpected()
	}
}

// DeclareExport records an exported name. A second export of the same name is
// a recoverable error; ok reports whether the name was new.
func (p *Parser) DeclareExport(name string, idx ast.Idx) (irr ast.Irregularity, ok bool) {
	if _, dup := p.exports[name]; dup {
		return p.RaiseRecoverable(ast.IrregularDuplicateExport, idx, "Duplicate export "+quote(name)), false
	}
	p.exports[name] = idx
	return irr, true
}

// ExportedNames returns the names exported so far, sorted.
func (p *Parser) ExportedNames() []string {
	names := maps.Keys(p.exports)
	slices.Sort(names)
	return names
}

func (p *Parser) parseProgram() *ast.Program {
	p.program = &ast.Program{SourceType: p.opts.SourceType}
	p.scope = &scope{
		allowIn:    true,
		strict:     p.opts.Module(),
		allowAwait: p.opts.Module() && p.opts.EcmaVersion >= 13,
	}
	p.enterBlock(blockTop)
	p.next()

	p.program.Body = p.parseSourceElements(token.Eof, true, true)
	if p.InModule() {
		p.checkUndefinedExports()
	}
	p.program.End = ast.Idx(len(p.str))
	if p.scope.relaxedAwait {
		p.program.RelaxedAwait = true
	}
	return p.program
}
