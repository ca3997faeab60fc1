package parser

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-esm/ast"
)

type label struct {
	name string
	loop bool
}

// scope holds the context of the function (or program) being parsed.
type scope struct {
	outer *scope

	allowIn        bool
	inIteration    bool
	inSwitch       bool
	inFunction     bool
	inFuncParams   bool
	inClassField   bool
	inStaticBlock  bool
	allowAwait     bool
	allowYield     bool
	allowSuper     bool
	allowSuperCall bool
	allowNewTarget bool
	strict         bool

	// relaxedAwait is set when an await was accepted only by relaxation.
	relaxedAwait bool

	labels []label
}

// functionKind describes the function whose scope is being opened.
type functionKind struct {
	async, generator bool
	arrow            bool
	method           bool
	constructor      bool
	derived          bool
	staticBlock      bool
}

type blockKind int

const (
	blockPlain blockKind = iota
	blockTop
	blockFunction
	blockStatic
)

type bindingKind int

const (
	bindVar bindingKind = iota
	bindLexical
	bindFunction
	bindSimpleCatch
)

// blockScope records the names declared in one lexical scope. Program,
// function and static block scopes also receive hoisted var names.
type blockScope struct {
	outer *blockScope
	kind  blockKind
	// simpleCatch marks a catch clause whose parameter is a plain
	// identifier; a var of the same name is then allowed in its body.
	simpleCatch bool

	vars, lexical, functions []string
}

func (p *Parser) enterBlock(kind blockKind) {
	p.blocks = &blockScope{outer: p.blocks, kind: kind}
}

func (p *Parser) exitBlock() {
	p.blocks = p.blocks.outer
}

// functionsAsVar reports whether sloppy function declarations in s behave
// like var declarations.
func (p *Parser) functionsAsVar(s *blockScope) bool {
	return s.kind == blockFunction || s.kind == blockTop && !p.InModule()
}

// declareName binds id in the current block and raises when the binding
// conflicts with an earlier declaration.
func (p *Parser) declareName(id *ast.Identifier, kind bindingKind) {
	name := id.Name
	s := p.blocks
	redeclared := false
	switch kind {
	case bindLexical:
		redeclared = slices.Contains(s.lexical, name) || slices.Contains(s.functions, name) ||
			slices.Contains(s.vars, name)
		s.lexical = append(s.lexical, name)
		if s.kind == blockTop {
			delete(p.undefinedExports, name)
		}
	case bindSimpleCatch:
		s.lexical = append(s.lexical, name)
	case bindFunction:
		redeclared = slices.Contains(s.lexical, name)
		if !p.functionsAsVar(s) {
			redeclared = redeclared || slices.Contains(s.vars, name)
		}
		s.functions = append(s.functions, name)
	default:
		for ; s != nil; s = s.outer {
			if slices.Contains(s.lexical, name) && !(s.simpleCatch && s.lexical[0] == name) ||
				!p.functionsAsVar(s) && slices.Contains(s.functions, name) {
				redeclared = true
				break
			}
			s.vars = append(s.vars, name)
			if s.kind == blockTop {
				delete(p.undefinedExports, name)
			}
			if s.kind != blockPlain {
				break
			}
		}
	}
	if redeclared {
		p.Raise(id.Idx, "Identifier %s has already been declared", quote(name))
	}
}

// declarePattern binds every name in a declaration target.
func (p *Parser) declarePattern(target *ast.Expression, kind bindingKind) {
	for _, id := range boundNames(ast.Expressions{*target}) {
		p.declareName(id, kind)
	}
}

// declareFunction binds the name of a function declaration in statement
// list position.
func (p *Parser) declareFunction(fn *ast.FunctionLiteral) {
	if fn.Name == nil {
		return
	}
	kind := bindFunction
	if p.scope.strict || fn.Async || fn.Generator {
		kind = bindLexical
		if p.functionsAsVar(p.blocks) {
			kind = bindVar
		}
	}
	p.declareName(fn.Name, kind)
}

// checkLocalExport remembers an exported local name that is not declared at
// the top level yet. Names still undeclared at the end of the module are
// reported.
func (p *Parser) checkLocalExport(id *ast.Identifier) {
	top := p.blocks
	for top.outer != nil {
		top = top.outer
	}
	if slices.Contains(top.lexical, id.Name) || slices.Contains(top.vars, id.Name) {
		return
	}
	if _, ok := p.undefinedExports[id.Name]; !ok {
		p.undefinedExportOrder = append(p.undefinedExportOrder, id.Name)
	}
	p.undefinedExports[id.Name] = id
}

func (p *Parser) checkUndefinedExports() {
	for _, name := range p.undefinedExportOrder {
		if id, ok := p.undefinedExports[name]; ok {
			p.Raise(id.Idx, "Export %s is not defined", quote(name))
		}
	}
}

func (p *Parser) openScope(kind functionKind) {
	outer := p.scope
	s := &scope{
		outer:         outer,
		allowIn:       true,
		inFunction:    true,
		inStaticBlock: kind.staticBlock,
		strict:        outer.strict,
		allowAwait:    kind.async,
		allowYield:    kind.generator,
	}
	if kind.arrow {
		s.allowSuper = outer.allowSuper
		s.allowSuperCall = outer.allowSuperCall
		s.allowNewTarget = outer.allowNewTarget
		s.inClassField = outer.inClassField
	} else {
		s.allowSuper = kind.method
		s.allowSuperCall = kind.constructor && kind.derived
		s.allowNewTarget = true
	}
	p.scope = s

	if kind.staticBlock {
		p.enterBlock(blockStatic)
	} else {
		p.enterBlock(blockFunction)
	}
}

func (p *Parser) closeScope() {
	p.exitBlock()
	p.scope = p.scope.outer
}

// inFunction reports whether the cursor is inside a function.
func (p *Parser) inFunction() bool {
	return p.scope.inFunction
}

func (p *Parser) hasLabel(name string) (label, bool) {
	for _, l := range p.scope.labels {
		if l.name == name {
			return l, true
		}
	}
	return label{}, false
}

// markRelaxedAwait records a relaxed await in the current function and, at
// top level, on the program.
func (p *Parser) markRelaxedAwait(expr *ast.AwaitExpression) {
	expr.Relaxed = true
	p.scope.relaxedAwait = true
	if !p.scope.inFunction {
		p.program.RelaxedAwait = true
	}
}
