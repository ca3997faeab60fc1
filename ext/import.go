package ext

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
	"github.com/t14raptor/go-esm/token"
)

// ImportExtensions lets a namespace import be combined with named imports:
//
//	import * as ns, {a} from "m"
//	import d, * as ns, {a} from "m"
//
// Clauses keep the order default, namespace, named; each appears at most
// once and the named list is always last.
type ImportExtensions struct{}

func (ImportExtensions) Name() string { return NameImportExtensions }

func (ImportExtensions) Install(h *parser.Hooks) error {
	return h.OnImport(parseImportExtension)
}

func parseImportExtension(p *parser.Parser, start ast.Idx) (*ast.Statement, bool) {
	if p.Kind() == token.String {
		return nil, false
	}

	var specs ast.ImportSpecifiers
	if token.UnreservedWord(p.Kind()) {
		specs = append(specs, &ast.ImportDefaultSpecifier{Local: p.ParseBindingIdentifier()})
		if !p.Eat(token.Comma) {
			return finishImport(p, start, specs), true
		}
	}

	if p.Kind() == token.Multiply {
		specs = append(specs, p.ParseImportNamespace())
		if !p.Eat(token.Comma) {
			return finishImport(p, start, specs), true
		}
	}
	if p.Kind() != token.LeftBrace {
		p.Unexpected()
	}
	specs = append(specs, p.ParseImportSpecifiers()...)
	return finishImport(p, start, specs), true
}

func finishImport(p *parser.Parser, start ast.Idx, specs ast.ImportSpecifiers) *ast.Statement {
	node := &ast.ImportDeclaration{Import: start, Specifiers: specs, Source: p.ParseFromClause()}
	p.Semicolon()
	node.End = p.PrevEnd()
	return &ast.Statement{Stmt: node}
}
