package ext

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
	"github.com/t14raptor/go-esm/token"
)

// ExportExtensions adds the export-from forms without braces:
//
//	export v from "m"
//	export * as ns from "m"
//	export v, * as ns from "m"
//	export v, {a, b as c} from "m"
type ExportExtensions struct{}

func (ExportExtensions) Name() string { return NameExportExtensions }

func (ExportExtensions) Install(h *parser.Hooks) error {
	return h.OnExport(parseExportExtension)
}

func parseExportExtension(p *parser.Parser, start ast.Idx) (*ast.Statement, bool) {
	pk := parser.Lookahead(p)
	switch {
	case p.Kind() == token.Multiply && pk.Is("as"):
		return parseExportNamespace(p, start), true
	case token.UnreservedWord(p.Kind()) && (pk.Is("from") || pk.Kind == token.Comma):
		return parseExportDefaultFrom(p, start), true
	}
	return nil, false
}

func parseExportNamespace(p *parser.Parser, start ast.Idx) *ast.Statement {
	p.Next()
	p.ExpectContextual("as")
	node := &ast.ExportAllDeclaration{Export: start, Exported: p.ParseExportName()}
	node.Source = p.ParseFromClause()
	p.Semicolon()
	node.End = p.PrevEnd()
	return p.DeclareExports(&ast.Statement{Stmt: node}, []*ast.Identifier{node.Exported})
}

func parseExportDefaultFrom(p *parser.Parser, start ast.Idx) *ast.Statement {
	specs := ast.ExportSpecifiers{&ast.ExportDefaultSpecifier{Exported: p.ParseIdentifier()}}

	namespace := false
	for p.Eat(token.Comma) {
		switch {
		case p.Kind() == token.Multiply && !namespace:
			namespace = true
			star := p.Offset()
			p.Next()
			p.ExpectContextual("as")
			specs = append(specs, &ast.ExportNamespaceSpecifier{Star: star, Exported: p.ParseExportName()})
		case p.Kind() == token.LeftBrace:
			specs = append(specs, p.ParseExportSpecifiers()...)
			// Braces end the clause.
			return finishExportFrom(p, start, specs)
		default:
			p.Unexpected()
		}
	}
	return finishExportFrom(p, start, specs)
}

func finishExportFrom(p *parser.Parser, start ast.Idx, specs ast.ExportSpecifiers) *ast.Statement {
	node := &ast.ExportNamedDeclaration{Export: start, Specifiers: specs, Source: p.ParseFromClause()}
	p.Semicolon()
	node.End = p.PrevEnd()
	return p.DeclareExports(&ast.Statement{Stmt: node}, parser.ExportedNamesOf(specs))
}
