package parser

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

func (p *Parser) checkModuleItem(idx ast.Idx, topLevel bool) {
	if !p.InModule() {
		p.Raise(idx, "'import' and 'export' may appear only with 'sourceType: module'")
	}
	if !topLevel {
		p.Raise(idx, "'import' and 'export' may only appear at the top level")
	}
}

func (p *Parser) parseImportDeclaration(topLevel bool) *ast.Statement {
	idx := p.Expect(token.Import)
	p.checkModuleItem(idx, topLevel)
	stmt, ok := p.tryDeclaration(p.hooks.imprt, idx)
	if !ok {
		node := &ast.ImportDeclaration{Import: idx}
		if p.token.Kind == token.String {
			node.Source = p.ParseModuleSource()
		} else {
			node.Specifiers = p.parseImportClause()
			node.Source = p.ParseFromClause()
		}
		p.semicolon()
		node.End = p.prevEnd
		stmt = &ast.Statement{Stmt: node}
	}
	if decl, ok := stmt.Stmt.(*ast.ImportDeclaration); ok {
		p.declareImports(decl.Specifiers)
	}
	return stmt
}

func (p *Parser) declareImports(specs ast.ImportSpecifiers) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case *ast.ImportDefaultSpecifier:
			p.declareName(s.Local, bindLexical)
		case *ast.ImportNamespaceSpecifier:
			p.declareName(s.Local, bindLexical)
		case *ast.ImportSpecifier:
			p.declareName(s.Local, bindLexical)
		}
	}
}

func (p *Parser) parseImportClause() ast.ImportSpecifiers {
	var specs ast.ImportSpecifiers
	if p.isBindingId(p.token.Kind) {
		specs = append(specs, &ast.ImportDefaultSpecifier{Local: p.parseBindingIdentifier()})
		if !p.Eat(token.Comma) {
			return specs
		}
	}
	switch p.token.Kind {
	case token.Multiply:
		specs = append(specs, p.ParseImportNamespace())
	case token.LeftBrace:
		specs = append(specs, p.ParseImportSpecifiers()...)
	default:
		p.Unexpected()
	}
	return specs
}

// ParseImportNamespace parses `* as name`.
func (p *Parser) ParseImportNamespace() *ast.ImportNamespaceSpecifier {
	star := p.Expect(token.Multiply)
	p.ExpectContextual("as")
	return &ast.ImportNamespaceSpecifier{Star: star, Local: p.parseBindingIdentifier()}
}

// ParseImportSpecifiers parses a braced import specifier list.
func (p *Parser) ParseImportSpecifiers() ast.ImportSpecifiers {
	p.Expect(token.LeftBrace)
	var specs ast.ImportSpecifiers
	for p.token.Kind != token.RightBrace {
		kind := p.token.Kind
		imported := p.parseIdentifierName()
		local := imported
		if p.EatContextual("as") {
			local = p.parseBindingIdentifier()
		} else {
			if !p.isBindingId(kind) {
				p.Raise(imported.Idx, "Unexpected keyword %s", quote(imported.Name))
			}
			p.checkUnreserved(local)
			p.checkBindingName(local)
		}
		specs = append(specs, &ast.ImportSpecifier{Imported: imported, Local: local})
		if p.token.Kind != token.RightBrace {
			p.Expect(token.Comma)
		}
	}
	p.Expect(token.RightBrace)
	return specs
}

func (p *Parser) parseExportDeclaration(topLevel bool) *ast.Statement {
	idx := p.Expect(token.Export)
	p.checkModuleItem(idx, topLevel)
	if stmt, ok := p.tryDeclaration(p.hooks.export, idx); ok {
		return stmt
	}

	switch p.token.Kind {
	case token.Multiply:
		return p.parseExportAll(idx)
	case token.Default:
		return p.parseExportDefault(idx)
	case token.LeftBrace:
		node := &ast.ExportNamedDeclaration{Export: idx, Specifiers: p.ParseExportSpecifiers()}
		if p.IsContextual("from") {
			node.Source = p.ParseFromClause()
		} else {
			p.checkLocalExports(node.Specifiers)
		}
		p.semicolon()
		node.End = p.prevEnd
		return p.DeclareExports(&ast.Statement{Stmt: node}, ExportedNamesOf(node.Specifiers))
	}

	node := &ast.ExportNamedDeclaration{Export: idx}
	var names []*ast.Identifier
	switch p.token.Kind {
	case token.Var, token.Const:
		node.Declaration = p.parseVariableStatement(p.token.Kind)
	case token.Let:
		if !p.isLetDeclaration() {
			p.Unexpected()
		}
		node.Declaration = p.parseVariableStatement(token.Let)
	case token.Function:
		fn := p.parseFunction(true, false, p.token.Idx0, false)
		p.declareFunction(fn)
		node.Declaration = &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: fn}}
		names = append(names, fn.Name)
	case token.Class:
		class := p.parseClass(true, false)
		p.declareName(class.Name, bindLexical)
		node.Declaration = &ast.Statement{Stmt: &ast.ClassDeclaration{Class: class}}
		names = append(names, class.Name)
	default:
		if !p.isAsyncFunction() {
			p.Unexpected()
		}
		fn := p.parseMaybeAsyncFunction(true)
		p.declareFunction(fn)
		node.Declaration = &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: fn}}
		names = append(names, fn.Name)
	}
	if decl, ok := node.Declaration.Stmt.(*ast.VariableDeclaration); ok {
		for _, d := range decl.List {
			names = append(names, boundNames(ast.Expressions{*d.Target})...)
		}
	}
	node.End = p.prevEnd
	return p.DeclareExports(&ast.Statement{Stmt: node}, names)
}

func (p *Parser) parseExportAll(idx ast.Idx) *ast.Statement {
	p.Expect(token.Multiply)
	node := &ast.ExportAllDeclaration{Export: idx}
	if p.IsContextual("as") {
		if p.opts.EcmaVersion < 11 {
			p.Unexpected()
		}
		p.next()
		node.Exported = p.ParseExportName()
	}
	node.Source = p.ParseFromClause()
	p.semicolon()
	node.End = p.prevEnd

	stmt := &ast.Statement{Stmt: node}
	if node.Exported != nil {
		return p.DeclareExports(stmt, []*ast.Identifier{node.Exported})
	}
	return stmt
}

func (p *Parser) parseExportDefault(idx ast.Idx) *ast.Statement {
	def := p.Expect(token.Default)
	node := &ast.ExportDefaultDeclaration{Export: idx}
	switch {
	case p.token.Kind == token.Function:
		fn := p.parseFunction(true, false, p.token.Idx0, true)
		p.declareFunction(fn)
		node.Declaration = &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: fn}}
	case p.token.Kind == token.Class:
		class := p.parseClass(true, true)
		if class.Name != nil {
			p.declareName(class.Name, bindLexical)
		}
		node.Declaration = &ast.Statement{Stmt: &ast.ClassDeclaration{Class: class}}
	case p.isAsyncFunction():
		start := p.token.Idx0
		p.next()
		fn := p.parseFunction(true, true, start, true)
		p.declareFunction(fn)
		node.Declaration = &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: fn}}
	default:
		node.Expression = p.ParseAssignmentExpression()
		p.semicolon()
	}
	node.End = p.prevEnd
	return p.DeclareExports(&ast.Statement{Stmt: node}, []*ast.Identifier{{Idx: def, Name: "default"}})
}

// ParseExportSpecifiers parses a braced export specifier list.
func (p *Parser) ParseExportSpecifiers() ast.ExportSpecifiers {
	p.Expect(token.LeftBrace)
	var specs ast.ExportSpecifiers
	for p.token.Kind != token.RightBrace {
		local := p.ParseExportName()
		exported := local
		if p.EatContextual("as") {
			exported = p.ParseExportName()
		}
		specs = append(specs, &ast.ExportSpecifier{Local: local, Exported: exported})
		if p.token.Kind != token.RightBrace {
			p.Expect(token.Comma)
		}
	}
	p.Expect(token.RightBrace)
	return specs
}

// ParseExportName parses a name in an export clause. Any identifier name is
// accepted, including reserved words.
func (p *Parser) ParseExportName() *ast.Identifier {
	return p.parseIdentifierName()
}

// checkLocalExports rejects reserved words exported from the module itself
// and tracks names that must be declared by the end of the module.
func (p *Parser) checkLocalExports(specs ast.ExportSpecifiers) {
	for _, spec := range specs {
		s, ok := spec.(*ast.ExportSpecifier)
		if !ok {
			continue
		}
		name := s.Local.Name
		if tkn, _ := token.LiteralKeyword(name); token.Reserved(tkn) || token.IsStrictReserved(name) || name == "await" {
			p.Raise(s.Local.Idx, "Unexpected keyword %s", quote(name))
		}
		p.checkLocalExport(s.Local)
	}
}

// ExportedNamesOf returns the names declared by export specifiers.
func ExportedNamesOf(specs ast.ExportSpecifiers) []*ast.Identifier {
	var names []*ast.Identifier
	for _, spec := range specs {
		switch s := spec.(type) {
		case *ast.ExportSpecifier:
			names = append(names, s.Exported)
		case *ast.ExportDefaultSpecifier:
			names = append(names, s.Exported)
		case *ast.ExportNamespaceSpecifier:
			names = append(names, s.Exported)
		}
	}
	return names
}

// DeclareExports records names as exported by stmt. When a name was already
// exported and the duplicate is tolerated, stmt is returned wrapped in a
// RecoveredStatement.
func (p *Parser) DeclareExports(stmt *ast.Statement, names []*ast.Identifier) *ast.Statement {
	recovered := false
	var first ast.Irregularity
	for _, id := range names {
		if irr, ok := p.DeclareExport(id.Name, id.Idx); !ok && !recovered {
			recovered = true
			first = irr
		}
	}
	if recovered {
		return &ast.Statement{Stmt: &ast.RecoveredStatement{Statement: stmt, Irregularity: first}}
	}
	return stmt
}
