package parser

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

// parseSourceElements parses statement list items up to end. With directives
// set, the leading string expression statements are read as a directive
// prologue.
func (p *Parser) parseSourceElements(end token.Token, directives, topLevel bool) ast.Statements {
	var list ast.Statements
	for p.token.Kind != end {
		if p.token.Kind == token.Eof {
			p.Unexpected()
		}
		stmt := p.parseStatementListItem(topLevel)
		if directives {
			directives = p.applyDirective(stmt)
		}
		list = append(list, *stmt)
	}
	return list
}

// applyDirective marks stmt as a directive when it is an unparenthesized
// string literal statement and reports whether the prologue continues.
func (p *Parser) applyDirective(stmt *ast.Statement) bool {
	es, ok := stmt.Stmt.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	lit, ok := es.Expression.Expr.(*ast.StringLiteral)
	if !ok || p.parenthesized[lit] {
		return false
	}
	es.Directive = lit.Raw[1 : len(lit.Raw)-1]
	if es.Directive == "use strict" {
		p.scope.strict = true
	}
	return true
}

// isLetDeclaration reports whether the let at the cursor starts a lexical
// declaration rather than an identifier expression.
func (p *Parser) isLetDeclaration() bool {
	if p.token.Kind != token.Let || p.token.HasEscape || p.opts.EcmaVersion < 6 {
		return false
	}
	pk := p.peek()
	switch pk.Kind {
	case token.LeftBracket, token.LeftBrace:
		return true
	case token.Yield, token.Await, token.Let:
		return true
	}
	return token.UnreservedWord(pk.Kind)
}

func (p *Parser) isAsyncFunction() bool {
	if !p.IsContextual("async") || p.opts.EcmaVersion < 8 {
		return false
	}
	pk := p.peek()
	return pk.Kind == token.Function && !pk.OnNewLine
}

// isImportExpression reports whether the import at the cursor starts an
// expression (import.meta or a call) rather than a declaration.
func (p *Parser) isImportExpression() bool {
	switch p.peek().Kind {
	case token.LeftParenthesis, token.Period:
		return true
	}
	return false
}

func (p *Parser) parseStatementListItem(topLevel bool) *ast.Statement {
	if stmt, ok := p.tryStatement(); ok {
		return stmt
	}

	switch p.token.Kind {
	case token.Function:
		fn := p.parseFunction(true, false, p.token.Idx0, false)
		p.declareFunction(fn)
		return &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: fn}}
	case token.Class:
		class := p.parseClass(true, false)
		p.declareName(class.Name, bindLexical)
		return &ast.Statement{Stmt: &ast.ClassDeclaration{Class: class}}
	case token.Const:
		return p.parseVariableStatement(token.Const)
	case token.Let:
		if p.isLetDeclaration() {
			return p.parseVariableStatement(token.Let)
		}
	case token.Import:
		if !p.isImportExpression() {
			return p.parseImportDeclaration(topLevel)
		}
	case token.Export:
		return p.parseExportDeclaration(topLevel)
	}
	if p.isAsyncFunction() {
		fn := p.parseMaybeAsyncFunction(true)
		p.declareFunction(fn)
		return &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: fn}}
	}
	return p.parsePlainStatement()
}

// parseStatement parses a statement in a position where declarations are
// not allowed, such as the body of an if.
func (p *Parser) parseStatement() *ast.Statement {
	if stmt, ok := p.tryStatement(); ok {
		return stmt
	}
	return p.parsePlainStatement()
}

func (p *Parser) parsePlainStatement() *ast.Statement {
	switch p.token.Kind {
	case token.Semicolon:
		return &ast.Statement{Stmt: &ast.EmptyStatement{Semicolon: p.Expect(token.Semicolon)}}
	case token.LeftBrace:
		return &ast.Statement{Stmt: p.parseBlockStatement()}
	case token.Var:
		return p.parseVariableStatement(token.Var)
	case token.If:
		return p.parseIfStatement()
	case token.For:
		return p.parseForOrForInStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Debugger:
		idx := p.Expect(token.Debugger)
		p.semicolon()
		return &ast.Statement{Stmt: &ast.DebuggerStatement{Debugger: idx}}
	case token.Function:
		if p.scope.strict {
			p.Raise(p.token.Idx0, "In strict mode code, functions can only be declared at top level or inside a block.")
		}
		return &ast.Statement{Stmt: &ast.FunctionDeclaration{
			Function: p.parseFunction(true, false, p.token.Idx0, false),
		}}
	case token.Class, token.Const:
		p.Unexpected()
	case token.Let:
		if p.isLetDeclaration() {
			p.Unexpected()
		}
	case token.Import:
		if !p.isImportExpression() {
			return p.parseImportDeclaration(false)
		}
	case token.Export:
		return p.parseExportDeclaration(false)
	}
	if p.isAsyncFunction() {
		p.Unexpected()
	}
	return p.parseExpressionStatement()
}

// ParseExpressionStatement parses an expression statement, or a labelled
// statement when a bare identifier is followed by a colon.
func (p *Parser) ParseExpressionStatement() *ast.Statement {
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() *ast.Statement {
	startsWithLet := p.token.Kind == token.Let
	expr := p.parseExpression()
	if id, ok := expr.Expr.(*ast.Identifier); ok && p.token.Kind == token.Colon && !p.parenthesized[id] {
		return p.parseLabelledStatement(id)
	}
	if startsWithLet && p.token.Kind == token.LeftBracket {
		p.Unexpected()
	}
	p.semicolon()
	return &ast.Statement{Stmt: &ast.ExpressionStatement{Expression: expr}}
}

func (p *Parser) parseLabelledStatement(id *ast.Identifier) *ast.Statement {
	if _, exists := p.hasLabel(id.Name); exists {
		p.Raise(id.Idx, "Label %s is already declared", quote(id.Name))
	}
	colon := p.Expect(token.Colon)

	loop := false
	switch p.token.Kind {
	case token.For, token.While, token.Do:
		loop = true
	}
	p.scope.labels = append(p.scope.labels, label{name: id.Name, loop: loop})
	var body *ast.Statement
	if p.token.Kind == token.Function {
		if p.scope.strict {
			p.Unexpected()
		}
		body = &ast.Statement{Stmt: &ast.FunctionDeclaration{
			Function: p.parseFunction(true, false, p.token.Idx0, false),
		}}
	} else {
		body = p.parseStatement()
	}
	p.scope.labels = p.scope.labels[:len(p.scope.labels)-1]

	return &ast.Statement{Stmt: &ast.LabelledStatement{Label: id, Colon: colon, Statement: body}}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	p.enterBlock(blockPlain)
	node := p.parseBlock()
	p.exitBlock()
	return node
}

// parseBlock parses a braced statement list in the current block scope.
func (p *Parser) parseBlock() *ast.BlockStatement {
	node := &ast.BlockStatement{LeftBrace: p.Expect(token.LeftBrace)}
	node.List = p.parseSourceElements(token.RightBrace, false, false)
	node.RightBrace = p.Expect(token.RightBrace)
	return node
}

func (p *Parser) parseVariableStatement(kind token.Token) *ast.Statement {
	idx := p.token.Idx0
	p.next()
	decl := &ast.VariableDeclaration{Idx: idx, Token: kind, List: p.parseVariableDeclarationList(kind)}
	p.checkInitializers(decl)
	p.semicolon()
	return &ast.Statement{Stmt: decl}
}

func (p *Parser) parseVariableDeclarationList(kind token.Token) ast.VariableDeclarators {
	var list ast.VariableDeclarators
	for {
		target := p.parseBindingTarget()
		if kind != token.Var {
			for _, id := range boundNames(ast.Expressions{*target}) {
				if id.Name == "let" {
					p.Raise(id.Idx, "let is disallowed as a lexically bound name")
				}
			}
			p.declarePattern(target, bindLexical)
		} else {
			p.declarePattern(target, bindVar)
		}
		decl := ast.VariableDeclarator{Target: target}
		if p.Eat(token.Assign) {
			decl.Initializer = p.parseAssignmentExpression()
		}
		list = append(list, decl)
		if !p.Eat(token.Comma) {
			return list
		}
	}
}

// checkInitializers enforces the initializers a declaration outside a
// for-in or for-of head requires.
func (p *Parser) checkInitializers(decl *ast.VariableDeclaration) {
	for _, d := range decl.List {
		if d.Initializer != nil {
			continue
		}
		if _, ok := d.Target.Expr.(*ast.Identifier); !ok {
			p.Raise(d.Target.Idx1(), "Complex binding patterns require an initialization value")
		}
		if decl.Token == token.Const {
			p.Raise(d.Target.Idx1(), "Missing initializer in const declaration")
		}
	}
}

func (p *Parser) parseIfStatement() *ast.Statement {
	node := &ast.IfStatement{If: p.Expect(token.If)}
	p.Expect(token.LeftParenthesis)
	node.Test = p.ParseExpression()
	p.Expect(token.RightParenthesis)
	node.Consequent = p.parseIfBody()
	if p.Eat(token.Else) {
		node.Alternate = p.parseIfBody()
	}
	return &ast.Statement{Stmt: node}
}

// parseIfBody allows a sloppy mode function declaration as the body of an if.
func (p *Parser) parseIfBody() *ast.Statement {
	if p.token.Kind == token.Function && !p.scope.strict {
		return &ast.Statement{Stmt: &ast.FunctionDeclaration{
			Function: p.parseFunction(true, false, p.token.Idx0, false),
		}}
	}
	return p.parseStatement()
}

func (p *Parser) parseIterationBody() *ast.Statement {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	defer func() {
		p.scope.inIteration = inIteration
	}()
	return p.parseStatement()
}

func (p *Parser) parseWhileStatement() *ast.Statement {
	node := &ast.WhileStatement{While: p.Expect(token.While)}
	p.Expect(token.LeftParenthesis)
	node.Test = p.ParseExpression()
	p.Expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseDoWhileStatement() *ast.Statement {
	node := &ast.DoWhileStatement{Do: p.Expect(token.Do)}
	node.Body = p.parseIterationBody()
	p.Expect(token.While)
	p.Expect(token.LeftParenthesis)
	node.Test = p.ParseExpression()
	node.RightParenthesis = p.Expect(token.RightParenthesis)
	// A semicolon after do-while is always optional.
	p.Eat(token.Semicolon)
	return &ast.Statement{Stmt: node}
}

// parseForAwait consumes the await of a for-await-of head.
func (p *Parser) parseForAwait() bool {
	if p.token.Kind != token.Await || p.opts.EcmaVersion < 9 {
		return false
	}
	idx := p.token.Idx0
	if !p.scope.allowAwait {
		if !p.relaxAwait(idx, true) {
			p.Unexpected()
		}
		p.scope.relaxedAwait = true
		if !p.scope.inFunction {
			p.program.RelaxedAwait = true
		}
	}
	if !p.scope.inFunction {
		p.program.TopLevelAwait = true
	}
	p.next()
	return true
}

func (p *Parser) parseForOrForInStatement() *ast.Statement {
	idx := p.Expect(token.For)
	p.enterBlock(blockPlain)
	defer p.exitBlock()

	await := p.parseForAwait()
	p.Expect(token.LeftParenthesis)

	if p.token.Kind == token.Semicolon {
		if await {
			p.Unexpected()
		}
		return p.parseFor(idx, nil)
	}

	allowIn := p.scope.allowIn
	p.scope.allowIn = false

	if p.token.Kind == token.Var || p.token.Kind == token.Const || p.isLetDeclaration() {
		kind := p.token.Kind
		declIdx := p.token.Idx0
		p.next()
		decl := &ast.VariableDeclaration{Idx: declIdx, Token: kind, List: p.parseVariableDeclarationList(kind)}
		p.scope.allowIn = allowIn

		if len(decl.List) == 1 && (p.token.Kind == token.In || p.isForOf()) {
			if decl.List[0].Initializer != nil {
				p.Raise(decl.List[0].Initializer.Idx0(), "for-in or for-of loop variable declaration may not have an initializer")
			}
			return p.parseForInOrOf(idx, &ast.ForInto{Into: decl}, await)
		}
		if await {
			p.Unexpected()
		}
		p.checkInitializers(decl)
		return p.parseFor(idx, &ast.ForLoopInitializer{ForLoopInit: decl})
	}

	startsWithLet := p.token.Kind == token.Let
	mark := len(p.coverInits)
	p.coverDepth++
	init := p.parseExpression()
	p.coverDepth--
	p.scope.allowIn = allowIn

	if p.token.Kind == token.In || p.isForOf() {
		of := p.token.Kind != token.In
		if of && startsWithLet {
			p.Raise(init.Idx0(), "The left-hand side of a for-of loop may not start with 'let'.")
		}
		msg := "Invalid left-hand side in for-in loop"
		if of {
			msg = "Invalid left-hand side in for-of loop"
		}
		var target *ast.Expression
		if p.isCoverLiteral(init) {
			target = p.reinterpretAsAssignmentPattern(init)
		} else {
			target = p.checkSimpleTarget(init, msg)
		}
		p.checkCoverInits(mark)
		return p.parseForInOrOf(idx, &ast.ForInto{Into: target}, await)
	}

	p.checkCoverInits(mark)
	if await {
		p.Unexpected()
	}
	return p.parseFor(idx, &ast.ForLoopInitializer{ForLoopInit: init})
}

func (p *Parser) isForOf() bool {
	return p.opts.EcmaVersion >= 6 && p.IsContextual("of")
}

func (p *Parser) parseFor(idx ast.Idx, init *ast.ForLoopInitializer) *ast.Statement {
	node := &ast.ForStatement{For: idx, Initializer: init}
	p.Expect(token.Semicolon)
	if p.token.Kind != token.Semicolon {
		node.Test = p.ParseExpression()
	}
	p.Expect(token.Semicolon)
	if p.token.Kind != token.RightParenthesis {
		node.Update = p.ParseExpression()
	}
	p.Expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseForInOrOf(idx ast.Idx, into *ast.ForInto, await bool) *ast.Statement {
	if p.Eat(token.In) {
		if await {
			p.Unexpected()
		}
		node := &ast.ForInStatement{For: idx, Into: into, Source: p.ParseExpression()}
		p.Expect(token.RightParenthesis)
		node.Body = p.parseIterationBody()
		return &ast.Statement{Stmt: node}
	}

	p.next()
	node := &ast.ForOfStatement{For: idx, Into: into, Source: p.ParseAssignmentExpression(), Await: await}
	p.Expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseReturnStatement() *ast.Statement {
	idx := p.Expect(token.Return)
	if (!p.scope.inFunction && !p.opts.AllowReturnOutsideFunction) || p.scope.inStaticBlock {
		p.Raise(idx, "'return' outside of function")
	}

	node := &ast.ReturnStatement{Return: idx}
	if !p.Eat(token.Semicolon) && !p.canInsertSemicolon() {
		node.Argument = p.ParseExpression()
		p.semicolon()
	}
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseBreakStatement() *ast.Statement {
	idx := p.Expect(token.Break)
	node := &ast.BreakStatement{Idx: idx}
	if p.isBindingId(p.token.Kind) && !p.token.OnNewLine {
		node.Label = p.parseIdentifier()
		if _, ok := p.hasLabel(node.Label.Name); !ok {
			p.Raise(node.Label.Idx, "Unsyntactic break")
		}
	} else if !p.scope.inIteration && !p.scope.inSwitch {
		p.Raise(idx, "Unsyntactic break")
	}
	p.semicolon()
	node.End = p.prevEnd
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseContinueStatement() *ast.Statement {
	idx := p.Expect(token.Continue)
	node := &ast.ContinueStatement{Idx: idx}
	if p.isBindingId(p.token.Kind) && !p.token.OnNewLine {
		node.Label = p.parseIdentifier()
		if l, ok := p.hasLabel(node.Label.Name); !ok || !l.loop {
			p.Raise(node.Label.Idx, "Unsyntactic continue")
		}
	}
	if !p.scope.inIteration {
		p.Raise(idx, "Unsyntactic continue")
	}
	p.semicolon()
	node.End = p.prevEnd
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseThrowStatement() *ast.Statement {
	idx := p.Expect(token.Throw)
	if p.token.OnNewLine {
		p.Raise(p.prevEnd, "Illegal newline after throw")
	}
	node := &ast.ThrowStatement{Throw: idx, Argument: p.ParseExpression()}
	p.semicolon()
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseTryStatement() *ast.Statement {
	node := &ast.TryStatement{Try: p.Expect(token.Try), Body: p.parseBlockStatement()}

	if p.token.Kind == token.Catch {
		catch := &ast.CatchStatement{Catch: p.Expect(token.Catch)}
		p.enterBlock(blockPlain)
		if p.Eat(token.LeftParenthesis) {
			catch.Parameter = p.parseBindingTarget()
			if id, ok := catch.Parameter.Expr.(*ast.Identifier); ok {
				p.blocks.simpleCatch = true
				p.declareName(id, bindSimpleCatch)
			} else {
				p.declarePattern(catch.Parameter, bindLexical)
			}
			p.Expect(token.RightParenthesis)
		} else if p.opts.EcmaVersion < 10 {
			p.Unexpected()
		}
		catch.Body = p.parseBlock()
		p.exitBlock()
		node.Catch = catch
	}
	if p.Eat(token.Finally) {
		node.Finally = p.parseBlockStatement()
	}
	if node.Catch == nil && node.Finally == nil {
		p.Raise(node.Try, "Missing catch or finally clause")
	}
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseSwitchStatement() *ast.Statement {
	node := &ast.SwitchStatement{Switch: p.Expect(token.Switch), Default: -1}
	p.Expect(token.LeftParenthesis)
	node.Discriminant = p.ParseExpression()
	p.Expect(token.RightParenthesis)
	p.Expect(token.LeftBrace)

	inSwitch := p.scope.inSwitch
	p.scope.inSwitch = true
	p.enterBlock(blockPlain)
	for p.token.Kind != token.RightBrace {
		clause := ast.CaseStatement{Case: p.token.Idx0}
		switch p.token.Kind {
		case token.Case:
			p.next()
			clause.Test = p.ParseExpression()
		case token.Default:
			if node.Default != -1 {
				p.Raise(clause.Case, "Multiple default clauses")
			}
			p.next()
			node.Default = len(node.Body)
		default:
			p.Unexpected()
		}
		clause.Colon = p.Expect(token.Colon)
		for p.token.Kind != token.Case && p.token.Kind != token.Default && p.token.Kind != token.RightBrace {
			if p.token.Kind == token.Eof {
				p.Unexpected()
			}
			clause.Consequent = append(clause.Consequent, *p.parseStatementListItem(false))
		}
		node.Body = append(node.Body, clause)
	}
	p.exitBlock()
	p.scope.inSwitch = inSwitch
	node.RightBrace = p.Expect(token.RightBrace)
	return &ast.Statement{Stmt: node}
}

func (p *Parser) parseWithStatement() *ast.Statement {
	idx := p.Expect(token.With)
	var irr ast.Irregularity
	strict := p.scope.strict
	if strict {
		irr = p.RaiseRecoverable(ast.IrregularStrictWith, idx, "'with' in strict mode")
	}
	p.Expect(token.LeftParenthesis)
	node := &ast.WithStatement{With: idx, Object: p.ParseExpression()}
	p.Expect(token.RightParenthesis)
	node.Body = p.parseStatement()

	stmt := &ast.Statement{Stmt: node}
	if strict {
		return &ast.Statement{Stmt: &ast.RecoveredStatement{Statement: stmt, Irregularity: irr}}
	}
	return stmt
}
