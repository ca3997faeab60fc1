package parser

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser/scanner"
	"github.com/t14raptor/go-esm/token"
)

// noIdx marks an unset position.
const noIdx ast.Idx = -1

func wrap(expr ast.Expr) *ast.Expression {
	return &ast.Expression{Expr: expr}
}

func (p *Parser) isBindingId(tok token.Token) bool {
	return token.UnreservedWord(tok)
}

// ParseIdentifier parses an identifier reference.
func (p *Parser) ParseIdentifier() *ast.Identifier {
	return p.parseIdentifier()
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	if !p.isBindingId(p.token.Kind) {
		p.errorUnexpectedToken(p.token)
	}
	id := &ast.Identifier{Idx: p.token.Idx0, Name: p.token.Value}
	p.checkUnreserved(id)
	p.next()
	return id
}

// ParseIdentifierName parses any identifier name, reserved words included.
func (p *Parser) ParseIdentifierName() *ast.Identifier {
	return p.parseIdentifierName()
}

func (p *Parser) parseIdentifierName() *ast.Identifier {
	if !token.ID(p.token.Kind) {
		p.errorUnexpectedToken(p.token)
	}
	id := &ast.Identifier{Idx: p.token.Idx0, Name: p.token.Value}
	p.next()
	return id
}

func (p *Parser) checkUnreserved(id *ast.Identifier) {
	switch id.Name {
	case "yield":
		if p.scope.allowYield {
			p.Raise(id.Idx, "Cannot use 'yield' as identifier inside a generator")
		}
	case "await":
		if p.scope.allowAwait {
			p.Raise(id.Idx, "Cannot use 'await' as identifier inside an async function")
		}
		if p.InModule() {
			p.Raise(id.Idx, "Cannot use keyword 'await' outside an async function")
		}
	case "arguments":
		if p.scope.inClassField {
			p.Raise(id.Idx, "Cannot use 'arguments' in class field initializer")
		}
	}
	if p.scope.strict && token.IsStrictReserved(id.Name) {
		p.Raise(id.Idx, "The keyword %s is reserved", quote(id.Name))
	}
}

// ParseBindingIdentifier parses an identifier that introduces a binding.
func (p *Parser) ParseBindingIdentifier() *ast.Identifier {
	return p.parseBindingIdentifier()
}

func (p *Parser) parseBindingIdentifier() *ast.Identifier {
	id := p.parseIdentifier()
	p.checkBindingName(id)
	return id
}

func (p *Parser) checkBindingName(id *ast.Identifier) {
	if p.scope.strict && (id.Name == "eval" || id.Name == "arguments") {
		p.Raise(id.Idx, "Binding %s in strict mode", id.Name)
	}
}

func (p *Parser) parsePrimaryExpression() *ast.Expression {
	if expr, ok := p.tryAtom(); ok {
		return expr
	}

	idx := p.token.Idx0
	switch p.token.Kind {
	case token.Async:
		return p.parseAsyncExpression()
	case token.Identifier, token.Let, token.Static, token.Await, token.Yield, token.Of:
		id := p.parseIdentifier()
		if p.token.Kind == token.Arrow && !p.token.OnNewLine {
			return p.parseSingleArgArrowFunction(id, false, idx)
		}
		return wrap(id)
	case token.String:
		return p.parseStringLiteral()
	case token.Number:
		return p.parseNumberLiteral()
	case token.Slash, token.QuotientAssign:
		return p.parseRegExpLiteral()
	case token.Boolean:
		value := p.token.Value == "true"
		p.next()
		return wrap(&ast.BooleanLiteral{Idx: idx, Value: value})
	case token.Null:
		p.next()
		return wrap(&ast.NullLiteral{Idx: idx})
	case token.This:
		p.next()
		return wrap(&ast.ThisExpression{Idx: idx})
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	case token.Function:
		return wrap(p.parseFunction(false, false, idx, false))
	case token.Class:
		return wrap(p.parseClass(false, false))
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplateLiteral(nil)
	case token.Import:
		return p.parseImportMeta()
	}
	p.errorUnexpectedToken(p.token)
	return nil
}

// parseAsyncExpression handles an expression starting with async: an async
// function, an async arrow with a single parameter, or a plain identifier.
// Async arrows with a parameter list are handled in parseSubscripts.
func (p *Parser) parseAsyncExpression() *ast.Expression {
	idx := p.token.Idx0
	if p.opts.EcmaVersion >= 8 {
		if pk := p.peek(); pk.Kind == token.Function && !pk.OnNewLine {
			p.next()
			return wrap(p.parseFunction(false, true, idx, false))
		}
	}

	id := p.parseIdentifier()
	if p.opts.EcmaVersion >= 8 && p.isBindingId(p.token.Kind) && !p.token.OnNewLine {
		param := p.parseBindingIdentifier()
		if param.Name == "await" {
			p.Raise(param.Idx, "Cannot use 'await' as identifier inside an async function")
		}
		if p.token.Kind != token.Arrow || p.token.OnNewLine {
			p.Unexpected()
		}
		return p.parseSingleArgArrowFunction(param, true, idx)
	}
	if p.token.Kind == token.Arrow && !p.token.OnNewLine {
		return p.parseSingleArgArrowFunction(id, false, idx)
	}
	return wrap(id)
}

func (p *Parser) parseImportMeta() *ast.Expression {
	idx := p.token.Idx0
	if pk := p.peek(); pk.Kind != token.Period {
		p.Unexpected()
	}
	if p.opts.EcmaVersion < 11 {
		p.Unexpected()
	}
	p.next()
	p.next()
	if !p.IsContextual("meta") {
		p.Raise(p.token.Idx0, "The only valid meta property for import is 'import.meta'")
	}
	if !p.InModule() {
		p.Raise(idx, "Cannot use 'import.meta' outside a module")
	}
	prop := p.parseIdentifierName()
	return wrap(&ast.MetaProperty{
		Meta:     &ast.Identifier{Idx: idx, Name: "import"},
		Property: prop,
		Idx:      idx,
	})
}

func (p *Parser) parseStringLiteral() *ast.Expression {
	tok := p.token
	lit := &ast.StringLiteral{Idx: tok.Idx0, Value: tok.Value, Raw: tok.Raw(p.scanner)}
	p.next()
	if tok.Octal && p.scope.strict {
		return p.recoverOctal(lit, "Octal escape sequences are not allowed in strict mode")
	}
	return wrap(lit)
}

// ParseModuleSource parses the string literal naming a module.
func (p *Parser) ParseModuleSource() *ast.StringLiteral {
	if p.token.Kind != token.String {
		p.Unexpected()
	}
	lit := &ast.StringLiteral{Idx: p.token.Idx0, Value: p.token.Value, Raw: p.token.Raw(p.scanner)}
	p.next()
	return lit
}

// ParseFromClause parses `from "module"`.
func (p *Parser) ParseFromClause() *ast.StringLiteral {
	p.ExpectContextual("from")
	return p.ParseModuleSource()
}

func (p *Parser) parseNumberLiteral() *ast.Expression {
	tok := p.token
	raw := tok.Raw(p.scanner)
	value, bigint, err := scanner.NumberValue(raw)
	if err != nil {
		p.Raise(tok.Idx0, "Invalid number")
	}
	p.next()
	lit := &ast.NumberLiteral{Idx: tok.Idx0, Raw: raw, Value: value, BigInt: bigint}
	if bigint && p.opts.EcmaVersion < 11 {
		p.Raise(tok.Idx0, "Invalid number")
	}
	if tok.Octal && p.scope.strict {
		return p.recoverOctal(lit, "Octal literal in strict mode")
	}
	return wrap(lit)
}

func (p *Parser) recoverOctal(lit ast.Expr, msg string) *ast.Expression {
	irr := p.RaiseRecoverable(ast.IrregularLegacyOctal, lit.Idx0(), msg)
	return wrap(&ast.RecoveredExpression{Expression: wrap(lit), Irregularity: irr})
}

func (p *Parser) parseRegExpLiteral() *ast.Expression {
	pattern, flags := p.scanner.RescanRegExp()
	p.token = p.scanner.Token
	if p.token.Kind != token.RegExp {
		p.errorUnexpectedToken(p.token)
	}
	lit := &ast.RegExpLiteral{
		Idx:     p.token.Idx0,
		Literal: p.token.Raw(p.scanner),
		Pattern: pattern,
		Flags:   flags,
	}
	p.next()
	return wrap(lit)
}

func (p *Parser) parseTemplateElement(tagged bool) ast.TemplateElement {
	tok := p.token
	if tok.Invalid && !tagged {
		p.Raise(tok.Idx0+1, "Bad escape sequence in untagged template literal")
	}
	return ast.TemplateElement{
		Idx:     tok.Idx0 + 1,
		Literal: tok.TemplateLiteral(p.scanner),
		Parsed:  tok.Value,
		Valid:   !tok.Invalid,
	}
}

func (p *Parser) parseTemplateLiteral(tag *ast.Expression) *ast.Expression {
	lit := &ast.TemplateLiteral{OpenQuote: p.token.Idx0, Tag: tag}
	tagged := tag != nil

	for {
		lit.Elements = append(lit.Elements, p.parseTemplateElement(tagged))
		switch p.token.Kind {
		case token.NoSubstitutionTemplate, token.TemplateTail:
			lit.CloseQuote = p.token.Idx1 - 1
			p.next()
			return wrap(lit)
		}

		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		lit.Expressions = append(lit.Expressions, *p.parseExpression())
		p.scope.allowIn = allowIn
		if p.token.Kind != token.RightBrace {
			p.Unexpected()
		}
		p.scanner.RescanTemplateContinuation()
		p.token = p.scanner.Token
		if p.token.Kind == token.Illegal {
			p.errorUnexpectedToken(p.token)
		}
	}
}

func (p *Parser) parseTaggedTemplateLiteral(tag *ast.Expression) *ast.Expression {
	return p.parseTemplateLiteral(tag)
}

func (p *Parser) parseObjectPropertyKey(private bool) (key *ast.Expression, computed bool) {
	idx := p.token.Idx0
	switch p.token.Kind {
	case token.LeftBracket:
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		key = p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		p.Expect(token.RightBracket)
		return key, true
	case token.String:
		return p.parseStringLiteral(), false
	case token.Number:
		return p.parseNumberLiteral(), false
	case token.PrivateIdentifier:
		if !private {
			p.Unexpected()
		}
		name := p.token.Value
		p.next()
		return wrap(&ast.PrivateIdentifier{Idx: idx, Name: name}), false
	}
	return wrap(p.parseIdentifierName()), false
}

// propertyKeyFollows reports whether the token after a get, set, async or
// static prefix continues a property key rather than ending the property.
func propertyKeyFollows(pk Peek) bool {
	switch pk.Kind {
	case token.Colon, token.Comma, token.RightBrace, token.LeftParenthesis,
		token.Assign, token.Semicolon, token.Eof:
		return false
	}
	return true
}

func (p *Parser) parseObjectProperty() ast.Property {
	if p.token.Kind == token.Ellipsis && p.opts.EcmaVersion >= 9 {
		idx := p.token.Idx0
		p.next()
		return ast.Property{Prop: &ast.SpreadElement{Ellipsis: idx, Argument: p.parseAssignmentExpression()}}
	}

	start := p.token.Idx0
	kind := ast.PropertyKindValue
	var async, generator bool

	if p.opts.EcmaVersion >= 8 && p.IsContextual("async") {
		if pk := p.peek(); propertyKeyFollows(pk) && !pk.OnNewLine {
			async = true
			p.next()
		}
	}
	if p.opts.EcmaVersion >= 6 && p.token.Kind == token.Multiply {
		generator = true
		p.next()
	}
	if !async && !generator && (p.IsContextual("get") || p.IsContextual("set")) {
		if pk := p.peek(); propertyKeyFollows(pk) {
			kind = ast.PropertyKind(p.token.Value)
			p.next()
		}
	}

	keyToken := p.token
	key, computed := p.parseObjectPropertyKey(false)

	switch {
	case kind == ast.PropertyKindGet || kind == ast.PropertyKindSet:
		fn := p.parseMethodDefinition(start, functionKind{method: true})
		p.checkAccessorParams(kind, &fn.ParameterList)
		return ast.Property{Prop: &ast.PropertyKeyed{Key: key, Kind: kind, Value: wrap(fn), Computed: computed}}

	case async || generator || p.token.Kind == token.LeftParenthesis:
		fn := p.parseMethodDefinition(start, functionKind{async: async, generator: generator, method: true})
		return ast.Property{Prop: &ast.PropertyKeyed{Key: key, Kind: ast.PropertyKindMethod, Value: wrap(fn), Computed: computed}}

	case p.token.Kind == token.Colon:
		p.next()
		value := p.parseAssignmentExpression()
		return ast.Property{Prop: &ast.PropertyKeyed{Key: key, Kind: ast.PropertyKindValue, Value: value, Computed: computed}}
	}

	if computed || !p.isBindingId(keyToken.Kind) {
		p.errorUnexpectedToken(p.token)
	}
	id := key.Expr.(*ast.Identifier)
	p.checkUnreserved(id)

	prop := &ast.PropertyShort{Name: id}
	if p.token.Kind == token.Assign {
		p.next()
		prop.Initializer = p.parseAssignmentExpression()
		p.coverInits = append(p.coverInits, prop)
	}
	return ast.Property{Prop: prop}
}

func (p *Parser) checkAccessorParams(kind ast.PropertyKind, params *ast.ParameterList) {
	switch kind {
	case ast.PropertyKindGet:
		if len(params.List) != 0 {
			p.Raise(params.Opening, "getter should have no params")
		}
	case ast.PropertyKindSet:
		if len(params.List) != 1 {
			p.Raise(params.Opening, "setter should have exactly one param")
		}
		if _, rest := params.List[0].Expr.(*ast.RestElement); rest {
			p.Raise(params.List[0].Idx0(), "Setter cannot use rest params")
		}
	}
}

func (p *Parser) parseObjectLiteral() *ast.Expression {
	lit := &ast.ObjectLiteral{LeftBrace: p.Expect(token.LeftBrace)}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	p.coverDepth++

	for p.token.Kind != token.RightBrace {
		lit.Value = append(lit.Value, p.parseObjectProperty())
		if p.token.Kind == token.RightBrace {
			break
		}
		comma := p.Expect(token.Comma)
		if _, spread := lit.Value[len(lit.Value)-1].Prop.(*ast.SpreadElement); spread && p.token.Kind == token.RightBrace {
			p.trailingComma[lit] = comma
		}
	}

	p.coverDepth--
	p.scope.allowIn = allowIn
	lit.RightBrace = p.Expect(token.RightBrace)
	return wrap(lit)
}

func (p *Parser) parseArrayLiteral() *ast.Expression {
	lit := &ast.ArrayLiteral{LeftBracket: p.Expect(token.LeftBracket)}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	p.coverDepth++

	for p.token.Kind != token.RightBracket {
		if p.token.Kind == token.Comma {
			p.next()
			lit.Value = append(lit.Value, ast.Expression{})
			continue
		}
		spread := p.token.Kind == token.Ellipsis
		if spread {
			idx := p.token.Idx0
			p.next()
			lit.Value = append(lit.Value, *wrap(&ast.SpreadElement{Ellipsis: idx, Argument: p.parseAssignmentExpression()}))
		} else {
			lit.Value = append(lit.Value, *p.parseAssignmentExpression())
		}
		if p.token.Kind == token.RightBracket {
			break
		}
		comma := p.Expect(token.Comma)
		if spread && p.token.Kind == token.RightBracket {
			p.trailingComma[lit] = comma
		}
	}

	p.coverDepth--
	p.scope.allowIn = allowIn
	lit.RightBracket = p.Expect(token.RightBracket)
	return wrap(lit)
}

// parseParenthesisedExpression parses either a parenthesized expression or,
// when an arrow follows, the parameter list of an arrow function.
func (p *Parser) parseParenthesisedExpression() *ast.Expression {
	start := p.Expect(token.LeftParenthesis)

	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	yieldPos, awaitPos := p.yieldPos, p.awaitPos
	p.yieldPos, p.awaitPos = noIdx, noIdx
	p.coverDepth++

	var list ast.Expressions
	spreadStart, trailingComma := noIdx, noIdx
	for p.token.Kind != token.RightParenthesis {
		if p.token.Kind == token.Ellipsis {
			spreadStart = p.token.Idx0
			p.next()
			list = append(list, *wrap(&ast.RestElement{Ellipsis: spreadStart, Argument: p.parseBindingTarget()}))
			if p.token.Kind == token.Comma {
				p.Raise(p.token.Idx0, "Comma is not permitted after the rest element")
			}
			break
		}
		list = append(list, *p.parseAssignmentExpression())
		if p.token.Kind == token.RightParenthesis {
			break
		}
		comma := p.Expect(token.Comma)
		if p.token.Kind == token.RightParenthesis && p.opts.EcmaVersion >= 8 {
			trailingComma = comma
		}
	}
	end := p.Expect(token.RightParenthesis)

	p.coverDepth--
	p.scope.allowIn = allowIn

	if p.token.Kind == token.Arrow && !p.token.OnNewLine {
		if p.yieldPos != noIdx {
			p.Raise(p.yieldPos, "Yield expression cannot be a default value")
		}
		if p.awaitPos != noIdx {
			p.Raise(p.awaitPos, "Await expression cannot be a default value")
		}
		p.yieldPos, p.awaitPos = yieldPos, awaitPos
		params := p.reinterpretAsParameters(ast.ParameterList{Opening: start, List: list, Closing: end})
		return p.parseArrowFunction(start, params, false)
	}

	if p.yieldPos == noIdx {
		p.yieldPos = yieldPos
	}
	if p.awaitPos == noIdx {
		p.awaitPos = awaitPos
	}
	switch {
	case len(list) == 0:
		p.UnexpectedAt(end)
	case spreadStart != noIdx:
		p.UnexpectedAt(spreadStart)
	case trailingComma != noIdx:
		p.UnexpectedAt(trailingComma)
	}

	var expr *ast.Expression
	if len(list) == 1 {
		expr = &list[0]
	} else {
		expr = wrap(&ast.SequenceExpression{Sequence: list})
	}
	p.parenthesized[expr.Expr] = true
	return expr
}

func (p *Parser) parseArgumentList() (idx0 ast.Idx, list ast.Expressions, idx1 ast.Idx) {
	idx0 = p.Expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true

	for p.token.Kind != token.RightParenthesis {
		if p.token.Kind == token.Ellipsis {
			idx := p.token.Idx0
			p.next()
			list = append(list, *wrap(&ast.SpreadElement{Ellipsis: idx, Argument: p.parseAssignmentExpression()}))
		} else {
			list = append(list, *p.parseAssignmentExpression())
		}
		if p.token.Kind == token.RightParenthesis {
			break
		}
		p.Expect(token.Comma)
		if p.token.Kind == token.RightParenthesis && p.opts.EcmaVersion < 8 {
			p.Unexpected()
		}
	}

	p.scope.allowIn = allowIn
	idx1 = p.Expect(token.RightParenthesis)
	return
}

func (p *Parser) parseMemberProperty() *ast.Expression {
	if p.token.Kind == token.PrivateIdentifier {
		if p.opts.EcmaVersion < 13 {
			p.Unexpected()
		}
		id := &ast.PrivateIdentifier{Idx: p.token.Idx0, Name: p.token.Value}
		p.next()
		return wrap(id)
	}
	return wrap(p.parseIdentifierName())
}

func (p *Parser) parseDotMember(object *ast.Expression, optional bool) *ast.Expression {
	return wrap(&ast.MemberExpression{Object: object, Property: p.parseMemberProperty(), Optional: optional})
}

func (p *Parser) parseBracketMember(object *ast.Expression, optional bool) *ast.Expression {
	p.Expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	property := p.parseExpression()
	p.scope.allowIn = allowIn
	return wrap(&ast.MemberExpression{
		Object:       object,
		Property:     property,
		Computed:     true,
		Optional:     optional,
		RightBracket: p.Expect(token.RightBracket),
	})
}

func (p *Parser) parseCallExpression(callee *ast.Expression, optional bool) *ast.Expression {
	idx0, list, idx1 := p.parseArgumentList()
	return wrap(&ast.CallExpression{
		Callee:           callee,
		LeftParenthesis:  idx0,
		ArgumentList:     list,
		RightParenthesis: idx1,
		Optional:         optional,
	})
}

// ParseSubscripts continues base, which started at start, with member
// accesses, calls, tagged templates and optional chains.
func (p *Parser) ParseSubscripts(base *ast.Expression, start ast.Idx) *ast.Expression {
	return p.parseSubscripts(base, start, false)
}

func (p *Parser) parseSubscripts(base *ast.Expression, start ast.Idx, noCalls bool) *ast.Expression {
	maybeAsyncArrow := false
	if id, ok := base.Expr.(*ast.Identifier); ok && id.Name == "async" && !noCalls &&
		p.opts.EcmaVersion >= 8 && p.prevEnd == id.Idx1() && !p.token.OnNewLine && !p.parenthesized[id] {
		maybeAsyncArrow = true
	}

	expr := base
	chained := false
	for {
		switch p.token.Kind {
		case token.Period:
			p.next()
			expr = p.parseDotMember(expr, false)

		case token.QuestionDot:
			if p.opts.EcmaVersion < 11 {
				p.Unexpected()
			}
			if noCalls {
				p.Raise(p.token.Idx0, "Optional chaining cannot appear in the callee of new expressions")
			}
			if _, super := expr.Expr.(*ast.SuperExpression); super {
				p.Unexpected()
			}
			chained = true
			p.next()
			switch p.token.Kind {
			case token.LeftParenthesis:
				expr = p.parseCallExpression(expr, true)
			case token.LeftBracket:
				expr = p.parseBracketMember(expr, true)
			case token.NoSubstitutionTemplate, token.TemplateHead:
				p.Raise(p.token.Idx0, "Optional chaining cannot appear in the tag of tagged template expressions")
			default:
				expr = p.parseDotMember(expr, true)
			}

		case token.LeftBracket:
			expr = p.parseBracketMember(expr, false)

		case token.LeftParenthesis:
			if noCalls {
				return p.finishChain(expr, chained)
			}
			if maybeAsyncArrow {
				if arrow := p.parseAsyncArrowOrCall(expr, start); arrow != nil {
					if _, ok := arrow.Expr.(*ast.ArrowFunctionLiteral); ok {
						return arrow
					}
					expr = arrow
				}
				maybeAsyncArrow = false
				continue
			}
			expr = p.parseCallExpression(expr, false)

		case token.NoSubstitutionTemplate, token.TemplateHead:
			if chained {
				p.Raise(p.token.Idx0, "Optional chaining cannot appear in the tag of tagged template expressions")
			}
			expr = p.parseTaggedTemplateLiteral(expr)

		default:
			return p.finishChain(expr, chained)
		}
	}
}

func (p *Parser) finishChain(expr *ast.Expression, chained bool) *ast.Expression {
	if chained {
		return wrap(&ast.OptionalChain{Base: expr})
	}
	return expr
}

// parseAsyncArrowOrCall parses async(...) as a call, or as the parameters of
// an async arrow function when => follows.
func (p *Parser) parseAsyncArrowOrCall(callee *ast.Expression, start ast.Idx) *ast.Expression {
	yieldPos, awaitPos := p.yieldPos, p.awaitPos
	p.yieldPos, p.awaitPos = noIdx, noIdx
	p.coverDepth++
	idx0, list, idx1 := p.parseArgumentList()
	p.coverDepth--

	if p.token.Kind == token.Arrow && !p.token.OnNewLine {
		if p.yieldPos != noIdx {
			p.Raise(p.yieldPos, "Yield expression cannot be a default value")
		}
		if p.awaitPos != noIdx {
			p.Raise(p.awaitPos, "Await expression cannot be a default value")
		}
		p.yieldPos, p.awaitPos = yieldPos, awaitPos
		params := p.reinterpretAsParameters(ast.ParameterList{Opening: idx0, List: list, Closing: idx1})
		for _, name := range boundNames(params.List) {
			if name.Name == "await" {
				p.Raise(name.Idx, "Cannot use 'await' as identifier inside an async function")
			}
		}
		return p.parseArrowFunction(start, params, true)
	}

	if p.yieldPos == noIdx {
		p.yieldPos = yieldPos
	}
	if p.awaitPos == noIdx {
		p.awaitPos = awaitPos
	}
	return wrap(&ast.CallExpression{
		Callee:           callee,
		LeftParenthesis:  idx0,
		ArgumentList:     list,
		RightParenthesis: idx1,
	})
}

func (p *Parser) parseSuperProperty() *ast.Expression {
	idx := p.Expect(token.Super)
	switch p.token.Kind {
	case token.Period, token.LeftBracket:
		if !p.scope.allowSuper {
			p.Raise(idx, "'super' keyword outside a method")
		}
	case token.LeftParenthesis:
		if !p.scope.allowSuperCall {
			p.Raise(idx, "super() call outside constructor of a subclass")
		}
	default:
		p.Unexpected()
	}
	return wrap(&ast.SuperExpression{Idx: idx})
}

func (p *Parser) parseNewExpression() *ast.Expression {
	idx := p.Expect(token.New)

	if p.token.Kind == token.Period {
		p.next()
		if !p.IsContextual("target") {
			p.Raise(p.token.Idx0, "The only valid meta property for new is 'new.target'")
		}
		if !p.scope.allowNewTarget {
			p.Raise(idx, "'new.target' can only be used in functions and class static block")
		}
		return wrap(&ast.MetaProperty{
			Meta:     &ast.Identifier{Idx: idx, Name: "new"},
			Property: p.parseIdentifierName(),
			Idx:      idx,
		})
	}

	start := p.token.Idx0
	var callee *ast.Expression
	switch p.token.Kind {
	case token.Import:
		if pk := p.peek(); pk.Kind == token.LeftParenthesis {
			p.Raise(start, "Cannot use new with import()")
		}
		callee = p.parsePrimaryExpression()
	case token.New:
		callee = p.parseNewExpression()
	case token.Super:
		callee = p.parseSuperProperty()
	default:
		callee = p.parsePrimaryExpression()
	}
	if _, ok := callee.Expr.(*ast.ArrowFunctionLiteral); ok {
		p.UnexpectedAt(start)
	}
	if ast.IsDynamicImport(callee.Expr) {
		p.Raise(start, "Cannot use new with import()")
	}
	callee = p.parseSubscripts(callee, start, true)

	node := &ast.NewExpression{New: idx, Callee: callee}
	if p.token.Kind == token.LeftParenthesis {
		node.LeftParenthesis, node.ArgumentList, node.RightParenthesis = p.parseArgumentList()
	}
	return wrap(node)
}

func (p *Parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	start := p.token.Idx0
	var left *ast.Expression
	switch p.token.Kind {
	case token.New:
		left = p.parseNewExpression()
	case token.Super:
		left = p.parseSuperProperty()
	default:
		left = p.parsePrimaryExpression()
	}
	if _, ok := left.Expr.(*ast.ArrowFunctionLiteral); ok {
		return left
	}
	return p.parseSubscripts(left, start, false)
}

func (p *Parser) parseUpdateExpression() *ast.Expression {
	operand := p.parseLeftHandSideExpressionAllowCall()
	switch p.token.Kind {
	case token.Increment, token.Decrement:
		if p.token.OnNewLine {
			break
		}
		operand = p.checkSimpleTarget(operand, "Invalid left-hand side expression in postfix operation")
		op, idx := p.token.Kind, p.token.Idx0
		p.next()
		return wrap(&ast.UpdateExpression{Operator: op, Idx: idx, Operand: operand, Postfix: true})
	}
	return operand
}

func (p *Parser) parseUnaryExpression() *ast.Expression {
	switch p.token.Kind {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete:
		op, idx := p.token.Kind, p.token.Idx0
		p.next()
		operand := p.parseUnaryExpression()
		expr := wrap(&ast.UnaryExpression{Operator: op, Idx: idx, Operand: operand})
		if op == token.Delete {
			return p.checkDelete(expr, operand)
		}
		return expr

	case token.Increment, token.Decrement:
		op, idx := p.token.Kind, p.token.Idx0
		p.next()
		operand := p.checkSimpleTarget(p.parseUnaryExpression(), "Invalid left-hand side expression in prefix operation")
		return wrap(&ast.UpdateExpression{Operator: op, Idx: idx, Operand: operand})

	case token.Await:
		if expr, ok := p.parseAwaitExpression(); ok {
			return expr
		}
	}
	return p.parseUpdateExpression()
}

func (p *Parser) checkDelete(expr, operand *ast.Expression) *ast.Expression {
	switch target := operand.Expr.(type) {
	case *ast.Identifier:
		if p.scope.strict {
			irr := p.RaiseRecoverable(ast.IrregularStrictDelete, expr.Idx0(), "Deleting local variable in strict mode")
			return wrap(&ast.RecoveredExpression{Expression: expr, Irregularity: irr})
		}
	case *ast.MemberExpression:
		if _, private := target.Property.Expr.(*ast.PrivateIdentifier); private {
			p.Raise(expr.Idx0(), "Private fields can not be deleted")
		}
	}
	return expr
}

// parseAwaitExpression parses an await expression at the current await
// token. It reports false when await is an identifier here.
func (p *Parser) parseAwaitExpression() (*ast.Expression, bool) {
	idx := p.token.Idx0
	relaxed := false
	if !p.scope.allowAwait {
		if !p.relaxAwait(idx, false) {
			if p.InModule() {
				p.Raise(idx, "Cannot use keyword 'await' outside an async function")
			}
			return nil, false
		}
		relaxed = true
	} else if p.scope.inFuncParams {
		p.Raise(idx, "Illegal await-expression in formal parameters of async function")
	}
	if p.awaitPos == noIdx {
		p.awaitPos = idx
	}

	p.next()
	node := &ast.AwaitExpression{Await: idx, Argument: p.parseUnaryExpression()}
	if relaxed {
		p.markRelaxedAwait(node)
	}
	if !p.scope.inFunction {
		p.program.TopLevelAwait = true
	}
	return wrap(node), true
}

func (p *Parser) parsePrivateInExpression(minPrecedence Precedence) *ast.Expression {
	id := &ast.PrivateIdentifier{Idx: p.token.Idx0, Name: p.token.Value}
	if p.opts.EcmaVersion < 13 {
		p.Unexpected()
	}
	p.next()
	if p.token.Kind != token.In || minPrecedence >= PrecedenceCompare || !p.scope.allowIn {
		p.Raise(id.Idx, "Private identifier can only be left side of binary expression")
	}
	return wrap(id)
}

func (p *Parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) *ast.Expression {
	var left *ast.Expression
	if p.token.Kind == token.PrivateIdentifier {
		left = p.parsePrivateInExpression(minPrecedence)
	} else {
		left = p.parseUnaryExpression()
	}
	if _, ok := left.Expr.(*ast.ArrowFunctionLiteral); ok {
		return left
	}
	return p.parseBinaryExpressionRest(left, minPrecedence)
}

func (p *Parser) parseBinaryExpressionRest(left *ast.Expression, minPrecedence Precedence) *ast.Expression {
	for {
		kind := p.token.Kind
		lbp := kindToPrecedence(kind)
		if lbp <= minPrecedence {
			return left
		}
		if kind == token.In && !p.scope.allowIn {
			return left
		}

		switch kind {
		case token.Exponent:
			if p.opts.EcmaVersion < 7 {
				p.Unexpected()
			}
			switch left.Expr.(type) {
			case *ast.UnaryExpression, *ast.AwaitExpression:
				if !p.parenthesized[left.Expr] {
					p.Raise(p.token.Idx0, "Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence")
				}
			}
		case token.Coalesce:
			if p.opts.EcmaVersion < 11 {
				p.Unexpected()
			}
		}

		opIdx := p.token.Idx0
		p.next()
		right := p.parseBinaryExpressionOrHigher(lbp ^ 1)

		if isLogicalOperator(kind) && (p.mixesCoalesce(kind, left) || p.mixesCoalesce(kind, right)) {
			p.Raise(opIdx, "Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
		}
		left = wrap(&ast.BinaryExpression{Operator: kind, Left: left, Right: right})
	}
}

// mixesCoalesce reports whether operand is an unparenthesized logical
// expression that may not be combined with op.
func (p *Parser) mixesCoalesce(op token.Token, operand *ast.Expression) bool {
	bin, ok := operand.Expr.(*ast.BinaryExpression)
	if !ok || p.parenthesized[bin] || !isLogicalOperator(bin.Operator) {
		return false
	}
	return (op == token.Coalesce) != (bin.Operator == token.Coalesce)
}

func (p *Parser) parseConditionalExpression() *ast.Expression {
	test := p.parseBinaryExpressionOrHigher(PrecedenceLowest)
	if _, ok := test.Expr.(*ast.ArrowFunctionLiteral); ok {
		return test
	}
	if p.token.Kind != token.QuestionMark {
		return test
	}
	p.next()
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	consequent := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn
	p.Expect(token.Colon)
	return wrap(&ast.ConditionalExpression{
		Test:       test,
		Consequent: consequent,
		Alternate:  p.parseAssignmentExpression(),
	})
}

// ParseAssignmentExpression parses an AssignmentExpression with the in
// operator allowed.
func (p *Parser) ParseAssignmentExpression() *ast.Expression {
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	defer func() { p.scope.allowIn = allowIn }()
	return p.parseAssignmentExpression()
}

func (p *Parser) parseAssignmentExpression() *ast.Expression {
	if p.token.Kind == token.Yield && p.scope.allowYield {
		return p.parseYieldExpression()
	}

	mark := len(p.coverInits)
	left := p.parseConditionalExpression()

	if !token.IsAssignment(p.token.Kind) {
		p.checkCoverInits(mark)
		return left
	}

	op := p.token.Kind
	switch op {
	case token.ExponentAssign:
		if p.opts.EcmaVersion < 7 {
			p.Unexpected()
		}
	case token.LogicalAndAssign, token.LogicalOrAssign, token.CoalesceAssign:
		if p.opts.EcmaVersion < 12 {
			p.Unexpected()
		}
	}

	if op == token.Assign && p.isCoverLiteral(left) {
		left = p.reinterpretAsAssignmentPattern(left)
	} else {
		left = p.checkSimpleTarget(left, "Invalid left-hand side in assignment")
	}
	p.next()
	return wrap(&ast.AssignExpression{Operator: op, Left: left, Right: p.parseAssignmentExpression()})
}

func (p *Parser) parseYieldExpression() *ast.Expression {
	idx := p.Expect(token.Yield)
	if p.scope.inFuncParams {
		p.Raise(idx, "Yield expression not allowed in formal parameter")
	}
	if p.yieldPos == noIdx {
		p.yieldPos = idx
	}

	node := &ast.YieldExpression{Yield: idx}
	if p.canInsertSemicolon() {
		return wrap(node)
	}
	switch p.token.Kind {
	case token.Semicolon, token.RightParenthesis, token.RightBracket, token.Colon, token.Comma, token.QuestionMark, token.In:
		return wrap(node)
	case token.Multiply:
		node.Delegate = true
		p.next()
	default:
		if kindToPrecedence(p.token.Kind) > 0 && p.token.Kind != token.Plus && p.token.Kind != token.Minus &&
			p.token.Kind != token.Slash {
			return wrap(node)
		}
	}
	node.Argument = p.parseAssignmentExpression()
	return wrap(node)
}

// ParseExpression parses an Expression, comma sequences included, with the
// in operator allowed.
func (p *Parser) ParseExpression() *ast.Expression {
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	defer func() { p.scope.allowIn = allowIn }()
	return p.parseExpression()
}

func (p *Parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()
	if p.token.Kind != token.Comma {
		return left
	}
	sequence := ast.Expressions{*left}
	for p.Eat(token.Comma) {
		sequence = append(sequence, *p.parseAssignmentExpression())
	}
	return wrap(&ast.SequenceExpression{Sequence: sequence})
}
