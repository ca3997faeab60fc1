package parser

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

// parseClass parses a class declaration or expression. Class code is always
// strict.
func (p *Parser) parseClass(declaration, anonymous bool) *ast.ClassLiteral {
	node := &ast.ClassLiteral{Class: p.Expect(token.Class)}
	wasStrict := p.scope.strict
	p.scope.strict = true

	if p.isBindingId(p.token.Kind) {
		node.Name = p.parseBindingIdentifier()
	} else if declaration && !anonymous {
		p.errorUnexpectedToken(p.token)
	}
	if p.Eat(token.Extends) {
		node.SuperClass = p.parseLeftHandSideExpressionAllowCall()
	}

	p.Expect(token.LeftBrace)
	hasConstructor := false
	for p.token.Kind != token.RightBrace {
		if p.Eat(token.Semicolon) {
			continue
		}
		element := p.parseClassElement(node.SuperClass != nil)
		if method, ok := element.(*ast.MethodDefinition); ok && method.Kind == ast.PropertyKindInit {
			if hasConstructor {
				p.Raise(method.Idx, "Duplicate constructor in the same class")
			}
			hasConstructor = true
		}
		node.Body = append(node.Body, ast.ClassElement{Element: element})
	}
	node.RightBrace = p.Expect(token.RightBrace)

	p.scope.strict = wasStrict
	return node
}

// classKeyFollows reports whether the token after a static, async, get or
// set prefix continues the element key.
func classKeyFollows(pk Peek) bool {
	switch pk.Kind {
	case token.LeftParenthesis, token.Assign, token.Semicolon, token.RightBrace, token.Eof:
		return false
	}
	return true
}

func (p *Parser) parseClassElement(derived bool) ast.Element {
	start := p.token.Idx0

	static := false
	if p.IsContextual("static") {
		pk := p.peek()
		if pk.Kind == token.LeftBrace && p.opts.EcmaVersion >= 13 {
			return p.parseClassStaticBlock()
		}
		if classKeyFollows(pk) {
			static = true
			p.next()
		}
	}

	kind := ast.PropertyKindMethod
	var async, generator bool
	if p.opts.EcmaVersion >= 8 && p.IsContextual("async") {
		if pk := p.peek(); classKeyFollows(pk) && !pk.OnNewLine {
			async = true
			p.next()
		}
	}
	if p.token.Kind == token.Multiply && p.opts.EcmaVersion >= 6 {
		generator = true
		p.next()
	}
	if !async && !generator && (p.IsContextual("get") || p.IsContextual("set")) {
		if pk := p.peek(); classKeyFollows(pk) {
			kind = ast.PropertyKind(p.token.Value)
			p.next()
		}
	}

	key, computed := p.parseObjectPropertyKey(p.opts.EcmaVersion >= 13)
	if private, ok := key.Expr.(*ast.PrivateIdentifier); ok && private.Name == "constructor" {
		p.Raise(private.Idx, "Classes can't have an element named '#constructor'")
	}

	if p.token.Kind == token.LeftParenthesis || kind != ast.PropertyKindMethod || async || generator {
		constructor := !static && !computed && keyName(key) == "constructor"
		if constructor {
			switch {
			case kind != ast.PropertyKindMethod:
				p.Raise(key.Idx0(), "Constructor can't have get/set modifier")
			case async:
				p.Raise(key.Idx0(), "Constructor can't be an async method")
			case generator:
				p.Raise(key.Idx0(), "Constructor can't be a generator")
			}
		}
		if static && !computed && keyName(key) == "prototype" {
			p.Raise(key.Idx0(), "Classes may not have a static property named prototype")
		}

		fn := p.parseMethodDefinition(p.token.Idx0, functionKind{
			async:       async,
			generator:   generator,
			method:      true,
			constructor: constructor,
			derived:     derived,
		})
		if kind == ast.PropertyKindGet || kind == ast.PropertyKindSet {
			p.checkAccessorParams(kind, &fn.ParameterList)
		}
		if constructor {
			kind = ast.PropertyKindInit
		}
		return &ast.MethodDefinition{Idx: start, Key: key, Kind: kind, Body: fn, Computed: computed, Static: static}
	}

	return p.parseClassField(start, key, computed, static)
}

func (p *Parser) parseClassField(start ast.Idx, key *ast.Expression, computed, static bool) *ast.FieldDefinition {
	if p.opts.EcmaVersion < 13 {
		p.Unexpected()
	}
	if !computed {
		switch name := keyName(key); {
		case name == "constructor":
			p.Raise(key.Idx0(), "Classes can't have a field named 'constructor'")
		case static && name == "prototype":
			p.Raise(key.Idx0(), "Classes can't have a static field named 'prototype'")
		}
	}

	field := &ast.FieldDefinition{Idx: start, Key: key, Computed: computed, Static: static}
	if p.Eat(token.Assign) {
		p.openScope(functionKind{method: true})
		p.scope.inClassField = true
		field.Initializer = p.ParseAssignmentExpression()
		p.closeScope()
	}
	p.semicolon()
	return field
}

func (p *Parser) parseClassStaticBlock() *ast.ClassStaticBlock {
	static := p.token.Idx0
	p.next()

	p.openScope(functionKind{method: true, staticBlock: true})
	p.scope.inClassField = true
	block := &ast.BlockStatement{LeftBrace: p.Expect(token.LeftBrace)}
	block.List = p.parseSourceElements(token.RightBrace, false, false)
	block.RightBrace = p.Expect(token.RightBrace)
	p.closeScope()

	return &ast.ClassStaticBlock{Static: static, Block: block}
}

// keyName returns the static name of a non-computed property key.
func keyName(key *ast.Expression) string {
	switch k := key.Expr.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	}
	return ""
}
