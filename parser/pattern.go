package parser

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

func (p *Parser) isCoverLiteral(expr *ast.Expression) bool {
	switch expr.Expr.(type) {
	case *ast.ObjectLiteral, *ast.ArrayLiteral:
		return !p.parenthesized[expr.Expr]
	}
	return false
}

// checkCoverInits fails when a shorthand initializer parsed since mark was
// not claimed by a pattern and no enclosing construct can still claim it.
func (p *Parser) checkCoverInits(mark int) {
	if p.coverDepth > 0 || len(p.coverInits) <= mark {
		return
	}
	prop := p.coverInits[mark]
	p.Raise(prop.Name.Idx1(), "Shorthand property assignments are valid only in destructuring patterns")
}

func (p *Parser) claimCoverInit(prop *ast.PropertyShort) {
	if i := slices.Index(p.coverInits, prop); i >= 0 {
		p.coverInits = slices.Delete(p.coverInits, i, i+1)
	}
}

// checkSimpleTarget validates the target of a compound assignment or update.
func (p *Parser) checkSimpleTarget(expr *ast.Expression, msg string) *ast.Expression {
	switch target := expr.Expr.(type) {
	case *ast.Identifier:
		if p.scope.strict && (target.Name == "eval" || target.Name == "arguments") {
			return p.recoverTarget(expr, "Assigning to "+target.Name+" in strict mode")
		}
		return expr
	case *ast.MemberExpression:
		return expr
	}
	return p.recoverTarget(expr, msg)
}

func (p *Parser) recoverTarget(expr *ast.Expression, msg string) *ast.Expression {
	irr := p.RaiseRecoverable(ast.IrregularAssignTarget, expr.Idx0(), msg)
	return wrap(&ast.RecoveredExpression{Expression: expr, Irregularity: irr})
}

// invalidTarget reports a target that no pattern can hold. Binding targets
// are always fatal.
func (p *Parser) invalidTarget(expr *ast.Expression, msg string, binding bool) *ast.Expression {
	if binding {
		p.Raise(expr.Idx0(), msg)
	}
	return p.recoverTarget(expr, msg)
}

func (p *Parser) reinterpretAsAssignmentPattern(expr *ast.Expression) *ast.Expression {
	return p.reinterpretAsPattern(expr, false)
}

func (p *Parser) reinterpretAsBindingPattern(expr *ast.Expression) *ast.Expression {
	return p.reinterpretAsPattern(expr, true)
}

// reinterpretAsPattern converts an expression parsed with the cover grammar
// into an assignment or binding pattern.
func (p *Parser) reinterpretAsPattern(expr *ast.Expression, binding bool) *ast.Expression {
	switch target := expr.Expr.(type) {
	case *ast.Identifier:
		if !binding {
			return p.checkSimpleTarget(expr, "Invalid left-hand side in assignment")
		}
		if p.parenthesized[target] {
			p.Raise(target.Idx, "Parenthesized pattern")
		}
		p.checkBindingName(target)
		return expr

	case *ast.MemberExpression:
		if binding {
			p.Raise(target.Idx0(), "Binding member expression")
		}
		return expr

	case *ast.ObjectLiteral:
		if p.parenthesized[target] {
			return p.invalidTarget(expr, "Parenthesized pattern", binding)
		}
		return wrap(p.reinterpretAsObjectPattern(target, binding))

	case *ast.ArrayLiteral:
		if p.parenthesized[target] {
			return p.invalidTarget(expr, "Parenthesized pattern", binding)
		}
		return wrap(p.reinterpretAsArrayPattern(target, binding))

	case *ast.AssignExpression:
		if target.Operator != token.Assign || p.parenthesized[target] {
			break
		}
		left := target.Left
		if binding {
			left = p.reinterpretAsPattern(left, true)
		}
		return wrap(&ast.AssignPattern{Left: left, Right: target.Right})

	case *ast.ObjectPattern:
		if binding {
			for i := range target.Properties {
				switch prop := target.Properties[i].Prop.(type) {
				case *ast.PropertyKeyed:
					prop.Value = p.reinterpretAsPattern(prop.Value, true)
				case *ast.PropertyShort:
					p.checkBindingName(prop.Name)
				case *ast.RestElement:
					prop.Argument = p.reinterpretAsPattern(prop.Argument, true)
				}
			}
		}
		return expr

	case *ast.ArrayPattern:
		if binding {
			for i := range target.Elements {
				if target.Elements[i].Expr != nil {
					target.Elements[i] = *p.reinterpretAsPattern(&target.Elements[i], true)
				}
			}
		}
		return expr

	case *ast.AssignPattern:
		if binding {
			target.Left = p.reinterpretAsPattern(target.Left, true)
		}
		return expr

	case *ast.RestElement:
		if binding {
			target.Argument = p.reinterpretAsPattern(target.Argument, true)
		}
		return expr

	case *ast.RecoveredExpression:
		if binding {
			p.Raise(target.Irregularity.Idx, target.Irregularity.Message)
		}
		return expr
	}

	msg := "Invalid left-hand side in assignment"
	if binding {
		msg = "Assigning to rvalue"
	}
	return p.invalidTarget(expr, msg, binding)
}

func (p *Parser) reinterpretAsObjectPattern(lit *ast.ObjectLiteral, binding bool) *ast.ObjectPattern {
	pattern := &ast.ObjectPattern{LeftBrace: lit.LeftBrace, RightBrace: lit.RightBrace}
	for i, property := range lit.Value {
		switch prop := property.Prop.(type) {
		case *ast.PropertyKeyed:
			if prop.Kind != ast.PropertyKindValue {
				p.Raise(prop.Key.Idx0(), "Object pattern can't contain getter or setter")
			}
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyKeyed{
				Key:      prop.Key,
				Kind:     ast.PropertyKindValue,
				Value:    p.reinterpretAsPattern(prop.Value, binding),
				Computed: prop.Computed,
			}})

		case *ast.PropertyShort:
			p.claimCoverInit(prop)
			pattern.Properties = append(pattern.Properties, p.reinterpretShorthand(prop, binding))

		case *ast.SpreadElement:
			if i != len(lit.Value)-1 {
				p.Raise(prop.Ellipsis, "Rest element must be last element")
			}
			if comma, ok := p.trailingComma[lit]; ok {
				p.Raise(comma, "Comma is not permitted after the rest element")
			}
			arg := p.reinterpretAsPattern(prop.Argument, binding)
			switch arg.Expr.(type) {
			case *ast.Identifier, *ast.MemberExpression, *ast.RecoveredExpression:
			default:
				p.Raise(arg.Idx0(), "Invalid rest operator's argument")
			}
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.RestElement{Ellipsis: prop.Ellipsis, Argument: arg}})
		}
	}
	return pattern
}

// reinterpretShorthand validates a shorthand property as a pattern target.
// A tolerated strict-mode eval or arguments target is rewritten to the keyed
// form so the recovered node has a place in the tree.
func (p *Parser) reinterpretShorthand(prop *ast.PropertyShort, binding bool) ast.Property {
	if binding {
		p.checkBindingName(prop.Name)
		return ast.Property{Prop: prop}
	}
	target := p.checkSimpleTarget(wrap(prop.Name), "Invalid left-hand side in assignment")
	if _, recovered := target.Expr.(*ast.RecoveredExpression); !recovered {
		return ast.Property{Prop: prop}
	}
	if prop.Initializer != nil {
		target = wrap(&ast.AssignPattern{Left: target, Right: prop.Initializer})
	}
	return ast.Property{Prop: &ast.PropertyKeyed{
		Key:   wrap(&ast.Identifier{Idx: prop.Name.Idx, Name: prop.Name.Name}),
		Kind:  ast.PropertyKindValue,
		Value: target,
	}}
}

func (p *Parser) reinterpretAsArrayPattern(lit *ast.ArrayLiteral, binding bool) *ast.ArrayPattern {
	pattern := &ast.ArrayPattern{LeftBracket: lit.LeftBracket, RightBracket: lit.RightBracket}
	for i := range lit.Value {
		element := &lit.Value[i]
		switch elem := element.Expr.(type) {
		case nil:
			pattern.Elements = append(pattern.Elements, ast.Expression{})
		case *ast.SpreadElement:
			if i != len(lit.Value)-1 {
				p.Raise(elem.Ellipsis, "Rest element must be last element")
			}
			if comma, ok := p.trailingComma[lit]; ok {
				p.Raise(comma, "Comma is not permitted after the rest element")
			}
			arg := p.reinterpretAsPattern(elem.Argument, binding)
			if _, ok := arg.Expr.(*ast.AssignPattern); ok {
				p.Raise(arg.Idx0(), "Rest elements cannot have a default value")
			}
			pattern.Elements = append(pattern.Elements, *wrap(&ast.RestElement{Ellipsis: elem.Ellipsis, Argument: arg}))
		default:
			pattern.Elements = append(pattern.Elements, *p.reinterpretAsPattern(element, binding))
		}
	}
	return pattern
}

// reinterpretAsParameters converts the cover list of an arrow function into
// its parameters.
func (p *Parser) reinterpretAsParameters(params ast.ParameterList) ast.ParameterList {
	for i := range params.List {
		param := &params.List[i]
		switch elem := param.Expr.(type) {
		case *ast.SpreadElement:
			if i != len(params.List)-1 {
				p.Raise(elem.Ellipsis, "Rest element must be last element")
			}
			arg := p.reinterpretAsPattern(elem.Argument, true)
			if _, ok := arg.Expr.(*ast.AssignPattern); ok {
				p.Raise(arg.Idx0(), "Rest elements cannot have a default value")
			}
			params.List[i] = *wrap(&ast.RestElement{Ellipsis: elem.Ellipsis, Argument: arg})
		case *ast.RestElement:
			// Parsed as a binding target already.
		default:
			params.List[i] = *p.reinterpretAsPattern(param, true)
		}
	}
	return params
}

func (p *Parser) parseBindingTarget() *ast.Expression {
	switch p.token.Kind {
	case token.LeftBracket:
		return p.parseArrayBindingPattern()
	case token.LeftBrace:
		return p.parseObjectBindingPattern()
	}
	return wrap(p.parseBindingIdentifier())
}

func (p *Parser) parseBindingElement() *ast.Expression {
	target := p.parseBindingTarget()
	if !p.Eat(token.Assign) {
		return target
	}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	init := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn
	return wrap(&ast.AssignPattern{Left: target, Right: init})
}

func (p *Parser) parseObjectBindingPattern() *ast.Expression {
	pattern := &ast.ObjectPattern{LeftBrace: p.Expect(token.LeftBrace)}
	for p.token.Kind != token.RightBrace {
		if p.token.Kind == token.Ellipsis && p.opts.EcmaVersion >= 9 {
			idx := p.token.Idx0
			p.next()
			rest := &ast.RestElement{Ellipsis: idx, Argument: wrap(p.parseBindingIdentifier())}
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: rest})
			if p.token.Kind == token.Comma {
				p.Raise(p.token.Idx0, "Comma is not permitted after the rest element")
			}
			break
		}

		keyToken := p.token
		key, computed := p.parseObjectPropertyKey(false)
		if p.Eat(token.Colon) {
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyKeyed{
				Key:      key,
				Kind:     ast.PropertyKindValue,
				Value:    p.parseBindingElement(),
				Computed: computed,
			}})
		} else {
			if computed || !p.isBindingId(keyToken.Kind) {
				p.errorUnexpectedToken(p.token)
			}
			name := key.Expr.(*ast.Identifier)
			p.checkUnreserved(name)
			p.checkBindingName(name)
			prop := &ast.PropertyShort{Name: name}
			if p.Eat(token.Assign) {
				prop.Initializer = p.ParseAssignmentExpression()
			}
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: prop})
		}

		if p.token.Kind != token.RightBrace {
			p.Expect(token.Comma)
		}
	}
	pattern.RightBrace = p.Expect(token.RightBrace)
	return wrap(pattern)
}

func (p *Parser) parseArrayBindingPattern() *ast.Expression {
	pattern := &ast.ArrayPattern{LeftBracket: p.Expect(token.LeftBracket)}
	for p.token.Kind != token.RightBracket {
		if p.token.Kind == token.Comma {
			p.next()
			pattern.Elements = append(pattern.Elements, ast.Expression{})
			continue
		}
		if p.token.Kind == token.Ellipsis {
			idx := p.token.Idx0
			p.next()
			rest := &ast.RestElement{Ellipsis: idx, Argument: p.parseBindingTarget()}
			pattern.Elements = append(pattern.Elements, *wrap(rest))
			if p.token.Kind == token.Comma {
				p.Raise(p.token.Idx0, "Comma is not permitted after the rest element")
			}
			break
		}
		pattern.Elements = append(pattern.Elements, *p.parseBindingElement())
		if p.token.Kind != token.RightBracket {
			p.Expect(token.Comma)
		}
	}
	pattern.RightBracket = p.Expect(token.RightBracket)
	return wrap(pattern)
}

// boundNames lists the identifiers bound by a list of patterns in source
// order. Declarations and clash checks rely on that order to report the later
// of two conflicting names; frontend.GetNamesFromPattern walks breadth first
// instead.
func boundNames(list ast.Expressions) []*ast.Identifier {
	var names []*ast.Identifier
	var visit func(expr *ast.Expression)
	visit = func(expr *ast.Expression) {
		if expr == nil {
			return
		}
		switch target := expr.Expr.(type) {
		case *ast.Identifier:
			names = append(names, target)
		case *ast.AssignPattern:
			visit(target.Left)
		case *ast.RestElement:
			visit(target.Argument)
		case *ast.ArrayPattern:
			for i := range target.Elements {
				visit(&target.Elements[i])
			}
		case *ast.ObjectPattern:
			for _, prop := range target.Properties {
				switch prop := prop.Prop.(type) {
				case *ast.PropertyShort:
					names = append(names, prop.Name)
				case *ast.PropertyKeyed:
					visit(prop.Value)
				case *ast.RestElement:
					visit(prop.Argument)
				}
			}
		}
	}
	for i := range list {
		visit(&list[i])
	}
	return names
}
