package parser

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

// parseFunction parses a function declaration or expression from the
// function keyword. start is the position of the function keyword or of a
// preceding async.
func (p *Parser) parseFunction(declaration, async bool, start ast.Idx, anonymous bool) *ast.FunctionLiteral {
	p.Expect(token.Function)
	node := &ast.FunctionLiteral{Function: start, Async: async}
	if p.token.Kind == token.Multiply && p.opts.EcmaVersion >= 6 {
		node.Generator = true
		p.next()
	}

	if declaration {
		if p.isBindingId(p.token.Kind) {
			node.Name = p.parseBindingIdentifier()
		} else if !anonymous {
			p.errorUnexpectedToken(p.token)
		}
	}

	p.openScope(functionKind{async: async, generator: node.Generator})
	if !declaration && p.isBindingId(p.token.Kind) {
		node.Name = p.parseBindingIdentifier()
	}
	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseFunctionBlock(&node.ParameterList, node.Name, false)
	node.RelaxedAwait = p.scope.relaxedAwait
	p.closeScope()
	return node
}

// parseMaybeAsyncFunction parses `async function` at statement level.
func (p *Parser) parseMaybeAsyncFunction(declaration bool) *ast.FunctionLiteral {
	start := p.token.Idx0
	p.next()
	return p.parseFunction(declaration, true, start, false)
}

// parseMethodDefinition parses the parameters and body of an object or class
// method. The key has been consumed.
func (p *Parser) parseMethodDefinition(start ast.Idx, kind functionKind) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{Function: start, Async: kind.async, Generator: kind.generator}
	p.openScope(kind)
	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseFunctionBlock(&node.ParameterList, nil, true)
	node.RelaxedAwait = p.scope.relaxedAwait
	p.closeScope()
	return node
}

func (p *Parser) parseFunctionParameterList() ast.ParameterList {
	opening := p.Expect(token.LeftParenthesis)
	var list ast.Expressions

	p.scope.inFuncParams = true
	for p.token.Kind != token.RightParenthesis {
		if p.token.Kind == token.Ellipsis {
			idx := p.token.Idx0
			p.next()
			rest := &ast.RestElement{Ellipsis: idx, Argument: p.parseBindingTarget()}
			if p.token.Kind == token.Assign {
				p.Raise(p.token.Idx0, "Rest elements cannot have a default value")
			}
			list = append(list, *wrap(rest))
			if p.token.Kind == token.Comma {
				p.Raise(p.token.Idx0, "Comma is not permitted after the rest element")
			}
			break
		}
		list = append(list, *p.parseBindingElement())
		if p.token.Kind != token.RightParenthesis {
			p.Expect(token.Comma)
			if p.token.Kind == token.RightParenthesis && p.opts.EcmaVersion < 8 {
				p.Unexpected()
			}
		}
	}
	p.scope.inFuncParams = false

	return ast.ParameterList{
		Opening: opening,
		List:    list,
		Closing: p.Expect(token.RightParenthesis),
	}
}

func isSimpleParameterList(params *ast.ParameterList) bool {
	for _, param := range params.List {
		if _, ok := param.Expr.(*ast.Identifier); !ok {
			return false
		}
	}
	return true
}

// parseFunctionBlock parses a function body, applying its directive prologue
// to the parameters and name already parsed.
func (p *Parser) parseFunctionBlock(params *ast.ParameterList, name *ast.Identifier, strictParams bool) *ast.BlockStatement {
	wasStrict := p.scope.strict
	coverDepth := p.coverDepth
	p.coverDepth = 0
	for _, id := range boundNames(params.List) {
		p.declareName(id, bindVar)
	}

	block := &ast.BlockStatement{LeftBrace: p.Expect(token.LeftBrace)}
	block.List = p.parseSourceElements(token.RightBrace, true, false)
	block.RightBrace = p.Expect(token.RightBrace)
	p.coverDepth = coverDepth

	simple := isSimpleParameterList(params)
	if p.scope.strict && !wasStrict {
		if !simple {
			p.Raise(block.LeftBrace, "Illegal 'use strict' directive in function with non-simple parameter list")
		}
		if name != nil {
			p.checkBindingName(name)
			p.checkUnreserved(name)
		}
	}
	p.checkParams(params, p.scope.strict || strictParams || !simple)
	return block
}

// checkParams validates parameter names once the strictness of the body is
// known.
func (p *Parser) checkParams(params *ast.ParameterList, noDuplicates bool) {
	seen := make(map[string]bool, len(params.List))
	for _, id := range boundNames(params.List) {
		if p.scope.strict {
			p.checkBindingName(id)
			if token.IsStrictReserved(id.Name) {
				p.Raise(id.Idx, "The keyword %s is reserved", quote(id.Name))
			}
		}
		if noDuplicates && seen[id.Name] {
			p.Raise(id.Idx, "Argument name clash")
		}
		seen[id.Name] = true
	}
}

func (p *Parser) parseSingleArgArrowFunction(param *ast.Identifier, async bool, start ast.Idx) *ast.Expression {
	p.checkBindingName(param)
	params := ast.ParameterList{
		Opening: param.Idx,
		List:    ast.Expressions{{Expr: param}},
		Closing: param.Idx1() - 1,
	}
	return p.parseArrowFunction(start, params, async)
}

func (p *Parser) parseArrowFunction(start ast.Idx, params ast.ParameterList, async bool) *ast.Expression {
	p.Expect(token.Arrow)
	node := &ast.ArrowFunctionLiteral{Start: start, ParameterList: params, Async: async}

	p.openScope(functionKind{async: async, arrow: true})
	node.Body = p.parseArrowFunctionBody(&node.ParameterList)
	node.RelaxedAwait = p.scope.relaxedAwait
	p.closeScope()
	return wrap(node)
}

func (p *Parser) parseArrowFunctionBody(params *ast.ParameterList) *ast.ConciseBody {
	if p.token.Kind == token.LeftBrace {
		return &ast.ConciseBody{Body: p.parseFunctionBlock(params, nil, true)}
	}

	p.checkParams(params, true)
	coverDepth := p.coverDepth
	p.coverDepth = 0
	body := p.parseAssignmentExpression()
	p.coverDepth = coverDepth
	return &ast.ConciseBody{Body: body}
}
