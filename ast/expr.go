package ast

import "github.com/t14raptor/go-esm/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	// A nil Expr marks an absent element, such as a hole in an array pattern.
	Expression struct {
		Expr
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	YieldExpression struct {
		Yield    Idx
		Argument *Expression
		Delegate bool
	}

	AwaitExpression struct {
		Await    Idx
		Argument *Expression
		// Relaxed marks an await accepted outside of an async function.
		Relaxed bool
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	MemberExpression struct {
		Object       *Expression
		Property     *Expression
		Computed     bool
		Optional     bool
		RightBracket Idx
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
		Optional         bool
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	// OptionalChain wraps a member/call chain containing at least one ?. link.
	OptionalChain struct {
		Base *Expression
	}

	ConciseBody struct {
		Body Body
	}

	Body interface {
		Node
		_conciseBody()
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList ParameterList
		Body          *ConciseBody
		Async         bool
		RelaxedAwait  bool
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	SpreadElement struct {
		Ellipsis Idx
		Argument *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	TemplateElements []TemplateElement

	TemplateElement struct {
		Idx     Idx
		Literal string
		Parsed  string
		Valid   bool
	}

	TemplateLiteral struct {
		OpenQuote   Idx
		CloseQuote  Idx
		Tag         *Expression
		Elements    TemplateElements
		Expressions Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	SuperExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // If a prefix operation
		Operand  *Expression
		Postfix  bool
	}

	MetaProperty struct {
		Meta, Property *Identifier
		Idx            Idx
	}

	// Import is the callee of a dynamic import call: import(specifier).
	Import struct {
		Idx Idx
	}

	// RecoveredExpression wraps an expression that was accepted in tolerant
	// mode even though it is malformed.
	RecoveredExpression struct {
		Expression   *Expression
		Irregularity Irregularity
	}
)

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*YieldExpression) _expr()       {}
func (*AwaitExpression) _expr()       {}
func (*InvalidExpression) _expr()     {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*ArrowFunctionLiteral) _expr()  {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*TemplateLiteral) _expr()       {}
func (*ThisExpression) _expr()        {}
func (*SuperExpression) _expr()       {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*MetaProperty) _expr()          {}
func (*OptionalChain) _expr()         {}
func (*SpreadElement) _expr()         {}
func (*Import) _expr()                {}
func (*RecoveredExpression) _expr()   {}

// IsDynamicImport reports whether e is an import(specifier) call.
func IsDynamicImport(e Expr) bool {
	call, ok := e.(*CallExpression)
	if !ok || call.Callee == nil {
		return false
	}
	_, ok = call.Callee.Expr.(*Import)
	return ok
}

// Unwrap strips any RecoveredExpression wrappers from e.
func Unwrap(e *Expression) *Expression {
	for e != nil {
		r, ok := e.Expr.(*RecoveredExpression)
		if !ok {
			break
		}
		e = r.Expression
	}
	return e
}
