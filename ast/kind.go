package ast

// ExprKind is the closed set of expression node types.
type ExprKind int

const (
	KindInvalid ExprKind = iota
	KindArrayLiteral
	KindArrayPattern
	KindArrowFunction
	KindAssign
	KindAssignPattern
	KindAwait
	KindBinary
	KindBoolean
	KindCall
	KindClass
	KindConditional
	KindFunction
	KindIdentifier
	KindImport
	KindMember
	KindMetaProperty
	KindNew
	KindNull
	KindNumber
	KindObjectLiteral
	KindObjectPattern
	KindOptionalChain
	KindPrivateIdentifier
	KindRecovered
	KindRegExp
	KindRest
	KindSequence
	KindSpread
	KindString
	KindSuper
	KindTemplate
	KindThis
	KindUnary
	KindUpdate
	KindYield
	KindNone
)

// Kind returns the node type of the wrapped expression; KindNone for an
// absent element.
func (e *Expression) Kind() ExprKind {
	if e == nil || e.Expr == nil {
		return KindNone
	}
	switch e.Expr.(type) {
	case *ArrayLiteral:
		return KindArrayLiteral
	case *ArrayPattern:
		return KindArrayPattern
	case *ArrowFunctionLiteral:
		return KindArrowFunction
	case *AssignExpression:
		return KindAssign
	case *AssignPattern:
		return KindAssignPattern
	case *AwaitExpression:
		return KindAwait
	case *BinaryExpression:
		return KindBinary
	case *BooleanLiteral:
		return KindBoolean
	case *CallExpression:
		return KindCall
	case *ClassLiteral:
		return KindClass
	case *ConditionalExpression:
		return KindConditional
	case *FunctionLiteral:
		return KindFunction
	case *Identifier:
		return KindIdentifier
	case *Import:
		return KindImport
	case *MemberExpression:
		return KindMember
	case *MetaProperty:
		return KindMetaProperty
	case *NewExpression:
		return KindNew
	case *NullLiteral:
		return KindNull
	case *NumberLiteral:
		return KindNumber
	case *ObjectLiteral:
		return KindObjectLiteral
	case *ObjectPattern:
		return KindObjectPattern
	case *OptionalChain:
		return KindOptionalChain
	case *PrivateIdentifier:
		return KindPrivateIdentifier
	case *RecoveredExpression:
		return KindRecovered
	case *RegExpLiteral:
		return KindRegExp
	case *RestElement:
		return KindRest
	case *SequenceExpression:
		return KindSequence
	case *SpreadElement:
		return KindSpread
	case *StringLiteral:
		return KindString
	case *SuperExpression:
		return KindSuper
	case *TemplateLiteral:
		return KindTemplate
	case *ThisExpression:
		return KindThis
	case *UnaryExpression:
		return KindUnary
	case *UpdateExpression:
		return KindUpdate
	case *YieldExpression:
		return KindYield
	}
	return KindInvalid
}
