package ast

type (
	// ObjectPattern is a destructuring target. Its properties are
	// PropertyKeyed, PropertyShort or a trailing RestElement.
	ObjectPattern struct {
		LeftBrace  Idx
		RightBrace Idx
		Properties Properties
	}

	// ArrayPattern is a destructuring target. A nil Expr in Elements is a
	// hole; a trailing RestElement collects the remainder.
	ArrayPattern struct {
		LeftBracket  Idx
		RightBracket Idx
		Elements     Expressions
	}

	// AssignPattern is a target with a default value: left = right.
	AssignPattern struct {
		Left  *Expression
		Right *Expression
	}

	RestElement struct {
		Ellipsis Idx
		Argument *Expression
	}
)

func (*ObjectPattern) _expr() {}
func (*ArrayPattern) _expr()  {}
func (*AssignPattern) _expr() {}
func (*RestElement) _expr()   {}

func (*RestElement) _property() {}

// IsPattern reports whether e is a destructuring pattern node.
func IsPattern(e Expr) bool {
	switch e.(type) {
	case *ObjectPattern, *ArrayPattern, *AssignPattern, *RestElement:
		return true
	}
	return false
}
