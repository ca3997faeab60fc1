package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier
		ParameterList ParameterList
		Body          *BlockStatement

		Async, Generator bool
		// RelaxedAwait is set when the body contains an await that was only
		// accepted because the await restriction was relaxed.
		RelaxedAwait bool
	}

	// ParameterList holds binding patterns: Identifier, ObjectPattern,
	// ArrayPattern, AssignPattern, or a trailing RestElement.
	ParameterList struct {
		Opening Idx
		List    Expressions
		Closing Idx
	}
)

func (*FunctionLiteral) _expr() {}
