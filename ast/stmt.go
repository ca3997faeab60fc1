package ast

import "github.com/t14raptor/go-esm/token"

type (
	Statements []Statement

	Statement struct {
		Stmt
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx
	}

	BreakStatement struct {
		Idx   Idx
		Label *Identifier
		End   Idx
	}

	ContinueStatement struct {
		Idx   Idx
		Label *Identifier
		End   Idx
	}

	CaseStatement struct {
		Case       Idx
		Test       *Expression
		Colon      Idx
		Consequent Statements
	}

	CatchStatement struct {
		Catch     Idx
		Parameter *Expression
		Body      *BlockStatement
	}

	DebuggerStatement struct {
		Debugger Idx
	}

	DoWhileStatement struct {
		Do               Idx
		Test             *Expression
		Body             *Statement
		RightParenthesis Idx
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
		// Directive holds the raw string content when the statement is part of
		// a directive prologue.
		Directive string
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement
	}

	LabelledStatement struct {
		Label     *Identifier
		Colon     Idx
		Statement *Statement
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression
	}

	SwitchStatement struct {
		Switch       Idx
		Discriminant *Expression
		Default      int
		Body         []CaseStatement
		RightBrace   Idx
	}

	ThrowStatement struct {
		Throw    Idx
		Argument *Expression
	}

	TryStatement struct {
		Try     Idx
		Body    *BlockStatement
		Catch   *CatchStatement
		Finally *BlockStatement
	}

	WhileStatement struct {
		While Idx
		Test  *Expression
		Body  *Statement
	}

	WithStatement struct {
		With   Idx
		Object *Expression
		Body   *Statement
	}

	ForStatement struct {
		For         Idx
		Initializer *ForLoopInitializer
		Test        *Expression
		Update      *Expression
		Body        *Statement
	}

	ForLoopInitializer struct {
		ForLoopInit
	}

	ForLoopInit interface {
		Node
		_forLoopInitializer()
	}

	ForInStatement struct {
		For    Idx
		Into   *ForInto
		Source *Expression
		Body   *Statement
	}

	ForOfStatement struct {
		For    Idx
		Into   *ForInto
		Source *Expression
		Body   *Statement
		Await  bool
	}

	ForInto struct {
		Into
	}

	Into interface {
		Node
		_forInto()
	}

	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Class *ClassLiteral
	}

	VariableDeclaration struct {
		Idx   Idx
		Token token.Token // var, let or const
		List  VariableDeclarators
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *Expression
		Initializer *Expression
	}

	// RecoveredStatement wraps a statement that was accepted in tolerant mode
	// even though it is malformed.
	RecoveredStatement struct {
		Statement    *Statement
		Irregularity Irregularity
	}
)

func (*VariableDeclaration) _forLoopInitializer() {}
func (*Expression) _forLoopInitializer()          {}

func (*VariableDeclaration) _forInto() {}
func (*Expression) _forInto()          {}

func (*BlockStatement) _stmt()           {}
func (*BreakStatement) _stmt()           {}
func (*CaseStatement) _stmt()            {}
func (*ContinueStatement) _stmt()        {}
func (*CatchStatement) _stmt()           {}
func (*ClassDeclaration) _stmt()         {}
func (*DebuggerStatement) _stmt()        {}
func (*DoWhileStatement) _stmt()         {}
func (*EmptyStatement) _stmt()           {}
func (*ExpressionStatement) _stmt()      {}
func (*ForInStatement) _stmt()           {}
func (*ForOfStatement) _stmt()           {}
func (*ForStatement) _stmt()             {}
func (*FunctionDeclaration) _stmt()      {}
func (*IfStatement) _stmt()              {}
func (*LabelledStatement) _stmt()        {}
func (*RecoveredStatement) _stmt()       {}
func (*ReturnStatement) _stmt()          {}
func (*SwitchStatement) _stmt()          {}
func (*ThrowStatement) _stmt()           {}
func (*TryStatement) _stmt()             {}
func (*VariableDeclaration) _stmt()      {}
func (*WhileStatement) _stmt()           {}
func (*WithStatement) _stmt()            {}
func (*ImportDeclaration) _stmt()        {}
func (*ExportNamedDeclaration) _stmt()   {}
func (*ExportDefaultDeclaration) _stmt() {}
func (*ExportAllDeclaration) _stmt()     {}
