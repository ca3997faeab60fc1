package ast

// Idx is a byte offset into the parsed source, starting at 0.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

const (
	SourceTypeModule = "module"
	SourceTypeScript = "script"
)

type Program struct {
	Body       Statements
	SourceType string

	// Irregularities lists every malformed construct that was accepted in
	// tolerant mode. Each one is also attached to the recovered node.
	Irregularities []Irregularity

	// TopLevelAwait is set when an await expression or for-await loop appears
	// outside of any function.
	TopLevelAwait bool
	// RelaxedAwait is set when a top-level await was accepted only because the
	// await restriction was relaxed.
	RelaxedAwait bool

	End Idx
}

func (*Program) Idx0() Idx   { return 0 }
func (n *Program) Idx1() Idx { return n.End }

func (n *ArrayLiteral) Idx0() Idx          { return n.LeftBracket }
func (n *ArrayPattern) Idx0() Idx          { return n.LeftBracket }
func (n *ArrowFunctionLiteral) Idx0() Idx  { return n.Start }
func (n *AssignExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *AssignPattern) Idx0() Idx         { return n.Left.Idx0() }
func (n *AwaitExpression) Idx0() Idx       { return n.Await }
func (n *BinaryExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BooleanLiteral) Idx0() Idx        { return n.Idx }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *ClassLiteral) Idx0() Idx          { return n.Class }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (n *FunctionLiteral) Idx0() Idx       { return n.Function }
func (n *Identifier) Idx0() Idx            { return n.Idx }
func (n *Import) Idx0() Idx                { return n.Idx }
func (n *InvalidExpression) Idx0() Idx     { return n.From }
func (n *MemberExpression) Idx0() Idx      { return n.Object.Idx0() }
func (n *MetaProperty) Idx0() Idx          { return n.Idx }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *ObjectPattern) Idx0() Idx         { return n.LeftBrace }
func (n *OptionalChain) Idx0() Idx         { return n.Base.Idx0() }
func (n *PrivateIdentifier) Idx0() Idx     { return n.Idx }
func (n *RecoveredExpression) Idx0() Idx   { return n.Expression.Idx0() }
func (n *RegExpLiteral) Idx0() Idx         { return n.Idx }
func (n *RestElement) Idx0() Idx           { return n.Ellipsis }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *SpreadElement) Idx0() Idx         { return n.Ellipsis }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *SuperExpression) Idx0() Idx       { return n.Idx }
func (n *TemplateElement) Idx0() Idx       { return n.Idx }
func (n *TemplateLiteral) Idx0() Idx {
	if n.Tag != nil {
		return n.Tag.Idx0()
	}
	return n.OpenQuote
}
func (n *ThisExpression) Idx0() Idx   { return n.Idx }
func (n *UnaryExpression) Idx0() Idx  { return n.Idx }
func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Idx0()
	}
	return n.Idx
}
func (n *YieldExpression) Idx0() Idx { return n.Yield }

func (n *ArrayLiteral) Idx1() Idx          { return n.RightBracket + 1 }
func (n *ArrayPattern) Idx1() Idx          { return n.RightBracket + 1 }
func (n *ArrowFunctionLiteral) Idx1() Idx  { return n.Body.Idx1() }
func (n *AssignExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *AssignPattern) Idx1() Idx         { return n.Right.Idx1() }
func (n *AwaitExpression) Idx1() Idx       { return n.Argument.Idx1() }
func (n *BinaryExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BooleanLiteral) Idx1() Idx {
	if n.Value {
		return n.Idx + 4 // true
	}
	return n.Idx + 5 // false
}
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *ClassLiteral) Idx1() Idx          { return n.RightBrace + 1 }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (n *FunctionLiteral) Idx1() Idx       { return n.Body.Idx1() }
func (n *Identifier) Idx1() Idx            { return n.Idx + Idx(len(n.Name)) }
func (n *Import) Idx1() Idx                { return n.Idx + 6 }
func (n *InvalidExpression) Idx1() Idx     { return n.To }
func (n *MemberExpression) Idx1() Idx {
	if n.Computed {
		return n.RightBracket + 1
	}
	return n.Property.Idx1()
}
func (n *MetaProperty) Idx1() Idx { return n.Property.Idx1() }
func (n *NewExpression) Idx1() Idx {
	if n.RightParenthesis > 0 {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}
func (n *NullLiteral) Idx1() Idx         { return n.Idx + 4 }
func (n *NumberLiteral) Idx1() Idx       { return n.Idx + Idx(len(n.Raw)) }
func (n *ObjectLiteral) Idx1() Idx       { return n.RightBrace + 1 }
func (n *ObjectPattern) Idx1() Idx       { return n.RightBrace + 1 }
func (n *OptionalChain) Idx1() Idx       { return n.Base.Idx1() }
func (n *PrivateIdentifier) Idx1() Idx   { return n.Idx + 1 + Idx(len(n.Name)) }
func (n *RecoveredExpression) Idx1() Idx { return n.Expression.Idx1() }
func (n *RegExpLiteral) Idx1() Idx       { return n.Idx + Idx(len(n.Literal)) }
func (n *RestElement) Idx1() Idx         { return n.Argument.Idx1() }
func (n *SequenceExpression) Idx1() Idx  { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *SpreadElement) Idx1() Idx       { return n.Argument.Idx1() }
func (n *StringLiteral) Idx1() Idx       { return n.Idx + Idx(len(n.Raw)) }
func (n *SuperExpression) Idx1() Idx     { return n.Idx + 5 }
func (n *TemplateElement) Idx1() Idx     { return n.Idx + Idx(len(n.Literal)) }
func (n *TemplateLiteral) Idx1() Idx     { return n.CloseQuote + 1 }
func (n *ThisExpression) Idx1() Idx      { return n.Idx + 4 }
func (n *UnaryExpression) Idx1() Idx     { return n.Operand.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Operand.Idx1() + 2 // x++ x--
	}
	return n.Operand.Idx1()
}
func (n *YieldExpression) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Yield + 5
}

func (n *BlockStatement) Idx0() Idx         { return n.LeftBrace }
func (n *BreakStatement) Idx0() Idx         { return n.Idx }
func (n *CaseStatement) Idx0() Idx          { return n.Case }
func (n *CatchStatement) Idx0() Idx         { return n.Catch }
func (n *ClassDeclaration) Idx0() Idx       { return n.Class.Idx0() }
func (n *ContinueStatement) Idx0() Idx      { return n.Idx }
func (n *DebuggerStatement) Idx0() Idx      { return n.Debugger }
func (n *DoWhileStatement) Idx0() Idx       { return n.Do }
func (n *EmptyStatement) Idx0() Idx         { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx    { return n.Expression.Idx0() }
func (n *ForInStatement) Idx0() Idx         { return n.For }
func (n *ForOfStatement) Idx0() Idx         { return n.For }
func (n *ForStatement) Idx0() Idx           { return n.For }
func (n *FunctionDeclaration) Idx0() Idx    { return n.Function.Idx0() }
func (n *IfStatement) Idx0() Idx            { return n.If }
func (n *LabelledStatement) Idx0() Idx      { return n.Label.Idx0() }
func (n *RecoveredStatement) Idx0() Idx     { return n.Statement.Idx0() }
func (n *ReturnStatement) Idx0() Idx        { return n.Return }
func (n *SwitchStatement) Idx0() Idx        { return n.Switch }
func (n *ThrowStatement) Idx0() Idx         { return n.Throw }
func (n *TryStatement) Idx0() Idx           { return n.Try }
func (n *VariableDeclaration) Idx0() Idx    { return n.Idx }
func (n *VariableDeclarator) Idx0() Idx     { return n.Target.Idx0() }
func (n *WhileStatement) Idx0() Idx         { return n.While }
func (n *WithStatement) Idx0() Idx          { return n.With }
func (n *ImportDeclaration) Idx0() Idx      { return n.Import }
func (n *ExportNamedDeclaration) Idx0() Idx { return n.Export }
func (n *ExportDefaultDeclaration) Idx0() Idx {
	return n.Export
}
func (n *ExportAllDeclaration) Idx0() Idx { return n.Export }

func (n *BlockStatement) Idx1() Idx    { return n.RightBrace + 1 }
func (n *BreakStatement) Idx1() Idx    { return n.End }
func (n *CaseStatement) Idx1() Idx {
	if len(n.Consequent) > 0 {
		return n.Consequent[len(n.Consequent)-1].Idx1()
	}
	return n.Colon + 1
}
func (n *CatchStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ClassDeclaration) Idx1() Idx    { return n.Class.Idx1() }
func (n *ContinueStatement) Idx1() Idx   { return n.End }
func (n *DebuggerStatement) Idx1() Idx   { return n.Debugger + 8 }
func (n *DoWhileStatement) Idx1() Idx    { return n.RightParenthesis + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *ForInStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForOfStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForStatement) Idx1() Idx        { return n.Body.Idx1() }
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *LabelledStatement) Idx1() Idx  { return n.Statement.Idx1() }
func (n *RecoveredStatement) Idx1() Idx { return n.Statement.Idx1() }
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *SwitchStatement) Idx1() Idx { return n.RightBrace + 1 }
func (n *ThrowStatement) Idx1() Idx  { return n.Argument.Idx1() }
func (n *TryStatement) Idx1() Idx {
	if n.Finally != nil {
		return n.Finally.Idx1()
	}
	if n.Catch != nil {
		return n.Catch.Idx1()
	}
	return n.Body.Idx1()
}
func (n *VariableDeclaration) Idx1() Idx { return n.List[len(n.List)-1].Idx1() }
func (n *VariableDeclarator) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Target.Idx1()
}
func (n *WhileStatement) Idx1() Idx           { return n.Body.Idx1() }
func (n *WithStatement) Idx1() Idx            { return n.Body.Idx1() }
func (n *ImportDeclaration) Idx1() Idx        { return n.End }
func (n *ExportNamedDeclaration) Idx1() Idx   { return n.End }
func (n *ExportDefaultDeclaration) Idx1() Idx { return n.End }
func (n *ExportAllDeclaration) Idx1() Idx     { return n.End }

func (n *PropertyShort) Idx0() Idx { return n.Name.Idx }
func (n *PropertyKeyed) Idx0() Idx { return n.Key.Idx0() }
func (n *PropertyShort) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Name.Idx1()
}
func (n *PropertyKeyed) Idx1() Idx { return n.Value.Idx1() }

func (n *FieldDefinition) Idx0() Idx  { return n.Idx }
func (n *MethodDefinition) Idx0() Idx { return n.Idx }
func (n *ClassStaticBlock) Idx0() Idx { return n.Static }
func (n *FieldDefinition) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Key.Idx1()
}
func (n *MethodDefinition) Idx1() Idx { return n.Body.Idx1() }
func (n *ClassStaticBlock) Idx1() Idx { return n.Block.Idx1() }

func (n *ParameterList) Idx0() Idx { return n.Opening }
func (n *ParameterList) Idx1() Idx { return n.Closing + 1 }
func (n *ConciseBody) Idx0() Idx   { return n.Body.Idx0() }
func (n *ConciseBody) Idx1() Idx   { return n.Body.Idx1() }

func (n *ImportDefaultSpecifier) Idx0() Idx   { return n.Local.Idx0() }
func (n *ImportDefaultSpecifier) Idx1() Idx   { return n.Local.Idx1() }
func (n *ImportNamespaceSpecifier) Idx0() Idx { return n.Star }
func (n *ImportNamespaceSpecifier) Idx1() Idx { return n.Local.Idx1() }
func (n *ImportSpecifier) Idx0() Idx          { return n.Imported.Idx0() }
func (n *ImportSpecifier) Idx1() Idx          { return n.Local.Idx1() }
func (n *ExportSpecifier) Idx0() Idx          { return n.Local.Idx0() }
func (n *ExportSpecifier) Idx1() Idx          { return n.Exported.Idx1() }
func (n *ExportDefaultSpecifier) Idx0() Idx   { return n.Exported.Idx0() }
func (n *ExportDefaultSpecifier) Idx1() Idx   { return n.Exported.Idx1() }
func (n *ExportNamespaceSpecifier) Idx0() Idx { return n.Star }
func (n *ExportNamespaceSpecifier) Idx1() Idx { return n.Exported.Idx1() }
