package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. Expression and Statement
// wrappers are transparent: Walk visits the wrapped node, and absent
// elements are skipped.
func Walk(v Visitor, node Node) {
	node = unwrap(node)
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStatements(v, n.Body)

	// Expressions
	case *ArrayLiteral:
		walkExpressions(v, n.Value)
	case *ArrayPattern:
		walkExpressions(v, n.Elements)
	case *ArrowFunctionLiteral:
		walkExpressions(v, n.ParameterList.List)
		if n.Body != nil {
			Walk(v, n.Body.Body)
		}
	case *AssignExpression:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *AssignPattern:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *AwaitExpression:
		walkExpr(v, n.Argument)
	case *BinaryExpression:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *CallExpression:
		walkExpr(v, n.Callee)
		walkExpressions(v, n.ArgumentList)
	case *ClassLiteral:
		walkIdent(v, n.Name)
		walkExpr(v, n.SuperClass)
		for _, el := range n.Body {
			Walk(v, el.Element)
		}
	case *ConditionalExpression:
		walkExpr(v, n.Test)
		walkExpr(v, n.Consequent)
		walkExpr(v, n.Alternate)
	case *FunctionLiteral:
		walkIdent(v, n.Name)
		walkExpressions(v, n.ParameterList.List)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *MemberExpression:
		walkExpr(v, n.Object)
		walkExpr(v, n.Property)
	case *MetaProperty:
		walkIdent(v, n.Meta)
		walkIdent(v, n.Property)
	case *NewExpression:
		walkExpr(v, n.Callee)
		walkExpressions(v, n.ArgumentList)
	case *ObjectLiteral:
		walkProperties(v, n.Value)
	case *ObjectPattern:
		walkProperties(v, n.Properties)
	case *OptionalChain:
		walkExpr(v, n.Base)
	case *RecoveredExpression:
		walkExpr(v, n.Expression)
	case *RestElement:
		walkExpr(v, n.Argument)
	case *SequenceExpression:
		walkExpressions(v, n.Sequence)
	case *SpreadElement:
		walkExpr(v, n.Argument)
	case *TemplateLiteral:
		walkExpr(v, n.Tag)
		for i := range n.Elements {
			Walk(v, &n.Elements[i])
		}
		walkExpressions(v, n.Expressions)
	case *UnaryExpression:
		walkExpr(v, n.Operand)
	case *UpdateExpression:
		walkExpr(v, n.Operand)
	case *YieldExpression:
		walkExpr(v, n.Argument)

	// Properties and class elements
	case *PropertyKeyed:
		walkExpr(v, n.Key)
		walkExpr(v, n.Value)
	case *PropertyShort:
		walkIdent(v, n.Name)
		walkExpr(v, n.Initializer)
	case *FieldDefinition:
		walkExpr(v, n.Key)
		walkExpr(v, n.Initializer)
	case *MethodDefinition:
		walkExpr(v, n.Key)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ClassStaticBlock:
		if n.Block != nil {
			Walk(v, n.Block)
		}

	// Statements
	case *BlockStatement:
		walkStatements(v, n.List)
	case *BreakStatement:
		walkIdent(v, n.Label)
	case *ContinueStatement:
		walkIdent(v, n.Label)
	case *CaseStatement:
		walkExpr(v, n.Test)
		walkStatements(v, n.Consequent)
	case *CatchStatement:
		walkExpr(v, n.Parameter)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ClassDeclaration:
		Walk(v, n.Class)
	case *DoWhileStatement:
		walkStmt(v, n.Body)
		walkExpr(v, n.Test)
	case *ExpressionStatement:
		walkExpr(v, n.Expression)
	case *ForInStatement:
		if n.Into != nil {
			Walk(v, n.Into.Into)
		}
		walkExpr(v, n.Source)
		walkStmt(v, n.Body)
	case *ForOfStatement:
		if n.Into != nil {
			Walk(v, n.Into.Into)
		}
		walkExpr(v, n.Source)
		walkStmt(v, n.Body)
	case *ForStatement:
		if n.Initializer != nil {
			Walk(v, n.Initializer.ForLoopInit)
		}
		walkExpr(v, n.Test)
		walkExpr(v, n.Update)
		walkStmt(v, n.Body)
	case *FunctionDeclaration:
		Walk(v, n.Function)
	case *IfStatement:
		walkExpr(v, n.Test)
		walkStmt(v, n.Consequent)
		walkStmt(v, n.Alternate)
	case *LabelledStatement:
		walkIdent(v, n.Label)
		walkStmt(v, n.Statement)
	case *RecoveredStatement:
		walkStmt(v, n.Statement)
	case *ReturnStatement:
		walkExpr(v, n.Argument)
	case *SwitchStatement:
		walkExpr(v, n.Discriminant)
		for i := range n.Body {
			Walk(v, &n.Body[i])
		}
	case *ThrowStatement:
		walkExpr(v, n.Argument)
	case *TryStatement:
		if n.Body != nil {
			Walk(v, n.Body)
		}
		if n.Catch != nil {
			Walk(v, n.Catch)
		}
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *VariableDeclaration:
		for i := range n.List {
			Walk(v, &n.List[i])
		}
	case *VariableDeclarator:
		walkExpr(v, n.Target)
		walkExpr(v, n.Initializer)
	case *WhileStatement:
		walkExpr(v, n.Test)
		walkStmt(v, n.Body)
	case *WithStatement:
		walkExpr(v, n.Object)
		walkStmt(v, n.Body)

	// Modules
	case *ImportDeclaration:
		for _, spec := range n.Specifiers {
			Walk(v, spec)
		}
		if n.Source != nil {
			Walk(v, n.Source)
		}
	case *ImportDefaultSpecifier:
		walkIdent(v, n.Local)
	case *ImportNamespaceSpecifier:
		walkIdent(v, n.Local)
	case *ImportSpecifier:
		walkIdent(v, n.Imported)
		walkIdent(v, n.Local)
	case *ExportNamedDeclaration:
		walkStmt(v, n.Declaration)
		for _, spec := range n.Specifiers {
			Walk(v, spec)
		}
		if n.Source != nil {
			Walk(v, n.Source)
		}
	case *ExportSpecifier:
		walkIdent(v, n.Local)
		walkIdent(v, n.Exported)
	case *ExportDefaultSpecifier:
		walkIdent(v, n.Exported)
	case *ExportNamespaceSpecifier:
		walkIdent(v, n.Exported)
	case *ExportDefaultDeclaration:
		walkStmt(v, n.Declaration)
		walkExpr(v, n.Expression)
	case *ExportAllDeclaration:
		walkIdent(v, n.Exported)
		if n.Source != nil {
			Walk(v, n.Source)
		}
	}

	v.Visit(nil)
}

// unwrap resolves wrapper structs to the node they carry, returning nil for
// absent elements.
func unwrap(node Node) Node {
	switch n := node.(type) {
	case nil:
		return nil
	case *Expression:
		if n == nil || n.Expr == nil {
			return nil
		}
		return n.Expr
	case *Statement:
		if n == nil || n.Stmt == nil {
			return nil
		}
		return n.Stmt
	case *Identifier:
		if n == nil {
			return nil
		}
	case *StringLiteral:
		if n == nil {
			return nil
		}
	}
	return node
}

func walkExpr(v Visitor, e *Expression) {
	if e != nil && e.Expr != nil {
		Walk(v, e.Expr)
	}
}

func walkStmt(v Visitor, s *Statement) {
	if s != nil && s.Stmt != nil {
		Walk(v, s.Stmt)
	}
}

func walkIdent(v Visitor, id *Identifier) {
	if id != nil {
		Walk(v, id)
	}
}

func walkExpressions(v Visitor, list Expressions) {
	for i := range list {
		walkExpr(v, &list[i])
	}
}

func walkStatements(v Visitor, list Statements) {
	for i := range list {
		walkStmt(v, &list[i])
	}
}

func walkProperties(v Visitor, list Properties) {
	for _, prop := range list {
		if prop.Prop != nil {
			Walk(v, prop.Prop)
		}
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
