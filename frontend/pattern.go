package frontend

import "github.com/t14raptor/go-esm/ast"

// GetNamesFromPattern returns the names bound by a binding or assignment
// pattern, in breadth-first order. Holes and nodes that bind nothing are
// skipped.
//
// Levels follow the ESTree shape: a property's value sits one level below
// the property whether it is keyed or shorthand, and a shorthand default
// `{a = 1}` counts as an assignment pattern around a.
func GetNamesFromPattern(pattern ast.Node) []string {
	var names []string
	queue := []ast.Node{unwrapPattern(pattern)}

	for i := 0; i < len(queue); i++ {
		switch n := queue[i].(type) {
		case *ast.Identifier:
			if n != nil {
				names = append(names, n.Name)
			}
		case *ast.PropertyKeyed:
			queue = append(queue, unwrapPattern(n.Value))
		case *ast.PropertyShort:
			if n.Initializer != nil {
				queue = append(queue, &ast.AssignPattern{Left: &ast.Expression{Expr: n.Name}})
			} else {
				queue = append(queue, n.Name)
			}
		case *ast.AssignPattern:
			queue = append(queue, unwrapPattern(n.Left))
		case *ast.ObjectPattern:
			for _, prop := range n.Properties {
				queue = append(queue, prop.Prop)
			}
		case *ast.ArrayPattern:
			for j := range n.Elements {
				queue = append(queue, unwrapPattern(&n.Elements[j]))
			}
		case *ast.RestElement:
			queue = append(queue, unwrapPattern(n.Argument))
		}
	}
	return names
}

// unwrapPattern strips expression boxes and recovery wrappers so they never
// take a queue level of their own. It returns nil for an empty box.
func unwrapPattern(n ast.Node) ast.Node {
	for {
		switch w := n.(type) {
		case *ast.Expression:
			if w == nil || w.Expr == nil {
				return nil
			}
			n = w.Expr
		case *ast.RecoveredExpression:
			if w == nil {
				return nil
			}
			n = w.Expression
		default:
			return n
		}
	}
}
