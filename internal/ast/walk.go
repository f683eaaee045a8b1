package ast

// Children returns the direct child nodes of node in source order.
// Class block members come back grouped the way ClassBlock stores them.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil && !isNilNode(n) {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *Program:
		add(n.Options)
		for _, item := range n.Body {
			add(item)
		}

	case *ArrayLiteral:
		for _, e := range n.Elements {
			add(e)
		}
	case *ObjectLiteral:
		for _, p := range n.Properties {
			add(p.Value)
		}
	case *FunctionLiteral:
		for _, param := range n.Params {
			add(param)
		}
		add(n.Body)
	case *ClassLiteral:
		add(n.Extends)
		add(n.Definition)

	case *BinaryExpr:
		add(n.Left)
		add(n.Right)
	case *ComparisonExpr:
		add(n.Left)
		add(n.Right)
	case *LogicalExpr:
		add(n.Left)
		add(n.Right)
	case *BitwiseExpr:
		add(n.Left)
		add(n.Right)
	case *AssignmentExpr:
		add(n.Left)
		add(n.Right)

	case *LogicalNotExpr:
		add(n.Target)
	case *BitwiseNotExpr:
		add(n.Target)
	case *TypeOfExpr:
		add(n.Target)
	case *AwaitExpr:
		add(n.Target)
	case *InstanceOfExpr:
		add(n.Target)
		add(n.Class)
	case *NewExpr:
		add(n.Target)
	case *MemberCallExpr:
		add(n.Target)
		for _, key := range n.Chain {
			add(key)
		}
	case *FunctionCallExpr:
		add(n.Callee)
		for _, arg := range n.Args {
			add(arg)
		}
	case *ConditionalExpr:
		add(n.Condition)
		add(n.Body)
		add(n.Else)

	case *Block:
		for _, item := range n.Body {
			add(item)
		}
	case *ClassBlock:
		for _, s := range n.Statics {
			add(s)
		}
		for _, i := range n.Initializers {
			add(i)
		}
		for _, d := range n.Definitions {
			add(d)
		}
		add(n.Constructor)
	case *IfStmt:
		add(n.Condition)
		add(n.Body)
		add(n.Else)
	case *WhileStmt:
		add(n.Condition)
		add(n.Body)
	case *ImportStmt:
		add(n.Target)
		add(n.Path)
	case *ExportStmt:
		add(n.Value)
	case *ReturnStmt:
		add(n.Value)
	case *ThrowStmt:
		add(n.Value)
	case *StaticPropertyDecl:
		add(n.Expression)
	case *OptionsStmt:
		add(n.Options)
	}

	return out
}

// isNilNode catches typed nil pointers stored in an interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *ObjectLiteral:
		return v == nil
	case *StringLiteral:
		return v == nil
	case *FunctionLiteral:
		return v == nil
	case *FunctionCallExpr:
		return v == nil
	case *Block:
		return v == nil
	case *ClassBlock:
		return v == nil
	case *AssignmentExpr:
		return v == nil
	}
	return false
}

// Inspect traverses the tree depth-first. It calls f(node) and, when f
// returns true, descends into the children of node.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || isNilNode(node) || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}
