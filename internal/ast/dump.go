package ast

// Dump converts a tree into nested maps and slices holding only strings,
// bools, maps and slices. Positions are left out, so two parses of the same
// structure dump equal. The result serializes directly to JSON or YAML.
func Dump(node Node) map[string]any {
	if node == nil || isNilNode(node) {
		return nil
	}

	out := map[string]any{
		"object": string(CategoryOf(node)),
		"kind":   node.NodeType().String(),
	}

	switch n := node.(type) {
	case *Program:
		out["body"] = dumpItems(n.Body)
		out["options"] = Dump(n.Options)

	case *Identifier:
		out["symbol"] = n.Symbol
	case *NumericLiteral:
		out["value"] = n.Value
	case *StringLiteral:
		out["value"] = n.Value
		out["mark"] = n.Mark
	case *ArrayLiteral:
		out["elements"] = dumpExprs(n.Elements)
	case *ObjectLiteral:
		props := make([]any, len(n.Properties))
		for i, p := range n.Properties {
			props[i] = map[string]any{"key": p.Key, "value": Dump(p.Value)}
		}
		out["properties"] = props
	case *FunctionLiteral:
		params := make([]any, len(n.Params))
		for i, p := range n.Params {
			params[i] = Dump(p)
		}
		out["params"] = params
		out["body"] = Dump(n.Body)
		out["async"] = n.Async
	case *ClassLiteral:
		out["extends"] = Dump(n.Extends)
		out["definition"] = Dump(n.Definition)

	case *BinaryExpr:
		dumpBinary(out, n.Left, n.Operator, n.Right)
	case *ComparisonExpr:
		dumpBinary(out, n.Left, n.Operator, n.Right)
	case *LogicalExpr:
		dumpBinary(out, n.Left, n.Operator, n.Right)
	case *BitwiseExpr:
		dumpBinary(out, n.Left, n.Operator, n.Right)
	case *AssignmentExpr:
		dumpBinary(out, n.Left, n.Operator, n.Right)

	case *LogicalNotExpr:
		out["target"] = Dump(n.Target)
	case *BitwiseNotExpr:
		out["target"] = Dump(n.Target)
	case *TypeOfExpr:
		out["target"] = Dump(n.Target)
	case *AwaitExpr:
		out["target"] = Dump(n.Target)
	case *InstanceOfExpr:
		out["target"] = Dump(n.Target)
		out["class"] = Dump(n.Class)
	case *NewExpr:
		out["target"] = Dump(n.Target)
	case *MemberCallExpr:
		out["target"] = Dump(n.Target)
		out["chain"] = dumpExprs(n.Chain)
	case *FunctionCallExpr:
		out["callee"] = Dump(n.Callee)
		out["args"] = dumpExprs(n.Args)
	case *ConditionalExpr:
		out["condition"] = Dump(n.Condition)
		out["body"] = Dump(n.Body)
		out["else"] = Dump(n.Else)

	case *Block:
		out["body"] = dumpItems(n.Body)
	case *ClassBlock:
		statics := make([]any, len(n.Statics))
		for i, s := range n.Statics {
			statics[i] = Dump(s)
		}
		inits := make([]any, len(n.Initializers))
		for i, id := range n.Initializers {
			inits[i] = Dump(id)
		}
		defs := make([]any, len(n.Definitions))
		for i, d := range n.Definitions {
			defs[i] = Dump(d)
		}
		out["statics"] = statics
		out["initializers"] = inits
		out["definitions"] = defs
		out["constructor"] = Dump(n.Constructor)
	case *IfStmt:
		out["condition"] = Dump(n.Condition)
		out["body"] = Dump(n.Body)
		out["else"] = Dump(n.Else)
	case *WhileStmt:
		out["condition"] = Dump(n.Condition)
		out["body"] = Dump(n.Body)
	case *ImportStmt:
		out["target"] = Dump(n.Target)
		out["path"] = Dump(n.Path)
	case *ExportStmt:
		out["value"] = Dump(n.Value)
	case *ReturnStmt:
		out["value"] = Dump(n.Value)
	case *ThrowStmt:
		out["value"] = Dump(n.Value)
	case *StaticPropertyDecl:
		out["expression"] = Dump(n.Expression)
	case *OptionsStmt:
		out["options"] = Dump(n.Options)
	}

	return out
}

func dumpBinary(out map[string]any, left Expr, op string, right Expr) {
	out["left"] = Dump(left)
	out["operator"] = op
	out["right"] = Dump(right)
}

func dumpItems(items []Item) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Dump(item)
	}
	return out
}

func dumpExprs(exprs []Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = Dump(e)
	}
	return out
}
