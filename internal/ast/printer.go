package ast

import (
	"fmt"
	"strings"

	"github.com/hyperknf/HydroScript/internal/lexer"
)

// Printed source re-parses to the same tree. Binary forms are fully
// parenthesized; member chains always use the bracket form.

func (p *Program) String() string {
	var b strings.Builder

	if p.Options != nil && len(p.Options.Properties) > 0 {
		b.WriteString(":options: ")
		b.WriteString(p.Options.String())
		b.WriteString("\n")
	}

	for _, item := range p.Body {
		b.WriteString(ItemString(item))
		b.WriteString("\n")
	}

	return b.String()
}

// ItemString prints a node in statement position, where binary forms and
// prefix keywords need no surrounding parentheses.
func ItemString(item Item) string {
	switch n := item.(type) {
	case *BinaryExpr:
		return binary(n.Left, n.Operator, n.Right)
	case *ComparisonExpr:
		return binary(n.Left, n.Operator, n.Right)
	case *LogicalExpr:
		return binary(n.Left, n.Operator, n.Right)
	case *BitwiseExpr:
		return binary(n.Left, n.Operator, n.Right)
	case *AssignmentExpr:
		return binary(n.Left, n.Operator, n.Right)
	case *InstanceOfExpr:
		return fmt.Sprintf("%s instanceof %s", n.Target.String(), n.Class.String())
	case *ConditionalExpr:
		return conditional(n)
	case *NewExpr:
		return "new " + n.Target.String()
	case *AwaitExpr:
		return "await " + n.Target.String()
	default:
		return item.String()
	}
}

func binary(left Expr, op string, right Expr) string {
	return fmt.Sprintf("%s %s %s", left.String(), op, right.String())
}

func conditional(c *ConditionalExpr) string {
	return fmt.Sprintf("%s ? { %s } : { %s }", condition(c.Condition), ItemString(c.Body), ItemString(c.Else))
}

// condition prints the expression in front of a "?" or "while" suffix. An
// unwrapped await would swallow the suffix into its own operand.
func condition(e Expr) string {
	if _, ok := e.(*AwaitExpr); ok {
		return e.String()
	}
	return ItemString(e)
}

func (i *Identifier) String() string {
	return i.Symbol
}

func (n *NumericLiteral) String() string {
	return n.Value
}

func (s *StringLiteral) String() string {
	return lexer.Quote(s.Value, s.Mark)
}

func (a *ArrayLiteral) String() string {
	return "[" + joinExprs(a.Elements) + "]"
}

func (o *ObjectLiteral) String() string {
	if len(o.Properties) == 0 {
		return "{}"
	}

	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = fmt.Sprintf("%s: %s", lexer.Quote(p.Key, `"`), ItemString(p.Value))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (f *FunctionLiteral) String() string {
	sign := ">-"
	if f.Async {
		sign = ">>-"
	}

	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		params[i] = param.Symbol
	}

	return fmt.Sprintf("%s (%s) %s", sign, strings.Join(params, ", "), f.Body.String())
}

func (c *ClassLiteral) String() string {
	if c.Extends != nil {
		return fmt.Sprintf("class %s %s", c.Extends.Symbol, c.Definition.String())
	}
	return "class " + c.Definition.String()
}

func (b *BinaryExpr) String() string {
	return "(" + binary(b.Left, b.Operator, b.Right) + ")"
}

func (c *ComparisonExpr) String() string {
	return "(" + binary(c.Left, c.Operator, c.Right) + ")"
}

func (l *LogicalExpr) String() string {
	return "(" + binary(l.Left, l.Operator, l.Right) + ")"
}

func (b *BitwiseExpr) String() string {
	return "(" + binary(b.Left, b.Operator, b.Right) + ")"
}

func (a *AssignmentExpr) String() string {
	return "(" + binary(a.Left, a.Operator, a.Right) + ")"
}

func (l *LogicalNotExpr) String() string {
	return "!" + l.Target.String()
}

func (b *BitwiseNotExpr) String() string {
	return "~" + b.Target.String()
}

func (t *TypeOfExpr) String() string {
	return "$" + t.Target.String()
}

func (i *InstanceOfExpr) String() string {
	return "(" + ItemString(i) + ")"
}

func (a *AwaitExpr) String() string {
	return "(" + ItemString(a) + ")"
}

func (n *NewExpr) String() string {
	return "(" + ItemString(n) + ")"
}

func (m *MemberCallExpr) String() string {
	var b strings.Builder

	if _, nested := m.Target.(*MemberCallExpr); nested {
		b.WriteString("(" + m.Target.String() + ")")
	} else {
		b.WriteString(postfixTarget(m.Target))
	}

	for _, key := range m.Chain {
		b.WriteString("[" + ItemString(key) + "]")
	}
	return b.String()
}

func (f *FunctionCallExpr) String() string {
	return postfixTarget(f.Callee) + "(" + joinExprs(f.Args) + ")"
}

func (c *ConditionalExpr) String() string {
	return "(" + conditional(c) + ")"
}

// postfixTarget parenthesizes anything a call or member suffix would not
// attach to as a whole.
func postfixTarget(e Expr) string {
	switch e.(type) {
	case *Identifier, *NumericLiteral, *StringLiteral, *ArrayLiteral, *ObjectLiteral,
		*MemberCallExpr, *FunctionCallExpr:
		return e.String()
	default:
		s := e.String()
		if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && isWrapped(e) {
			return s
		}
		return "(" + s + ")"
	}
}

// isWrapped reports whether e's own String already carries outer parentheses.
func isWrapped(e Expr) bool {
	switch e.(type) {
	case *BinaryExpr, *ComparisonExpr, *LogicalExpr, *BitwiseExpr, *AssignmentExpr,
		*InstanceOfExpr, *AwaitExpr, *NewExpr, *ConditionalExpr:
		return true
	default:
		return false
	}
}

func (b *Block) String() string {
	if len(b.Body) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, item := range b.Body {
		sb.WriteString("  " + strings.ReplaceAll(ItemString(item), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (cb *ClassBlock) String() string {
	var lines []string

	for _, s := range cb.Statics {
		lines = append(lines, s.String())
	}
	for _, i := range cb.Initializers {
		lines = append(lines, i.String())
	}
	for _, d := range cb.Definitions {
		lines = append(lines, ItemString(d))
	}
	if cb.Constructor != nil {
		lines = append(lines, cb.Constructor.String())
	}

	if len(lines) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, line := range lines {
		sb.WriteString("  " + strings.ReplaceAll(line, "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (i *IfStmt) String() string {
	s := fmt.Sprintf("%s ? %s", condition(i.Condition), i.Body.String())
	if i.Else != nil {
		s += " : " + i.Else.String()
	}
	return s
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("%s while %s", condition(w.Condition), w.Body.String())
}

func (i *ImportStmt) String() string {
	return fmt.Sprintf("import %s %s", i.Target.Symbol, i.Path.String())
}

func (e *ExportStmt) String() string {
	return "export " + ItemString(e.Value)
}

func (r *ReturnStmt) String() string {
	return "return " + ItemString(r.Value)
}

func (t *ThrowStmt) String() string {
	return "throw " + ItemString(t.Value)
}

func (s *StaticPropertyDecl) String() string {
	return "static " + ItemString(s.Expression)
}

func (o *OptionsStmt) String() string {
	return ":options: " + o.Options.String()
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = ItemString(e)
	}
	return strings.Join(parts, ", ")
}
