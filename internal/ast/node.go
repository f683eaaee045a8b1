package ast

// Node is implemented by every tree node.
type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

// Item is anything that may sit in a statement position: a Stmt or a bare Expr.
type Item interface {
	Node
	item()
}

func (*Program) NodePos() Position  { return Position{Line: 1, Column: 1} }
func (*Program) NodeType() NodeType { return PROGRAM }

func (i *Identifier) NodePos() Position { return i.Pos }
func (*Identifier) NodeType() NodeType  { return IDENTIFIER }

func (n *NumericLiteral) NodePos() Position { return n.Pos }
func (*NumericLiteral) NodeType() NodeType  { return NUMERIC_LITERAL }

func (s *StringLiteral) NodePos() Position { return s.Pos }
func (*StringLiteral) NodeType() NodeType  { return STRING_LITERAL }

func (a *ArrayLiteral) NodePos() Position { return a.Pos }
func (*ArrayLiteral) NodeType() NodeType  { return ARRAY_LITERAL }

func (o *ObjectLiteral) NodePos() Position { return o.Pos }
func (*ObjectLiteral) NodeType() NodeType  { return OBJECT_LITERAL }

func (f *FunctionLiteral) NodePos() Position { return f.Pos }
func (*FunctionLiteral) NodeType() NodeType  { return FUNCTION_LITERAL }

func (c *ClassLiteral) NodePos() Position { return c.Pos }
func (*ClassLiteral) NodeType() NodeType  { return CLASS_LITERAL }

func (b *BinaryExpr) NodePos() Position { return b.Pos }
func (*BinaryExpr) NodeType() NodeType  { return BINARY_EXPR }

func (c *ComparisonExpr) NodePos() Position { return c.Pos }
func (*ComparisonExpr) NodeType() NodeType  { return COMPARISON_EXPR }

func (l *LogicalExpr) NodePos() Position { return l.Pos }
func (*LogicalExpr) NodeType() NodeType  { return LOGICAL_EXPR }

func (b *BitwiseExpr) NodePos() Position { return b.Pos }
func (*BitwiseExpr) NodeType() NodeType  { return BITWISE_EXPR }

func (a *AssignmentExpr) NodePos() Position { return a.Pos }
func (*AssignmentExpr) NodeType() NodeType  { return ASSIGNMENT_EXPR }

func (l *LogicalNotExpr) NodePos() Position { return l.Pos }
func (*LogicalNotExpr) NodeType() NodeType  { return LOGICAL_NOT_EXPR }

func (b *BitwiseNotExpr) NodePos() Position { return b.Pos }
func (*BitwiseNotExpr) NodeType() NodeType  { return BITWISE_NOT_EXPR }

func (t *TypeOfExpr) NodePos() Position { return t.Pos }
func (*TypeOfExpr) NodeType() NodeType  { return TYPE_OF_EXPR }

func (i *InstanceOfExpr) NodePos() Position { return i.Pos }
func (*InstanceOfExpr) NodeType() NodeType  { return INSTANCE_OF_EXPR }

func (a *AwaitExpr) NodePos() Position { return a.Pos }
func (*AwaitExpr) NodeType() NodeType  { return AWAIT_EXPR }

func (n *NewExpr) NodePos() Position { return n.Pos }
func (*NewExpr) NodeType() NodeType  { return NEW_EXPR }

func (m *MemberCallExpr) NodePos() Position { return m.Pos }
func (*MemberCallExpr) NodeType() NodeType  { return MEMBER_CALL_EXPR }

func (f *FunctionCallExpr) NodePos() Position { return f.Pos }
func (*FunctionCallExpr) NodeType() NodeType  { return FUNCTION_CALL_EXPR }

func (c *ConditionalExpr) NodePos() Position { return c.Pos }
func (*ConditionalExpr) NodeType() NodeType  { return CONDITIONAL_EXPR }

func (b *Block) NodePos() Position { return b.Pos }
func (*Block) NodeType() NodeType  { return BLOCK }

func (cb *ClassBlock) NodePos() Position { return cb.Pos }
func (*ClassBlock) NodeType() NodeType   { return CLASS_BLOCK }

func (i *IfStmt) NodePos() Position { return i.Pos }
func (*IfStmt) NodeType() NodeType  { return IF_STATEMENT }

func (w *WhileStmt) NodePos() Position { return w.Pos }
func (*WhileStmt) NodeType() NodeType  { return WHILE_STATEMENT }

func (i *ImportStmt) NodePos() Position { return i.Pos }
func (*ImportStmt) NodeType() NodeType  { return IMPORT_STATEMENT }

func (e *ExportStmt) NodePos() Position { return e.Pos }
func (*ExportStmt) NodeType() NodeType  { return EXPORT_STATEMENT }

func (r *ReturnStmt) NodePos() Position { return r.Pos }
func (*ReturnStmt) NodeType() NodeType  { return RETURN_STATEMENT }

func (t *ThrowStmt) NodePos() Position { return t.Pos }
func (*ThrowStmt) NodeType() NodeType  { return THROW_STATEMENT }

func (s *StaticPropertyDecl) NodePos() Position { return s.Pos }
func (*StaticPropertyDecl) NodeType() NodeType  { return STATIC_PROPERTY_DECLARATION }

func (o *OptionsStmt) NodePos() Position { return o.Pos }
func (*OptionsStmt) NodeType() NodeType  { return OPTIONS_STATEMENT }

