package ast

// Expr is a node of the Expression category.
type Expr interface {
	Item
	isExpr()
}

func (*Identifier) isExpr() {}
func (*Identifier) item()   {}

func (*NumericLiteral) isExpr() {}
func (*NumericLiteral) item()   {}

func (*StringLiteral) isExpr() {}
func (*StringLiteral) item()   {}

func (*ArrayLiteral) isExpr() {}
func (*ArrayLiteral) item()   {}

func (*ObjectLiteral) isExpr() {}
func (*ObjectLiteral) item()   {}

func (*FunctionLiteral) isExpr() {}
func (*FunctionLiteral) item()   {}

func (*ClassLiteral) isExpr() {}
func (*ClassLiteral) item()   {}

func (*BinaryExpr) isExpr() {}
func (*BinaryExpr) item()   {}

func (*ComparisonExpr) isExpr() {}
func (*ComparisonExpr) item()   {}

func (*LogicalExpr) isExpr() {}
func (*LogicalExpr) item()   {}

func (*BitwiseExpr) isExpr() {}
func (*BitwiseExpr) item()   {}

func (*AssignmentExpr) isExpr() {}
func (*AssignmentExpr) item()   {}

func (*LogicalNotExpr) isExpr() {}
func (*LogicalNotExpr) item()   {}

func (*BitwiseNotExpr) isExpr() {}
func (*BitwiseNotExpr) item()   {}

func (*TypeOfExpr) isExpr() {}
func (*TypeOfExpr) item()   {}

func (*InstanceOfExpr) isExpr() {}
func (*InstanceOfExpr) item()   {}

func (*AwaitExpr) isExpr() {}
func (*AwaitExpr) item()   {}

func (*NewExpr) isExpr() {}
func (*NewExpr) item()   {}

func (*MemberCallExpr) isExpr() {}
func (*MemberCallExpr) item()   {}

func (*FunctionCallExpr) isExpr() {}
func (*FunctionCallExpr) item()   {}

func (*ConditionalExpr) isExpr() {}
func (*ConditionalExpr) item()   {}

// Stmt is a node of the Statement category.
type Stmt interface {
	Item
	isStmt()
}

func (*Block) isStmt() {}
func (*Block) item()   {}

func (*ClassBlock) isStmt() {}
func (*ClassBlock) item()   {}

func (*IfStmt) isStmt() {}
func (*IfStmt) item()   {}

func (*WhileStmt) isStmt() {}
func (*WhileStmt) item()   {}

func (*ImportStmt) isStmt() {}
func (*ImportStmt) item()   {}

func (*ExportStmt) isStmt() {}
func (*ExportStmt) item()   {}

func (*ReturnStmt) isStmt() {}
func (*ReturnStmt) item()   {}

func (*ThrowStmt) isStmt() {}
func (*ThrowStmt) item()   {}

func (*StaticPropertyDecl) isStmt() {}
func (*StaticPropertyDecl) item()   {}

func (*OptionsStmt) isStmt() {}
func (*OptionsStmt) item()   {}
