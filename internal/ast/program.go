package ast

// Program represents a whole HydroScript file
// Example: ":options: { strict: 1 }\nimport math \"./math\"\nprint(math.pi)"
type Program struct {
	Body    []Item
	Options *ObjectLiteral // never nil; empty when the file has no :options: directive
}

// Identifier represents a bare symbol name
// Example: "counter", "print"
type Identifier struct {
	Pos    Position
	Symbol string
}

// NumericLiteral keeps the number's source text
// Example: "42", "3.14"
type NumericLiteral struct {
	Pos   Position
	Value string
}

// StringLiteral holds unescaped text and the quote mark it was written with
// Example: `"hello"`, `'world'`
type StringLiteral struct {
	Pos   Position
	Value string
	Mark  string
}

// ArrayLiteral
// Example: "[1, 2, 3,]"
type ArrayLiteral struct {
	Pos      Position
	Elements []Expr
}

// Property is one key/value entry of an object literal
type Property struct {
	Key   string
	Value Expr
}

// ObjectLiteral has unique keys, in source order
// Example: `{ name: "x", "size": 2 }`
type ObjectLiteral struct {
	Pos        Position
	Properties []Property
}

// Get returns the value stored under key.
func (o *ObjectLiteral) Get(key string) (Expr, bool) {
	for _, p := range o.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// FunctionLiteral
// Example: ">- (a, b) { return a + b }", ">>- x await x"
type FunctionLiteral struct {
	Pos    Position
	Params []*Identifier
	Body   *Block
	Async  bool
}

// ClassLiteral
// Example: "class Base { name static count = 0 >- () { } }"
type ClassLiteral struct {
	Pos        Position
	Extends    *Identifier // nil without a superclass
	Definition *ClassBlock
}

// BinaryExpr covers the arithmetic operators + - * / % **
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Right    Expr
	Operator string
}

// ComparisonExpr covers == != < <= > >=
type ComparisonExpr struct {
	Pos      Position
	Left     Expr
	Right    Expr
	Operator string
}

// LogicalExpr covers && ||
type LogicalExpr struct {
	Pos      Position
	Left     Expr
	Right    Expr
	Operator string
}

// BitwiseExpr covers & | ^ << >> >>>
type BitwiseExpr struct {
	Pos      Position
	Left     Expr
	Right    Expr
	Operator string
}

// AssignmentExpr chains to the left: "a = b = c" is "(a = b) = c"
type AssignmentExpr struct {
	Pos      Position
	Left     Expr
	Right    Expr
	Operator string
}

// LogicalNotExpr
// Example: "!ready"
type LogicalNotExpr struct {
	Pos    Position
	Target Expr
}

// BitwiseNotExpr
// Example: "~mask"
type BitwiseNotExpr struct {
	Pos    Position
	Target Expr
}

// TypeOfExpr
// Example: "$value"
type TypeOfExpr struct {
	Pos    Position
	Target Expr
}

// InstanceOfExpr
// Example: "shape instanceof Circle"
type InstanceOfExpr struct {
	Pos    Position
	Target Expr
	Class  *Identifier
}

// AwaitExpr
// Example: "await fetch(url)"
type AwaitExpr struct {
	Pos    Position
	Target Expr
}

// NewExpr only ever wraps a call
// Example: "new Point(1, 2)"
type NewExpr struct {
	Pos    Position
	Target *FunctionCallExpr
}

// MemberCallExpr collapses consecutive accesses into one chain; ".name" keys
// become string literals.
// Example: "a.b[c]" has chain ["b", c]
type MemberCallExpr struct {
	Pos    Position
	Target Expr
	Chain  []Expr
}

// FunctionCallExpr
// Example: "print(a, b)"
type FunctionCallExpr struct {
	Pos    Position
	Callee Expr
	Args   []Expr
}

// ConditionalExpr is produced when both arms of "?" ":" are single expressions
// Example: "x ? { 1 } : { 2 }"
type ConditionalExpr struct {
	Pos       Position
	Condition Expr
	Body      Expr
	Else      Expr
}

// Block holds statements and bare expressions in order
// Example: "{ a = 1 print(a) }"
type Block struct {
	Pos  Position
	Body []Item
}

// ClassBlock is the partitioned body of a class literal
type ClassBlock struct {
	Pos          Position
	Statics      []*StaticPropertyDecl
	Constructor  *FunctionLiteral // nil when the class declares none
	Initializers []*Identifier
	Definitions  []*AssignmentExpr
}

// IfStmt
// Example: "x > 1 ? { y() 1 } : { 2 }"
type IfStmt struct {
	Pos       Position
	Condition Expr
	Body      *Block
	Else      *Block // nil without ":"
}

// WhileStmt
// Example: "i < 10 while { i += 1 }"
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      *Block
}

// ImportStmt
// Example: `import math "./math"`
type ImportStmt struct {
	Pos    Position
	Target *Identifier
	Path   *StringLiteral
}

// ExportStmt
// Example: "export Point"
type ExportStmt struct {
	Pos   Position
	Value Expr
}

// ReturnStmt
// Example: "return a + b"
type ReturnStmt struct {
	Pos   Position
	Value Expr
}

// ThrowStmt
// Example: `throw "bad input"`
type ThrowStmt struct {
	Pos   Position
	Value Expr
}

// StaticPropertyDecl is only legal directly inside a class body
// Example: "static count = 0"
type StaticPropertyDecl struct {
	Pos        Position
	Expression *AssignmentExpr
}

// OptionsStmt is the root-only ":options:" environment directive
// Example: ":options: { strict: 1 }"
type OptionsStmt struct {
	Pos     Position
	Options *ObjectLiteral
}
