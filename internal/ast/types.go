package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Root
	PROGRAM

	// Statements
	BLOCK
	CLASS_BLOCK
	OPTIONS_STATEMENT
	IMPORT_STATEMENT
	EXPORT_STATEMENT
	IF_STATEMENT
	WHILE_STATEMENT
	STATIC_PROPERTY_DECLARATION
	RETURN_STATEMENT
	THROW_STATEMENT

	// Literals
	NUMERIC_LITERAL
	IDENTIFIER
	STRING_LITERAL
	ARRAY_LITERAL
	OBJECT_LITERAL
	FUNCTION_LITERAL
	CLASS_LITERAL

	// Expressions
	BINARY_EXPR
	COMPARISON_EXPR
	ASSIGNMENT_EXPR
	LOGICAL_EXPR
	LOGICAL_NOT_EXPR
	BITWISE_EXPR
	BITWISE_NOT_EXPR
	MEMBER_CALL_EXPR
	FUNCTION_CALL_EXPR
	NEW_EXPR
	CONDITIONAL_EXPR
	INSTANCE_OF_EXPR
	TYPE_OF_EXPR
	AWAIT_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:                     "Illegal",
	PROGRAM:                     "Program",
	BLOCK:                       "Block",
	CLASS_BLOCK:                 "ClassBlock",
	OPTIONS_STATEMENT:           "OptionsStatement",
	IMPORT_STATEMENT:            "ImportStatement",
	EXPORT_STATEMENT:            "ExportStatement",
	IF_STATEMENT:                "IfStatement",
	WHILE_STATEMENT:             "WhileStatement",
	STATIC_PROPERTY_DECLARATION: "StaticPropertyDeclaration",
	RETURN_STATEMENT:            "ReturnStatement",
	THROW_STATEMENT:             "ThrowStatement",
	NUMERIC_LITERAL:             "NumericLiteral",
	IDENTIFIER:                  "Identifier",
	STRING_LITERAL:              "StringLiteral",
	ARRAY_LITERAL:               "ArrayLiteral",
	OBJECT_LITERAL:              "ObjectLiteral",
	FUNCTION_LITERAL:            "FunctionLiteral",
	CLASS_LITERAL:               "ClassLiteral",
	BINARY_EXPR:                 "BinaryExpression",
	COMPARISON_EXPR:             "ComparisonExpression",
	ASSIGNMENT_EXPR:             "AssignmentExpression",
	LOGICAL_EXPR:                "LogicalExpression",
	LOGICAL_NOT_EXPR:            "LogicalNotExpression",
	BITWISE_EXPR:                "BitwiseExpression",
	BITWISE_NOT_EXPR:            "BitwiseNotExpression",
	MEMBER_CALL_EXPR:            "MemberCallExpression",
	FUNCTION_CALL_EXPR:          "FunctionCallExpression",
	NEW_EXPR:                    "NewExpression",
	CONDITIONAL_EXPR:            "ConditionalExpression",
	INSTANCE_OF_EXPR:            "InstanceOfExpression",
	TYPE_OF_EXPR:                "TypeOfExpression",
	AWAIT_EXPR:                  "AwaitExpression",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return nodeTypeNames[ILLEGAL]
}

// Category is the coarse classification that decides where a node may sit.
type Category string

const (
	PROGRAM_CATEGORY    Category = "Program"
	STATEMENT_CATEGORY  Category = "Statement"
	EXPRESSION_CATEGORY Category = "Expression"
	TOKEN_CATEGORY      Category = "Token"
)

// CategoryOf derives the category from the node's variant family.
func CategoryOf(n Node) Category {
	switch n.(type) {
	case *Program:
		return PROGRAM_CATEGORY
	case Expr:
		return EXPRESSION_CATEGORY
	case Stmt:
		return STATEMENT_CATEGORY
	default:
		return TOKEN_CATEGORY
	}
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
}
