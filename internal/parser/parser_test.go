package parser

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/token"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := ParseSource("test.hydro", source)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

func single(t *testing.T, source string) ast.Item {
	t.Helper()
	program := parse(t, source)
	require.Len(t, program.Body, 1)
	return program.Body[0]
}

func requireCode(t *testing.T, err error, code string) errors.HydroError {
	t.Helper()
	require.Error(t, err)

	var he errors.HydroError
	require.True(t, stderrors.As(err, &he), "unexpected error type %T", err)
	assert.Equal(t, code, he.Code(), he.Message())
	return he
}

func TestParseEmptyProgram(t *testing.T) {
	program := parse(t, "")
	assert.Empty(t, program.Body)
	require.NotNil(t, program.Options)
	assert.Empty(t, program.Options.Properties)
}

func TestParseCommentsOnly(t *testing.T) {
	program := parse(t, "// nothing\n/* here */")
	assert.Empty(t, program.Body)
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"1 + 2 * 3", "1 + (2 * 3)"},
		{"1 * 2 + 3", "(1 * 2) + 3"},
		{"a - b - c", "(a - b) - c"},
		{"a / b % c", "(a / b) % c"},
		{"2 ** 3 ** 2", "(2 ** 3) ** 2"},
		{"a ** b * c", "(a ** b) * c"},
		{"a + b & c", "(a + b) & c"},
		{"a << 2 | b", "(a << 2) | b"},
		{"a & b == c", "(a & b) == c"},
		{"a < b < c", "(a < b) < c"},
		{"a == b || c", "(a == b) || c"},
		{"a || b && c", "(a || b) && c"},
		{"a && b instanceof C", "(a && b) instanceof C"},
		{"a = b instanceof C", "a = (b instanceof C)"},
		{"a = b = c", "(a = b) = c"},
		{"a += b || c", "a += (b || c)"},
		{"!a ** b", "!a ** b"},
		{"!!x", "!!x"},
		{"~!x", "~!x"},
		{"~~x", "~~x"},
		{"$~x", "$~x"},
		{"!(a + b)", "!(a + b)"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			item := single(t, tt.source)
			assert.Equal(t, tt.expected, ast.ItemString(item))
		})
	}
}

func TestAdditiveTreeShape(t *testing.T) {
	item := single(t, "1 + 2 * 3")

	sum, ok := item.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Operator)
	assert.Equal(t, "1", sum.Left.(*ast.NumericLiteral).Value)

	product, ok := sum.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", product.Operator)
	assert.Equal(t, "2", product.Left.(*ast.NumericLiteral).Value)
	assert.Equal(t, "3", product.Right.(*ast.NumericLiteral).Value)
}

func TestAssignmentIsLeftAssociative(t *testing.T) {
	outer, ok := single(t, "a = b = c").(*ast.AssignmentExpr)
	require.True(t, ok)
	assert.Equal(t, "c", outer.Right.(*ast.Identifier).Symbol)

	inner, ok := outer.Left.(*ast.AssignmentExpr)
	require.True(t, ok)
	assert.Equal(t, "a", inner.Left.(*ast.Identifier).Symbol)
	assert.Equal(t, "b", inner.Right.(*ast.Identifier).Symbol)
}

func TestUnaryForms(t *testing.T) {
	not, ok := single(t, "!!x").(*ast.LogicalNotExpr)
	require.True(t, ok)
	_, ok = not.Target.(*ast.LogicalNotExpr)
	assert.True(t, ok)

	bnot, ok := single(t, "~!x").(*ast.BitwiseNotExpr)
	require.True(t, ok)
	_, ok = bnot.Target.(*ast.LogicalNotExpr)
	assert.True(t, ok)

	typeOf, ok := single(t, "$value").(*ast.TypeOfExpr)
	require.True(t, ok)
	assert.Equal(t, "value", typeOf.Target.(*ast.Identifier).Symbol)
}

func TestInstanceOf(t *testing.T) {
	expr, ok := single(t, "shape instanceof Circle").(*ast.InstanceOfExpr)
	require.True(t, ok)
	assert.Equal(t, "shape", expr.Target.(*ast.Identifier).Symbol)
	assert.Equal(t, "Circle", expr.Class.Symbol)

	_, err := ParseSource("test.hydro", "shape instanceof 1")
	he := requireCode(t, err, errors.ErrorUnexpectedToken)
	assert.Equal(t, `expected Identifier, got Number "1"`, he.Message())
}

func TestConditionalExpression(t *testing.T) {
	cond, ok := single(t, "x ? { 1 } : { 2 }").(*ast.ConditionalExpr)
	require.True(t, ok)
	assert.Equal(t, "x", cond.Condition.(*ast.Identifier).Symbol)
	assert.Equal(t, "1", cond.Body.(*ast.NumericLiteral).Value)
	assert.Equal(t, "2", cond.Else.(*ast.NumericLiteral).Value)

	_, ok = single(t, "x ? 1 : 2").(*ast.ConditionalExpr)
	assert.True(t, ok, "brace-less single statement arms")
}

func TestIfStatement(t *testing.T) {
	ifStmt, ok := single(t, "x ? { y(); 1 } : { 2 }").(*ast.IfStmt)
	require.True(t, ok)
	assert.Len(t, ifStmt.Body.Body, 2)
	require.NotNil(t, ifStmt.Else)
	assert.Len(t, ifStmt.Else.Body, 1)

	noElse, ok := single(t, "x ? { y() }").(*ast.IfStmt)
	require.True(t, ok)
	assert.Nil(t, noElse.Else)

	withReturn, ok := single(t, "x ? { return 1 } : { 2 }").(*ast.IfStmt)
	require.True(t, ok)
	_, ok = withReturn.Body.Body[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestConditionalChains(t *testing.T) {
	outer, ok := single(t, "a ? { 1 } : { 2 } ? { 3 } : { 4 }").(*ast.ConditionalExpr)
	require.True(t, ok)

	inner, ok := outer.Condition.(*ast.ConditionalExpr)
	require.True(t, ok)
	assert.Equal(t, "a", inner.Condition.(*ast.Identifier).Symbol)
	assert.Equal(t, "3", outer.Body.(*ast.NumericLiteral).Value)
}

func TestWhileStatement(t *testing.T) {
	loop, ok := single(t, "i < 10 while { i += 1 }").(*ast.WhileStmt)
	require.True(t, ok)

	cond, ok := loop.Condition.(*ast.ComparisonExpr)
	require.True(t, ok)
	assert.Equal(t, "<", cond.Operator)

	require.Len(t, loop.Body.Body, 1)
	step, ok := loop.Body.Body[0].(*ast.AssignmentExpr)
	require.True(t, ok)
	assert.Equal(t, "+=", step.Operator)
}

func TestWhileEndsSuffixChain(t *testing.T) {
	program := parse(t, "running while tick()\nnext")
	require.Len(t, program.Body, 2)

	loop, ok := program.Body[0].(*ast.WhileStmt)
	require.True(t, ok)
	require.Len(t, loop.Body.Body, 1)
	assert.Equal(t, "next", program.Body[1].(*ast.Identifier).Symbol)
}

func TestObjectLiteral(t *testing.T) {
	assign := single(t, `point = { x: 1, "y": 2 z: 3, }`).(*ast.AssignmentExpr)
	object, ok := assign.Right.(*ast.ObjectLiteral)
	require.True(t, ok)
	require.Len(t, object.Properties, 3)
	assert.Equal(t, "x", object.Properties[0].Key)
	assert.Equal(t, "y", object.Properties[1].Key)
	assert.Equal(t, "z", object.Properties[2].Key)

	value, found := object.Get("y")
	require.True(t, found)
	assert.Equal(t, "2", value.(*ast.NumericLiteral).Value)

	trailing := single(t, `o = { "a": 1, }`).(*ast.AssignmentExpr)
	assert.Len(t, trailing.Right.(*ast.ObjectLiteral).Properties, 1)

	empty := single(t, "o = {}").(*ast.AssignmentExpr)
	assert.Empty(t, empty.Right.(*ast.ObjectLiteral).Properties)
}

func TestObjectLiteralDuplicateKey(t *testing.T) {
	_, err := ParseSource("test.hydro", `{ "a": 1, "a": 2 }`)
	he := requireCode(t, err, errors.ErrorDuplicateKey)
	assert.Contains(t, he.Message(), `"a"`)
	assert.Equal(t, 1, he.Line())

	// keys compare by their unquoted text, whatever the quoting
	for _, src := range []string{
		`{ a: 1, "a": 2 }`,
		`{ "a": 1, a: 2 }`,
		`{ "a": 1, 'a': 2 }`,
		"{ 'a': 1, `a`: 2 }",
	} {
		_, err = ParseSource("test.hydro", src)
		requireCode(t, err, errors.ErrorDuplicateKey)
	}

	_, err = ParseSource("test.hydro", `{ "a": 1, "b": 2, b2: 3 }`)
	require.NoError(t, err)
}

func TestObjectLiteralErrors(t *testing.T) {
	_, err := ParseSource("test.hydro", "{ a 1 }")
	requireCode(t, err, errors.ErrorUnexpectedToken)

	_, err = ParseSource("test.hydro", "{ 1: 2 }")
	he := requireCode(t, err, errors.ErrorUnexpectedToken)
	assert.Contains(t, he.Message(), "expected one of String, Identifier")
}

func TestArrayLiteral(t *testing.T) {
	array, ok := single(t, "[1, 2, 3,]").(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, array.Elements, 3)

	empty, ok := single(t, "[]").(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Empty(t, empty.Elements)

	_, err := ParseSource("test.hydro", "[1, 2")
	requireCode(t, err, errors.ErrorUnexpectedToken)
}

func TestStringLiteral(t *testing.T) {
	str, ok := single(t, `'it\'s'`).(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "it's", str.Value)
	assert.Equal(t, "'", str.Mark)
}

func TestMemberCallChain(t *testing.T) {
	call, ok := single(t, "a.b[c](d)").(*ast.FunctionCallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "d", call.Args[0].(*ast.Identifier).Symbol)

	member, ok := call.Callee.(*ast.MemberCallExpr)
	require.True(t, ok)
	assert.Equal(t, "a", member.Target.(*ast.Identifier).Symbol)
	require.Len(t, member.Chain, 2)

	key, ok := member.Chain[0].(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "b", key.Value)
	assert.Equal(t, "c", member.Chain[1].(*ast.Identifier).Symbol)
}

func TestMemberCallDump(t *testing.T) {
	expected := map[string]any{
		"object": "Expression",
		"kind":   "FunctionCallExpression",
		"callee": map[string]any{
			"object": "Expression",
			"kind":   "MemberCallExpression",
			"target": map[string]any{"object": "Expression", "kind": "Identifier", "symbol": "a"},
			"chain": []any{
				map[string]any{"object": "Expression", "kind": "StringLiteral", "value": "b", "mark": `"`},
				map[string]any{"object": "Expression", "kind": "Identifier", "symbol": "c"},
			},
		},
		"args": []any{
			map[string]any{"object": "Expression", "kind": "Identifier", "symbol": "d"},
		},
	}

	assert.Equal(t, expected, ast.Dump(single(t, "a.b[c](d)")))
}

func TestMemberChainsCollapse(t *testing.T) {
	member, ok := single(t, "a.b.c").(*ast.MemberCallExpr)
	require.True(t, ok)
	assert.Len(t, member.Chain, 2)

	member, ok = single(t, "a.b[c]").(*ast.MemberCallExpr)
	require.True(t, ok)
	assert.Len(t, member.Chain, 2)

	call, ok := single(t, "a.b()").(*ast.FunctionCallExpr)
	require.True(t, ok)
	assert.Empty(t, call.Args)
	_, ok = call.Callee.(*ast.MemberCallExpr)
	assert.True(t, ok)

	after, ok := single(t, "a.b().c").(*ast.MemberCallExpr)
	require.True(t, ok)
	_, ok = after.Target.(*ast.FunctionCallExpr)
	assert.True(t, ok)
}

func TestCallArguments(t *testing.T) {
	call, ok := single(t, "f(1, a + b, g(2))").(*ast.FunctionCallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 3)

	_, err := ParseSource("test.hydro", "f(1,)")
	he := requireCode(t, err, errors.ErrorUnexpectedToken)
	assert.Contains(t, he.Message(), "CloseParenthesis")

	_, err = ParseSource("test.hydro", "f(return 1)")
	he = requireCode(t, err, errors.ErrorExpectedExpression)
	assert.Equal(t, "expected Expression, got ReturnStatement", he.Message())
}

func TestNewExpression(t *testing.T) {
	expr, ok := single(t, "new f()").(*ast.NewExpr)
	require.True(t, ok)
	assert.Equal(t, "f", expr.Target.Callee.(*ast.Identifier).Symbol)

	member, ok := single(t, "new a.B(1)").(*ast.NewExpr)
	require.True(t, ok)
	_, ok = member.Target.Callee.(*ast.MemberCallExpr)
	assert.True(t, ok)

	_, err := ParseSource("test.hydro", "new f")
	he := requireCode(t, err, errors.ErrorNewWithoutCall)
	assert.Equal(t, "expected FunctionCallExpression, got Identifier", he.Message())

	var pe *errors.ParsingError
	require.True(t, stderrors.As(err, &pe))
	assert.Equal(t, []string{"FunctionCallExpression"}, pe.Expected)
	assert.Equal(t, "Identifier", pe.Actual)
}

func TestAwaitExpression(t *testing.T) {
	assign := single(t, "data = await fetch(url)").(*ast.AssignmentExpr)
	await, ok := assign.Right.(*ast.AwaitExpr)
	require.True(t, ok)
	_, ok = await.Target.(*ast.FunctionCallExpr)
	assert.True(t, ok)
}

func TestFunctionLiteral(t *testing.T) {
	assign := single(t, "add = >- (a, b) { return a + b }").(*ast.AssignmentExpr)
	fn, ok := assign.Right.(*ast.FunctionLiteral)
	require.True(t, ok)
	assert.False(t, fn.Async)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Symbol)
	assert.Equal(t, "b", fn.Params[1].Symbol)
	require.Len(t, fn.Body.Body, 1)
	_, ok = fn.Body.Body[0].(*ast.ReturnStmt)
	assert.True(t, ok)

	async, ok := single(t, ">>- x await x").(*ast.FunctionLiteral)
	require.True(t, ok)
	assert.True(t, async.Async)
	require.Len(t, async.Params, 1)
	_, ok = async.Body.Body[0].(*ast.AwaitExpr)
	assert.True(t, ok)

	empty, ok := single(t, ">- () { }").(*ast.FunctionLiteral)
	require.True(t, ok)
	assert.Empty(t, empty.Params)
	assert.Empty(t, empty.Body.Body)

	_, err := ParseSource("test.hydro", ">- 1 { }")
	he := requireCode(t, err, errors.ErrorUnexpectedToken)
	assert.Contains(t, he.Message(), "expected one of OpenParenthesis, Identifier")
}

func TestClassLiteral(t *testing.T) {
	source := `Point = class Base {
    static count = 0
    name
    size = 1
    >- (n) { name = n }
}`

	assign := single(t, source).(*ast.AssignmentExpr)
	class, ok := assign.Right.(*ast.ClassLiteral)
	require.True(t, ok)
	require.NotNil(t, class.Extends)
	assert.Equal(t, "Base", class.Extends.Symbol)

	block := class.Definition
	require.Len(t, block.Statics, 1)
	assert.Equal(t, "count", block.Statics[0].Expression.Left.(*ast.Identifier).Symbol)
	require.Len(t, block.Initializers, 1)
	assert.Equal(t, "name", block.Initializers[0].Symbol)
	require.Len(t, block.Definitions, 1)
	assert.Equal(t, "size", block.Definitions[0].Left.(*ast.Identifier).Symbol)
	require.NotNil(t, block.Constructor)
	assert.Len(t, block.Constructor.Params, 1)
}

func TestEmptyClass(t *testing.T) {
	class, ok := single(t, "class { }").(*ast.ClassLiteral)
	require.True(t, ok)
	assert.Nil(t, class.Extends)
	assert.Nil(t, class.Definition.Constructor)
	assert.Empty(t, class.Definition.Statics)
}

func TestClassBodyErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   string
	}{
		{"two constructors", "class { >- () { } >- () { } }", errors.ErrorDuplicateConstructor},
		{"async constructor", "class { >>- () { } }", errors.ErrorAsyncConstructor},
		{"compound assignment", "class { x += 1 }", errors.ErrorClassAssignOperator},
		{"control statement", "class { return 1 }", errors.ErrorInvalidClassMember},
		{"binary member", "class { 1 + 2 }", errors.ErrorInvalidClassMember},
		{"static without assignment", "class { static x }", errors.ErrorExpectedAssignment},
		{"static compound assignment", "class { static x -= 1 }", errors.ErrorExpectedAssignment},
		{"static in nested block", "class { >- () { static x = 1 } }", errors.ErrorStaticOutsideClass},
		{"unterminated", "class { x", errors.ErrorUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource("test.hydro", tt.source)
			requireCode(t, err, tt.code)
		})
	}
}

func TestStaticOutsideClass(t *testing.T) {
	_, err := ParseSource("test.hydro", "static x = 1")
	he := requireCode(t, err, errors.ErrorStaticOutsideClass)
	assert.Equal(t, "Parsing", he.Kind())
}

func TestOptionsDirective(t *testing.T) {
	program := parse(t, ":options: { strict: 1 }\nx")
	require.Len(t, program.Body, 1)

	strict, found := program.Options.Get("strict")
	require.True(t, found)
	assert.Equal(t, "1", strict.(*ast.NumericLiteral).Value)

	late := parse(t, "x\n:options: { debug: 1 }")
	assert.Len(t, late.Body, 1)
	assert.Len(t, late.Options.Properties, 1)
}

func TestOptionsDirectiveErrors(t *testing.T) {
	_, err := ParseSource("test.hydro", ":options: { }\n:options: { }")
	he := requireCode(t, err, errors.ErrorDuplicateOptions)
	assert.Equal(t, 2, he.Line())

	_, err = ParseSource("test.hydro", "f = >- () { :options: { } }")
	requireCode(t, err, errors.ErrorDirectiveNotAtRoot)

	_, err = ParseSource("test.hydro", "x = [:options: { }]")
	requireCode(t, err, errors.ErrorDirectiveNotAtRoot)

	_, err = ParseSource("test.hydro", ":config: { }")
	he = requireCode(t, err, errors.ErrorUnknownDirective)
	assert.Contains(t, he.Message(), "config")

	_, err = ParseSource("test.hydro", ":options: 1")
	requireCode(t, err, errors.ErrorUnexpectedToken)
}

func TestKeywordStatements(t *testing.T) {
	program := parse(t, `import math "./math"
export math.pi
return 1 + 2
throw 'bad'`)
	require.Len(t, program.Body, 4)

	imp, ok := program.Body[0].(*ast.ImportStmt)
	require.True(t, ok)
	assert.Equal(t, "math", imp.Target.Symbol)
	assert.Equal(t, "./math", imp.Path.Value)

	exp, ok := program.Body[1].(*ast.ExportStmt)
	require.True(t, ok)
	_, ok = exp.Value.(*ast.MemberCallExpr)
	assert.True(t, ok)

	ret, ok := program.Body[2].(*ast.ReturnStmt)
	require.True(t, ok)
	_, ok = ret.Value.(*ast.BinaryExpr)
	assert.True(t, ok)

	throw, ok := program.Body[3].(*ast.ThrowStmt)
	require.True(t, ok)
	assert.Equal(t, "bad", throw.Value.(*ast.StringLiteral).Value)

	_, err := ParseSource("test.hydro", `import "./math"`)
	he := requireCode(t, err, errors.ErrorUnexpectedToken)
	assert.Equal(t, `expected Identifier, got String "\"./math\""`, he.Message())
}

func TestSyntaxErrors(t *testing.T) {
	_, err := ParseSource("test.hydro", "(1 + 2")
	he := requireCode(t, err, errors.ErrorUnexpectedToken)

	var se *errors.SyntaxError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, []token.Type{token.CloseParenthesis}, se.Expected)
	assert.Equal(t, token.FileEnd, se.Actual)
	assert.Equal(t, "Syntax", he.Kind())

	_, err = ParseSource("test.hydro", "a = )")
	requireCode(t, err, errors.ErrorUnexpectedToken)
	require.True(t, stderrors.As(err, &se))
	assert.Empty(t, se.Expected)

	_, err = ParseSource("test.hydro", "x ? { 1")
	requireCode(t, err, errors.ErrorUnexpectedToken)

	_, err = ParseSource("test.hydro", "a = 1\nb = @")
	he = requireCode(t, err, errors.ErrorTokenize)
	assert.Equal(t, 2, he.Line())
}

func TestErrorLines(t *testing.T) {
	_, err := ParseSource("test.hydro", "a = 1\nb = 2\nc = new d")
	he := requireCode(t, err, errors.ErrorNewWithoutCall)
	assert.Equal(t, 3, he.Line())
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 600) + "x" + strings.Repeat(")", 600)

	_, err := ParseSource("test.hydro", deep)
	requireCode(t, err, errors.ErrorNestingTooDeep)

	program, err := ParseSourceWithOptions("test.hydro", deep, Options{})
	require.NoError(t, err)
	assert.Equal(t, "x", program.Body[0].(*ast.Identifier).Symbol)

	_, err = ParseSourceWithOptions("test.hydro", strings.Repeat("!", 40)+"x", Options{MaxDepth: 16})
	requireCode(t, err, errors.ErrorNestingTooDeep)
}

func TestParseExpression(t *testing.T) {
	expr, err := ParseExpression("expr", "1 + 2")
	require.NoError(t, err)
	_, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)

	_, err = ParseExpression("expr", "1 2")
	he := requireCode(t, err, errors.ErrorUnexpectedToken)
	assert.Contains(t, he.Message(), "expected FileEnd")

	_, err = ParseExpression("expr", "return 1")
	requireCode(t, err, errors.ErrorExpectedExpression)
}

func TestParseTokens(t *testing.T) {
	tokens := []token.Token{
		{Type: token.Identifier, Value: "x", Line: 1, Column: 1},
		{Type: token.AssignmentOperator, Value: "=", Line: 1, Column: 3},
		{Type: token.Number, Value: "1", Line: 1, Column: 5},
	}

	// no FileEnd sentinel: the cursor treats the end of the slice as one
	program, err := ParseTokens(tokens, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, program.Body, 1)
	assert.Equal(t, "x = 1", ast.ItemString(program.Body[0]))
}

func TestConsumePastEnd(t *testing.T) {
	p := NewParser(nil, DefaultOptions())
	_, err := p.consume()
	he := requireCode(t, err, errors.ErrorInternal)
	assert.Equal(t, "Internal", he.Kind())
}

func TestPositions(t *testing.T) {
	program := parse(t, "a = 1\n  b = f(2)")
	require.Len(t, program.Body, 2)

	second := program.Body[1].(*ast.AssignmentExpr)
	assert.Equal(t, ast.Position{Line: 2, Column: 3}, second.NodePos())
	assert.Equal(t, ast.Position{Line: 2, Column: 7}, second.Right.NodePos())
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"a = 1\nb = a + 2 * 3\nprint(a, b)",
		"x > 1 ? { y() 1 } : { 2 }",
		"v = x ? { 1 } : { 2 }",
		"a ? 1 : 2 ? 3 : 4",
		"i < 10 while { i += 1 }",
		"(a = b) = c",
		":options: { strict: 1, 'mode': \"fast\" }\nimport math \"./math\"\nexport math.pi",
		"Point = class Base {\n static count = 0\n name\n size = 1\n >- (n) { name = n }\n}",
		"p = new Point(1, 2)\nq = await p\nt = $p\nok = p instanceof Point",
		"f = >- (a, b) { return a + b }\ng = >>- x await x",
		"obj = { a: [1, 2, 3,], \"b c\": 'q\\n' }\nobj.a[0] = !~$obj",
		"a.b[c](d).e",
		"(a.b).c",
		"go = >- () { x ? { return 1 } throw `oops` }",
		"x = ~!y && z || w ** 2 ** 3",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			first := parse(t, source)
			printed := first.String()

			second, err := ParseSource("printed.hydro", printed)
			require.NoError(t, err, printed)
			assert.Equal(t, ast.Dump(first), ast.Dump(second), printed)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	source := "x = { a: 1 }\nf(x.a) ? { g() } : { h() i() }"
	assert.Equal(t, ast.Dump(parse(t, source)), ast.Dump(parse(t, source)))
}
