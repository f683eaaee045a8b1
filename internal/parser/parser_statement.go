package parser

import (
	"fmt"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/token"
)

// parseStatement dispatches on leading keywords and the ":name:" directive.
// Anything else is an expression, which may then take "?" and "while"
// suffixes.
func (p *Parser) parseStatement(sc scope) (ast.Item, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.peek(0).Type {
	case token.Import:
		return p.parseImport()
	case token.Export, token.Return, token.Throw:
		return p.parseValueStatement()
	case token.Static:
		return p.parseStatic(sc)
	case token.Colon:
		if p.peek(1).Type == token.Identifier && p.peek(2).Type == token.Colon {
			return p.parseDirective(sc)
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var result ast.Item = expr
	for {
		cond, ok := result.(ast.Expr)
		if !ok {
			return result, nil
		}

		switch {
		case p.check(token.QuestionMark):
			if result, err = p.parseIf(cond); err != nil {
				return nil, err
			}
		case p.check(token.While):
			return p.parseWhile(cond)
		default:
			return result, nil
		}
	}
}

func (p *Parser) parseImport() (ast.Item, error) {
	start, err := p.expect(token.Import)
	if err != nil {
		return nil, err
	}

	target, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	path, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}

	return &ast.ImportStmt{
		Pos:    posOf(start),
		Target: &ast.Identifier{Pos: posOf(target), Symbol: target.Value},
		Path:   path,
	}, nil
}

// parseValueStatement handles export, return and throw, which all take
// exactly one expression.
func (p *Parser) parseValueStatement() (ast.Item, error) {
	keyword, err := p.consume()
	if err != nil {
		return nil, err
	}

	value, err := p.findExpression()
	if err != nil {
		return nil, err
	}

	pos := posOf(keyword)
	switch keyword.Type {
	case token.Export:
		return &ast.ExportStmt{Pos: pos, Value: value}, nil
	case token.Return:
		return &ast.ReturnStmt{Pos: pos, Value: value}, nil
	case token.Throw:
		return &ast.ThrowStmt{Pos: pos, Value: value}, nil
	default:
		return nil, errors.NewInternalError(fmt.Sprintf("%s is not a value statement keyword", keyword.Type), keyword.Line)
	}
}

func (p *Parser) parseStatic(sc scope) (ast.Item, error) {
	start := p.peek(0)
	if !sc.inClass {
		return nil, errors.NewParsingError(errors.ErrorStaticOutsideClass,
			"static property declaration outside of a class body", start.Line, start.Column)
	}

	if _, err := p.consume(); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	assign, ok := expr.(*ast.AssignmentExpr)
	if !ok {
		return nil, kindMismatch(errors.ErrorExpectedAssignment, []string{"AssignmentExpression"}, expr)
	}
	if assign.Operator != "=" {
		pos := assign.NodePos()
		return nil, errors.NewParsingError(errors.ErrorExpectedAssignment,
			fmt.Sprintf("static property must be assigned with =, got %s", assign.Operator), pos.Line, pos.Column)
	}

	return &ast.StaticPropertyDecl{Pos: posOf(start), Expression: assign}, nil
}

// parseDirective handles ":name: value". Only ":options:" exists and it is
// only legal at file root.
func (p *Parser) parseDirective(sc scope) (ast.Item, error) {
	start := p.peek(0)
	if !sc.root {
		return nil, errors.NewParsingError(errors.ErrorDirectiveNotAtRoot,
			"environment directive outside of the file root", start.Line, start.Column)
	}

	var name token.Token
	for i := 0; i < 3; i++ {
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.Identifier {
			name = tok
		}
	}

	if name.Value != "options" {
		return nil, errors.NewParsingError(errors.ErrorUnknownDirective,
			fmt.Sprintf("unknown environment directive %q", name.Value), name.Line, name.Column)
	}

	options, err := p.parseObjectLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.OptionsStmt{Pos: posOf(start), Options: options}, nil
}

// parseIf turns "cond ? body : else" into a ConditionalExpr when both arms
// are single bare expressions, and into an IfStmt otherwise.
func (p *Parser) parseIf(cond ast.Expr) (ast.Item, error) {
	if _, err := p.expect(token.QuestionMark); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.Block
	if p.check(token.Colon) {
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		if elseBlock, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}

	if elseBlock != nil {
		then, thenOK := soleExpr(body)
		other, elseOK := soleExpr(elseBlock)
		if thenOK && elseOK {
			return &ast.ConditionalExpr{Pos: cond.NodePos(), Condition: cond, Body: then, Else: other}, nil
		}
	}

	return &ast.IfStmt{Pos: cond.NodePos(), Condition: cond, Body: body, Else: elseBlock}, nil
}

func soleExpr(b *ast.Block) (ast.Expr, bool) {
	if len(b.Body) != 1 {
		return nil, false
	}
	expr, ok := b.Body[0].(ast.Expr)
	return expr, ok
}

func (p *Parser) parseWhile(cond ast.Expr) (ast.Item, error) {
	if _, err := p.expect(token.While); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Pos: cond.NodePos(), Condition: cond, Body: body}, nil
}

// parseBlock reads "{ statements }", or a single statement when no brace
// follows.
func (p *Parser) parseBlock() (*ast.Block, error) {
	start := p.peek(0)
	block := &ast.Block{Pos: posOf(start), Body: []ast.Item{}}

	if !p.check(token.OpenCurlyBracket) {
		item, err := p.parseStatement(scope{})
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, item)
		return block, nil
	}

	if _, err := p.consume(); err != nil {
		return nil, err
	}

	for !p.check(token.CloseCurlyBracket) {
		if p.atEnd() {
			return nil, errors.NewSyntaxError([]token.Type{token.CloseCurlyBracket}, p.peek(0))
		}

		item, err := p.parseStatement(scope{})
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, item)
	}

	if _, err := p.expect(token.CloseCurlyBracket); err != nil {
		return nil, err
	}
	return block, nil
}
