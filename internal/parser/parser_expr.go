package parser

import (
	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/token"
)

// Binding power grows down the chain:
//
//	assignment < instanceof < logical < comparison < bitwise < additive
//	< multiplicative < exponential < ! < ~ < $ < primary
//
// Every binary tier folds to the left.

// findExpression parses one statement-or-expression unit and rejects
// anything that is not an expression.
func (p *Parser) findExpression() (ast.Expr, error) {
	item, err := p.parseStatement(scope{})
	if err != nil {
		return nil, err
	}

	expr, ok := item.(ast.Expr)
	if !ok {
		return nil, kindMismatch(errors.ErrorExpectedExpression, []string{"Expression"}, item)
	}
	return expr, nil
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssignment()
}

type binaryBuilder func(left ast.Expr, op string, right ast.Expr) ast.Expr

// foldLeft parses operand, then keeps folding "op operand" pairs into the
// tree for as long as matches accepts the lookahead.
func (p *Parser) foldLeft(operand func() (ast.Expr, error), matches func(token.Token) bool, build binaryBuilder) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for matches(p.peek(0)) {
		op, err := p.consume()
		if err != nil {
			return nil, err
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = build(left, op.Value, right)
	}

	return left, nil
}

func ofType(tt token.Type) func(token.Token) bool {
	return func(tok token.Token) bool { return tok.Type == tt }
}

func arithmetic(ops ...string) func(token.Token) bool {
	return func(tok token.Token) bool {
		if tok.Type != token.BinaryOperator {
			return false
		}
		for _, op := range ops {
			if tok.Value == op {
				return true
			}
		}
		return false
	}
}

func (p *Parser) parseAssignment() (ast.Expr, error) {
	return p.foldLeft(p.parseInstanceOf, ofType(token.AssignmentOperator),
		func(left ast.Expr, op string, right ast.Expr) ast.Expr {
			return &ast.AssignmentExpr{Pos: left.NodePos(), Left: left, Operator: op, Right: right}
		})
}

func (p *Parser) parseInstanceOf() (ast.Expr, error) {
	left, err := p.parseLogical()
	if err != nil {
		return nil, err
	}

	for p.check(token.InstanceOf) {
		if _, err := p.consume(); err != nil {
			return nil, err
		}

		class, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}

		left = &ast.InstanceOfExpr{
			Pos:    left.NodePos(),
			Target: left,
			Class:  &ast.Identifier{Pos: posOf(class), Symbol: class.Value},
		}
	}

	return left, nil
}

func (p *Parser) parseLogical() (ast.Expr, error) {
	return p.foldLeft(p.parseComparison, ofType(token.LogicalOperator),
		func(left ast.Expr, op string, right ast.Expr) ast.Expr {
			return &ast.LogicalExpr{Pos: left.NodePos(), Left: left, Operator: op, Right: right}
		})
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	return p.foldLeft(p.parseBitwise, ofType(token.ComparisonOperator),
		func(left ast.Expr, op string, right ast.Expr) ast.Expr {
			return &ast.ComparisonExpr{Pos: left.NodePos(), Left: left, Operator: op, Right: right}
		})
}

func (p *Parser) parseBitwise() (ast.Expr, error) {
	return p.foldLeft(p.parseAdditive, ofType(token.BitwiseOperator),
		func(left ast.Expr, op string, right ast.Expr) ast.Expr {
			return &ast.BitwiseExpr{Pos: left.NodePos(), Left: left, Operator: op, Right: right}
		})
}

func newBinary(left ast.Expr, op string, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{Pos: left.NodePos(), Left: left, Operator: op, Right: right}
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.foldLeft(p.parseMultiplicative, arithmetic("+", "-"), newBinary)
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.foldLeft(p.parseExponential, arithmetic("*", "/", "%"), newBinary)
}

// parseExponential folds to the left like every other tier:
// 2 ** 3 ** 2 is (2 ** 3) ** 2.
func (p *Parser) parseExponential() (ast.Expr, error) {
	return p.foldLeft(p.parseLogicalNot, arithmetic("**"), newBinary)
}

// parseLogicalNot falls through to the bitwise-not tier, which in turn
// recurses back here, so any mix of ! ~ $ prefixes resolves.
func (p *Parser) parseLogicalNot() (ast.Expr, error) {
	if !p.check(token.Not) {
		return p.parseBitwiseNot()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	op, err := p.consume()
	if err != nil {
		return nil, err
	}

	target, err := p.parseLogicalNot()
	if err != nil {
		return nil, err
	}
	return &ast.LogicalNotExpr{Pos: posOf(op), Target: target}, nil
}

func (p *Parser) parseBitwiseNot() (ast.Expr, error) {
	if !p.check(token.BitwiseNot) {
		return p.parseTypeOf()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	op, err := p.consume()
	if err != nil {
		return nil, err
	}

	target, err := p.parseLogicalNot()
	if err != nil {
		return nil, err
	}
	return &ast.BitwiseNotExpr{Pos: posOf(op), Target: target}, nil
}

func (p *Parser) parseTypeOf() (ast.Expr, error) {
	if !p.check(token.TypeOf) {
		return p.parsePrimary()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	op, err := p.consume()
	if err != nil {
		return nil, err
	}

	target, err := p.parseLogicalNot()
	if err != nil {
		return nil, err
	}
	return &ast.TypeOfExpr{Pos: posOf(op), Target: target}, nil
}
