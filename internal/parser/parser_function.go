package parser

import (
	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/token"
)

// parseFunctionLiteral parses ">- (a, b) body", ">- a body" and the
// asynchronous ">>-" forms.
func (p *Parser) parseFunctionLiteral() (ast.Expr, error) {
	sign, err := p.expectOneOf(token.Function, token.AsyncFunction)
	if err != nil {
		return nil, err
	}

	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionLiteral{
		Pos:    posOf(sign),
		Params: params,
		Body:   body,
		Async:  sign.Type == token.AsyncFunction,
	}, nil
}

func (p *Parser) parseParameters() ([]*ast.Identifier, error) {
	params := []*ast.Identifier{}

	open, err := p.expectOneOf(token.OpenParenthesis, token.Identifier)
	if err != nil {
		return nil, err
	}
	if open.Type == token.Identifier {
		return append(params, &ast.Identifier{Pos: posOf(open), Symbol: open.Value}), nil
	}

	if !p.check(token.CloseParenthesis) {
		for {
			name, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			params = append(params, &ast.Identifier{Pos: posOf(name), Symbol: name.Value})

			if !p.check(token.Comma) {
				break
			}
			if _, err := p.consume(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(token.CloseParenthesis); err != nil {
		return nil, err
	}
	return params, nil
}
