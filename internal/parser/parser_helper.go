package parser

import (
	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/token"
)

func (p *Parser) atEnd() bool {
	return p.peek(0).Type == token.FileEnd
}

// peek looks offset tokens ahead without consuming. Looking past the end of
// the sequence yields a FileEnd token.
func (p *Parser) peek(offset int) token.Token {
	i := p.pos + offset
	if i < len(p.tokens) {
		return p.tokens[i]
	}

	end := token.Token{Type: token.FileEnd}
	if n := len(p.tokens); n > 0 {
		end.Line = p.tokens[n-1].Line
		end.Column = p.tokens[n-1].Column
	}
	return end
}

func (p *Parser) consume() (token.Token, error) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, errors.NewInternalError("consumed past the end of the token sequence", p.peek(0).Line)
	}

	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

func (p *Parser) check(tt token.Type) bool {
	return p.peek(0).Type == tt
}

func (p *Parser) expect(tt token.Type) (token.Token, error) {
	return p.expectOneOf(tt)
}

func (p *Parser) expectOneOf(types ...token.Type) (token.Token, error) {
	current := p.peek(0)
	for _, tt := range types {
		if current.Type == tt {
			return p.consume()
		}
	}
	return token.Token{}, errors.NewSyntaxError(types, current)
}

func posOf(tok token.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

func kindMismatch(code string, expected []string, got ast.Node) error {
	pos := got.NodePos()
	return errors.NewKindMismatch(code, expected, got.NodeType().String(), pos.Line, pos.Column)
}
