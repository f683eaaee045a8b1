package parser

import (
	"fmt"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/lexer"
	"github.com/hyperknf/HydroScript/internal/token"
)

// parsePrimary parses one atom and then attaches every call and member
// suffix that follows it.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(atom)
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.peek(0)

	switch tok.Type {
	case token.Identifier:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.Identifier{Pos: posOf(tok), Symbol: tok.Value}, nil

	case token.Number:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.NumericLiteral{Pos: posOf(tok), Value: tok.Value}, nil

	case token.String:
		return p.parseStringLiteral()

	case token.Function, token.AsyncFunction:
		return p.parseFunctionLiteral()

	case token.Class:
		return p.parseClassLiteral()

	case token.New:
		return p.parseNew()

	case token.Await:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		target, err := p.findExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AwaitExpr{Pos: posOf(tok), Target: target}, nil

	case token.OpenParenthesis:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		inner, err := p.findExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseParenthesis); err != nil {
			return nil, err
		}
		return inner, nil

	case token.OpenSquareBracket:
		return p.parseArrayLiteral()

	case token.OpenCurlyBracket:
		return p.parseObjectLiteral()

	default:
		return nil, errors.NewSyntaxError(nil, tok)
	}
}

func (p *Parser) parseStringLiteral() (*ast.StringLiteral, error) {
	tok, err := p.expect(token.String)
	if err != nil {
		return nil, err
	}

	text, mark, err := lexer.Unquote(tok.Value)
	if err != nil {
		return nil, errors.NewTokenizeError(err.Error(), tok.Line, err)
	}
	return &ast.StringLiteral{Pos: posOf(tok), Value: text, Mark: mark}, nil
}

func (p *Parser) parseNew() (ast.Expr, error) {
	tok, err := p.consume()
	if err != nil {
		return nil, err
	}

	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	call, ok := target.(*ast.FunctionCallExpr)
	if !ok {
		return nil, kindMismatch(errors.ErrorNewWithoutCall, []string{"FunctionCallExpression"}, target)
	}
	return &ast.NewExpr{Pos: posOf(tok), Target: call}, nil
}

// parseArrayLiteral accepts "[a, b, c,]": each element may be followed by
// one comma.
func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	open, err := p.expect(token.OpenSquareBracket)
	if err != nil {
		return nil, err
	}

	array := &ast.ArrayLiteral{Pos: posOf(open), Elements: []ast.Expr{}}
	for !p.check(token.CloseSquareBracket) {
		if p.atEnd() {
			return nil, errors.NewSyntaxError([]token.Type{token.CloseSquareBracket}, p.peek(0))
		}

		element, err := p.findExpression()
		if err != nil {
			return nil, err
		}
		array.Elements = append(array.Elements, element)

		if p.check(token.Comma) {
			if _, err := p.consume(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(token.CloseSquareBracket); err != nil {
		return nil, err
	}
	return array, nil
}

func (p *Parser) parseObjectLiteral() (*ast.ObjectLiteral, error) {
	open, err := p.expect(token.OpenCurlyBracket)
	if err != nil {
		return nil, err
	}

	object := &ast.ObjectLiteral{Pos: posOf(open), Properties: []ast.Property{}}
	seen := make(map[string]bool)

	for !p.check(token.CloseCurlyBracket) {
		keyTok, err := p.expectOneOf(token.String, token.Identifier)
		if err != nil {
			return nil, err
		}

		key := keyTok.Value
		if keyTok.Type == token.String {
			if key, _, err = lexer.Unquote(keyTok.Value); err != nil {
				return nil, errors.NewTokenizeError(err.Error(), keyTok.Line, err)
			}
		}

		if seen[key] {
			return nil, errors.NewParsingError(errors.ErrorDuplicateKey,
				fmt.Sprintf("duplicate key %q in object literal", key), keyTok.Line, keyTok.Column)
		}
		seen[key] = true

		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}

		value, err := p.findExpression()
		if err != nil {
			return nil, err
		}
		object.Properties = append(object.Properties, ast.Property{Key: key, Value: value})

		if p.check(token.Comma) {
			if _, err := p.consume(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(token.CloseCurlyBracket); err != nil {
		return nil, err
	}
	return object, nil
}

// parsePostfix attaches suffixes until the lookahead is none of ( . [
func (p *Parser) parsePostfix(expr ast.Expr) (ast.Expr, error) {
	for {
		var err error

		switch p.peek(0).Type {
		case token.OpenParenthesis:
			expr, err = p.parseCall(expr)
		case token.Dot, token.OpenSquareBracket:
			expr, err = p.parseMemberChain(expr)
		default:
			return expr, nil
		}

		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	if _, err := p.expect(token.OpenParenthesis); err != nil {
		return nil, err
	}

	call := &ast.FunctionCallExpr{Pos: callee.NodePos(), Callee: callee, Args: []ast.Expr{}}
	if !p.check(token.CloseParenthesis) {
		for {
			arg, err := p.findExpression()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

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
	return call, nil
}

// parseMemberChain collects every consecutive ".name" and "[key]" access
// into one node; ".name" becomes a string key.
func (p *Parser) parseMemberChain(target ast.Expr) (ast.Expr, error) {
	member := &ast.MemberCallExpr{Pos: target.NodePos(), Target: target}

	for {
		switch p.peek(0).Type {
		case token.Dot:
			if _, err := p.consume(); err != nil {
				return nil, err
			}
			name, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			member.Chain = append(member.Chain, &ast.StringLiteral{Pos: posOf(name), Value: name.Value, Mark: `"`})

		case token.OpenSquareBracket:
			if _, err := p.consume(); err != nil {
				return nil, err
			}
			key, err := p.findExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.CloseSquareBracket); err != nil {
				return nil, err
			}
			member.Chain = append(member.Chain, key)

		default:
			if len(member.Chain) == 0 {
				return nil, errors.NewInternalError("member chain started without an access", p.peek(0).Line)
			}
			return member, nil
		}
	}
}
