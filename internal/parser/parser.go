// Package parser builds HydroScript program trees from source text or token
// sequences. Parsing stops at the first malformed construct.
package parser

import (
	"fmt"
	"os"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/lexer"
	"github.com/hyperknf/HydroScript/internal/token"
)

// DefaultMaxDepth bounds nesting when no other limit is configured.
const DefaultMaxDepth = 512

// Options tune a single parse.
type Options struct {
	// MaxDepth limits combined statement and expression nesting.
	// Zero disables the limit.
	MaxDepth int
}

func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Parser holds the state of one parse over one token sequence. It is not
// safe for concurrent use; separate parses need separate parsers.
type Parser struct {
	tokens []token.Token
	pos    int
	opts   Options
	depth  int
}

func NewParser(tokens []token.Token, opts Options) *Parser {
	return &Parser{tokens: tokens, opts: opts}
}

// scope carries the context flags that make some statements legal.
type scope struct {
	root    bool
	inClass bool
}

func ParseFile(path string, opts Options) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSourceWithOptions(path, string(source), opts)
}

// ParseSource tokenizes and parses a whole program with DefaultOptions.
func ParseSource(filename, source string) (*ast.Program, error) {
	return ParseSourceWithOptions(filename, source, DefaultOptions())
}

func ParseSourceWithOptions(filename, source string, opts Options) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(filename, source)
	if err != nil {
		return nil, err
	}

	return ParseTokens(tokens, opts)
}

// ParseTokens parses a token sequence produced by lexer.Tokenize.
func ParseTokens(tokens []token.Token, opts Options) (*ast.Program, error) {
	return NewParser(tokens, opts).ParseProgram()
}

// ParseExpression parses source holding exactly one expression. Statements
// and trailing tokens are rejected.
func ParseExpression(filename, source string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(filename, source)
	if err != nil {
		return nil, err
	}

	p := NewParser(tokens, DefaultOptions())
	expr, err := p.findExpression()
	if err != nil {
		return nil, err
	}

	if !p.atEnd() {
		return nil, errors.NewSyntaxError([]token.Type{token.FileEnd}, p.peek(0))
	}
	return expr, nil
}

// ParseProgram drives the root loop. The options directive is lifted out of
// the body; every other statement is kept in source order.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Options: &ast.ObjectLiteral{Pos: ast.Position{Line: 1, Column: 1}}}
	seenOptions := false

	for !p.atEnd() {
		item, err := p.parseStatement(scope{root: true})
		if err != nil {
			return nil, err
		}

		if opts, ok := item.(*ast.OptionsStmt); ok {
			if seenOptions {
				pos := opts.NodePos()
				return nil, errors.NewParsingError(errors.ErrorDuplicateOptions,
					"options directive is declared more than once", pos.Line, pos.Column)
			}
			seenOptions = true
			program.Options = opts.Options
			continue
		}

		program.Body = append(program.Body, item)
	}

	return program, nil
}

// enter tracks nesting and fails once it passes Options.MaxDepth.
func (p *Parser) enter() error {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		tok := p.peek(0)
		return errors.NewParsingError(errors.ErrorNestingTooDeep,
			fmt.Sprintf("nesting exceeds the maximum depth of %d", p.opts.MaxDepth), tok.Line, tok.Column)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
