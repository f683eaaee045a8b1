// Package lexer turns HydroScript source text into the token sequence consumed by the parser.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/token"
)

// Rule order matters: the first rule matching at the current offset wins.
var HydroLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
		{Name: "Comment", Pattern: `//[^\n]*|/\*[\s\S]*?\*/`, Action: nil},
		{Name: "Semicolon", Pattern: `;`, Action: nil},

		// Literals
		{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?`, Action: nil},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'|` + "`(?:\\\\.|[^`\\\\])*`", Action: nil},

		// Function signs
		{Name: "AsyncFunction", Pattern: `>>-`, Action: nil},
		{Name: "Function", Pattern: `>-`, Action: nil},

		// Operators
		{Name: "CompoundAssign", Pattern: `\*\*=|<<=|>>>=|>>=|[-+*/%&|^]=`, Action: nil},
		{Name: "Equality", Pattern: `==|!=|<=|>=`, Action: nil},
		{Name: "Logical", Pattern: `&&|\|\|`, Action: nil},
		{Name: "Shift", Pattern: `<<|>>>|>>`, Action: nil},
		{Name: "Bitwise", Pattern: `[&|^]`, Action: nil},
		{Name: "Relational", Pattern: `[<>]`, Action: nil},
		{Name: "Assign", Pattern: `=`, Action: nil},
		{Name: "Power", Pattern: `\*\*`, Action: nil},
		{Name: "Arithmetic", Pattern: `[-+*/%]`, Action: nil},
		{Name: "Not", Pattern: `!`, Action: nil},
		{Name: "Tilde", Pattern: `~`, Action: nil},
		{Name: "Dollar", Pattern: `\$`, Action: nil},

		// Punctuation
		{Name: "OpenParenthesis", Pattern: `\(`, Action: nil},
		{Name: "CloseParenthesis", Pattern: `\)`, Action: nil},
		{Name: "OpenSquareBracket", Pattern: `\[`, Action: nil},
		{Name: "CloseSquareBracket", Pattern: `\]`, Action: nil},
		{Name: "OpenCurlyBracket", Pattern: `\{`, Action: nil},
		{Name: "CloseCurlyBracket", Pattern: `\}`, Action: nil},
		{Name: "Comma", Pattern: `,`, Action: nil},
		{Name: "Dot", Pattern: `\.`, Action: nil},
		{Name: "Colon", Pattern: `:`, Action: nil},
		{Name: "QuestionMark", Pattern: `\?`, Action: nil},

		// Keywords are promoted from identifiers after matching
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},
	},
})

var ruleTypes = map[string]token.Type{
	"Number":             token.Number,
	"String":             token.String,
	"AsyncFunction":      token.AsyncFunction,
	"Function":           token.Function,
	"CompoundAssign":     token.AssignmentOperator,
	"Assign":             token.AssignmentOperator,
	"Equality":           token.ComparisonOperator,
	"Relational":         token.ComparisonOperator,
	"Logical":            token.LogicalOperator,
	"Shift":              token.BitwiseOperator,
	"Bitwise":            token.BitwiseOperator,
	"Power":              token.BinaryOperator,
	"Arithmetic":         token.BinaryOperator,
	"Not":                token.Not,
	"Tilde":              token.BitwiseNot,
	"Dollar":             token.TypeOf,
	"OpenParenthesis":    token.OpenParenthesis,
	"CloseParenthesis":   token.CloseParenthesis,
	"OpenSquareBracket":  token.OpenSquareBracket,
	"CloseSquareBracket": token.CloseSquareBracket,
	"OpenCurlyBracket":   token.OpenCurlyBracket,
	"CloseCurlyBracket":  token.CloseCurlyBracket,
	"Comma":              token.Comma,
	"Dot":                token.Dot,
	"Colon":              token.Colon,
	"QuestionMark":       token.QuestionMark,
}

// elided rules never reach the parser
var elided = map[string]bool{
	"Whitespace": true,
	"Comment":    true,
	"Semicolon":  true,
}

var symbolNames = invert(HydroLexer.Symbols())

func invert(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		out[tt] = name
	}
	return out
}

// Tokenize scans source and returns its tokens. The result always ends with a
// single token.FileEnd sentinel.
func Tokenize(filename, source string) ([]token.Token, error) {
	lex, err := HydroLexer.Lex(filename, strings.NewReader(source))
	if err != nil {
		return nil, wrapLexError(err)
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, wrapLexError(err)
	}

	tokens := make([]token.Token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}

		name := symbolNames[tok.Type]
		if elided[name] {
			continue
		}

		tokens = append(tokens, token.Token{
			Type:   classify(name, tok.Value),
			Value:  tok.Value,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}

	tokens = append(tokens, endOf(source))
	return tokens, nil
}

func classify(name, value string) token.Type {
	if name == "Ident" {
		return token.LookupIdent(value)
	}
	if tt, ok := ruleTypes[name]; ok {
		return tt
	}
	return token.ILLEGAL
}

func endOf(source string) token.Token {
	line := strings.Count(source, "\n") + 1
	column := utf8.RuneCountInString(source[strings.LastIndex(source, "\n")+1:]) + 1
	return token.Token{Type: token.FileEnd, Line: line, Column: column}
}

type positioned interface {
	Position() lexer.Position
	Message() string
}

func wrapLexError(err error) error {
	if pe, ok := err.(positioned); ok {
		return errors.NewTokenizeError(pe.Message(), pe.Position().Line, err)
	}
	return errors.NewTokenizeError(fmt.Sprintf("failed to tokenize: %v", err), 0, err)
}
