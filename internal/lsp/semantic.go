package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hyperknf/HydroScript/internal/lexer"
	"github.com/hyperknf/HydroScript/internal/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

var operatorTypes = map[token.Type]bool{
	token.BinaryOperator:     true,
	token.ComparisonOperator: true,
	token.LogicalOperator:    true,
	token.BitwiseOperator:    true,
	token.AssignmentOperator: true,
	token.Not:                true,
	token.BitwiseNot:         true,
	token.TypeOf:             true,
	token.QuestionMark:       true,
	token.Colon:              true,
}

// collectSemanticTokens classifies the lexical tokens of source. Identifiers
// after a dot or before an object key colon are properties. An identifier
// followed by a plain assignment is marked as a declaration.
func collectSemanticTokens(source string) ([]SemanticToken, error) {
	toks, err := lexer.Tokenize("", source)
	if err != nil {
		return nil, err
	}

	lines := sourceLines(source)
	makeToken := func(tok token.Token, tokenType string, declModifier int) []SemanticToken {
		return newSemanticToken(lines, tok, tokenType, declModifier)
	}

	var tokens []SemanticToken
	for i, tok := range toks {
		var prev, next token.Token
		if i > 0 {
			prev = toks[i-1]
		}
		if i+1 < len(toks) {
			next = toks[i+1]
		}

		switch {
		case tok.Type == token.Function || tok.Type == token.AsyncFunction || token.IsKeyword(tok.Type):
			tokens = append(tokens, makeToken(tok, "keyword", 0)...)
		case tok.Type == token.Number:
			tokens = append(tokens, makeToken(tok, "number", 0)...)
		case tok.Type == token.String:
			tokens = append(tokens, makeToken(tok, "string", 0)...)
		case operatorTypes[tok.Type]:
			tokens = append(tokens, makeToken(tok, "operator", 0)...)
		case tok.Type == token.Identifier && prev.Type == token.Colon && next.Type == token.Colon:
			// directive name, as in :options:
			tokens = append(tokens, makeToken(tok, "keyword", 0)...)
		case tok.Type == token.Identifier && prev.Type == token.Dot:
			tokens = append(tokens, makeToken(tok, "property", 0)...)
		case tok.Type == token.Identifier && next.Type == token.Colon:
			tokens = append(tokens, makeToken(tok, "property", 1)...)
		case tok.Type == token.Identifier:
			decl := 0
			if next.Type == token.AssignmentOperator && next.Value == "=" {
				decl = 1
			}
			tokens = append(tokens, makeToken(tok, "variable", decl)...)
		}
	}

	return tokens, nil
}

// newSemanticToken creates a semantic token for a lexical token. Tokens
// spanning several lines are skipped.
func newSemanticToken(lines []string, tok token.Token, tokenType string, declModifier int) []SemanticToken {
	if tok.Value == "" || strings.Contains(tok.Value, "\n") || tok.Line < 1 || tok.Column < 1 {
		return nil
	}

	return []SemanticToken{{
		Line:           uint32(tok.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(utf16Column(lines, tok.Line, tok.Column)),
		Length:         uint32(len(utf16.Encode([]rune(tok.Value)))),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// encodeSemanticTokens applies the relative line/column encoding the protocol expects
func encodeSemanticTokens(tokens []SemanticToken) []protocol.UInteger {
	data := make([]protocol.UInteger, 0, len(tokens)*5)
	var prevLine, prevChar uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevChar
		}

		data = append(data,
			deltaLine,
			deltaStart,
			tok.Length,
			protocol.UInteger(tok.TokenType),
			protocol.UInteger(tok.TokenModifiers),
		)

		prevLine = tok.Line
		prevChar = tok.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
