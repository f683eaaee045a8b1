// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"slices"
	"strconv"
)

type Type int

const (
	// Special tokens
	ILLEGAL Type = iota
	FileEnd

	// Identifiers + literals
	Identifier
	Number
	String

	// Function signs
	Function
	AsyncFunction

	// Operator classes
	AssignmentOperator
	ComparisonOperator
	LogicalOperator
	BitwiseOperator
	BinaryOperator
	Not
	BitwiseNot
	TypeOf

	// Brackets
	OpenParenthesis
	CloseParenthesis
	OpenSquareBracket
	CloseSquareBracket
	OpenCurlyBracket
	CloseCurlyBracket

	// Separators
	Comma
	Dot
	Colon
	QuestionMark

	// Keywords
	Import
	Export
	Return
	Throw
	Static
	Class
	New
	Await
	While
	InstanceOf
)

var names = [...]string{
	ILLEGAL:            "ILLEGAL",
	FileEnd:            "FileEnd",
	Identifier:         "Identifier",
	Number:             "Number",
	String:             "String",
	Function:           "Function",
	AsyncFunction:      "AsyncFunction",
	AssignmentOperator: "AssignmentOperator",
	ComparisonOperator: "ComparisonOperator",
	LogicalOperator:    "LogicalOperator",
	BitwiseOperator:    "BitwiseOperator",
	BinaryOperator:     "BinaryOperator",
	Not:                "Not",
	BitwiseNot:         "BitwiseNot",
	TypeOf:             "TypeOf",
	OpenParenthesis:    "OpenParenthesis",
	CloseParenthesis:   "CloseParenthesis",
	OpenSquareBracket:  "OpenSquareBracket",
	CloseSquareBracket: "CloseSquareBracket",
	OpenCurlyBracket:   "OpenCurlyBracket",
	CloseCurlyBracket:  "CloseCurlyBracket",
	Comma:              "Comma",
	Dot:                "Dot",
	Colon:              "Colon",
	QuestionMark:       "QuestionMark",
	Import:             "Import",
	Export:             "Export",
	Return:             "Return",
	Throw:              "Throw",
	Static:             "Static",
	Class:              "Class",
	New:                "New",
	Await:              "Await",
	While:              "While",
	InstanceOf:         "InstanceOf",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// AsyncSign is the literal text of the asynchronous function sign.
const AsyncSign = ">>-"

type Token struct {
	Type   Type
	Value  string
	Line   int // 1-based
	Column int // 1-based
}

var keywords = map[string]Type{
	"import":     Import,
	"export":     Export,
	"return":     Return,
	"throw":      Throw,
	"static":     Static,
	"class":      Class,
	"new":        New,
	"await":      Await,
	"while":      While,
	"instanceof": InstanceOf,
}

func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Identifier
}

// IsKeyword reports whether t is one of the reserved words.
func IsKeyword(t Type) bool {
	return t >= Import && t <= InstanceOf
}

// Keywords returns the reserved words in alphabetical order.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
