package errors

import (
	"fmt"
	"strings"

	"github.com/hyperknf/HydroScript/internal/token"
)

// HydroError is implemented by every error the front end reports.
type HydroError interface {
	error
	Kind() string // "Syntax", "Parsing" or "Internal"
	Code() string
	Line() int
	Column() int
	// Message returns the error text without location information.
	Message() string
	Unwrap() error
}

// SyntaxError reports a token whose type does not match what the grammar
// required at that point. Expected is empty when any of several atoms would do.
type SyntaxError struct {
	Expected []token.Type
	Actual   token.Type
	Value    string
	Ln       int
	Col      int
	Msg      string // set only for tokenization failures
	code     string
	Cause    error
}

func NewSyntaxError(expected []token.Type, actual token.Token) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Actual:   actual.Type,
		Value:    actual.Value,
		Ln:       actual.Line,
		Col:      actual.Column,
		code:     ErrorUnexpectedToken,
	}
}

// NewTokenizeError reports input the lexer could not split into tokens.
func NewTokenizeError(message string, line int, cause error) *SyntaxError {
	return &SyntaxError{
		Actual: token.ILLEGAL,
		Ln:     line,
		Msg:    message,
		code:   ErrorTokenize,
		Cause:  cause,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error at line %d: %s", e.Ln, e.Message())
}

func (e *SyntaxError) Message() string {
	if e.Msg != "" {
		return e.Msg
	}

	got := e.Actual.String()
	if e.Value != "" {
		got = fmt.Sprintf("%s %q", got, e.Value)
	}

	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("unexpected %s", got)
	case 1:
		return fmt.Sprintf("expected %s, got %s", e.Expected[0], got)
	default:
		names := make([]string, len(e.Expected))
		for i, tt := range e.Expected {
			names[i] = tt.String()
		}
		return fmt.Sprintf("expected one of %s, got %s", strings.Join(names, ", "), got)
	}
}

func (e *SyntaxError) Kind() string  { return "Syntax" }
func (e *SyntaxError) Code() string  { return e.code }
func (e *SyntaxError) Line() int     { return e.Ln }
func (e *SyntaxError) Column() int   { return e.Col }
func (e *SyntaxError) Unwrap() error { return e.Cause }

// ParsingError reports a well-formed token sequence that breaks a grammar rule
// enforced above the token level.
type ParsingError struct {
	code     string
	Msg      string
	Expected []string // node kinds, optional
	Actual   string   // node kind, optional
	Ln       int
	Col      int
}

func NewParsingError(code, message string, line, column int) *ParsingError {
	return &ParsingError{code: code, Msg: message, Ln: line, Col: column}
}

// NewKindMismatch reports a node of kind actual where one of expected was required.
func NewKindMismatch(code string, expected []string, actual string, line, column int) *ParsingError {
	return &ParsingError{
		code:     code,
		Msg:      FormatExpectation(expected, actual),
		Expected: expected,
		Actual:   actual,
		Ln:       line,
		Col:      column,
	}
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("Parsing Error at line %d: %s", e.Ln, e.Msg)
}

func (e *ParsingError) Kind() string    { return "Parsing" }
func (e *ParsingError) Code() string    { return e.code }
func (e *ParsingError) Line() int       { return e.Ln }
func (e *ParsingError) Column() int     { return e.Col }
func (e *ParsingError) Message() string { return e.Msg }
func (e *ParsingError) Unwrap() error   { return nil }

// InternalError signals a broken parser invariant rather than bad input.
type InternalError struct {
	Msg string
	Ln  int
}

func NewInternalError(message string, line int) *InternalError {
	return &InternalError{Msg: message, Ln: line}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("Internal Error: %s", e.Msg)
}

func (e *InternalError) Kind() string    { return "Internal" }
func (e *InternalError) Code() string    { return ErrorInternal }
func (e *InternalError) Line() int       { return e.Ln }
func (e *InternalError) Column() int     { return 0 }
func (e *InternalError) Message() string { return e.Msg }
func (e *InternalError) Unwrap() error   { return nil }

// FormatExpectation renders "expected A or B, got C".
func FormatExpectation(expected []string, actual string) string {
	switch len(expected) {
	case 0:
		return fmt.Sprintf("unexpected %s", actual)
	case 1:
		return fmt.Sprintf("expected %s, got %s", expected[0], actual)
	default:
		head := strings.Join(expected[:len(expected)-1], ", ")
		return fmt.Sprintf("expected %s or %s, got %s", head, expected[len(expected)-1], actual)
	}
}
