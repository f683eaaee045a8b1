package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is the display form of a HydroError
type CompilerError struct {
	Level    ErrorLevel
	Code     string   // Error code like E0101
	Kind     string   // Syntax, Parsing, Internal
	Message  string   // Primary error message
	Line     int      // 1-based, 0 when unknown
	Column   int      // 1-based, 0 when unknown
	Length   int      // Length of the problematic region
	Notes    []string // Additional context notes
	HelpText string   // Help text for the error
}

// FromError converts any error into its display form. Errors that are not
// HydroErrors are reported as internal.
func FromError(err error) CompilerError {
	var he HydroError
	if !stderrors.As(err, &he) {
		return CompilerError{
			Level:   Error,
			Code:    ErrorInternal,
			Kind:    "Internal",
			Message: err.Error(),
		}
	}

	ce := CompilerError{
		Level:    Error,
		Code:     he.Code(),
		Kind:     he.Kind(),
		Message:  he.Message(),
		Line:     he.Line(),
		Column:   he.Column(),
		Length:   1,
		HelpText: GetErrorHelp(he.Code()),
	}

	var se *SyntaxError
	if stderrors.As(err, &se) && se.Value != "" {
		ce.Length = utf8.RuneCountInString(se.Value)
	}

	var pe *ParsingError
	if stderrors.As(err, &pe) && pe.Actual != "" {
		ce.Notes = append(ce.Notes, fmt.Sprintf("found %s", pe.Actual))
	}

	if IsInternal(ce.Code) {
		ce.Notes = append(ce.Notes, "this is a bug in the parser, not in the source")
	}

	return ce
}

// ErrorReporter handles consistent error formatting
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// Report formats err against the reporter's source.
func (er *ErrorReporter) Report(err error) string {
	return er.FormatError(FromError(err))
}

// FormatError formats a compiler error with Rust-like styling
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Header: error[E0101]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	lineNumberWidth := er.getLineNumberWidth(err.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	// Location line: --> filename:line[:column]
	if err.Line > 0 {
		location := fmt.Sprintf("%s:%d", er.filename, err.Line)
		if err.Column > 0 {
			location = fmt.Sprintf("%s:%d", location, err.Column)
		}
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), location))
	} else {
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), er.filename))
	}

	if err.Line > 0 && err.Line <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Line)),
			dim("│"),
			er.lines[err.Line-1]))

		if err.Column > 0 {
			marker := er.createMarker(err.Column, err.Length, err.Level)
			result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
		}
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))
	marker := strings.Repeat("^", length)
	return spaces + er.getLevelColor(level)(marker)
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
