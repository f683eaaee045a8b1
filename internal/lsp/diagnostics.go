package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hyperknf/HydroScript/internal/errors"
)

// ConvertError transforms a parse failure in source into LSP diagnostics for
// IDE display. The parser stops at the first error, so there is at most one
// entry.
func ConvertError(err error, source string) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	ce := errors.FromError(err)

	lines := sourceLines(source)
	line := max(ce.Line-1, 0) // Convert to 0-based indexing
	column := max(ce.Column, 1)
	start := utf16Column(lines, ce.Line, column)
	end := max(utf16Column(lines, ce.Line, column+max(ce.Length, 1)), start+1)

	message := ce.Message
	if ce.HelpText != "" {
		message += "\n" + ce.HelpText
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(start)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(end)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: ce.Code},
		Source:   ptrString("hydroscript"),
		Message:  message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
