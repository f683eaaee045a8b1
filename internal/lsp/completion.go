package lsp

import (
	"slices"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/token"
)

// TextDocumentCompletion offers the reserved words, the function signs and
// every identifier bound by an assignment in the last good parse.
func (h *HydroHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	var items []protocol.CompletionItem

	for _, kw := range token.Keywords() {
		items = append(items, completionItem(kw, protocol.CompletionItemKindKeyword, "keyword"))
	}
	items = append(items,
		completionItem(">-", protocol.CompletionItemKindSnippet, "function"),
		completionItem(token.AsyncSign, protocol.CompletionItemKindSnippet, "async function"),
	)

	if program, ok := h.Program(params.TextDocument.URI); ok {
		for _, name := range boundNames(program) {
			items = append(items, completionItem(name, protocol.CompletionItemKindVariable, "variable"))
		}
	}

	return items, nil
}

// boundNames lists assignment targets and parameters, sorted and deduplicated
func boundNames(program *ast.Program) []string {
	seen := make(map[string]bool)

	ast.Inspect(program, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.AssignmentExpr:
			if id, ok := v.Left.(*ast.Identifier); ok {
				seen[id.Symbol] = true
			}
		case *ast.FunctionLiteral:
			for _, p := range v.Params {
				seen[p.Symbol] = true
			}
		case *ast.ImportStmt:
			if v.Target != nil {
				seen[v.Target.Symbol] = true
			}
		}
		return true
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func completionItem(label string, kind protocol.CompletionItemKind, detail string) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label:  label,
		Kind:   &kind,
		Detail: &detail,
	}
}
