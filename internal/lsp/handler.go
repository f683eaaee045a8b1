package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/parser"
)

// Define the set of supported semantic token types (as required by the protocol)
var SemanticTokenTypes = []string{
	"keyword",
	"number",
	"string",
	"operator",
	"variable",
	"property",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// HydroHandler implements the LSP server handlers for HydroScript. Documents
// are kept in memory as the editor sends them.
type HydroHandler struct {
	mu       sync.RWMutex
	content  map[protocol.DocumentUri]string
	programs map[protocol.DocumentUri]*ast.Program
	opts     parser.Options
	log      commonlog.Logger
}

// NewHydroHandler creates a handler that parses documents with opts
func NewHydroHandler(opts parser.Options) *HydroHandler {
	return &HydroHandler{
		content:  make(map[protocol.DocumentUri]string),
		programs: make(map[protocol.DocumentUri]*ast.Program),
		opts:     opts,
		log:      commonlog.GetLogger("hydroscript.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *HydroHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *HydroHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

func (h *HydroHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *HydroHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes its diagnostics
func (h *HydroHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)

	diagnostics := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange re-parses the document. Only full-text sync is
// advertised, so the last change carries the whole document.
func (h *HydroHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := latestText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
	}

	diagnostics := h.update(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *HydroHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	delete(h.programs, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *HydroHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.mu.RLock()
	source, ok := h.content[params.TextDocument.URI]
	h.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}

	tokens, err := collectSemanticTokens(source)
	if err != nil {
		// an untokenizable document still has its diagnostic; color nothing
		h.log.Debugf("semantic tokens for %s: %s", params.TextDocument.URI, err)
		return &protocol.SemanticTokens{Data: []protocol.UInteger{}}, nil
	}

	return &protocol.SemanticTokens{Data: encodeSemanticTokens(tokens)}, nil
}

// Program returns the last successfully parsed tree for uri.
func (h *HydroHandler) Program(uri protocol.DocumentUri) (*ast.Program, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	program, ok := h.programs[uri]
	return program, ok
}

// update stores text and returns its diagnostics. A document that fails to
// parse keeps its previous tree.
func (h *HydroHandler) update(uri protocol.DocumentUri, text string) []protocol.Diagnostic {
	program, err := parser.ParseSourceWithOptions(string(uri), text, h.opts)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[uri] = text

	if err != nil {
		h.log.Debugf("parse %s: %s", uri, err)
		return ConvertError(err, text)
	}

	h.programs[uri] = program
	return []protocol.Diagnostic{}
}

func latestText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
