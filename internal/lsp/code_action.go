package lsp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

// handleCodeAction handles the textDocument/codeAction request.
func (s *Server) handleCodeAction(msg *JSONRPCMessage) error {
	var params CodeActionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.invalidParams(msg, err)
	}

	actions := s.getCodeActions(params)
	s.sendResponse(msg.ID, actions, nil)
	return nil
}

// handleFormatting runs the fixer over the document and returns the result
// as a single edit. Documents that cannot be fixed get no edits.
func (s *Server) handleFormatting(msg *JSONRPCMessage) error {
	var params DocumentFormattingParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.invalidParams(msg, err)
	}

	edits := []TextEdit{}
	if doc := s.documents.Get(params.TextDocument.URI); doc != nil {
		if edit, ok := s.fixAllEdit(doc); ok {
			edits = append(edits, edit)
		}
	}
	s.sendResponse(msg.ID, edits, nil)
	return nil
}

// wantedKinds reports which kinds of actions the client asked for. An empty
// list asks for all of them.
func wantedKinds(only []CodeActionKind) (quickFix, fixAll bool) {
	if len(only) == 0 {
		return true, true
	}
	for _, kind := range only {
		if kindMatches(CodeActionKindQuickFix, kind) {
			quickFix = true
		}
		if kindMatches(CodeActionKindFixAll, kind) {
			fixAll = true
		}
	}
	return quickFix, fixAll
}

// kindMatches reports whether kind is requested, either exactly or through
// one of its parent kinds.
func kindMatches(kind, requested CodeActionKind) bool {
	return kind == requested || strings.HasPrefix(string(kind), string(requested)+".")
}

// getCodeActions returns a quick fix for every fixable diagnostic in the
// requested range, and a fix-all action when the document has any.
func (s *Server) getCodeActions(params CodeActionParams) []CodeAction {
	actions := []CodeAction{}
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return actions
	}
	quickFix, fixAll := wantedKinds(params.Context.Only)

	fixable := false
	for _, d := range doc.Diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		fixable = true
		diag := toLSPDiagnostic(doc, d)
		if !quickFix || !overlaps(diag.Range, params.Range) {
			continue
		}
		for _, f := range d.Fixes {
			title := f.Description
			if title == "" {
				title = "Fix: " + d.Message
			}
			actions = append(actions, CodeAction{
				Title:       title,
				Kind:        CodeActionKindQuickFix,
				Diagnostics: []Diagnostic{diag},
				IsPreferred: len(d.Fixes) == 1, // Single fix is preferred
				Edit: &WorkspaceEdit{
					Changes: map[string][]TextEdit{
						doc.URI: convertTextEdits(doc, f.TextEdits),
					},
				},
			})
		}
	}

	if fixAll && fixable {
		if edit, ok := s.fixAllEdit(doc); ok {
			actions = append(actions, CodeAction{
				Title: "Fix all leapstyle issues",
				Kind:  CodeActionKindFixAll,
				Edit: &WorkspaceEdit{
					Changes: map[string][]TextEdit{doc.URI: {edit}},
				},
			})
		}
	}

	return actions
}

// fixAllEdit runs the fixer over the document. It reports false when there is
// nothing to change or the fixer failed.
func (s *Server) fixAllEdit(doc *Document) (TextEdit, bool) {
	if _, err := s.parse(doc); err != nil {
		return TextEdit{}, false
	}
	outcome, err := s.fixer.Fix(context.Background(), URIToPath(doc.URI), []byte(doc.Content))
	if err != nil {
		s.logger.Warn("Fix failed", "uri", doc.URI, "error", err)
		return TextEdit{}, false
	}
	if !outcome.Changed() {
		return TextEdit{}, false
	}
	s.logger.Debug("Fixed document", "uri", doc.URI, "passes", outcome.Passes, "fixes", len(outcome.Applied))
	return TextEdit{Range: doc.FullRange(), NewText: outcome.Fixed}, true
}

// convertTextEdits converts lint.TextEdit to LSP TextEdit.
func convertTextEdits(doc *Document, edits []lint.TextEdit) []TextEdit {
	result := make([]TextEdit, len(edits))
	for i, edit := range edits {
		result[i] = TextEdit{
			Range:   doc.SpanToRange(edit.Start(), edit.End()),
			NewText: edit.NewText,
		}
	}
	return result
}

func before(a, b Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Character < b.Character)
}

// overlaps reports whether two ranges touch. An empty range, such as a
// cursor, touches a range it lies in or at the edge of.
func overlaps(a, b Range) bool {
	return !before(a.End, b.Start) && !before(b.End, a.Start)
}
