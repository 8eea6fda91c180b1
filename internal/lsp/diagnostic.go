package lsp

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/parser"
	"github.com/leapstack-labs/leapstyle/pkg/source"
)

// diagnosticSource names leapstyle in the client's problem list.
const diagnosticSource = "leapstyle"

// publishDiagnostics lints the document and publishes the results. Files the
// project excludes, and files of other languages, get an empty list.
func (s *Server) publishDiagnostics(uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	diagnostics := []Diagnostic{}
	code, err := s.parse(doc)
	switch {
	case err == nil:
		lintDiags := s.analyzer.Analyze(code)
		s.documents.SetDiagnostics(uri, doc.Version, lintDiags)
		for _, d := range lintDiags {
			diagnostics = append(diagnostics, toLSPDiagnostic(doc, d))
		}
	case errors.Is(err, parser.ErrSyntax):
		diagnostics = append(diagnostics, syntaxErrorToDiagnostic(doc, err))
	default:
		s.logger.Debug("Not linting document", "uri", uri, "reason", err)
	}

	version := doc.Version
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: diagnostics,
	})
}

// errSkipped marks documents that are not linted.
var errSkipped = errors.New("document excluded by configuration")

// parse parses a document that the project lints.
func (s *Server) parse(doc *Document) (*source.Code, error) {
	path := URIToPath(doc.URI)
	if _, err := parser.LanguageFor(path); err != nil {
		return nil, err
	}
	if s.excluded(path) {
		return nil, errSkipped
	}
	return parser.Parse(context.Background(), path, []byte(doc.Content))
}

// excluded reports whether a project exclude pattern matches path.
func (s *Server) excluded(path string) bool {
	if s.cfg.ProjectRoot == "" {
		return false
	}
	rel, err := filepath.Rel(s.cfg.ProjectRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.cfg.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, filepath.Base(rel)); ok {
				return true
			}
		}
	}
	return false
}

// toLSPDiagnostic converts a lint diagnostic. A diagnostic without an end
// covers its start position only.
func toLSPDiagnostic(doc *Document, d lint.Diagnostic) Diagnostic {
	end := max(d.EndPos.Offset, d.Pos.Offset)
	href := d.DocumentationURL
	if href == "" {
		href = lint.BuildDocURL(d.RuleID)
	}
	return Diagnostic{
		Range:           doc.SpanToRange(d.Pos.Offset, end),
		Severity:        toLSPSeverity(d.Severity),
		Code:            d.RuleID,
		CodeDescription: &CodeDescription{Href: href},
		Source:          diagnosticSource,
		Message:         d.Message,
	}
}

func syntaxErrorToDiagnostic(doc *Document, err error) Diagnostic {
	diag := Diagnostic{
		Severity: DiagnosticSeverityError,
		Source:   diagnosticSource,
		Message:  err.Error(),
	}
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		diag.Range = doc.SpanToRange(perr.Pos.Offset, perr.Pos.Offset)
		diag.Message = perr.Message
	}
	return diag
}

func toLSPSeverity(s lint.Severity) DiagnosticSeverity {
	switch s {
	case lint.SeverityError:
		return DiagnosticSeverityError
	case lint.SeverityWarning:
		return DiagnosticSeverityWarning
	case lint.SeverityInfo:
		return DiagnosticSeverityInformation
	case lint.SeverityHint:
		return DiagnosticSeverityHint
	default:
		return DiagnosticSeverityWarning
	}
}
