package lint

import (
	"log/slog"

	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
	"github.com/leapstack-labs/leapstyle/pkg/source"
)

// Pass is what a rule sees while one file is analyzed. Every rule gets its own
// Pass, but all passes of a file share one IndentCache, which is discarded
// when the analysis of the file ends.
type Pass struct {
	Code        *source.Code
	Rule        Rule
	Options     map[string]any
	Indent      rewrite.IndentUnit
	IndentCache *rewrite.IndentCache
	Logger      *slog.Logger

	severity Severity
	diags    *[]Diagnostic
}

// Report records a diagnostic for the pass's rule. The rule ID, severity,
// file and documentation URL are filled in.
func (p *Pass) Report(d Diagnostic) {
	d.RuleID = p.Rule.ID()
	d.Severity = p.severity
	d.File = p.Code.Filename
	if d.DocumentationURL == "" {
		d.DocumentationURL = BuildDocURL(d.RuleID)
	}
	d.AutoFixable = len(d.Edits()) > 0
	*p.diags = append(*p.diags, d)
}

// ReportRange reports msg over the byte range [start, end).
func (p *Pass) ReportRange(start, end int, msg string, fixes ...Fix) {
	p.Report(Diagnostic{
		Message: msg,
		Pos:     p.Code.LocFromIndex(start),
		EndPos:  p.Code.LocFromIndex(end),
		Fixes:   fixes,
	})
}

// Edit builds a text edit replacing [start, end) with text.
func (p *Pass) Edit(start, end int, text string) TextEdit {
	return TextEdit{
		Pos:     p.Code.LocFromIndex(start),
		EndPos:  p.Code.LocFromIndex(end),
		NewText: text,
	}
}

// Replace builds a single-edit fix.
func (p *Pass) Replace(description string, start, end int, text string) Fix {
	return Fix{Description: description, TextEdits: []TextEdit{p.Edit(start, end, text)}}
}
