package lint

import (
	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Pass handed to Check.
type RuleDef struct {
	ID          string     // Unique identifier, e.g., "LY01"
	Name        string     // Human-readable name, e.g., "layout.indent_binary_ops"
	Group       string     // Category, e.g., "layout", "quotes", "parens"
	Description string     // Human-readable description
	Severity    Severity   // Default severity
	Kinds       []ast.Kind // Node kinds Check is called for; empty means once per file with the root
	Check       CheckFunc  // The check function
	ConfigKeys  []string   // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc inspects one node and reports findings through the pass.
type CheckFunc func(pass *Pass, id ast.NodeID)

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string         `json:"rule"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	File     string         `json:"file,omitempty"`
	Pos      token.Position `json:"pos"`
	EndPos   token.Position `json:"end_pos"`         // Optional: end of the problematic range
	Fixes    []Fix          `json:"fixes,omitempty"` // Optional: suggested fixes

	// Remediation metadata
	DocumentationURL string `json:"documentation_url,omitempty"` // e.g., "https://leapstyle.dev/docs/rules/ly01"
	ImpactScore      int    `json:"impact_score,omitempty"`      // 0-100
	AutoFixable      bool   `json:"auto_fixable"`                // true if Fixes can be auto-applied
}

// Fix represents a suggested code fix.
type Fix struct {
	Description string     `json:"description"`
	TextEdits   []TextEdit `json:"edits"`
}

// TextEdit replaces the half-open byte range [Pos.Offset, EndPos.Offset).
type TextEdit struct {
	Pos     token.Position `json:"pos"`
	EndPos  token.Position `json:"end_pos"`
	NewText string         `json:"new_text"`
}

// Start returns the byte offset where the edit begins.
func (e TextEdit) Start() int { return e.Pos.Offset }

// End returns the byte offset where the edit ends.
func (e TextEdit) End() int { return e.EndPos.Offset }

// Edits returns all text edits of the diagnostic's fixes in order.
func (d Diagnostic) Edits() []TextEdit {
	var edits []TextEdit
	for _, f := range d.Fixes {
		edits = append(edits, f.TextEdits...)
	}
	return edits
}
