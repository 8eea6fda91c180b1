package quotes

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
)

func init() {
	lint.Register(Quotes)
}

// Quotes enforces one quote style for string literals.
var Quotes = lint.RuleDef{
	ID:          "QT01",
	Name:        "quotes.style",
	Group:       "quotes",
	Description: "Strings use the configured quote style.",
	Severity:    lint.SeverityWarning,
	Kinds:       []ast.Kind{ast.Literal, ast.TemplateLiteral},
	ConfigKeys:  []string{"style", "avoid_escape", "allow_template_literals"},
	Check:       checkQuotes,

	Rationale: `Mixing quote characters makes a codebase look inconsistent and
turns every string into a small decision. A single style, with an escape hatch
for strings that would otherwise need escaping, keeps diffs focused on content.`,

	BadExample: `const a = "hello";
const b = ` + "`world`" + `;`,

	GoodExample: `const a = 'hello';
const b = 'world';
const c = "it's";  // with avoid_escape`,

	Fix: "Rewrite the literal with the configured quotes, escaping the new quote character where it appears.",
}

type quotesOptions struct {
	Style                 string `mapstructure:"style"`
	AvoidEscape           bool   `mapstructure:"avoid_escape"`
	AllowTemplateLiterals bool   `mapstructure:"allow_template_literals"`
}

var quoteWords = map[string]string{
	"single":   "singlequote",
	"double":   "doublequote",
	"backtick": "backtick",
}

func checkQuotes(pass *lint.Pass, id ast.NodeID) {
	opts := quotesOptions{Style: "single"}
	if err := lint.DecodeOptions(pass.Options, &opts); err != nil {
		pass.Logger.Warn("invalid options", "error", err)
		return
	}
	target, err := rewrite.ParseQuoteStyle(opts.Style)
	if err != nil {
		pass.Logger.Warn("invalid options", "error", err)
		return
	}

	tree := pass.Code.Tree
	n := tree.Node(id)
	raw := pass.Code.Slice(n.Span)
	current, ok := rewrite.StyleOf(raw)
	if !ok || current == target {
		return
	}

	switch n.Kind {
	case ast.Literal:
		if current.Interpolation || tree.Kind(n.Parent) == ast.JSXAttribute {
			return
		}
		if target.Interpolation && !canBeTemplate(tree, id) {
			return
		}
		if opts.AvoidEscape && current.Quote == target.Alternate && strings.Contains(raw, target.Quote) {
			return
		}

	case ast.TemplateLiteral:
		if opts.AllowTemplateLiterals || target.Interpolation || usesTemplateFeatures(tree, id, raw) {
			return
		}
	}

	msg := fmt.Sprintf("Strings must use %s.", quoteWords[target.Name])
	converted, ok := rewrite.ConvertQuotes(raw, target)
	if !ok {
		pass.ReportRange(n.Span.Start.Offset, n.Span.End.Offset, msg)
		return
	}
	pass.Report(lint.Diagnostic{
		Message:     msg,
		Pos:         n.Span.Start,
		EndPos:      n.Span.End,
		ImpactScore: lint.ImpactLow.Int(),
		Fixes: []lint.Fix{
			pass.Replace("Use "+target.Name+" quotes", n.Span.Start.Offset, n.Span.End.Offset, converted),
		},
	})
}

// canBeTemplate reports whether the string literal id sits where a template
// literal is allowed. Directives, module specifiers, non-computed keys and
// type positions require a plain string.
func canBeTemplate(tree *ast.Tree, id ast.NodeID) bool {
	n := tree.Node(id)
	if n.Parent == ast.NoNode {
		return true
	}
	parent := tree.Node(n.Parent)
	if parent.Kind == ast.Unknown || parent.Kind.IsTS() {
		return false
	}
	switch parent.Kind {
	case ast.ExpressionStatement:
		return !parent.Has(ast.FlagDirective)
	case ast.Property, ast.MethodDefinition, ast.PropertyDefinition:
		return n.Field != "key" && n.Field != "name" && n.Field != "property"
	case ast.ImportDeclaration, ast.ExportNamedDeclaration, ast.ExportAllDeclaration:
		return n.Field != "source"
	case ast.ImportSpecifier, ast.ExportSpecifier, ast.JSXAttribute:
		return false
	}
	return true
}

// usesTemplateFeatures reports whether the template literal needs to stay a
// template: it is tagged, interpolates, or spans lines.
func usesTemplateFeatures(tree *ast.Tree, id ast.NodeID, raw string) bool {
	if tree.Kind(tree.Parent(id)) == ast.TaggedTemplateExpression {
		return true
	}
	if len(raw) < 2 {
		return true
	}
	body := raw[1 : len(raw)-1]
	return rewrite.HasUnescaped(body, "${") || strings.ContainsAny(body, "\r\n\u2028\u2029")
}
