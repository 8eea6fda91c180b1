package quotes

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
)

func init() {
	lint.Register(JSXQuotes)
}

// JSXQuotes enforces one quote style for JSX attribute values.
var JSXQuotes = lint.RuleDef{
	ID:          "QT02",
	Name:        "quotes.jsx",
	Group:       "quotes",
	Description: "JSX attribute values use the configured quote style.",
	Severity:    lint.SeverityWarning,
	Kinds:       []ast.Kind{ast.Literal},
	ConfigKeys:  []string{"prefer"},
	Check:       checkJSXQuotes,

	Rationale: `JSX attributes follow HTML conventions, which usually differ from the
quote style of the surrounding JavaScript. JSX attribute strings have no escape
sequences, so a value is only requoted when it does not contain the preferred
quote character.`,

	BadExample: `<input type='text' />`,

	GoodExample: `<input type="text" />
<input title='say "hi"' />`,

	Fix: "Swap the surrounding quote characters; the value itself is unchanged.",
}

func checkJSXQuotes(pass *lint.Pass, id ast.NodeID) {
	tree := pass.Code.Tree
	n := tree.Node(id)
	if tree.Kind(n.Parent) != ast.JSXAttribute {
		return
	}

	prefer := rewrite.Double
	switch p := lint.GetStringOption(pass.Options, "prefer", "prefer-double"); p {
	case "prefer-double":
	case "prefer-single":
		prefer = rewrite.Single
	default:
		pass.Logger.Warn("invalid options", "prefer", p)
		return
	}

	raw := pass.Code.Slice(n.Span)
	current, ok := rewrite.StyleOf(raw)
	if !ok || current == prefer || current.Interpolation || len(raw) < 2 {
		return
	}
	body := raw[1 : len(raw)-1]
	if strings.Contains(body, prefer.Quote) {
		return
	}

	pass.Report(lint.Diagnostic{
		Message:     fmt.Sprintf("Unexpected usage of %s.", quoteWords[current.Name]),
		Pos:         n.Span.Start,
		EndPos:      n.Span.End,
		ImpactScore: lint.ImpactLow.Int(),
		Fixes: []lint.Fix{
			pass.Replace("Use "+prefer.Name+" quotes", n.Span.Start.Offset, n.Span.End.Offset, prefer.Quote+body+prefer.Quote),
		},
	})
}
