package layout

import (
	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
)

func init() {
	lint.Register(IndentBinaryOps)
}

// IndentBinaryOps checks the indentation of operands that start a new line
// inside binary, logical, union and intersection expressions.
var IndentBinaryOps = lint.RuleDef{
	ID:          "LY01",
	Name:        "layout.indent_binary_ops",
	Group:       "layout",
	Description: "Continuation lines of operator chains are indented one unit from the line they continue.",
	Severity:    lint.SeverityWarning,
	Kinds: []ast.Kind{
		ast.BinaryExpression,
		ast.LogicalExpression,
		ast.TSUnionType,
		ast.TSIntersectionType,
	},
	ConfigKeys: []string{"indent"},
	Check:      checkIndentBinaryOps,

	Rationale: `An operand that wraps onto its own line should sit one indent unit
deeper than the line that opened the expression, so the reader can tell a
continuation from a new statement. Closing a parenthesized group at the end of
a line takes that unit back.`,

	BadExample: `const ok = isReady &&
hasPermission ||
        isAdmin

type Shape =
| Circle
    | Square`,

	GoodExample: `const ok = isReady &&
  hasPermission ||
  isAdmin

type Shape =
  | Circle
  | Square`,

	Fix: "Replace the leading whitespace of the operand line with the expected indentation.",
}

func checkIndentBinaryOps(pass *lint.Pass, id ast.NodeID) {
	engine := rewrite.NewContinuationIndent(pass.Code, pass.Indent, pass.IndentCache)
	for _, c := range engine.Check(id) {
		pass.Report(lint.Diagnostic{
			Message:     c.Message(),
			Pos:         c.Span.Start,
			EndPos:      c.Span.End,
			ImpactScore: lint.ImpactHigh.Int(),
			Fixes: []lint.Fix{
				pass.Replace("Reindent line", c.Edit.Start, c.Edit.End, c.Edit.Text),
			},
		})
	}
}
