package parens

import (
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
	"github.com/leapstack-labs/leapstyle/pkg/source"
)

func init() {
	lint.Register(NoExtraParens)
}

// NoExtraParens reports parentheses that do not change how an expression
// groups. It only looks at contexts where the required binding strength is
// known and keeps anything it cannot rank.
var NoExtraParens = lint.RuleDef{
	ID:          "PR01",
	Name:        "parens.no_extra",
	Group:       "parens",
	Description: "Parentheses around an expression that already binds tightly enough are unnecessary.",
	Severity:    lint.SeverityWarning,
	Kinds:       expressionKinds,
	Check:       checkExtraParens,

	Rationale: `Redundant parentheses suggest a grouping that is not there and make the
reader re-check operator precedence. Parentheses that change or clarify
evaluation order, and any around constructs whose precedence is not known, are
left alone.`,

	BadExample: `const total = (price * count) + (tax);
if (typeof(value) === 'string') {}
return (result);`,

	GoodExample: `const total = price * count + tax;
if (typeof value === 'string') {}
return result;`,

	Fix: "Remove the parentheses. A space is inserted where the neighbouring tokens would otherwise merge.",
}

var expressionKinds = []ast.Kind{
	ast.Identifier,
	ast.Literal,
	ast.TemplateLiteral,
	ast.TaggedTemplateExpression,
	ast.ThisExpression,
	ast.Super,
	ast.ArrayExpression,
	ast.ObjectExpression,
	ast.FunctionExpression,
	ast.ArrowFunctionExpression,
	ast.ClassExpression,
	ast.SequenceExpression,
	ast.UnaryExpression,
	ast.UpdateExpression,
	ast.BinaryExpression,
	ast.LogicalExpression,
	ast.AssignmentExpression,
	ast.ConditionalExpression,
	ast.CallExpression,
	ast.NewExpression,
	ast.MemberExpression,
	ast.ChainExpression,
	ast.ImportExpression,
	ast.MetaProperty,
	ast.AwaitExpression,
	ast.YieldExpression,
	ast.JSXElement,
	ast.JSXFragment,
}

// statementStarters are first tokens that would be read as the start of a
// declaration or block if their parentheses went away.
var statementStarters = map[string]bool{"function": true, "class": true, "{": true, "let": true, "async": true}

func checkExtraParens(pass *lint.Pass, id ast.NodeID) {
	code := pass.Code
	tree := code.Tree
	n := tree.Node(id)
	if n.Parens == 0 || n.Parent == ast.NoNode {
		return
	}

	prec := rewrite.Precedence(n.Kind, n.Operator)
	if prec == rewrite.PrecUnknown {
		return
	}
	need, ok := requiredPrecedence(tree, id)
	if !ok || prec <= need {
		return
	}
	if containsIn(tree, id) {
		return
	}

	first, ok := code.FirstToken(id)
	if !ok {
		return
	}
	last, _ := code.LastToken(id)
	if keepForOperand(tree, id, code.Tokens[first].Value) {
		return
	}

	// the parentheses must be the tokens wrapping the node, on one line
	k := n.Parens
	if first-k < 0 || last+k >= len(code.Tokens) {
		return
	}
	for i := 1; i <= k; i++ {
		if !code.Tokens[first-i].IsPunctuator("(") || !code.Tokens[last+i].IsPunctuator(")") {
			return
		}
	}
	open, closing := code.Tokens[first-k], code.Tokens[last+k]
	if open.Line() != closing.Line() {
		return
	}

	edits := make([]lint.TextEdit, 0, 2*k)
	for i := 1; i <= k; i++ {
		o, c := code.Tokens[first-i], code.Tokens[last+i]
		oText, cText := "", ""
		if i == k {
			oText = separator(code, first-k-1, first, "(")
			cText = separator(code, last, last+k+1, ")")
		}
		edits = append(edits,
			pass.Edit(o.Start(), o.End(), oText),
			pass.Edit(c.Start(), c.End(), cText))
	}

	pass.Report(lint.Diagnostic{
		Message:     "Unnecessary parentheses around expression.",
		Pos:         open.Span.Start,
		EndPos:      closing.Span.End,
		ImpactScore: lint.ImpactMedium.Int(),
		Fixes:       []lint.Fix{{Description: "Remove parentheses", TextEdits: edits}},
	})
}

// requiredPrecedence returns the precedence an expression in id's position
// must exceed to stand without parentheses.
func requiredPrecedence(tree *ast.Tree, id ast.NodeID) (int, bool) {
	n := tree.Node(id)
	p := tree.Node(n.Parent)
	switch p.Kind {
	case ast.IfStatement, ast.WhileStatement, ast.DoWhileStatement:
		return rewrite.PrecUnknown, n.Field == "condition"
	case ast.SwitchStatement:
		return rewrite.PrecUnknown, n.Field == "value"
	case ast.ReturnStatement, ast.ThrowStatement, ast.SpreadElement, ast.ArrayExpression:
		return rewrite.PrecSequence, true
	case ast.VariableDeclarator:
		return rewrite.PrecSequence, n.Field == "value"
	case ast.AssignmentExpression:
		return rewrite.PrecSequence, n.Field == "right"
	case ast.CallExpression, ast.NewExpression:
		return rewrite.PrecSequence, n.Field == "arguments"
	case ast.UnaryExpression, ast.AwaitExpression:
		return rewrite.PrecUnary, true
	case ast.BinaryExpression, ast.LogicalExpression:
		if n.Field != "left" && n.Field != "right" {
			return 0, false
		}
		return rewrite.Precedence(p.Kind, p.Operator), true
	}
	return 0, false
}

// keepForOperand covers operand positions where the grammar, not
// precedence, demands the parentheses.
func keepForOperand(tree *ast.Tree, id ast.NodeID, firstToken string) bool {
	n := tree.Node(id)
	p := tree.Node(n.Parent)
	if p.Kind != ast.BinaryExpression && p.Kind != ast.LogicalExpression {
		return false
	}
	switch {
	case p.Operator == "??" && n.Kind == ast.LogicalExpression && n.Operator != "??":
		return true
	case p.Operator == "**" && n.Field == "left" && (n.Kind == ast.UnaryExpression || n.Kind == ast.AwaitExpression):
		return true
	case n.Field == "left" && statementStarters[firstToken]:
		return true
	}
	return false
}

// containsIn reports whether the subtree holds an `in` operator, which
// parentheses may be shielding from a for-statement header.
func containsIn(tree *ast.Tree, id ast.NodeID) bool {
	found := false
	tree.Walk(id, func(c ast.NodeID) bool {
		if n := tree.Node(c); n.Kind == ast.BinaryExpression && n.Operator == "in" {
			found = true
		}
		return !found
	})
	return found
}

// separator returns the text to put in place of an outermost parenthesis
// lying between tokens left and right: a space when nothing else separates
// them and they would merge, otherwise nothing.
func separator(code *source.Code, left, right int, paren string) string {
	if left < 0 || right >= len(code.Tokens) {
		return ""
	}
	l, r := code.Tokens[left], code.Tokens[right]
	if strings.Trim(code.Text[l.End():r.Start()], paren) != "" {
		return ""
	}
	if rewrite.IsSafeAdjacent(l, r) {
		return ""
	}
	return " "
}
