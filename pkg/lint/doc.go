// Package lint provides the rule framework for JavaScript and TypeScript
// style checks.
//
// # Architecture
//
// The lint package holds the shared contracts: rules, diagnostics with
// machine-applicable fixes, the global registry, configuration and the
// Analyzer that dispatches syntax tree nodes to rules. Rule implementations
// live in pkg/lint/rules and build on the safe-rewrite primitives in
// pkg/rewrite.
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their package
// is imported:
//
//	import _ "github.com/leapstack-labs/leapstyle/pkg/lint/rules"
//
// # Rule Categories
//
//   - LY (Layout): indentation of continuation lines
//   - QT (Quotes): quote style of string, template and JSX attribute literals
//   - PR (Parens): redundant parentheses
//
// # Dispatch
//
// A rule subscribes to node kinds through RuleDef.Kinds. The Analyzer walks
// the tree of a file once in pre-order and calls every subscribed rule for
// each node. A rule with no kinds is called once with the root node. Each
// call receives a *Pass carrying the source, the rule's options, the indent
// unit and an IndentCache shared by all rules for the duration of one file.
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	config := lint.NewConfig()
//	config.Disable("PR01")
//	config.SetSeverity("QT01", lint.SeverityError)
//	config.SetRuleOptions("QT01", map[string]any{"style": "double"})
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "custom.no_debugger",
//		Group:       "custom",
//		Description: "Disallow debugger statements",
//		Severity:    lint.SeverityWarning,
//		Kinds:       []ast.Kind{ast.DebuggerStatement},
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
