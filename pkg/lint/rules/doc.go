// Package rules provides the style rules of leapstyle.
//
// Rules are organized by category:
//   - layout: continuation line indentation (LY01)
//   - quotes: quote style of strings, templates and JSX attributes (QT01-QT02)
//   - parens: redundant parentheses (PR01)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/leapstyle/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/leapstyle/pkg/lint/rules/quotes"
package rules
