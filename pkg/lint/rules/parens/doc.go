// Package parens contains rules about parentheses in expressions.
package parens
