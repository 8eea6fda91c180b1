package rewrite

import (
	"fmt"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/source"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

// Edit replaces the bytes [Start, End) of the source with Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Correction is one misindented continuation line.
type Correction struct {
	Line     int
	Span     token.Span // leading whitespace of the line
	Expected string
	Actual   string
	Edit     Edit
}

// Message describes the correction in terms of indent widths.
func (c Correction) Message() string {
	return fmt.Sprintf("Expected indentation of %d but found %d.", len(c.Expected), len(c.Actual))
}

// IsSplitting reports whether nodes of kind can place operands on separate
// lines: binary and logical expressions, unions and intersections.
func IsSplitting(kind ast.Kind) bool {
	switch kind {
	case ast.BinaryExpression, ast.LogicalExpression, ast.TSUnionType, ast.TSIntersectionType:
		return true
	}
	return false
}

var (
	additionLineEnds = map[string]bool{":": true, "[": true, "(": true, "<": true}
	additionOpeners  = map[string]bool{"[": true, "(": true, "{": true, "=>": true, ":": true}
	closingBrackets  = map[string]bool{"]": true, ")": true, "}": true}
	neutralKeywords  = map[string]bool{"typeof": true, "instanceof": true, "this": true}
)

// ContinuationIndent computes the expected indentation of continuation lines
// in splitting expressions. One instance serves one pass over one file, and
// nodes must be checked in document order so that corrections recorded in
// the cache are seen by the nodes nested inside or following them.
type ContinuationIndent struct {
	code  *source.Code
	unit  IndentUnit
	cache *IndentCache
}

// NewContinuationIndent creates an engine for code. A nil cache starts a new
// one.
func NewContinuationIndent(code *source.Code, unit IndentUnit, cache *IndentCache) *ContinuationIndent {
	if cache == nil {
		cache = NewIndentCache()
	}
	return &ContinuationIndent{code: code, unit: unit, cache: cache}
}

// Cache returns the engine's correction cache.
func (e *ContinuationIndent) Cache() *IndentCache { return e.cache }

// Check inspects every operand boundary of a splitting node and returns the
// corrections it finds, recording each in the cache.
func (e *ContinuationIndent) Check(id ast.NodeID) []Correction {
	tree := e.code.Tree
	n := tree.Node(id)
	if !IsSplitting(n.Kind) || n.Span.Start.Line == n.Span.End.Line {
		return nil
	}

	var operands []ast.NodeID
	switch n.Kind {
	case ast.BinaryExpression, ast.LogicalExpression:
		if r := tree.Right(id); r != ast.NoNode {
			operands = append(operands, r)
		}
	default:
		if len(n.Children) > 1 {
			operands = n.Children[1:]
		}
	}

	var out []Correction
	for _, operand := range operands {
		if c, ok := e.checkOperand(id, operand); ok {
			out = append(out, c)
		}
	}
	return out
}

func (e *ContinuationIndent) checkOperand(id, operand ast.NodeID) (Correction, bool) {
	code := e.code
	node := code.Tree.Node(id)

	right, ok := code.FirstToken(operand)
	if !ok {
		return Correction{}, false
	}
	op := right - 1
	for op >= 0 && code.Tokens[op].IsPunctuator("(") {
		right = op
		op--
		if op < 0 || code.Tokens[op].Start() <= node.Span.Start.Offset {
			return Correction{}, false
		}
	}
	if op < 1 {
		return Correction{}, false
	}
	tokRight := code.Tokens[right]
	tokLeft := code.Tokens[op-1]
	if tokLeft.Line() == tokRight.Line() {
		return Correction{}, false
	}

	leftLine := tokLeft.Line()
	first, hasFirst := e.firstTokenOfLine(leftLine)
	last, hasLast := e.lastTokenOfLine(leftLine)

	add := false
	if hasFirst {
		switch {
		case first.Kind == token.Keyword && !neutralKeywords[first.Value]:
			add = true
		case first.Is(token.Identifier, "type") && code.Tree.Kind(node.Parent) == ast.TSTypeAliasDeclaration:
			add = true
		}
	}
	if hasLast && last.Kind == token.Punctuator &&
		(additionLineEnds[last.Value] || token.IsAssignmentOperator(last.Value)) {
		add = true
	}
	if before := code.TokenIndex(node.Span.Start.Offset) - 1; before >= 0 && hasFirst {
		b := code.Tokens[before]
		if b.Kind == token.Punctuator &&
			(additionOpeners[b.Value] || token.IsAssignmentOperator(b.Value)) &&
			b.Line() == first.Line() {
			add = true
		}
	}

	sub := false
	if hasLast && last.IsPunctuator(")") && e.closesMoreThanOpens(leftLine) {
		rightFirst, ok := e.firstTokenOfLine(tokRight.Line())
		sub = !ok || !(rightFirst.Kind == token.Punctuator && closingBrackets[rightFirst.Value])
	}

	target := e.indentOf(leftLine)
	switch {
	case add && !sub:
		target = e.unit.Add(target)
	case sub && !add:
		target = e.unit.Sub(target)
	}

	line := tokRight.Line()
	actual := e.indentOf(line)
	if actual == target {
		return Correction{}, false
	}

	_, span := code.LineIndent(line)
	e.cache.Set(line, target)
	return Correction{
		Line:     line,
		Span:     span,
		Expected: target,
		Actual:   actual,
		Edit:     Edit{Start: span.Start.Offset, End: span.End.Offset, Text: target},
	}, true
}

// indentOf returns the corrected indent of line when one is cached, and its
// source indent otherwise.
func (e *ContinuationIndent) indentOf(line int) string {
	if s, ok := e.cache.Get(line); ok {
		return s
	}
	s, _ := e.code.LineIndent(line)
	return s
}

// firstTokenOfLine returns the first token or comment on line. A leading
// comment keeps a keyword after it from adding a unit.
func (e *ContinuationIndent) firstTokenOfLine(line int) (token.Token, bool) {
	return e.code.FirstOnLine(line)
}

// lastTokenOfLine returns the last token that ends on line.
func (e *ContinuationIndent) lastTokenOfLine(line int) (token.Token, bool) {
	toks := e.code.Tokens
	i := e.code.TokenIndex(e.code.LineStart(line+1)) - 1
	for i >= 0 && toks[i].EndLine() > line {
		i--
	}
	if i < 0 || toks[i].EndLine() != line {
		return token.Token{}, false
	}
	return toks[i], true
}

func (e *ContinuationIndent) closesMoreThanOpens(line int) bool {
	opens, closes := 0, 0
	for _, i := range e.code.LineTokens(line) {
		switch {
		case e.code.Tokens[i].IsPunctuator("("):
			opens++
		case e.code.Tokens[i].IsPunctuator(")"):
			closes++
		}
	}
	return closes > opens
}
