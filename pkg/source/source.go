// Package source bundles the text, tokens, comments and syntax tree of one
// file and answers the positional queries that rules ask of them.
package source

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

// Code is the immutable view of a parsed file.
type Code struct {
	Filename string
	Text     string
	Lines    []string // without line terminators
	Tokens   []token.Token
	Comments []token.Token
	Tree     *ast.Tree

	lineStarts []int
	lineTokens map[int][]int // line -> indexes into Tokens starting on it
}

// New builds a Code. toks may contain comments; they are split out. toks and
// tree may be nil and attached later.
func New(filename, text string, toks []token.Token, tree *ast.Tree) *Code {
	c := &Code{Filename: filename, Text: text}
	c.splitLines()
	c.Attach(toks, tree)
	return c
}

// Attach sets the tokens and tree of c, replacing any set before.
func (c *Code) Attach(toks []token.Token, tree *ast.Tree) {
	c.Tree = tree
	c.Tokens, c.Comments = nil, nil
	c.lineTokens = make(map[int][]int)
	for _, t := range toks {
		if t.IsComment() {
			c.Comments = append(c.Comments, t)
		} else {
			c.Tokens = append(c.Tokens, t)
		}
	}
	for i, t := range c.Tokens {
		c.lineTokens[t.Line()] = append(c.lineTokens[t.Line()], i)
	}
}

func (c *Code) splitLines() {
	c.lineStarts = []int{0}
	start := 0
	for i := 0; i < len(c.Text); i++ {
		if c.Text[i] != '\n' {
			continue
		}
		c.Lines = append(c.Lines, strings.TrimSuffix(c.Text[start:i], "\r"))
		start = i + 1
		c.lineStarts = append(c.lineStarts, start)
	}
	c.Lines = append(c.Lines, c.Text[start:])
}

// LineCount returns the number of lines.
func (c *Code) LineCount() int { return len(c.Lines) }

// Line returns the text of the 1-based line, or "" when out of range.
func (c *Code) Line(line int) string {
	if line < 1 || line > len(c.Lines) {
		return ""
	}
	return c.Lines[line-1]
}

// LineStart returns the byte offset at which the 1-based line begins.
func (c *Code) LineStart(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(c.lineStarts) {
		return len(c.Text)
	}
	return c.lineStarts[line-1]
}

// LocFromIndex converts a byte offset into a position.
func (c *Code) LocFromIndex(offset int) token.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.Text) {
		offset = len(c.Text)
	}
	line := sort.Search(len(c.lineStarts), func(i int) bool {
		return c.lineStarts[i] > offset
	})
	return token.Position{
		Line:   line,
		Column: offset - c.lineStarts[line-1],
		Offset: offset,
	}
}

// IndexFromLoc converts a 1-based line and 0-based column into a byte offset.
func (c *Code) IndexFromLoc(line, column int) int {
	return c.LineStart(line) + column
}

// SpanOf returns the span covering the byte range [start, end).
func (c *Code) SpanOf(start, end int) token.Span {
	return token.Span{Start: c.LocFromIndex(start), End: c.LocFromIndex(end)}
}

// LineIndent returns the leading run of spaces and tabs of the 1-based line
// together with its span.
func (c *Code) LineIndent(line int) (string, token.Span) {
	text := c.Line(line)
	n := 0
	for n < len(text) && (text[n] == ' ' || text[n] == '\t') {
		n++
	}
	start := c.LineStart(line)
	return text[:n], c.SpanOf(start, start+n)
}

// Slice returns the source text of span.
func (c *Code) Slice(s token.Span) string {
	return c.Text[s.Start.Offset:s.End.Offset]
}

// NodeText returns the source text of a node, excluding wrapping parentheses.
func (c *Code) NodeText(id ast.NodeID) string {
	return c.Slice(c.Tree.Node(id).Span)
}

// TokenIndex returns the index of the first token starting at or after offset,
// or len(Tokens) when there is none.
func (c *Code) TokenIndex(offset int) int {
	return sort.Search(len(c.Tokens), func(i int) bool {
		return c.Tokens[i].Start() >= offset
	})
}

// FirstToken returns the index of the first token of a node. Wrapping
// parentheses are not part of the node.
func (c *Code) FirstToken(id ast.NodeID) (int, bool) {
	n := c.Tree.Node(id)
	i := c.TokenIndex(n.Span.Start.Offset)
	if i >= len(c.Tokens) || c.Tokens[i].Start() >= n.Span.End.Offset {
		return 0, false
	}
	return i, true
}

// LastToken returns the index of the last token of a node.
func (c *Code) LastToken(id ast.NodeID) (int, bool) {
	n := c.Tree.Node(id)
	i := c.TokenIndex(n.Span.End.Offset) - 1
	if i < 0 || c.Tokens[i].Start() < n.Span.Start.Offset {
		return 0, false
	}
	return i, true
}

// TokenAt returns the token at index i and whether i is in range.
func (c *Code) TokenAt(i int) (token.Token, bool) {
	if i < 0 || i >= len(c.Tokens) {
		return token.Token{}, false
	}
	return c.Tokens[i], true
}

// LineTokens returns the indexes of tokens that start on the 1-based line.
func (c *Code) LineTokens(line int) []int {
	return c.lineTokens[line]
}

// FirstTokenOnLine returns the first token starting on line.
func (c *Code) FirstTokenOnLine(line int) (token.Token, bool) {
	idx := c.lineTokens[line]
	if len(idx) == 0 {
		return token.Token{}, false
	}
	return c.Tokens[idx[0]], true
}

// FirstOnLine returns the first token or comment starting on line.
func (c *Code) FirstOnLine(line int) (token.Token, bool) {
	tok, ok := c.FirstTokenOnLine(line)
	start := c.LineStart(line)
	i := sort.Search(len(c.Comments), func(i int) bool {
		return c.Comments[i].Start() >= start
	})
	if i < len(c.Comments) && c.Comments[i].Line() == line && (!ok || c.Comments[i].Start() < tok.Start()) {
		return c.Comments[i], true
	}
	return tok, ok
}

// LastTokenOnLine returns the last token starting on line.
func (c *Code) LastTokenOnLine(line int) (token.Token, bool) {
	idx := c.lineTokens[line]
	if len(idx) == 0 {
		return token.Token{}, false
	}
	return c.Tokens[idx[len(idx)-1]], true
}

// CommentsBetween returns the comments lying within [start, end).
func (c *Code) CommentsBetween(start, end int) []token.Token {
	i := sort.Search(len(c.Comments), func(i int) bool {
		return c.Comments[i].Start() >= start
	})
	var out []token.Token
	for ; i < len(c.Comments) && c.Comments[i].End() <= end; i++ {
		out = append(out, c.Comments[i])
	}
	return out
}
