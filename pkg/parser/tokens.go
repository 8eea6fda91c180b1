package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/leapstyle/pkg/source"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

// atomic node types become one token even though tree-sitter gives them
// children.
var atomic = map[string]token.Kind{
	"string":       token.String,
	"regex":        token.RegularExpression,
	"number":       token.Numeric,
	"comment":      token.BlockComment,
	"html_comment": token.BlockComment,
	"jsx_text":     token.JSXText,
}

// jsxTags are the node types whose identifiers are JSX names.
var jsxTags = map[string]bool{
	"jsx_opening_element":      true,
	"jsx_closing_element":      true,
	"jsx_self_closing_element": true,
}

type tokenCollector struct {
	code   *source.Code
	src    []byte
	tokens []token.Token
}

func (c *tokenCollector) add(kind token.Kind, start, end int) {
	if end <= start {
		return
	}
	c.tokens = append(c.tokens, token.Token{
		Kind:  kind,
		Value: string(c.src[start:end]),
		Span:  c.code.SpanOf(start, end),
	})
}

// collect appends the tokens of n in source order. inJSX is set inside tag
// markup, where names lex as JSX identifiers.
func (c *tokenCollector) collect(n *sitter.Node, inJSX bool) {
	start, end := int(n.StartByte()), int(n.EndByte())
	typ := n.Type()

	switch {
	case n.IsMissing():
		return
	case typ == "hash_bang_line":
		c.add(token.Shebang, start, end)
		return
	case typ == "template_string":
		c.template(n, inJSX)
		return
	case typ == "jsx_expression":
		inJSX = false
	case jsxTags[typ]:
		inJSX = true
	}

	if kind, ok := atomic[typ]; ok && n.IsNamed() {
		switch {
		case typ == "comment" && strings.HasPrefix(n.Content(c.src), "//"):
			kind = token.LineComment
		case kind == token.JSXText && strings.TrimSpace(n.Content(c.src)) == "":
			return
		}
		c.add(kind, start, end)
		return
	}

	if n.ChildCount() == 0 {
		c.add(c.leafKind(n, inJSX), start, end)
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c.collect(n.Child(i), inJSX)
	}
}

// template splits a template literal into chunks around its substitutions.
func (c *tokenCollector) template(n *sitter.Node, inJSX bool) {
	chunk := int(n.StartByte())
	for i := 0; i < int(n.ChildCount()); i++ {
		sub := n.Child(i)
		if sub.Type() != "template_substitution" {
			continue
		}
		c.add(token.Template, chunk, int(sub.StartByte())+2)
		for j := 0; j < int(sub.ChildCount()); j++ {
			if part := sub.Child(j); part.IsNamed() {
				c.collect(part, inJSX)
			}
		}
		chunk = int(sub.EndByte()) - 1
	}
	c.add(token.Template, chunk, int(n.EndByte()))
}

func (c *tokenCollector) leafKind(n *sitter.Node, inJSX bool) token.Kind {
	text := n.Content(c.src)
	if n.IsNamed() {
		switch n.Type() {
		case "true", "false":
			return token.Boolean
		case "null":
			return token.Null
		case "this", "super", "import":
			return token.Keyword
		case "private_property_identifier":
			return token.PrivateIdentifier
		case "identifier", "property_identifier":
			if inJSX {
				return token.JSXIdentifier
			}
		}
		if isWord(text) {
			return token.Identifier
		}
	}
	if isWord(text) {
		return token.LookupIdent(text)
	}
	return token.Punctuator
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}
