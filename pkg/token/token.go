// Package token defines the lexical tokens of JavaScript and TypeScript source,
// including the JSX markup extension.
//
// Token kinds follow the ESTree token vocabulary so that rules can be written
// against the same categories used by the wider JavaScript tooling ecosystem.
package token

import "fmt"

// Kind is the lexical category of a token.
type Kind uint8

// Token kinds.
const (
	Invalid Kind = iota

	Punctuator        // { ( === => ...
	Keyword           // if, return, typeof
	Identifier        // foo, type, of
	PrivateIdentifier // #secret
	Numeric           // 1, .5, 0x1f, 10n
	String            // 'a', "b"
	Template          // `a${ and }b`
	RegularExpression // /ab+c/gi
	Boolean           // true, false
	Null              // null
	JSXText           // text between JSX tags
	JSXIdentifier     // tag and attribute names

	Shebang // #!/usr/bin/env node

	LineComment  // // comment
	BlockComment // /* comment */
)

var kindNames = [...]string{
	Invalid:           "Invalid",
	Punctuator:        "Punctuator",
	Keyword:           "Keyword",
	Identifier:        "Identifier",
	PrivateIdentifier: "PrivateIdentifier",
	Numeric:           "Numeric",
	String:            "String",
	Template:          "Template",
	RegularExpression: "RegularExpression",
	Boolean:           "Boolean",
	Null:              "Null",
	JSXText:           "JSXText",
	JSXIdentifier:     "JSXIdentifier",
	Shebang:           "Shebang",
	LineComment:       "Line",
	BlockComment:      "Block",
}

// String returns the ESTree name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a lexical token with its exact source text and location.
// Tokens are immutable and never overlap.
type Token struct {
	Kind  Kind
	Value string // exact source text
	Span  Span
}

// Is reports whether the token has the given kind and value.
func (t Token) Is(kind Kind, value string) bool {
	return t.Kind == kind && t.Value == value
}

// IsPunctuator reports whether the token is the punctuator v.
func (t Token) IsPunctuator(v string) bool {
	return t.Kind == Punctuator && t.Value == v
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind.IsComment()
}

// Line returns the 1-based line the token starts on.
func (t Token) Line() int { return t.Span.Start.Line }

// EndLine returns the 1-based line the token ends on.
func (t Token) EndLine() int { return t.Span.End.Line }

// Start returns the 0-based byte offset of the token.
func (t Token) Start() int { return t.Span.Start.Offset }

// End returns the 0-based byte offset just past the token.
func (t Token) End() int { return t.Span.End.Offset }

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Value, t.Span.Start.Line, t.Span.Start.Column)
}

// keywords holds the words reported as Keyword tokens. Contextual words such
// as type, of, as and let are identifiers.
var keywords = map[string]bool{
	"await":      true,
	"break":      true,
	"case":       true,
	"catch":      true,
	"class":      true,
	"const":      true,
	"continue":   true,
	"debugger":   true,
	"default":    true,
	"delete":     true,
	"do":         true,
	"else":       true,
	"enum":       true,
	"export":     true,
	"extends":    true,
	"finally":    true,
	"for":        true,
	"function":   true,
	"if":         true,
	"import":     true,
	"in":         true,
	"instanceof": true,
	"new":        true,
	"return":     true,
	"super":      true,
	"switch":     true,
	"this":       true,
	"throw":      true,
	"try":        true,
	"typeof":     true,
	"var":        true,
	"void":       true,
	"while":      true,
	"with":       true,
	"yield":      true,
}

// IsKeyword reports whether word is lexed as a Keyword token.
func IsKeyword(word string) bool {
	return keywords[word]
}

// LookupIdent returns Keyword, Boolean or Null for reserved words and
// Identifier for everything else.
func LookupIdent(word string) Kind {
	switch {
	case word == "true" || word == "false":
		return Boolean
	case word == "null":
		return Null
	case keywords[word]:
		return Keyword
	default:
		return Identifier
	}
}

var assignmentOperators = map[string]bool{
	"=":    true,
	"+=":   true,
	"-=":   true,
	"*=":   true,
	"/=":   true,
	"%=":   true,
	"**=":  true,
	"<<=":  true,
	">>=":  true,
	">>>=": true,
	"&=":   true,
	"|=":   true,
	"^=":   true,
	"&&=":  true,
	"||=":  true,
	"??=":  true,
}

// IsAssignmentOperator reports whether v is one of the assignment operators.
func IsAssignmentOperator(v string) bool {
	return assignmentOperators[v]
}

// Punctuators lists every punctuator, longest first, so that a scanner can
// take the first prefix match.
var Punctuators = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "**", "<<", ">>",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", ".", "@",
}
