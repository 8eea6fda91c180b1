// Package lexer tokenizes JavaScript and TypeScript text.
//
// It works on fragments as well as whole files, which is what the rewrite
// primitives need when they ask how two pieces of text would tokenize once
// joined. Full files are parsed by package parser; this lexer never builds a
// tree.
package lexer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/leapstyle/pkg/token"
)

var (
	// ErrUnterminated is returned for a string, template, comment or regular
	// expression that runs off the end of its line or of the input.
	ErrUnterminated = errors.New("unterminated literal")

	// ErrUnexpected is returned for a character that cannot start a token.
	ErrUnexpected = errors.New("unexpected character")
)

// Lexer tokenizes a JavaScript or TypeScript fragment.
type Lexer struct {
	input      string
	pos        int
	lineStarts []int

	// braces tracks open { and template substitutions; true marks a ${.
	braces []bool
	tokens []token.Token
}

// New creates a Lexer for input.
func New(input string) *Lexer {
	l := &Lexer{input: input, lineStarts: []int{0}}
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			l.lineStarts = append(l.lineStarts, i+1)
		}
	}
	return l
}

// Tokenize returns every token and comment of input in source order.
func Tokenize(input string) ([]token.Token, error) {
	return New(input).All()
}

// All scans the whole input.
func (l *Lexer) All() ([]token.Token, error) {
	if strings.HasPrefix(l.input, "#!") {
		end := strings.IndexByte(l.input, '\n')
		if end < 0 {
			end = len(l.input)
		}
		l.emit(token.Shebang, 0, strings.TrimSuffix(l.input[:end], "\r"))
		l.pos = len(l.tokens[0].Value)
	}
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			break
		}
		if err := l.next(); err != nil {
			return nil, fmt.Errorf("offset %d: %w", l.pos, err)
		}
	}
	return l.tokens, nil
}

func (l *Lexer) position(offset int) token.Position {
	line := sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > offset
	})
	return token.Position{Line: line, Column: offset - l.lineStarts[line-1], Offset: offset}
}

func (l *Lexer) emit(kind token.Kind, start int, value string) {
	l.tokens = append(l.tokens, token.Token{
		Kind:  kind,
		Value: value,
		Span:  token.Span{Start: l.position(start), End: l.position(start + len(value))},
	})
}

func (l *Lexer) peek(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f',
			r == 0xA0, r == 0xFEFF, r == 0x2028, r == 0x2029:
		case r > utf8.RuneSelf && unicode.Is(unicode.Zs, r):
		default:
			return
		}
		l.pos += size
	}
}

func (l *Lexer) next() error {
	ch := l.input[l.pos]
	switch {
	case ch == '/' && l.peek(1) == '/':
		return l.lineComment()
	case ch == '/' && l.peek(1) == '*':
		return l.blockComment()
	case ch == '/' && l.regexAllowed():
		return l.regex()
	case ch == '\'' || ch == '"':
		return l.str(ch)
	case ch == '`':
		l.pos++
		return l.template(l.pos - 1)
	case ch == '}' && len(l.braces) > 0 && l.braces[len(l.braces)-1]:
		l.braces = l.braces[:len(l.braces)-1]
		l.pos++
		return l.template(l.pos - 1)
	case ch == '#':
		return l.private()
	case isDigit(ch) || (ch == '.' && isDigit(l.peek(1))):
		return l.number()
	case isIdentStart(l.input[l.pos:]):
		l.ident(token.Identifier)
		return nil
	}
	return l.punctuator()
}

func (l *Lexer) lineComment() error {
	start := l.pos
	end := strings.IndexAny(l.input[start:], "\r\n")
	if end < 0 {
		end = len(l.input) - start
	}
	l.pos = start + end
	l.emit(token.LineComment, start, l.input[start:l.pos])
	return nil
}

func (l *Lexer) blockComment() error {
	start := l.pos
	end := strings.Index(l.input[start+2:], "*/")
	if end < 0 {
		return ErrUnterminated
	}
	l.pos = start + 2 + end + 2
	l.emit(token.BlockComment, start, l.input[start:l.pos])
	return nil
}

// regexAllowed decides whether a slash starts a regular expression by looking
// at the previous significant token.
func (l *Lexer) regexAllowed() bool {
	prev, ok := l.lastSignificant()
	if !ok {
		return true
	}
	switch prev.Kind {
	case token.Punctuator:
		return prev.Value != ")" && prev.Value != "]" && prev.Value != "}"
	case token.Keyword:
		return prev.Value != "this" && prev.Value != "super"
	case token.Template:
		return strings.HasSuffix(prev.Value, "${")
	}
	return false
}

func (l *Lexer) lastSignificant() (token.Token, bool) {
	for i := len(l.tokens) - 1; i >= 0; i-- {
		if !l.tokens[i].IsComment() {
			return l.tokens[i], true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) regex() error {
	start := l.pos
	l.pos++
	inClass := false
	for {
		if l.pos >= len(l.input) || l.input[l.pos] == '\n' || l.input[l.pos] == '\r' {
			return ErrUnterminated
		}
		c := l.input[l.pos]
		switch {
		case c == '\\':
			l.pos++
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			l.pos++
			for l.pos < len(l.input) && isIdentPart(l.input[l.pos:]) {
				_, size := utf8.DecodeRuneInString(l.input[l.pos:])
				l.pos += size
			}
			l.emit(token.RegularExpression, start, l.input[start:l.pos])
			return nil
		}
		l.pos++
	}
}

func (l *Lexer) str(quote byte) error {
	start := l.pos
	l.pos++
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch c {
		case '\\':
			l.pos += 2
			if l.pos <= len(l.input) && l.input[l.pos-1] == '\r' && l.peek(0) == '\n' {
				l.pos++
			}
			continue
		case '\n', '\r':
			return ErrUnterminated
		case quote:
			l.pos++
			l.emit(token.String, start, l.input[start:l.pos])
			return nil
		}
		l.pos++
	}
	return ErrUnterminated
}

// template scans one template chunk. start points at the opening backtick or
// at the } closing a substitution; l.pos is just past it.
func (l *Lexer) template(start int) error {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case '`':
			l.pos++
			l.emit(token.Template, start, l.input[start:l.pos])
			return nil
		case '$':
			if l.peek(1) == '{' {
				l.pos += 2
				l.braces = append(l.braces, true)
				l.emit(token.Template, start, l.input[start:l.pos])
				return nil
			}
		}
		l.pos++
	}
	return ErrUnterminated
}

func (l *Lexer) private() error {
	if !isIdentStart(l.input[l.pos+1:]) {
		return ErrUnexpected
	}
	start := l.pos
	l.pos++
	l.ident(token.PrivateIdentifier)
	tok := &l.tokens[len(l.tokens)-1]
	tok.Value = l.input[start:l.pos]
	tok.Span.Start = l.position(start)
	return nil
}

func (l *Lexer) ident(kind token.Kind) {
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos:]) {
		if l.input[l.pos] == '\\' {
			l.pos += 6 // \uXXXX
			continue
		}
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size
	}
	if l.pos > len(l.input) {
		l.pos = len(l.input)
	}
	word := l.input[start:l.pos]
	if kind == token.Identifier {
		kind = token.LookupIdent(word)
	}
	l.emit(kind, start, word)
}

func (l *Lexer) number() error {
	start := l.pos
	digits := func(ok func(byte) bool) {
		for l.pos < len(l.input) && (ok(l.input[l.pos]) || l.input[l.pos] == '_') {
			l.pos++
		}
	}

	if l.input[l.pos] == '0' && strings.ContainsRune("xXbBoO", rune(l.peek(1))) && l.peek(1) != 0 {
		l.pos += 2
		digits(isHexDigit)
	} else {
		digits(isDigit)
		if l.pos < len(l.input) && l.input[l.pos] == '.' {
			l.pos++
			digits(isDigit)
		}
		if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
			l.pos++
			if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
				l.pos++
			}
			digits(isDigit)
		}
	}
	if l.pos < len(l.input) && l.input[l.pos] == 'n' {
		l.pos++
	}
	if l.pos < len(l.input) && (isIdentStart(l.input[l.pos:]) || isDigit(l.input[l.pos])) {
		return ErrUnexpected
	}
	l.emit(token.Numeric, start, l.input[start:l.pos])
	return nil
}

func (l *Lexer) punctuator() error {
	rest := l.input[l.pos:]
	for _, p := range token.Punctuators {
		if !strings.HasPrefix(rest, p) {
			continue
		}
		// a?.5:b is a conditional, not optional chaining
		if p == "?." && len(rest) > 2 && isDigit(rest[2]) {
			continue
		}
		switch p {
		case "{":
			l.braces = append(l.braces, false)
		case "}":
			if len(l.braces) > 0 {
				l.braces = l.braces[:len(l.braces)-1]
			}
		}
		l.emit(token.Punctuator, l.pos, p)
		l.pos += len(p)
		return nil
	}
	return ErrUnexpected
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '\\' {
		return strings.HasPrefix(s, "\\u")
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentPart(s string) bool {
	if isIdentStart(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r) || r == 0x200C || r == 0x200D || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
