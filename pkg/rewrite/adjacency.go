// Package rewrite holds the primitives that let formatting rules emit fixes
// without changing what the program means: token adjacency checks, quote
// conversion, operator precedence and continuation indentation.
package rewrite

import (
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lexer"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

// IsSafeAdjacent reports whether left and right can be written with no
// whitespace between them and still tokenize as they did apart. Each side is
// either a token.Token or a source fragment; a fragment contributes its last
// (left) or first (right) token or comment. Fragments that fail to tokenize
// are never safe.
func IsSafeAdjacent(left, right any) bool {
	l, ok := edgeToken(left, true)
	if !ok {
		return false
	}
	r, ok := edgeToken(right, false)
	if !ok {
		return false
	}

	if l.Kind == token.Shebang || r.Kind == token.Shebang {
		return false
	}

	if l.Kind == token.Punctuator || r.Kind == token.Punctuator {
		if l.Kind == token.Punctuator && r.Kind == token.Punctuator {
			if isPlus(l.Value) && isPlus(r.Value) || isMinus(l.Value) && isMinus(r.Value) {
				return false
			}
			return relexesApart(l.Value, r.Value)
		}
		if l.IsPunctuator("/") {
			return !r.IsComment() && r.Kind != token.RegularExpression
		}
		if l.IsPunctuator(".") && r.Kind == token.Numeric {
			return false
		}
		return true
	}

	if l.Kind.IsLiteral() || r.Kind.IsLiteral() {
		return true
	}

	if l.Kind != token.Numeric && r.Kind == token.Numeric && strings.HasPrefix(r.Value, ".") {
		return false
	}

	if l.Kind == token.BlockComment || r.Kind == token.BlockComment || r.Kind == token.LineComment {
		return true
	}

	return r.Kind == token.PrivateIdentifier
}

func isPlus(v string) bool  { return v == "+" || v == "++" }
func isMinus(v string) bool { return v == "-" || v == "--" }

// relexesApart reports whether two punctuators still lex as the same pair
// once joined. A leading operand keeps a slash from reading as a regex.
func relexesApart(left, right string) bool {
	toks, err := lexer.Tokenize("0 " + left + right)
	if err != nil || len(toks) != 3 {
		return false
	}
	return toks[1].Value == left && toks[2].Value == right
}

func edgeToken(v any, last bool) (token.Token, bool) {
	switch v := v.(type) {
	case token.Token:
		return v, v.Kind != token.Invalid
	case *token.Token:
		if v == nil {
			return token.Token{}, false
		}
		return *v, v.Kind != token.Invalid
	case string:
		toks, err := lexer.Tokenize(v)
		if err != nil || len(toks) == 0 {
			return token.Token{}, false
		}
		if last {
			return toks[len(toks)-1], true
		}
		return toks[0], true
	default:
		return token.Token{}, false
	}
}
