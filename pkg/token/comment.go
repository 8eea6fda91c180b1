package token

import "strings"

// IsComment returns true if the kind is a line or block comment.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// IsLiteral returns true for string-like literal kinds, which can never merge
// with a neighbouring token.
func (k Kind) IsLiteral() bool {
	return k == String || k == Template
}

// CommentText returns the body of a comment token without its delimiters.
func CommentText(t Token) string {
	switch t.Kind {
	case LineComment:
		return strings.TrimPrefix(t.Value, "//")
	case BlockComment:
		return strings.TrimSuffix(strings.TrimPrefix(t.Value, "/*"), "*/")
	default:
		return ""
	}
}
