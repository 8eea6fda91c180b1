package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/token"
)

type tok struct {
	kind  token.Kind
	value string
}

func lex(t *testing.T, input string) []tok {
	t.Helper()
	toks, err := Tokenize(input)
	require.NoError(t, err)
	out := make([]tok, len(toks))
	for i, x := range toks {
		out[i] = tok{x.Kind, x.Value}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "operators longest match",
			input: "a>>>=b??c",
			want: []tok{
				{token.Identifier, "a"}, {token.Punctuator, ">>>="}, {token.Identifier, "b"},
				{token.Punctuator, "??"}, {token.Identifier, "c"},
			},
		},
		{
			name:  "plus plus",
			input: "a+++b",
			want:  []tok{{token.Identifier, "a"}, {token.Punctuator, "++"}, {token.Punctuator, "+"}, {token.Identifier, "b"}},
		},
		{
			name:  "optional chain before digit is conditional",
			input: "a?.5:b",
			want: []tok{
				{token.Identifier, "a"}, {token.Punctuator, "?"}, {token.Numeric, ".5"},
				{token.Punctuator, ":"}, {token.Identifier, "b"},
			},
		},
		{
			name:  "numbers",
			input: "1 .5 1e-3 0x1F 10n 1_000",
			want: []tok{
				{token.Numeric, "1"}, {token.Numeric, ".5"}, {token.Numeric, "1e-3"},
				{token.Numeric, "0x1F"}, {token.Numeric, "10n"}, {token.Numeric, "1_000"},
			},
		},
		{
			name:  "keywords and literals",
			input: "typeof this null true type",
			want: []tok{
				{token.Keyword, "typeof"}, {token.Keyword, "this"}, {token.Null, "null"},
				{token.Boolean, "true"}, {token.Identifier, "type"},
			},
		},
		{
			name:  "strings with escapes",
			input: `'it\'s' "a\"b"`,
			want:  []tok{{token.String, `'it\'s'`}, {token.String, `"a\"b"`}},
		},
		{
			name:  "template with nested braces",
			input: "`a${ {b}.b }c`",
			want: []tok{
				{token.Template, "`a${"}, {token.Punctuator, "{"}, {token.Identifier, "b"},
				{token.Punctuator, "}"}, {token.Punctuator, "."}, {token.Identifier, "b"},
				{token.Template, "}c`"},
			},
		},
		{
			name:  "regex after operator",
			input: "x = /a[/]b/gi",
			want:  []tok{{token.Identifier, "x"}, {token.Punctuator, "="}, {token.RegularExpression, "/a[/]b/gi"}},
		},
		{
			name:  "division after identifier",
			input: "a / b",
			want:  []tok{{token.Identifier, "a"}, {token.Punctuator, "/"}, {token.Identifier, "b"}},
		},
		{
			name:  "comments",
			input: "a // line\n/* block */ b",
			want: []tok{
				{token.Identifier, "a"}, {token.LineComment, "// line"},
				{token.BlockComment, "/* block */"}, {token.Identifier, "b"},
			},
		},
		{
			name:  "private identifier",
			input: "this.#x",
			want:  []tok{{token.Keyword, "this"}, {token.Punctuator, "."}, {token.PrivateIdentifier, "#x"}},
		},
		{
			name:  "shebang",
			input: "#!/usr/bin/env node\nx",
			want:  []tok{{token.Shebang, "#!/usr/bin/env node"}, {token.Identifier, "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lex(t, tt.input))
		})
	}
}

func TestTokenize_Positions(t *testing.T) {
	toks, err := Tokenize("a\n  bb")
	require.NoError(t, err)
	require.Len(t, toks, 2)

	assert.Equal(t, token.Position{Line: 2, Column: 2, Offset: 4}, toks[1].Span.Start)
	assert.Equal(t, token.Position{Line: 2, Column: 4, Offset: 6}, toks[1].Span.End)
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"unterminated string", `'abc`, ErrUnterminated},
		{"newline in string", "'a\nb'", ErrUnterminated},
		{"unterminated template", "`abc", ErrUnterminated},
		{"unterminated block comment", "/* x", ErrUnterminated},
		{"identifier after number", "1a", ErrUnexpected},
		{"stray hash", "# x", ErrUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
