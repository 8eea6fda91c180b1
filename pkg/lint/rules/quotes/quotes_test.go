package quotes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/internal/testutil"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/lint/rules/quotes"
)

var (
	quotesRule    = lint.WrapRuleDef(quotes.Quotes)
	jsxQuotesRule = lint.WrapRuleDef(quotes.JSXQuotes)
)

func TestQT01_Quotes(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		src      string
		opts     map[string]any
		wantDiag int
		want     string
	}{
		{
			name:     "double to single by default",
			file:     "a.js",
			src:      `const a = "hello";`,
			wantDiag: 1,
			want:     `const a = 'hello';`,
		},
		{
			name:     "escapes the new quote",
			file:     "a.js",
			src:      `const a = "it's";`,
			wantDiag: 1,
			want:     `const a = 'it\'s';`,
		},
		{
			name: "avoid escape keeps the alternate quote",
			file: "a.js",
			src:  `const a = "it's";`,
			opts: map[string]any{"avoid_escape": true},
			want: `const a = "it's";`,
		},
		{
			name:     "unescapes the old quote",
			file:     "a.js",
			src:      `const a = 'say \"hi\"';`,
			opts:     map[string]any{"style": "double"},
			wantDiag: 1,
			want:     `const a = "say \"hi\"";`,
		},
		{
			name:     "plain template to single",
			file:     "a.js",
			src:      "const a = `plain`;",
			wantDiag: 1,
			want:     `const a = 'plain';`,
		},
		{
			name: "allowed template literals",
			file: "a.js",
			src:  "const a = `plain`;",
			opts: map[string]any{"allow_template_literals": true},
			want: "const a = `plain`;",
		},
		{
			name: "interpolating template is kept",
			file: "a.js",
			src:  "const a = `x ${y}`;",
			want: "const a = `x ${y}`;",
		},
		{
			name: "multiline template is kept",
			file: "a.js",
			src:  "const a = `x\ny`;",
			want: "const a = `x\ny`;",
		},
		{
			name: "tagged template is kept",
			file: "a.js",
			src:  "const a = tag`x`;",
			want: "const a = tag`x`;",
		},
		{
			name:     "to backtick escapes interpolation",
			file:     "a.js",
			src:      `const a = '${b}';`,
			opts:     map[string]any{"style": "backtick"},
			wantDiag: 1,
			want:     "const a = `\\${b}`;",
		},
		{
			name: "backtick leaves directives, keys and imports",
			file: "a.js",
			src:  "'use strict';\nimport x from 'x';\nconst o = { 'k': 1 };",
			opts: map[string]any{"style": "backtick"},
			want: "'use strict';\nimport x from 'x';\nconst o = { 'k': 1 };",
		},
		{
			name: "backtick leaves literal types",
			file: "a.ts",
			src:  "type T = 'a' | 'b';",
			opts: map[string]any{"style": "backtick"},
			want: "type T = 'a' | 'b';",
		},
		{
			name:     "single quotes in literal types",
			file:     "a.ts",
			src:      `type T = "a" | "b";`,
			wantDiag: 2,
			want:     `type T = 'a' | 'b';`,
		},
		{
			name: "jsx attribute is left to QT02",
			file: "a.jsx",
			src:  `const e = <a href="x" />;`,
			want: `const e = <a href="x" />;`,
		},
		{
			name: "numbers are not strings",
			file: "a.js",
			src:  "const n = 1;",
			want: "const n = 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := testutil.RunRule(t, quotesRule, tt.file, tt.src, tt.opts)
			assert.Len(t, diags, tt.wantDiag)
			assert.Equal(t, tt.want, testutil.FixRule(t, quotesRule, tt.file, tt.src, tt.opts))
		})
	}
}

func TestQT01_Messages(t *testing.T) {
	diags := testutil.RunRule(t, quotesRule, "a.js", `x = 'a';`, map[string]any{"style": "double"})
	require.Len(t, diags, 1)
	assert.Equal(t, "Strings must use doublequote.", diags[0].Message)
	assert.Equal(t, "QT01", diags[0].RuleID)
	assert.Equal(t, 4, diags[0].Pos.Column)
	assert.Equal(t, 7, diags[0].EndPos.Column)
}

func TestQT01_UnfixableOctal(t *testing.T) {
	src := `x = '\1';`
	opts := map[string]any{"style": "backtick"}

	diags := testutil.RunRule(t, quotesRule, "a.js", src, opts)
	require.Len(t, diags, 1)
	assert.Equal(t, "Strings must use backtick.", diags[0].Message)
	assert.False(t, diags[0].AutoFixable)
	assert.Empty(t, diags[0].Fixes)
}

func TestQT01_InvalidStyle(t *testing.T) {
	diags := testutil.RunRule(t, quotesRule, "a.js", `x = "a";`, map[string]any{"style": "guillemets"})
	assert.Empty(t, diags)
}

func TestQT02_JSXQuotes(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		opts    map[string]any
		wantMsg string
		want    string
	}{
		{
			name:    "prefer double by default",
			src:     `const e = <input type='text' />;`,
			wantMsg: "Unexpected usage of singlequote.",
			want:    `const e = <input type="text" />;`,
		},
		{
			name: "value containing the preferred quote",
			src:  `const e = <input title='say "hi"' />;`,
			want: `const e = <input title='say "hi"' />;`,
		},
		{
			name:    "prefer single",
			src:     `const e = <a href="x">link</a>;`,
			opts:    map[string]any{"prefer": "prefer-single"},
			wantMsg: "Unexpected usage of doublequote.",
			want:    `const e = <a href='x'>link</a>;`,
		},
		{
			name: "strings in expression containers are not attributes",
			src:  `const e = <a href={'x'} />;`,
			want: `const e = <a href={'x'} />;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := testutil.RunRule(t, jsxQuotesRule, "a.jsx", tt.src, tt.opts)
			if tt.wantMsg == "" {
				assert.Empty(t, diags)
			} else {
				require.Len(t, diags, 1)
				assert.Equal(t, tt.wantMsg, diags[0].Message)
			}
			assert.Equal(t, tt.want, testutil.FixRule(t, jsxQuotesRule, "a.jsx", tt.src, tt.opts))
		})
	}
}
