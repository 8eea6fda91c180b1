package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/internal/testutil"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/lint/rules/layout"
)

var rule = lint.WrapRuleDef(layout.IndentBinaryOps)

func TestLY01_IndentBinaryOps(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		src     string
		opts    map[string]any
		wantMsg []string
		want    string
	}{
		{
			name:    "declaration operand",
			file:    "a.js",
			src:     "const ok = isReady &&\nhasPermission;",
			wantMsg: []string{"Expected indentation of 2 but found 0."},
			want:    "const ok = isReady &&\n  hasPermission;",
		},
		{
			name:    "over-indented chain",
			file:    "a.js",
			src:     "const ok = a ||\n        b ||\n        c;",
			wantMsg: []string{"Expected indentation of 2 but found 8."},
			want:    "const ok = a ||\n  b ||\n  c;",
		},
		{
			name:    "four space option",
			file:    "a.js",
			src:     "return a +\n  b;",
			opts:    map[string]any{"indent": 4},
			wantMsg: []string{"Expected indentation of 4 but found 2."},
			want:    "return a +\n    b;",
		},
		{
			name: "nested parens",
			file: "a.js",
			src: strings.Join([]string{
				"if (",
				"  a && (",
				"    a.b ||",
				"      a.c",
				"  ) &&",
				"    a.d",
				") {}",
			}, "\n"),
			wantMsg: []string{
				"Expected indentation of 4 but found 6.",
				"Expected indentation of 2 but found 4.",
			},
			want: strings.Join([]string{
				"if (",
				"  a && (",
				"    a.b ||",
				"    a.c",
				"  ) &&",
				"  a.d",
				") {}",
			}, "\n"),
		},
		{
			name:    "union type",
			file:    "a.ts",
			src:     "type Foo = A | B\n| C | D\n  | E;",
			wantMsg: []string{"Expected indentation of 2 but found 0."},
			want:    "type Foo = A | B\n  | C | D\n  | E;",
		},
		{
			name: "correct code",
			file: "a.js",
			src:  "const ok = a &&\n  b;",
			want: "const ok = a &&\n  b;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := testutil.RunRule(t, rule, tt.file, tt.src, tt.opts)
			var msgs []string
			for _, d := range diags {
				msgs = append(msgs, d.Message)
				assert.Equal(t, "LY01", d.RuleID)
				assert.True(t, d.AutoFixable)
			}
			assert.Equal(t, tt.wantMsg, msgs)

			assert.Equal(t, tt.want, testutil.FixRule(t, rule, tt.file, tt.src, tt.opts))
		})
	}
}

func TestLY01_Position(t *testing.T) {
	diags := testutil.RunRule(t, rule, "a.js", "x = a &&\n      b;", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.Equal(t, 0, diags[0].Pos.Column)
	assert.Equal(t, 6, diags[0].EndPos.Column)
	require.Len(t, diags[0].Edits(), 1)
	assert.Equal(t, "  ", diags[0].Edits()[0].NewText)
}

func TestLY01_ConfigIndent(t *testing.T) {
	src := "return a +\nb;"
	for _, tc := range []struct {
		indent any
		want   string
	}{
		{"tab", "return a +\n\tb;"},
		{3, "return a +\n   b;"},
	} {
		assert.Equal(t, tc.want, testutil.FixRule(t, rule, "a.js", src, map[string]any{"indent": tc.indent}))
	}
}
