package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func edit(start, end int, text string) lint.TextEdit {
	return lint.TextEdit{
		Pos:     token.Position{Line: 1, Offset: start},
		EndPos:  token.Position{Line: 1, Offset: end},
		NewText: text,
	}
}

func diag(rule string, edits ...lint.TextEdit) lint.Diagnostic {
	return lint.Diagnostic{
		RuleID:      rule,
		Pos:         edits[0].Pos,
		Fixes:       []lint.Fix{{Description: rule + " fix", TextEdits: edits}},
		AutoFixable: true,
	}
}

func TestSpansConflict(t *testing.T) {
	tests := []struct {
		name string
		a, b span
		want bool
	}{
		{"disjoint", span{0, 2}, span{3, 5}, false},
		{"touching", span{0, 2}, span{2, 4}, false},
		{"overlap", span{0, 3}, span{2, 4}, true},
		{"nested", span{0, 10}, span{2, 4}, true},
		{"insertions at different offsets", span{2, 2}, span{3, 3}, false},
		{"insertions at one offset", span{2, 2}, span{2, 2}, true},
		{"insertion at replacement start", span{2, 2}, span{2, 5}, false},
		{"insertion at replacement end", span{5, 5}, span{2, 5}, false},
		{"insertion inside replacement", span{3, 3}, span{2, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spansConflict(tt.a, tt.b))
			assert.Equal(t, tt.want, spansConflict(tt.b, tt.a), "symmetric")
		})
	}
}

func TestApply(t *testing.T) {
	src := "let x = (a) + 'b';"

	res, err := Apply(src, []lint.Diagnostic{
		diag("QT01", edit(14, 17, `"b"`)),
		diag("PR01", edit(8, 9, ""), edit(10, 11, "")),
	})
	require.NoError(t, err)
	assert.Equal(t, `let x = a + "b";`, res.Source)
	require.Len(t, res.Applied, 2)
	assert.Equal(t, "PR01", res.Applied[0].RuleID, "applied in source order")
	assert.Equal(t, 2, res.Applied[0].EditCount)
	assert.Empty(t, res.Skipped)
}

func TestApply_Conflicts(t *testing.T) {
	src := "abcdef"

	res, err := Apply(src, []lint.Diagnostic{
		diag("A", edit(0, 3, "X")),
		diag("B", edit(2, 4, "Y")),
		diag("C", edit(4, 6, "Z")),
		diag("D", edit(5, 5, "!"), edit(5, 6, "?")),
		diag("E", edit(9, 12, "")),
	})
	require.NoError(t, err)
	assert.Equal(t, "XdZ", res.Source)

	require.Len(t, res.Skipped, 3)
	reasons := map[string]string{}
	for _, s := range res.Skipped {
		reasons[s.RuleID] = s.Reason
	}
	assert.Contains(t, reasons["B"], "previously accepted")
	assert.Contains(t, reasons["D"], "previously accepted")
	assert.Contains(t, reasons["E"], "out of range")
}

func TestApply_Atomic(t *testing.T) {
	src := "(a)"
	// the second edit of B conflicts with A, so its first edit must not land either
	res, err := Apply(src, []lint.Diagnostic{
		diag("A", edit(1, 2, "b")),
		diag("B", edit(2, 3, "]"), edit(1, 2, "c")),
	})
	require.NoError(t, err)
	assert.Equal(t, "(b)", res.Source)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "B", res.Skipped[0].RuleID)
}

func TestApply_NoFixes(t *testing.T) {
	res, err := Apply("a", nil)
	require.ErrorIs(t, err, ErrNoFixes)
	assert.Equal(t, "a", res.Source)

	res, err = Apply("a", []lint.Diagnostic{{RuleID: "X", Message: "no fix"}})
	require.ErrorIs(t, err, ErrNoFixes)
	assert.Equal(t, "a", res.Source)

	res, err = Apply("a", []lint.Diagnostic{diag("X", edit(0, 1, "b"), edit(0, 1, "c"))})
	require.ErrorIs(t, err, ErrNoFixes)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Reason, "within fix")
}

func TestDiff(t *testing.T) {
	out, err := Diff("a.js", "a\nb\n", "a\nc\n")
	require.NoError(t, err)
	assert.Contains(t, out, "--- a/a.js")
	assert.Contains(t, out, "+++ b/a.js")
	assert.Contains(t, out, "-b\n")
	assert.Contains(t, out, "+c\n")

	out, err = Diff("a.js", "same", "same")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		before  string
		after   string
		wantErr error
	}{
		{"quotes", "a.js", "x = 'a\"b';", "x = \"a\\\"b\";", nil},
		{"template", "a.js", "x = 'a';", "x = `a`;", nil},
		{"parens", "a.js", "x = (a * b) + c;", "x = a * b + c;", nil},
		{"indent", "a.ts", "type T = A\n| B;\nlet y: T;", "type T = A\n  | B;\nlet y: T;", nil},
		{"changed value", "a.js", "x = 'a';", "x = 'b';", ErrSemanticsChanged},
		{"changed grouping", "a.js", "x = (a + b) * c;", "x = a + b * c;", ErrSemanticsChanged},
		{"broken output", "a.js", "x = 'a';", "x = 'a;", ErrSemanticsChanged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.file, tt.before, tt.after)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	err := Verify("a.js", "x = ;", "x = 1;")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSemanticsChanged)
}
