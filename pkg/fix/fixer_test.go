package fix_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/internal/testutil"
	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/fix"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register rules
)

func TestFixer_AllRules(t *testing.T) {
	src := "const label = (\"a\") +\nb;\nif (typeof(x) === \"y\") {}\n"

	analyzer := lint.NewAnalyzer(lint.NewConfig(), testutil.NewTestLogger(t))
	fixer := fix.NewFixer(analyzer, fix.Options{Verify: true}, testutil.NewTestLogger(t))

	out, err := fixer.Fix(context.Background(), "a.js", []byte(src))
	require.NoError(t, err)
	assert.True(t, out.Changed())
	assert.Equal(t, "const label = 'a' +\n  b;\nif (typeof x === 'y') {}\n", out.Fixed)
	assert.Empty(t, out.Remaining)
	assert.GreaterOrEqual(t, out.Passes, 1)

	rules := map[string]bool{}
	for _, a := range out.Applied {
		rules[a.RuleID] = true
	}
	assert.Equal(t, map[string]bool{"LY01": true, "PR01": true, "QT01": true}, rules)
}

func TestFixer_Clean(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.NewConfig(), nil)
	out, err := fix.NewFixer(analyzer, fix.Options{}, nil).Fix(context.Background(), "a.js", []byte("const a = 'b';\n"))
	require.NoError(t, err)
	assert.False(t, out.Changed())
	assert.Zero(t, out.Passes)
}

func TestFixer_SyntaxError(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.NewConfig(), nil)
	_, err := fix.NewFixer(analyzer, fix.Options{}, nil).Fix(context.Background(), "a.js", []byte("const = ;"))
	require.Error(t, err)
}

// growing keeps inserting a character, so its fixes never converge.
var growing = lint.WrapRuleDef(lint.RuleDef{
	ID:    "TS99",
	Kinds: []ast.Kind{ast.Program},
	Check: func(pass *lint.Pass, _ ast.NodeID) {
		pass.ReportRange(0, 0, "grow", pass.Replace("grow", 0, 0, " "))
	},
})

func TestFixer_NotConverged(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.NewConfig(), nil).WithRules(growing)
	out, err := fix.NewFixer(analyzer, fix.Options{MaxPasses: 3}, nil).Fix(context.Background(), "a.js", []byte("a;"))
	require.ErrorIs(t, err, fix.ErrNotConverged)
	assert.Equal(t, 3, out.Passes)
	assert.Equal(t, "   a;", out.Fixed)
}

// breaking replaces the file with different code.
var breaking = lint.WrapRuleDef(lint.RuleDef{
	ID:    "TS98",
	Kinds: []ast.Kind{ast.Literal},
	Check: func(pass *lint.Pass, id ast.NodeID) {
		span := pass.Code.Tree.Node(id).Span
		if pass.Code.Slice(span) == "1" {
			pass.ReportRange(span.Start.Offset, span.End.Offset, "two", pass.Replace("two", span.Start.Offset, span.End.Offset, "2"))
		}
	},
})

func TestFixer_Verify(t *testing.T) {
	src := []byte("x = 1;")
	analyzer := lint.NewAnalyzer(lint.NewConfig(), nil).WithRules(breaking)

	out, err := fix.NewFixer(analyzer, fix.Options{Verify: true}, nil).Fix(context.Background(), "a.js", src)
	require.ErrorIs(t, err, fix.ErrSemanticsChanged)
	assert.Equal(t, string(src), out.Fixed, "rejected fixes are rolled back")

	out, err = fix.NewFixer(analyzer, fix.Options{}, nil).Fix(context.Background(), "a.js", src)
	require.NoError(t, err)
	assert.Equal(t, "x = 2;", out.Fixed)
}
