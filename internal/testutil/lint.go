package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/fix"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/parser"
)

// RuleAnalyzer returns an analyzer that runs only rule, with opts as the
// rule's options.
func RuleAnalyzer(t testing.TB, rule lint.Rule, opts map[string]any) *lint.Analyzer {
	t.Helper()
	config := lint.NewConfig()
	if opts != nil {
		config.SetRuleOptions(rule.ID(), opts)
	}
	return lint.NewAnalyzer(config, NewTestLogger(t)).WithRules(rule)
}

// RunRule parses src and returns the diagnostics of rule.
func RunRule(t testing.TB, rule lint.Rule, filename, src string, opts map[string]any) []lint.Diagnostic {
	t.Helper()
	code, err := parser.Parse(context.Background(), filename, []byte(src))
	require.NoError(t, err)
	return RuleAnalyzer(t, rule, opts).Analyze(code)
}

// FixRule applies the fixes of rule until none remain, checks with esbuild
// that the program is unchanged, and returns the fixed text.
func FixRule(t testing.TB, rule lint.Rule, filename, src string, opts map[string]any) string {
	t.Helper()
	fixer := fix.NewFixer(RuleAnalyzer(t, rule, opts), fix.Options{Verify: true}, NewTestLogger(t))
	out, err := fixer.Fix(context.Background(), filename, []byte(src))
	require.NoError(t, err)
	return out.Fixed
}
