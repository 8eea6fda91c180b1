package config

import (
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
)

// Rule IDs of the rules whose options have top-level config keys.
const (
	quotesRuleID    = "QT01"
	jsxQuotesRuleID = "QT02"
)

var outputFormats = map[string]bool{"": true, "auto": true, "text": true, "json": true}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := rewrite.ParseIndentUnit(c.Indent); err != nil {
		return fmt.Errorf("indent: %w", err)
	}
	if _, err := rewrite.ParseQuoteStyle(c.Quotes.Style); err != nil {
		return fmt.Errorf("quotes.style: %w", err)
	}
	if c.JSXQuotes != "prefer-double" && c.JSXQuotes != "prefer-single" {
		return fmt.Errorf("jsx_quotes must be prefer-double or prefer-single, got %q", c.JSXQuotes)
	}
	if !outputFormats[c.OutputFormat] {
		return fmt.Errorf("output must be auto, text or json, got %q", c.OutputFormat)
	}
	if c.MaxPasses < 1 {
		return fmt.Errorf("max_passes must be at least 1, got %d", c.MaxPasses)
	}
	if c.DocsURL != "" {
		if u, err := url.Parse(c.DocsURL); err != nil || u.Scheme == "" {
			return fmt.Errorf("docs_url must be an absolute URL, got %q", c.DocsURL)
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for _, p := range append(append([]string(nil), c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := lint.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev)
			}
		}
	}
	return nil
}

// ToLintConfig translates the CLI configuration into analyzer settings.
// Rules may be referred to by ID or by name; an unknown rule is an error.
func (c *Config) ToLintConfig() (*lint.Config, error) {
	lintCfg := lint.NewConfig()

	unit, err := rewrite.ParseIndentUnit(c.Indent)
	if err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	lintCfg.SetIndent(unit)

	// Rule links are process-wide; an empty URL restores the default.
	lint.SetDocsBaseURL(c.DocsURL)

	lintCfg.SetRuleOptions(quotesRuleID, map[string]any{
		"style":                   c.Quotes.Style,
		"avoid_escape":            c.Quotes.AvoidEscape,
		"allow_template_literals": c.Quotes.AllowTemplateLiterals,
	})
	lintCfg.SetRuleOptions(jsxQuotesRuleID, map[string]any{"prefer": c.JSXQuotes})

	if c.Lint == nil {
		return lintCfg, nil
	}

	for _, ref := range c.Lint.Disabled {
		id, err := ResolveRuleID(ref)
		if err != nil {
			return nil, fmt.Errorf("lint.disabled: %w", err)
		}
		lintCfg.Disable(id)
	}

	for ref, sev := range c.Lint.Severity {
		id, err := ResolveRuleID(ref)
		if err != nil {
			return nil, fmt.Errorf("lint.severity: %w", err)
		}
		s, ok := lint.ParseSeverity(sev)
		if !ok {
			return nil, fmt.Errorf("lint.severity.%s: unknown severity %q", ref, sev)
		}
		lintCfg.SetSeverity(id, s)
	}

	// lint.rules entries are merged over the top-level keys
	for ref, opts := range c.Lint.Rules {
		id, err := ResolveRuleID(ref)
		if err != nil {
			return nil, fmt.Errorf("lint.rules: %w", err)
		}
		merged := make(map[string]any)
		maps.Copy(merged, lintCfg.GetRuleOptions(id))
		maps.Copy(merged, opts)
		lintCfg.SetRuleOptions(id, merged)
	}

	return lintCfg, nil
}

// ResolveRuleID returns the ID of the registered rule with the given ID or name.
func ResolveRuleID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	rule, ok := lint.GetByID(ref)
	if !ok {
		// env keys arrive lowercased
		rule, ok = lint.GetByID(strings.ToUpper(ref))
	}
	if !ok {
		return "", fmt.Errorf("unknown rule %q", ref)
	}
	return rule.ID(), nil
}
