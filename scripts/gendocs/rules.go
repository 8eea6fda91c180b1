package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register rules
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"layout": "Rules about the indentation of continuation lines.",
	"parens": "Rules about parentheses that precedence makes redundant.",
	"quotes": "Rules about the quotes around strings and JSX attributes.",
}

// generateRuleDocs writes an index of all rules and one page per rule,
// named after the rule ID the way lint.BuildDocURL links to it.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.GetAll()
	if err := generateRulesIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, rule := range rules {
		name := rulePageName(rule.ID())
		w := NewMarkdownWriter()
		w.Frontmatter(rule.ID()+" - "+rule.Name(), cleanDescription(rule.Description()))
		w.GeneratedMarker()
		writeRuleDoc(w, rule)
		if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
			return err
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func rulePageName(id string) string {
	return strings.ToLower(id) + ".md"
}

// generateRulesIndex generates the rules overview page.
func generateRulesIndex(outDir string, rules []lint.Rule) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Style rules checked and fixed by leapstyle")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	w.Paragraph(fmt.Sprintf("leapstyle includes %d rules. Every fix they offer is a token-level rewrite that leaves the program unchanged.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules are selected and configured in `.leapstyle.yaml`, by ID or by name:")
	w.CodeBlock("yaml", `lint:
  disabled: [PR01]             # turn rules off
  severity:
    QT01: error                # override severity
  rules:
    quotes.style:
      avoid_escape: true       # rule-specific option`)

	for _, group := range lint.Groups() {
		w.Line(fmt.Sprintf("## %s {#%s}", capitalizeFirst(group), group))
		w.Newline()
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		var rows [][]string
		for _, rule := range lint.GetByGroup(group) {
			link := fmt.Sprintf("[%s](%s)", InlineCode(rule.ID()), rulePageName(rule.ID()))
			rows = append(rows, []string{link, rule.Name(), rule.DefaultSeverity().String(), cleanDescription(rule.Description())})
		}
		w.Table([]string{"Rule", "Name", "Severity", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.Rule) {
	w.Header(1, fmt.Sprintf("%s - %s", rule.ID(), rule.Name()))

	w.Line(fmt.Sprintf("**Group:** %s | **Severity:** %s", InlineCode(rule.Group()), InlineCode(rule.DefaultSeverity().String())))
	w.Newline()

	w.Paragraph(rule.Description())

	if rationale := rule.Rationale(); rationale != "" {
		w.Header(2, "Why This Matters")
		w.Paragraph(rationale)
	}

	if badExample := rule.BadExample(); badExample != "" {
		w.Header(2, "Bad")
		w.CodeBlock("ts", badExample)
	}

	if goodExample := rule.GoodExample(); goodExample != "" {
		w.Header(2, "Good")
		w.CodeBlock("ts", goodExample)
	}

	if fix := rule.Fix(); fix != "" {
		w.Header(2, "How to Fix")
		w.Paragraph(fix)
	}

	if configKeys := rule.ConfigKeys(); len(configKeys) > 0 {
		w.Header(2, "Configuration")
		keys := make([]string, len(configKeys))
		for i, key := range configKeys {
			keys[i] = InlineCode(key)
		}
		w.Paragraph("This rule accepts the following options under " +
			InlineCode("lint.rules."+rule.Name()) + ": " + strings.Join(keys, ", "))
	}
}
