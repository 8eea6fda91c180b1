package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

// ConfigField represents a configuration key.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "style", "files", "fixing", "lint"
}

// getConfigSchema returns the keys of .leapstyle.yaml, following
// internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	d := config.Default()
	return []ConfigField{
		{Name: "indent", Type: "int or \"tab\"", Default: fmt.Sprint(d.Indent), Description: "Indentation unit of continuation lines", Category: "style"},
		{Name: "quotes.style", Type: "string", Default: d.Quotes.Style, Description: "Preferred string quotes: single, double or backtick", Category: "style"},
		{Name: "quotes.avoid_escape", Type: "bool", Default: strconv.FormatBool(d.Quotes.AvoidEscape), Description: "Keep other quotes when converting would add escapes", Category: "style"},
		{Name: "quotes.allow_template_literals", Type: "bool", Default: strconv.FormatBool(d.Quotes.AllowTemplateLiterals), Description: "Leave template literals without substitutions alone", Category: "style"},
		{Name: "jsx_quotes", Type: "string", Default: d.JSXQuotes, Description: "Preferred JSX attribute quotes: prefer-double or prefer-single", Category: "style"},

		{Name: "include", Type: "[]string", Default: strings.Join(d.Include, ", "), Description: "Globs of files checked when walking directories", Category: "files"},
		{Name: "exclude", Type: "[]string", Default: strings.Join(d.Exclude, ", "), Description: "Globs of files and directories never checked", Category: "files"},

		{Name: "verify", Type: "bool", Default: strconv.FormatBool(d.Verify), Description: "Re-parse fixed files with esbuild and reject fixes that break them", Category: "fixing"},
		{Name: "max_passes", Type: "int", Default: strconv.Itoa(d.MaxPasses), Description: "Fix passes per file before giving up on convergence", Category: "fixing"},
		{Name: "jobs", Type: "int", Default: "number of CPUs", Description: "Files processed in parallel", Category: "fixing"},

		{Name: "docs_url", Type: "string", Default: lint.DefaultDocsBaseURL, Description: "Base URL of the rule pages linked from diagnostics", Category: "lint"},
		{Name: "lint.disabled", Type: "[]string", Description: "Rule IDs or names to turn off", Category: "lint"},
		{Name: "lint.severity", Type: "map[string]string", Description: "Severity per rule ID or name", Category: "lint"},
		{Name: "lint.rules", Type: "map[string]map", Description: "Options per rule ID or name", Category: "lint"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	// Create output directory
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leapstyle configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("leapstyle reads %s from the nearest directory at or above the working directory. Run %s to create one with the defaults.",
		InlineCode(config.ConfigFileName), InlineCode("leapstyle init")))

	sections := []struct {
		category string
		title    string
	}{
		{"style", "Style"},
		{"files", "Files"},
		{"fixing", "Fixing"},
		{"lint", "Rules"},
	}
	fields := getConfigSchema()
	for _, section := range sections {
		w.Header(2, section.title)
		var rows [][]string
		for _, f := range fields {
			if f.Category != section.category {
				continue
			}
			defVal := "-"
			if f.Default != "" {
				defVal = InlineCode(f.Default)
			}
			rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, f.Description})
		}
		w.Table([]string{"Field", "Type", "Default", "Description"}, rows)
	}

	w.Header(2, "Example")
	w.CodeBlock("yaml", `indent: 4
quotes:
  style: double
  avoid_escape: true
exclude:
  - "**/vendor/**"
lint:
  disabled: [PR01]
  severity:
    QT01: error`)

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
