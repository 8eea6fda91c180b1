package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPage(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Frontmatter("Title", `Say "hi"`)
	w.Header(2, "Section")
	w.Table([]string{"A", "B"}, [][]string{{"x|y", "z"}})
	w.Table([]string{"Empty"}, nil)
	w.CodeBlock("ts", "let a = 1;\n")

	want := strings.Join([]string{
		"---",
		`title: "Title"`,
		`description: "Say \"hi\""`,
		"---",
		"",
		"## Section",
		"",
		"| A | B |",
		"| --- | --- |",
		`| x\|y | z |`,
		"",
		"```ts",
		"let a = 1;",
		"```",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, w.String())
}

func TestCleanExample(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  # Check\n  leapstyle check\n\n  leapstyle fix", "# Check\nleapstyle check\n\nleapstyle fix"},
		{"leapstyle check", "leapstyle check"},
		{"    a\n  b", "a\nb"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanExample(tt.in))
	}
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Check files for style issues", cleanDescription("  Check files\n  for style issues. "))
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, generate("all", "", root))

	cliDir := filepath.Join(root, "docs", "cli")
	index := readPage(t, cliDir, "index.md")
	assert.Contains(t, index, generatedMarker)
	assert.Contains(t, index, "[`check`](/cli/check)")
	assert.Contains(t, index, "`--quotes`")
	for _, name := range []string{"check", "fix", "rules", "init", "lsp", "version", "completion"} {
		assert.FileExists(t, filepath.Join(cliDir, name+".md"))
	}
	check := readPage(t, cliDir, "check.md")
	assert.Contains(t, check, "leapstyle check [paths...]")
	assert.Contains(t, check, "`lint`", "aliases are listed")
	assert.Contains(t, check, "`--watch`")
	assert.NotContains(t, readPage(t, cliDir, "lsp.md"), "--stdio", "hidden flags are skipped")

	configPage := readPage(t, filepath.Join(root, "docs", "reference"), "configuration.md")
	assert.Contains(t, configPage, "| `quotes.style` | string | `single` |")
	assert.Contains(t, configPage, "`max_passes`")

	rulesDir := filepath.Join(root, "docs", "rules")
	rulesIndex := readPage(t, rulesDir, "index.md")
	assert.Contains(t, rulesIndex, "## Quotes {#quotes}")
	assert.Contains(t, rulesIndex, "[`QT01`](qt01.md)")
	for _, id := range []string{"ly01", "qt01", "qt02", "pr01"} {
		assert.FileExists(t, filepath.Join(rulesDir, id+".md"))
	}
	qt01 := readPage(t, rulesDir, "qt01.md")
	assert.Contains(t, qt01, "# QT01 - quotes.style")
	assert.Contains(t, qt01, "`lint.rules.quotes.style`")
	assert.Contains(t, qt01, "`avoid_escape`")
}

func TestGenerate_SingleWithOutDir(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "elsewhere")
	require.NoError(t, generate("rules", out, root))

	assert.FileExists(t, filepath.Join(out, "index.md"))
	assert.NoDirExists(t, filepath.Join(root, "docs"))
}

func TestGenerate_Unknown(t *testing.T) {
	err := generate("schema", "", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown -gen value")
}
