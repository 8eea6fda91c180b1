// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/leapstyle/internal/cli/output"
)

// ProjectFiles is the content of the project created by SetupTestProject,
// keyed by slash-separated path.
var ProjectFiles = map[string]string{
	"src/clean.js":               "const a = 'x';\n",
	"src/quotes.js":              "const b = \"y\";\n",
	"src/app.ts":                 "const ok = a ||\nb;\n",
	"src/README.md":              "# not source\n",
	"node_modules/lib/index.js":  "const c = \"z\";\n",
	".cache/generated/bundle.js": "const d = \"w\";\n",
}

// SetupTestProject creates a temporary project with a clean file, a file with
// a quote issue, a file with an indentation issue, and excluded files that
// have issues too. It returns the project directory.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range ProjectFiles {
		WriteFile(t, tmpDir, name, content)
	}
	return tmpDir
}

// WriteFile writes content to the slash-separated name under dir, creating
// parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

// ReadFile returns the content of the slash-separated name under dir.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}
