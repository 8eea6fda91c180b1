package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"text", ModeText},
		{"json", ModeJSON},
		{"markdown", ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.in))
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on terminal", ModeAuto, true, ModeText},
		{"auto in pipe", ModeAuto, false, ModeText},
		{"json on terminal", ModeJSON, true, ModeJSON},
		{"text in pipe", ModeText, false, ModeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.isTTY, r.IsTTY())
		})
	}
}

func TestRenderer_Messages(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Success("done")
	r.Warning("careful")
	r.Error("broken")
	r.Printf("%d files\n", 3)

	assert.Equal(t, "✓ done\n3 files\n", out.String())
	assert.Equal(t, "! careful\n✗ broken\n", errOut.String())
}

func TestRenderer_JSONSuppressesSuccess(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeJSON)

	r.Success("done")
	require.NoError(t, r.JSON(LintOutput{
		Summary: LintSummary{FilesAnalyzed: 1, TotalIssues: 1, Warnings: 1},
		Files: []LintFileResult{{
			Path: "a.js",
			Diagnostics: []LintDiagnostic{{
				RuleID: "QT01", Severity: "warning", Message: "Strings must use singlequote.",
				Line: 1, Column: 11, EndLine: 1, EndColumn: 14, Fixable: true,
			}},
		}},
	}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	summary := decoded["summary"].(map[string]any)
	assert.InDelta(t, 1, summary["files_analyzed"], 0)
	files := decoded["files"].([]any)
	diag := files[0].(map[string]any)["diagnostics"].([]any)[0].(map[string]any)
	assert.Equal(t, "QT01", diag["rule_id"])
	assert.Equal(t, true, diag["fixable"])
}

func TestPlainStyles(t *testing.T) {
	s := PlainStyles()
	assert.Equal(t, "src/a.js", s.FilePath.Render("src/a.js"))
	assert.Equal(t, "+x", s.Added.Render("+x"))
}
