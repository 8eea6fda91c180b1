package lsp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

func TestDocumentStore_OpenGetClose(t *testing.T) {
	store := NewDocumentStore()

	uri := "file:///test/app.ts"
	content := "const a = 1;"

	store.Open(uri, content, 1)

	doc := store.Get(uri)
	require.NotNil(t, doc, "expected document to exist")
	assert.Equal(t, uri, doc.URI)
	assert.Equal(t, content, doc.Content)
	assert.Equal(t, 1, doc.Version)

	store.Close(uri)
	assert.Nil(t, store.Get(uri), "expected document to be nil after close")
}

func TestDocumentStore_Update(t *testing.T) {
	store := NewDocumentStore()

	uri := "file:///test/app.ts"
	store.Open(uri, "a;", 1)
	before := store.Get(uri)

	store.Update(uri, "b;\nc;", 2)

	doc := store.Get(uri)
	assert.Equal(t, "b;\nc;", doc.Content)
	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, []int{0, 3}, doc.Lines)
	assert.Equal(t, "a;", before.Content, "earlier snapshots are not modified")

	store.Update("file:///unknown.ts", "x", 1)
	assert.Nil(t, store.Get("file:///unknown.ts"))
}

func TestDocumentStore_SetDiagnostics(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///test/app.ts"
	store.Open(uri, "a;", 3)

	diags := []lint.Diagnostic{{RuleID: "QT01"}}
	store.SetDiagnostics(uri, 2, diags)
	assert.Empty(t, store.Get(uri).Diagnostics, "stale versions are dropped")

	store.SetDiagnostics(uri, 3, diags)
	assert.Equal(t, diags, store.Get(uri).Diagnostics)
}

func TestDocumentStore_List(t *testing.T) {
	store := NewDocumentStore()

	store.Open("file:///c.js", "c", 1)
	store.Open("file:///a.js", "a", 1)
	store.Open("file:///b.js", "b", 1)

	assert.Equal(t, []string{"file:///a.js", "file:///b.js", "file:///c.js"}, store.List())
}

func TestComputeLineOffsets(t *testing.T) {
	tests := []struct {
		content  string
		expected []int
	}{
		{"", []int{0}},
		{"abc", []int{0}},
		{"a\nb", []int{0, 2}},
		{"a\nb\nc", []int{0, 2, 4}},
		{"\n\n\n", []int{0, 1, 2, 3}},
		{"line1\nline2\nline3", []int{0, 6, 12}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, computeLineOffsets(tt.content), "content %q", tt.content)
	}
}

func TestDocument_Positions(t *testing.T) {
	// "é" is two bytes and one UTF-16 unit; "😀" is four bytes and two units.
	doc := newDocument("file:///a.js", "let é = 1;\nf('😀', x);\r\nend", 1)

	tests := []struct {
		name   string
		offset int
		pos    Position
	}{
		{"start", 0, Position{0, 0}},
		{"after two-byte rune", 6, Position{0, 5}},
		{"second line", 12, Position{1, 0}},
		{"after surrogate pair", 19, Position{1, 5}},
		{"third line", 27, Position{2, 0}},
		{"end", 30, Position{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pos, doc.OffsetToPosition(tt.offset))
			assert.Equal(t, tt.offset, doc.PositionToOffset(tt.pos))
		})
	}

	assert.Equal(t, Position{2, 3}, doc.OffsetToPosition(100), "offsets clamp to the end")
	assert.Equal(t, 25, doc.PositionToOffset(Position{1, 99}), "characters clamp to the line end")
	assert.Equal(t, len(doc.Content), doc.PositionToOffset(Position{9, 0}))
	assert.Equal(t, "f('😀', x);", doc.GetLine(1))
	assert.Empty(t, doc.GetLine(5))
}

func TestURIConversion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my app", "index.ts")
	uri := PathToURI(path)

	assert.Contains(t, uri, "file://")
	assert.Contains(t, uri, "my%20app")
	assert.Equal(t, path, URIToPath(uri))
	assert.Equal(t, uri, PathToURI(uri))
	assert.Equal(t, "untitled:Untitled-1", URIToPath("untitled:Untitled-1"))
}
