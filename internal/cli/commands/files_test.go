package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/internal/cli/testutil"
)

func TestMatchAny(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "double star extension set", patterns: config.DefaultInclude, path: "src/deep/app.tsx", want: true},
		{name: "top level file", patterns: config.DefaultInclude, path: "index.js", want: true},
		{name: "other extension", patterns: config.DefaultInclude, path: "src/app.go", want: false},
		{name: "directory pattern", patterns: []string{"**/node_modules/**"}, path: "node_modules/lib/index.js", want: true},
		{name: "base name pattern", patterns: []string{"*.min.js"}, path: "vendor/jquery.min.js", want: true},
		{name: "slash pattern is anchored", patterns: []string{"src/*.js"}, path: "lib/src/a.js", want: false},
		{name: "no patterns", patterns: nil, path: "a.js", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchAny(tt.patterns, tt.path))
		})
	}
}

func TestFileSet_Collect(t *testing.T) {
	dir := inProject(t)
	set := newFileSet(config.Default())

	files, err := set.collect(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.ts", "src/clean.js", "src/quotes.js"}, files)

	files, err = set.collect([]string{"src", "src/app.ts", "./src/quotes.js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.ts", "src/clean.js", "src/quotes.js"}, files, "duplicates are dropped")

	// A hidden directory is walked when it is the starting point.
	files, err = set.collect([]string{".cache"})
	require.NoError(t, err)
	assert.Equal(t, []string{".cache/generated/bundle.js"}, files)

	testutil.WriteFile(t, dir, "dist/out.js", "x;\n")
	files, err = set.collect([]string{"dist/out.js"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileSet_CustomPatterns(t *testing.T) {
	dir := inProject(t)
	testutil.WriteFile(t, dir, "lib/util.mjs", "export {};\n")
	testutil.WriteFile(t, dir, "src/app.test.ts", "test();\n")

	cfg := config.Default()
	cfg.ProjectRoot = dir
	cfg.Include = []string{"src/**/*.ts", "lib/**"}
	cfg.Exclude = []string{"**/*.test.ts"}
	set := newFileSet(cfg)

	files, err := set.collect(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/util.mjs", "src/app.ts"}, files)
}

func TestFileSet_Relative(t *testing.T) {
	dir := inProject(t)
	set := newFileSet(&config.Config{ProjectRoot: dir})

	assert.Equal(t, "src/app.ts", set.relative("src/app.ts"))
	assert.Equal(t, "src/app.ts", set.relative(dir+"/src/app.ts"))
	assert.Equal(t, "/elsewhere/a.js", set.relative("/elsewhere/a.js"))
}

func TestFileSet_SkipDir(t *testing.T) {
	inProject(t)
	set := newFileSet(config.Default())

	assert.True(t, set.skipDir("node_modules", false))
	assert.True(t, set.skipDir(".cache", false))
	assert.True(t, set.skipDir("src/.git", false))
	assert.False(t, set.skipDir("src", false))
	assert.False(t, set.skipDir(".cache", true))
}
