package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/pkg/parser"
)

// fileSet selects the files to lint by glob patterns relative to a root.
type fileSet struct {
	root    string
	include []string
	exclude []string
}

func newFileSet(cfg *config.Config) fileSet {
	root := cfg.ProjectRoot
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return fileSet{root: root, include: cfg.Include, exclude: cfg.Exclude}
}

// relative returns path relative to the root with forward slashes, which is
// the form the patterns are written in.
func (s fileSet) relative(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// matchAny reports whether path or, for patterns without a slash, its base
// name matches one of the patterns.
func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, err := doublestar.Match(pattern, filepath.Base(path)); err == nil && ok {
				return true
			}
		}
	}
	return false
}

func (s fileSet) excluded(path string) bool {
	return matchAny(s.exclude, s.relative(path))
}

// wants reports whether a file found while walking should be linted.
func (s fileSet) wants(path string) bool {
	if _, err := parser.LanguageFor(path); err != nil {
		return false
	}
	rel := s.relative(path)
	return matchAny(s.include, rel) && !matchAny(s.exclude, rel)
}

// skipDir reports whether a directory can be pruned from the walk. Hidden
// directories are skipped unless they are the starting point.
func (s fileSet) skipDir(path string, start bool) bool {
	if start {
		return false
	}
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return true
	}
	rel := s.relative(path)
	return matchAny(s.exclude, rel) || matchAny(s.exclude, rel+"/")
}

// collect expands paths into a sorted, de-duplicated list of files. Files
// named explicitly only need a supported extension and must not be excluded;
// directories are walked and filtered by the include patterns. No paths
// means the working directory.
func (s fileSet) collect(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access path %s: %w", path, err)
		}

		if !info.IsDir() {
			if _, err := parser.LanguageFor(path); err != nil {
				return nil, err
			}
			if !s.excluded(path) {
				add(path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if s.skipDir(p, p == path) {
					return filepath.SkipDir
				}
				return nil
			}
			if s.wants(p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
