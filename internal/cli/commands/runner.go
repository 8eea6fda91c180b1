package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapstyle/pkg/fix"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/parser"
)

// lintResult holds lint results for a single file.
type lintResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
	Err         error // read or parse failure
}

// fixResult holds the fixing outcome for a single file.
type fixResult struct {
	Path    string
	Outcome *fix.Outcome
	Written bool
	Err     error
}

// runner lints or fixes files concurrently. Every file gets its own analysis,
// so no state crosses files; results keep the order of the input.
type runner struct {
	jobs   int
	logger *slog.Logger
}

func newRunner(jobs int, logger *slog.Logger) *runner {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &runner{jobs: jobs, logger: logger}
}

// each calls fn for every file index with at most r.jobs running at once.
func (r *runner) each(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	if n == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(r.jobs, n))
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(gctx, i)
			return nil
		})
	}
	return g.Wait()
}

// lint analyzes files. A file that cannot be read or parsed is reported in
// its result and does not stop the others.
func (r *runner) lint(ctx context.Context, analyzer *lint.Analyzer, files []string) ([]lintResult, error) {
	results := make([]lintResult, len(files))
	err := r.each(ctx, len(files), func(ctx context.Context, i int) {
		results[i] = lintFile(ctx, analyzer, files[i])
		if results[i].Err != nil {
			r.logger.Warn("skipping file", "file", files[i], "error", results[i].Err)
		}
	})
	return results, err
}

func lintFile(ctx context.Context, analyzer *lint.Analyzer, path string) lintResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return lintResult{Path: path, Err: fmt.Errorf("failed to read: %w", err)}
	}
	code, err := parser.Parse(ctx, path, src)
	if err != nil {
		return lintResult{Path: path, Err: err}
	}
	return lintResult{Path: path, Diagnostics: analyzer.Analyze(code)}
}

// fix runs the fixer over files and, when write is set, saves changed files.
func (r *runner) fix(ctx context.Context, fixer *fix.Fixer, files []string, write bool) ([]fixResult, error) {
	results := make([]fixResult, len(files))
	err := r.each(ctx, len(files), func(ctx context.Context, i int) {
		results[i] = fixFile(ctx, fixer, files[i], write)
		if results[i].Err != nil {
			r.logger.Warn("file not fixed", "file", files[i], "error", results[i].Err)
		} else if results[i].Written {
			r.logger.Debug("wrote file", "file", files[i], "passes", results[i].Outcome.Passes)
		}
	})
	return results, err
}

func fixFile(ctx context.Context, fixer *fix.Fixer, path string, write bool) fixResult {
	res := fixResult{Path: path}
	info, err := os.Stat(path)
	if err != nil {
		res.Err = err
		return res
	}
	src, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read: %w", err)
		return res
	}

	res.Outcome, res.Err = fixer.Fix(ctx, path, src)
	if res.Err != nil || !write || !res.Outcome.Changed() {
		return res
	}
	if err := writeFileAtomic(path, []byte(res.Outcome.Fixed), info.Mode().Perm()); err != nil {
		res.Err = fmt.Errorf("failed to write: %w", err)
		return res
	}
	res.Written = true
	return res
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory, so an interrupted run never leaves a half-written source.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		return cleanup(err)
	}
	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
