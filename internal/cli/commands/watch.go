package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

// watchDebounce groups the bursts of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

// watchAndCheck re-checks files as they change until ctx is cancelled.
func watchAndCheck(ctx context.Context, cmdCtx *CommandContext, set fileSet, paths []string, analyzer *lint.Analyzer, threshold lint.Severity) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	explicit, err := watchTargets(watcher, set, paths)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	run := newRunner(cmdCtx.Cfg.Jobs, cmdCtx.Logger)
	r.Println(r.Styles().Muted.Render("Watching for changes. Press Ctrl+C to stop."))

	return watchLoop(ctx, watcher, set, explicit, cmdCtx, func(files []string) {
		results, err := run.lint(ctx, analyzer, files)
		if err != nil {
			if ctx.Err() == nil {
				r.Warning(fmt.Sprintf("check interrupted: %v", err))
			}
			return
		}
		r.Println("")
		r.Println(r.Styles().Muted.Render(fmt.Sprintf("%s Change detected: %s", time.Now().Format("15:04:05"), plural(len(files), "file"))))
		renderLintResults(r, filterBySeverity(results, threshold), len(files))
	})
}

// watchTargets adds every directory to watch and returns the files that were
// named explicitly, which are checked even when the include globs miss them.
func watchTargets(watcher *fsnotify.Watcher, set fileSet, paths []string) (map[string]bool, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	explicit := make(map[string]bool)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access path %s: %w", path, err)
		}
		if !info.IsDir() {
			explicit[filepath.Clean(path)] = true
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return nil, fmt.Errorf("failed to watch %s: %w", path, err)
			}
			continue
		}
		if err := watchDir(watcher, set, path); err != nil {
			return nil, err
		}
	}
	return explicit, nil
}

// watchDir recursively adds a directory to the watcher.
func watchDir(watcher *fsnotify.Watcher, set fileSet, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if set.skipDir(path, path == dir) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// watchLoop handles file system events, calling onChange with the batch of
// files written since the last call.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, set fileSet, explicit map[string]bool, cmdCtx *CommandContext, onChange func(files []string)) error {
	logger := cmdCtx.Logger
	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			path := filepath.Clean(event.Name)
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				if event.Op&fsnotify.Create != 0 && !set.skipDir(path, false) {
					if err := watchDir(watcher, set, path); err != nil {
						logger.Warn("failed to watch new directory", "dir", path, "error", err)
					}
				}
				continue
			}
			if !explicit[path] && !set.wants(path) {
				continue
			}

			pending[path] = true
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			files := make([]string, 0, len(pending))
			for path := range pending {
				files = append(files, path)
			}
			clear(pending)
			sort.Strings(files)
			logger.Debug("files changed", "files", len(files))
			onChange(files)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
