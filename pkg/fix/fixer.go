package fix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/parser"
)

// DefaultMaxPasses bounds the number of lint-and-fix rounds per file.
const DefaultMaxPasses = 10

// Options configures a Fixer.
type Options struct {
	MaxPasses int  // rounds before giving up; 0 means DefaultMaxPasses
	Verify    bool // compare esbuild output of the original and the fixed file
}

// Fixer lints a file, applies fixes, and repeats on the new text.
type Fixer struct {
	analyzer *lint.Analyzer
	opts     Options
	logger   *slog.Logger
}

// Outcome describes the fixing of one file.
type Outcome struct {
	Filename  string
	Original  string
	Fixed     string
	Passes    int
	Applied   []AppliedFix
	Remaining []lint.Diagnostic // diagnostics of the final text
}

// Changed reports whether any fix was applied.
func (o *Outcome) Changed() bool { return o.Original != o.Fixed }

// NewFixer creates a fixer running the analyzer's rules.
func NewFixer(analyzer *lint.Analyzer, opts Options, logger *slog.Logger) *Fixer {
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = DefaultMaxPasses
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fixer{analyzer: analyzer, opts: opts, logger: logger}
}

// Fix runs lint-and-fix rounds over src until no fixable diagnostic remains.
// The returned outcome is valid even when an error is returned: on
// ErrNotConverged it holds the text after the last round, on
// ErrSemanticsChanged its Fixed text equals the original.
func (f *Fixer) Fix(ctx context.Context, filename string, src []byte) (*Outcome, error) {
	out := &Outcome{Filename: filename, Original: string(src), Fixed: string(src)}
	log := f.logger.With("file", filename)

	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		code, err := parser.Parse(ctx, filename, []byte(out.Fixed))
		if err != nil {
			if out.Passes == 0 {
				return out, err
			}
			out.Fixed = out.Original
			return out, fmt.Errorf("%w: pass %d: %w", ErrSemanticsChanged, out.Passes, err)
		}
		out.Remaining = f.analyzer.Analyze(code)
		if !hasFixes(out.Remaining) {
			break
		}
		if out.Passes == f.opts.MaxPasses {
			return out, fmt.Errorf("%w after %d passes", ErrNotConverged, out.Passes)
		}

		res, err := Apply(out.Fixed, out.Remaining)
		if errors.Is(err, ErrNoFixes) {
			break
		}
		out.Passes++
		out.Fixed = res.Source
		out.Applied = append(out.Applied, res.Applied...)
		log.Debug("applied fixes", "pass", out.Passes, "fixes", len(res.Applied), "skipped", len(res.Skipped))
	}

	if f.opts.Verify && out.Changed() {
		if err := Verify(filename, out.Original, out.Fixed); err != nil {
			out.Fixed = out.Original
			return out, err
		}
	}
	return out, nil
}

func hasFixes(diags []lint.Diagnostic) bool {
	for _, d := range diags {
		if d.AutoFixable {
			return true
		}
	}
	return false
}
