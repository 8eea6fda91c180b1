package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/pkg/fix"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

// errFixFailed is returned when at least one file could not be fixed.
var errFixFailed = errors.New("some files could not be fixed")

// FixOptions holds options for the fix command.
type FixOptions struct {
	Paths  []string
	Format string // Output format: text, json
	Diff   bool   // Print a unified diff of the changes
	DryRun bool   // Do not write files
	Rules  RuleSelection
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply automatic fixes",
		Long: `Apply the automatic fixes of every rule and write the files back.

Fixes are applied in rounds: after each round the file is parsed and
checked again, until no fixable issue remains or max_passes is reached.
With verify enabled (the default) the original and the fixed file are both
compiled with esbuild and must produce identical output; otherwise the file
is left untouched.`,
		Example: `  # Fix the whole project
  leapstyle fix

  # Preview the changes without writing
  leapstyle fix --dry-run --diff src/

  # Only fix quotes
  leapstyle fix --rule quotes.style`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runFix(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print a unified diff of the changes")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Do not write files")
	cmd.Flags().Bool("verify", true, "Check with esbuild that fixes keep the program unchanged")
	cmd.Flags().Int("max-passes", fix.DefaultMaxPasses, "Fix rounds per file before giving up")
	cmd.Flags().IntP("jobs", "j", 0, "Files fixed in parallel (default: number of CPUs)")
	opts.Rules.addFlags(cmd)

	return cmd
}

func runFix(cmd *cobra.Command, opts *FixOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg

	lintCfg, err := buildLintConfig(cfg, opts.Rules)
	if err != nil {
		return err
	}
	analyzer := lint.NewAnalyzer(lintCfg, cmdCtx.Logger)
	fixer := fix.NewFixer(analyzer, fix.Options{MaxPasses: cfg.MaxPasses, Verify: cfg.Verify}, cmdCtx.Logger)

	set := newFileSet(cfg)
	files, err := set.collect(opts.Paths)
	if err != nil {
		return err
	}

	run := newRunner(cfg.Jobs, cmdCtx.Logger)
	results, err := run.fix(cmd.Context(), fixer, files, !opts.DryRun)
	if err != nil {
		return err
	}

	return renderFixResults(cmdCtx.Renderer, results, opts)
}

func appliedRules(o *fix.Outcome) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, a := range o.Applied {
		if !seen[a.RuleID] {
			seen[a.RuleID] = true
			ids = append(ids, a.RuleID)
		}
	}
	return ids
}

func renderFixResults(r *output.Renderer, results []fixResult, opts *FixOptions) error {
	var changed, failed, remaining int
	jsonOutput := output.FixOutput{DryRun: opts.DryRun, Files: []output.FixFileResult{}}
	styles := r.Styles()
	text := r.EffectiveMode() != output.ModeJSON

	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if res.Outcome == nil {
			jsonOutput.Files = append(jsonOutput.Files, output.FixFileResult{Path: res.Path, Error: res.Err.Error()})
			if text {
				r.Error(fmt.Sprintf("%s: %v", res.Path, res.Err))
			}
			continue
		}

		o := res.Outcome
		isChanged := o.Changed() && res.Err == nil
		if isChanged {
			changed++
		}
		remaining += len(o.Remaining)

		var diff string
		if opts.Diff && isChanged {
			d, err := fix.Diff(res.Path, o.Original, o.Fixed)
			if err != nil {
				return fmt.Errorf("failed to diff %s: %w", res.Path, err)
			}
			diff = d
		}

		fileResult := output.FixFileResult{
			Path:      res.Path,
			Changed:   isChanged,
			Passes:    o.Passes,
			Applied:   appliedRules(o),
			Remaining: len(o.Remaining),
			Diff:      diff,
		}
		if res.Err != nil {
			fileResult.Error = res.Err.Error()
		}
		jsonOutput.Files = append(jsonOutput.Files, fileResult)

		if !text {
			continue
		}
		switch {
		case res.Err != nil:
			r.Error(fmt.Sprintf("%s: %v", res.Path, res.Err))
		case isChanged:
			verb := "fixed"
			if opts.DryRun {
				verb = "would fix"
			}
			r.Printf("%s %s (%s: %s)\n",
				styles.FilePath.Render(res.Path),
				styles.Success.Render(verb),
				plural(len(o.Applied), "fix"),
				strings.Join(fileResult.Applied, ", "))
			if diff != "" {
				printDiff(r, diff)
			}
		}
	}

	if !text {
		if err := r.JSON(jsonOutput); err != nil {
			return err
		}
	} else {
		verb := "Fixed"
		if opts.DryRun {
			verb = "Would fix"
		}
		if changed == 0 && failed == 0 {
			r.Success(fmt.Sprintf("Nothing to fix in %s", plural(len(results), "file")))
		} else {
			r.Printf("%s %s of %d", verb, plural(changed, "file"), len(results))
			if remaining > 0 {
				r.Printf(", %s left for manual review", plural(remaining, "issue"))
			}
			r.Println("")
		}
	}

	if failed > 0 {
		return errFixFailed
	}
	return nil
}

func printDiff(r *output.Renderer, diff string) {
	styles := r.Styles()
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		line = strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			r.Println(styles.Bold.Render(line))
		case strings.HasPrefix(line, "+"):
			r.Println(styles.Added.Render(line))
		case strings.HasPrefix(line, "-"):
			r.Println(styles.Removed.Render(line))
		case strings.HasPrefix(line, "@@"):
			r.Println(styles.Info.Render(line))
		default:
			r.Println(line)
		}
	}
}
