package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Paths    []string
	Format   string // Output format: text, json
	Severity string // Minimum severity: error, warning, info, hint
	Watch    bool   // Re-check files when they change
	Rules    RuleSelection
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"lint"},
		Short:   "Check files for style issues",
		Long: `Check JavaScript, TypeScript and JSX files for style issues.

Directories are searched with the include and exclude globs from
.leapstyle.yaml. Files named on the command line are checked as long as
they have a supported extension and are not excluded.

Exits with status 1 when issues at or above --severity are found.`,
		Example: `  # Check the whole project
  leapstyle check

  # Check a directory and a file
  leapstyle check src/ scripts/build.ts

  # Only report quote issues, as JSON
  leapstyle check --rule QT01,QT02 -f json

  # Re-check on every save
  leapstyle check --watch src/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch files and re-check on change")
	cmd.Flags().IntP("jobs", "j", 0, "Files checked in parallel (default: number of CPUs)")
	opts.Rules.addFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg

	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cfg, opts.Rules)
	if err != nil {
		return err
	}
	analyzer := lint.NewAnalyzer(lintCfg, cmdCtx.Logger)

	set := newFileSet(cfg)
	files, err := set.collect(opts.Paths)
	if err != nil {
		return err
	}

	run := newRunner(cfg.Jobs, cmdCtx.Logger)
	results, err := run.lint(cmd.Context(), analyzer, files)
	if err != nil {
		return err
	}
	results = filterBySeverity(results, threshold)
	hasIssues := renderLintResults(cmdCtx.Renderer, results, len(files))

	if opts.Watch {
		return watchAndCheck(cmd.Context(), cmdCtx, set, opts.Paths, analyzer, threshold)
	}
	if hasIssues {
		return errLintIssues
	}
	return nil
}

func filterBySeverity(results []lintResult, threshold lint.Severity) []lintResult {
	filtered := make([]lintResult, 0, len(results))
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		filtered = append(filtered, lintResult{Path: r.Path, Diagnostics: diags, Err: r.Err})
	}
	return filtered
}

func summarize(results []lintResult, analyzed int) output.LintSummary {
	summary := output.LintSummary{FilesAnalyzed: analyzed}
	for _, res := range results {
		if len(res.Diagnostics) > 0 || res.Err != nil {
			summary.FilesWithIssues++
		}
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
			if d.AutoFixable {
				summary.Fixable++
			}
		}
	}
	return summary
}

// renderLintResults prints the results and reports whether anything was found.
func renderLintResults(r *output.Renderer, results []lintResult, analyzed int) bool {
	summary := summarize(results, analyzed)
	hasIssues := summary.FilesWithIssues > 0

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{Summary: summary, Files: []output.LintFileResult{}}
		for _, res := range results {
			if len(res.Diagnostics) == 0 && res.Err == nil {
				continue
			}
			fileResult := output.LintFileResult{Path: res.Path}
			if res.Err != nil {
				fileResult.Error = res.Err.Error()
			}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
					RuleID:    d.RuleID,
					Severity:  d.Severity.String(),
					Message:   d.Message,
					Line:      d.Pos.Line,
					Column:    d.Pos.Column + 1,
					EndLine:   d.EndPos.Line,
					EndColumn: d.EndPos.Column + 1,
					Fixable:   d.AutoFixable,
					DocURL:    d.DocumentationURL,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return hasIssues
	}

	if !hasIssues {
		r.Success(fmt.Sprintf("No issues found in %s", plural(analyzed, "file")))
		return false
	}

	styles := r.Styles()
	for _, res := range results {
		if len(res.Diagnostics) == 0 && res.Err == nil {
			continue
		}
		r.Println(styles.FilePath.Render(res.Path))
		if res.Err != nil {
			r.Printf("  %s  %s\n", styles.Error.Render("error  "), res.Err)
		}
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column+1)
			marker := " "
			if d.AutoFixable {
				marker = styles.Success.Render("*")
			}
			r.Printf("  %s %s %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", loc)),
				marker,
				severityStyle(r, d.Severity),
				styles.Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	parts := []string{plural(summary.TotalIssues, "issue")}
	if summary.Errors > 0 {
		parts = append(parts, plural(summary.Errors, "error"))
	}
	if summary.Warnings > 0 {
		parts = append(parts, plural(summary.Warnings, "warning"))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, plural(summary.Hints, "hint"))
	}
	r.Printf("Summary: %s in %s\n", strings.Join(parts, ", "), plural(summary.FilesWithIssues, "file"))
	if summary.Fixable > 0 {
		r.Println(styles.Muted.Render(fmt.Sprintf("%s marked * can be fixed with 'leapstyle fix'", plural(summary.Fixable, "issue"))))
	}
	return true
}
