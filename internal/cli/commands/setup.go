package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register rules
)

// errLintIssues makes the process exit non-zero when issues were reported.
var errLintIssues = errors.New("lint issues found")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
// format, when set, overrides the configured output format.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	if format == "" {
		format = cfg.OutputFormat
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format)),
	}
}

// getConfig returns the current configuration, or the defaults when the
// command runs without the root command (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// RuleSelection holds the rule flags shared by check and fix.
type RuleSelection struct {
	Disable []string // Rule IDs or names to disable
	Only    []string // Run only these rules
}

func (s *RuleSelection) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&s.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&s.Only, "rule", nil, "Run only specific rules")
}

// buildLintConfig merges the project configuration with the command flags.
func buildLintConfig(cfg *config.Config, sel RuleSelection) (*lint.Config, error) {
	lintCfg, err := cfg.ToLintConfig()
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides (higher precedence)
	for _, ref := range sel.Disable {
		id, err := config.ResolveRuleID(ref)
		if err != nil {
			return nil, fmt.Errorf("--disable: %w", err)
		}
		lintCfg.Disable(id)
	}

	// If --rule specified, disable all others
	if len(sel.Only) > 0 {
		enabled := make(map[string]bool)
		for _, ref := range sel.Only {
			id, err := config.ResolveRuleID(ref)
			if err != nil {
				return nil, fmt.Errorf("--rule: %w", err)
			}
			enabled[id] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabled[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg, nil
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	styles := r.Styles()
	switch sev {
	case lint.SeverityError:
		return styles.Error.Render("error  ")
	case lint.SeverityWarning:
		return styles.Warning.Render("warning")
	case lint.SeverityInfo:
		return styles.Info.Render("info   ")
	case lint.SeverityHint:
		return styles.Muted.Render("hint   ")
	default:
		return styles.Muted.Render("unknown")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	if strings.HasSuffix(word, "x") {
		return fmt.Sprintf("%d %ses", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
