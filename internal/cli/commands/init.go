package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
)

// initFile is the layout of a generated config file.
type initFile struct {
	Indent    any                 `yaml:"indent"`
	Quotes    config.QuotesConfig `yaml:"quotes"`
	JSXQuotes string              `yaml:"jsx_quotes"`
	Include   []string            `yaml:"include"`
	Exclude   []string            `yaml:"exclude"`
	Verify    bool                `yaml:"verify"`
	MaxPasses int                 `yaml:"max_passes"`
	Lint      config.LintConfig   `yaml:"lint"`
}

const initHeader = `# leapstyle configuration
# Rules can be disabled, re-leveled or configured under lint:
#   lint:
#     disabled: [PR01]
#     severity: {QT01: error}
#     rules: {quotes.style: {avoid_escape: true}}
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a .leapstyle.yaml configuration file",
		Long: `Create a .leapstyle.yaml file holding the default settings.

Global flags such as --indent and --quotes are written into the file, so
'leapstyle init --indent tab --quotes double' starts a tab-indented,
double-quoted project.`,
		Example: `  # Initialize in current directory
  leapstyle init

  # Initialize with tabs
  leapstyle init --indent tab

  # Force overwrite existing config
  leapstyle init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cmdCtx := NewCommandContext(cmd, "")
			path, err := runInit(cmdCtx.Cfg, dir, force)
			if err != nil {
				return err
			}
			cmdCtx.Renderer.Success("Created " + path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

// runInit writes the configuration file into dir and returns its path.
func runInit(cfg *config.Config, dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}

	content, err := renderInitFile(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // config file is meant to be shared
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func renderInitFile(cfg *config.Config) ([]byte, error) {
	file := initFile{
		Indent:    cfg.Indent,
		Quotes:    cfg.Quotes,
		JSXQuotes: cfg.JSXQuotes,
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		Verify:    cfg.Verify,
		MaxPasses: cfg.MaxPasses,
	}
	if cfg.Lint != nil {
		file.Lint = *cfg.Lint
	}

	var buf bytes.Buffer
	buf.WriteString(initHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
