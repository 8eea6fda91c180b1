// Package config provides configuration management for the leapstyle CLI.
//
// Settings are layered with koanf: built-in defaults, then the project's
// .leapstyle.yaml, then LEAPSTYLE_* environment variables, then command-line
// flags. The result is decoded into Config and translated into a lint.Config
// for the analyzer.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Indent is a space count or "tab". It is kept untyped so YAML, env and
	// flag values can all be parsed by rewrite.ParseIndentUnit.
	Indent       any          `koanf:"indent"`
	Quotes       QuotesConfig `koanf:"quotes"`
	JSXQuotes    string       `koanf:"jsx_quotes"`
	Lint         *LintConfig  `koanf:"lint"`
	Include      []string     `koanf:"include"`
	Exclude      []string     `koanf:"exclude"`
	Verify       bool         `koanf:"verify"`
	MaxPasses    int          `koanf:"max_passes"`
	Jobs         int          `koanf:"jobs"`
	Verbose      bool         `koanf:"verbose"`
	OutputFormat string       `koanf:"output"`
	DocsURL      string       `koanf:"docs_url"`

	// ProjectRoot is the directory relative paths are resolved against.
	// It is not read from the file.
	ProjectRoot string `koanf:"-"`
}

// QuotesConfig configures the quotes.style rule.
type QuotesConfig struct {
	Style                 string `koanf:"style" yaml:"style"`
	AvoidEscape           bool   `koanf:"avoid_escape" yaml:"avoid_escape"`
	AllowTemplateLiterals bool   `koanf:"allow_template_literals" yaml:"allow_template_literals"`
}

// LintConfig holds rule selection and per-rule settings.
type LintConfig struct {
	Disabled []string                  `koanf:"disabled" yaml:"disabled,omitempty"`
	Severity map[string]string         `koanf:"severity" yaml:"severity,omitempty"`
	Rules    map[string]map[string]any `koanf:"rules" yaml:"rules,omitempty"`
}

// Default configuration values.
const (
	DefaultIndent     = 2
	DefaultQuoteStyle = "single"
	DefaultJSXQuotes  = "prefer-double"
	DefaultMaxPasses  = 10
	DefaultOutput     = "auto" // Auto-detect: TTY=styled text, non-TTY=plain text
	ConfigFileName    = ".leapstyle.yaml"
	EnvPrefix         = "LEAPSTYLE_"
)

// DefaultInclude matches every file the parser understands.
var DefaultInclude = []string{"**/*.{js,jsx,mjs,cjs,ts,mts,cts,tsx}"}

// DefaultExclude skips dependency and build directories.
var DefaultExclude = []string{"**/node_modules/**", "**/dist/**", "**/build/**", "**/.git/**", "**/*.min.js"}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Indent:       DefaultIndent,
		Quotes:       QuotesConfig{Style: DefaultQuoteStyle},
		JSXQuotes:    DefaultJSXQuotes,
		Include:      append([]string(nil), DefaultInclude...),
		Exclude:      append([]string(nil), DefaultExclude...),
		Verify:       true,
		MaxPasses:    DefaultMaxPasses,
		OutputFormat: DefaultOutput,
	}
}
