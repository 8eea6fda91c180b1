package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show descriptions
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by group (layout, quotes, parens). Pass a rule ID or
name to see its full documentation, including examples and options.`,
		Example: `  # List all rules
  leapstyle rules

  # Show details for a specific rule
  leapstyle rules QT01

  # List rules in the quotes group
  leapstyle rules --group quotes

  # Output as JSON
  leapstyle rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show rule descriptions")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []lint.RuleInfo `json:"rules"`
	Count struct {
		Total   int            `json:"total"`
		ByGroup map[string]int `json:"by_group"`
	} `json:"count"`
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	var infos []lint.RuleInfo
	for _, rule := range lint.GetAll() {
		if opts.Group != "" && rule.Group() != opts.Group {
			continue
		}
		infos = append(infos, lint.GetRuleInfo(rule))
	}
	if opts.Group != "" && len(infos) == 0 {
		return fmt.Errorf("no rules in group %q (groups: %s)", opts.Group, strings.Join(lint.Groups(), ", "))
	}
	// GetAll orders by ID, and IDs start with the group prefix, so groups
	// are already contiguous.

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := RulesJSONOutput{Rules: infos}
		jsonOutput.Count.Total = len(infos)
		jsonOutput.Count.ByGroup = make(map[string]int)
		for _, info := range infos {
			jsonOutput.Count.ByGroup[info.Group]++
		}
		return r.JSON(jsonOutput)
	}
	return listRulesText(r, infos, opts.Verbose)
}

// listRulesText outputs rules as one table per group.
func listRulesText(r *output.Renderer, rules []lint.RuleInfo, verbose bool) error {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))

	for start := 0; start < len(rules); {
		group := rules[start].Group
		end := start
		for end < len(rules) && rules[end].Group == group {
			end++
		}

		r.Println("")
		r.Println(styles.Header2.Render(titleCaser.String(group)))

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		header := table.Row{"ID", "Name", "Severity", "Options"}
		if verbose {
			header = append(header, "Description")
		}
		t.AppendHeader(header)
		for _, rule := range rules[start:end] {
			row := table.Row{
				rule.ID,
				rule.Name,
				getSeverityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()),
				strings.Join(rule.ConfigKeys, ", "),
			}
			if verbose {
				row = append(row, rule.Description)
			}
			t.AppendRow(row)
		}
		t.Render()
		start = end
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'leapstyle rules <rule-id>' for detailed documentation"))
	return nil
}

func showRule(cmd *cobra.Command, ref string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	id, err := config.ResolveRuleID(ref)
	if err != nil {
		return fmt.Errorf("rule %q not found", ref)
	}
	rule, _ := lint.GetByID(id)
	info := lint.GetRuleInfo(rule)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}
	return showRuleText(r, &info)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule *lint.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity.String())
	if len(rule.Kinds) > 0 {
		r.Printf("  %s: %s\n", styles.Bold.Render("Checks"), strings.Join(rule.Kinds, ", "))
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}

	r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), rule.DocURL)
	return nil
}

func getSeverityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}
