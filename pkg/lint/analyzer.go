package lint

import (
	"log/slog"
	"sort"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
	"github.com/leapstack-labs/leapstyle/pkg/source"
)

// Analyzer runs lint rules against parsed files.
type Analyzer struct {
	config *Config
	logger *slog.Logger
	rules  []Rule // nil means every registered rule
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{config: config, logger: logger}
}

// WithRules returns a copy of the analyzer restricted to rules.
func (a *Analyzer) WithRules(rules ...Rule) *Analyzer {
	cp := *a
	cp.rules = rules
	return &cp
}

// Rules returns the rules the analyzer runs, after the config's disable list.
func (a *Analyzer) Rules() []Rule {
	all := a.rules
	if all == nil {
		all = GetAll()
	}
	var enabled []Rule
	for _, r := range all {
		if !a.config.IsDisabled(r.ID()) {
			enabled = append(enabled, r)
		}
	}
	return enabled
}

// Analyze walks the file's tree once in document order, handing each node to
// the rules subscribed to its kind. Diagnostics come back sorted by position.
func (a *Analyzer) Analyze(code *source.Code) []Diagnostic {
	if code == nil || code.Tree == nil || code.Tree.Len() == 0 {
		return nil
	}

	var diagnostics []Diagnostic
	cache := rewrite.NewIndentCache()
	byKind := make(map[ast.Kind][]*Pass)
	var fileLevel []*Pass

	rules := a.Rules()
	for _, rule := range rules {
		pass := a.newPass(code, rule, cache, &diagnostics)
		kinds := rule.Kinds()
		if len(kinds) == 0 {
			fileLevel = append(fileLevel, pass)
			continue
		}
		for _, k := range kinds {
			byKind[k] = append(byKind[k], pass)
		}
	}

	root := code.Tree.Root()
	for _, pass := range fileLevel {
		pass.Rule.Check(pass, root)
	}
	if len(byKind) > 0 {
		code.Tree.Walk(root, func(id ast.NodeID) bool {
			for _, pass := range byKind[code.Tree.Kind(id)] {
				pass.Rule.Check(pass, id)
			}
			return true
		})
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		di, dj := diagnostics[i], diagnostics[j]
		if di.Pos.Offset != dj.Pos.Offset {
			return di.Pos.Offset < dj.Pos.Offset
		}
		return di.RuleID < dj.RuleID
	})

	a.logger.Debug("analyzed file",
		"file", code.Filename,
		"rules", len(rules),
		"diagnostics", len(diagnostics),
		"indent_lines", cache.Len())
	return diagnostics
}

func (a *Analyzer) newPass(code *source.Code, rule Rule, cache *rewrite.IndentCache, diags *[]Diagnostic) *Pass {
	opts := a.config.GetRuleOptions(rule.ID())
	indent := a.config.IndentUnit()
	if v, ok := opts["indent"]; ok {
		unit, err := rewrite.ParseIndentUnit(v)
		if err != nil {
			a.logger.Warn("ignoring rule indent option", "rule", rule.ID(), "error", err)
		} else {
			indent = unit
		}
	}
	return &Pass{
		Code:        code,
		Rule:        rule,
		Options:     opts,
		Indent:      indent,
		IndentCache: cache,
		Logger:      a.logger.With("rule", rule.ID()),
		severity:    a.config.GetSeverity(rule.ID(), rule.DefaultSeverity()),
		diags:       diags,
	}
}
