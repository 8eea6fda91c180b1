package output

// LintSummary counts the issues of a run.
type LintSummary struct {
	FilesAnalyzed   int `json:"files_analyzed"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Info            int `json:"info"`
	Hints           int `json:"hints"`
	Fixable         int `json:"fixable"`
}

// LintDiagnostic is one issue in JSON output. Lines and columns are 1-based.
type LintDiagnostic struct {
	RuleID    string `json:"rule_id"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line"`
	EndColumn int    `json:"end_column"`
	Fixable   bool   `json:"fixable"`
	DocURL    string `json:"doc_url,omitempty"`
}

// LintFileResult groups the issues of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []LintDiagnostic `json:"diagnostics,omitempty"`
}

// LintOutput is the JSON document written by check.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}

// FixFileResult describes the fixing of one file.
type FixFileResult struct {
	Path      string   `json:"path"`
	Changed   bool     `json:"changed"`
	Passes    int      `json:"passes"`
	Applied   []string `json:"applied,omitempty"`
	Remaining int      `json:"remaining"`
	Diff      string   `json:"diff,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// FixOutput is the JSON document written by fix.
type FixOutput struct {
	DryRun bool            `json:"dry_run"`
	Files  []FixFileResult `json:"files"`
}
