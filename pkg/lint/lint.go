package lint

import "strings"

// Severity indicates the importance of a diagnostic. Lower values are more
// severe, so a threshold keeps every diagnostic with Severity <= threshold.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError fails a check run.
	SeverityError Severity = iota
	// SeverityWarning is the default of the style rules.
	SeverityWarning
	// SeverityInfo is informational feedback.
	SeverityInfo
	// SeverityHint is a suggestion editors show unobtrusively.
	SeverityHint
)

var severityNames = [...]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
	SeverityHint:    "hint",
}

// String returns the name used in config files and output.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name so JSON output stays readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSeverity converts a name, case-insensitively, to a Severity. "warn"
// is accepted for warning. Unknown names give SeverityWarning and false.
func ParseSeverity(s string) (Severity, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warn" {
		return SeverityWarning, true
	}
	for i, n := range severityNames {
		if n == name {
			return Severity(i), true
		}
	}
	return SeverityWarning, false
}
