package lint

import "strings"

// DefaultDocsBaseURL is where the rule pages generated by scripts/gendocs
// are published.
const DefaultDocsBaseURL = "https://leapstyle.dev/docs/rules"

var docsBaseURL = DefaultDocsBaseURL

// BuildDocURL returns the page of a rule: its lowercased ID under the docs
// base URL.
func BuildDocURL(ruleID string) string {
	return docsBaseURL + "/" + strings.ToLower(ruleID)
}

// SetDocsBaseURL points rule links at another site, such as a copy of the
// docs served locally. An empty url restores the default.
func SetDocsBaseURL(url string) {
	url = strings.TrimSuffix(url, "/")
	if url == "" {
		url = DefaultDocsBaseURL
	}
	docsBaseURL = url
}

// ResetDocsBaseURL restores DefaultDocsBaseURL.
func ResetDocsBaseURL() {
	docsBaseURL = DefaultDocsBaseURL
}

// ImpactLevel ranks how much an issue costs a reader, 0 to 100.
type ImpactLevel int

const (
	// ImpactLow is for spelling choices such as the quote character.
	ImpactLow ImpactLevel = 20
	// ImpactMedium is for redundant syntax the reader has to look past.
	ImpactMedium ImpactLevel = 50
	// ImpactHigh is for layout that suggests the wrong grouping.
	ImpactHigh ImpactLevel = 70
)

// Int returns the score.
func (l ImpactLevel) Int() int {
	return int(l)
}
