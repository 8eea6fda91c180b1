package fix

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between the original and fixed text of a file.
// Identical inputs produce an empty string.
func Diff(filename, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + filename,
		ToFile:   "b/" + filename,
		Context:  3,
	})
}
