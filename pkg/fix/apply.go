// Package fix applies the machine-applicable fixes carried by lint
// diagnostics.
//
// Fixes are applied atomically: either every edit of a fix lands or none
// does. A fix whose edits overlap an edit already accepted in the same round
// is skipped and picked up by the next round, after the file has been parsed
// and linted again. Fixer drives those rounds until no fixable diagnostic
// remains, and can check with esbuild that the fixed program still compiles
// to the same code as the original.
package fix

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
)

// Errors returned by the fix pipeline.
var (
	// ErrNoFixes is returned when no fixes were applied.
	ErrNoFixes = errors.New("no applicable fixes found")
	// ErrConflict marks a fix rejected because its edits overlap.
	ErrConflict = errors.New("conflicting edits")
	// ErrNotConverged is returned when fixable diagnostics remain after the
	// maximum number of rounds.
	ErrNotConverged = errors.New("fixes did not converge")
	// ErrSemanticsChanged is returned when the fixed program no longer
	// parses or compiles to different code.
	ErrSemanticsChanged = errors.New("fix changed program semantics")
)

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	RuleID      string `json:"rule"`
	Description string `json:"description"`
	Line        int    `json:"line"`
	EditCount   int    `json:"edits"`
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	RuleID      string `json:"rule"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Result is the outcome of one round of fix application.
type Result struct {
	Source  string
	Applied []AppliedFix
	Skipped []SkippedFix
}

type candidate struct {
	diag  lint.Diagnostic
	fix   lint.Fix
	start int
	end   int
	order int
}

type span struct{ start, end int }

// Apply applies the fixes of diagnostics to src. Fixes are considered in
// source order; a fix conflicting with an accepted one is skipped. Returns
// ErrNoFixes together with an unchanged result when nothing applies.
func Apply(src string, diagnostics []lint.Diagnostic) (*Result, error) {
	result := &Result{Source: src}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	var accepted []lint.TextEdit
	var taken []span
	for _, cand := range candidates {
		if err := checkFix(cand.fix, len(src), taken); err != nil {
			result.Skipped = append(result.Skipped, SkippedFix{
				RuleID:      cand.diag.RuleID,
				Description: cand.fix.Description,
				Reason:      err.Error(),
			})
			continue
		}
		for _, e := range cand.fix.TextEdits {
			taken = append(taken, span{e.Start(), e.End()})
		}
		accepted = append(accepted, cand.fix.TextEdits...)
		result.Applied = append(result.Applied, AppliedFix{
			RuleID:      cand.diag.RuleID,
			Description: cand.fix.Description,
			Line:        cand.diag.Pos.Line,
			EditCount:   len(cand.fix.TextEdits),
		})
	}

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	result.Source = applyEdits(src, accepted)
	return result, nil
}

func gatherCandidates(diagnostics []lint.Diagnostic) []candidate {
	var cands []candidate
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.TextEdits) == 0 {
				continue
			}
			start, end := f.TextEdits[0].Start(), f.TextEdits[0].End()
			for _, e := range f.TextEdits[1:] {
				start = min(start, e.Start())
				end = max(end, e.End())
			}
			cands = append(cands, candidate{diag: d, fix: f, start: start, end: end, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates orders by span start, then span end, then insertion order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.start != cj.start {
			return ci.start < cj.start
		}
		if ci.end != cj.end {
			return ci.end < cj.end
		}
		return ci.order < cj.order
	})
}

func checkFix(f lint.Fix, size int, taken []span) error {
	edits := make([]span, 0, len(f.TextEdits))
	for _, e := range f.TextEdits {
		s := span{e.Start(), e.End()}
		if s.start < 0 || s.end < s.start || s.end > size {
			return fmt.Errorf("edit [%d,%d) out of range", s.start, s.end)
		}
		for _, prev := range edits {
			if spansConflict(prev, s) {
				return fmt.Errorf("%w within fix", ErrConflict)
			}
		}
		for _, prev := range taken {
			if spansConflict(prev, s) {
				return fmt.Errorf("%w with previously accepted edit", ErrConflict)
			}
		}
		edits = append(edits, s)
	}
	return nil
}

// spansConflict reports whether two edit spans overlap. Spans are half-open
// intervals [start, end). Two insertions conflict only at the same offset, so
// their relative order never depends on sorting. An insertion conflicts with
// a replacement whose interior contains it.
func spansConflict(a, b span) bool {
	aEmpty, bEmpty := a.start == a.end, b.start == b.end
	switch {
	case aEmpty && bEmpty:
		return a.start == b.start
	case aEmpty:
		return b.start < a.start && a.start < b.end
	case bEmpty:
		return a.start < b.start && b.start < a.end
	default:
		return a.start < b.end && b.start < a.end
	}
}

// applyEdits applies non-overlapping edits to src.
func applyEdits(src string, edits []lint.TextEdit) string {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Start() != edits[j].Start() {
			return edits[i].Start() < edits[j].Start()
		}
		return edits[i].End() < edits[j].End()
	})

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, e := range edits {
		b.WriteString(src[last:e.Start()])
		b.WriteString(e.NewText)
		last = e.End()
	}
	b.WriteString(src[last:])
	return b.String()
}
