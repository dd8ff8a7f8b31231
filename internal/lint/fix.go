package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Fixer builds edits for a report
type Fixer struct{}

func (Fixer) ReplaceTextRange(r interfaces.Range, text string) interfaces.Edit {
	return interfaces.Edit{Range: r, Text: text}
}

func (Fixer) InsertTextAfter(n interfaces.Node, text string) interfaces.Edit {
	end := n.Range().End
	return interfaces.Edit{Range: interfaces.Range{Start: end, End: end}, Text: text}
}

// Fix is the single replacement that results from merging the edits of one report
type Fix struct {
	Range interfaces.Range
	Text  string
}

// MergeEdits folds the edits of one report into a single Fix covering all of
// them. Edits may touch but must not overlap.
func MergeEdits(text string, edits []interfaces.Edit) (*Fix, error) {
	if len(edits) == 0 {
		return nil, nil
	}

	sorted := make([]interfaces.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Range.Start != sorted[j].Range.Start {
			return sorted[i].Range.Start < sorted[j].Range.Start
		}
		return sorted[i].Range.End < sorted[j].Range.End
	})

	start := sorted[0].Range.Start
	end := start
	for _, edit := range sorted {
		if edit.Range.End > end {
			end = edit.Range.End
		}
	}
	if start < 0 || end > len(text) {
		return nil, fmt.Errorf("edit range [%d, %d) is outside the source", start, end)
	}

	var b strings.Builder
	pos := start
	for _, edit := range sorted {
		if edit.Range.Start < pos || edit.Range.Start > edit.Range.End {
			return nil, fmt.Errorf("overlapping edit at [%d, %d)", edit.Range.Start, edit.Range.End)
		}
		b.WriteString(text[pos:edit.Range.Start])
		b.WriteString(edit.Text)
		pos = edit.Range.End
	}
	b.WriteString(text[pos:end])

	return &Fix{Range: interfaces.Range{Start: start, End: end}, Text: b.String()}, nil
}

// ApplyFixes applies the fixes of diagnostics in source order. A fix that
// overlaps or touches one already applied is skipped; the caller re-lints
// and tries again. The second result reports whether anything was applied.
func ApplyFixes(text string, diagnostics []Diagnostic) (string, bool) {
	var fixes []*Fix
	for _, d := range diagnostics {
		if d.Fix != nil {
			fixes = append(fixes, d.Fix)
		}
	}
	if len(fixes) == 0 {
		return text, false
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		if fixes[i].Range.Start != fixes[j].Range.Start {
			return fixes[i].Range.Start < fixes[j].Range.Start
		}
		return fixes[i].Range.End < fixes[j].Range.End
	})

	var b strings.Builder
	lastPos := -1
	applied := false
	for _, fix := range fixes {
		if fix.Range.Start <= lastPos {
			continue
		}
		if lastPos < 0 {
			b.WriteString(text[:fix.Range.Start])
		} else {
			b.WriteString(text[lastPos:fix.Range.Start])
		}
		b.WriteString(fix.Text)
		lastPos = fix.Range.End
		applied = true
	}
	b.WriteString(text[lastPos:])

	return b.String(), applied
}
