package report

import (
	"fmt"
	"io"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
)

// TextReporter prints one line per diagnostic, columns 1-based
type TextReporter struct{}

func (r *TextReporter) Report(w io.Writer, diagnostics []lint.Diagnostic) error {
	for _, d := range diagnostics {
		fixable := ""
		if d.Fix != nil {
			fixable = " [fixable]"
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s (%s)%s\n",
			d.Filename, d.Pos.Line, d.Pos.Column+1, d.Message, d.Rule, fixable); err != nil {
			return err
		}
	}
	return nil
}
