package report

import (
	"fmt"
	"io"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
)

type Reporter interface {
	Report(w io.Writer, diagnostics []lint.Diagnostic) error
}

// New returns the reporter for format: "text" or "json"
func New(format string) (Reporter, error) {
	switch format {
	case "", "text":
		return &TextReporter{}, nil
	case "json":
		return &JSONReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
