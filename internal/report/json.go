package report

import (
	"encoding/json"
	"io"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
)

type JSONReporter struct{}

type jsonDiagnostic struct {
	Rule      string            `json:"rule"`
	MessageID string            `json:"messageId"`
	File      string            `json:"file"`
	Line      int               `json:"line"`
	Column    int               `json:"column"`
	EndLine   int               `json:"endLine"`
	EndColumn int               `json:"endColumn"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	Fixable   bool              `json:"fixable"`
}

func (r *JSONReporter) Report(w io.Writer, diagnostics []lint.Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		out = append(out, jsonDiagnostic{
			Rule:      d.Rule,
			MessageID: d.MessageID,
			File:      d.Filename,
			Line:      d.Pos.Line,
			Column:    d.Pos.Column + 1,
			EndLine:   d.End.Line,
			EndColumn: d.End.Column + 1,
			Message:   d.Message,
			Data:      d.Data,
			Fixable:   d.Fix != nil,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
