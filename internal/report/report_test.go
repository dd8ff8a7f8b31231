package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

var diagnostics = []lint.Diagnostic{
	{
		Rule:      "sort-attributes",
		MessageID: "unexpectedSvelteAttributesOrder",
		Message:   `Expected "a" to come before "b".`,
		Data:      map[string]string{"left": "b", "right": "a"},
		Filename:  "src/App.svelte",
		Pos:       interfaces.Position{Line: 3, Column: 7},
		End:       interfaces.Position{Line: 3, Column: 12},
		Fix:       &lint.Fix{Range: interfaces.Range{Start: 10, End: 20}, Text: "a b"},
	},
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextReporter{}).Report(&buf, diagnostics))
	assert.Equal(t, "src/App.svelte:3:8: Expected \"a\" to come before \"b\". (sort-attributes) [fixable]\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONReporter{}).Report(&buf, diagnostics))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "src/App.svelte", out[0]["file"])
	assert.Equal(t, float64(3), out[0]["line"])
	assert.Equal(t, float64(8), out[0]["column"])
	assert.Equal(t, true, out[0]["fixable"])
	assert.Equal(t, "unexpectedSvelteAttributesOrder", out[0]["messageId"])
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "text", "json"} {
		_, err := New(format)
		assert.NoError(t, err, format)
	}
	_, err := New("sarif")
	assert.Error(t, err)
}
