package sortattributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/sort-svelte-attributes/internal/config"
	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/parser/parsertest"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/groups"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

func check(t *testing.T, r *Rule, filename, markup string) ([]lint.Diagnostic, string) {
	t.Helper()
	source, tag := parsertest.Tag(markup)
	ctx := lint.NewContext(filename, source).ForRule(r)
	require.NoError(t, r.Check(ctx, tag))

	fixed, _ := lint.ApplyFixes(markup, ctx.Diagnostics())
	return ctx.Diagnostics(), fixed
}

func messagesOf(diagnostics []lint.Diagnostic) []string {
	var out []string
	for _, d := range diagnostics {
		out = append(out, d.Message)
	}
	return out
}

func mustRule(t *testing.T, options config.Options, settings config.Settings) *Rule {
	t.Helper()
	r, err := New(options, settings)
	require.NoError(t, err)
	return r
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		options  config.Options
		settings config.Settings
		markup   string
		messages []string
		fixed    string
	}{
		{
			name:   "sorted",
			markup: `<C a="1" b="2" />`,
			fixed:  `<C a="1" b="2" />`,
		},
		{
			name:   "alphabetical",
			markup: `<C b="bb" a="aaa" {d} c="c" />`,
			messages: []string{
				`Expected "a" to come before "b".`,
				`Expected "c" to come before "d".`,
			},
			fixed: `<C a="aaa" b="bb" c="c" {d} />`,
		},
		{
			name:     "spread is a barrier",
			markup:   `<C c="1" {...rest} b="1" a="1" />`,
			messages: []string{`Expected "a" to come before "b".`},
			fixed:    `<C c="1" {...rest} a="1" b="1" />`,
		},
		{
			name: "group order",
			options: config.Options{
				Groups: config.GroupList{{groups.Unknown}, {groups.SvelteShorthand, groups.Shorthand}},
			},
			markup: `<C a="1" d {c} b="1" />`,
			messages: []string{
				`Expected "c" to come before "d".`,
				`Expected "b" (unknown) to come before "c" (svelte-shorthand).`,
			},
			fixed: `<C a="1" b="1" {c} d />`,
		},
		{
			name: "custom group",
			options: config.Options{
				CustomGroups: config.CustomGroups{{Label: "callbacks", Patterns: []string{"on:*"}}},
				Groups:       config.GroupList{{"callbacks"}, {groups.Unknown}},
			},
			markup:   `<button type="button" on:click={handler} class="x" />`,
			messages: []string{`Expected "on:click" (callbacks) to come before "type" (unknown).`},
			fixed:    `<button on:click={handler} class="x" type="button" />`,
		},
		{
			name:     "descending",
			options:  config.Options{Order: orderPtr(interfaces.OrderDesc)},
			markup:   `<C a="1" b="1" />`,
			messages: []string{`Expected "b" to come before "a".`},
			fixed:    `<C b="1" a="1" />`,
		},
		{
			name:     "line length",
			options:  config.Options{Type: typePtr(interfaces.SortLineLength), Order: orderPtr(interfaces.OrderDesc)},
			markup:   `<C a="1" b="12345" />`,
			messages: []string{`Expected "b" to come before "a".`},
			fixed:    `<C b="12345" a="1" />`,
		},
		{
			name:     "line length counts UTF-16 units",
			options:  config.Options{Type: typePtr(interfaces.SortLineLength), Order: orderPtr(interfaces.OrderDesc)},
			markup:   `<C b="abcdefghi" a="日本日本" />`,
			fixed:    `<C b="abcdefghi" a="日本日本" />`,
		},
		{
			name:     "natural zero padding",
			options:  config.Options{Type: typePtr(interfaces.SortNatural)},
			markup:   `<C x1a x01b x1 />`,
			messages: []string{`Expected "x1" to come before "x01b".`},
			fixed:    `<C x1 x1a x01b />`,
		},
		{
			name:     "ignored tag",
			settings: config.Settings{IgnorePattern: []string{"Comp*"}},
			markup:   `<Component b="1" a="1" />`,
			fixed:    `<Component b="1" a="1" />`,
		},
		{
			name:     "blank line partition",
			settings: config.Settings{PartitionByNewLine: boolPtr(true)},
			markup:   "<C\n  b\n\n  a\n/>",
			fixed:    "<C\n  b\n\n  a\n/>",
		},
		{
			name:     "multiline fix",
			markup:   "<C\n  b=\"2\"\n  a=\"1\"\n/>",
			messages: []string{`Expected "a" to come before "b".`},
			fixed:    "<C\n  a=\"1\"\n  b=\"2\"\n/>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRule(t, tt.options, tt.settings)
			diagnostics, fixed := check(t, r, "App.svelte", tt.markup)

			assert.Equal(t, tt.messages, messagesOf(diagnostics))
			assert.Equal(t, tt.fixed, fixed)

			after, _ := check(t, r, "App.svelte", fixed)
			assert.Empty(t, after)
		})
	}
}

func TestCheckDiagnostic(t *testing.T) {
	r := mustRule(t, config.Options{}, config.Settings{})
	diagnostics, _ := check(t, r, "src/App.svelte", "<C\n  b=\"2\"\n  a=\"1\"\n/>")
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, Name, d.Rule)
	assert.Equal(t, MessageOrder, d.MessageID)
	assert.Equal(t, "src/App.svelte", d.Filename)
	assert.Equal(t, interfaces.Position{Line: 3, Column: 2}, d.Pos)
	assert.Equal(t, map[string]string{"left": "b", "leftGroup": "unknown", "right": "a", "rightGroup": "unknown"}, d.Data)
	assert.NotNil(t, d.Fix)
}

func TestCheckSkips(t *testing.T) {
	r := mustRule(t, config.Options{}, config.Settings{})

	diagnostics, _ := check(t, r, "App.html", `<C b="1" a="1" />`)
	assert.Empty(t, diagnostics)

	diagnostics, _ = check(t, r, "App.svelte", `<C b="1" />`)
	assert.Empty(t, diagnostics)
}

func TestNewRejectsConfiguration(t *testing.T) {
	_, err := New(config.Options{Groups: config.GroupList{{"a"}, {"b"}, {"a", "c"}}}, config.Settings{})
	assert.ErrorIs(t, err, config.ErrInvalidGroups)

	_, err = New(config.Options{Groups: config.GroupList{{groups.Unknown}, {groups.Shorthand, groups.Unknown}}}, config.Settings{})
	assert.ErrorIs(t, err, config.ErrDuplicatedGroups)
	assert.ErrorContains(t, err, "duplicated group(s): unknown")
}

func TestNewFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("preset: recommended-natural\noptions:\n  order: desc\n"))
	require.NoError(t, err)

	r, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, interfaces.SortNatural, r.Options().Type)
	assert.Equal(t, interfaces.OrderDesc, r.Options().Order)
}

func TestRegistered(t *testing.T) {
	d, ok := lint.GlobalRegistry().Get(Name)
	require.True(t, ok)
	assert.True(t, d.Fixable)

	r, err := d.New(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, Name, r.Name())
	assert.Len(t, r.Messages(), 2)
}

func boolPtr(b bool) *bool { return &b }

func orderPtr(o interfaces.SortOrder) *interfaces.SortOrder { return &o }

func typePtr(s interfaces.SortType) *interfaces.SortType { return &s }
