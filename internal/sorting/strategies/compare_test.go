package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

func items(names ...string) []*interfaces.SortableItem {
	out := make([]*interfaces.SortableItem, 0, len(names))
	for _, name := range names {
		out = append(out, &interfaces.SortableItem{Name: name, Size: len(name)})
	}
	return out
}

func names(items []*interfaces.SortableItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func alphabetical() interfaces.CompareOptions {
	return interfaces.CompareOptions{
		Type:              interfaces.SortAlphabetical,
		Order:             interfaces.OrderAsc,
		IgnoreCase:        true,
		SpecialCharacters: interfaces.SpecialKeep,
	}
}

func TestSortItems(t *testing.T) {
	testCases := []struct {
		description string
		opts        func() interfaces.CompareOptions
		input       []string
		expect      []string
	}{
		{
			description: "alphabetical ascending",
			opts:        alphabetical,
			input:       []string{"b", "a", "d", "c"},
			expect:      []string{"a", "b", "c", "d"},
		},
		{
			description: "alphabetical descending",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.Order = interfaces.OrderDesc
				return o
			},
			input:  []string{"b", "a", "d", "c"},
			expect: []string{"d", "c", "b", "a"},
		},
		{
			description: "ignore case keeps equal keys in source order",
			opts:        alphabetical,
			input:       []string{"B", "a", "b"},
			expect:      []string{"a", "B", "b"},
		},
		{
			description: "remove special characters",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.SpecialCharacters = interfaces.SpecialRemove
				return o
			},
			input:  []string{"a$c", "ab"},
			expect: []string{"ab", "a$c"},
		},
		{
			description: "trim leading special characters",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.SpecialCharacters = interfaces.SpecialTrim
				return o
			},
			input:  []string{"$$c", "_b", "a"},
			expect: []string{"a", "_b", "$$c"},
		},
		{
			description: "natural compares digit runs by value",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.Type = interfaces.SortNatural
				return o
			},
			input:  []string{"item10", "item2", "item1"},
			expect: []string{"item1", "item2", "item10"},
		},
		{
			description: "natural strips grouping separators",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.Type = interfaces.SortNatural
				return o
			},
			input:  []string{"1_000", "20", "3"},
			expect: []string{"3", "20", "1_000"},
		},
		{
			description: "natural ties zero padded digit runs by value",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.Type = interfaces.SortNatural
				return o
			},
			input:  []string{"x1a", "x01b", "x1"},
			expect: []string{"x1", "x1a", "x01b"},
		},
		{
			description: "natural ranks punctuation before letters",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.Type = interfaces.SortNatural
				o.IgnoreCase = false
				return o
			},
			input:  []string{"aZ", "a_", "a1", "a-1"},
			expect: []string{"a_", "a-1", "a1", "aZ"},
		},
		{
			description: "line length ascending",
			opts: func() interfaces.CompareOptions {
				o := alphabetical()
				o.Type = interfaces.SortLineLength
				return o
			},
			input:  []string{"ccc", "a", "bb"},
			expect: []string{"a", "bb", "ccc"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			sorted := SortItems(items(tc.input...), tc.opts())
			assert.Equal(t, tc.expect, names(sorted))
		})
	}
}

func TestSortItemsLeavesInputUntouched(t *testing.T) {
	input := items("b", "a")
	_ = SortItems(input, alphabetical())
	assert.Equal(t, []string{"b", "a"}, names(input))
}

func TestLineLengthDescending(t *testing.T) {
	opts := interfaces.CompareOptions{Type: interfaces.SortLineLength, Order: interfaces.OrderDesc}
	short := &interfaces.SortableItem{Name: "short", Size: 10}
	long := &interfaces.SortableItem{Name: "long", Size: 20}

	sorted := SortItems([]*interfaces.SortableItem{short, long}, opts)
	assert.Equal(t, []*interfaces.SortableItem{long, short}, sorted)
	assert.Less(t, Compare(long, short, opts), 0)
}

func TestLineLengthCeiling(t *testing.T) {
	opts := interfaces.CompareOptions{Type: interfaces.SortLineLength, Order: interfaces.OrderAsc, MaxLineLength: 30}
	multi := &interfaces.SortableItem{Name: "abc", Size: 80, IsMultiInstanceLong: true}
	single := &interfaces.SortableItem{Name: "x", Size: 20}

	// 80 exceeds the ceiling, so multi is scored as len("abc") + 10
	assert.Less(t, Compare(multi, single, opts), 0)

	multi.IsMultiInstanceLong = false
	assert.Greater(t, Compare(multi, single, opts), 0)
}

func TestLineLengthCeilingCountsUTF16Units(t *testing.T) {
	opts := interfaces.CompareOptions{Type: interfaces.SortLineLength, Order: interfaces.OrderAsc, MaxLineLength: 30}
	multi := &interfaces.SortableItem{Name: "日本", Size: 80, IsMultiInstanceLong: true}
	single := &interfaces.SortableItem{Name: "x", Size: 13}

	// "日本" is two units, so multi scores 12
	assert.Less(t, Compare(multi, single, opts), 0)
}

func TestNodeValueGetter(t *testing.T) {
	opts := alphabetical()
	opts.NodeValueGetter = func(item *interfaces.SortableItem) string {
		return item.Group
	}
	a := &interfaces.SortableItem{Name: "a", Group: "z"}
	b := &interfaces.SortableItem{Name: "b", Group: "y"}
	assert.Greater(t, Compare(a, b, opts), 0)
}

func lawOptions() []interfaces.CompareOptions {
	out := []interfaces.CompareOptions{alphabetical()}
	for _, typ := range []interfaces.SortType{interfaces.SortNatural, interfaces.SortLineLength} {
		for _, ignoreCase := range []bool{true, false} {
			o := alphabetical()
			o.Type = typ
			o.IgnoreCase = ignoreCase
			out = append(out, o)
		}
	}
	return out
}

func lawPool() []*interfaces.SortableItem {
	return items(
		"a", "B", "c10", "c9", "on:click", "bind:value", "1_000", "20",
		"x01b", "x1", "x1a", "a01", "a1", "a_", "aZ", "a-1", "日本",
	)
}

func TestCompareIsAntisymmetric(t *testing.T) {
	pool := lawPool()
	for _, opts := range lawOptions() {
		for _, a := range pool {
			for _, b := range pool {
				ab := Compare(a, b, opts)
				ba := Compare(b, a, opts)
				assert.Equal(t, sign(ab), -sign(ba), "%s: %q vs %q", opts.Type, a.Name, b.Name)
			}
		}
	}
}

func TestCompareIsTransitive(t *testing.T) {
	pool := lawPool()
	for _, opts := range lawOptions() {
		for _, a := range pool {
			for _, b := range pool {
				if Compare(a, b, opts) > 0 {
					continue
				}
				for _, c := range pool {
					if Compare(b, c, opts) > 0 {
						continue
					}
					assert.LessOrEqual(t, Compare(a, c, opts), 0,
						"%s ignoreCase=%v: %q <= %q <= %q", opts.Type, opts.IgnoreCase, a.Name, b.Name, c.Name)
				}
			}
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestFactory(t *testing.T) {
	factory := NewFactory()

	strategy, err := factory.CreateStrategy(alphabetical())
	require.NoError(t, err)
	assert.Equal(t, "alphabetical", strategy.GetName())

	_, err = factory.CreateStrategy(interfaces.CompareOptions{Type: "random", Order: interfaces.OrderAsc})
	assert.Error(t, err)
}
