package strategies

import (
	"slices"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Compare orders a and b under opts and returns -1, 0 or 1. The result is
// negated for descending order.
func Compare(a, b *interfaces.SortableItem, opts interfaces.CompareOptions) int {
	result := common.Sign(strategyFor(opts).Compare(a, b))
	if opts.Order == interfaces.OrderDesc {
		return -result
	}
	return result
}

// SortItems returns a stably sorted copy of items; the input is left untouched
func SortItems(items []*interfaces.SortableItem, opts interfaces.CompareOptions) []*interfaces.SortableItem {
	strategy := strategyFor(opts)
	sign := 1
	if opts.Order == interfaces.OrderDesc {
		sign = -1
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b *interfaces.SortableItem) int {
		return sign * strategy.Compare(a, b)
	})
	return sorted
}
