package groups

import (
	"slices"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/strategies"
)

// Extra carries the optional hooks of SortByGroups
type Extra struct {
	// GroupCompareOptions resolves the options of one rank. A nil result
	// keeps that rank in its original order.
	GroupCompareOptions func(rank int) *interfaces.CompareOptions
	// IsIgnored pins an item to its original index
	IsIgnored func(*interfaces.SortableItem) bool
}

// SortByGroups orders items by group rank, then by opts within each rank
func SortByGroups(items []*interfaces.SortableItem, declaration Declaration, opts interfaces.CompareOptions, extra Extra) []*interfaces.SortableItem {
	buckets := make(map[int][]*interfaces.SortableItem)
	var ignored []int
	for i, item := range items {
		if extra.IsIgnored != nil && extra.IsIgnored(item) {
			ignored = append(ignored, i)
			continue
		}
		rank := declaration.Rank(item.GroupName())
		buckets[rank] = append(buckets[rank], item)
	}

	ranks := make([]int, 0, len(buckets))
	for rank := range buckets {
		ranks = append(ranks, rank)
	}
	slices.Sort(ranks)

	sorted := make([]*interfaces.SortableItem, 0, len(items))
	for _, rank := range ranks {
		bucket := buckets[rank]
		rankOpts := &opts
		if extra.GroupCompareOptions != nil {
			rankOpts = extra.GroupCompareOptions(rank)
		}
		if rankOpts == nil {
			sorted = append(sorted, bucket...)
			continue
		}
		sorted = append(sorted, strategies.SortItems(bucket, *rankOpts)...)
	}

	for _, i := range ignored {
		sorted = slices.Insert(sorted, i, items[i])
	}
	return sorted
}
