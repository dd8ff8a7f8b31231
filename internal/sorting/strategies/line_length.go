package strategies

import (
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// longItemPenalty is added to the key length of multi-instance items that
// exceed MaxLineLength. The value is a heuristic carried over unchanged.
const longItemPenalty = 10

// LineLengthStrategy compares items by the length of their source span.
// Sizes and the ceiling are in UTF-16 code units.
type LineLengthStrategy struct {
	options interfaces.CompareOptions
}

func (s *LineLengthStrategy) Compare(a, b *interfaces.SortableItem) int {
	return s.size(a) - s.size(b)
}

func (s *LineLengthStrategy) size(item *interfaces.SortableItem) int {
	size := item.Size
	max := s.options.MaxLineLength
	if max > 0 && size > max && item.IsMultiInstanceLong {
		size = common.UTF16Len(s.options.Key(item)) + longItemPenalty
	}
	return size
}

func (s *LineLengthStrategy) GetName() string {
	return string(interfaces.SortLineLength)
}
