package strategies

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Collators keep internal buffers and are not safe for concurrent use
var collatorPool = sync.Pool{
	New: func() interface{} {
		return collate.New(language.English)
	},
}

// AlphabeticalStrategy compares normalized keys with locale-aware collation
type AlphabeticalStrategy struct {
	options interfaces.CompareOptions
}

func (s *AlphabeticalStrategy) Compare(a, b *interfaces.SortableItem) int {
	normalize := common.NormalizeFunc(s.options.IgnoreCase, s.options.SpecialCharacters)
	aKey := normalize(s.options.Key(a))
	bKey := normalize(s.options.Key(b))

	collator := collatorPool.Get().(*collate.Collator)
	defer collatorPool.Put(collator)

	return collator.CompareString(aKey, bKey)
}

func (s *AlphabeticalStrategy) GetName() string {
	return string(interfaces.SortAlphabetical)
}
