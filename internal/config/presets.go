package config

import (
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

var presets = map[string]struct {
	sortType interfaces.SortType
	order    interfaces.SortOrder
}{
	"recommended-alphabetical": {interfaces.SortAlphabetical, interfaces.OrderAsc},
	"recommended-natural":      {interfaces.SortNatural, interfaces.OrderAsc},
	"recommended-line-length":  {interfaces.SortLineLength, interfaces.OrderDesc},
}

// PresetNames lists the recognised presets
func PresetNames() []string {
	return []string{"recommended-alphabetical", "recommended-natural", "recommended-line-length"}
}

// Preset returns the options of a recommended configuration
func Preset(name string) (Options, error) {
	p, ok := presets[name]
	if !ok {
		return Options{}, withDetail(ErrUnknownPreset, "%q", name)
	}
	sortType, order := p.sortType, p.order
	return Options{Type: &sortType, Order: &order}, nil
}
