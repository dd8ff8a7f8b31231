package strategies

import (
	"fmt"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Strategy compares two items under one sort law, ascending
type Strategy interface {
	// Compare returns a negative number when a sorts before b, positive when
	// after and zero when they are equivalent
	Compare(a, b *interfaces.SortableItem) int

	// GetName returns the strategy name for debugging
	GetName() string
}

// Factory creates sorting strategies based on compare options
type Factory struct{}

// NewFactory creates a new strategy factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateStrategy creates the strategy for the sort law in opts
func (f *Factory) CreateStrategy(opts interfaces.CompareOptions) (Strategy, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid compare options: %w", err)
	}
	return strategyFor(opts), nil
}

func strategyFor(opts interfaces.CompareOptions) Strategy {
	switch opts.Type {
	case interfaces.SortAlphabetical:
		return &AlphabeticalStrategy{options: opts}
	case interfaces.SortNatural:
		return &NaturalStrategy{options: opts}
	default:
		return &LineLengthStrategy{options: opts}
	}
}
