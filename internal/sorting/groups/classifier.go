package groups

import (
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
)

// Classifier accumulates the group of a single item. A label is only ever
// assigned when the declaration contains it.
type Classifier struct {
	declaration Declaration
	group       string
}

// NewClassifier starts a classification with no group
func NewClassifier(declaration Declaration) *Classifier {
	return &Classifier{declaration: declaration}
}

// Define assigns label when no group is set yet, or always when override is true
func (c *Classifier) Define(label string, override bool) {
	if (c.group == "" || override) && c.declaration.Contains(label) {
		c.group = label
	}
}

// SetCustomGroups tests name against every custom group in declaration order
// and defines the label of each group with a matching pattern
func (c *Classifier) SetCustomGroups(m common.Matcher, customGroups []CustomGroup, name string, override bool) error {
	for _, group := range customGroups {
		ok, err := common.MatchAny(m, name, group.Patterns)
		if err != nil {
			return err
		}
		if ok {
			c.Define(group.Label, override)
		}
	}
	return nil
}

// Group returns the resolved label, Unknown when nothing was assigned
func (c *Classifier) Group() string {
	if c.group == "" {
		return Unknown
	}
	return c.group
}
