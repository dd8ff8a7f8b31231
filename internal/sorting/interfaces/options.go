package interfaces

import "fmt"

// SortType is the comparison law used to order items
type SortType string

const (
	SortAlphabetical SortType = "alphabetical"
	SortNatural      SortType = "natural"
	SortLineLength   SortType = "line-length"
)

// SortOrder is the direction of the comparison
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SpecialCharacters controls how non-letter characters are treated before comparing
type SpecialCharacters string

const (
	SpecialKeep   SpecialCharacters = "keep"
	SpecialTrim   SpecialCharacters = "trim"
	SpecialRemove SpecialCharacters = "remove"
)

// MatcherKind selects the pattern engine for custom groups and partition comments
type MatcherKind string

const (
	MatcherGlob  MatcherKind = "minimatch"
	MatcherRegex MatcherKind = "regex"
)

// CompareOptions configures the comparator for one sort law
type CompareOptions struct {
	Type              SortType
	Order             SortOrder
	IgnoreCase        bool
	SpecialCharacters SpecialCharacters
	// MaxLineLength is the line-length ceiling; zero disables it
	MaxLineLength int
	// NodeValueGetter overrides the default Name key
	NodeValueGetter func(*SortableItem) string
}

// Key returns the comparison key of item
func (o CompareOptions) Key(item *SortableItem) string {
	if o.NodeValueGetter != nil {
		return o.NodeValueGetter(item)
	}
	return item.Name
}

// Validate checks that every enum field holds a known value
func (o CompareOptions) Validate() error {
	switch o.Type {
	case SortAlphabetical, SortNatural, SortLineLength:
	default:
		return fmt.Errorf("unknown sort type %q", o.Type)
	}
	switch o.Order {
	case OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("unknown sort order %q", o.Order)
	}
	switch o.SpecialCharacters {
	case SpecialKeep, SpecialTrim, SpecialRemove, "":
	default:
		return fmt.Errorf("unknown specialCharacters mode %q", o.SpecialCharacters)
	}
	return nil
}
