package common

import (
	"regexp"
	"strings"
)

var formattedNumberRegex = regexp.MustCompile(`^[+-]?[\d ,_]+(\.[\d ,_]+)?$`)

// PrepareNumeric strips grouping separators from keys that look like
// formatted numbers ("1,000.5", "10_000") so they compare by value
func PrepareNumeric(key string) string {
	if !formattedNumberRegex.MatchString(key) {
		return key
	}
	return strings.NewReplacer(" ", "", ",", "", "_", "").Replace(key)
}

// Sign reduces a comparison result to -1, 0 or 1
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
