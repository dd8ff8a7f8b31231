package common

import (
	"strings"
	"unicode"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// isSortLetter reports whether r belongs to the letter range kept by the
// trim and remove modes: ASCII letters and U+00C0 through U+017E.
func isSortLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= 0xC0 && r <= 0x17E)
}

// Normalize turns a raw name into a comparison key
func Normalize(value string, ignoreCase bool, special interfaces.SpecialCharacters) string {
	if ignoreCase {
		value = strings.ToLower(value)
	}

	switch special {
	case interfaces.SpecialRemove:
		value = strings.Map(func(r rune) rune {
			if isSortLetter(r) {
				return r
			}
			return -1
		}, value)
	case interfaces.SpecialTrim:
		value = strings.TrimLeftFunc(value, func(r rune) bool {
			return !isSortLetter(r)
		})
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

// NormalizeFunc returns Normalize bound to the given options
func NormalizeFunc(ignoreCase bool, special interfaces.SpecialCharacters) func(string) string {
	return func(value string) string {
		return Normalize(value, ignoreCase, special)
	}
}
