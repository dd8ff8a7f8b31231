package common

import "unicode/utf16"

// UTF16Len returns the length of s in UTF-16 code units, the unit editors
// and ESLint use for columns and ranges
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
