package strategies

import (
	"cmp"
	"strings"
	"unicode/utf8"

	"github.com/maruel/natural"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// NaturalStrategy compares keys so that embedded digit runs compare by value
type NaturalStrategy struct {
	options interfaces.CompareOptions
}

func (s *NaturalStrategy) Compare(a, b *interfaces.SortableItem) int {
	normalize := common.NormalizeFunc(s.options.IgnoreCase, s.options.SpecialCharacters)
	aKey := common.PrepareNumeric(normalize(s.options.Key(a)))
	bKey := common.PrepareNumeric(normalize(s.options.Key(b)))

	if result := compareNatural(aKey, bKey); result != 0 {
		return result
	}
	return strings.Compare(aKey, bKey)
}

func (s *NaturalStrategy) GetName() string {
	return string(interfaces.SortNatural)
}

// compareNatural walks both keys token by token. A token is either a run of
// digits, compared by value, or a single character, compared by
// naturalRank. Runs of equal value with different zero padding tie.
func compareNatural(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			endA, endB := digitRunEnd(a, i), digitRunEnd(b, j)
			if result := compareDigitRuns(a[i:endA], b[j:endB]); result != 0 {
				return result
			}
			i, j = endA, endB
			continue
		}

		ra, sizeA := utf8.DecodeRuneInString(a[i:])
		rb, sizeB := utf8.DecodeRuneInString(b[j:])
		if result := cmp.Compare(naturalRank(ra), naturalRank(rb)); result != 0 {
			return result
		}
		i += sizeA
		j += sizeB
	}
	return cmp.Compare(len(a)-i, len(b)-j)
}

func compareDigitRuns(a, b string) int {
	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digitRunEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// naturalRank remaps ASCII so that punctuation sorts first, then '-', then
// digits, upper case and lower case letters. Other code points keep their
// value and sort after ASCII.
func naturalRank(r rune) rune {
	switch {
	case r < '-' || r > 127:
		return r
	case r == '-':
		return 65
	case r < '0': // . /
		return r - 1
	case r <= '9':
		return r + 18
	case r < 'A': // : ; < = > ? @
		return r - 11
	case r <= 'Z':
		return r + 11
	case r < 'a': // [ \ ] ^ _ `
		return r - 37
	case r <= 'z':
		return r + 5
	default: // { | } ~ DEL
		return r - 63
	}
}
