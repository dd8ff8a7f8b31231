package common

import (
	"strings"
)

// ExtractCommentText removes comment markers from raw comment text. Line
// (//), block (/* */) and markup (<!-- -->) comments are recognised. The
// body is returned untrimmed, like the value of a comment token.
func ExtractCommentText(raw string) string {
	switch {
	case strings.HasPrefix(raw, "//"):
		return raw[2:]
	case strings.HasPrefix(raw, "/*") && strings.HasSuffix(raw, "*/") && len(raw) >= 4:
		return raw[2 : len(raw)-2]
	case strings.HasPrefix(raw, "<!--") && strings.HasSuffix(raw, "-->") && len(raw) >= 7:
		return raw[4 : len(raw)-3]
	default:
		return raw
	}
}
