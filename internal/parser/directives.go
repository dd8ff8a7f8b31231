package parser

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

var ignoreCommentRegex = regexp.MustCompile(`^<!--\s*sort-svelte-attributes-ignore\b.*?-->$`)

// IsIgnored reports whether the element of a start tag is directly preceded
// by an ignore comment:
//
//	<!-- sort-svelte-attributes-ignore -->
//	<input value={v} type="text" />
func IsIgnored(tag *sitter.Node, content []byte) bool {
	element := tag.Parent()
	if element == nil {
		return false
	}

	for prev := element.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		switch prev.Type() {
		case "comment":
			return ignoreCommentRegex.MatchString(strings.TrimSpace(prev.Content(content)))
		case "text":
			if strings.TrimSpace(prev.Content(content)) != "" {
				return false
			}
		default:
			return false
		}
	}
	return false
}
