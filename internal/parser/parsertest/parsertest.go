// Package parsertest builds tags from markup without the tree-sitter grammar.
package parsertest

import (
	"strings"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/parser"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Tag scans the first start tag of markup. Attributes are split on
// whitespace outside of quotes and braces. Comments between attributes
// (`<!-- -->`, `/* */` and `//` up to the end of the line) become comment
// tokens, each attribute becomes a single token.
func Tag(markup string) (*lint.SourceCode, *parser.Tag) {
	source := lint.NewSourceCode(markup)

	start := strings.IndexByte(markup, '<')
	if start < 0 {
		panic("parsertest: no tag in markup")
	}
	source.AddToken(interfaces.TokenPunctuator, start, start+1)

	i := start + 1
	nameStart := i
	for i < len(markup) && !isSpace(markup[i]) && markup[i] != '/' && markup[i] != '>' {
		i++
	}
	name := markup[nameStart:i]
	source.AddToken(interfaces.TokenOther, nameStart, i)

	var attributes []interfaces.Attribute
	for i < len(markup) {
		switch {
		case isSpace(markup[i]):
			i++
		case strings.HasPrefix(markup[i:], "<!--"):
			end := strings.Index(markup[i:], "-->") + i + 3
			source.AddToken(interfaces.TokenComment, i, end)
			i = end
		case strings.HasPrefix(markup[i:], "/*"):
			end := strings.Index(markup[i:], "*/") + i + 2
			source.AddToken(interfaces.TokenComment, i, end)
			i = end
		case strings.HasPrefix(markup[i:], "//"):
			end := strings.IndexByte(markup[i:], '\n')
			if end < 0 {
				end = len(markup)
			} else {
				end += i
			}
			source.AddToken(interfaces.TokenComment, i, end)
			i = end
		case markup[i] == '/' || markup[i] == '>':
			if markup[i] == '/' {
				source.AddToken(interfaces.TokenPunctuator, i, i+1)
				i++
			}
			if i < len(markup) && markup[i] == '>' {
				source.AddToken(interfaces.TokenPunctuator, i, i+1)
				i++
			}
			return source, parser.NewTag(source, name, start, i, attributes)
		default:
			end := scanAttribute(markup, i)
			source.AddToken(interfaces.TokenOther, i, end)
			attributes = append(attributes, parser.NewAttribute(source, name, i, end))
			i = end
		}
	}

	return source, parser.NewTag(source, name, start, len(markup), attributes)
}

func scanAttribute(markup string, i int) int {
	depth := 0
	var quote byte
	for ; i < len(markup); i++ {
		c := markup[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '{':
			depth++
		case c == '}':
			depth--
		case depth == 0 && (isSpace(c) || c == '>' || c == '/'):
			return i
		}
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
