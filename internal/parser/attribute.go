package parser

import (
	"strings"
	"unicode"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// directivePrefixes are the `prefix:` forms parsed as directives
var directivePrefixes = map[string]bool{
	"on":         true,
	"bind":       true,
	"class":      true,
	"use":        true,
	"transition": true,
	"in":         true,
	"out":        true,
	"animate":    true,
	"let":        true,
}

// specialElements accept the special `this` key
var specialElements = map[string]bool{
	"svelte:element":   true,
	"svelte:component": true,
}

// Attribute is an attribute-like node of a start tag
type Attribute struct {
	*lint.Span
	kind     interfaces.AttributeKind
	key      *lint.Span
	keyName  string
	hasValue bool
}

func (a *Attribute) Kind() interfaces.AttributeKind { return a.kind }

func (a *Attribute) Key() interfaces.Node { return a.key }

func (a *Attribute) KeyName() string { return a.keyName }

// HasValue reports whether the attribute has a value part. Directive
// expressions are not values, so `on:click={handler}` has none.
func (a *Attribute) HasValue() bool { return a.hasValue }

// NewAttribute classifies the attribute text at [start, end) of source
func NewAttribute(source *lint.SourceCode, tagName string, start, end int) *Attribute {
	text := source.Text()[start:end]
	a := &Attribute{Span: source.Span(start, end)}

	if strings.HasPrefix(text, "{") {
		inner := strings.TrimSuffix(strings.TrimPrefix(text, "{"), "}")
		trimmed := strings.TrimSpace(inner)
		if strings.HasPrefix(trimmed, "...") {
			a.kind = interfaces.KindSpread
			a.key = a.Span
			return a
		}

		offset := start + 1 + strings.Index(inner, trimmed)
		a.kind = interfaces.KindShorthand
		a.key = source.Span(offset, offset+len(trimmed))
		a.keyName = trimmed
		a.hasValue = true
		return a
	}

	keyText := text
	if eq := strings.IndexByte(text, '='); eq >= 0 {
		keyText = strings.TrimRightFunc(text[:eq], unicode.IsSpace)
		value := strings.TrimSpace(text[eq+1:])
		a.hasValue = value != `""` && value != "''" && value != ""
	}
	a.key = source.Span(start, start+len(keyText))

	prefix, _, hasColon := strings.Cut(keyText, ":")
	switch {
	case keyText == "this" && specialElements[tagName]:
		a.kind = interfaces.KindSpecialDirective
		a.hasValue = false
	case hasColon && prefix == "style":
		a.kind = interfaces.KindStyleDirective
	case hasColon && directivePrefixes[prefix]:
		a.kind = interfaces.KindDirective
		a.hasValue = false
	default:
		a.kind = interfaces.KindAttribute
		a.keyName = keyText
	}
	return a
}

// Tag is a start tag or self-closing tag with its attributes
type Tag struct {
	*lint.Span
	name       string
	attributes []interfaces.Attribute
}

// NewTag creates a tag covering [start, end) of source
func NewTag(source *lint.SourceCode, name string, start, end int, attributes []interfaces.Attribute) *Tag {
	return &Tag{Span: source.Span(start, end), name: name, attributes: attributes}
}

func (t *Tag) Name() string { return t.name }

func (t *Tag) Attributes() []interfaces.Attribute { return t.attributes }
