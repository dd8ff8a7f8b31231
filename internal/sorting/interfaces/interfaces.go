package interfaces

// Position is a point in the source. Line is 1-based, Column is 0-based.
type Position struct {
	Line   int
	Column int
}

// Location is the start/end position pair of a node
type Location struct {
	Start Position
	End   Position
}

// Range is a half-open byte range [Start, End) into the source text
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range
func (r Range) Len() int {
	return r.End - r.Start
}

// Node is a handle borrowed from the host syntax tree. The sorting engine
// only reads positions from it.
type Node interface {
	// Range returns the byte range of the node
	Range() Range

	// Loc returns the line/column location of the node
	Loc() Location
}

// TokenKind discriminates tokens returned by SourceCode queries
type TokenKind int

const (
	TokenOther TokenKind = iota
	TokenPunctuator
	TokenComment
)

// Token is a lexical token of the host source
type Token interface {
	Node

	// Kind returns the kind of the token
	Kind() TokenKind

	// Value returns the token text. For comments it is the comment body
	// without delimiters.
	Value() string
}

// TokenFilter selects tokens in SourceCode queries
type TokenFilter func(Token) bool

// SourceCode gives random access to the text and tokens of one file
type SourceCode interface {
	// Text returns the full source text
	Text() string

	// TokenBefore returns the nearest token ending at or before the start of
	// n that passes filter (nil filter accepts everything), or nil.
	TokenBefore(n Node, includeComments bool, filter TokenFilter) Token

	// TokenAfter returns the nearest token starting at or after the end of
	// n that passes filter (nil filter accepts everything), or nil.
	TokenAfter(n Node, includeComments bool, filter TokenFilter) Token

	// TokensAfter returns up to count tokens following n
	TokensAfter(n Node, count int, includeComments bool) []Token

	// CommentsBefore returns the comments directly preceding n, in source
	// order, with no other token between them and n
	CommentsBefore(n Node) []Token
}

// Edit replaces the text in Range with Text. An empty range is an insertion.
type Edit struct {
	Range Range
	Text  string
}

// Fixer builds edits for a fix
type Fixer interface {
	ReplaceTextRange(r Range, text string) Edit
	InsertTextAfter(n Node, text string) Edit
}

// AttributeKind discriminates attribute-like nodes on a tag
type AttributeKind int

const (
	// KindAttribute is a plain attribute: name or name=value
	KindAttribute AttributeKind = iota
	// KindShorthand is the svelte shorthand {name}
	KindShorthand
	// KindSpread is a spread attribute {...props}
	KindSpread
	// KindDirective is a directive such as on:click or use:action
	KindDirective
	// KindStyleDirective is a style:property directive
	KindStyleDirective
	// KindSpecialDirective is the special "this" key of svelte:element and svelte:component
	KindSpecialDirective
)

func (k AttributeKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindShorthand:
		return "shorthand"
	case KindSpread:
		return "spread"
	case KindDirective:
		return "directive"
	case KindStyleDirective:
		return "style-directive"
	case KindSpecialDirective:
		return "special-directive"
	default:
		return "unknown"
	}
}

// Attribute is an attribute-like node on a start tag
type Attribute interface {
	Node

	// Kind returns what sort of attribute this is
	Kind() AttributeKind

	// Key returns the node of the attribute key
	Key() Node

	// KeyName returns the plain key name, or "" when the key is not a plain
	// identifier (directives, special keys)
	KeyName() string

	// HasValue reports whether the attribute carries a value
	HasValue() bool
}

// Tag is a start tag together with its attributes in source order
type Tag interface {
	Node

	// Name returns the tag name, e.g. "Component" or "svelte:element"
	Name() string

	// Attributes returns the attribute-like nodes in source order
	Attributes() []Attribute
}

// SortableItem is one orderable unit of a segment
type SortableItem struct {
	// Name is the identity used for comparison
	Name string
	// Size is the length of the source span
	Size int
	// Group is the resolved group label
	Group string
	// IsMultiInstanceLong marks items whose size may legitimately exceed the
	// line-length ceiling
	IsMultiInstanceLong bool
	// Node is the host node the item was built from
	Node Node
}

// GroupName returns the group label, "unknown" when no group was resolved
func (s *SortableItem) GroupName() string {
	if s.Group == "" {
		return UnknownGroup
	}
	return s.Group
}

// UnknownGroup is the fallback group label
const UnknownGroup = "unknown"
