package lint

import (
	"sort"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Span is a plain node covering a byte range of a SourceCode
type Span struct {
	rng interfaces.Range
	loc interfaces.Location
}

func (s *Span) Range() interfaces.Range { return s.rng }

func (s *Span) Loc() interfaces.Location { return s.loc }

// Token is a lexical token of a SourceCode
type Token struct {
	Span
	kind  interfaces.TokenKind
	value string
}

func (t *Token) Kind() interfaces.TokenKind { return t.kind }

func (t *Token) Value() string { return t.value }

// SourceCode is the in-memory text of one file together with its token
// stream. Tokens must be added in source order and must not overlap.
type SourceCode struct {
	text       string
	lineStarts []int
	tokens     []*Token
}

// NewSourceCode indexes the line starts of text
func NewSourceCode(text string) *SourceCode {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &SourceCode{text: text, lineStarts: lineStarts}
}

func (s *SourceCode) Text() string {
	return s.text
}

// PositionAt converts a byte offset to a 1-based line and 0-based column.
// Columns count UTF-16 code units.
func (s *SourceCode) PositionAt(offset int) interfaces.Position {
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	column := common.UTF16Len(s.text[s.lineStarts[line]:offset])
	return interfaces.Position{Line: line + 1, Column: column}
}

// Span returns a node covering [start, end)
func (s *SourceCode) Span(start, end int) *Span {
	return &Span{
		rng: interfaces.Range{Start: start, End: end},
		loc: interfaces.Location{Start: s.PositionAt(start), End: s.PositionAt(end)},
	}
}

// AddToken appends a token covering [start, end). The value of a comment is
// its body without delimiters, any other token's value is its text.
func (s *SourceCode) AddToken(kind interfaces.TokenKind, start, end int) *Token {
	value := s.text[start:end]
	if kind == interfaces.TokenComment {
		value = common.ExtractCommentText(value)
	}
	token := &Token{Span: *s.Span(start, end), kind: kind, value: value}
	s.tokens = append(s.tokens, token)
	return token
}

// Tokens returns every token in source order
func (s *SourceCode) Tokens() []interfaces.Token {
	out := make([]interfaces.Token, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = t
	}
	return out
}

// firstAtOrAfter returns the index of the first token starting at or after offset
func (s *SourceCode) firstAtOrAfter(offset int) int {
	return sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].rng.Start >= offset
	})
}

// lastEndingBefore returns the index of the last token ending at or before offset, or -1
func (s *SourceCode) lastEndingBefore(offset int) int {
	return sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].rng.End > offset
	}) - 1
}

func accept(t *Token, includeComments bool, filter interfaces.TokenFilter) bool {
	if t.kind == interfaces.TokenComment && !includeComments {
		return false
	}
	return filter == nil || filter(t)
}

func (s *SourceCode) TokenBefore(n interfaces.Node, includeComments bool, filter interfaces.TokenFilter) interfaces.Token {
	for i := s.lastEndingBefore(n.Range().Start); i >= 0; i-- {
		if accept(s.tokens[i], includeComments, filter) {
			return s.tokens[i]
		}
	}
	return nil
}

func (s *SourceCode) TokenAfter(n interfaces.Node, includeComments bool, filter interfaces.TokenFilter) interfaces.Token {
	for i := s.firstAtOrAfter(n.Range().End); i < len(s.tokens); i++ {
		if accept(s.tokens[i], includeComments, filter) {
			return s.tokens[i]
		}
	}
	return nil
}

func (s *SourceCode) TokensAfter(n interfaces.Node, count int, includeComments bool) []interfaces.Token {
	var out []interfaces.Token
	for i := s.firstAtOrAfter(n.Range().End); i < len(s.tokens) && len(out) < count; i++ {
		if accept(s.tokens[i], includeComments, nil) {
			out = append(out, s.tokens[i])
		}
	}
	return out
}

func (s *SourceCode) CommentsBefore(n interfaces.Node) []interfaces.Token {
	var out []interfaces.Token
	for i := s.lastEndingBefore(n.Range().Start); i >= 0 && s.tokens[i].kind == interfaces.TokenComment; i-- {
		out = append(out, s.tokens[i])
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}
