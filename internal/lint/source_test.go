package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// newTestSource adds tokens given as {kind, start, end}
func newTestSource(t *testing.T, text string, spans ...[3]int) *SourceCode {
	t.Helper()
	source := NewSourceCode(text)
	for _, s := range spans {
		source.AddToken(interfaces.TokenKind(s[0]), s[1], s[2])
	}
	return source
}

const (
	other   = int(interfaces.TokenOther)
	punct   = int(interfaces.TokenPunctuator)
	comment = int(interfaces.TokenComment)
)

func TestPositionAt(t *testing.T) {
	source := NewSourceCode("ab\ncd\n\nef")

	tests := []struct {
		offset int
		want   interfaces.Position
	}{
		{0, interfaces.Position{Line: 1, Column: 0}},
		{2, interfaces.Position{Line: 1, Column: 2}},
		{3, interfaces.Position{Line: 2, Column: 0}},
		{6, interfaces.Position{Line: 3, Column: 0}},
		{8, interfaces.Position{Line: 4, Column: 1}},
		{9, interfaces.Position{Line: 4, Column: 2}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, source.PositionAt(tt.offset), "offset %d", tt.offset)
	}
}

func TestPositionAtCountsUTF16Units(t *testing.T) {
	// é is two bytes and one unit, 😀 is four bytes and two units
	source := NewSourceCode("é a\n😀b")

	assert.Equal(t, interfaces.Position{Line: 1, Column: 2}, source.PositionAt(3))
	assert.Equal(t, interfaces.Position{Line: 2, Column: 2}, source.PositionAt(9))
}

func TestAddTokenCommentValue(t *testing.T) {
	source := NewSourceCode("a <!-- note --> /* block */ // line")
	html := source.AddToken(interfaces.TokenComment, 2, 15)
	block := source.AddToken(interfaces.TokenComment, 16, 27)
	line := source.AddToken(interfaces.TokenComment, 28, 35)

	assert.Equal(t, " note ", html.Value())
	assert.Equal(t, " block ", block.Value())
	assert.Equal(t, " line", line.Value())
}

func TestTokenQueries(t *testing.T) {
	// a /*x*/ ( b ) , c
	text := "a /*x*/ ( b ) , c"
	source := newTestSource(t, text,
		[3]int{other, 0, 1},
		[3]int{comment, 2, 7},
		[3]int{punct, 8, 9},
		[3]int{other, 10, 11},
		[3]int{punct, 12, 13},
		[3]int{punct, 14, 15},
		[3]int{other, 16, 17},
	)
	b := source.Span(10, 11)

	before := source.TokenBefore(b, false, nil)
	require.NotNil(t, before)
	assert.Equal(t, "(", before.Value())

	commaFilter := func(tok interfaces.Token) bool { return tok.Value() != ")" }
	after := source.TokenAfter(b, false, commaFilter)
	require.NotNil(t, after)
	assert.Equal(t, ",", after.Value())

	paren := source.Span(8, 9)
	assert.Equal(t, "a", source.TokenBefore(paren, false, nil).Value())
	assert.Equal(t, "x", source.TokenBefore(paren, true, nil).Value())

	next := source.TokensAfter(b, 2, false)
	require.Len(t, next, 2)
	assert.Equal(t, ")", next[0].Value())
	assert.Equal(t, ",", next[1].Value())

	assert.Nil(t, source.TokenAfter(source.Span(16, 17), true, nil))
	assert.Nil(t, source.TokenBefore(source.Span(0, 1), true, nil))
}

func TestCommentsBefore(t *testing.T) {
	text := "a\n/* one */\n// two\nb"
	source := newTestSource(t, text,
		[3]int{other, 0, 1},
		[3]int{comment, 2, 11},
		[3]int{comment, 12, 18},
		[3]int{other, 19, 20},
	)

	comments := source.CommentsBefore(source.Span(19, 20))
	require.Len(t, comments, 2)
	assert.Equal(t, " one ", comments[0].Value())
	assert.Equal(t, " two", comments[1].Value())

	assert.Empty(t, source.CommentsBefore(source.Span(0, 1)))
}
