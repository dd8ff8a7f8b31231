package reconstruction

import (
	"strings"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

func isPunctuator(value string) interfaces.TokenFilter {
	return func(t interfaces.Token) bool {
		return t.Kind() == interfaces.TokenPunctuator && t.Value() == value
	}
}

// IsParenthesized reports whether n is wrapped in a pair of parentheses
func IsParenthesized(n interfaces.Node, source interfaces.SourceCode) bool {
	before := source.TokenBefore(n, false, nil)
	after := source.TokenAfter(n, false, nil)
	return before != nil && after != nil &&
		before.Kind() == interfaces.TokenPunctuator && before.Value() == "(" &&
		after.Kind() == interfaces.TokenPunctuator && after.Value() == ")"
}

// NodeRange returns the span of source text that moves together with n:
// the node itself, its enclosing parentheses and the block of comments
// directly above it. A trailing terminator is left out when the node
// shares its line with what follows.
func NodeRange(n interfaces.Node, source interfaces.SourceCode, opts Options) (interfaces.Range, error) {
	r := n.Range()
	raw := source.Text()[r.Start:r.End]

	if IsParenthesized(n, source) {
		open := source.TokenBefore(n, false, isPunctuator("("))
		closing := source.TokenAfter(n, false, isPunctuator(")"))
		r.Start = open.Range().Start
		r.End = closing.Range().End
	}

	if strings.HasSuffix(raw, ";") || strings.HasSuffix(raw, ",") {
		after := source.TokensAfter(n, 2, true)
		if len(after) > 1 && after[1].Loc().Start.Line == n.Loc().Start.Line {
			r.End--
		}
	}

	comments := CommentsBefore(n, source)
	nextStartLine := n.Loc().Start.Line
	for i := len(comments) - 1; i >= 0; i-- {
		comment := comments[i]
		partition, err := opts.isPartitionComment(comment.Value())
		if err != nil {
			return interfaces.Range{}, err
		}
		if partition || comment.Loc().End.Line != nextStartLine-1 {
			break
		}
		r.Start = comment.Range().Start
		nextStartLine = comment.Loc().Start.Line
	}

	return r, nil
}

// CommentsBefore returns the comments directly above n, leaving out a comment
// that trails code on its own line
func CommentsBefore(n interfaces.Node, source interfaces.SourceCode) []interfaces.Token {
	var owned []interfaces.Token
	for _, comment := range source.CommentsBefore(n) {
		before := source.TokenBefore(comment, false, nil)
		if before != nil && before.Loc().End.Line == comment.Loc().End.Line {
			continue
		}
		owned = append(owned, comment)
	}
	return owned
}

// CommentAfter returns the comment following n on n's last line, skipping
// a separating comma or semicolon, or nil
func CommentAfter(n interfaces.Node, source interfaces.SourceCode) interfaces.Token {
	token := source.TokenAfter(n, true, func(t interfaces.Token) bool {
		return !(t.Kind() == interfaces.TokenPunctuator && (t.Value() == "," || t.Value() == ";"))
	})
	if token != nil && token.Kind() == interfaces.TokenComment && token.Loc().End.Line == n.Loc().End.Line {
		return token
	}
	return nil
}
