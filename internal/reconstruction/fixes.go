package reconstruction

import (
	"fmt"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// MakeFixes builds the edits that rewrite nodes into the order of sorted.
// Position i of the source receives the text of sorted[i]. Trailing comments
// of moved nodes travel with them unless the whole run sits on one line.
func MakeFixes(fixer interfaces.Fixer, source interfaces.SourceCode, nodes, sorted []interfaces.Node, opts Options) ([]interfaces.Edit, error) {
	if len(nodes) != len(sorted) {
		return nil, fmt.Errorf("cannot reorder %d nodes into %d positions", len(sorted), len(nodes))
	}
	if len(nodes) == 0 {
		return nil, nil
	}

	text := source.Text()
	singleLine := nodes[0].Loc().Start.Line == nodes[len(nodes)-1].Loc().End.Line

	var edits []interfaces.Edit
	for i, node := range nodes {
		target, err := NodeRange(node, source, opts)
		if err != nil {
			return nil, err
		}
		replacement, err := NodeRange(sorted[i], source, opts)
		if err != nil {
			return nil, err
		}
		edits = append(edits, fixer.ReplaceTextRange(target, text[replacement.Start:replacement.End]))

		comment := CommentAfter(sorted[i], source)
		if comment == nil || singleLine {
			continue
		}

		before := source.TokenBefore(comment, false, nil)
		if before == nil {
			continue
		}
		moved := interfaces.Range{Start: before.Range().End, End: comment.Range().End}
		edits = append(edits, fixer.ReplaceTextRange(moved, ""))

		var anchor interfaces.Node = node
		if after := source.TokenAfter(node, false, nil); after != nil && after.Loc().End.Line == node.Loc().End.Line {
			anchor = after
		}
		edits = append(edits, fixer.InsertTextAfter(anchor, text[moved.Start:moved.End]))
	}

	return edits, nil
}
