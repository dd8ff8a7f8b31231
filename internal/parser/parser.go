package parser

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/svelte"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

var parserPool = sync.Pool{
	New: func() interface{} {
		parser := sitter.NewParser()
		parser.SetLanguage(svelte.GetLanguage())
		return parser
	},
}

// Document is a parsed svelte file
type Document struct {
	Source *lint.SourceCode
	// Tags are the start and self-closing tags in source order
	Tags []*Tag
	// Skipped counts tags left out because they contain syntax errors or
	// follow an ignore comment
	Skipped int
}

// Parse parses svelte content into tokens and tags
func Parse(ctx context.Context, content []byte) (*Document, error) {
	parser := parserPool.Get().(*sitter.Parser)
	defer parserPool.Put(parser)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing svelte: %w", err)
	}
	defer tree.Close()

	doc := &Document{Source: lint.NewSourceCode(string(content))}
	root := tree.RootNode()
	addTokens(doc.Source, root)

	var traverse func(*sitter.Node)
	traverse = func(n *sitter.Node) {
		switch n.Type() {
		case "start_tag", "self_closing_tag":
			if n.HasError() || IsIgnored(n, content) {
				doc.Skipped++
				return
			}
			doc.Tags = append(doc.Tags, newTag(doc.Source, n, content))
			return
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			traverse(n.Child(i))
		}
	}
	traverse(root)

	return doc, nil
}

// addTokens adds the leaves of n to source in order. Zero-width leaves
// produced by error recovery are dropped.
func addTokens(source *lint.SourceCode, n *sitter.Node) {
	if n.ChildCount() == 0 {
		start, end := int(n.StartByte()), int(n.EndByte())
		if start == end {
			return
		}
		kind := interfaces.TokenOther
		switch {
		case n.Type() == "comment":
			kind = interfaces.TokenComment
		case !n.IsNamed():
			kind = interfaces.TokenPunctuator
		}
		source.AddToken(kind, start, end)
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		addTokens(source, n.Child(i))
	}
}

func newTag(source *lint.SourceCode, n *sitter.Node, content []byte) *Tag {
	var name string
	var attributes []interfaces.Attribute

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "tag_name":
			name = child.Content(content)
		case "comment":
		default:
			attributes = append(attributes, NewAttribute(source, name, int(child.StartByte()), int(child.EndByte())))
		}
	}

	return NewTag(source, name, int(n.StartByte()), int(n.EndByte()), attributes)
}
