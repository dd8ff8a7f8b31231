package attributes

import (
	"strings"

	"github.com/mikededo/sort-svelte-attributes/internal/config"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/groups"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Segment is a run of attributes that may be reordered among themselves
type Segment []*interfaces.SortableItem

// Nodes returns the host nodes of the segment in order
func (s Segment) Nodes() []interfaces.Node {
	nodes := make([]interfaces.Node, len(s))
	for i, item := range s {
		nodes[i] = item.Node
	}
	return nodes
}

// AttributeSorter turns the attributes of a tag into sortable segments and
// orders them
type AttributeSorter struct {
	options config.Resolved
	matcher common.Matcher
}

// NewAttributeSorter creates a sorter for resolved options. The matcher is
// shared by custom groups and partition comments.
func NewAttributeSorter(options config.Resolved, matcher common.Matcher) *AttributeSorter {
	return &AttributeSorter{options: options, matcher: matcher}
}

// Extract splits the attributes of tag into segments. Spread attributes end
// a segment and are left out; partition comments and blank lines end a
// segment when enabled.
func (s *AttributeSorter) Extract(tag interfaces.Tag, source interfaces.SourceCode) ([]Segment, error) {
	segments := []Segment{{}}
	var previous interfaces.Attribute

	for _, attribute := range tag.Attributes() {
		if attribute.Kind() == interfaces.KindSpread {
			segments = append(segments, Segment{})
			previous = nil
			continue
		}

		split, err := s.startsPartition(previous, attribute, source)
		if err != nil {
			return nil, err
		}
		if split {
			segments = append(segments, Segment{})
		}

		item, err := s.newItem(attribute, source)
		if err != nil {
			return nil, err
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], item)
		previous = attribute
	}

	return segments, nil
}

func (s *AttributeSorter) startsPartition(previous, current interfaces.Attribute, source interfaces.SourceCode) (bool, error) {
	if previous == nil {
		return false, nil
	}

	if s.options.PartitionByNewLine && hasBlankLineBetween(previous, current, source) {
		return true, nil
	}

	if s.options.PartitionByComment.Enabled() {
		for _, comment := range source.CommentsBefore(current) {
			if comment.Range().Start < previous.Range().End {
				continue
			}
			ok, err := s.options.PartitionByComment.IsPartitionComment(s.matcher, comment.Value())
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}

	return false, nil
}

func hasBlankLineBetween(left, right interfaces.Node, source interfaces.SourceCode) bool {
	between := source.Text()[left.Range().End:right.Range().Start]
	lines := strings.Split(between, "\n")
	if len(lines) < 3 {
		return false
	}
	for _, line := range lines[1 : len(lines)-1] {
		if strings.TrimSpace(line) == "" {
			return true
		}
	}
	return false
}

func (s *AttributeSorter) newItem(attribute interfaces.Attribute, source interfaces.SourceCode) (*interfaces.SortableItem, error) {
	name := Name(attribute, source)

	classifier := groups.NewClassifier(s.options.Groups)
	for _, intrinsic := range intrinsicGroups {
		if intrinsic.applies(attribute) {
			classifier.Define(intrinsic.label, false)
		}
	}
	if err := classifier.SetCustomGroups(s.matcher, s.options.CustomGroups, name, false); err != nil {
		return nil, err
	}

	r := attribute.Range()
	return &interfaces.SortableItem{
		Name:  name,
		Size:  common.UTF16Len(source.Text()[r.Start:r.End]),
		Group: classifier.Group(),
		Node:  attribute,
	}, nil
}

// Sort returns the target order of a segment
func (s *AttributeSorter) Sort(segment Segment) Segment {
	return groups.SortByGroups(segment, s.options.Groups, s.options.CompareOptions(), groups.Extra{})
}

// Rank returns the group rank of item under the configured declaration
func (s *AttributeSorter) Rank(item *interfaces.SortableItem) int {
	return s.options.Groups.Rank(item.GroupName())
}

// CheckIfSorted reports whether the segment already is in target order
func (s *AttributeSorter) CheckIfSorted(segment Segment) bool {
	sorted := s.Sort(segment)
	for i := range segment {
		if segment[i] != sorted[i] {
			return false
		}
	}
	return true
}
