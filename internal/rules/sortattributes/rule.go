// Package sortattributes enforces the order of attributes on svelte tags.
package sortattributes

import (
	"path/filepath"

	"github.com/mikededo/sort-svelte-attributes/internal/config"
	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/reconstruction"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/types/attributes"
)

const (
	Name        = "sort-attributes"
	description = "Enforce sorted Svelte attributes."

	MessageOrder      = "unexpectedSvelteAttributesOrder"
	MessageGroupOrder = "unexpectedSvelteAttributesGroupOrder"
)

var messages = map[string]string{
	MessageGroupOrder: `Expected "{{right}}" ({{rightGroup}}) to come before "{{left}}" ({{leftGroup}}).`,
	MessageOrder:      `Expected "{{right}}" to come before "{{left}}".`,
}

func init() {
	lint.Register(lint.Definition{
		Name:        Name,
		Description: description,
		Fixable:     true,
		New: func(cfg *config.Config) (lint.Rule, error) {
			r, err := NewFromConfig(cfg)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})
}

// Rule reports and fixes attributes that are out of order
type Rule struct {
	options config.Resolved
	matcher common.Matcher
	sorter  *attributes.AttributeSorter
	ranges  reconstruction.Options
}

// New resolves options over settings and defaults. Invalid configuration is
// reported here, before any file is checked.
func New(options config.Options, settings config.Settings) (*Rule, error) {
	resolved, err := config.Complete(options, settings)
	if err != nil {
		return nil, err
	}
	return newRule(resolved)
}

// NewFromConfig builds the rule from a loaded configuration file
func NewFromConfig(cfg *config.Config) (*Rule, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	return newRule(resolved)
}

func newRule(resolved config.Resolved) (*Rule, error) {
	matcher, err := common.NewMatcher(resolved.Matcher)
	if err != nil {
		return nil, err
	}

	return &Rule{
		options: resolved,
		matcher: matcher,
		sorter:  attributes.NewAttributeSorter(resolved, matcher),
		ranges: reconstruction.Options{
			PartitionComment: resolved.PartitionByComment,
			Matcher:          matcher,
		},
	}, nil
}

func (r *Rule) Name() string { return Name }

func (r *Rule) Description() string { return description }

func (r *Rule) Messages() map[string]string { return messages }

// Options returns the resolved options of the rule
func (r *Rule) Options() config.Resolved { return r.options }

// Check reports every adjacent pair of attributes whose order is inverted
// in the target order. Each report carries the fix for its whole segment.
func (r *Rule) Check(ctx *lint.Context, tag interfaces.Tag) error {
	if filepath.Ext(ctx.Filename) != ".svelte" || len(tag.Attributes()) <= 1 {
		return nil
	}

	if len(r.options.IgnorePattern) > 0 {
		ignored, err := common.MatchAny(r.matcher, tag.Name(), r.options.IgnorePattern)
		if err != nil {
			return err
		}
		if ignored {
			return nil
		}
	}

	segments, err := r.sorter.Extract(tag, ctx.Source)
	if err != nil {
		return err
	}

	for _, segment := range segments {
		if len(segment) < 2 || r.sorter.CheckIfSorted(segment) {
			continue
		}
		if err := r.checkSegment(ctx, segment); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rule) checkSegment(ctx *lint.Context, segment attributes.Segment) error {
	sorted := r.sorter.Sort(segment)

	position := make(map[*interfaces.SortableItem]int, len(sorted))
	for i, item := range sorted {
		position[item] = i
	}

	for i := 1; i < len(segment); i++ {
		left, right := segment[i-1], segment[i]
		if position[left] <= position[right] {
			continue
		}

		messageID := MessageOrder
		if r.sorter.Rank(left) != r.sorter.Rank(right) {
			messageID = MessageGroupOrder
		}

		err := ctx.Report(lint.Descriptor{
			MessageID: messageID,
			Data: map[string]string{
				"left":       left.Name,
				"leftGroup":  left.GroupName(),
				"right":      right.Name,
				"rightGroup": right.GroupName(),
			},
			Node: right.Node,
			Fix: func(fixer interfaces.Fixer) ([]interfaces.Edit, error) {
				return reconstruction.MakeFixes(fixer, ctx.Source, segment.Nodes(), sorted.Nodes(), r.ranges)
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
