package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/groups"
)

// CustomGroups is the customGroups mapping, kept in file order
type CustomGroups []groups.CustomGroup

// UnmarshalYAML reads `label: pattern` or `label: [patterns...]` entries
func (c *CustomGroups) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: customGroups must be a mapping", value.Line)
	}

	out := make(CustomGroups, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		label := value.Content[i].Value
		patterns, err := stringOrList(value.Content[i+1])
		if err != nil {
			return errors.Wrapf(err, "customGroups.%s", label)
		}
		out = append(out, groups.CustomGroup{Label: label, Patterns: patterns})
	}
	*c = out
	return nil
}

// GroupList is the groups option: each entry is a label or a list of labels
type GroupList []groups.Entry

func (g *GroupList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: groups must be a list", value.Line)
	}

	out := make(GroupList, 0, len(value.Content))
	for _, item := range value.Content {
		labels, err := stringOrList(item)
		if err != nil {
			return errors.Wrap(err, "groups")
		}
		out = append(out, groups.Entry(labels))
	}
	*g = out
	return nil
}

// PartitionByComment accepts true/false, a single pattern or a list of patterns
type PartitionByComment common.PartitionComment

func (p *PartitionByComment) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!bool" {
		var all bool
		if err := value.Decode(&all); err != nil {
			return err
		}
		*p = PartitionByComment{All: all}
		return nil
	}

	patterns, err := stringOrList(value)
	if err != nil {
		return errors.Wrap(err, "partitionByComment")
	}
	*p = PartitionByComment{Patterns: patterns}
	return nil
}

func stringOrList(value *yaml.Node) ([]string, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		return []string{value.Value}, nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, errors.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}
