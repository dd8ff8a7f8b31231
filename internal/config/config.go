package config

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/groups"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/strategies"
)

// SettingsKey is the shared settings entry read by the rule
const SettingsKey = "sort-svelte-attributes"

// Config is the content of a configuration file
type Config struct {
	// Preset names a recommended option set applied below Options
	Preset string `yaml:"preset"`
	// Options are the explicit rule options
	Options Options `yaml:"options"`
	// Settings are shared settings keyed by plugin; only SettingsKey is read
	Settings map[string]yaml.Node `yaml:"settings"`
	// Exclude lists path globs skipped during file discovery
	Exclude []string `yaml:"exclude"`
}

// Options are the rule options. Nil fields fall back to settings, then defaults.
type Options struct {
	CustomGroups      CustomGroups                  `yaml:"customGroups"`
	Groups            GroupList                     `yaml:"groups"`
	IgnoreCase        *bool                         `yaml:"ignoreCase"`
	Matcher           *interfaces.MatcherKind       `yaml:"matcher"`
	Order             *interfaces.SortOrder         `yaml:"order"`
	SpecialCharacters *interfaces.SpecialCharacters `yaml:"specialCharacters"`
	Type              *interfaces.SortType          `yaml:"type"`
}

// Merge returns o with every field set in over replacing its own
func (o Options) Merge(over Options) Options {
	if over.CustomGroups != nil {
		o.CustomGroups = over.CustomGroups
	}
	if over.Groups != nil {
		o.Groups = over.Groups
	}
	if over.IgnoreCase != nil {
		o.IgnoreCase = over.IgnoreCase
	}
	if over.Matcher != nil {
		o.Matcher = over.Matcher
	}
	if over.Order != nil {
		o.Order = over.Order
	}
	if over.SpecialCharacters != nil {
		o.SpecialCharacters = over.SpecialCharacters
	}
	if over.Type != nil {
		o.Type = over.Type
	}
	return o
}

// Settings are the file-level defaults shared under SettingsKey
type Settings struct {
	IgnoreCase         *bool                         `yaml:"ignoreCase"`
	IgnorePattern      []string                      `yaml:"ignorePattern"`
	Matcher            *interfaces.MatcherKind       `yaml:"matcher"`
	Order              *interfaces.SortOrder         `yaml:"order"`
	PartitionByComment *PartitionByComment           `yaml:"partitionByComment"`
	PartitionByNewLine *bool                         `yaml:"partitionByNewLine"`
	SpecialCharacters  *interfaces.SpecialCharacters `yaml:"specialCharacters"`
	Type               *interfaces.SortType          `yaml:"type"`
}

var allowedSettings = []string{
	"partitionByComment",
	"partitionByNewLine",
	"specialCharacters",
	"ignorePattern",
	"ignoreCase",
	"matcher",
	"order",
	"type",
}

// GetSettings extracts and validates the SettingsKey entry of shared settings
func GetSettings(shared map[string]yaml.Node) (Settings, error) {
	var settings Settings
	node, ok := shared[SettingsKey]
	if !ok || node.Kind == 0 {
		return settings, nil
	}
	if node.Kind != yaml.MappingNode {
		return settings, withDetail(ErrInvalidSettings, "expected a mapping at line %d", node.Line)
	}

	var invalid []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !slices.Contains(allowedSettings, key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		return settings, withDetail(ErrInvalidSettings, "%s", strings.Join(invalid, ", "))
	}

	if err := node.Decode(&settings); err != nil {
		return settings, errors.Wrap(err, "decoding shared settings")
	}
	return settings, nil
}

// Resolved is the immutable result of merging defaults, settings and options
type Resolved struct {
	CustomGroups       []groups.CustomGroup
	Groups             groups.Declaration
	IgnoreCase         bool
	Matcher            interfaces.MatcherKind
	Order              interfaces.SortOrder
	SpecialCharacters  interfaces.SpecialCharacters
	Type               interfaces.SortType
	IgnorePattern      []string
	PartitionByComment common.PartitionComment
	PartitionByNewLine bool
}

// Defaults returns the built-in option values
func Defaults() Resolved {
	return Resolved{
		CustomGroups:      []groups.CustomGroup{},
		Groups:            groups.Declaration{},
		IgnoreCase:        true,
		Matcher:           interfaces.MatcherGlob,
		Order:             interfaces.OrderAsc,
		SpecialCharacters: interfaces.SpecialKeep,
		Type:              interfaces.SortAlphabetical,
	}
}

// Complete merges defaults, then settings, then options, and validates the
// result. Explicit options win over settings, which win over defaults.
func Complete(options Options, settings Settings) (Resolved, error) {
	r := Defaults()

	if settings.IgnoreCase != nil {
		r.IgnoreCase = *settings.IgnoreCase
	}
	if settings.IgnorePattern != nil {
		r.IgnorePattern = settings.IgnorePattern
	}
	if settings.Matcher != nil {
		r.Matcher = *settings.Matcher
	}
	if settings.Order != nil {
		r.Order = *settings.Order
	}
	if settings.PartitionByComment != nil {
		r.PartitionByComment = common.PartitionComment(*settings.PartitionByComment)
	}
	if settings.PartitionByNewLine != nil {
		r.PartitionByNewLine = *settings.PartitionByNewLine
	}
	if settings.SpecialCharacters != nil {
		r.SpecialCharacters = *settings.SpecialCharacters
	}
	if settings.Type != nil {
		r.Type = *settings.Type
	}

	if options.CustomGroups != nil {
		r.CustomGroups = options.CustomGroups
	}
	if options.Groups != nil {
		r.Groups = groups.Declaration(options.Groups)
	}
	if options.IgnoreCase != nil {
		r.IgnoreCase = *options.IgnoreCase
	}
	if options.Matcher != nil {
		r.Matcher = *options.Matcher
	}
	if options.Order != nil {
		r.Order = *options.Order
	}
	if options.SpecialCharacters != nil {
		r.SpecialCharacters = *options.SpecialCharacters
	}
	if options.Type != nil {
		r.Type = *options.Type
	}

	if err := r.Validate(); err != nil {
		return Resolved{}, err
	}
	return r, nil
}

// Validate checks enum values and the group declaration
func (r Resolved) Validate() error {
	switch r.Matcher {
	case interfaces.MatcherGlob, interfaces.MatcherRegex:
	default:
		return withDetail(ErrInvalidOption, "unknown matcher %q", r.Matcher)
	}
	if _, err := strategies.NewFactory().CreateStrategy(r.CompareOptions()); err != nil {
		return withDetail(ErrInvalidOption, "%v", err)
	}
	return groups.Validate(r.Groups, r.CustomGroups)
}

// CompareOptions returns the comparator configuration of r
func (r Resolved) CompareOptions() interfaces.CompareOptions {
	return interfaces.CompareOptions{
		Type:              r.Type,
		Order:             r.Order,
		IgnoreCase:        r.IgnoreCase,
		SpecialCharacters: r.SpecialCharacters,
	}
}

// Resolve applies the preset, reads the shared settings and completes the options of cfg
func (c *Config) Resolve() (Resolved, error) {
	options := c.Options
	if c.Preset != "" {
		preset, err := Preset(c.Preset)
		if err != nil {
			return Resolved{}, err
		}
		options = preset.Merge(options)
	}

	settings, err := GetSettings(c.Settings)
	if err != nil {
		return Resolved{}, err
	}
	return Complete(options, settings)
}
