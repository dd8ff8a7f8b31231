package groups

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Predefined group labels
const (
	SvelteShorthand = "svelte-shorthand"
	Multiline       = "multiline"
	Shorthand       = "shorthand"
	Unknown         = interfaces.UnknownGroup
)

// Predefined lists the labels usable in a declaration without a custom group
var Predefined = []string{SvelteShorthand, Multiline, Shorthand, Unknown}

var (
	ErrInvalidGroups    = errors.New("invalid group(s)")
	ErrDuplicatedGroups = errors.New("duplicated group(s)")
)

// GroupError names the offending labels of a rejected declaration
type GroupError struct {
	Kind   error
	Labels []string
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Labels, ", "))
}

func (e *GroupError) Unwrap() error {
	return e.Kind
}

// Entry is one rank of a declaration: a single label or a set of co-equal labels
type Entry []string

// Contains reports whether label belongs to the entry
func (e Entry) Contains(label string) bool {
	return slices.Contains(e, label)
}

// Declaration is the ordered group precedence list
type Declaration []Entry

// Rank returns the index of the first entry containing group, or len(d)
// when no entry does
func (d Declaration) Rank(group string) int {
	for i, entry := range d {
		if entry.Contains(group) {
			return i
		}
	}
	return len(d)
}

// Labels returns every label in declaration order
func (d Declaration) Labels() []string {
	var labels []string
	for _, entry := range d {
		labels = append(labels, entry...)
	}
	return labels
}

// Contains reports whether label appears anywhere in the declaration
func (d Declaration) Contains(label string) bool {
	return d.Rank(label) < len(d)
}

// CustomGroup maps a label to the patterns matched against item names
type CustomGroup struct {
	Label    string
	Patterns []string
}

// Validate rejects labels that are neither predefined nor custom, then
// labels declared more than once
func Validate(d Declaration, customGroups []CustomGroup) error {
	allowed := slices.Clone(Predefined)
	for _, group := range customGroups {
		allowed = append(allowed, group.Label)
	}

	var invalid []string
	for _, label := range d.Labels() {
		if !slices.Contains(allowed, label) {
			invalid = append(invalid, label)
		}
	}
	if len(invalid) > 0 {
		return &GroupError{Kind: ErrInvalidGroups, Labels: invalid}
	}

	return ValidateNoDuplicates(d)
}

// ValidateNoDuplicates fails when a label occurs in more than one place
func ValidateNoDuplicates(d Declaration) error {
	seen := make(map[string]bool)
	var duplicated []string
	for _, label := range d.Labels() {
		if seen[label] && !slices.Contains(duplicated, label) {
			duplicated = append(duplicated, label)
		}
		seen[label] = true
	}
	if len(duplicated) > 0 {
		return &GroupError{Kind: ErrDuplicatedGroups, Labels: duplicated}
	}
	return nil
}
