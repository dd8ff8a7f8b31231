package attributes

import (
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/groups"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// intrinsicGroups are the predefined groups, evaluated in order before any
// custom group. Every group whose predicate holds is defined without
// override, so the first declared one wins.
var intrinsicGroups = []struct {
	label   string
	applies func(interfaces.Attribute) bool
}{
	{groups.SvelteShorthand, isSvelteShorthand},
	{groups.Shorthand, isSvelteShorthand},
	{groups.Shorthand, isValueless},
	{groups.Multiline, isMultiline},
}

func isSvelteShorthand(a interfaces.Attribute) bool {
	return a.Kind() == interfaces.KindShorthand
}

// isValueless covers bare attributes such as `disabled` and directives
// without an expression such as `on:click`
func isValueless(a interfaces.Attribute) bool {
	return !a.HasValue()
}

func isMultiline(a interfaces.Attribute) bool {
	loc := a.Loc()
	return loc.Start.Line != loc.End.Line
}

// Name returns the identity of an attribute used for comparison and custom
// group matching
func Name(a interfaces.Attribute, source interfaces.SourceCode) string {
	raw := func() string {
		r := a.Key().Range()
		return source.Text()[r.Start:r.End]
	}

	if a.Kind() == interfaces.KindSpecialDirective {
		return raw()
	}
	if name := a.KeyName(); name != "" {
		return name
	}
	return raw()
}
