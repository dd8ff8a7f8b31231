package groups

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

func TestDeclarationRank(t *testing.T) {
	decl := Declaration{{Unknown}, {SvelteShorthand, Shorthand}}

	assert.Equal(t, 0, decl.Rank(Unknown))
	assert.Equal(t, 1, decl.Rank(SvelteShorthand))
	assert.Equal(t, 1, decl.Rank(Shorthand))
	assert.Equal(t, 2, decl.Rank(Multiline))
	assert.Equal(t, 0, Declaration{}.Rank(Unknown))
}

func TestValidate(t *testing.T) {
	custom := []CustomGroup{{Label: "a"}, {Label: "b"}, {Label: "c"}}

	t.Run("duplicated label", func(t *testing.T) {
		err := Validate(Declaration{{"a"}, {"b"}, {"a", "c"}}, custom)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicatedGroups))
		assert.Equal(t, "duplicated group(s): a", err.Error())
	})

	t.Run("unknown label", func(t *testing.T) {
		err := Validate(Declaration{{"a"}, {"x"}, {"y", Shorthand}}, custom)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidGroups))
		assert.Equal(t, "invalid group(s): x, y", err.Error())
	})

	t.Run("invalid reported before duplicated", func(t *testing.T) {
		err := Validate(Declaration{{"x"}, {"x"}}, nil)
		assert.True(t, errors.Is(err, ErrInvalidGroups))
	})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(Declaration{{Multiline}, {"a", Unknown}, {Shorthand, SvelteShorthand}}, custom))
		assert.NoError(t, Validate(nil, nil))
	})
}

func TestClassifier(t *testing.T) {
	matcher, err := common.NewMatcher(interfaces.MatcherGlob)
	require.NoError(t, err)

	custom := []CustomGroup{
		{Label: "events", Patterns: []string{"on:*"}},
		{Label: "handlers", Patterns: []string{"on:c*", "bind:*"}},
	}

	testCases := []struct {
		description string
		decl        Declaration
		intrinsic   []string
		name        string
		override    bool
		expect      string
	}{
		{
			description: "nothing matches",
			decl:        Declaration{{"events"}},
			name:        "class",
			expect:      Unknown,
		},
		{
			description: "first custom match wins",
			decl:        Declaration{{"events"}, {"handlers"}},
			name:        "on:click",
			expect:      "events",
		},
		{
			description: "override keeps the newest match",
			decl:        Declaration{{"events"}, {"handlers"}},
			name:        "on:click",
			override:    true,
			expect:      "handlers",
		},
		{
			description: "undeclared labels are never assigned",
			decl:        Declaration{{"handlers"}},
			name:        "on:click",
			expect:      "handlers",
		},
		{
			description: "intrinsic predicates run before custom groups",
			decl:        Declaration{{"events"}, {Shorthand}},
			intrinsic:   []string{Shorthand},
			name:        "on:click",
			expect:      Shorthand,
		},
		{
			description: "svelte shorthand precedes shorthand",
			decl:        Declaration{{Shorthand}, {SvelteShorthand}},
			intrinsic:   []string{SvelteShorthand, Shorthand},
			name:        "value",
			expect:      SvelteShorthand,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			c := NewClassifier(tc.decl)
			for _, label := range tc.intrinsic {
				c.Define(label, false)
			}
			require.NoError(t, c.SetCustomGroups(matcher, custom, tc.name, tc.override))
			assert.Equal(t, tc.expect, c.Group())
		})
	}
}

func TestClassifierBadPattern(t *testing.T) {
	matcher, err := common.NewMatcher(interfaces.MatcherRegex)
	require.NoError(t, err)

	c := NewClassifier(Declaration{{"broken"}})
	err = c.SetCustomGroups(matcher, []CustomGroup{{Label: "broken", Patterns: []string{"("}}}, "a", false)
	assert.True(t, errors.Is(err, common.ErrBadPattern))
}
