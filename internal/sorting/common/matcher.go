package common

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// ErrBadPattern is returned when a custom group or partition pattern cannot be compiled
var ErrBadPattern = errors.New("bad pattern")

// Matcher tests a value against a user pattern
type Matcher interface {
	Match(value, pattern string) (bool, error)
}

// MatcherFunc adapts a function to Matcher
type MatcherFunc func(value, pattern string) (bool, error)

// Match calls f(value, pattern)
func (f MatcherFunc) Match(value, pattern string) (bool, error) {
	return f(value, pattern)
}

// NewMatcher resolves the configured engine into a Matcher
func NewMatcher(kind interfaces.MatcherKind) (Matcher, error) {
	switch kind {
	case interfaces.MatcherGlob, "":
		return MatcherFunc(globMatch), nil
	case interfaces.MatcherRegex:
		return &regexMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", kind)
	}
}

// globMatch matches value against a glob. Patterns are never treated as
// comments; a leading "!" negates the pattern.
func globMatch(value, pattern string) (bool, error) {
	negate := false
	for strings.HasPrefix(pattern, "!") {
		negate = !negate
		pattern = pattern[1:]
	}

	ok, err := doublestar.Match(pattern, value)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
	}
	return ok != negate, nil
}

// regexMatcher compiles each distinct pattern once
type regexMatcher struct {
	cache sync.Map // pattern -> *regexp.Regexp
}

func (m *regexMatcher) Match(value, pattern string) (bool, error) {
	if cached, ok := m.cache.Load(pattern); ok {
		return cached.(*regexp.Regexp).MatchString(value), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
	}
	m.cache.Store(pattern, re)
	return re.MatchString(value), nil
}

// MatchAny reports whether value matches at least one of patterns
func MatchAny(m Matcher, value string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := m.Match(value, pattern)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
