package config

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/groups"
)

var (
	// ErrInvalidSettings is returned for unknown keys under the shared settings key
	ErrInvalidSettings = errors.New("invalid 'sort-svelte-attributes' setting(s)")
	// ErrInvalidOption is returned for an option value outside its allowed set
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnknownPreset is returned when a preset name is not recognised
	ErrUnknownPreset = errors.New("unknown preset")

	ErrInvalidGroups    = groups.ErrInvalidGroups
	ErrDuplicatedGroups = groups.ErrDuplicatedGroups
)

// DetailError qualifies one of the sentinel errors above with the offending
// value. errors.Is matches it against its Kind.
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string { return e.Kind.Error() + ": " + e.Detail }

func (e *DetailError) Unwrap() error { return e.Kind }

func withDetail(kind error, format string, args ...interface{}) error {
	return errors.WithStack(&DetailError{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
