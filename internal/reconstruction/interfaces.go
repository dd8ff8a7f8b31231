package reconstruction

import (
	"github.com/mikededo/sort-svelte-attributes/internal/sorting/common"
)

// Options configures how node ranges are resolved while building fixes
type Options struct {
	// PartitionComment marks comments that are never pulled along with the
	// node below them
	PartitionComment common.PartitionComment
	// Matcher evaluates PartitionComment patterns
	Matcher common.Matcher
}

func (o Options) isPartitionComment(body string) (bool, error) {
	if !o.PartitionComment.Enabled() {
		return false, nil
	}
	m := o.Matcher
	if m == nil {
		var err error
		if m, err = common.NewMatcher(""); err != nil {
			return false, err
		}
	}
	return o.PartitionComment.IsPartitionComment(m, body)
}
