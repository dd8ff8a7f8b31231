package common

import "strings"

// PartitionComment describes which comments act as partition boundaries.
// All marks every comment as a boundary; otherwise a comment is a boundary
// when its trimmed body matches one of Patterns.
type PartitionComment struct {
	All      bool
	Patterns []string
}

// Enabled reports whether any comment can be a boundary
func (p PartitionComment) Enabled() bool {
	return p.All || len(p.Patterns) > 0
}

// IsPartitionComment reports whether the comment body marks a partition
func (p PartitionComment) IsPartitionComment(m Matcher, comment string) (bool, error) {
	if p.All {
		return true, nil
	}
	if len(p.Patterns) == 0 {
		return false, nil
	}
	return MatchAny(m, strings.TrimSpace(comment), p.Patterns)
}
