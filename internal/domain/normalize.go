package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal whitespace runs.
// It is applied to user-supplied display fields such as full names and titles.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
