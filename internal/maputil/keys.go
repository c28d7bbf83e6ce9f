// Package maputil provides small helpers for deterministic map iteration.
package maputil

import "sort"

// SortedKeys returns the keys of m in ascending order.
// A nil or empty map yields an empty, non-nil slice so callers can range
// over the result without a nil check.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
