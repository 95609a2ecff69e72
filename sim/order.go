package sim

import (
	"cmp"
	"slices"
)

// ascending orders track numbers from low to high.
func ascending(a, b int) int {
	return cmp.Compare(a, b)
}

// sortedCopy returns the requests sorted ascending, leaving the input untouched.
func sortedCopy(requests []int) []int {
	sorted := slices.Clone(requests)
	slices.SortFunc(sorted, ascending)
	return sorted
}
