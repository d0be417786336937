package sliceutils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SearchLeft returns the leftmost index at which item could be inserted
// into the ascending-sorted seq while keeping it sorted.
func SearchLeft[T constraints.Ordered](seq []T, item T) int {
	return sort.Search(len(seq), func(i int) bool { return seq[i] >= item })
}

// InsertSorted inserts item into the ascending-sorted seq at the
// leftmost position that keeps it sorted and returns the grown slice.
// Duplicates are inserted, not collapsed.
func InsertSorted[T constraints.Ordered](seq []T, item T) []T {
	i := SearchLeft(seq, item)
	seq = append(seq, item)
	copy(seq[i+1:], seq[i:])
	seq[i] = item
	return seq
}
