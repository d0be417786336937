package sliceutils

import (
	"github.com/denismitr/discordkit/set"
)

// Unique removes duplicates from seq keeping the first occurrence
// of every element in its original position.
func Unique[T comparable](seq []T) []T {
	s := set.NewOrderedSet[T]()
	s.InsertSlice(seq)
	return s.Items()
}
