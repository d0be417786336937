package set

// Set is the common surface of the membership containers in this package.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	InsertSlice(items []T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
}
