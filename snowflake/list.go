package snowflake

import (
	"sort"

	"github.com/denismitr/discordkit/sliceutils"
)

// List stores snowflakes in a contiguous ascending-sorted slice.
//
// Compared to a map-backed set it trades O(1) insertion for dense
// memory layout and O(log n) search, which pays off when holding large
// numbers of IDs (all members of a big guild) that are looked up far
// more often than they are inserted.
//
//   - O(n) iteration
//   - O(n log n) initial creation if data is unsorted
//   - O(log n) search
//   - O(n) insertion
//
// A List is not safe for concurrent use.
type List struct {
	ids []ID
}

// NewList builds a List from ids. The input is copied. When sorted is
// false the copy is sorted first; when sorted is true the caller
// promises the input is already ascending - lying here silently breaks
// every subsequent search.
func NewList(ids []ID, sorted bool) *List {
	buf := make([]ID, len(ids))
	copy(buf, ids)
	if !sorted {
		sort.Slice(buf, func(i, j int) bool { return buf[i] < buf[j] })
	}
	return &List{ids: buf}
}

// Add inserts id at the leftmost position that keeps the list sorted.
// It does not deduplicate: adding a present id stores a second copy.
// Callers doing set union/difference bookkeeping rely on that.
func (l *List) Add(id ID) {
	l.ids = sliceutils.InsertSorted(l.ids, id)
}

// Get returns the stored id equal to the argument, if any.
func (l *List) Get(id ID) (ID, bool) {
	i := sliceutils.SearchLeft(l.ids, id)
	if i != len(l.ids) && l.ids[i] == id {
		return l.ids[i], true
	}
	return 0, false
}

// Has reports whether id is present.
func (l *List) Has(id ID) bool {
	i := sliceutils.SearchLeft(l.ids, id)
	return i != len(l.ids) && l.ids[i] == id
}

func (l *List) Len() int {
	return len(l.ids)
}

// At returns the i-th smallest id. It panics if i is out of range,
// same as indexing a slice.
func (l *List) At(i int) ID {
	return l.ids[i]
}

// Items returns a copy of the ids in ascending order.
func (l *List) Items() []ID {
	items := make([]ID, len(l.ids))
	copy(items, l.ids)
	return items
}

// ForEach calls f for every id in ascending order.
func (l *List) ForEach(f func(ID)) {
	for _, id := range l.ids {
		f(id)
	}
}
