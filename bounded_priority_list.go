package kdtree

import (
	"cmp"
	"slices"
	"sort"
)

type priorityItem[E any, P cmp.Ordered] struct {
	elem     E
	priority P
}

// BoundedPriorityList keeps the best Cap() elements seen so far, sorted by
// priority. In ascending mode lower priorities are better and At(0) is the
// lowest; in descending mode the reverse.
//
// A BoundedPriorityList is not safe for concurrent use. Each k-NN query
// creates its own.
type BoundedPriorityList[E any, P cmp.Ordered] struct {
	ascending bool
	capacity  int
	items     []priorityItem[E, P]
}

// NewBoundedPriorityList returns an empty list holding at most capacity
// elements. Panics if capacity < 1.
func NewBoundedPriorityList[E any, P cmp.Ordered](capacity int, ascending bool) *BoundedPriorityList[E, P] {
	if capacity < 1 {
		panic("kdtree: BoundedPriorityList capacity must be >= 1")
	}
	return &BoundedPriorityList[E, P]{
		ascending: ascending,
		capacity:  capacity,
		items:     make([]priorityItem[E, P], 0, capacity),
	}
}

// better reports whether priority a ranks strictly ahead of b. NaN ranks
// behind every other priority in both modes.
func (l *BoundedPriorityList[E, P]) better(a, b P) bool {
	switch {
	case isNaN(a):
		return false
	case isNaN(b):
		return true
	case l.ascending:
		return a < b
	default:
		return a > b
	}
}

func isNaN[P cmp.Ordered](x P) bool { return x != x }

// Add offers elem with the given priority. When the list is full, elem is
// kept only if it is strictly better than the current worst entry, which is
// then evicted. Equal priorities keep insertion order.
func (l *BoundedPriorityList[E, P]) Add(elem E, priority P) {
	n := len(l.items)
	if n == l.capacity {
		if !l.better(priority, l.items[n-1].priority) {
			return
		}
		l.items = l.items[:n-1]
		n--
	}
	// First position whose priority ranks behind the new one.
	pos := sort.Search(n, func(i int) bool {
		return l.better(priority, l.items[i].priority)
	})
	l.items = slices.Insert(l.items, pos, priorityItem[E, P]{elem: elem, priority: priority})
}

// At returns the i-th best element. Panics if i is out of range.
func (l *BoundedPriorityList[E, P]) At(i int) E { return l.items[i].elem }

// PriorityAt returns the priority of the i-th best element.
func (l *BoundedPriorityList[E, P]) PriorityAt(i int) P { return l.items[i].priority }

// Len returns the number of stored elements.
func (l *BoundedPriorityList[E, P]) Len() int { return len(l.items) }

// Cap returns the fixed capacity.
func (l *BoundedPriorityList[E, P]) Cap() int { return l.capacity }

// IsFull reports whether Len() == Cap().
func (l *BoundedPriorityList[E, P]) IsFull() bool { return len(l.items) == l.capacity }

// Worst returns the priority of the last (worst) stored element.
// ok is false when the list is empty.
func (l *BoundedPriorityList[E, P]) Worst() (priority P, ok bool) {
	if len(l.items) == 0 {
		return priority, false
	}
	return l.items[len(l.items)-1].priority, true
}

// Elements returns a copy of the stored elements, best first.
func (l *BoundedPriorityList[E, P]) Elements() []E {
	out := make([]E, len(l.items))
	for i, it := range l.items {
		out[i] = it.elem
	}
	return out
}

// Reset empties the list, keeping its capacity.
func (l *BoundedPriorityList[E, P]) Reset() {
	clear(l.items)
	l.items = l.items[:0]
}
