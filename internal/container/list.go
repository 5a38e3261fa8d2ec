package container

import "sort"

// List is a Block with an optional key/comparator pair. Once Sort has
// been called and no mutation has invalidated it, Find uses binary
// search; otherwise it falls back to a linear scan. Its isSorted flag
// clears on any mutation that might break order.
type List[T any] struct {
	block    *Block[T]
	key      func(T) string
	compare  func(a, b string) int
	isSorted bool
}

// NewList creates a List keyed and ordered by the given functions. Both
// may be nil for a list that is never sorted or searched by key.
func NewList[T any](key func(T) string, compare func(a, b string) int) *List[T] {
	return &List[T]{block: NewBlock[T](), key: key, compare: compare}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.block.Len() }

// At returns the element at index i.
func (l *List[T]) At(i int) T { return l.block.At(i) }

// IsSorted reports whether the list is currently known to be sorted.
func (l *List[T]) IsSorted() bool { return l.isSorted }

// Append adds v to the end of the list. A previously sorted list loses
// its sorted flag unless it is empty — a conservative invalidation
// rule that never mistakenly treats an unsorted list as sorted.
func (l *List[T]) Append(v T) {
	wasEmpty := l.block.Len() == 0
	l.block.Append(v)
	if !wasEmpty {
		l.isSorted = false
	}
}

// Prepend adds v to the front of the list.
func (l *List[T]) Prepend(v T) {
	l.block.InsertAt(0, v)
	l.isSorted = false
}

// InsertAt inserts v before index i.
func (l *List[T]) InsertAt(i int, v T) {
	l.block.InsertAt(i, v)
	l.isSorted = false
}

// RemoveAt removes the element at index i. Removal never un-sorts an
// already-sorted list.
func (l *List[T]) RemoveAt(i int) {
	l.block.RemoveAt(i)
}

// RemoveFirst removes the first element, if any.
func (l *List[T]) RemoveFirst() {
	if l.block.Len() > 0 {
		l.block.RemoveAt(0)
	}
}

// RemoveLast removes the last element, if any.
func (l *List[T]) RemoveLast() {
	if n := l.block.Len(); n > 0 {
		l.block.RemoveAt(n - 1)
	}
}

// Each iterates elements in current order.
func (l *List[T]) Each(fn func(int, T) bool) {
	l.block.Each(fn)
}

// Slice returns the current elements in order.
func (l *List[T]) Slice() []T {
	return l.block.Slice()
}

// Sort sorts the list in place by the key comparator, using
// sort.Slice's introsort: not stable, O(n log n).
func (l *List[T]) Sort() {
	if l.compare == nil || l.key == nil {
		return
	}
	elems := l.block.elems
	sort.Slice(elems, func(i, j int) bool {
		return l.compare(l.key(elems[i]), l.key(elems[j])) < 0
	})
	l.isSorted = true
}

// Find looks up the element with the given key. If the list is sorted
// it binary searches; otherwise it scans linearly. The zero value and
// false are returned on a miss.
func (l *List[T]) Find(k string) (T, bool) {
	var zero T
	if l.key == nil || l.compare == nil {
		return zero, false
	}
	elems := l.block.elems
	if l.isSorted {
		i := sort.Search(len(elems), func(i int) bool {
			return l.compare(l.key(elems[i]), k) >= 0
		})
		if i < len(elems) && l.compare(l.key(elems[i]), k) == 0 {
			return elems[i], true
		}
		return zero, false
	}
	for _, e := range elems {
		if l.compare(l.key(e), k) == 0 {
			return e, true
		}
	}
	return zero, false
}

// Unique compacts adjacent equal-keyed elements, requiring the list to
// already be sorted (the caller must Sort first; Unique panics with a
// clear message otherwise rather than silently producing a wrong
// result).
func (l *List[T]) Unique() {
	if !l.isSorted {
		panic("container: List.Unique requires a prior Sort")
	}
	elems := l.block.elems
	if len(elems) == 0 {
		return
	}
	out := elems[:1]
	for _, e := range elems[1:] {
		if l.compare(l.key(out[len(out)-1]), l.key(e)) != 0 {
			out = append(out, e)
		}
	}
	l.block.elems = out
}
