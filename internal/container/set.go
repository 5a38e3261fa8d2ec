package container

// Set is a sorted List used as a membership structure: Add keeps the
// list sorted and duplicate-free, Contains binary searches. A StringSet
// is a Set keyed by the string's own identity.
type Set[T any] struct {
	list    *List[T]
	keyOf   func(T) string
	compare func(a, b string) int
}

// NewSet creates an empty Set ordered by the given key/comparator.
func NewSet[T any](key func(T) string, compare func(a, b string) int) *Set[T] {
	return &Set[T]{
		list:    NewList[T](key, compare),
		keyOf:   key,
		compare: compare,
	}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.list.Len() }

// Slice returns the elements in sorted order.
func (s *Set[T]) Slice() []T { return s.list.Slice() }

// Contains reports whether an element with key k is present.
func (s *Set[T]) Contains(k string) bool {
	if !s.list.IsSorted() {
		s.list.Sort()
	}
	_, ok := s.list.Find(k)
	return ok
}

// Add inserts v if no element with the same key is already present.
func (s *Set[T]) Add(v T) {
	if s.Contains(s.keyOf(v)) {
		return
	}
	s.list.Append(v)
	s.list.Sort()
}

// Remove deletes the element with key k, if present.
func (s *Set[T]) Remove(k string) {
	if !s.list.IsSorted() {
		s.list.Sort()
	}
	elems := s.list.Slice()
	for i, e := range elems {
		if s.compare(s.keyOf(e), k) == 0 {
			s.list.RemoveAt(i)
			return
		}
	}
}

// StringSet is a Set of strings keyed by their own value.
func NewStringSet() *Set[string] {
	return NewSet[string](
		func(s string) string { return s },
		func(a, b string) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		},
	)
}
