// Package sequence implements the query layer: the Sequence value
// and the relational navigators and set-algebra
// operations built on it. Grounded function-by-function on
// DeadEndsLib/Interp/sequence.c.
package sequence

import (
	"fmt"
	"sort"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
)

// SortState records whether, and how, a Sequence is currently ordered.
type SortState int

const (
	Unsorted SortState = iota
	SortedByKey
	SortedByName
)

type element struct {
	root  gnode.Ref
	name  string // cached display name; populated lazily, see SPEC_FULL.md
	value any    // opaque per-element payload (e.g. a script tagged value)
}

// Sequence is an ordered collection of record references with optional
// per-element payloads, plus sort/uniqueness state.
// Sequences are non-owning: they reference records in a RecordIndex but
// never own the arena.
type Sequence struct {
	index    *index.RecordIndex
	elements []element
	sorted   SortState
	unique   bool
	nameOf   func(gnode.Ref) string
}

// New creates an empty Sequence over idx. nameOf computes a record's
// display name on demand (e.g. the `name` builtin for persons); pass
// nil to fall back to the record's key.
func New(idx *index.RecordIndex, nameOf func(gnode.Ref) string) *Sequence {
	return &Sequence{index: idx, sorted: Unsorted, unique: true, nameOf: nameOf}
}

// Index returns the Sequence's backing RecordIndex.
func (s *Sequence) Index() *index.RecordIndex { return s.index }

// Len returns the number of elements.
func (s *Sequence) Len() int { return len(s.elements) }

// Root returns the record Ref at position i (0-based).
func (s *Sequence) Root(i int) gnode.Ref { return s.elements[i].root }

// Value returns the opaque payload at position i.
func (s *Sequence) Value(i int) any { return s.elements[i].value }

// SortState reports the current sort state.
func (s *Sequence) SortState() SortState { return s.sorted }

// IsUnique reports whether the sequence is currently known to be
// duplicate-free.
func (s *Sequence) IsUnique() bool { return s.unique }

// key returns the record key backing element i.
func (s *Sequence) key(i int) string {
	return s.index.Arena().Key(s.elements[i].root)
}

func (s *Sequence) displayName(i int) string {
	e := &s.elements[i]
	if e.name == "" && s.nameOf != nil {
		e.name = s.nameOf(e.root)
	}
	return e.name
}

// Append adds a record with an opaque value to the end of the
// sequence. Appending to an empty sequence leaves it trivially sorted;
// appending to a non-empty sequence clears the sort flag, the safe
// conservative rule.3 calls out explicitly.
func (s *Sequence) Append(root gnode.Ref, value any) {
	wasEmpty := len(s.elements) == 0
	s.elements = append(s.elements, element{root: root, value: value})
	if !wasEmpty {
		s.sorted = Unsorted
	}
}

// Clone returns a shallow copy of the sequence (same backing index,
// independent element slice).
func (s *Sequence) Clone() *Sequence {
	cp := &Sequence{
		index:    s.index,
		elements: append([]element(nil), s.elements...),
		sorted:   s.sorted,
		unique:   s.unique,
		nameOf:   s.nameOf,
	}
	return cp
}

// KeySort sorts the sequence by record key. Idempotent.
func (s *Sequence) KeySort() {
	if s.sorted == SortedByKey {
		return
	}
	arena := s.index.Arena()
	sort.SliceStable(s.elements, func(i, j int) bool {
		return gnode.CompareKeys(arena.Key(s.elements[i].root), arena.Key(s.elements[j].root)) < 0
	})
	s.sorted = SortedByKey
}

// NameSort sorts the sequence by display name, falling back to key for
// equal or missing names. Idempotent.
func (s *Sequence) NameSort() {
	if s.sorted == SortedByName {
		return
	}
	for i := range s.elements {
		s.displayName(i)
	}
	arena := s.index.Arena()
	sort.SliceStable(s.elements, func(i, j int) bool {
		if s.elements[i].name != s.elements[j].name {
			return s.elements[i].name < s.elements[j].name
		}
		return gnode.CompareKeys(arena.Key(s.elements[i].root), arena.Key(s.elements[j].root)) < 0
	})
	s.sorted = SortedByName
}

// Unique returns a new sequence with duplicate keys removed (first
// occurrence wins). It requires the sequence to already be key-sorted.
func (s *Sequence) Unique() (*Sequence, error) {
	if s.sorted != SortedByKey {
		return nil, fmt.Errorf("sequence: Unique requires a prior KeySort")
	}
	out := s.Clone()
	out.uniqueInPlaceSorted()
	return out, nil
}

// UniqueInPlace mutates the sequence to remove duplicate keys. It
// requires the sequence to already be key-sorted.
func (s *Sequence) UniqueInPlace() error {
	if s.sorted != SortedByKey {
		return fmt.Errorf("sequence: UniqueInPlace requires a prior KeySort")
	}
	s.uniqueInPlaceSorted()
	return nil
}

func (s *Sequence) uniqueInPlaceSorted() {
	if len(s.elements) == 0 {
		s.unique = true
		return
	}
	arena := s.index.Arena()
	out := s.elements[:1]
	for _, e := range s.elements[1:] {
		if arena.Key(out[len(out)-1].root) != arena.Key(e.root) {
			out = append(out, e)
		}
	}
	s.elements = out
	s.unique = true
}

// IsInSequence reports whether a record with the given key is present
// (a linear scan, whatever the sort state).
func (s *Sequence) IsInSequence(key string) bool {
	for i := range s.elements {
		if s.key(i) == key {
			return true
		}
	}
	return false
}

// Each iterates elements in current order, exposing the 1-based count
//.3's iteration contract, stopping early if fn returns
// false.
func (s *Sequence) Each(fn func(root gnode.Ref, count int, value any) bool) {
	for i, e := range s.elements {
		if !fn(e.root, i+1, e.value) {
			return
		}
	}
}

// ensureUniqueKeySorted returns a key-sorted, unique clone (the
// precondition set-algebra operations share).
func ensureUniqueKeySorted(s *Sequence) *Sequence {
	cp := s.Clone()
	cp.KeySort()
	cp.uniqueInPlaceSorted()
	return cp
}
