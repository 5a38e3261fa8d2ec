// Package container implements the generic collection types the rest of
// the engine is built on: a growable block, a keyed/ordered list, a
// fixed-bucket hash table, and a sorted set.
package container

// Block is a growable slice with an explicit capacity x 3/2 growth
// policy (append alone would pick its own growth factor, but keeping
// the policy visible documents the amortized cost the rest of the
// package relies on).
type Block[T any] struct {
	elems []T
}

// NewBlock returns an empty Block with no preallocated capacity.
func NewBlock[T any]() *Block[T] {
	return &Block[T]{}
}

// Len returns the number of elements in the block.
func (b *Block[T]) Len() int {
	return len(b.elems)
}

// At returns the element at index i.
func (b *Block[T]) At(i int) T {
	return b.elems[i]
}

// Set replaces the element at index i.
func (b *Block[T]) Set(i int, v T) {
	b.elems[i] = v
}

// Append adds v to the end of the block, growing capacity by 3/2 when
// the backing array is exhausted.
func (b *Block[T]) Append(v T) {
	if len(b.elems) == cap(b.elems) {
		b.grow()
	}
	b.elems = append(b.elems, v)
}

func (b *Block[T]) grow() {
	newCap := cap(b.elems) + cap(b.elems)/2
	if newCap < 4 {
		newCap = 4
	}
	grown := make([]T, len(b.elems), newCap)
	copy(grown, b.elems)
	b.elems = grown
}

// RemoveAt removes the element at index i, preserving order of the rest.
func (b *Block[T]) RemoveAt(i int) {
	b.elems = append(b.elems[:i], b.elems[i+1:]...)
}

// InsertAt inserts v before index i.
func (b *Block[T]) InsertAt(i int, v T) {
	var zero T
	b.elems = append(b.elems, zero)
	copy(b.elems[i+1:], b.elems[i:])
	b.elems[i] = v
}

// Each iterates the block in order, stopping early if fn returns false.
func (b *Block[T]) Each(fn func(int, T) bool) {
	for i, v := range b.elems {
		if !fn(i, v) {
			return
		}
	}
}

// Slice returns the block's elements as a plain slice. The caller must
// not mutate it if the block is reused afterward.
func (b *Block[T]) Slice() []T {
	return b.elems
}
