package sequence

import (
	"fmt"

	"github.com/cacack/deadends/internal/gnode"
)

// requireSameIndex fails fast if two sequences don't share a backing
// record index.
func requireSameIndex(a, b *Sequence) error {
	if a.index != b.index {
		return fmt.Errorf("sequence: operands must share a record index")
	}
	return nil
}

// Union returns a new, key-sorted, unique sequence containing every
// record in either a or b. Both operands are first key-sorted and
// uniquified (ensured, not merely assumed).
func Union(a, b *Sequence) (*Sequence, error) {
	if err := requireSameIndex(a, b); err != nil {
		return nil, err
	}
	left := ensureUniqueKeySorted(a)
	right := ensureUniqueKeySorted(b)
	out := New(a.index, a.nameOf)
	out.sorted = SortedByKey
	out.unique = true

	i, j := 0, 0
	for i < len(left.elements) && j < len(right.elements) {
		lk, rk := left.key(i), right.key(j)
		switch c := gnode.CompareKeys(lk, rk); {
		case c < 0:
			out.elements = append(out.elements, left.elements[i])
			i++
		case c > 0:
			out.elements = append(out.elements, right.elements[j])
			j++
		default:
			out.elements = append(out.elements, left.elements[i])
			i++
			j++
		}
	}
	out.elements = append(out.elements, left.elements[i:]...)
	out.elements = append(out.elements, right.elements[j:]...)
	return out, nil
}

// Intersect returns a new, key-sorted, unique sequence containing
// every record present in both a and b.
func Intersect(a, b *Sequence) (*Sequence, error) {
	if err := requireSameIndex(a, b); err != nil {
		return nil, err
	}
	left := ensureUniqueKeySorted(a)
	right := ensureUniqueKeySorted(b)
	out := New(a.index, a.nameOf)
	out.sorted = SortedByKey
	out.unique = true

	i, j := 0, 0
	for i < len(left.elements) && j < len(right.elements) {
		lk, rk := left.key(i), right.key(j)
		switch c := gnode.CompareKeys(lk, rk); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out.elements = append(out.elements, left.elements[i])
			i++
			j++
		}
	}
	return out, nil
}

// Difference returns a new, key-sorted, unique sequence containing
// every record in a that is not in b.
func Difference(a, b *Sequence) (*Sequence, error) {
	if err := requireSameIndex(a, b); err != nil {
		return nil, err
	}
	left := ensureUniqueKeySorted(a)
	right := ensureUniqueKeySorted(b)
	out := New(a.index, a.nameOf)
	out.sorted = SortedByKey
	out.unique = true

	i, j := 0, 0
	for i < len(left.elements) {
		if j >= len(right.elements) {
			out.elements = append(out.elements, left.elements[i:]...)
			break
		}
		lk, rk := left.key(i), right.key(j)
		switch c := gnode.CompareKeys(lk, rk); {
		case c < 0:
			out.elements = append(out.elements, left.elements[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	return out, nil
}
