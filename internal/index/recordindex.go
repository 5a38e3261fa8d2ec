// Package index implements the cross-reference and name lookup layer
// over a gnode.Arena: the record index, name index, reference index,
// and per-kind root lists.
package index

import "github.com/cacack/deadends/internal/gnode"

const recordIndexBuckets = 2047

// RecordIndex maps record keys to their root Ref, and is the sole
// owner of the arena holding every record tree. Grounded
// on DeadEndsLib/Database/recordindex.c.
type RecordIndex struct {
	arena   *gnode.Arena
	buckets [][]gnode.Ref
}

// NewRecordIndex creates an empty index over a fresh Arena.
func NewRecordIndex() *RecordIndex {
	return &RecordIndex{
		arena:   gnode.NewArena(),
		buckets: make([][]gnode.Ref, recordIndexBuckets),
	}
}

// Arena returns the index's owned node arena.
func (ri *RecordIndex) Arena() *gnode.Arena { return ri.arena }

func bucketFor(key string) int {
	var h uint32 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint32(key[i])
	}
	return int(h % recordIndexBuckets)
}

// Insert adds a record root to the index. root must carry a key. If
// replace is false and a record with the same key already exists, the
// existing record is kept (first wins); otherwise the new root
// replaces it.
func (ri *RecordIndex) Insert(root gnode.Ref, replace bool) {
	key := ri.arena.Key(root)
	if key == "" {
		panic("index: RecordIndex.Insert requires a keyed root")
	}
	idx := bucketFor(key)
	bucket := ri.buckets[idx]
	for i, r := range bucket {
		if ri.arena.Key(r) == key {
			if replace {
				bucket[i] = root
			}
			return
		}
	}
	ri.buckets[idx] = append(bucket, root)
}

// Lookup returns the root Ref for key, if present.
func (ri *RecordIndex) Lookup(key string) (gnode.Ref, bool) {
	bucket := ri.buckets[bucketFor(key)]
	for _, r := range bucket {
		if ri.arena.Key(r) == key {
			return r, true
		}
	}
	return gnode.NoRef, false
}

// Iterate visits every root exactly once, in unspecified but stable
// order, stopping early if fn returns false.
func (ri *RecordIndex) Iterate(fn func(gnode.Ref) bool) {
	for _, bucket := range ri.buckets {
		for _, r := range bucket {
			if !fn(r) {
				return
			}
		}
	}
}

// Len returns the number of records in the index.
func (ri *RecordIndex) Len() int {
	n := 0
	for _, bucket := range ri.buckets {
		n += len(bucket)
	}
	return n
}
