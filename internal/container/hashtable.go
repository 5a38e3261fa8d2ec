package container

// HashTable is a fixed-bucket open hash table keyed by a caller-supplied
// string key function, using a DJB-hash bucket-of-elements design.
// Iteration order is unspecified but stable for a given table state.
type HashTable[T any] struct {
	buckets    [][]T
	key        func(T) string
	numBuckets int
}

// NewHashTable creates a table with the given bucket count and key
// function. Record/name indices use 2048 buckets, other indices 2047.
func NewHashTable[T any](numBuckets int, key func(T) string) *HashTable[T] {
	if numBuckets <= 0 {
		numBuckets = 2047
	}
	return &HashTable[T]{
		buckets:    make([][]T, numBuckets),
		key:        key,
		numBuckets: numBuckets,
	}
}

// djbHash is the classic DJB2 string hash.
func djbHash(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

func (t *HashTable[T]) bucketIndex(k string) int {
	return int(djbHash(k) % uint32(t.numBuckets))
}

// Insert adds an element. If replace is false and an element with the
// same key already exists, the existing element is kept (first wins);
// if replace is true, the existing element is overwritten.
func (t *HashTable[T]) Insert(v T, replace bool) {
	k := t.key(v)
	idx := t.bucketIndex(k)
	bucket := t.buckets[idx]
	for i, e := range bucket {
		if t.key(e) == k {
			if replace {
				bucket[i] = v
			}
			return
		}
	}
	t.buckets[idx] = append(bucket, v)
}

// Lookup returns the element with the given key, if present.
func (t *HashTable[T]) Lookup(k string) (T, bool) {
	var zero T
	bucket := t.buckets[t.bucketIndex(k)]
	for _, e := range bucket {
		if t.key(e) == k {
			return e, true
		}
	}
	return zero, false
}

// Remove deletes the element with the given key, if present, and
// reports whether anything was removed.
func (t *HashTable[T]) Remove(k string) bool {
	idx := t.bucketIndex(k)
	bucket := t.buckets[idx]
	for i, e := range bucket {
		if t.key(e) == k {
			t.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
			return true
		}
	}
	return false
}

// Each visits every element via a (bucket-index, element-index) cursor,
// stopping early if fn returns false.
func (t *HashTable[T]) Each(fn func(bucket, index int, v T) bool) {
	for bi, bucket := range t.buckets {
		for ei, v := range bucket {
			if !fn(bi, ei, v) {
				return
			}
		}
	}
}

// Len returns the total number of elements across all buckets.
func (t *HashTable[T]) Len() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}
