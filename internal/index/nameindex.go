package index

import (
	"github.com/cacack/deadends/internal/container"
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/namekey"
)

const nameIndexBuckets = 2048

type nameEntry struct {
	nameKey    string
	recordKeys *container.Set[string]
}

// NameIndex maps a name key to the set of person record keys bearing
// that name. Grounded function-by-function on
// DeadEndsLib/Database/nameindex.c.
type NameIndex struct {
	buckets [][]*nameEntry
}

// NewNameIndex creates an empty name index.
func NewNameIndex() *NameIndex {
	return &NameIndex{buckets: make([][]*nameEntry, nameIndexBuckets)}
}

func (ni *NameIndex) bucketFor(key string) int {
	var h uint32 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint32(key[i])
	}
	return int(h % nameIndexBuckets)
}

func (ni *NameIndex) find(nameKey string) *nameEntry {
	for _, e := range ni.buckets[ni.bucketFor(nameKey)] {
		if e.nameKey == nameKey {
			return e
		}
	}
	return nil
}

// Insert adds a (name key, record key) pair, idempotently.
func (ni *NameIndex) Insert(nameKey, recordKey string) {
	e := ni.find(nameKey)
	if e == nil {
		e = &nameEntry{nameKey: nameKey, recordKeys: container.NewStringSet()}
		idx := ni.bucketFor(nameKey)
		ni.buckets[idx] = append(ni.buckets[idx], e)
	}
	e.recordKeys.Add(recordKey)
}

// Remove deletes a (name key, record key) pair, if present.
func (ni *NameIndex) Remove(nameKey, recordKey string) {
	e := ni.find(nameKey)
	if e == nil {
		return
	}
	e.recordKeys.Remove(recordKey)
}

// Search normalizes raw through namekey.ToNameKey and returns the
// record keys bearing that name, or nil if none match.
func (ni *NameIndex) Search(raw string) []string {
	e := ni.find(namekey.ToNameKey(raw))
	if e == nil {
		return nil
	}
	return e.recordKeys.Slice()
}

// SearchKey looks up an already-normalized name key directly.
func (ni *NameIndex) SearchKey(nameKey string) []string {
	e := ni.find(nameKey)
	if e == nil {
		return nil
	}
	return e.recordKeys.Slice()
}

// RemoveAllNamesOfPerson removes every NAME-derived entry for a person
// root. It scans ALL of the person's children for NAME tags rather
// than assuming they are contiguous: a reference implementation that
// stops at the first non-NAME sibling would be relying on an ordering
// GEDCOM does not guarantee.
func (ni *NameIndex) RemoveAllNamesOfPerson(arena *gnode.Arena, person gnode.Ref) {
	recordKey := arena.Key(person)
	for _, name := range arena.ChildrenWithTag(person, "NAME") {
		value := arena.Value(name)
		if value == "" {
			continue
		}
		ni.Remove(namekey.ToNameKey(value), recordKey)
	}
}

// BuildNameIndex walks every person root in persons (as produced by a
// RootList) and inserts all of its NAME children into the index.
func BuildNameIndex(arena *gnode.Arena, persons []gnode.Ref) *NameIndex {
	ni := NewNameIndex()
	for _, person := range persons {
		recordKey := arena.Key(person)
		for _, name := range arena.ChildrenWithTag(person, "NAME") {
			value := arena.Value(name)
			if value == "" {
				continue
			}
			ni.Insert(namekey.ToNameKey(value), recordKey)
		}
	}
	return ni
}
