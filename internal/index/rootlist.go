package index

import (
	"github.com/cacack/deadends/internal/container"
	"github.com/cacack/deadends/internal/gnode"
)

// RootList is an ordered, sortable collection of record roots of one
// kind (all persons, all families, ...), used to iterate every record
// of a kind in key order. Grounded on gedcom/document.go's
// Document.Individuals()/Families() accessors, generalized to any
// record kind over the arena model.
type RootList struct {
	arena *gnode.Arena
	list  *container.List[gnode.Ref]
}

// NewRootList creates an empty root list over arena.
func NewRootList(arena *gnode.Arena) *RootList {
	rl := &RootList{arena: arena}
	rl.list = container.NewList[gnode.Ref](
		func(r gnode.Ref) string { return arena.Key(r) },
		gnode.CompareKeys,
	)
	return rl
}

// Arena returns the arena this root list's roots belong to.
func (rl *RootList) Arena() *gnode.Arena { return rl.arena }

// Add appends a root to the list.
func (rl *RootList) Add(root gnode.Ref) { rl.list.Append(root) }

// Len returns the number of roots.
func (rl *RootList) Len() int { return rl.list.Len() }

// SortByKey sorts the list by key and marks it sorted, enabling
// FindInList's binary search.
func (rl *RootList) SortByKey() { rl.list.Sort() }

// FindInList looks up a root by key, using binary search once sorted.
func (rl *RootList) FindInList(key string) (gnode.Ref, bool) {
	return rl.list.Find(key)
}

// Slice returns the roots in current list order.
func (rl *RootList) Slice() []gnode.Ref {
	return rl.list.Slice()
}

// BuildRootLists partitions every record in a RecordIndex into one
// RootList per RecordType, each key-sorted.
func BuildRootLists(ri *RecordIndex) map[gnode.RecordType]*RootList {
	arena := ri.Arena()
	lists := map[gnode.RecordType]*RootList{}
	ri.Iterate(func(r gnode.Ref) bool {
		t := arena.TypeOf(r)
		rl, ok := lists[t]
		if !ok {
			rl = NewRootList(arena)
			lists[t] = rl
		}
		rl.Add(r)
		return true
	})
	for _, rl := range lists {
		rl.SortByKey()
	}
	return lists
}
