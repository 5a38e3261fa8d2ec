package index

import "github.com/cacack/deadends/internal/container"

const refIndexBuckets = 2047

type refEntry struct {
	refn      string
	recordKey string
}

// RefIndex maps a user-visible REFN value to the record key that
// declares it, reusing the same generic HashTable the
// record/name indices are built on.
type RefIndex struct {
	table *container.HashTable[refEntry]
}

// NewRefIndex creates an empty reference index.
func NewRefIndex() *RefIndex {
	return &RefIndex{
		table: container.NewHashTable[refEntry](refIndexBuckets, func(e refEntry) string { return e.refn }),
	}
}

// Insert records that refn identifies recordKey. First registration
// wins on a duplicate refn, matching RecordIndex's default policy.
func (ri *RefIndex) Insert(refn, recordKey string) {
	ri.table.Insert(refEntry{refn: refn, recordKey: recordKey}, false)
}

// Lookup returns the record key registered under refn, if any.
func (ri *RefIndex) Lookup(refn string) (string, bool) {
	e, ok := ri.table.Lookup(refn)
	if !ok {
		return "", false
	}
	return e.recordKey, true
}
