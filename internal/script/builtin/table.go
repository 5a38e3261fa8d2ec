// Package builtin implements the script language's built-in function
// table: every built-in is wired as an eval.BuiltinFunc
// over the evaluator's primitives (arithmetic, string, coercion) and the
// record/query layers (gnode, index, sequence). Grounded
// function-by-function on
// _examples/original_source/DeadEndsLib/Interp/{builtin,intrpmath,
// intrpstring,intrpperson,intrpfamily,intrpgnode,intrpevent}.c.
package builtin

import (
	"sort"
	"sync"

	"github.com/cacack/deadends/internal/script/eval"
)

// Entry is one row of the built-in table: a name, its arity bounds, and
// the function pointer bound at parse time.
type Entry struct {
	Name     string
	Min, Max int
	Fn       eval.BuiltinFunc
}

var (
	tableOnce sync.Once
	table     []Entry
)

// buildTable assembles every category's entries into one
// lexicographically sorted array, binary-searched by name.
func buildTable() []Entry {
	var all []Entry
	all = append(all, arithEntries()...)
	all = append(all, stringEntries()...)
	all = append(all, nodeEntries()...)
	all = append(all, personEntries()...)
	all = append(all, familyEntries()...)
	all = append(all, eventEntries()...)
	all = append(all, extractEntries()...)
	all = append(all, ioEntries()...)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Table returns the full, name-sorted built-in table, building it once.
func Table() []Entry {
	tableOnce.Do(func() { table = buildTable() })
	return table
}

// Lookup finds a built-in by name via binary search.
func Lookup(name string) (Entry, bool) {
	t := Table()
	i := sort.Search(len(t), func(i int) bool { return t[i].Name >= name })
	if i < len(t) && t[i].Name == name {
		return t[i], true
	}
	return Entry{}, false
}
