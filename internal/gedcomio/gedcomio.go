// Package gedcomio writes the in-memory database back out as GEDCOM
// text: one line per node, with level computed from tree
// depth rather than stored, grounded on encoder/encoder.go's
// writeRecord/writeTag line-formatting convention (`level key?
// tag value?`, one trailing newline per line) and on
// DeadEndsLib/Interp/sequence.c's writeDatabase/sequenceToGedcom.
package gedcomio

import (
	"fmt"
	"io"
	"sort"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
	"github.com/cacack/deadends/internal/sequence"
)

// WriteDatabase writes every record in the index, one line per node,
// in record-index iteration order.
func WriteDatabase(w io.Writer, ri *index.RecordIndex) error {
	arena := ri.Arena()
	var writeErr error
	ri.Iterate(func(root gnode.Ref) bool {
		if err := writeFiltered(w, arena, root, 0, keepAll); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

func keepAll(gnode.Ref) bool { return true }

// SequenceToGedcom writes only the persons named in seq, plus any
// family connecting two or more of those persons (by HUSB/WIFE/CHIL
// membership), to w. A family with fewer than two connecting persons
// is omitted entirely, and any FAMC/FAMS/HUSB/WIFE/CHIL pointer that
// would reference a person or family not being emitted is elided
// along with its subtree.
func SequenceToGedcom(w io.Writer, seq *sequence.Sequence) error {
	if seq == nil || seq.Len() == 0 {
		return nil
	}
	ri := seq.Index()
	arena := ri.Arena()

	personKeys := make(map[string]bool, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		personKeys[arena.Key(seq.Root(i))] = true
	}

	families := map[string]gnode.Ref{}
	considerFamily := func(famKey string) {
		if famKey == "" {
			return
		}
		if _, already := families[famKey]; already {
			return
		}
		famRef, ok := ri.Lookup(famKey)
		if !ok {
			return
		}
		count := 0
		if h := arena.FirstChildWithTag(famRef, "HUSB"); h != gnode.NoRef && personKeys[arena.Value(h)] {
			count++
		}
		if wf := arena.FirstChildWithTag(famRef, "WIFE"); wf != gnode.NoRef && personKeys[arena.Value(wf)] {
			count++
		}
		for _, c := range arena.ChildrenWithTag(famRef, "CHIL") {
			if personKeys[arena.Value(c)] {
				count++
			}
		}
		if count >= 2 {
			families[famKey] = famRef
		}
	}

	for i := 0; i < seq.Len(); i++ {
		person := seq.Root(i)
		for _, n := range arena.ChildrenWithTag(person, "FAMC") {
			considerFamily(arena.Value(n))
		}
		for _, n := range arena.ChildrenWithTag(person, "FAMS") {
			considerFamily(arena.Value(n))
		}
	}

	for i := 0; i < seq.Len(); i++ {
		if err := writeLimitedPerson(w, arena, seq.Root(i), families); err != nil {
			return err
		}
	}

	famKeys := make([]string, 0, len(families))
	for k := range families {
		famKeys = append(famKeys, k)
	}
	sort.Strings(famKeys)
	for _, k := range famKeys {
		if err := writeLimitedFamily(w, arena, families[k], personKeys); err != nil {
			return err
		}
	}
	return nil
}

// writeLimitedPerson writes a person's node tree, eliding any FAMC/
// FAMS pointer to a family not in families.
func writeLimitedPerson(w io.Writer, arena *gnode.Arena, person gnode.Ref, families map[string]gnode.Ref) error {
	return writeFiltered(w, arena, person, 0, func(node gnode.Ref) bool {
		switch arena.Tag(node) {
		case "FAMC", "FAMS":
			_, ok := families[arena.Value(node)]
			return ok
		default:
			return true
		}
	})
}

// writeLimitedFamily writes a family's node tree, eliding any HUSB/
// WIFE/CHIL pointer to a person not in personKeys.
func writeLimitedFamily(w io.Writer, arena *gnode.Arena, family gnode.Ref, personKeys map[string]bool) error {
	return writeFiltered(w, arena, family, 0, func(node gnode.Ref) bool {
		switch arena.Tag(node) {
		case "HUSB", "WIFE", "CHIL":
			return personKeys[arena.Value(node)]
		default:
			return true
		}
	})
}

// writeFiltered writes node and its descendants depth-first. A node
// for which keep returns false is skipped along with its whole
// subtree.
func writeFiltered(w io.Writer, arena *gnode.Arena, node gnode.Ref, level int, keep func(gnode.Ref) bool) error {
	if !keep(node) {
		return nil
	}
	if err := writeLine(w, arena, node, level); err != nil {
		return err
	}
	for _, c := range arena.Children(node) {
		if err := writeFiltered(w, arena, c, level+1, keep); err != nil {
			return err
		}
	}
	return nil
}

// writeLine formats one node as "level key? tag value?\n", matching
// encoder/encoder.go's writeTag/writeRecord whitespace rules.
func writeLine(w io.Writer, arena *gnode.Arena, node gnode.Ref, level int) error {
	tag := arena.Tag(node)
	value := arena.Value(node)
	key := arena.Key(node)

	var err error
	switch {
	case key != "" && value != "":
		_, err = fmt.Fprintf(w, "%d %s %s %s\n", level, key, tag, value)
	case key != "":
		_, err = fmt.Fprintf(w, "%d %s %s\n", level, key, tag)
	case value != "":
		_, err = fmt.Fprintf(w, "%d %s %s\n", level, tag, value)
	default:
		_, err = fmt.Fprintf(w, "%d %s\n", level, tag)
	}
	return err
}
