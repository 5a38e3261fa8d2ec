package sequence

import (
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
)

func resolve(ri *index.RecordIndex, pointerNode gnode.Ref) (gnode.Ref, bool) {
	arena := ri.Arena()
	if !arena.Valid(pointerNode) {
		return gnode.NoRef, false
	}
	key := arena.Value(pointerNode)
	if key == "" {
		return gnode.NoRef, false
	}
	return ri.Lookup(key)
}

// pointerTargets resolves every immediate child of root with the given
// tag into the record it points at, skipping dangling references: a
// missing linkage surfaces as null during scripting, not an error.
func pointerTargets(ri *index.RecordIndex, root gnode.Ref, tag string) []gnode.Ref {
	arena := ri.Arena()
	var out []gnode.Ref
	for _, child := range arena.ChildrenWithTag(root, tag) {
		if target, ok := resolve(ri, child); ok {
			out = append(out, target)
		}
	}
	return out
}

// sex returns "M", "F", or "U" for a person root, per its SEX child
// value.
func sex(ri *index.RecordIndex, person gnode.Ref) string {
	arena := ri.Arena()
	s := arena.FirstChildWithTag(person, "SEX")
	if s == gnode.NoRef {
		return "U"
	}
	switch arena.Value(s) {
	case "M", "F":
		return arena.Value(s)
	default:
		return "U"
	}
}

func newSingle(ri *index.RecordIndex, nameOf func(gnode.Ref) string, root gnode.Ref) *Sequence {
	s := New(ri, nameOf)
	s.Append(root, nil)
	return s
}

// PersonToChildren collects every CHIL of every FAMS family of p.
func PersonToChildren(ri *index.RecordIndex, nameOf func(gnode.Ref) string, p gnode.Ref) *Sequence {
	out := New(ri, nameOf)
	for _, fam := range pointerTargets(ri, p, "FAMS") {
		for _, child := range pointerTargets(ri, fam, "CHIL") {
			out.Append(child, nil)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// PersonToSpouses yields, for each FAMS family, the opposite-sex spouse
// (first if multiple); requires p's sex to be known. For a same-sex or
// ambiguous family the safe fallback yields
// the first non-self spouse of any sex.
func PersonToSpouses(ri *index.RecordIndex, nameOf func(gnode.Ref) string, p gnode.Ref) *Sequence {
	arena := ri.Arena()
	pSex := sex(ri, p)
	if pSex != "M" && pSex != "F" {
		return nil
	}
	out := New(ri, nameOf)
	wantTag := "WIFE"
	if pSex == "F" {
		wantTag = "HUSB"
	}
	for _, fam := range pointerTargets(ri, p, "FAMS") {
		spouses := pointerTargets(ri, fam, wantTag)
		if len(spouses) > 0 {
			out.Append(spouses[0], nil)
			continue
		}
		// No opposite-sex spouse in this family: fall back to the first
		// non-self spouse of any sex.
		for _, tag := range []string{"HUSB", "WIFE"} {
			found := false
			for _, s := range pointerTargets(ri, fam, tag) {
				if arena.Key(s) != arena.Key(p) {
					out.Append(s, nil)
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// PersonToFathers yields every HUSB over every FAMC family of p.
func PersonToFathers(ri *index.RecordIndex, nameOf func(gnode.Ref) string, p gnode.Ref) *Sequence {
	out := New(ri, nameOf)
	for _, fam := range pointerTargets(ri, p, "FAMC") {
		for _, h := range pointerTargets(ri, fam, "HUSB") {
			out.Append(h, nil)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// PersonToMothers yields every WIFE over every FAMC family of p.
func PersonToMothers(ri *index.RecordIndex, nameOf func(gnode.Ref) string, p gnode.Ref) *Sequence {
	out := New(ri, nameOf)
	for _, fam := range pointerTargets(ri, p, "FAMC") {
		for _, w := range pointerTargets(ri, fam, "WIFE") {
			out.Append(w, nil)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// PersonToFamilies returns p's FAMS families if asSpouse, else FAMC.
func PersonToFamilies(ri *index.RecordIndex, nameOf func(gnode.Ref) string, p gnode.Ref, asSpouse bool) *Sequence {
	tag := "FAMC"
	if asSpouse {
		tag = "FAMS"
	}
	out := New(ri, nameOf)
	for _, fam := range pointerTargets(ri, p, tag) {
		out.Append(fam, nil)
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// FamilyToChildren returns every CHIL of f.
func FamilyToChildren(ri *index.RecordIndex, nameOf func(gnode.Ref) string, f gnode.Ref) *Sequence {
	targets := pointerTargets(ri, f, "CHIL")
	if len(targets) == 0 {
		return nil
	}
	out := New(ri, nameOf)
	for _, c := range targets {
		out.Append(c, nil)
	}
	return out
}

// FamilyToFathers returns every HUSB of f.
func FamilyToFathers(ri *index.RecordIndex, nameOf func(gnode.Ref) string, f gnode.Ref) *Sequence {
	targets := pointerTargets(ri, f, "HUSB")
	if len(targets) == 0 {
		return nil
	}
	out := New(ri, nameOf)
	for _, h := range targets {
		out.Append(h, nil)
	}
	return out
}

// FamilyToMothers returns every WIFE of f.
func FamilyToMothers(ri *index.RecordIndex, nameOf func(gnode.Ref) string, f gnode.Ref) *Sequence {
	targets := pointerTargets(ri, f, "WIFE")
	if len(targets) == 0 {
		return nil
	}
	out := New(ri, nameOf)
	for _, w := range targets {
		out.Append(w, nil)
	}
	return out
}

func keySet(ri *index.RecordIndex, s *Sequence) map[string]bool {
	seen := map[string]bool{}
	if s == nil {
		return seen
	}
	arena := ri.Arena()
	for i := 0; i < s.Len(); i++ {
		seen[arena.Key(s.Root(i))] = true
	}
	return seen
}

// SiblingSequence finds, for every person in s, their FAMC family and
// collects that family's children. If close is false, the original
// persons are excluded from the result.
func SiblingSequence(ri *index.RecordIndex, nameOf func(gnode.Ref) string, s *Sequence, close bool) *Sequence {
	arena := ri.Arena()
	origKeys := keySet(ri, s)
	seen := map[string]bool{}
	out := New(ri, nameOf)
	for i := 0; i < s.Len(); i++ {
		p := s.Root(i)
		for _, fam := range pointerTargets(ri, p, "FAMC") {
			for _, child := range pointerTargets(ri, fam, "CHIL") {
				key := arena.Key(child)
				if seen[key] {
					continue
				}
				if !close && origKeys[key] {
					continue
				}
				seen[key] = true
				out.Append(child, nil)
			}
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// AncestorSequence performs a BFS over FAMC -> HUSB/WIFE starting from
// every person in s, deduplicated by record key. If close is true, the
// starting persons are included in the result.
func AncestorSequence(ri *index.RecordIndex, nameOf func(gnode.Ref) string, s *Sequence, close bool) *Sequence {
	arena := ri.Arena()
	out := New(ri, nameOf)
	seen := map[string]bool{}
	var queue []gnode.Ref
	for i := 0; i < s.Len(); i++ {
		p := s.Root(i)
		key := arena.Key(p)
		if close && !seen[key] {
			seen[key] = true
			out.Append(p, nil)
		} else {
			seen[key] = true
		}
		queue = append(queue, p)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, fam := range pointerTargets(ri, p, "FAMC") {
			for _, tag := range []string{"HUSB", "WIFE"} {
				for _, parent := range pointerTargets(ri, fam, tag) {
					key := arena.Key(parent)
					if seen[key] {
						continue
					}
					seen[key] = true
					out.Append(parent, nil)
					queue = append(queue, parent)
				}
			}
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// DescendentSequence performs a BFS over FAMS -> CHIL starting from
// every person in s, with a seen-set spanning both persons and
// families. If close is true, the starting persons are included.
func DescendentSequence(ri *index.RecordIndex, nameOf func(gnode.Ref) string, s *Sequence, close bool) *Sequence {
	arena := ri.Arena()
	out := New(ri, nameOf)
	seenPerson := map[string]bool{}
	seenFamily := map[string]bool{}
	var queue []gnode.Ref
	for i := 0; i < s.Len(); i++ {
		p := s.Root(i)
		key := arena.Key(p)
		if close && !seenPerson[key] {
			seenPerson[key] = true
			out.Append(p, nil)
		} else {
			seenPerson[key] = true
		}
		queue = append(queue, p)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, fam := range pointerTargets(ri, p, "FAMS") {
			famKey := arena.Key(fam)
			if seenFamily[famKey] {
				continue
			}
			seenFamily[famKey] = true
			for _, child := range pointerTargets(ri, fam, "CHIL") {
				key := arena.Key(child)
				if seenPerson[key] {
					continue
				}
				seenPerson[key] = true
				out.Append(child, nil)
				queue = append(queue, child)
			}
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// ParentSequence is the single-step, deduplicated version of
// AncestorSequence: the direct parents of every person in s.
func ParentSequence(ri *index.RecordIndex, nameOf func(gnode.Ref) string, s *Sequence) *Sequence {
	arena := ri.Arena()
	out := New(ri, nameOf)
	seen := map[string]bool{}
	for i := 0; i < s.Len(); i++ {
		for _, fam := range pointerTargets(ri, s.Root(i), "FAMC") {
			for _, tag := range []string{"HUSB", "WIFE"} {
				for _, parent := range pointerTargets(ri, fam, tag) {
					key := arena.Key(parent)
					if seen[key] {
						continue
					}
					seen[key] = true
					out.Append(parent, nil)
				}
			}
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// ChildSequence is the single-step, deduplicated version of
// DescendentSequence: the direct children of every person in s.
func ChildSequence(ri *index.RecordIndex, nameOf func(gnode.Ref) string, s *Sequence) *Sequence {
	arena := ri.Arena()
	out := New(ri, nameOf)
	seen := map[string]bool{}
	for i := 0; i < s.Len(); i++ {
		for _, fam := range pointerTargets(ri, s.Root(i), "FAMS") {
			for _, child := range pointerTargets(ri, fam, "CHIL") {
				key := arena.Key(child)
				if seen[key] {
					continue
				}
				seen[key] = true
				out.Append(child, nil)
			}
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// SpouseSequence is the single-step, deduplicated version: every
// spouse (opposite-sex partner) of every person in s.
func SpouseSequence(ri *index.RecordIndex, nameOf func(gnode.Ref) string, s *Sequence) *Sequence {
	arena := ri.Arena()
	out := New(ri, nameOf)
	seen := map[string]bool{}
	for i := 0; i < s.Len(); i++ {
		spouses := PersonToSpouses(ri, nameOf, s.Root(i))
		if spouses == nil {
			continue
		}
		for j := 0; j < spouses.Len(); j++ {
			sp := spouses.Root(j)
			key := arena.Key(sp)
			if seen[key] {
				continue
			}
			seen[key] = true
			out.Append(sp, nil)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// NameToSequence consults a name index for matches. If name begins
// with '*' it is treated as a surname wildcard: the search iterates
// the 26 letters a..z plus '$' as the given-name first letter over the
// surname, collecting all matches and uniquifying.
func NameToSequence(ri *index.RecordIndex, nameOf func(gnode.Ref) string, ni NameSearcher, name string) *Sequence {
	out := New(ri, nameOf)
	seen := map[string]bool{}
	addKeys := func(keys []string) {
		for _, k := range keys {
			if seen[k] {
				continue
			}
			if root, ok := ri.Lookup(k); ok {
				seen[k] = true
				out.Append(root, nil)
			}
		}
	}
	if len(name) > 0 && name[0] == '*' {
		surname := name[1:]
		letters := "abcdefghijklmnopqrstuvwxyz$"
		for _, l := range letters {
			addKeys(ni.Search(string(l) + " " + surname))
		}
	} else {
		addKeys(ni.Search(name))
	}
	if out.Len() == 0 {
		return nil
	}
	out.KeySort()
	_ = out.UniqueInPlace()
	return out
}

// NameSearcher is the minimal interface NameToSequence needs from a
// name index, kept narrow to avoid an import cycle with package index.
type NameSearcher interface {
	Search(raw string) []string
}
