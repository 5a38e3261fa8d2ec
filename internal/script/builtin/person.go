package builtin

import (
	"fmt"
	"strings"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
	"github.com/cacack/deadends/internal/namekey"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
	"github.com/cacack/deadends/internal/sequence"
)

// personEntries implements the genealogical accessors over INDI
// records. Grounded on intrpperson.c.
func personEntries() []Entry {
	return []Entry{
		{"name", 1, 2, nameBI},
		{"fullname", 4, 4, fullnameBI},
		{"surname", 1, 1, surnameBI},
		{"givens", 1, 1, givensBI},
		{"trimname", 2, 2, trimnameBI},
		{"birth", 1, 1, eventBI("BIRT")},
		{"death", 1, 1, eventBI("DEAT")},
		{"baptism", 1, 1, eventBI("BAPM")},
		{"burial", 1, 1, eventBI("BURI")},
		{"father", 1, 1, parentAccessorBI(sequence.PersonToFathers)},
		{"mother", 1, 1, parentAccessorBI(sequence.PersonToMothers)},
		{"nextsib", 1, 1, siblingAccessorBI(1)},
		{"prevsib", 1, 1, siblingAccessorBI(-1)},
		{"sex", 1, 1, sexBI},
		{"male", 1, 1, sexIsBI("M")},
		{"female", 1, 1, sexIsBI("F")},
		{"pn", 2, 2, pnBI},
		{"nfamilies", 1, 1, nfamiliesBI},
		{"nspouses", 1, 1, nspousesBI},
		{"parents", 1, 1, parentsBI},
		{"title", 1, 1, firstChildValueBI("TITL")},
		{"soundex", 1, 1, personSoundexBI},
		{"inode", 1, 1, inodeBI},
		{"indi", 1, 1, indiBI},
		{"firstindi", 0, 0, firstInRootListBI(gnode.RecordPerson)},
		{"lastindi", 0, 0, lastInRootListBI(gnode.RecordPerson)},
		{"nextindi", 1, 1, stepInRootListBI(gnode.RecordPerson, 1)},
		{"previndi", 1, 1, stepInRootListBI(gnode.RecordPerson, -1)},
	}
}

func firstNameNode(arena *gnode.Arena, person gnode.Ref) (gnode.Ref, bool) {
	n := arena.FirstChildWithTag(person, "NAME")
	if n == gnode.NoRef || arena.Value(n) == "" {
		return gnode.NoRef, false
	}
	return n, true
}

func nameBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	n, ok := firstNameNode(arena, personRef)
	if !ok {
		return value.Null, fmt.Errorf("the person does not have a name")
	}
	useCaps := false
	if len(call.Args) == 2 {
		useCaps, err = eval.EvaluateBoolean(call.Args[1], ctx)
		if err != nil {
			return value.Null, err
		}
	}
	return value.Str(formatName(arena.Value(n), useCaps, false)), nil
}

// formatName renders a raw GEDCOM NAME value as a display string: given
// names followed by the surname, optionally upper-cased, optionally
// surname-first with a comma.
func formatName(raw string, caps, surnameFirst bool) string {
	given := namekey.Givens(raw)
	surname := namekey.Surname(raw)
	if caps {
		surname = strings.ToUpper(surname)
	}
	switch {
	case surname == "":
		return given
	case given == "":
		return surname
	case surnameFirst:
		return surname + ", " + given
	default:
		return given + " " + surname
	}
}

func fullnameBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	n, ok := firstNameNode(arena, personRef)
	if !ok {
		return value.Null, fmt.Errorf("the person must have a name")
	}
	caps, err := eval.EvaluateBoolean(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	surnameFirst, err := eval.EvaluateBoolean(call.Args[2], ctx)
	if err != nil {
		return value.Null, err
	}
	width, err := eval.EvaluateInt(call.Args[3], ctx)
	if err != nil {
		return value.Null, err
	}
	out := formatName(arena.Value(n), caps, surnameFirst)
	if width > 0 && int64(len([]rune(out))) > width {
		out = string([]rune(out)[:width])
	}
	return value.Str(out), nil
}

func surnameBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	n, ok := firstNameNode(arena, personRef)
	if !ok {
		return value.Null, fmt.Errorf("the person must have a name")
	}
	return value.Str(namekey.Surname(arena.Value(n))), nil
}

func givensBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	n, ok := firstNameNode(arena, personRef)
	if !ok {
		return value.Null, fmt.Errorf("the person must have a name")
	}
	return value.Str(namekey.Givens(arena.Value(n))), nil
}

func trimnameBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	n, ok := firstNameNode(arena, personRef)
	if !ok {
		return value.Null, fmt.Errorf("the person must have a name")
	}
	width, err := eval.EvaluateInt(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	out := formatName(arena.Value(n), false, false)
	if width > 0 && int64(len([]rune(out))) > width {
		out = string([]rune(out)[:width])
	}
	return value.Str(out), nil
}

// eventBI returns a person's first child event node of the given tag
// (BIRT/DEAT/BAPM/BURI), as an untyped node (it is a substructure, not a
// record root).
func eventBI(tag string) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if personRef == gnode.NoRef {
			return value.Null, nil
		}
		n := arena.FirstChildWithTag(personRef, tag)
		if n == gnode.NoRef {
			return value.Null, nil
		}
		return value.GNode{Arena: arena, Ref: n}, nil
	}
}

func firstChildValueBI(tag string) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if ref == gnode.NoRef {
			return value.Null, nil
		}
		n := arena.FirstChildWithTag(ref, tag)
		if n == gnode.NoRef || arena.Value(n) == "" {
			return value.Null, nil
		}
		return value.Str(arena.Value(n)), nil
	}
}

// parentAccessorBI wraps a single-result navigator (PersonToFathers/
// PersonToMothers) returning its first match, or Null if none.
func parentAccessorBI(navigate func(*index.RecordIndex, func(gnode.Ref) string, gnode.Ref) *sequence.Sequence) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if personRef == gnode.NoRef {
			return value.Null, nil
		}
		ri := ctx.RT.RecordIndex
		seq := navigate(ri, nameOf(ri), personRef)
		if seq == nil || seq.Len() == 0 {
			return value.Null, nil
		}
		return value.NewTyped(arena, seq.Root(0)), nil
	}
}

// siblingAccessorBI returns the next (direction=1) or previous
// (direction=-1) sibling in key order among the person's full sibling
// set (shared FAMC family), matching personToNextSibling/
// personToPreviousSibling.
func siblingAccessorBI(direction int) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if personRef == gnode.NoRef {
			return value.Null, nil
		}
		ri := ctx.RT.RecordIndex
		siblings := sequence.SiblingSequence(ri, nameOf(ri), singleSeq(ri, personRef), true)
		if siblings == nil {
			return value.Null, nil
		}
		siblings.KeySort()
		idx := -1
		for i := 0; i < siblings.Len(); i++ {
			if arena.Key(siblings.Root(i)) == arena.Key(personRef) {
				idx = i
				break
			}
		}
		next := idx + direction
		if idx < 0 || next < 0 || next >= siblings.Len() {
			return value.Null, nil
		}
		return value.NewTyped(arena, siblings.Root(next)), nil
	}
}

func singleSeq(ri *index.RecordIndex, root gnode.Ref) *sequence.Sequence {
	s := sequence.New(ri, nameOf(ri))
	s.Append(root, nil)
	return s
}

func personSex(arena *gnode.Arena, person gnode.Ref) string {
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

func sexBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	return value.Str(personSex(arena, personRef)), nil
}

func sexIsBI(want string) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if personRef == gnode.NoRef {
			return value.Null, nil
		}
		return value.BoolOf(personSex(arena, personRef) == want), nil
	}
}

// pn(INDI, INT) generates pronouns: 0=He/She, 1=he/she, 2=His/Her,
// 3=his/her, 4=him/her.
var malePronouns = []string{"He", "he", "His", "his", "him"}
var femalePronouns = []string{"She", "she", "Her", "her", "her"}

func pnBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	code, err := eval.EvaluateInt(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	if code < 0 || code > 4 {
		return value.Null, fmt.Errorf("pn requires a pronoun code between 0 and 4")
	}
	if personSex(arena, personRef) == "F" {
		return value.Str(femalePronouns[code]), nil
	}
	return value.Str(malePronouns[code]), nil
}

func nfamiliesBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Int(0), nil
	}
	return value.Int(int64(len(arena.ChildrenWithTag(personRef, "FAMS")))), nil
}

func nspousesBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, _, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Int(0), nil
	}
	ri := ctx.RT.RecordIndex
	spouses := sequence.PersonToSpouses(ri, nameOf(ri), personRef)
	if spouses == nil {
		return value.Int(0), nil
	}
	return value.Int(int64(spouses.Len())), nil
}

func parentsBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	ri := ctx.RT.RecordIndex
	fams := sequence.PersonToFamilies(ri, nameOf(ri), personRef, false)
	if fams == nil || fams.Len() == 0 {
		return value.Null, nil
	}
	return value.NewTyped(arena, fams.Root(0)), nil
}

func personSoundexBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, personRef, arena, err := eval.EvaluatePerson(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if personRef == gnode.NoRef {
		return value.Null, nil
	}
	n, ok := firstNameNode(arena, personRef)
	if !ok {
		return value.Null, nil
	}
	return value.Str(namekey.Soundex(namekey.Surname(arena.Value(n)))), nil
}

func inodeBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	v, _, _, err := eval.EvaluatePerson(call.Args[0], ctx)
	return v, err
}

func indiBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	key, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	ri := ctx.RT.RecordIndex
	root, ok := ri.Lookup(key)
	if !ok || ri.Arena().TypeOf(root) != gnode.RecordPerson {
		return value.Null, fmt.Errorf("could not find a person with the key %q", key)
	}
	return value.NewTyped(ri.Arena(), root), nil
}

func firstInRootListBI(kind gnode.RecordType) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		rl := ctx.RT.RootLists[kind]
		if rl == nil || rl.Len() == 0 {
			return value.Null, fmt.Errorf("there must be records of this kind in the database")
		}
		return value.NewTyped(rl.Arena(), rl.Slice()[0]), nil
	}
}

func lastInRootListBI(kind gnode.RecordType) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		rl := ctx.RT.RootLists[kind]
		if rl == nil || rl.Len() == 0 {
			return value.Null, fmt.Errorf("there must be records of this kind in the database")
		}
		s := rl.Slice()
		return value.NewTyped(rl.Arena(), s[len(s)-1]), nil
	}
}

// stepInRootListBI returns the next/previous record of kind in key
// order relative to the record given as the current one.
func stepInRootListBI(kind gnode.RecordType, direction int) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if ref == gnode.NoRef {
			return value.Null, nil
		}
		rl := ctx.RT.RootLists[kind]
		if rl == nil {
			return value.Null, nil
		}
		s := rl.Slice()
		idx := -1
		for i, r := range s {
			if arena.Key(r) == arena.Key(ref) {
				idx = i
				break
			}
		}
		next := idx + direction
		if idx < 0 || next < 0 || next >= len(s) {
			return value.Null, nil
		}
		return value.NewTyped(arena, s[next]), nil
	}
}
