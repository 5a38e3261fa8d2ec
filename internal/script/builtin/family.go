package builtin

import (
	"fmt"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
	"github.com/cacack/deadends/internal/sequence"
)

// familyEntries implements the accessors over FAM records. Grounded on
// intrpfamily.c.
func familyEntries() []Entry {
	return []Entry{
		{"marriage", 1, 1, eventBI("MARR")},
		{"husband", 1, 1, spouseAccessorBI("HUSB")},
		{"wife", 1, 1, spouseAccessorBI("WIFE")},
		{"nchildren", 1, 1, nchildrenBI},
		{"firstchild", 1, 1, childAccessorBI(0)},
		{"lastchild", 1, 1, childAccessorBI(-1)},
		{"fnode", 1, 1, fnodeBI},
		{"fam", 1, 1, famBI},
		{"children", 1, 1, childrenSeqBI},
		{"firstfam", 0, 0, firstInRootListBI(gnode.RecordFamily)},
		{"nextfam", 1, 1, stepInRootListBI(gnode.RecordFamily, 1)},
		{"prevfam", 1, 1, stepInRootListBI(gnode.RecordFamily, -1)},
		{"lastfam", 0, 0, lastInRootListBI(gnode.RecordFamily)},
	}
}

// spouseAccessorBI returns the family's first HUSB or WIFE pointer
// target, resolved through the record index.
func spouseAccessorBI(tag string) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		_, famRef, arena, err := eval.EvaluateFamily(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if famRef == gnode.NoRef {
			return value.Null, nil
		}
		p := arena.FirstChildWithTag(famRef, tag)
		if p == gnode.NoRef || arena.Value(p) == "" {
			return value.Null, nil
		}
		root, ok := ctx.RT.RecordIndex.Lookup(arena.Value(p))
		if !ok {
			return value.Null, nil
		}
		return value.NewTyped(arena, root), nil
	}
}

func nchildrenBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, famRef, arena, err := eval.EvaluateFamily(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if famRef == gnode.NoRef {
		return value.Int(0), nil
	}
	return value.Int(int64(len(arena.ChildrenWithTag(famRef, "CHIL")))), nil
}

// childAccessorBI returns the family's first (index 0) or last
// (index -1) child, resolved through the record index.
func childAccessorBI(idx int) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		_, famRef, arena, err := eval.EvaluateFamily(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		if famRef == gnode.NoRef {
			return value.Null, nil
		}
		kids := arena.ChildrenWithTag(famRef, "CHIL")
		if len(kids) == 0 {
			return value.Null, nil
		}
		pos := idx
		if pos < 0 {
			pos = len(kids) - 1
		}
		if pos >= len(kids) {
			return value.Null, nil
		}
		key := arena.Value(kids[pos])
		if key == "" {
			return value.Null, nil
		}
		root, ok := ctx.RT.RecordIndex.Lookup(key)
		if !ok {
			return value.Null, nil
		}
		return value.NewTyped(arena, root), nil
	}
}

// fnode requires its argument to already be a family and returns its
// root node untyped.
func fnodeBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, famRef, arena, err := eval.EvaluateFamily(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if famRef == gnode.NoRef {
		return value.Null, fmt.Errorf("the argument to fnode must be a family")
	}
	return value.GNode{Arena: arena, Ref: famRef}, nil
}

func famBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	key, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	ri := ctx.RT.RecordIndex
	root, ok := ri.Lookup(key)
	if !ok || ri.Arena().TypeOf(root) != gnode.RecordFamily {
		return value.Null, fmt.Errorf("could not find a family with the key %q", key)
	}
	return value.NewTyped(ri.Arena(), root), nil
}

// children(FAM) -> SET, a sequence-returning built-in alongside the
// scalar child accessors.
func childrenSeqBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	_, famRef, _, err := eval.EvaluateFamily(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if famRef == gnode.NoRef {
		return value.Null, nil
	}
	ri := ctx.RT.RecordIndex
	seq := sequence.FamilyToChildren(ri, nameOf(ri), famRef)
	return value.Seq{Sequence: seq}, nil
}
