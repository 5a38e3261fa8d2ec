package builtin

import (
	"strings"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// nodeEntries wraps the plain Gedcom-node accessors and mutators.
// Grounded on intrpgnode.c and the node-mutation builtins in builtin.c.
func nodeEntries() []Entry {
	return []Entry{
		{"root", 1, 1, rootBI},
		{"tag", 1, 1, tagBI},
		{"value", 1, 1, valueBI},
		{"key", 1, 1, keyBI},
		{"xref", 1, 1, keyBI},
		{"parent", 1, 1, parentBI},
		{"child", 1, 1, childBI},
		{"sibling", 1, 1, siblingBI},
		{"createnode", 1, 2, createnodeBI},
		{"addnode", 2, 3, addnodeBI},
		{"deletenode", 1, 1, deletenodeBI},
		{"savenode", 1, 1, savenodeBI},
		{"getrecord", 1, 1, getrecordBI},
		{"path", 2, 2, pathBI},
	}
}

func rootBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	r, rootErr := arena.Root(ref)
	if rootErr != nil {
		return value.Null, rootErr
	}
	return value.NewTyped(arena, r), nil
}

func tagBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	return value.Str(arena.Tag(ref)), nil
}

func valueBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef || arena.Value(ref) == "" {
		return value.Null, nil
	}
	return value.Str(arena.Value(ref)), nil
}

func keyBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef || arena.Key(ref) == "" {
		return value.Null, nil
	}
	return value.Str(arena.Key(ref)), nil
}

func parentBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	p := arena.Parent(ref)
	if p == gnode.NoRef {
		return value.Null, nil
	}
	return value.GNode{Arena: arena, Ref: p}, nil
}

func childBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	c := arena.Child(ref)
	if c == gnode.NoRef {
		return value.Null, nil
	}
	return value.GNode{Arena: arena, Ref: c}, nil
}

func siblingBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	s := arena.Sibling(ref)
	if s == gnode.NoRef {
		return value.Null, nil
	}
	return value.GNode{Arena: arena, Ref: s}, nil
}

// createnode makes a detached node in the runtime's arena: createnode(tag[, value]).
func createnodeBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	tag, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	val := ""
	if len(call.Args) == 2 {
		val, err = eval.EvaluateString(call.Args[1], ctx)
		if err != nil {
			return value.Null, err
		}
	}
	arena := ctx.RT.RecordIndex.Arena()
	n := arena.New(tag, val)
	return value.GNode{Arena: arena, Ref: n}, nil
}

// addnode(this, parent[, prevsib]) attaches an existing detached node.
func addnodeBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	thisRef, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	parentRef, _, err := eval.EvaluateGNode(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	prevRef := gnode.NoRef
	if len(call.Args) == 3 {
		prevRef, _, err = eval.EvaluateGNode(call.Args[2], ctx)
		if err != nil {
			return value.Null, err
		}
	}
	if thisRef == gnode.NoRef || parentRef == gnode.NoRef {
		return value.Null, nil
	}
	arena.AddChild(parentRef, thisRef, prevRef)
	return value.Null, nil
}

func deletenodeBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	return value.Null, arena.DeleteNode(ref)
}

// savenode deep-copies a node's subtree (without its key) over the
// arena model.
func savenodeBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	cp := arena.CopySubtree(ref)
	return value.GNode{Arena: arena, Ref: cp}, nil
}

// getrecord looks up any record (person, family, source, event, other)
// by its key.
func getrecordBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	key, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	ri := ctx.RT.RecordIndex
	root, ok := ri.Lookup(key)
	if !ok {
		return value.Null, nil
	}
	return value.NewTyped(ri.Arena(), root), nil
}

// path walks a dotted Gedcom path ("BIRT.DATE") down from node, taking
// the first matching child's tag at each step, and returns the value
// of the node at the path's end. A non-match at any step yields Null.
// Grounded on gedpath.c's GedPath traversal, narrowed from its
// "TAG->TAG*"-style multi-match path language to the single, always-
// first-match descendant walk this builtin promises.
func pathBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	pathStr, err := eval.EvaluateString(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	cur := ref
	for _, tag := range strings.Split(pathStr, ".") {
		cur = arena.FirstChildWithTag(cur, tag)
		if cur == gnode.NoRef {
			return value.Null, nil
		}
	}
	if arena.Value(cur) == "" {
		return value.Null, nil
	}
	return value.Str(arena.Value(cur)), nil
}
