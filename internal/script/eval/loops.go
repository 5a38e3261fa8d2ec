package eval

import (
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// stepLoopBody interprets a loop body once and translates its result
// into the genealogical-loop handling rule common to every loop
// variant: Okay/Continue advance, Break stops the loop
// cleanly, Return/Error propagate outward.
func stepLoopBody(body ast.Node, ctx *runtime.Context) (proceed bool, out InterpResult, val value.Value, err error) {
	result, v, e := Interpret(body, ctx)
	if e != nil {
		return false, InterpError, value.Null, e
	}
	switch result {
	case InterpOkay, InterpContinue:
		return true, InterpOkay, value.Null, nil
	case InterpBreak:
		return false, InterpOkay, value.Null, nil
	default:
		return false, result, v, nil
	}
}

// resolvePointer follows a pointer-valued child node (e.g. a FAMS or
// HUSB node whose value is a cross-reference key) to the record it
// names, skipping silently if the link is dangling.
func resolvePointer(ri *index.RecordIndex, arena *gnode.Arena, pointerNode gnode.Ref) (gnode.Ref, bool) {
	if !arena.Valid(pointerNode) {
		return gnode.NoRef, false
	}
	return ri.Lookup(arena.Value(pointerNode))
}

func interpretTraverseLoop(s *ast.TraverseLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	ref, arena, err := EvaluateGNode(s.GnodeExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if ref == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	var out InterpResult = InterpOkay
	var outVal value.Value = value.Null
	var outErr error
	walkErr := arena.Traverse(ref, func(node gnode.Ref, depth int) bool {
		ctx.Frame.Set(s.GnodeIdent, value.GNode{Arena: arena, Ref: node})
		ctx.Frame.Set(s.LevelIdent, value.Int(int64(depth)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			outErr = err
			return false
		}
		if !proceed {
			out, outVal = result, val
			return false
		}
		return true
	})
	if walkErr != nil {
		return InterpError, value.Null, scriptError(s, "%s", walkErr)
	}
	if outErr != nil {
		return InterpError, value.Null, outErr
	}
	return out, outVal, nil
}

func interpretNodesLoop(s *ast.NodesLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	ref, arena, err := EvaluateGNode(s.GnodeExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if ref == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	for _, child := range arena.Children(ref) {
		ctx.Frame.Set(s.GnodeIdent, value.GNode{Arena: arena, Ref: child})
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
	}
	return InterpOkay, value.Null, nil
}

func interpretChildrenLoop(s *ast.ChildrenLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	_, famRef, arena, err := EvaluateFamily(s.FamilyExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if famRef == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	count := 1
	for _, c := range arena.ChildrenWithTag(famRef, "CHIL") {
		childRef, ok := resolvePointer(ctx.RT.RecordIndex, arena, c)
		if !ok {
			continue
		}
		ctx.Frame.Set(s.ChildIdent, value.NewTyped(arena, childRef))
		ctx.Frame.Set(s.CountIdent, value.Int(int64(count)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
		count++
	}
	return InterpOkay, value.Null, nil
}

func oppositeSexTag(arena *gnode.Arena, person gnode.Ref) string {
	sx := arena.FirstChildWithTag(person, "SEX")
	if sx != gnode.NoRef && arena.Value(sx) == "F" {
		return "HUSB"
	}
	return "WIFE"
}

func interpretSpousesLoop(s *ast.SpousesLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	_, personRef, arena, err := EvaluatePerson(s.PersonExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if personRef == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	ri := ctx.RT.RecordIndex
	wantTag := oppositeSexTag(arena, personRef)
	count := 1
	for _, f := range arena.ChildrenWithTag(personRef, "FAMS") {
		famRef, ok := resolvePointer(ri, arena, f)
		if !ok {
			continue
		}
		spouseNodes := arena.ChildrenWithTag(famRef, wantTag)
		if len(spouseNodes) == 0 {
			continue
		}
		spouseRef, ok := resolvePointer(ri, arena, spouseNodes[0])
		if !ok {
			continue
		}
		ctx.Frame.Set(s.SpouseIdent, value.NewTyped(arena, spouseRef))
		ctx.Frame.Set(s.FamilyIdent, value.NewTyped(arena, famRef))
		ctx.Frame.Set(s.CountIdent, value.Int(int64(count)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
		count++
	}
	return InterpOkay, value.Null, nil
}

func interpretFamiliesLoop(s *ast.FamiliesLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	_, personRef, arena, err := EvaluatePerson(s.PersonExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if personRef == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	ri := ctx.RT.RecordIndex
	wantTag := oppositeSexTag(arena, personRef)
	count := 1
	for _, f := range arena.ChildrenWithTag(personRef, "FAMS") {
		famRef, ok := resolvePointer(ri, arena, f)
		if !ok {
			continue
		}
		ctx.Frame.Set(s.FamilyIdent, value.NewTyped(arena, famRef))
		if spouseNodes := arena.ChildrenWithTag(famRef, wantTag); len(spouseNodes) > 0 {
			if spouseRef, ok := resolvePointer(ri, arena, spouseNodes[0]); ok {
				ctx.Frame.Set(s.SpouseIdent, value.NewTyped(arena, spouseRef))
			} else {
				ctx.Frame.Set(s.SpouseIdent, value.Null)
			}
		} else {
			ctx.Frame.Set(s.SpouseIdent, value.Null)
		}
		ctx.Frame.Set(s.CountIdent, value.Int(int64(count)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
		count++
	}
	return InterpOkay, value.Null, nil
}

func interpretParentLoop(s *ast.ParentLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	_, personRef, arena, err := EvaluatePerson(s.PersonExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if personRef == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	ri := ctx.RT.RecordIndex
	tag := "HUSB"
	if s.Kind == ast.MothersKind {
		tag = "WIFE"
	}
	count := 1
	for _, f := range arena.ChildrenWithTag(personRef, "FAMC") {
		famRef, ok := resolvePointer(ri, arena, f)
		if !ok {
			continue
		}
		parentNodes := arena.ChildrenWithTag(famRef, tag)
		if len(parentNodes) == 0 {
			continue
		}
		parentRef, ok := resolvePointer(ri, arena, parentNodes[0])
		if !ok {
			continue
		}
		ctx.Frame.Set(s.ParentIdent, value.NewTyped(arena, parentRef))
		ctx.Frame.Set(s.FamilyIdent, value.NewTyped(arena, famRef))
		ctx.Frame.Set(s.CountIdent, value.Int(int64(count)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
		count++
	}
	return InterpOkay, value.Null, nil
}

func interpretFamsAsChildLoop(s *ast.FamsAsChildLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	_, personRef, arena, err := EvaluatePerson(s.PersonExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if personRef == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	ri := ctx.RT.RecordIndex
	count := 1
	for _, f := range arena.ChildrenWithTag(personRef, "FAMC") {
		famRef, ok := resolvePointer(ri, arena, f)
		if !ok {
			continue
		}
		ctx.Frame.Set(s.FamilyIdent, value.NewTyped(arena, famRef))
		ctx.Frame.Set(s.CountIdent, value.Int(int64(count)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
		count++
	}
	return InterpOkay, value.Null, nil
}

func interpretAllXLoop(s *ast.AllXLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	var kind gnode.RecordType
	switch s.Kind {
	case ast.AllPersons:
		kind = gnode.RecordPerson
	case ast.AllFamilies:
		kind = gnode.RecordFamily
	case ast.AllSources:
		kind = gnode.RecordSource
	case ast.AllEvents:
		kind = gnode.RecordEvent
	default:
		kind = gnode.RecordOther
	}
	rootList := ctx.RT.RootLists[kind]
	if rootList == nil {
		return InterpOkay, value.Null, nil
	}
	arena := rootList.Arena()
	count := 1
	for _, r := range rootList.Slice() {
		ctx.Frame.Set(s.ElemIdent, value.NewTyped(arena, r))
		ctx.Frame.Set(s.CountIdent, value.Int(int64(count)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
		count++
	}
	return InterpOkay, value.Null, nil
}

func interpretListLoop(s *ast.ListLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	v, err := Evaluate(s.ListExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	list, ok := v.(*value.List)
	if !ok {
		if value.IsNull(v) {
			return InterpOkay, value.Null, nil
		}
		return InterpError, value.Null, scriptError(s, "must be a list")
	}
	for i, elem := range list.Elements {
		ctx.Frame.Set(s.ElemIdent, elem)
		ctx.Frame.Set(s.CountIdent, value.Int(int64(i+1)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
	}
	return InterpOkay, value.Null, nil
}

func interpretSequenceLoop(s *ast.SequenceLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	v, err := Evaluate(s.SeqExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	seqVal, ok := v.(value.Seq)
	if !ok || seqVal.Sequence == nil {
		if value.IsNull(v) {
			return InterpOkay, value.Null, nil
		}
		return InterpError, value.Null, scriptError(s, "must be a sequence")
	}
	arena := seqVal.Sequence.Index().Arena()
	var out InterpResult = InterpOkay
	var outVal value.Value = value.Null
	var outErr error
	seqVal.Sequence.Each(func(root gnode.Ref, count int, elemValue any) bool {
		ctx.Frame.Set(s.ElemIdent, value.NewTyped(arena, root))
		if ev, ok := elemValue.(value.Value); ok && ev != nil {
			ctx.Frame.Set(s.ValueIdent, ev)
		} else {
			ctx.Frame.Set(s.ValueIdent, value.Null)
		}
		ctx.Frame.Set(s.CountIdent, value.Int(int64(count)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			outErr = err
			return false
		}
		if !proceed {
			out, outVal = result, val
			return false
		}
		return true
	})
	if outErr != nil {
		return InterpError, value.Null, outErr
	}
	return out, outVal, nil
}

func interpretNotesLoop(s *ast.NotesLoop, ctx *runtime.Context) (InterpResult, value.Value, error) {
	ref, arena, err := EvaluateGNode(s.GnodeExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if ref == gnode.NoRef {
		return InterpOkay, value.Null, nil
	}
	for _, n := range arena.ChildrenWithTag(ref, "NOTE") {
		ctx.Frame.Set(s.ValueIdent, value.Str(arena.Value(n)))
		proceed, result, val, err := stepLoopBody(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !proceed {
			return result, val, nil
		}
	}
	return InterpOkay, value.Null, nil
}
