package builtin

import (
	"fmt"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// nameOf builds the display-name callback the query layer needs: a
// person's first NAME child value, falling back to its key.
func nameOf(ri *index.RecordIndex) func(gnode.Ref) string {
	arena := ri.Arena()
	return func(r gnode.Ref) string {
		n := arena.FirstChildWithTag(r, "NAME")
		if n == gnode.NoRef {
			return arena.Key(r)
		}
		return arena.Value(n)
	}
}

func evalArgs(call *ast.BltinCall, ctx *runtime.Context) ([]value.Value, error) {
	out := make([]value.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := eval.Evaluate(a, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func identArg(call *ast.BltinCall, i int) (string, error) {
	id, ok := call.Args[i].(*ast.Identifier)
	if !ok {
		return "", fmt.Errorf("argument %d must be an identifier", i+1)
	}
	return id.Name, nil
}

// lookupVar reads a variable from the current frame, falling back to
// the global frame, matching evaluateIdentifier's fallback rule.
func lookupVar(ctx *runtime.Context, name string) (value.Value, bool) {
	if v, ok := ctx.Frame.Get(name); ok {
		return v, true
	}
	if ctx.Frame != ctx.RT.Global {
		return ctx.RT.Global.Get(name)
	}
	return value.Null, false
}

func setVar(ctx *runtime.Context, name string, v value.Value) {
	ctx.Frame.Set(name, v)
}

// biVariadic adapts a 1..32-arity arithmetic primitive.
func biVariadic(fn func([]value.Value) (value.Value, error)) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		vals, err := evalArgs(call, ctx)
		if err != nil {
			return value.Null, err
		}
		return fn(vals)
	}
}

func biBinary(fn func(a, b value.Value) (value.Value, error)) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		a, err := eval.Evaluate(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		b, err := eval.Evaluate(call.Args[1], ctx)
		if err != nil {
			return value.Null, err
		}
		return fn(a, b)
	}
}

func biUnary(fn func(value.Value) (value.Value, error)) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		a, err := eval.Evaluate(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		return fn(a)
	}
}

func biTernary(fn func(a, b, c value.Value) (value.Value, error)) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		a, err := eval.Evaluate(call.Args[0], ctx)
		if err != nil {
			return value.Null, err
		}
		b, err := eval.Evaluate(call.Args[1], ctx)
		if err != nil {
			return value.Null, err
		}
		c, err := eval.Evaluate(call.Args[2], ctx)
		if err != nil {
			return value.Null, err
		}
		return fn(a, b, c)
	}
}
