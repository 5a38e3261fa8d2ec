// Package eval implements the script language's evaluator:
// evaluate(pnode, context) -> (value, error), the coercion
// helpers, and the function bodies behind every built-in. Grounded
// function-by-function on
// _examples/original_source/DeadEndsLib/Interp/evaluate.c and its
// per-category siblings (intrpmath.c, intrpstring.c, intrpperson.c,
// intrpfamily.c, intrpgnode.c, builtin.c).
package eval

import (
	"fmt"

	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// BuiltinFunc is the concrete type behind every ast.BltinCall.Fn.
// Receiving the call node (not pre-evaluated args) lets a built-in
// decide for itself which arguments to evaluate and in what order,
// matching.5's "invoke the function pointer with the
// program node and context."
type BuiltinFunc func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error)

// scriptError carries the source location prefix requires
// of every surfaced error message.
func scriptError(node ast.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("Error in %s at line %d: %s", node.File(), node.Line(), msg)
}

// Evaluate is the single evaluator entry point.
func Evaluate(node ast.Node, ctx *runtime.Context) (value.Value, error) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return value.Int(n.Int), nil
	case *ast.FloatLiteral:
		return value.Float(n.Float), nil
	case *ast.StringLiteral:
		return value.Str(n.String), nil
	case *ast.Identifier:
		return evaluateIdentifier(n, ctx)
	case *ast.BltinCall:
		fn, ok := n.Fn.(BuiltinFunc)
		if !ok {
			return value.Null, scriptError(n, "built-in %q is unresolved", n.Name)
		}
		return fn(n, ctx)
	case *ast.FuncCall:
		return evaluateFuncCall(n, ctx)
	default:
		return value.Null, scriptError(node, "node is not a valid expression")
	}
}

// evaluateIdentifier looks up name in the current frame, falling back
// to the global frame (the shape `global(name)` declarations rely on).
// Strings are returned as-is: value.Str is an immutable Go string, so
// the "copy on read" rule from is automatically satisfied
// without an explicit copy.
func evaluateIdentifier(n *ast.Identifier, ctx *runtime.Context) (value.Value, error) {
	if v, ok := ctx.Frame.Get(n.Name); ok {
		return v, nil
	}
	if ctx.Frame != ctx.RT.Global {
		if v, ok := ctx.RT.Global.Get(n.Name); ok {
			return v, nil
		}
	}
	return value.Null, scriptError(n, "identifier %q is undefined", n.Name)
}

// evaluateFuncCall evaluates arguments in the caller's context, binds
// them into a fresh frame under the callee's parameter names, and
// interprets the body recursively.
func evaluateFuncCall(n *ast.FuncCall, ctx *runtime.Context) (value.Value, error) {
	def, ok := ctx.RT.Functions.LookupFunc(n.Name)
	if !ok {
		return value.Null, scriptError(n, "function %s is undefined", n.Name)
	}
	if len(n.Args) != len(def.Params) {
		return value.Null, scriptError(n, "function %s expects %d arguments, got %d", n.Name, len(def.Params), len(n.Args))
	}
	if err := ctx.RT.EnterCall(); err != nil {
		return value.Null, scriptError(n, "%s", err)
	}
	defer ctx.RT.ExitCall()

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Evaluate(a, ctx)
		if err != nil {
			return value.Null, err
		}
		args[i] = v
	}
	callFrame := runtime.NewFrame()
	for i, p := range def.Params {
		callFrame.Set(p, args[i])
	}
	callCtx := ctx.WithFrame(callFrame)

	result, returned, err := Interpret(def.BodyStmts, callCtx)
	if err != nil {
		return value.Null, err
	}
	if result == InterpReturn {
		return returned, nil
	}
	return value.Null, nil
}
