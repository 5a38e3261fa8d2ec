package builtin

import (
	"fmt"

	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// arithEntries wraps eval's arithmetic/comparison primitives as
// built-ins. Grounded on intrpmath.c.
func arithEntries() []Entry {
	return []Entry{
		{"add", 1, 32, biVariadic(eval.Add)},
		{"sub", 1, 32, biVariadic(eval.Sub)},
		{"mul", 1, 32, biVariadic(eval.Mul)},
		{"div", 2, 2, biBinary(eval.Div)},
		{"mod", 2, 2, biBinary(eval.Mod)},
		{"exp", 2, 2, biBinary(eval.Exp)},
		{"neg", 1, 1, biUnary(eval.Neg)},
		{"not", 1, 1, notBI},
		{"eq", 2, 2, biBinary(eval.Eq)},
		{"ne", 2, 2, biBinary(eval.Ne)},
		{"lt", 2, 2, biBinary(eval.Lt)},
		{"le", 2, 2, biBinary(eval.Le)},
		{"gt", 2, 2, biBinary(eval.Gt)},
		{"ge", 2, 2, biBinary(eval.Ge)},
		{"and", 2, 32, andBI},
		{"or", 2, 32, orBI},
		{"incr", 1, 1, incrDecrBI("incr", 1)},
		{"decr", 1, 1, incrDecrBI("decr", -1)},
	}
}

func notBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	b, err := eval.EvaluateBoolean(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	return value.BoolOf(!b), nil
}

// andBI, orBI short-circuit, the one exception to "evaluate every
// argument up front": evaluation of later arguments stops as soon as
// the result is determined.
func andBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	for _, a := range call.Args {
		v, err := eval.Evaluate(a, ctx)
		if err != nil {
			return value.Null, err
		}
		if !value.Truthy(v) {
			return value.False, nil
		}
	}
	return value.True, nil
}

func orBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	for _, a := range call.Args {
		v, err := eval.Evaluate(a, ctx)
		if err != nil {
			return value.Null, err
		}
		if value.Truthy(v) {
			return value.True, nil
		}
	}
	return value.False, nil
}

// incrDecrBI mutates a variable in place by delta and returns its new
// value. Its first argument is an unevaluated identifier rather than
// an expression, since the variable itself must be assignable.
func incrDecrBI(name string, delta int64) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		varName, err := identArg(call, 0)
		if err != nil {
			return value.Null, fmt.Errorf("%s requires a variable argument", name)
		}
		cur, ok := lookupVar(ctx, varName)
		i, isInt := cur.(value.Int)
		if !ok || !isInt {
			return value.Null, fmt.Errorf("%s requires a numeric variable", name)
		}
		next := value.Int(int64(i) + delta)
		setVar(ctx, varName, next)
		return next, nil
	}
}
