package builtin

import (
	"fmt"

	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// ProgramVersion is the string __version reports to running scripts.
const ProgramVersion = "deadends 1.0"

// ioEntries implements output and housekeeping built-ins with no
// genealogical content of their own. Grounded on builtin.c.
func ioEntries() []Entry {
	return []Entry{
		{"print", 1, 32, printBI},
		{"set", 2, 2, setBI},
		{"version", 0, 0, versionBI},
		{"noop", 0, 0, noopBI},
		{"lock", 1, 1, noopBI},
		{"unlock", 1, 1, noopBI},
	}
}

// print writes every string-valued argument to the runtime's output
// sink; non-string arguments are silently skipped.
func printBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	for _, a := range call.Args {
		v, err := eval.Evaluate(a, ctx)
		if err != nil {
			return value.Null, err
		}
		if s, ok := v.(value.Str); ok {
			fmt.Fprint(ctx.RT.Output, string(s))
		}
	}
	return value.Null, nil
}

// set performs the script assignment statement: its first argument
// must be a bare identifier (not evaluated), its second is evaluated
// and bound into the current frame under that name.
func setBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	name, err := identArg(call, 0)
	if err != nil {
		return value.Null, fmt.Errorf("set: %w", err)
	}
	v, err := eval.Evaluate(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	setVar(ctx, name, v)
	return value.Null, nil
}

func versionBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	return value.Str(ProgramVersion), nil
}

// noop is used for built-ins retained only for script compatibility
// (lock/unlock) with no remaining effect.
func noopBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	return value.Null, nil
}
