package runtime

import (
	"io"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
)

// MaxCallDepth bounds user procedure/function recursion, guarding
// against runaway mutual recursion between script procedures.
const MaxCallDepth = 1000

// Runtime owns everything that would otherwise be process-global: the
// database's indices, the user function tables, the script output
// sink, and the global symbol frame. One Runtime backs an entire
// script run; Contexts are cheap views over it plus a current Frame.
type Runtime struct {
	Global    *Frame
	Functions *FunctionTables

	RecordIndex *index.RecordIndex
	NameIndex   *index.NameIndex
	RefIndex    *index.RefIndex
	RootLists   map[gnode.RecordType]*index.RootList

	Output io.Writer

	// MaxCallDepth overrides the package default for this Runtime; set
	// to 0 by NewRuntime's caller to mean "use the package default".
	MaxCallDepth int

	callDepth int
}

// NewRuntime constructs a Runtime over an already-built database.
func NewRuntime(ri *index.RecordIndex, ni *index.NameIndex, refi *index.RefIndex, roots map[gnode.RecordType]*index.RootList, out io.Writer) *Runtime {
	return &Runtime{
		Global:       NewFrame(),
		Functions:    NewFunctionTables(),
		RecordIndex:  ri,
		NameIndex:    ni,
		RefIndex:     refi,
		RootLists:    roots,
		Output:       out,
		MaxCallDepth: MaxCallDepth,
	}
}

// EnterCall increments the call-depth counter, returning an error if
// the Runtime's MaxCallDepth would be exceeded.
func (rt *Runtime) EnterCall() error {
	limit := rt.MaxCallDepth
	if limit <= 0 {
		limit = MaxCallDepth
	}
	if rt.callDepth >= limit {
		return errOverflow
	}
	rt.callDepth++
	return nil
}

// ExitCall decrements the call-depth counter; callers must pair every
// successful EnterCall with one ExitCall, typically via defer.
func (rt *Runtime) ExitCall() { rt.callDepth-- }

// Context is the interpreter's execution environment: the current
// symbol frame plus a reference back to the owning Runtime. Passed
// to every evaluator and built-in.
type Context struct {
	RT    *Runtime
	Frame *Frame
}

// NewContext returns a Context over the Runtime's global frame.
func NewContext(rt *Runtime) *Context {
	return &Context{RT: rt, Frame: rt.Global}
}

// WithFrame returns a Context identical to c but scoped to a different
// frame, the shape a procedure/function call uses to push a fresh
// frame while keeping the same Runtime.
func (c *Context) WithFrame(f *Frame) *Context {
	return &Context{RT: c.RT, Frame: f}
}
