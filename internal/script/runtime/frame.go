// Package runtime implements the script language's execution
// environment: symbol frames, the user-procedure/function tables, and
// the Context passed to every evaluator and built-in call. It favors
// an explicit, owned Runtime value over process-global symbol/function
// tables and a global output stream.
package runtime

import "github.com/cacack/deadends/internal/script/value"

// Frame is a mapping from identifier to bound value: a symbol table.
// One global Frame holds script-wide variables; each procedure/function
// call pushes a fresh Frame holding only its parameters and locals.
type Frame struct {
	bindings map[string]value.Value
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{bindings: make(map[string]value.Value)}
}

// Get returns the binding for name, or (Null, false) if unbound.
func (f *Frame) Get(name string) (value.Value, bool) {
	v, ok := f.bindings[name]
	return v, ok
}

// Set binds name to v, replacing any previous binding; the old value
// is simply dropped and reclaimed by Go's GC.
func (f *Frame) Set(name string, v value.Value) {
	f.bindings[name] = v
}
