package runtime

import "github.com/cacack/deadends/internal/script/ast"

// FunctionTables holds the two user-defined registries:
// procedures and functions, each name -> definition. Built-ins are not
// stored here; they are resolved at AST-construction time directly
// into each BltinCall's function pointer.
type FunctionTables struct {
	Procs map[string]*ast.ProcDef
	Funcs map[string]*ast.FuncDef
}

// NewFunctionTables returns empty procedure/function tables.
func NewFunctionTables() *FunctionTables {
	return &FunctionTables{
		Procs: make(map[string]*ast.ProcDef),
		Funcs: make(map[string]*ast.FuncDef),
	}
}

// DefineProc registers a procedure definition, replacing any prior
// definition under the same name.
func (t *FunctionTables) DefineProc(p *ast.ProcDef) { t.Procs[p.Name] = p }

// DefineFunc registers a function definition, replacing any prior
// definition under the same name.
func (t *FunctionTables) DefineFunc(f *ast.FuncDef) { t.Funcs[f.Name] = f }

// LookupProc returns the named procedure, if any.
func (t *FunctionTables) LookupProc(name string) (*ast.ProcDef, bool) {
	p, ok := t.Procs[name]
	return p, ok
}

// LookupFunc returns the named function, if any.
func (t *FunctionTables) LookupFunc(name string) (*ast.FuncDef, bool) {
	f, ok := t.Funcs[name]
	return f, ok
}
