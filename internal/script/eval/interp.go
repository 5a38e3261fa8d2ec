package eval

import (
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// InterpResult is the interpreter's control-flow signal.
// Interpret and Evaluate live in the same package because they are
// mutually recursive: a user function call evaluates its args, then
// interprets its body; interpreting a statement expression calls back
// into Evaluate. That recursion would force two packages importing
// each other if split, so they stay together.
type InterpResult int

const (
	InterpOkay InterpResult = iota
	InterpBreak
	InterpContinue
	InterpReturn
	InterpError
)

// Interpret walks the Next chain starting at stmt, dispatching on
// variant, and returns the terminal InterpResult plus (for
// InterpReturn) the returned value.
func Interpret(stmt ast.Node, ctx *runtime.Context) (InterpResult, value.Value, error) {
	for n := stmt; n != nil; n = n.Next() {
		result, v, err := interpretOne(n, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		switch result {
		case InterpOkay:
			continue
		default:
			return result, v, nil
		}
	}
	return InterpOkay, value.Null, nil
}

func interpretOne(n ast.Node, ctx *runtime.Context) (InterpResult, value.Value, error) {
	switch s := n.(type) {
	case *ast.If:
		return interpretIf(s, ctx)
	case *ast.While:
		return interpretWhile(s, ctx)
	case *ast.Break:
		return InterpBreak, value.Null, nil
	case *ast.Continue:
		return InterpContinue, value.Null, nil
	case *ast.Return:
		if s.Expr == nil {
			return InterpReturn, value.Null, nil
		}
		v, err := Evaluate(s.Expr, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		return InterpReturn, v, nil
	case *ast.ProcDef:
		ctx.RT.Functions.DefineProc(s)
		return InterpOkay, value.Null, nil
	case *ast.FuncDef:
		ctx.RT.Functions.DefineFunc(s)
		return InterpOkay, value.Null, nil
	case *ast.ProcCall:
		return interpretProcCall(s, ctx)
	case *ast.TraverseLoop:
		return interpretTraverseLoop(s, ctx)
	case *ast.NodesLoop:
		return interpretNodesLoop(s, ctx)
	case *ast.ChildrenLoop:
		return interpretChildrenLoop(s, ctx)
	case *ast.SpousesLoop:
		return interpretSpousesLoop(s, ctx)
	case *ast.FamiliesLoop:
		return interpretFamiliesLoop(s, ctx)
	case *ast.ParentLoop:
		return interpretParentLoop(s, ctx)
	case *ast.FamsAsChildLoop:
		return interpretFamsAsChildLoop(s, ctx)
	case *ast.AllXLoop:
		return interpretAllXLoop(s, ctx)
	case *ast.ListLoop:
		return interpretListLoop(s, ctx)
	case *ast.SequenceLoop:
		return interpretSequenceLoop(s, ctx)
	case *ast.NotesLoop:
		return interpretNotesLoop(s, ctx)
	default:
		// Any expression-position node reached as a statement: evaluate
		// it, and if the result is a string, print it. This is what
		// makes report scripts composable: a bare string literal at
		// statement position prints itself.
		v, err := Evaluate(n, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if str, ok := v.(value.Str); ok {
			if ctx.RT.Output != nil {
				_, _ = ctx.RT.Output.Write([]byte(str))
			}
		}
		return InterpOkay, value.Null, nil
	}
}

func interpretIf(s *ast.If, ctx *runtime.Context) (InterpResult, value.Value, error) {
	cond, err := evaluateConditional(s.CondIdent, s.CondExpr, ctx)
	if err != nil {
		return InterpError, value.Null, err
	}
	if cond {
		return Interpret(s.ThenStmts, ctx)
	}
	if s.ElseStmts != nil {
		return Interpret(s.ElseStmts, ctx)
	}
	return InterpOkay, value.Null, nil
}

func interpretWhile(s *ast.While, ctx *runtime.Context) (InterpResult, value.Value, error) {
	for {
		cond, err := evaluateConditional(s.CondIdent, s.CondExpr, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		if !cond {
			return InterpOkay, value.Null, nil
		}
		result, v, err := Interpret(s.BodyStmts, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		switch result {
		case InterpOkay, InterpContinue:
			continue
		case InterpBreak:
			return InterpOkay, value.Null, nil
		default:
			return result, v, nil
		}
	}
}

// evaluateConditional implements the language's "if-let" idiom
//: in the two-form `if (ident, expr)` the expression's
// value is bound to ident in the current frame before coercing to
// bool; in the plain form condIdent is empty.
func evaluateConditional(condIdent string, condExpr ast.Node, ctx *runtime.Context) (bool, error) {
	v, err := Evaluate(condExpr, ctx)
	if err != nil {
		return false, err
	}
	if condIdent != "" {
		ctx.Frame.Set(condIdent, v)
	}
	return value.Truthy(v), nil
}

func interpretProcCall(s *ast.ProcCall, ctx *runtime.Context) (InterpResult, value.Value, error) {
	def, ok := ctx.RT.Functions.LookupProc(s.Name)
	if !ok {
		return InterpError, value.Null, scriptError(s, "procedure %s is undefined", s.Name)
	}
	if len(s.Args) != len(def.Params) {
		return InterpError, value.Null, scriptError(s, "procedure %s expects %d arguments, got %d", s.Name, len(def.Params), len(s.Args))
	}
	if err := ctx.RT.EnterCall(); err != nil {
		return InterpError, value.Null, scriptError(s, "%s", err)
	}
	defer ctx.RT.ExitCall()

	args := make([]value.Value, len(s.Args))
	for i, a := range s.Args {
		v, err := Evaluate(a, ctx)
		if err != nil {
			return InterpError, value.Null, err
		}
		args[i] = v
	}
	callFrame := runtime.NewFrame()
	for i, p := range def.Params {
		callFrame.Set(p, args[i])
	}
	callCtx := ctx.WithFrame(callFrame)

	result, _, err := Interpret(def.BodyStmts, callCtx)
	if err != nil {
		return InterpError, value.Null, err
	}
	switch result {
	case InterpReturn, InterpOkay:
		return InterpOkay, value.Null, nil
	default:
		return InterpError, value.Null, scriptError(s, "break/continue outside a loop")
	}
}
