package eval

import (
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// EvaluateBoolean evaluates node and applies C-style truthiness
// coercion.
func EvaluateBoolean(node ast.Node, ctx *runtime.Context) (bool, error) {
	v, err := Evaluate(node, ctx)
	if err != nil {
		return false, err
	}
	return value.Truthy(v), nil
}

// EvaluatePerson evaluates node and requires the result be a Person or
// Null. A Null input propagates silently (null chaining); any other
// variant is a type error.
func EvaluatePerson(node ast.Node, ctx *runtime.Context) (value.Value, gnode.Ref, *gnode.Arena, error) {
	v, err := Evaluate(node, ctx)
	if err != nil {
		return value.Null, gnode.NoRef, nil, err
	}
	if value.IsNull(v) {
		return value.Null, gnode.NoRef, nil, nil
	}
	p, ok := v.(value.Person)
	if !ok {
		return value.Null, gnode.NoRef, nil, scriptError(node, "must be a person")
	}
	return p, p.Ref, p.Arena, nil
}

// EvaluateFamily is EvaluatePerson's sibling for the Family variant.
func EvaluateFamily(node ast.Node, ctx *runtime.Context) (value.Value, gnode.Ref, *gnode.Arena, error) {
	v, err := Evaluate(node, ctx)
	if err != nil {
		return value.Null, gnode.NoRef, nil, err
	}
	if value.IsNull(v) {
		return value.Null, gnode.NoRef, nil, nil
	}
	f, ok := v.(value.Family)
	if !ok {
		return value.Null, gnode.NoRef, nil, scriptError(node, "must be a family")
	}
	return f, f.Ref, f.Arena, nil
}

// EvaluateGNode accepts any of the node-carrying variants
// (GNode/Person/Family/Source/Event/Other); Null propagates silently.
func EvaluateGNode(node ast.Node, ctx *runtime.Context) (gnode.Ref, *gnode.Arena, error) {
	v, err := Evaluate(node, ctx)
	if err != nil {
		return gnode.NoRef, nil, err
	}
	if value.IsNull(v) {
		return gnode.NoRef, nil, nil
	}
	arena, ref, ok := value.Ref(v)
	if !ok {
		return gnode.NoRef, nil, scriptError(node, "must be a node")
	}
	return ref, arena, nil
}

// EvaluateString requires node to evaluate to a String (Null
// propagates as the empty string, matching the language's printing
// convention for missing values).
func EvaluateString(node ast.Node, ctx *runtime.Context) (string, error) {
	v, err := Evaluate(node, ctx)
	if err != nil {
		return "", err
	}
	if value.IsNull(v) {
		return "", nil
	}
	s, ok := v.(value.Str)
	if !ok {
		return "", scriptError(node, "must be a string")
	}
	return string(s), nil
}

// EvaluateInt requires node to evaluate to an Int.
func EvaluateInt(node ast.Node, ctx *runtime.Context) (int64, error) {
	v, err := Evaluate(node, ctx)
	if err != nil {
		return 0, err
	}
	i, ok := v.(value.Int)
	if !ok {
		return 0, scriptError(node, "must be an integer")
	}
	return int64(i), nil
}
