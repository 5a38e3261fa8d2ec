package value

import "github.com/cacack/deadends/internal/gnode"

// Truthy implements evaluateBoolean's C-style coercion:
// Null, false, 0, 0.0, "", a null node reference, and an empty
// sequence or list are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case nullValue:
		return false
	case Bool:
		return bool(t)
	case Int:
		return t != 0
	case Float:
		return t != 0
	case Str:
		return t != ""
	case GNode:
		return t.Ref != gnode.NoRef
	case Person:
		return t.Ref != gnode.NoRef
	case Family:
		return t.Ref != gnode.NoRef
	case Source:
		return t.Ref != gnode.NoRef
	case Event:
		return t.Ref != gnode.NoRef
	case Other:
		return t.Ref != gnode.NoRef
	case *List:
		return len(t.Elements) > 0
	case *Table:
		return len(t.Entries) > 0
	case Seq:
		return t.Sequence != nil && t.Sequence.Len() > 0
	default:
		return true
	}
}
