package builtin

import (
	"strconv"

	"github.com/cacack/deadends/internal/namekey"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// stringEntries wraps eval's string primitives plus the small
// constant/utility built-ins builtin.c defines directly. Grounded on
// intrpstring.c and builtin.c.
func stringEntries() []Entry {
	return []Entry{
		{"concat", 1, 32, biVariadic(eval.Concat)},
		{"lower", 1, 1, biUnary(eval.Lower)},
		{"upper", 1, 1, biUnary(eval.Upper)},
		{"capitalize", 1, 1, biUnary(eval.Capitalize)},
		{"trim", 2, 2, biBinary(eval.Trim)},
		{"rjustify", 2, 2, biBinary(eval.Rjustify)},
		{"substring", 3, 3, biTernary(eval.Substring)},
		{"index", 2, 3, indexBI},
		{"d", 1, 1, biUnary(eval.D)},
		{"f", 1, 1, biUnary(eval.F)},
		{"alpha", 1, 1, biUnary(eval.Alpha)},
		{"card", 1, 1, biUnary(eval.Card)},
		{"ord", 1, 1, biUnary(eval.Ord)},
		{"roman", 1, 1, biUnary(eval.Roman)},
		{"strcmp", 2, 2, biBinary(eval.Strcmp)},
		{"eqstr", 2, 2, biBinary(eval.Eqstr)},
		{"nestr", 2, 2, biBinary(eval.Nestr)},
		{"strlen", 1, 1, strlenBI},
		{"strtoint", 1, 1, strtointBI},
		{"atoi", 1, 1, strtointBI},
		{"strsoundex", 1, 1, strsoundexBI},
		{"save", 1, 1, saveBI},
		{"nl", 0, 0, constStr("\n")},
		{"space", 0, 0, constStr(" ")},
		{"qt", 0, 0, constStr("\"")},
	}
}

// index finds the nth (default 1st) occurrence of a substring; the
// original takes exactly two arguments and always searches for the
// first occurrence, but the underlying eval.Index generalizes to an
// explicit occurrence count, so a third argument is
// accepted here rather than dropped.
func indexBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	haystack, err := eval.Evaluate(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	needle, err := eval.Evaluate(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	nth := value.Value(value.Int(1))
	if len(call.Args) == 3 {
		nth, err = eval.Evaluate(call.Args[2], ctx)
		if err != nil {
			return value.Null, err
		}
	}
	return eval.Index(haystack, needle, nth)
}

func strlenBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	s, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	return value.Int(int64(len([]rune(s)))), nil
}

func strtointBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	s, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	n, convErr := strconv.Atoi(s)
	if convErr != nil {
		return value.Int(0), nil
	}
	return value.Int(int64(n)), nil
}

func strsoundexBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	s, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	return value.Str(namekey.Soundex(s)), nil
}

// save copies a string value verbatim; heap-copy semantics have no
// counterpart over Go's immutable strings, so this is the identity
// function: it returns EvaluateString's result unchanged (a Null
// argument gives ""), with no check that the string is non-empty.
func saveBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	s, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	return value.Str(s), nil
}

func constStr(s string) eval.BuiltinFunc {
	return func(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
		return value.Str(s), nil
	}
}
