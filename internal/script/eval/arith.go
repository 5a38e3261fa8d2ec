package eval

import (
	"fmt"
	"strings"

	"github.com/cacack/deadends/internal/script/value"
)

// numericAccumulate folds vals with intOp/floatOp, promoting the whole
// computation to Float if any operand is Float. vals must hold 1..32
// entries of Int or Float; anything else is a type error.
func numericAccumulate(vals []value.Value, init int64, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, error) {
	if len(vals) < 1 || len(vals) > 32 {
		return value.Null, fmt.Errorf("arithmetic built-ins take 1 to 32 arguments, got %d", len(vals))
	}
	allInt := true
	for _, v := range vals {
		switch v.(type) {
		case value.Int:
		case value.Float:
			allInt = false
		default:
			return value.Null, fmt.Errorf("arithmetic operand must be numeric")
		}
	}
	if allInt {
		acc := init
		for i, v := range vals {
			n := int64(v.(value.Int))
			if i == 0 {
				acc = n
				continue
			}
			acc = intOp(acc, n)
		}
		return value.Int(acc), nil
	}
	facc := float64(init)
	for i, v := range vals {
		var f float64
		switch t := v.(type) {
		case value.Int:
			f = float64(t)
		case value.Float:
			f = float64(t)
		}
		if i == 0 {
			facc = f
			continue
		}
		facc = floatOp(facc, f)
	}
	return value.Float(facc), nil
}

// Add is variadic (1..32 args),.5.
func Add(vals []value.Value) (value.Value, error) {
	return numericAccumulate(vals, 0, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
}

// Sub subtracts every argument after the first from the first.
func Sub(vals []value.Value) (value.Value, error) {
	return numericAccumulate(vals, 0, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
}

// Mul is variadic (1..32 args).
func Mul(vals []value.Value) (value.Value, error) {
	return numericAccumulate(vals, 1, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
}

// Div divides the first argument by the second. Division by integer
// zero is a type error; float division by zero follows
// IEEE 754 (producing +/-Inf or NaN).
func Div(a, b value.Value) (value.Value, error) {
	ai, aIsInt := a.(value.Int)
	bi, bIsInt := b.(value.Int)
	if aIsInt && bIsInt {
		if bi == 0 {
			return value.Null, fmt.Errorf("division by zero")
		}
		return value.Int(int64(ai) / int64(bi)), nil
	}
	af, err := asFloat(a)
	if err != nil {
		return value.Null, err
	}
	bf, err := asFloat(b)
	if err != nil {
		return value.Null, err
	}
	return value.Float(af / bf), nil
}

func asFloat(v value.Value) (float64, error) {
	switch t := v.(type) {
	case value.Int:
		return float64(t), nil
	case value.Float:
		return float64(t), nil
	default:
		return 0, fmt.Errorf("arithmetic operand must be numeric")
	}
}

// Mod implements truncated-mod, matching Go's (and C's) `%` operator
// directly: the sign of the result follows the dividend. This is the
// documented resolution of open question on modulus
// semantics.
func Mod(a, b value.Value) (value.Value, error) {
	ai, aok := a.(value.Int)
	bi, bok := b.(value.Int)
	if !aok || !bok {
		return value.Null, fmt.Errorf("mod requires integer operands")
	}
	if bi == 0 {
		return value.Null, fmt.Errorf("division by zero")
	}
	return value.Int(int64(ai) % int64(bi)), nil
}

// Exp raises base to a non-negative integer exponent, saturating to
// math.MaxInt64/MinInt64 on overflow rather than wrapping — the
// documented resolution of open question on exponent
// overflow policy.
func Exp(base, exp value.Value) (value.Value, error) {
	bi, bok := base.(value.Int)
	ei, eok := exp.(value.Int)
	if !bok || !eok {
		bf, err := asFloat(base)
		if err != nil {
			return value.Null, err
		}
		ef, err := asFloat(exp)
		if err != nil {
			return value.Null, err
		}
		result := 1.0
		for i := 0; i < int(ef); i++ {
			result *= bf
		}
		return value.Float(result), nil
	}
	if ei < 0 {
		return value.Null, fmt.Errorf("exp requires a non-negative exponent")
	}
	var acc int64 = 1
	b := int64(bi)
	for i := int64(0); i < int64(ei); i++ {
		next := acc * b
		if b != 0 && next/b != acc {
			if (acc > 0) == (b > 0) {
				return value.Int(int64(^uint64(0) >> 1)), nil // math.MaxInt64
			}
			return value.Int(-int64(^uint64(0)>>1) - 1), nil // math.MinInt64
		}
		acc = next
	}
	return value.Int(acc), nil
}

// Neg negates a numeric value.
func Neg(v value.Value) (value.Value, error) {
	switch t := v.(type) {
	case value.Int:
		return value.Int(-t), nil
	case value.Float:
		return value.Float(-t), nil
	default:
		return value.Null, fmt.Errorf("neg requires a numeric operand")
	}
}

// numericCompare returns (-1, 0, 1) for a vs b; both must share the
// same numeric type after promotion.
func numericCompare(a, b value.Value) (int, error) {
	af, aok := numericValue(a)
	bf, bok := numericValue(b)
	if !aok || !bok {
		return 0, fmt.Errorf("comparison requires numeric operands")
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

func numericValue(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case value.Int:
		return float64(t), true
	case value.Float:
		return float64(t), true
	default:
		return 0, false
	}
}

// Eq, Ne, Lt, Le, Gt, Ge implement the numeric comparison built-ins.
func Eq(a, b value.Value) (value.Value, error) { return cmp(a, b, func(c int) bool { return c == 0 }) }
func Ne(a, b value.Value) (value.Value, error) { return cmp(a, b, func(c int) bool { return c != 0 }) }
func Lt(a, b value.Value) (value.Value, error) { return cmp(a, b, func(c int) bool { return c < 0 }) }
func Le(a, b value.Value) (value.Value, error) { return cmp(a, b, func(c int) bool { return c <= 0 }) }
func Gt(a, b value.Value) (value.Value, error) { return cmp(a, b, func(c int) bool { return c > 0 }) }
func Ge(a, b value.Value) (value.Value, error) { return cmp(a, b, func(c int) bool { return c >= 0 }) }

func cmp(a, b value.Value, pred func(int) bool) (value.Value, error) {
	c, err := numericCompare(a, b)
	if err != nil {
		return value.Null, err
	}
	return value.BoolOf(pred(c)), nil
}

// Eqstr, Nestr compare two strings for (in)equality.
func Eqstr(a, b value.Value) (value.Value, error) { return strCmpBool(a, b, func(c int) bool { return c == 0 }) }
func Nestr(a, b value.Value) (value.Value, error) { return strCmpBool(a, b, func(c int) bool { return c != 0 }) }

func strCmpBool(a, b value.Value, pred func(int) bool) (value.Value, error) {
	as, aok := a.(value.Str)
	bs, bok := b.(value.Str)
	if !aok || !bok {
		return value.Null, fmt.Errorf("string comparison requires string operands")
	}
	return value.BoolOf(pred(strings.Compare(string(as), string(bs)))), nil
}

// Strcmp returns the ternary comparison result as an Int (-1, 0, 1).
func Strcmp(a, b value.Value) (value.Value, error) {
	as, aok := a.(value.Str)
	bs, bok := b.(value.Str)
	if !aok || !bok {
		return value.Null, fmt.Errorf("strcmp requires string operands")
	}
	return value.Int(strings.Compare(string(as), string(bs))), nil
}

// And, Or short-circuit with boolean coercion; callers
// evaluate operands lazily and pass already-evaluated values here only
// for the non-short-circuiting combine step.
func And(a, b value.Value) value.Value { return value.BoolOf(value.Truthy(a) && value.Truthy(b)) }
func Or(a, b value.Value) value.Value  { return value.BoolOf(value.Truthy(a) || value.Truthy(b)) }
