package eval

import (
	"testing"

	"github.com/cacack/deadends/internal/script/value"
)

// FuzzArith fuzzes the arithmetic evaluation layer (Add/Sub/Mul/Div/
// Mod/Exp) with arbitrary int64 pairs, following parser/fuzz_test.go's
// shape: errors (divide-by-zero, overflow) are expected, panics are
// not.
func FuzzArith(f *testing.F) {
	f.Add(int64(1), int64(2))
	f.Add(int64(0), int64(0))
	f.Add(int64(-1), int64(1))
	f.Add(int64(1), int64(0))
	f.Add(int64(9223372036854775807), int64(2))
	f.Add(int64(-9223372036854775808), int64(-1))

	f.Fuzz(func(t *testing.T, a, b int64) {
		vals := []value.Value{value.Int(a), value.Int(b)}
		_, _ = Add(vals)
		_, _ = Sub(vals)
		_, _ = Mul(vals)
		_, _ = Div(value.Int(a), value.Int(b))
		_, _ = Mod(value.Int(a), value.Int(b))
		// Exp's exponent loop is O(exponent); clamp b so a pathological
		// fuzz input can't turn this into a multi-minute iteration.
		_, _ = Exp(value.Int(a), value.Int(b%1000))
		_, _ = Neg(value.Int(a))
	})
}
