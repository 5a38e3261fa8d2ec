package eval

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cacack/deadends/internal/script/value"
)

// Concat joins 1..N strings into one.
func Concat(vals []value.Value) (value.Value, error) {
	var b strings.Builder
	for _, v := range vals {
		s, ok := v.(value.Str)
		if !ok {
			return value.Null, fmt.Errorf("concat requires string operands")
		}
		b.WriteString(string(s))
	}
	return value.Str(b.String()), nil
}

func asStr(v value.Value) (string, error) {
	s, ok := v.(value.Str)
	if !ok {
		return "", fmt.Errorf("operand must be a string")
	}
	return string(s), nil
}

// Lower, Upper, Capitalize implement the language's case built-ins.
func Lower(v value.Value) (value.Value, error) {
	s, err := asStr(v)
	if err != nil {
		return value.Null, err
	}
	return value.Str(strings.ToLower(s)), nil
}

func Upper(v value.Value) (value.Value, error) {
	s, err := asStr(v)
	if err != nil {
		return value.Null, err
	}
	return value.Str(strings.ToUpper(s)), nil
}

func Capitalize(v value.Value) (value.Value, error) {
	s, err := asStr(v)
	if err != nil {
		return value.Null, err
	}
	if s == "" {
		return value.Str(""), nil
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return value.Str(string(r)), nil
}

// Trim truncates s to at most n runes.
func Trim(s value.Value, n value.Value) (value.Value, error) {
	str, err := asStr(s)
	if err != nil {
		return value.Null, err
	}
	ni, ok := n.(value.Int)
	if !ok {
		return value.Null, fmt.Errorf("trim requires an integer length")
	}
	r := []rune(str)
	if int(ni) >= len(r) {
		return value.Str(str), nil
	}
	if ni < 0 {
		ni = 0
	}
	return value.Str(string(r[:ni])), nil
}

// Rjustify right-justifies s within a field of n runes, padding with
// spaces on the left.
func Rjustify(s value.Value, n value.Value) (value.Value, error) {
	str, err := asStr(s)
	if err != nil {
		return value.Null, err
	}
	ni, ok := n.(value.Int)
	if !ok {
		return value.Null, fmt.Errorf("rjustify requires an integer width")
	}
	r := []rune(str)
	pad := int(ni) - len(r)
	if pad <= 0 {
		return value.Str(str), nil
	}
	return value.Str(strings.Repeat(" ", pad) + str), nil
}

// Substring returns the 1-based, inclusive range [lo, hi] of s. Out of
// range or lo > hi yields the empty string.
func Substring(s, lo, hi value.Value) (value.Value, error) {
	str, err := asStr(s)
	if err != nil {
		return value.Null, err
	}
	loI, ok1 := lo.(value.Int)
	hiI, ok2 := hi.(value.Int)
	if !ok1 || !ok2 {
		return value.Null, fmt.Errorf("substring requires integer bounds")
	}
	r := []rune(str)
	l, h := int(loI), int(hiI)
	if l < 1 {
		l = 1
	}
	if h > len(r) {
		h = len(r)
	}
	if l > h {
		return value.Str(""), nil
	}
	return value.Str(string(r[l-1 : h])), nil
}

// kmpIndices returns every 0-based starting index of needle in
// haystack, using the Knuth-Morris-Pratt algorithm.
func kmpIndices(haystack, needle string) []int {
	if needle == "" {
		return nil
	}
	fail := make([]int, len(needle))
	for i := 1; i < len(needle); i++ {
		j := fail[i-1]
		for j > 0 && needle[i] != needle[j] {
			j = fail[j-1]
		}
		if needle[i] == needle[j] {
			j++
		}
		fail[i] = j
	}
	var out []int
	j := 0
	for i := 0; i < len(haystack); i++ {
		for j > 0 && haystack[i] != needle[j] {
			j = fail[j-1]
		}
		if haystack[i] == needle[j] {
			j++
		}
		if j == len(needle) {
			out = append(out, i-j+1)
			j = fail[j-1]
		}
	}
	return out
}

// Index finds the nth (1-based) occurrence of needle in haystack,
// returning its 0-based index, or 0 if there is no such occurrence
// = 4`).
func Index(haystack, needle, nth value.Value) (value.Value, error) {
	h, err := asStr(haystack)
	if err != nil {
		return value.Null, err
	}
	n, err := asStr(needle)
	if err != nil {
		return value.Null, err
	}
	nthI, ok := nth.(value.Int)
	if !ok || nthI < 1 {
		return value.Null, fmt.Errorf("index requires a positive occurrence count")
	}
	matches := kmpIndices(h, n)
	if int(nthI) > len(matches) {
		return value.Int(0), nil
	}
	return value.Int(int64(matches[nthI-1])), nil
}

// D formats an Int in decimal.
func D(v value.Value) (value.Value, error) {
	i, ok := v.(value.Int)
	if !ok {
		return value.Null, fmt.Errorf("d requires an integer")
	}
	return value.Str(strconv.FormatInt(int64(i), 10)), nil
}

// F formats a Float.
func F(v value.Value) (value.Value, error) {
	f, ok := v.(value.Float)
	if !ok {
		return value.Null, fmt.Errorf("f requires a float")
	}
	return value.Str(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// Alpha maps 1..26 to 'a'..'z', falling back to D outside its domain
//.
func Alpha(v value.Value) (value.Value, error) {
	i, ok := v.(value.Int)
	if !ok {
		return value.Null, fmt.Errorf("alpha requires an integer")
	}
	if i >= 1 && i <= 26 {
		return value.Str(string(rune('a' + int(i) - 1))), nil
	}
	return D(v)
}

var cardWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

// Card maps 0..20 to "zero".."twenty", falling back to D outside its
// domain.
func Card(v value.Value) (value.Value, error) {
	i, ok := v.(value.Int)
	if !ok {
		return value.Null, fmt.Errorf("card requires an integer")
	}
	if i >= 0 && int(i) < len(cardWords) {
		return value.Str(cardWords[i]), nil
	}
	return D(v)
}

var ordWords = []string{
	"", "first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth",
}

// Ord maps 1..12 to "first".."twelfth", falling back to D outside its
// domain.
func Ord(v value.Value) (value.Value, error) {
	i, ok := v.(value.Int)
	if !ok {
		return value.Null, fmt.Errorf("ord requires an integer")
	}
	if i >= 1 && int(i) < len(ordWords) {
		return value.Str(ordWords[i]), nil
	}
	return D(v)
}

var romanTable = []struct {
	value  int64
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// Roman formats 1..3999 as a lowercase Roman numeral, falling back to
// D outside its domain = "mcmxciv").
func Roman(v value.Value) (value.Value, error) {
	i, ok := v.(value.Int)
	if !ok {
		return value.Null, fmt.Errorf("roman requires an integer")
	}
	if i < 1 || i > 3999 {
		return D(v)
	}
	n := int64(i)
	var b strings.Builder
	for _, rt := range romanTable {
		for n >= rt.value {
			b.WriteString(rt.symbol)
			n -= rt.value
		}
	}
	return value.Str(b.String()), nil
}
