// Package namekey implements the pure string-to-string name formatters
// used as building blocks elsewhere: ToNameKey (the name index's
// lookup key) and Soundex (the `soundex` builtin). Both are plain
// functions with no dependency on the record model, following
// validator/duplicates.go's normalizeName diacritic-folding idiom.
package namekey

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// keyCacheSize bounds the memoization caches below. Name-key and
// Soundex computation is pure but gets re-run for the same surnames
// and given names repeatedly during ingest and script execution, so a
// small bounded cache avoids redoing the diacritic-folding work.
const keyCacheSize = 4096

var (
	nameKeyCache = mustLRU[string, string](keyCacheSize)
	soundexCache = mustLRU[string, string](keyCacheSize)
)

func mustLRU[K comparable, V any](size int) *lru.Cache[K, V] {
	c, err := lru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return c
}

// fold lowercases and strips diacritics, matching
// validator/duplicates.go's normalizeName transform chain exactly.
func fold(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// splitGedcomName splits a GEDCOM NAME value of the form
// "Given /Surname/ Suffix" into its given, surname, and suffix parts.
// A name with no slashes is treated entirely as given names.
func splitGedcomName(name string) (given, surname, suffix string) {
	first := strings.IndexByte(name, '/')
	if first < 0 {
		return strings.TrimSpace(name), "", ""
	}
	second := strings.IndexByte(name[first+1:], '/')
	if second < 0 {
		return strings.TrimSpace(name[:first]), strings.TrimSpace(name[first+1:]), ""
	}
	second += first + 1
	return strings.TrimSpace(name[:first]),
		strings.TrimSpace(name[first+1 : second]),
		strings.TrimSpace(name[second+1:])
}

// ToNameKey normalizes a raw GEDCOM NAME value (or a free-form search
// string) into a surname-first canonical name key: folded surname,
// folded given names, case/diacritic-insensitive. Two names that differ
// only by case, accents, or surrounding slashes produce the same key.
func ToNameKey(name string) string {
	if key, ok := nameKeyCache.Get(name); ok {
		return key
	}
	given, surname, _ := splitGedcomName(name)
	key := fold(surname)
	if g := fold(given); g != "" {
		if key != "" {
			key += " "
		}
		key += g
	}
	nameKeyCache.Add(name, key)
	return key
}

// Surname returns the surname portion of a GEDCOM name value.
func Surname(name string) string {
	_, surname, _ := splitGedcomName(name)
	return surname
}

// Givens returns the given-names portion of a GEDCOM name value.
func Givens(name string) string {
	given, _, _ := splitGedcomName(name)
	return given
}

// soundexCode maps a letter to its Soundex digit, 0 for vowels/ignored
// letters (a, e, i, o, u, y, h, w).
var soundexCode = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// Soundex computes a 4-character Soundex code for a word (e.g. a
// surname). h and w are coded like vowels, so letters with equal codes
// on either side of them are both coded (Ashcraft gives A226).
func Soundex(word string) string {
	if code, ok := soundexCache.Get(word); ok {
		return code
	}
	code := soundex(word)
	soundexCache.Add(word, code)
	return code
}

func soundex(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	var letters []byte
	for i := 0; i < len(w); i++ {
		if w[i] >= 'a' && w[i] <= 'z' {
			letters = append(letters, w[i])
		}
	}
	if len(letters) == 0 {
		return "0000"
	}
	out := []byte{byte(unicode.ToUpper(rune(letters[0])))}
	last := soundexCode[letters[0]]
	for i := 1; i < len(letters) && len(out) < 4; i++ {
		code := soundexCode[letters[i]]
		if code != 0 && code != last {
			out = append(out, code)
		}
		last = code
	}
	for len(out) < 4 {
		out = append(out, '0')
	}
	return string(out)
}
