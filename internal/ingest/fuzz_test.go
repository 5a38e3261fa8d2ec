package ingest

import (
	"strings"
	"testing"
)

// FuzzRead fuzzes the ingest adapter's entry point with arbitrary byte
// input, following parser/fuzz_test.go's shape: malformed input should
// surface as Result.Errors entries, never a panic.
func FuzzRead(f *testing.F) {
	f.Add([]byte(sampleGedcom))
	f.Add([]byte("0 HEAD\n0 TRLR\n"))
	f.Add([]byte(""))
	f.Add([]byte("\n\n\n"))
	f.Add([]byte("garbage that is not a gedcom line at all"))
	f.Add([]byte("0 @I1@ INDI\n1 NAME John /Smith/\n1 FAMS @F1@\n"))
	f.Add([]byte("-1 HEAD\n99999999999999 TAG\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Panics are not expected; any other outcome (including a
		// non-nil error or non-empty Result.Errors) is.
		_, _ = Read(strings.NewReader(string(data)), nil)
	})
}
