// Package ingest realizes the ingest contract delivered to the core
//: a root list, a key-to-line-number map, and an error
// log, built from a raw GEDCOM stream. It adapts the parser package's
// line tokenizer and internal/charset's transcoding rather than
// reimplementing them, targeting the generic node-tree model
// (internal/gnode, internal/index) instead of decoder.go's typed
// entity layer.
package ingest

import (
	"io"

	"github.com/cacack/deadends/internal/charset"
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/index"
	"github.com/cacack/deadends/parser"
	"github.com/cacack/deadends/version"
)

// Result is everything the core builds its indices from after an
// ingest: the record index (and the root lists/name/ref indices
// derived from it), the detected GEDCOM version, the key-to-line-number
// map used for diagnostics, and the log of non-fatal errors
// encountered while reading.
type Result struct {
	RecordIndex *index.RecordIndex
	NameIndex   *index.NameIndex
	RefIndex    *index.RefIndex
	Roots       map[gnode.RecordType]*index.RootList
	LineNumbers map[string]int
	Version     version.Version
	Errors      []error
}

// Options controls ingest behavior.
type Options struct {
	// ReplaceDuplicateKeys controls whether a record whose key already
	// exists in the index replaces the earlier one (true) or is
	// rejected (false, the default — the first record with a key wins).
	ReplaceDuplicateKeys bool

	// OnProgress, if set, is called after every underlying Read of the
	// input stream with the cumulative byte count consumed so far,
	// following the same progress-callback shape as decoder.DecodeOptions.
	OnProgress func(bytesRead int64)
}

// DefaultOptions returns the default ingest options.
func DefaultOptions() *Options {
	return &Options{ReplaceDuplicateKeys: false}
}

// Read ingests a GEDCOM stream into a Result. A line that fails to
// parse is logged to Result.Errors and skipped rather than aborting
// the whole ingest, so one malformed record does not prevent the rest
// of the file from loading.
func Read(r io.Reader, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	validated := charset.NewReader(r)
	if opts.OnProgress != nil {
		validated = &countingReader{r: validated, onProgress: opts.OnProgress}
	}
	lines, lineErrs := scanLines(validated)

	ver, _ := version.DetectVersion(lines)

	ri := index.NewRecordIndex()
	arena := ri.Arena()

	res := &Result{
		RecordIndex: ri,
		LineNumbers: make(map[string]int),
		Version:     ver,
		Errors:      lineErrs,
	}

	var persons []gnode.Ref
	var allRoots []gnode.Ref

	buildRecords(arena, lines, func(root gnode.Ref, key string, lineNumber int) {
		tag := arena.Tag(root)
		if tag == "HEAD" || tag == "TRLR" {
			return
		}
		if key != "" {
			res.LineNumbers[key] = lineNumber
		}
		ri.Insert(root, opts.ReplaceDuplicateKeys)
		allRoots = append(allRoots, root)
		if arena.TypeOf(root) == gnode.RecordPerson {
			persons = append(persons, root)
		}
	})

	res.NameIndex = index.BuildNameIndex(arena, persons)
	res.RefIndex = index.NewRefIndex()
	for _, root := range allRoots {
		key := arena.Key(root)
		if key == "" {
			continue
		}
		for _, refn := range arena.ChildrenWithTag(root, "REFN") {
			if v := arena.Value(refn); v != "" {
				res.RefIndex.Insert(v, key)
			}
		}
	}
	res.Roots = index.BuildRootLists(ri)

	return res, nil
}

// countingReader wraps an io.Reader, reporting cumulative bytes read
// to onProgress after every Read call.
type countingReader struct {
	r          io.Reader
	n          int64
	onProgress func(bytesRead int64)
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	c.onProgress(c.n)
	return n, err
}
