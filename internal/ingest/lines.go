package ingest

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/parser"
)

// scanLines tokenizes a transcoded GEDCOM stream line by line with the
// teacher's parser.Parser, collecting a non-fatal error for any line
// that fails to parse instead of aborting, matching the ingest
// contract's "error log" half.
func scanLines(r io.Reader) ([]*parser.Line, []error) {
	p := parser.NewParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []*parser.Line
	var errs []error
	for scanner.Scan() {
		line, err := p.ParseLine(scanner.Text())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("reading GEDCOM stream: %w", err))
	}
	return lines, errs
}

// recordFrame tracks one open ancestor while building the arena tree:
// its nesting level and the node itself.
type recordFrame struct {
	level int
	ref   gnode.Ref
}

// buildRecords walks a flat token stream and reconstructs the
// level-delimited hierarchy into the arena, calling onRoot once per
// level-0 record with the record's key (empty if none) and the source
// line number of its opening line. Lines nested under a level that no
// longer has an open ancestor (a corrupt level jump) are dropped.
func buildRecords(arena *gnode.Arena, lines []*parser.Line, onRoot func(root gnode.Ref, key string, lineNumber int)) {
	var stack []recordFrame
	root := gnode.NoRef
	var rootKey string
	var rootLine int

	flush := func() {
		if root != gnode.NoRef {
			onRoot(root, rootKey, rootLine)
		}
	}

	for _, line := range lines {
		node := arena.New(line.Tag, line.Value)
		if line.XRef != "" {
			arena.SetKey(node, line.XRef)
		}

		if line.Level == 0 {
			flush()
			root = node
			rootKey = line.XRef
			rootLine = line.LineNumber
			stack = stack[:0]
			stack = append(stack, recordFrame{level: 0, ref: node})
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].level >= line.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			continue
		}
		parent := stack[len(stack)-1].ref
		arena.AppendChild(parent, node)
		stack = append(stack, recordFrame{level: line.Level, ref: node})
	}
	flush()
}
