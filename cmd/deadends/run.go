package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/cacack/deadends/internal/config"
	"github.com/cacack/deadends/internal/ingest"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/parse"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// run loads gedcomFile, parses scriptFile (and everything it
// includes), and interprets that script's main procedure against the
// resulting database.
func run(gedcomFile, scriptFile string, opts *config.Options) error {
	db, err := loadDatabase(gedcomFile, opts)
	if err != nil {
		return err
	}

	prog, err := loadScript(scriptFile, opts.ScriptsSearchPath)
	if err != nil {
		return err
	}

	rt := runtime.NewRuntime(db.RecordIndex, db.NameIndex, db.RefIndex, db.Roots, os.Stdout)
	if opts.MaxCallDepth > 0 {
		rt.MaxCallDepth = opts.MaxCallDepth
	}
	for _, p := range prog.Procs {
		rt.Functions.DefineProc(p)
	}
	for _, f := range prog.Funcs {
		rt.Functions.DefineFunc(f)
	}
	for _, name := range prog.Globals {
		rt.Global.Set(name, value.Null)
	}

	mainProc, ok := rt.Functions.LookupProc("main")
	if !ok {
		return fmt.Errorf("script %s does not define a main procedure", scriptFile)
	}
	if len(mainProc.Params) != 0 {
		return fmt.Errorf("main procedure must take no arguments")
	}

	ctx := runtime.NewContext(rt)
	call := ast.NewProcCall(scriptFile, 0, "main", nil)
	result, _, err := eval.Interpret(call, ctx)
	if err != nil {
		return err
	}
	if result == eval.InterpError {
		return fmt.Errorf("script %s terminated with an unhandled error", scriptFile)
	}
	return nil
}

// loadDatabase resolves gedcomFile on the configured search path,
// ingests it with a progress bar sized from the file, and prints a
// colored summary of any non-fatal errors collected along the way.
func loadDatabase(gedcomFile string, opts *config.Options) (*ingest.Result, error) {
	path, err := resolveFile(gedcomFile, opts.GedcomSearchPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var bar *progressbar.ProgressBar
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		bar = progressbar.DefaultBytes(info.Size(), "ingesting "+path)
	}

	ingestOpts := ingest.DefaultOptions()
	ingestOpts.ReplaceDuplicateKeys = opts.ReplaceDuplicateKeys
	if bar != nil {
		ingestOpts.OnProgress = func(n int64) { bar.Set64(n) }
	}

	res, err := ingest.Read(f, ingestOpts)
	if err != nil {
		return nil, fmt.Errorf("ingesting %s: %w", path, err)
	}
	if bar != nil {
		bar.Finish()
	}
	for _, e := range res.Errors {
		fmt.Fprintln(os.Stderr, color.YellowString("warning: %v", e))
	}

	return res, nil
}

// loadScript parses scriptFile and recursively parses and merges every
// file it includes, by name, on searchPath. A file is only ever parsed
// once even if reachable through more than one include chain.
func loadScript(scriptFile, searchPath string) (*parse.Program, error) {
	path, err := resolveFile(scriptFile, searchPath)
	if err != nil {
		return nil, err
	}

	visited := map[string]bool{}
	return parseWithIncludes(path, searchPath, visited)
}

func parseWithIncludes(path, searchPath string, visited map[string]bool) (*parse.Program, error) {
	if visited[path] {
		return &parse.Program{}, nil
	}
	visited[path] = true

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	prog, err := parse.Parse(path, string(src))
	if err != nil {
		return nil, err
	}

	for _, inc := range prog.Includes {
		incPath, err := resolveFile(inc, searchPath)
		if err != nil {
			return nil, err
		}
		incProg, err := parseWithIncludes(incPath, searchPath, visited)
		if err != nil {
			return nil, err
		}
		prog.Merge(incProg)
	}

	return prog, nil
}
