// Package config resolves deadends' runtime settings from two layered
// sources over the built-in defaults, lowest precedence first: a YAML
// config file, then the environment. No command-line flag layer is
// applied. Each layer is optional and only overrides fields it actually sets; a
// field left at its zero value on every layer keeps DefaultOptions'
// value.
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options carries every tunable deadends needs to ingest a GEDCOM
// file and run a script against it.
type Options struct {
	// GedcomSearchPath is the colon-separated list of directories
	// searched, in order, for a GEDCOM file named without a leading
	// "/" or "./". Mirrors DE_GEDCOM_PATH.
	GedcomSearchPath string `yaml:"gedcom_search_path"`

	// ScriptsSearchPath is the colon-separated list of directories
	// searched for a script file and for include() targets. Mirrors
	// DE_SCRIPTS_PATH.
	ScriptsSearchPath string `yaml:"scripts_search_path"`

	// ReplaceDuplicateKeys controls ingest.Options.ReplaceDuplicateKeys:
	// whether a later record reusing an earlier record's key replaces
	// it (true) or is rejected (false, the default).
	ReplaceDuplicateKeys bool `yaml:"replace_duplicate_keys"`

	// MaxCallDepth overrides runtime.MaxCallDepth for this run; 0
	// means "use the package default".
	MaxCallDepth int `yaml:"max_call_depth"`

	// NoColor disables fatih/color output regardless of terminal
	// detection, for scripted or redirected runs.
	NoColor bool `yaml:"no_color"`
}

// DefaultOptions returns deadends' built-in defaults, used as the base
// layer before any config file or environment variable is applied.
func DefaultOptions() *Options {
	return &Options{
		GedcomSearchPath:     ".",
		ScriptsSearchPath:    ".",
		ReplaceDuplicateKeys: false,
		MaxCallDepth:         0,
		NoColor:              false,
	}
}

// Load builds an Options by layering, in increasing precedence: the
// built-in defaults, a YAML file at path (if path is non-empty and
// the file exists), and the environment variables DE_GEDCOM_PATH,
// DE_SCRIPTS_PATH, DE_REPLACE_DUPLICATE_KEYS, DE_MAX_CALL_DEPTH, and
// NO_COLOR. A missing config file at path is not an error; a malformed
// one is.
func Load(path string) (*Options, error) {
	opts := DefaultOptions()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, opts); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(opts)
	return opts, nil
}

// applyEnv layers environment variables over opts in place.
func applyEnv(opts *Options) {
	if v := os.Getenv("DE_GEDCOM_PATH"); v != "" {
		opts.GedcomSearchPath = v
	}
	if v := os.Getenv("DE_SCRIPTS_PATH"); v != "" {
		opts.ScriptsSearchPath = v
	}
	if v := os.Getenv("DE_REPLACE_DUPLICATE_KEYS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.ReplaceDuplicateKeys = b
		}
	}
	if v := os.Getenv("DE_MAX_CALL_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.MaxCallDepth = n
		}
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		opts.NoColor = true
	}
}

// SearchPaths splits a colon-separated search path into its
// directories, dropping empty segments.
func SearchPaths(path string) []string {
	var out []string
	for _, p := range strings.Split(path, ":") {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"."}
	}
	return out
}
