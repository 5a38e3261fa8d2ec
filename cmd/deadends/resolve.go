package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cacack/deadends/internal/config"
)

// resolveFile finds name among searchPath's directories, mirroring
// RunScript's own resolveFile: a name that already exists as given
// (absolute, or relative to the working directory) is used directly;
// otherwise each search directory is tried in order.
func resolveFile(name string, searchPath string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	for _, dir := range config.SearchPaths(searchPath) {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find %q on search path %q", name, searchPath)
}
