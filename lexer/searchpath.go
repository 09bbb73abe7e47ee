package lexer

import (
	"os"
	"path/filepath"
)

// SearchPath is a list of directories to look for included files.
type SearchPath []string

// Resolve finds a file. If name exists as given, it is returned unchanged.
// Otherwise the directories of the search path are tried in order and the
// first existing dir/name is returned. If no candidate exists, name is
// returned unchanged, leaving the error to the attempt to open it.
func (sp SearchPath) Resolve(name string) string {
	if exists(name) || filepath.IsAbs(name) {
		return name
	}
	for _, dir := range sp {
		if path := filepath.Join(dir, name); exists(path) {
			tracer().Debugf("found %s in %s", name, dir)
			return path
		}
	}
	return name
}

func exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// canonical returns the identity of a file for include-loop detection:
// its absolute path with symbolic links resolved.
func canonical(name string) string {
	abs, err := filepath.Abs(name)
	if err != nil {
		return filepath.Clean(name)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
