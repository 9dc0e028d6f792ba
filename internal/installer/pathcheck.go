package installer

import "path/filepath"

// dirInSearchPath reports whether dir appears among the entries of a
// colon-separated search path. Entries are compared after cleaning;
// empty entries are ignored.
func dirInSearchPath(searchPath, dir string) bool {
	want := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(searchPath) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == want {
			return true
		}
	}
	return false
}
