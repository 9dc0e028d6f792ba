package installer

import (
	"os"
	"path/filepath"
)

// workspace is the scratch directory one run stages downloads and
// extraction in. It is exclusively owned by that run and removed by
// Close on every exit path; nothing is placed at a destination until it
// has fully landed in here first.
type workspace struct {
	dir string
}

func newWorkspace(tool string) (*workspace, error) {
	dir, err := os.MkdirTemp("", tool+"-install-*")
	if err != nil {
		return nil, err
	}
	return &workspace{dir: dir}, nil
}

// Path joins elements onto the workspace root.
func (w *workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.dir}, elem...)...)
}

// Close deletes the workspace and everything staged in it.
func (w *workspace) Close() error {
	return os.RemoveAll(w.dir)
}
