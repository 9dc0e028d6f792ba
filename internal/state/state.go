// Package state persists what the installer has placed on this machine,
// so repeat installs can skip work and uninstall knows what to remove.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"bolo-installer/internal/logger"
)

// Record captures one installed tool: which release it came from, where
// its files landed, and when.
type Record struct {
	Tag         string    `json:"tag"`
	BinaryPath  string    `json:"binary_path"`
	ManPath     string    `json:"man_path,omitempty"`
	InstalledAt time.Time `json:"installed_at"`
}

// State maps tool name to its install record.
type State struct {
	Tools map[string]Record `json:"tools"`
}

// Load reads the state file at path. A missing or unreadable file
// yields an empty state: losing the state file must never block an
// install or uninstall.
func Load(path string) *State {
	st := &State{Tools: make(map[string]Record)}

	raw, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	_ = json.Unmarshal(raw, st)
	if st.Tools == nil {
		st.Tools = make(map[string]Record)
	}
	return st
}

// Save writes st to path as indented JSON, creating the parent
// directory when needed. Failures are logged, not propagated: state is
// bookkeeping, and a full disk should not turn a finished install into
// a reported failure.
func Save(path string, st *State) {
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Error("[ERROR] Failed to create state directory: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s\n", path)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
