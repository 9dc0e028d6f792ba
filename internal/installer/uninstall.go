package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"bolo-installer/internal/config"
	"bolo-installer/internal/logger"
	"bolo-installer/internal/state"
)

// Uninstall removes the tool binary and man page a prior install placed.
// Paths come from the state record when one exists, falling back to the
// configured destinations. A binary that is already gone is a warning,
// not an error; man-page removal is best-effort, mirroring its install.
func Uninstall(cfg config.Config, rec *state.Record) error {
	binPath := filepath.Join(cfg.BinDir, cfg.Tool)
	manPath := filepath.Join(cfg.ManDir, cfg.Tool+".1")
	if rec != nil {
		if rec.BinaryPath != "" {
			binPath = rec.BinaryPath
		}
		if rec.ManPath != "" {
			manPath = rec.ManPath
		}
	}

	switch err := os.Remove(binPath); {
	case err == nil:
		logger.Info("[INFO] Removed %s\n", binPath)
	case os.IsNotExist(err):
		logger.Warn("[WARN] %s is not installed at %s\n", cfg.Tool, binPath)
	default:
		return fmt.Errorf("remove %s: %w", binPath, err)
	}

	switch err := os.Remove(manPath); {
	case err == nil:
		logger.Info("[INFO] Removed %s\n", manPath)
	case os.IsNotExist(err):
		logger.Debug("[DEBUG] No man page at %s\n", manPath)
	default:
		logger.Warn("[WARN] Failed to remove man page %s: %v\n", manPath, err)
	}

	return nil
}
