package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"bolo-installer/internal/config"
	"bolo-installer/internal/installer"
	"bolo-installer/internal/logger"
	"bolo-installer/internal/release"
	"bolo-installer/internal/state"
)

var (
	pinVersion string
	binDir     string
	manDir     string
	force      bool
)

// installCmd downloads the bolo build matching this machine and places
// it at the configured destination, recording the result in the state
// file.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download the right bolo build for this machine and install it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if pinVersion != "" {
			cfg.Version = pinVersion
		}
		if binDir != "" {
			cfg.BinDir = binDir
		}
		if manDir != "" {
			cfg.ManDir = manDir
		}
		if force {
			cfg.Force = true
		}

		st := state.Load(cfg.StateFile)
		if rec, ok := st.Tools[cfg.Tool]; ok && !cfg.Force && upToDate(cfg, rec) {
			logger.Info("[INFO] %s %s is already installed at %s. Skipping.\n", cfg.Tool, rec.Tag, rec.BinaryPath)
			return nil
		}

		res, err := installer.New(cfg).Run()
		if err != nil {
			return err
		}

		st.Tools[cfg.Tool] = state.Record{
			Tag:         res.Tag,
			BinaryPath:  res.BinaryPath,
			ManPath:     res.ManPath,
			InstalledAt: time.Now().UTC(),
		}
		state.Save(cfg.StateFile, st)

		logger.Info("[INFO] Installed %s %s to %s\n", cfg.Tool, res.Tag, res.BinaryPath)
		return nil
	},
}

// upToDate reports whether the state record already satisfies the
// requested pin and its binary is still on disk. Only a pinned version
// can be checked without a remote query.
func upToDate(cfg config.Config, rec state.Record) bool {
	if cfg.Version == "" || rec.Tag != release.TagPrefix+cfg.Version {
		return false
	}
	_, err := os.Stat(rec.BinaryPath)
	return err == nil
}

func init() {
	installCmd.Flags().StringVar(&pinVersion, "version", "", "Exact version to install (default: latest release)")
	installCmd.Flags().StringVar(&binDir, "bin-dir", "", "Directory to install the binary into")
	installCmd.Flags().StringVar(&manDir, "man-dir", "", "Directory to install the man page into")
	installCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	rootCmd.AddCommand(installCmd)
}
