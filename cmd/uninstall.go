package cmd

import (
	"github.com/spf13/cobra"

	"bolo-installer/internal/config"
	"bolo-installer/internal/installer"
	"bolo-installer/internal/state"
)

// uninstallCmd removes what a prior install placed, consulting the
// state file for the recorded paths.
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the installed bolo binary and man page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		st := state.Load(cfg.StateFile)
		var rec *state.Record
		if r, ok := st.Tools[cfg.Tool]; ok {
			rec = &r
		}

		if err := installer.Uninstall(cfg, rec); err != nil {
			return err
		}

		delete(st.Tools, cfg.Tool)
		state.Save(cfg.StateFile, st)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
