package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"bolo-installer/internal/logger"
)

// debug toggles verbose logging, set via the global --debug flag.
var debug bool

// cfgFile is an explicit config file path, set via --config/-c. Empty
// means the default location is used when it exists.
var cfgFile string

// rootCmd is the base command for the bolo-installer CLI.
var rootCmd = &cobra.Command{
	Use:   "bolo-installer",
	Short: "Install the bolo binary from its published releases",

	// Initialize logging before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	// Failures are reported once by Execute, without usage echo.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero when a command fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to configuration file")
}
