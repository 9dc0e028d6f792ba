// Package config resolves the installer's settings from defaults, an
// optional YAML file, and environment overrides, in that order. Commands
// apply flag values on top. The rest of the program only ever sees the
// resulting Config struct; nothing else reads the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the bolo release channel and install locations.
const (
	DefaultOwner        = "bharxhav"
	DefaultRepo         = "bolomoty"
	DefaultTool         = "bolo"
	DefaultBinDir       = "/usr/local/bin"
	DefaultManDir       = "/usr/local/share/man/man1"
	DefaultAPIBase      = "https://api.github.com"
	DefaultDownloadBase = "https://github.com"
	DefaultHTTPTimeout  = 5 * time.Minute
)

// Environment variables recognized by Load. Each one overrides the
// corresponding field after file values are applied.
const (
	EnvVersion      = "BOLO_VERSION"
	EnvBinDir       = "BOLO_INSTALL_DIR"
	EnvManDir       = "BOLO_MAN_DIR"
	EnvAPIBase      = "BOLO_API_BASE"
	EnvDownloadBase = "BOLO_DOWNLOAD_BASE"
)

// Config carries everything one run needs: which release to install,
// where to put it, and which hosts to talk to.
type Config struct {
	// Release identity.
	Owner string
	Repo  string
	Tool  string

	// Version pins an exact release (without the tag prefix). Empty
	// means install the latest published release.
	Version string

	// Destinations.
	BinDir string
	ManDir string

	// Force replaces existing files instead of refusing to overwrite.
	Force bool

	// Hosts. APIBase serves release metadata, DownloadBase serves the
	// assets themselves.
	APIBase      string
	DownloadBase string

	// HTTPTimeout bounds every remote call so a dead peer cannot hang
	// an install forever.
	HTTPTimeout time.Duration

	// SearchPath is the process's PATH as seen at startup, used for the
	// post-install advisory check.
	SearchPath string

	// StateFile records what was installed where, for uninstall and for
	// skipping already-current installs.
	StateFile string
}

// fileConfig mirrors the YAML layout of the optional config file.
type fileConfig struct {
	Install struct {
		Version     string `yaml:"version"`
		BinDir      string `yaml:"bin_dir"`
		ManDir      string `yaml:"man_dir"`
		Force       *bool  `yaml:"force"`
		HTTPTimeout string `yaml:"http_timeout"`
		StateFile   string `yaml:"state_file"`
	} `yaml:"install"`
	Release struct {
		Owner        string `yaml:"owner"`
		Repo         string `yaml:"repo"`
		Tool         string `yaml:"tool"`
		APIBase      string `yaml:"api_base"`
		DownloadBase string `yaml:"download_base"`
	} `yaml:"release"`
}

// Default returns the baseline configuration: bolo's published release
// channel, the conventional system install locations, and the current
// process environment captured for the PATH advisory.
func Default() Config {
	return Config{
		Owner:        DefaultOwner,
		Repo:         DefaultRepo,
		Tool:         DefaultTool,
		BinDir:       DefaultBinDir,
		ManDir:       DefaultManDir,
		APIBase:      DefaultAPIBase,
		DownloadBase: DefaultDownloadBase,
		HTTPTimeout:  DefaultHTTPTimeout,
		SearchPath:   os.Getenv("PATH"),
		StateFile:    defaultStateFile(),
	}
}

// Load builds the effective configuration. An explicit path must exist
// and parse; the default path is used only when present. Environment
// overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile()
	}
	if path != "" {
		if err := cfg.applyFile(path, explicit); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyFile(path string, required bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&c.Version, fc.Install.Version)
	setString(&c.BinDir, fc.Install.BinDir)
	setString(&c.ManDir, fc.Install.ManDir)
	setString(&c.StateFile, fc.Install.StateFile)
	setString(&c.Owner, fc.Release.Owner)
	setString(&c.Repo, fc.Release.Repo)
	setString(&c.Tool, fc.Release.Tool)
	setString(&c.APIBase, fc.Release.APIBase)
	setString(&c.DownloadBase, fc.Release.DownloadBase)
	if fc.Install.Force != nil {
		c.Force = *fc.Install.Force
	}
	if fc.Install.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.Install.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("parse config %s: http_timeout: %w", path, err)
		}
		c.HTTPTimeout = d
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Version, os.Getenv(EnvVersion))
	setString(&c.BinDir, os.Getenv(EnvBinDir))
	setString(&c.ManDir, os.Getenv(EnvManDir))
	setString(&c.APIBase, os.Getenv(EnvAPIBase))
	setString(&c.DownloadBase, os.Getenv(EnvDownloadBase))
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// defaultConfigFile is ~/.config/bolo-installer/config.yaml, or empty
// when the home directory cannot be determined.
func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bolo-installer", "config.yaml")
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.json"
	}
	return filepath.Join(home, ".config", "bolo-installer", "state.json")
}
