// Package installer drives the bolo install pipeline: classify the
// machine, resolve a release tag, download the matching archive into a
// scratch workspace, extract it, and place the binary (and best-effort
// man page) at their destinations.
package installer

import (
	"fmt"
	"path/filepath"

	"bolo-installer/internal/config"
	"bolo-installer/internal/logger"
	"bolo-installer/internal/platform"
	"bolo-installer/internal/release"
)

// VersionResolver yields the release tag to install for a given pin.
type VersionResolver interface {
	Resolve(pin string) (string, error)
}

// Result describes a completed install.
type Result struct {
	Tag        string
	Target     platform.Target
	BinaryPath string
	ManPath    string // empty when the man page was skipped
	PathHint   string // remediation line when BinDir is outside the search path
}

// Installer runs the pipeline for one configuration. Collaborators are
// fields so tests can substitute them.
type Installer struct {
	cfg      config.Config
	classify func() (platform.Target, error)
	resolver VersionResolver
	locator  *release.Locator
	transfer *Downloader
	extract  func(src, dest string) error
}

func New(cfg config.Config) *Installer {
	return &Installer{
		cfg:      cfg,
		classify: platform.Detect,
		resolver: release.NewResolver(cfg.APIBase, cfg.Owner, cfg.Repo, cfg.HTTPTimeout),
		locator:  release.NewLocator(cfg.DownloadBase, cfg.Owner, cfg.Repo, cfg.Tool),
		transfer: NewDownloader(cfg.HTTPTimeout),
		extract:  ExtractArchive,
	}
}

// Run executes the pipeline. Steps run in a fixed order and the first
// hard failure aborts the rest; the workspace is released on every exit
// path. The man-page and PATH steps are advisory and never fail a run.
func (ins *Installer) Run() (*Result, error) {
	if err := ins.checkDependencies(); err != nil {
		return nil, err
	}

	target, err := ins.classify()
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Platform classified as %s\n", target)

	tag, err := ins.resolver.Resolve(ins.cfg.Version)
	if err != nil {
		return nil, err
	}
	logger.Info("[INFO] Installing %s %s (%s)...\n", ins.cfg.Tool, tag, target)

	ws, err := newWorkspace(ins.cfg.Tool)
	if err != nil {
		return nil, fmt.Errorf("%w: create workspace: %v", ErrInstallFailed, err)
	}
	defer func() {
		if cerr := ws.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to remove workspace %s: %v\n", ws.dir, cerr)
		}
	}()

	binary := ins.locator.BinaryAsset(tag, target)
	archivePath := ws.Path(binary.Name)
	if err := ins.transfer.Fetch(binary.URL, archivePath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	unpacked := ws.Path("unpacked")
	if err := ins.extract(archivePath, unpacked); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrExtractionFailed, binary.Name, err)
	}
	binSrc, err := FindBinary(unpacked, ins.cfg.Tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	dest := filepath.Join(ins.cfg.BinDir, ins.cfg.Tool)
	if err := placeFile(binSrc, dest, 0o755, ins.cfg.Force); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}
	logger.Info("[INFO] Placed %s at %s\n", ins.cfg.Tool, dest)

	res := &Result{Tag: tag, Target: target, BinaryPath: dest}
	res.ManPath = ins.installManPage(ws, tag)

	if !dirInSearchPath(ins.cfg.SearchPath, ins.cfg.BinDir) {
		res.PathHint = fmt.Sprintf(`export PATH="%s:$PATH"`, ins.cfg.BinDir)
		logger.Warn("[WARN] %s is not in your PATH. Add it with:\n  %s\n", ins.cfg.BinDir, res.PathHint)
	}

	return res, nil
}

// checkDependencies verifies the pipeline's collaborators before any
// network or filesystem work starts: a transfer client, an extractor,
// and extractor support for the format binary assets are published in.
func (ins *Installer) checkDependencies() error {
	if ins.transfer == nil {
		return fmt.Errorf("%w: transfer client", ErrMissingDependency)
	}
	if ins.extract == nil {
		return fmt.Errorf("%w: archive extractor", ErrMissingDependency)
	}
	if !SupportedArchive(release.BinaryArchiveSuffix) {
		return fmt.Errorf("%w: no extractor for %s assets", ErrMissingDependency, release.BinaryArchiveSuffix)
	}
	return nil
}

// installManPage fetches and places the man page. Every failure here is
// logged and swallowed: a missing manual never fails an install.
func (ins *Installer) installManPage(ws *workspace, tag string) string {
	asset := ins.locator.ManPageAsset(tag)
	staged := ws.Path(asset.Name)
	if err := ins.transfer.Fetch(asset.URL, staged); err != nil {
		logger.Warn("[WARN] Skipping man page: %v\n", err)
		return ""
	}

	dest := filepath.Join(ins.cfg.ManDir, asset.Name)
	if err := placeFile(staged, dest, 0o644, ins.cfg.Force); err != nil {
		logger.Warn("[WARN] Skipping man page: %v\n", err)
		return ""
	}
	logger.Info("[INFO] Placed man page at %s\n", dest)
	return dest
}
