package release

import (
	"fmt"

	"bolo-installer/internal/platform"
)

// BinaryArchiveSuffix is the archive format binary assets are published
// in. The extractor's preflight check pins against it.
const BinaryArchiveSuffix = ".tar.gz"

// Asset is one downloadable artifact of a release.
type Asset struct {
	Name string // file name as published on the release
	URL  string // fully qualified download location
}

// Locator builds download URLs for release assets. It is pure string
// templating: no network, no filesystem, identical inputs always yield
// identical URLs.
type Locator struct {
	downloadBase string
	owner        string
	repo         string
	tool         string
}

func NewLocator(downloadBase, owner, repo, tool string) *Locator {
	return &Locator{
		downloadBase: downloadBase,
		owner:        owner,
		repo:         repo,
		tool:         tool,
	}
}

// BinaryAsset locates the archive holding the tool binary built for
// target, e.g. bolo-linux-x86_64-musl.tar.gz.
func (l *Locator) BinaryAsset(tag string, target platform.Target) Asset {
	name := fmt.Sprintf("%s-%s%s", l.tool, target, BinaryArchiveSuffix)
	return Asset{Name: name, URL: l.assetURL(tag, name)}
}

// ManPageAsset locates the roff manual published alongside the binary,
// e.g. bolo.1. It is a raw file, not an archive.
func (l *Locator) ManPageAsset(tag string) Asset {
	name := l.tool + ".1"
	return Asset{Name: name, URL: l.assetURL(tag, name)}
}

func (l *Locator) assetURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		l.downloadBase, l.owner, l.repo, tag, name)
}
