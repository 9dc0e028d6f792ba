package installer

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"testing"
	"time"

	"bolo-installer/internal/config"
	"bolo-installer/internal/platform"
)

// archiveEntry is one file to put into a test archive.
type archiveEntry struct {
	name string
	body string
	mode int64
}

// tarGzBytes builds a gzipped tar archive in memory.
func tarGzBytes(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	writeTarEntries(t, tar.NewWriter(gw), entries)
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	return buf.Bytes()
}

// tarBytes builds an uncompressed tar archive in memory.
func tarBytes(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	writeTarEntries(t, tar.NewWriter(&buf), entries)
	return buf.Bytes()
}

func writeTarEntries(t *testing.T, tw *tar.Writer, entries []archiveEntry) {
	t.Helper()
	for _, e := range entries {
		mode := e.mode
		if mode == 0 {
			mode = 0o644
		}
		hdr := &tar.Header{
			Name:     e.name,
			Mode:     mode,
			Size:     int64(len(e.body)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header: %v", err)
		}
		if _, err := tw.Write([]byte(e.body)); err != nil {
			t.Fatalf("write tar body: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
}

// zipBytes builds a zip archive in memory.
func zipBytes(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		if e.mode != 0 {
			hdr.SetMode(os.FileMode(e.mode))
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(e.body)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return buf.Bytes()
}

// writeFixture drops raw bytes at path.
func writeFixture(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}

// newReleaseServer mocks the two release-host endpoints the installer
// talks to: the latest-release query and per-tag asset downloads. Any
// asset missing from the map is served as 404.
func newReleaseServer(t *testing.T, tag string, assets map[string][]byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/bharxhav/bolomoty/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name": %q}`, tag)
	})
	mux.HandleFunc("/bharxhav/bolomoty/releases/download/"+tag+"/", func(w http.ResponseWriter, r *http.Request) {
		body, ok := assets[path.Base(r.URL.Path)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// testConfig points an install at a mocked release host and a scratch
// destination tree. SearchPath includes BinDir so no PATH hint fires
// unless a test overrides it.
func testConfig(t *testing.T, baseURL string) config.Config {
	t.Helper()
	root := t.TempDir()
	binDir := filepath.Join(root, "bin")
	return config.Config{
		Owner:        "bharxhav",
		Repo:         "bolomoty",
		Tool:         "bolo",
		BinDir:       binDir,
		ManDir:       filepath.Join(root, "man1"),
		APIBase:      baseURL,
		DownloadBase: baseURL,
		HTTPTimeout:  5 * time.Second,
		SearchPath:   binDir,
	}
}

// newTestInstaller pins classification to the linux/x86_64 target so
// pipeline tests run the same on any development machine.
func newTestInstaller(cfg config.Config) *Installer {
	ins := New(cfg)
	ins.classify = func() (platform.Target, error) { return platform.LinuxAmd64, nil }
	return ins
}
