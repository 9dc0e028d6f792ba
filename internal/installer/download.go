package installer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"bolo-installer/internal/logger"
)

// Downloader fetches release assets over HTTP.
type Downloader struct {
	client *http.Client
}

// NewDownloader returns a downloader whose requests are bounded by
// timeout, covering connect through the last body byte.
func NewDownloader(timeout time.Duration) *Downloader {
	return &Downloader{client: &http.Client{Timeout: timeout}}
}

// Fetch writes the body served at url to destPath. A network error, a
// non-2xx status, or an empty body all count as failed transfers; on
// failure nothing is left at destPath.
func (d *Downloader) Fetch(url, destPath string) error {
	logger.Debug("[DEBUG] Downloading %s\n", url)

	resp, err := d.client.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		out.Close()
		os.Remove(destPath)
		return fmt.Errorf("GET %s: read body: %w", url, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	if n == 0 {
		os.Remove(destPath)
		return fmt.Errorf("GET %s: empty response body", url)
	}

	logger.Debug("[DEBUG] Downloaded %d bytes to %s\n", n, destPath)
	return nil
}
