// Package release resolves which bolo release to install and where its
// assets live on the release host.
package release

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bolo-installer/internal/logger"
)

// TagPrefix is applied to user-supplied version pins. Published tags are
// always prefixed (v1.2.3); pins are given without it (1.2.3).
const TagPrefix = "v"

// ErrResolveFailed is returned when the release tag cannot be determined:
// the latest-release query errored, returned a non-2xx status, or its
// body held no usable tag.
var ErrResolveFailed = errors.New("version resolution failed")

// latestRelease mirrors the one field of the release host's JSON payload
// the resolver consumes. Everything else in the response is discarded.
type latestRelease struct {
	TagName string `json:"tag_name"`
}

// Resolver turns an optional version pin into a concrete release tag.
type Resolver struct {
	client  *http.Client
	apiBase string
	owner   string
	repo    string
}

// NewResolver returns a resolver querying apiBase for owner/repo with
// the given timeout on the latest-release call.
func NewResolver(apiBase, owner, repo string, timeout time.Duration) *Resolver {
	return &Resolver{
		client:  &http.Client{Timeout: timeout},
		apiBase: apiBase,
		owner:   owner,
		repo:    repo,
	}
}

// Resolve returns the tag to install. A non-empty pin is prefixed and
// returned without any remote call; whether that release exists is
// proven later by the download itself. An empty pin resolves to the
// latest published tag via a single query, no retries.
func (r *Resolver) Resolve(pin string) (string, error) {
	if pin != "" {
		return TagPrefix + pin, nil
	}
	return r.latest()
}

func (r *Resolver) latest() (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", r.apiBase, r.owner, r.repo)
	logger.Debug("[DEBUG] Fetching latest release from %s\n", url)

	resp, err := r.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: query %s: %v", ErrResolveFailed, url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: query %s: HTTP status %d", ErrResolveFailed, url, resp.StatusCode)
	}

	var release latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("%w: decode release JSON: %v", ErrResolveFailed, err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("%w: release response has no tag_name", ErrResolveFailed)
	}

	logger.Debug("[DEBUG] Latest release tag: %s\n", release.TagName)
	return release.TagName, nil
}
