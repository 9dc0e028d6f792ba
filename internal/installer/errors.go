package installer

import "errors"

// Failure categories for the install pipeline. Every hard gate wraps one
// of these so callers can classify a failed run with errors.Is; the
// man-page step is best-effort and never surfaces an error at all.
// Platform and version failures keep their own sentinels in the
// packages that detect them.
var (
	ErrMissingDependency = errors.New("missing dependency")
	ErrDownloadFailed    = errors.New("download failed")
	ErrExtractionFailed  = errors.New("extraction failed")
	ErrInstallFailed     = errors.New("install failed")
)
