package main

import (
	"bolo-installer/cmd"
)

// main is the program entry point. It delegates to cmd.Execute() which
// handles command line argument parsing and execution.
//
// bolo-installer fetches pre-built bolo binaries from the project's
// GitHub releases and places them on the local machine:
//   - Classifies the running machine into one of the published build
//     targets (linux/darwin, x86_64/aarch64) and refuses anything the
//     project does not ship binaries for
//   - Resolves the release to install: an exact pinned version, or the
//     latest published release discovered via the release API
//   - Downloads the matching archive into a per-run temporary workspace,
//     extracts it, and moves the binary into the install directory with
//     executable permissions, never leaving a partial file behind
//   - Best-effort installs the bolo.1 man page alongside; a missing or
//     failing man page never fails the install
//   - Warns (with the exact line to add) when the install directory is
//     not on the user's PATH
//   - Tracks installs in a JSON state file so repeat runs of a pinned
//     version are skipped and uninstall knows what to remove
//
// Hard failures (unsupported platform, version resolution, download,
// extraction, placement) exit non-zero with a message on stderr naming
// the failing step; the temporary workspace is removed on every exit
// path.
func main() {
	cmd.Execute()
}
