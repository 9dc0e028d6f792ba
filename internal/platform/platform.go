// Package platform classifies the running machine into one of the build
// targets bolo releases are published for.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnsupported is returned for any OS/arch pair without a published
// bolo build. Installing a wrong-architecture binary is worse than
// refusing, so there is no fallback target.
var ErrUnsupported = errors.New("unsupported platform")

// Target names one published build flavor. The values match the asset
// naming used on the release page.
type Target string

const (
	LinuxAmd64  Target = "linux-x86_64-musl"
	LinuxArm64  Target = "linux-aarch64-musl"
	DarwinAmd64 Target = "darwin-x86_64"
	DarwinArm64 Target = "darwin-aarch64"
)

func (t Target) String() string { return string(t) }

// Classify maps raw OS and architecture names onto a release target.
// It accepts both Go runtime spellings (linux/amd64) and uname spellings
// (Linux/x86_64), case-insensitively. Anything outside the published
// matrix fails with ErrUnsupported.
func Classify(osName, arch string) (Target, error) {
	family := strings.ToLower(strings.TrimSpace(osName))
	switch family {
	case "darwin", "macos":
		family = "darwin"
	case "linux":
	default:
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupported, osName, arch)
	}

	var amd64 bool
	switch strings.ToLower(strings.TrimSpace(arch)) {
	case "x86_64", "amd64":
		amd64 = true
	case "aarch64", "arm64":
		amd64 = false
	default:
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupported, osName, arch)
	}

	switch {
	case family == "linux" && amd64:
		return LinuxAmd64, nil
	case family == "linux":
		return LinuxArm64, nil
	case amd64:
		return DarwinAmd64, nil
	default:
		return DarwinArm64, nil
	}
}

// Detect classifies the platform the current process is running on.
func Detect() (Target, error) {
	return Classify(runtime.GOOS, runtime.GOARCH)
}
