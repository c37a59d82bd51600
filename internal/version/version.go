// Package version provides version information for the structure-me CLI.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version" yaml:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate" yaml:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// Platform is GOOS/GOARCH.
	Platform string `json:"platform" yaml:"platform"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	kind := "development build"
	if i.IsRelease() {
		kind = "release"
	}
	return fmt.Sprintf("structure-me:\n  Version:  %s (%s)\n  Build ID: %s/%s\n  Go:       %s %s",
		i.Version, kind, i.BuildDate, i.GitCommit, i.GoVersion, i.Platform)
}

// IsRelease reports whether Version is a semantic version without a
// prerelease suffix.
func (i Info) IsRelease() bool {
	v, err := Parse(i.Version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// Parse strips a leading "v" and parses version as a semantic version.
func Parse(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return v, nil
}
