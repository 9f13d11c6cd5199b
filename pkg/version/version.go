// Package version exposes the build version of the renderlab binary.
package version

// Version is the semantic version of the build. It is overridden at release
// time via -ldflags "-X github.com/rvickers/renderlab/pkg/version.Version=...".
//
//nolint:gochecknoglobals // Set by the linker at build time
var Version = "0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return Version
}
