// Package buildinfo contains build-time metadata kept apart from user configuration
package buildinfo

import "fmt"

// Set at link time:
//
//	go build -ldflags "-X github.com/tphakala/vowelnet/internal/buildinfo.version=v1.2.0 -X github.com/tphakala/vowelnet/internal/buildinfo.buildDate=2026-10-19"
var (
	version   = "dev"
	buildDate = "unknown"
)

// Context contains build-time metadata that is not user-configurable
type Context struct {
	// Version holds the Git version tag from build
	Version string

	// BuildDate is the time when the binary was built
	BuildDate string
}

// Current returns the metadata linked into this binary.
func Current() Context {
	return Context{Version: version, BuildDate: buildDate}
}

// String formats the metadata for the --version output.
func (c Context) String() string {
	return fmt.Sprintf("%s (built %s)", c.Version, c.BuildDate)
}
