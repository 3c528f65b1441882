// Package version carries build identity, overridable at link time.
package version

import "fmt"

var (
	// VersionTag is the release tag, set via -ldflags at build time.
	VersionTag = "v0.1.0-dev"

	// Commit is the git commit the binary was built from.
	Commit = "unknown"
)

// String returns the human-readable version line.
func String() string {
	return fmt.Sprintf("pattrix %s (%s)", VersionTag, Commit)
}
