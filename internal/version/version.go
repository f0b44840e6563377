// Package version provides build information for peekshell.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/cristianoliveira/peekshell/internal/version.Version=...".
var (
	Version = "development"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version including the commit hash if available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// Full returns a one-line description suitable for `peekshell version --verbose`.
func Full() string {
	s := fmt.Sprintf("peekshell %s (%s %s/%s)", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if Date != "unknown" {
		s += " built " + Date
	}
	return s
}
