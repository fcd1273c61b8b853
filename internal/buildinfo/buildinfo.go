// Package buildinfo carries the version stamped in by the linker, e.g.
//
//	go build -ldflags "-X termgl/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available: the version if one
// was stamped, otherwise the commit.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full line printed by -version.
func String() string {
	return fmt.Sprintf("termgl %s (commit %s, built %s)", Version, Commit, Date)
}
