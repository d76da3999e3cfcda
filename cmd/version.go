// Package cmd contains build-time variables injected via ldflags.
package cmd

import "runtime/debug"

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// BuildVersion returns Version, or the module version recorded by
// `go install` when no version was injected.
func BuildVersion() string {
	return buildVersion(Version, debug.ReadBuildInfo)
}

func buildVersion(injected string, read func() (*debug.BuildInfo, bool)) string {
	if injected != "dev" {
		return injected
	}
	info, ok := read()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return injected
	}
	return info.Main.Version
}
