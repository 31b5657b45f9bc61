// Package version reports the build version of ecomood.
package version

import "runtime/debug"

// Set with -ldflags "-X github.com/ecomood/ecomood/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version = ""
	commit  = ""
)

const devVersion = "dev"

// GetVersion returns the linked version, the module version recorded by
// go install, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetCommit returns the linked commit hash, or "unknown".
func GetCommit() string {
	if commit != "" {
		return commit
	}
	return "unknown"
}
