// Package version reports the release version of the countdown tools.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the release version. Release builds set it with
//
//	-ldflags "-X github.com/mash-protocol/countdown/pkg/version.Version=1.2.0"
var Version = "dev"

// Resolve returns Version, falling back to the module version recorded in
// the build info when Version was not set at link time.
func Resolve() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// String formats a version banner for program, e.g. "countdown 1.2.0 (go1.25.5)".
func String(program string) string {
	return fmt.Sprintf("%s %s (%s)", program, Resolve(), runtime.Version())
}
