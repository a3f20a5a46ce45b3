// Package version reports the pnpmsync build version.
package version

import "runtime/debug"

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/indaco/pnpmsync/internal/version.version=1.2.3"
var version = ""

// GetVersion returns the build version without a leading "v", or "dev".
func GetVersion() string {
	if version != "" {
		return trimV(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return trimV(info.Main.Version)
	}
	return "dev"
}

func trimV(s string) string {
	if len(s) > 1 && s[0] == 'v' {
		return s[1:]
	}
	return s
}
