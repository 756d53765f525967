// Package version holds the build version of kmercmp.
package version

// Version is set via ldflags at build time:
//
//	-X kmercmp/internal/version.Version=v1.2.3
var Version = "dev"
