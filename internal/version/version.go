// Package version holds build version information.
package version

// Version is the application version, overridden at build time via -ldflags.
var Version = "dev"
