// Package cmd holds build metadata injected via ldflags.
package cmd

// Set at build time via -ldflags; the zero values identify a local build.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
