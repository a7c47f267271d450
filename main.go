// Super Snoofer - fuzzy command correction and completion for your shell
// Main entry point for the application
package main

import (
	"runtime"

	"supersnoofer/cmd"
)

var (
	// Version is set during build via ldflags
	Version = "dev"
	// BuildTime is set during build via ldflags
	BuildTime = "unknown"
	// Commit is set during build via ldflags
	Commit = "unknown"
	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

func main() {
	cmd.Version = Version
	cmd.BuildTime = BuildTime
	cmd.Commit = Commit

	cmd.Execute()
}
