//go:build ignore

// Build script for Super Snoofer
// Usage: go run build.go [flags]
//
// Examples:
//   go run build.go                 # Build to build/super_snoofer
//   go run build.go -o /usr/local/bin/super_snoofer
//   go run build.go -install        # Build and install via go install

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

var (
	version   = "0.1.0"
	buildTime = time.Now().UTC().Format("2006-01-02_15:04:05")
	commit    = "unknown"
)

func main() {
	output := ""
	install := false

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch {
		case arg == "-h" || arg == "--help":
			fmt.Println("usage: go run build.go [-o output] [-install]")
			return
		case arg == "-install" || arg == "--install":
			install = true
		case arg == "-o":
			if i+1 < len(os.Args) {
				output = os.Args[i+1]
				i++
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", arg)
			os.Exit(1)
		}
	}

	if out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output(); err == nil {
		commit = strings.TrimSpace(string(out))
	}
	if out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output(); err == nil {
		if tag := strings.TrimSpace(string(out)); tag != "" {
			version = strings.TrimPrefix(tag, "v")
		}
	}

	ldflags := fmt.Sprintf("-s -w -X main.Version=%s -X main.BuildTime=%s -X main.Commit=%s",
		version, buildTime, commit)

	var cmd *exec.Cmd
	if install {
		cmd = exec.Command("go", "install", "-ldflags", ldflags, ".")
	} else {
		if output == "" {
			output = filepath.Join("build", "super_snoofer")
		}
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cmd = exec.Command("go", "build", "-ldflags", ldflags, "-o", output, ".")
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
	if !install {
		fmt.Printf("built %s (version %s, commit %s)\n", output, version, commit)
	}
}
