// Package commands holds the static corpus of well-known shell commands and
// their common subcommands and flags, used for completion and correction.
// Extending the corpus is a data change, not a code change.
package commands

import "sort"

// Pattern describes a well-known command.
type Pattern struct {
	Subcommands []string
	Flags       []string
}

var patterns = map[string]Pattern{
	"git": {
		Subcommands: []string{
			"status", "commit", "push", "pull", "checkout", "branch", "merge",
			"rebase", "log", "diff", "add", "reset", "fetch", "clone", "init",
			"stash", "tag", "remote",
		},
		Flags: []string{"--help", "--version", "-v", "--verbose", "--global", "--all"},
	},
	"docker": {
		Subcommands: []string{
			"run", "build", "pull", "push", "ps", "exec", "logs", "stop",
			"start", "restart", "rm", "rmi", "volume", "network", "container",
			"image", "compose", "system",
		},
		Flags: []string{
			"--help", "--version", "-d", "--detach", "-it", "-p", "--name",
			"-e", "--env", "--rm",
		},
	},
	"cargo": {
		Subcommands: []string{
			"build", "run", "test", "check", "clean", "install", "update",
			"doc", "publish", "bench", "new", "init", "add",
		},
		Flags: []string{
			"--help", "--version", "--release", "--verbose", "--path",
			"--manifest-path", "--features", "--all-features",
		},
	},
	"kubectl": {
		Subcommands: []string{
			"get", "apply", "describe", "logs", "exec", "delete", "create",
			"config", "rollout", "scale", "port-forward", "cluster-info",
		},
		Flags: []string{"--help", "-n", "--namespace", "-f", "--file", "-o", "--output", "--all-namespaces"},
	},
	"npm": {
		Subcommands: []string{
			"install", "run", "start", "test", "build", "init", "publish",
			"update", "uninstall", "ci", "audit",
		},
		Flags: []string{"--help", "--version", "-g", "--global", "--save-dev"},
	},
	"go": {
		Subcommands: []string{
			"build", "run", "test", "get", "mod", "fmt", "vet", "install",
			"generate", "version", "env", "doc",
		},
		Flags: []string{"--help", "-v", "-o", "-race", "-count"},
	},
	"pip": {
		Subcommands: []string{"install", "uninstall", "freeze", "list", "show", "download"},
		Flags:       []string{"--help", "--version", "-r", "--requirement", "--upgrade", "--user"},
	},
	"make": {
		Subcommands: []string{"all", "build", "clean", "test", "install"},
		Flags:       []string{"--help", "-j", "-C", "--directory", "-f", "--file"},
	},
	"systemctl": {
		Subcommands: []string{"start", "stop", "restart", "status", "enable", "disable", "reload"},
		Flags:       []string{"--help", "--user", "--now"},
	},
}

// builtins lists common commands completed at command position even before
// any history exists or PATH has been scanned.
var builtins = []string{
	"alias", "cat", "cd", "chmod", "chown", "clear", "cp", "curl", "df",
	"du", "echo", "env", "exit", "export", "find", "free", "grep", "head",
	"history", "kill", "killall", "less", "ln", "ls", "man", "mkdir", "mv",
	"nano", "ping", "ps", "pwd", "rm", "rmdir", "rsync", "scp", "sed",
	"sort", "source", "ssh", "sudo", "tail", "tar", "top", "touch",
	"uname", "unzip", "vim", "wc", "wget", "which", "whoami", "zip",
}

// Builtins returns the builtin command names plus every pattern command,
// sorted and deduplicated.
func Builtins() []string {
	seen := make(map[string]bool, len(builtins)+len(patterns))
	out := make([]string, 0, len(builtins)+len(patterns))
	for _, name := range builtins {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for name := range patterns {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Lookup returns the pattern for a well-known command.
func Lookup(command string) (Pattern, bool) {
	p, ok := patterns[command]
	return p, ok
}

// IsKnown reports whether command is in the builtin corpus.
func IsKnown(command string) bool {
	if _, ok := patterns[command]; ok {
		return true
	}
	for _, name := range builtins {
		if name == command {
			return true
		}
	}
	return false
}
