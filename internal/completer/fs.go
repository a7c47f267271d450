// Package completer produces filesystem and PATH-executable completion
// candidates. All lookups degrade to an empty result on I/O errors;
// completion must never surface a filesystem failure to the shell.
package completer

import (
	"os"
	"sort"
	"strings"
)

// Mode selects which filesystem entries a completion may produce.
type Mode int

const (
	// AnyPath completes both files and directories.
	AnyPath Mode = iota
	// DirectoryOnly completes directories, for flags that name a working
	// directory or project root.
	DirectoryOnly
)

// CompletePath lists entries under the directory implied by prefix whose
// basename starts with the remaining prefix segment. Directories gain a
// trailing separator so completion can chain. Hidden entries are skipped
// unless the segment itself starts with a dot. Missing or unreadable
// directories yield an empty slice.
func CompletePath(prefix string, mode Mode) []string {
	dirPart := ""
	segment := prefix
	if idx := strings.LastIndex(prefix, "/"); idx >= 0 {
		dirPart = prefix[:idx+1]
		segment = prefix[idx+1:]
	}

	readDir := dirPart
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	showHidden := strings.HasPrefix(segment, ".")

	var results []string
	for _, entry := range entries {
		name := entry.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(name, segment) {
			continue
		}

		isDir := entry.IsDir()
		if !isDir && entry.Type()&os.ModeSymlink != 0 {
			// Symlinked directories complete like directories.
			if info, err := os.Stat(readDir + "/" + name); err == nil && info.IsDir() {
				isDir = true
			}
		}

		if mode == DirectoryOnly && !isDir {
			continue
		}

		completed := dirPart + name
		if isDir {
			completed += "/"
		}
		results = append(results, completed)
	}

	sort.Strings(results)
	return results
}
