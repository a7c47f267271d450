package completer

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/panjf2000/ants/v2"
)

// PathIndexCache caches PATH scan results across invocations, keyed by a
// hash of the PATH value so a changed PATH invalidates the cache naturally.
type PathIndexCache interface {
	PathIndex(key uint64) ([]string, time.Time, bool)
	SetPathIndex(key uint64, commands []string) error
}

// Executables returns the basenames of every executable reachable through
// PATH, sorted and deduplicated. Results are served from cache while younger
// than ttl; a nil cache forces a scan. Scanning walks PATH directories
// concurrently since large PATHs (version managers, nix profiles) can hold
// dozens of directories.
func Executables(cache PathIndexCache, ttl time.Duration) []string {
	pathEnv := os.Getenv("PATH")
	if pathEnv == "" {
		return nil
	}

	key := xxhash.Sum64String(pathEnv)
	if cache != nil {
		if commands, scannedAt, ok := cache.PathIndex(key); ok && time.Since(scannedAt) < ttl {
			return commands
		}
	}

	commands := scanPath(filepath.SplitList(pathEnv))
	if cache != nil {
		_ = cache.SetPathIndex(key, commands)
	}
	return commands
}

func scanPath(dirs []string) []string {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[string]bool)
	)

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		pool = nil
	} else {
		defer pool.Release()
	}

	for _, dir := range dirs {
		dir := dir
		scan := func() {
			defer wg.Done()
			names := executablesIn(dir)
			mu.Lock()
			for _, name := range names {
				seen[name] = true
			}
			mu.Unlock()
		}

		wg.Add(1)
		if pool == nil || pool.Submit(scan) != nil {
			scan()
		}
	}
	wg.Wait()

	commands := make([]string, 0, len(seen))
	for name := range seen {
		commands = append(commands, name)
	}
	sort.Strings(commands)
	return commands
}

func executablesIn(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		typ := entry.Type()
		if !typ.IsRegular() && typ&os.ModeSymlink == 0 {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode().Perm()&0o111 != 0 {
			names = append(names, entry.Name())
		}
	}
	return names
}
