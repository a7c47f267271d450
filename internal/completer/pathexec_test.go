package completer

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeCache struct {
	commands  []string
	scannedAt time.Time
	hasEntry  bool
	stored    []string
}

func (c *fakeCache) PathIndex(key uint64) ([]string, time.Time, bool) {
	return c.commands, c.scannedAt, c.hasEntry
}

func (c *fakeCache) SetPathIndex(key uint64, commands []string) error {
	c.stored = commands
	return nil
}

func binDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mytool"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return dir
}

func TestExecutablesScansPath(t *testing.T) {
	t.Setenv("PATH", binDir(t))

	cache := &fakeCache{}
	commands := Executables(cache, time.Hour)

	if len(commands) != 1 || commands[0] != "mytool" {
		t.Errorf("Expected [mytool], got %v", commands)
	}
	if len(cache.stored) != 1 {
		t.Errorf("Expected scan to be cached, got %v", cache.stored)
	}
}

func TestExecutablesServesFreshCache(t *testing.T) {
	t.Setenv("PATH", binDir(t))

	cache := &fakeCache{
		commands:  []string{"cached"},
		scannedAt: time.Now(),
		hasEntry:  true,
	}
	commands := Executables(cache, time.Hour)

	if len(commands) != 1 || commands[0] != "cached" {
		t.Errorf("Expected cached result, got %v", commands)
	}
	if cache.stored != nil {
		t.Error("Expected no rescan while cache is fresh")
	}
}

func TestExecutablesRescansStaleCache(t *testing.T) {
	t.Setenv("PATH", binDir(t))

	cache := &fakeCache{
		commands:  []string{"stale"},
		scannedAt: time.Now().Add(-48 * time.Hour),
		hasEntry:  true,
	}
	commands := Executables(cache, 24*time.Hour)

	if len(commands) != 1 || commands[0] != "mytool" {
		t.Errorf("Expected rescan past TTL, got %v", commands)
	}
}

func TestExecutablesEmptyPath(t *testing.T) {
	t.Setenv("PATH", "")
	if commands := Executables(nil, time.Hour); commands != nil {
		t.Errorf("Expected nil for empty PATH, got %v", commands)
	}
}
