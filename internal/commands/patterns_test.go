package commands

import (
	"sort"
	"testing"
)

func TestBuiltinsSortedAndDeduplicated(t *testing.T) {
	all := Builtins()
	if len(all) == 0 {
		t.Fatal("Expected a non-empty builtin corpus")
	}
	if !sort.StringsAreSorted(all) {
		t.Error("Expected sorted builtins")
	}
	seen := make(map[string]bool)
	for _, name := range all {
		if seen[name] {
			t.Errorf("Duplicate builtin '%s'", name)
		}
		seen[name] = true
	}
	// Pattern commands are part of the corpus.
	if !seen["git"] || !seen["cargo"] {
		t.Error("Expected pattern commands in the builtin corpus")
	}
}

func TestLookup(t *testing.T) {
	pattern, ok := Lookup("git")
	if !ok {
		t.Fatal("Expected a pattern for git")
	}
	found := false
	for _, sub := range pattern.Subcommands {
		if sub == "status" {
			found = true
		}
	}
	if !found {
		t.Error("Expected 'status' among git subcommands")
	}

	if _, ok := Lookup("nosuchcommand"); ok {
		t.Error("Expected no pattern for unknown command")
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("ls") {
		t.Error("Expected 'ls' to be known")
	}
	if !IsKnown("docker") {
		t.Error("Expected 'docker' to be known")
	}
	if IsKnown("zzzzqq") {
		t.Error("Expected 'zzzzqq' to be unknown")
	}
}
