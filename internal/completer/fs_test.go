package completer

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTree creates a working directory with a mix of files, directories,
// and hidden entries, then chdirs into it.
func setupTree(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	if err := os.Mkdir(filepath.Join(dir, "foo"), 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	for _, name := range []string{"bar.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "foo", "baz.txt"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	t.Chdir(dir)
}

func TestCompletePathListsVisibleEntries(t *testing.T) {
	setupTree(t)

	got := CompletePath("", AnyPath)
	want := []string{"bar.txt", "foo/"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestCompletePathPrefixFilter(t *testing.T) {
	setupTree(t)

	got := CompletePath("f", AnyPath)
	if len(got) != 1 || got[0] != "foo/" {
		t.Errorf("Expected [foo/], got %v", got)
	}

	if got := CompletePath("zzz", AnyPath); len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestCompletePathDirectoryOnly(t *testing.T) {
	setupTree(t)

	got := CompletePath("", DirectoryOnly)
	if len(got) != 1 || got[0] != "foo/" {
		t.Errorf("Expected only directories, got %v", got)
	}
}

func TestCompletePathHiddenEntries(t *testing.T) {
	setupTree(t)

	// Hidden entries only appear when the prefix asks for them.
	got := CompletePath(".", AnyPath)
	if len(got) != 1 || got[0] != ".hidden" {
		t.Errorf("Expected [.hidden], got %v", got)
	}
}

func TestCompletePathIntoSubdirectory(t *testing.T) {
	setupTree(t)

	got := CompletePath("foo/", AnyPath)
	if len(got) != 1 || got[0] != "foo/baz.txt" {
		t.Errorf("Expected [foo/baz.txt], got %v", got)
	}

	got = CompletePath("foo/b", AnyPath)
	if len(got) != 1 || got[0] != "foo/baz.txt" {
		t.Errorf("Expected [foo/baz.txt], got %v", got)
	}
}

func TestCompletePathMissingDirectory(t *testing.T) {
	setupTree(t)

	if got := CompletePath("nope/x", AnyPath); got != nil {
		t.Errorf("Expected nil for missing directory, got %v", got)
	}
}

func TestModeForFlag(t *testing.T) {
	if mode, ok := ModeForFlag("--path"); !ok || mode != DirectoryOnly {
		t.Errorf("Expected --path to be DirectoryOnly, got %v (ok=%v)", mode, ok)
	}
	if mode, ok := ModeForFlag("--manifest-path"); !ok || mode != AnyPath {
		t.Errorf("Expected --manifest-path to be AnyPath, got %v (ok=%v)", mode, ok)
	}
	if _, ok := ModeForFlag("--verbose"); ok {
		t.Error("Expected --verbose not to be a path flag")
	}
}
