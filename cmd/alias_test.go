package cmd

import "testing"

func TestAliasName(t *testing.T) {
	cases := []struct {
		command string
		want    string
	}{
		{"ls", "ls"},
		{"git", "git"},
		{"cargo", "ca"},
		{"docker compose up", "do"},
		{"git status", "git"},
	}
	for _, tc := range cases {
		if got := aliasName(tc.command); got != tc.want {
			t.Errorf("aliasName(%q): expected %q, got %q", tc.command, tc.want, got)
		}
	}
}

func TestShellRCFile(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	if rc := shellRCFile(); rc == "" {
		t.Error("Expected an rc file for zsh")
	}

	t.Setenv("SHELL", "/usr/bin/nosuchshell")
	if rc := shellRCFile(); rc != "" {
		t.Errorf("Expected no rc file for unknown shell, got %q", rc)
	}
}
