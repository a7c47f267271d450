package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintUsageError(t *testing.T) {
	var buf bytes.Buffer
	printUsageError(&buf, errors.New("unknown flag: --nope"))

	out := buf.String()
	if !strings.Contains(out, "unknown flag: --nope") {
		t.Errorf("Expected the error in the output, got %q", out)
	}
	if !strings.Contains(out, "--help") {
		t.Errorf("Expected a --help hint in the output, got %q", out)
	}
}

func TestUnknownFlagReturnsError(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--no-such-flag"})
	defer cmd.SetArgs(nil)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for an unknown flag")
	}
}
