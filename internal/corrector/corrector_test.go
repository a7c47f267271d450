package corrector

import (
	"testing"

	"supersnoofer/internal/commands"
	"supersnoofer/pkg/fuzzy"
)

func newTestCorrector(corrections map[string]string) *Corrector {
	m := fuzzy.NewMatcher(false, fuzzy.DefaultMaxDistance, fuzzy.DefaultThreshold)
	return New(m, corrections, commands.Builtins())
}

func TestFixTokenTypo(t *testing.T) {
	c := newTestCorrector(nil)

	fixed, ok := c.FixToken("gt")
	if !ok || fixed != "git" {
		t.Errorf("Expected 'git', got '%s' (ok=%v)", fixed, ok)
	}
}

func TestFixTokenValidCommandUntouched(t *testing.T) {
	c := newTestCorrector(nil)

	if fixed, ok := c.FixToken("git"); ok {
		t.Errorf("Expected no fix for a valid command, got '%s'", fixed)
	}
}

func TestFixTokenLearnedCorrectionWins(t *testing.T) {
	c := newTestCorrector(map[string]string{"gs": "git status"})

	fixed, ok := c.FixToken("gs")
	if !ok || fixed != "git status" {
		t.Errorf("Expected learned 'git status', got '%s' (ok=%v)", fixed, ok)
	}
}

func TestFixTokenJunk(t *testing.T) {
	c := newTestCorrector(nil)

	if fixed, ok := c.FixToken("zzzzqq"); ok {
		t.Errorf("Expected no fix for junk, got '%s'", fixed)
	}
}

func TestFixLineCommandTypo(t *testing.T) {
	c := newTestCorrector(nil)

	fixed, ok := c.FixLine("gt status")
	if !ok || fixed != "git status" {
		t.Errorf("Expected 'git status', got '%s' (ok=%v)", fixed, ok)
	}
}

func TestFixLineSubcommandTypo(t *testing.T) {
	c := newTestCorrector(nil)

	fixed, ok := c.FixLine("git stauts")
	if !ok || fixed != "git status" {
		t.Errorf("Expected 'git status', got '%s' (ok=%v)", fixed, ok)
	}
}

func TestFixLineBothTypos(t *testing.T) {
	c := newTestCorrector(nil)

	fixed, ok := c.FixLine("doker rnu hello")
	if !ok || fixed != "docker run hello" {
		t.Errorf("Expected 'docker run hello', got '%s' (ok=%v)", fixed, ok)
	}
}

func TestFixLineFlagTypo(t *testing.T) {
	c := newTestCorrector(nil)

	fixed, ok := c.FixLine("cargo build --relese")
	if !ok || fixed != "cargo build --release" {
		t.Errorf("Expected 'cargo build --release', got '%s' (ok=%v)", fixed, ok)
	}
}

func TestFixLineLearnedCorrectionExpands(t *testing.T) {
	c := newTestCorrector(map[string]string{"gs": "git status"})

	fixed, ok := c.FixLine("gs")
	if !ok || fixed != "git status" {
		t.Errorf("Expected 'git status', got '%s' (ok=%v)", fixed, ok)
	}
}

func TestFixLineCleanLineUntouched(t *testing.T) {
	c := newTestCorrector(nil)

	if fixed, ok := c.FixLine("git status"); ok {
		t.Errorf("Expected no fix for a clean line, got '%s'", fixed)
	}
}

func TestFixLinePathTokensSkipped(t *testing.T) {
	c := newTestCorrector(nil)

	// The argument looks like a subcommand typo but names a path.
	if fixed, ok := c.FixLine("git ./stauts"); ok {
		t.Errorf("Expected path token untouched, got '%s'", fixed)
	}
}

func TestFixLineEmpty(t *testing.T) {
	c := newTestCorrector(nil)

	if fixed, ok := c.FixLine("   "); ok {
		t.Errorf("Expected no fix for blank input, got '%s'", fixed)
	}
}
