// Package corrector provides token-by-token command line correction.
// It fixes the command token against learned corrections and the known
// command corpus, then fixes subcommand and flag tokens context-aware
// against the pattern table for the (corrected) command.
package corrector

import (
	"strings"

	"supersnoofer/internal/commands"
	"supersnoofer/pkg/fuzzy"
)

// flagDistanceMax bounds flag-token corrections: flags are short, so more
// than two edits away is a different flag, not a typo.
const flagDistanceMax = 2

// Corrector corrects command lines against a known-command corpus.
type Corrector struct {
	matcher     *fuzzy.Matcher
	corrections map[string]string
	commands    []string
	known       map[string]bool
}

// New creates a Corrector. corrections maps typo -> learned correction;
// corpus is the set of valid command names.
func New(matcher *fuzzy.Matcher, corrections map[string]string, corpus []string) *Corrector {
	known := make(map[string]bool, len(corpus))
	for _, c := range corpus {
		known[c] = true
	}
	return &Corrector{
		matcher:     matcher,
		corrections: corrections,
		commands:    corpus,
		known:       known,
	}
}

// FixToken corrects a command-position token. ok is false when the token is
// already valid or no candidate clears the threshold. A learned correction
// wins over fuzzy matching and may expand to multiple words.
func (c *Corrector) FixToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if correction, ok := c.corrections[token]; ok {
		return correction, true
	}
	if c.known[token] {
		return "", false
	}
	best, ok := c.matcher.BestMatch(token, c.commands, c.matcher.Threshold())
	if !ok || best == token {
		return "", false
	}
	return best, true
}

// FixLine corrects typos across a whole command line: the command token
// first, then subcommand and long-flag tokens against the pattern table.
// Path-like and quoted tokens are left untouched. ok is false when nothing
// needed fixing.
func (c *Corrector) FixLine(line string) (string, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", false
	}

	changed := false

	if fixed, ok := c.FixToken(tokens[0]); ok {
		// A learned correction may carry arguments ("gs" -> "git status").
		fixedTokens := strings.Fields(fixed)
		tokens = append(fixedTokens, tokens[1:]...)
		changed = true
	}

	if pattern, ok := commands.Lookup(tokens[0]); ok {
		if c.fixSubcommand(tokens, pattern) {
			changed = true
		}
		if c.fixFlags(tokens, pattern) {
			changed = true
		}
	}

	if !changed {
		return "", false
	}
	return strings.Join(tokens, " "), true
}

func (c *Corrector) fixSubcommand(tokens []string, pattern commands.Pattern) bool {
	if len(tokens) < 2 {
		return false
	}
	sub := tokens[1]
	if skipToken(sub) || strings.HasPrefix(sub, "-") {
		return false
	}
	for _, known := range pattern.Subcommands {
		if sub == known {
			return false
		}
	}
	best, ok := c.matcher.BestMatch(sub, pattern.Subcommands, c.matcher.Threshold())
	if !ok || best == sub || c.matcher.Distance(sub, best) > c.matcher.MaxDistance() {
		return false
	}
	tokens[1] = best
	return true
}

func (c *Corrector) fixFlags(tokens []string, pattern commands.Pattern) bool {
	changed := false
	for i, tok := range tokens[1:] {
		if !strings.HasPrefix(tok, "--") || strings.Contains(tok, "=") {
			continue
		}
		valid := false
		for _, known := range pattern.Flags {
			if tok == known {
				valid = true
				break
			}
		}
		if valid {
			continue
		}
		best, ok := c.matcher.BestMatch(tok, pattern.Flags, c.matcher.Threshold())
		if !ok || best == tok || c.matcher.Distance(tok, best) > flagDistanceMax {
			continue
		}
		tokens[i+1] = best
		changed = true
	}
	return changed
}

// skipToken reports tokens that should never be corrected: paths and quoted
// strings carry user data, not command vocabulary.
func skipToken(tok string) bool {
	return strings.ContainsAny(tok, "/'\"") || strings.HasPrefix(tok, ".")
}
