// Package engine turns raw hook input (a token or a whole command line) into
// ranked suggestions. It combines recorded history, the builtin command
// corpus, PATH executables, and filesystem completion, and always degrades to
// an empty result rather than an error.
package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"supersnoofer/internal/commands"
	"supersnoofer/internal/completer"
	"supersnoofer/internal/corrector"
	"supersnoofer/internal/store"
	matcher "supersnoofer/pkg/fuzzy"
)

// Source identifies where a completion candidate came from. Lower values
// outrank higher ones when scores tie: history reflects what this user
// actually runs, builtins are generic knowledge, and the filesystem is the
// broadest guess.
type Source int

const (
	SourceHistory Source = iota
	SourceBuiltin
	SourceFilesystem
)

// Candidate is a scored full-line completion.
type Candidate struct {
	Text   string
	Score  float64
	Source Source
}

// History is the subset of the store the engine reads and the PATH scan
// cache it writes through.
type History interface {
	Entries() []store.Entry
	Commands() []string
	MostFrequent() (string, bool)
	MostFrequentWithPrefix(prefix string) (string, bool)
	TopBySuccess(limit int) []string
	Correction(typo string) (string, bool)
	Corrections() map[string]string
	PathIndex(key uint64) ([]string, time.Time, bool)
	SetPathIndex(key uint64, commands []string) error
}

// Options tunes engine behavior. Zero values select the defaults.
type Options struct {
	Threshold  float64
	MaxResults int
	ScanPath   bool
	PathTTL    time.Duration
}

// DefaultMaxResults bounds suggestion lists so shell menus stay readable.
const DefaultMaxResults = 10

// DefaultPathTTL is how long a PATH executable scan stays fresh.
const DefaultPathTTL = 24 * time.Hour

// Engine produces completion and correction suggestions.
type Engine struct {
	history History
	matcher *matcher.Matcher
	opts    Options

	corpusOnce bool
	corpus     []string
}

// New creates an Engine over the given history store.
func New(history History, m *matcher.Matcher, opts Options) *Engine {
	if m == nil {
		m = matcher.NewMatcher(false, matcher.DefaultMaxDistance, matcher.DefaultThreshold)
	}
	if opts.Threshold <= 0 {
		opts.Threshold = m.Threshold()
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.PathTTL <= 0 {
		opts.PathTTL = DefaultPathTTL
	}
	return &Engine{history: history, matcher: m, opts: opts}
}

// Corrector returns a line corrector sharing the engine's command corpus and
// learned corrections.
func (e *Engine) Corrector() *corrector.Corrector {
	return corrector.New(e.matcher, e.history.Corrections(), e.commandCorpus())
}

// SuggestCompletion completes or corrects a single token at command
// position. An empty token yields the most frequently successful command.
// Learned corrections win over fuzzy matching. ok is false when nothing
// clears the threshold.
func (e *Engine) SuggestCompletion(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return e.history.MostFrequent()
	}
	if strings.ContainsRune(token, ' ') {
		// The hook handed us a whole line; correct it instead.
		return e.Corrector().FixLine(token)
	}
	if correction, ok := e.history.Correction(token); ok {
		return correction, true
	}
	return e.matcher.BestMatch(token, e.commandCorpus(), e.opts.Threshold)
}

// SuggestFullCompletion completes a whole command line. Every returned
// string is a full replacement line; completed tokens are preserved and only
// the cursor token is extended or replaced. The list is ranked, deduplicated,
// and bounded by MaxResults.
func (e *Engine) SuggestFullCompletion(line string) []string {
	completed, cursor := Tokenize(line)

	var candidates []Candidate
	if len(completed) == 0 {
		candidates = e.commandPosition(cursor)
	} else {
		candidates = e.argumentPosition(completed, cursor)
	}

	return e.rank(candidates)
}

// MostFrequent returns the most frequently successful command, optionally
// restricted to a prefix.
func (e *Engine) MostFrequent(prefix string) (string, bool) {
	if prefix == "" {
		return e.history.MostFrequent()
	}
	return e.history.MostFrequentWithPrefix(prefix)
}

// Tokenize splits a command line into completed tokens and the token under
// the cursor. Trailing whitespace means the cursor sits on a new, empty
// token. Unbalanced quotes fall back to whitespace splitting so completion
// still works mid-edit.
func Tokenize(line string) (completed []string, cursor string) {
	tokens, err := shlex.Split(line)
	if err != nil {
		tokens = strings.Fields(line)
	}
	if len(tokens) == 0 {
		return nil, ""
	}
	if trailingSpace(line) {
		return tokens, ""
	}
	return tokens[:len(tokens)-1], tokens[len(tokens)-1]
}

func trailingSpace(line string) bool {
	return line != strings.TrimRight(line, " \t")
}

// commandPosition completes the first token of a line.
func (e *Engine) commandPosition(cursor string) []Candidate {
	if cursor == "" {
		var candidates []Candidate
		for _, cmd := range e.history.TopBySuccess(e.opts.MaxResults) {
			candidates = append(candidates, Candidate{Text: cmd, Score: 1.0, Source: SourceHistory})
		}
		return candidates
	}

	candidates := e.historyCandidates("", cursor)

	// A learned correction rewrites the cursor and completes from there.
	if correction, ok := e.history.Correction(cursor); ok {
		candidates = append(candidates, Candidate{Text: correction, Score: 1.0, Source: SourceHistory})
		candidates = append(candidates, e.historyCandidates("", correction)...)
	}

	for _, cmd := range e.commandCorpus() {
		score := e.matcher.Score(cursor, cmd)
		if score >= e.opts.Threshold {
			candidates = append(candidates, Candidate{Text: cmd, Score: score, Source: SourceBuiltin})
		}
	}
	return candidates
}

// argumentPosition completes a token after the command. Known path flags
// force filesystem completion in the flag's mode; otherwise history lines,
// pattern subcommands and flags, and filesystem entries all compete.
func (e *Engine) argumentPosition(completed []string, cursor string) []Candidate {
	// Fix a typo'd command token first so its arguments complete against the
	// real command ("gt s" completes like "git s").
	if fixed, ok := e.Corrector().FixToken(completed[0]); ok {
		completed = append(strings.Fields(fixed), completed[1:]...)
	}

	base := strings.Join(completed, " ")
	prev := completed[len(completed)-1]

	if mode, ok := completer.ModeForFlag(prev); ok {
		var candidates []Candidate
		for _, path := range completer.CompletePath(cursor, mode) {
			candidates = append(candidates, Candidate{Text: base + " " + path, Score: 1.0, Source: SourceFilesystem})
		}
		return candidates
	}

	candidates := e.historyCandidates(base+" ", cursor)
	candidates = append(candidates, e.patternCandidates(completed, base, cursor)...)

	if !strings.HasPrefix(cursor, "-") {
		for _, path := range completer.CompletePath(cursor, completer.AnyPath) {
			candidates = append(candidates, Candidate{Text: base + " " + path, Score: 1.0, Source: SourceFilesystem})
		}
	}
	return candidates
}

// historyCandidates returns recorded lines extending linePrefix+cursor.
// A cheap subsequence prefilter keeps full scoring off the bulk of history;
// when nothing survives the prefilter the whole set is scored, so
// substitution typos still match.
func (e *Engine) historyCandidates(linePrefix, cursor string) []Candidate {
	query := linePrefix + cursor

	var lines []string
	for _, entry := range e.history.Entries() {
		if entry.SuccessCount == 0 {
			continue
		}
		if !strings.HasPrefix(entry.Command, linePrefix) || entry.Command == query {
			continue
		}
		lines = append(lines, entry.Command)
	}

	var kept []string
	for _, line := range lines {
		if fuzzy.MatchNormalizedFold(query, line) {
			kept = append(kept, line)
		}
	}
	pool := lines
	if len(kept) > 0 {
		pool = kept
	}

	var candidates []Candidate
	for _, line := range pool {
		score := e.matcher.Score(query, line)
		if score >= e.opts.Threshold {
			candidates = append(candidates, Candidate{Text: line, Score: score, Source: SourceHistory})
		}
	}
	return candidates
}

// patternCandidates completes subcommands and flags of well-known commands.
func (e *Engine) patternCandidates(completed []string, base, cursor string) []Candidate {
	pattern, ok := commands.Lookup(completed[0])
	if !ok {
		return nil
	}

	var vocab []string
	switch {
	case strings.HasPrefix(cursor, "-"):
		vocab = pattern.Flags
	case len(completed) == 1:
		vocab = pattern.Subcommands
	default:
		return nil
	}

	var candidates []Candidate
	for _, word := range vocab {
		score := 1.0
		if cursor != "" {
			score = e.matcher.Score(cursor, word)
			if score < e.opts.Threshold {
				continue
			}
		}
		candidates = append(candidates, Candidate{Text: base + " " + word, Score: score, Source: SourceBuiltin})
	}
	return candidates
}

// rank deduplicates candidates keeping the best entry per line, orders them
// by score, source, then text, and bounds the list.
func (e *Engine) rank(candidates []Candidate) []string {
	best := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		prev, seen := best[c.Text]
		if !seen || c.Score > prev.Score || (c.Score == prev.Score && c.Source < prev.Source) {
			best[c.Text] = c
		}
	}

	ranked := make([]Candidate, 0, len(best))
	for _, c := range best {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Source != ranked[j].Source {
			return ranked[i].Source < ranked[j].Source
		}
		return ranked[i].Text < ranked[j].Text
	})

	if len(ranked) > e.opts.MaxResults {
		ranked = ranked[:e.opts.MaxResults]
	}
	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Text
	}
	return out
}

// commandCorpus merges builtins, recorded command names, and PATH
// executables, computed once per engine since every invocation is a fresh
// process.
func (e *Engine) commandCorpus() []string {
	if e.corpusOnce {
		return e.corpus
	}
	e.corpusOnce = true

	seen := make(map[string]bool)
	add := func(names []string) {
		for _, name := range names {
			if name != "" && !seen[name] {
				seen[name] = true
				e.corpus = append(e.corpus, name)
			}
		}
	}

	add(commands.Builtins())
	for _, line := range e.history.Commands() {
		if fields := strings.Fields(line); len(fields) > 0 {
			add(fields[:1])
		}
	}
	if e.opts.ScanPath {
		add(completer.Executables(e.history, e.opts.PathTTL))
	}

	sort.Strings(e.corpus)
	return e.corpus
}
