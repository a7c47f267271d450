// Package fuzzy provides fuzzy matching for command correction and completion.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
	"github.com/sahilm/fuzzy"
)

// Scoring constants. The threshold mirrors the similarity cutoff used for
// command correction; candidates below it are never suggested. The weights
// blend the normalized edit distance with a subsequence-match signal so that
// "dokcer" still finds "docker" even though the subsequence test alone fails.
const (
	// DefaultThreshold is the minimum similarity for a correction candidate.
	DefaultThreshold = 0.6
	// DefaultMaxDistance is the largest raw edit distance tolerated for
	// token-level corrections.
	DefaultMaxDistance = 3

	distanceWeight    = 0.7
	subsequenceWeight = 0.3
)

// Match represents a scored candidate.
type Match struct {
	Text  string
	Score float64
}

// Matcher scores candidate strings against a query.
type Matcher struct {
	caseSensitive bool
	maxDistance   int
	threshold     float64
}

// NewMatcher creates a new fuzzy matcher.
func NewMatcher(caseSensitive bool, maxDistance int, threshold float64) *Matcher {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{
		caseSensitive: caseSensitive,
		maxDistance:   maxDistance,
		threshold:     threshold,
	}
}

// Threshold returns the matcher's similarity cutoff.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// MaxDistance returns the matcher's raw edit-distance cutoff.
func (m *Matcher) MaxDistance() int {
	return m.maxDistance
}

// Score returns a similarity in [0,1], higher for closer matches. Candidates
// that start with the query score 1.0 so prefix completions always outrank
// pure edit-distance matches; users most often mistype suffixes.
func (m *Matcher) Score(query, candidate string) float64 {
	if query == "" {
		return 0
	}
	q, c := query, candidate
	if !m.caseSensitive {
		q = strings.ToLower(q)
		c = strings.ToLower(c)
	}
	if q == c || strings.HasPrefix(c, q) {
		return 1.0
	}
	return m.blend(q, c)
}

// Similarity returns the pure distance-derived similarity without the prefix
// boost. It is symmetric: Similarity(a, b) == Similarity(b, a).
func (m *Matcher) Similarity(a, b string) float64 {
	if !m.caseSensitive {
		a = strings.ToLower(a)
		b = strings.ToLower(b)
	}
	if a == b {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	// Damerau-Levenshtein tolerates transpositions ("gti" -> "git" is one
	// edit, not two).
	dist := edlib.DamerauLevenshteinDistance(a, b)
	sim := 1.0 - float64(dist)/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

// Distance returns the plain Levenshtein distance between two strings,
// honoring the matcher's case sensitivity.
func (m *Matcher) Distance(a, b string) int {
	if !m.caseSensitive {
		a = strings.ToLower(a)
		b = strings.ToLower(b)
	}
	return levenshtein.ComputeDistance(a, b)
}

// blend combines the distance similarity with a subsequence signal. The
// subsequence term only ever raises the score above the distance similarity,
// so abbreviations like "gst" still reach "git status" while transpositions
// like "gti", whose letters are out of order, keep their full distance score.
func (m *Matcher) blend(q, c string) float64 {
	sim := m.Similarity(q, c)

	var subseq float64
	if found := fuzzy.Find(q, []string{c}); len(found) > 0 {
		subseq = float64(found[0].Score) / float64(len(q)*10)
		if subseq > 1 {
			subseq = 1
		}
		if subseq < 0 {
			subseq = 0
		}
	}

	score := distanceWeight*sim + subsequenceWeight*subseq
	if score < sim {
		score = sim
	}
	if score > 1 {
		score = 1
	}
	return score
}

// BestMatch returns the highest-scoring candidate at or above threshold.
// Ties break deterministically: shorter candidate first, then lexicographic,
// so output is stable across runs for identical input.
func (m *Matcher) BestMatch(query string, corpus []string, threshold float64) (string, bool) {
	best := ""
	bestScore := 0.0
	found := false

	for _, candidate := range corpus {
		score := m.Score(query, candidate)
		if score < threshold {
			continue
		}
		if !found || betterMatch(candidate, score, best, bestScore) {
			best = candidate
			bestScore = score
			found = true
		}
	}
	return best, found
}

// Matches returns every candidate scoring at or above threshold, sorted by
// score descending with the same deterministic tie-break as BestMatch.
func (m *Matcher) Matches(query string, corpus []string, threshold float64) []Match {
	var matches []Match
	for _, candidate := range corpus {
		score := m.Score(query, candidate)
		if score >= threshold {
			matches = append(matches, Match{Text: candidate, Score: score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return betterMatch(matches[i].Text, matches[i].Score, matches[j].Text, matches[j].Score)
	})
	return matches
}

// betterMatch reports whether candidate a at score as ranks ahead of b at bs.
func betterMatch(a string, as float64, b string, bs float64) bool {
	if as != bs {
		return as > bs
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
