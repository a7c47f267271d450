// Package store persists command history, learned corrections, and the PATH
// executable index in a single bbolt database under the user cache directory.
//
// Every write happens inside a bbolt transaction, so concurrent shell
// sessions can never observe a partially written file. A database locked by
// another session past the timeout is left untouched and the store answers
// from memory for this invocation. A genuinely corrupt database is moved
// aside and recreated; if even that fails the store degrades to memory-only
// mode so completion keeps working.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"go.etcd.io/bbolt"
)

var (
	historyBucket     = []byte("history")
	correctionsBucket = []byte("corrections")
	pathIndexBucket   = []byte("pathindex")
	settingsBucket    = []byte("settings")
)

// historyEnabledKey stores the history tracking toggle; absent means enabled.
var historyEnabledKey = []byte("history_enabled")

// openTimeout bounds how long we wait for the bbolt file lock. Completion
// runs inline with shell keystrokes and must never stall.
const openTimeout = time.Second

// Entry is a single recorded command with its outcome counters.
// Unknown JSON fields are ignored on load, so old binaries can read caches
// written by newer ones.
type Entry struct {
	Command      string    `json:"command"`
	SuccessCount uint64    `json:"success_count"`
	FailureCount uint64    `json:"failure_count"`
	FirstUsed    time.Time `json:"first_used"`
	LastUsed     time.Time `json:"last_used"`
}

// correctionEntry is the stored value for a learned typo correction.
type correctionEntry struct {
	Correction string    `json:"correction"`
	Count      uint64    `json:"count"`
	LastUsed   time.Time `json:"last_used"`
}

// pathIndexEntry caches a PATH executable scan.
type pathIndexEntry struct {
	Commands  []string  `json:"commands"`
	ScannedAt time.Time `json:"scanned_at"`
}

// Tally pairs a string with an occurrence count.
type Tally struct {
	Text  string
	Count uint64
}

// Store owns the persisted history state. When db is nil the store runs in
// memory-only mode and nothing survives the process.
type Store struct {
	db     *bbolt.DB
	mem    *memStore
	path   string
	closed bool
}

// Open loads the store at path, creating it if absent. A database held by
// another session falls back to memory without touching the file; corrupt
// databases are renamed aside and recreated. A store is always returned,
// never an error, because a broken cache must not break the shell. The
// returned error, when non-nil, describes why persistence is degraded.
func Open(path string) (*Store, error) {
	if path == "" {
		return NewMemory(), fmt.Errorf("empty cache path, using in-memory store")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewMemory(), fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := openDB(path)
	if errors.Is(err, bbolt.ErrTimeout) {
		// Another session holds the lock. The database is healthy, just
		// busy; leave it alone and answer from memory this invocation.
		return NewMemory(), fmt.Errorf("cache locked by another session, continuing in memory: %w", err)
	}
	if err != nil {
		// Move the unreadable file aside and start fresh; the sidecar is
		// kept for postmortem rather than silently destroyed.
		_ = os.Rename(path, path+".corrupt")
		db, err = openDB(path)
	}
	if err != nil {
		return NewMemory(), fmt.Errorf("failed to open cache, continuing in memory: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewMemory returns a store that keeps everything in process memory.
// Used as the degraded fallback and by tests.
func NewMemory() *Store {
	return &Store{mem: newMemStore()}
}

func openDB(path string) (*bbolt.DB, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{historyBucket, correctionsBucket, pathIndexBucket, settingsBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InMemory reports whether the store lost its backing file.
func (s *Store) InMemory() bool {
	return s.db == nil
}

// Path returns the backing file path, empty in memory-only mode.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database. Safe to call repeatedly.
func (s *Store) Close() error {
	if s.closed || s.db == nil {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// RecordSuccess increments the success counter for command.
func (s *Store) RecordSuccess(command string) error {
	return s.record(command, true)
}

// RecordFailure increments the failure counter for command.
func (s *Store) RecordFailure(command string) error {
	return s.record(command, false)
}

func (s *Store) record(command string, success bool) error {
	if command == "" || !s.HistoryEnabled() {
		return nil
	}
	if s.db == nil {
		s.mem.record(command, success)
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(historyBucket)

		entry := Entry{Command: command, FirstUsed: time.Now()}
		if raw := bucket.Get([]byte(command)); raw != nil {
			// A stale or foreign value is treated as absent rather than
			// aborting the write.
			_ = json.Unmarshal(raw, &entry)
			entry.Command = command
		}
		bumpEntry(&entry, success)

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(command), data)
	})
}

func bumpEntry(entry *Entry, success bool) {
	if success {
		entry.SuccessCount++
	} else {
		entry.FailureCount++
	}
	entry.LastUsed = time.Now()
	if entry.FirstUsed.IsZero() {
		entry.FirstUsed = entry.LastUsed
	}
}

// Entries returns every history entry, ordered by command string.
func (s *Store) Entries() []Entry {
	if s.db == nil {
		return s.mem.entries()
	}
	var entries []Entry
	_ = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(historyBucket).ForEach(func(k, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return nil // skip unreadable entries, never fail a read
			}
			entries = append(entries, entry)
			return nil
		})
	})
	return entries
}

// Commands returns every recorded command string, ordered.
func (s *Store) Commands() []string {
	entries := s.Entries()
	commands := make([]string, len(entries))
	for i, entry := range entries {
		commands[i] = entry.Command
	}
	return commands
}

// Len returns the number of distinct recorded commands.
func (s *Store) Len() int {
	if s.db == nil {
		return s.mem.len()
	}
	n := 0
	_ = s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(historyBucket).Stats().KeyN
		return nil
	})
	return n
}

// MostFrequent returns the command with the highest success count, ties
// broken by most recent use. ok is false when nothing succeeded yet.
func (s *Store) MostFrequent() (string, bool) {
	return s.MostFrequentWithPrefix("")
}

// MostFrequentWithPrefix restricts MostFrequent to commands starting with
// prefix.
func (s *Store) MostFrequentWithPrefix(prefix string) (string, bool) {
	var best Entry
	found := false
	for _, entry := range s.Entries() {
		if entry.SuccessCount == 0 {
			continue
		}
		if prefix != "" && !hasPrefix(entry.Command, prefix) {
			continue
		}
		if !found ||
			entry.SuccessCount > best.SuccessCount ||
			(entry.SuccessCount == best.SuccessCount && entry.LastUsed.After(best.LastUsed)) {
			best = entry
			found = true
		}
	}
	return best.Command, found
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// TopBySuccess returns up to limit commands ordered by success count
// descending, then recency. Used for bounded empty-prefix completion.
func (s *Store) TopBySuccess(limit int) []string {
	entries := s.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SuccessCount != entries[j].SuccessCount {
			return entries[i].SuccessCount > entries[j].SuccessCount
		}
		return entries[i].LastUsed.After(entries[j].LastUsed)
	})

	var commands []string
	for _, entry := range entries {
		if entry.SuccessCount == 0 {
			continue
		}
		commands = append(commands, entry.Command)
		if limit > 0 && len(commands) >= limit {
			break
		}
	}
	return commands
}

// LearnCorrection stores typo -> correction, bumping its use count when the
// same correction is learned again.
func (s *Store) LearnCorrection(typo, correction string) error {
	if typo == "" || correction == "" {
		return nil
	}
	if s.db == nil {
		s.mem.learnCorrection(typo, correction)
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(correctionsBucket)

		entry := correctionEntry{Correction: correction}
		if raw := bucket.Get([]byte(typo)); raw != nil {
			var prev correctionEntry
			if err := json.Unmarshal(raw, &prev); err == nil && prev.Correction == correction {
				entry.Count = prev.Count
			}
		}
		entry.Count++
		entry.LastUsed = time.Now()

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(typo), data)
	})
}

// Correction returns the learned correction for typo, if any.
func (s *Store) Correction(typo string) (string, bool) {
	if s.db == nil {
		return s.mem.correction(typo)
	}
	var correction string
	found := false
	_ = s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(correctionsBucket).Get([]byte(typo))
		if raw == nil {
			return nil
		}
		var entry correctionEntry
		if err := json.Unmarshal(raw, &entry); err == nil {
			correction = entry.Correction
			found = true
		}
		return nil
	})
	return correction, found
}

// Corrections returns all learned typo -> correction pairs.
func (s *Store) Corrections() map[string]string {
	if s.db == nil {
		return s.mem.allCorrections()
	}
	out := make(map[string]string)
	_ = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(correctionsBucket).ForEach(func(k, v []byte) error {
			var entry correctionEntry
			if err := json.Unmarshal(v, &entry); err == nil {
				out[string(k)] = entry.Correction
			}
			return nil
		})
	})
	return out
}

// FrequentTypos returns up to limit typos ordered by how often each was
// corrected.
func (s *Store) FrequentTypos(limit int) []Tally {
	return sortTallies(s.typoTallies(), limit)
}

// FrequentCorrections aggregates correction use counts by target command.
func (s *Store) FrequentCorrections(limit int) []Tally {
	byTarget := make(map[string]uint64)
	for _, t := range s.typoTallies() {
		if correction, ok := s.Correction(t.Text); ok {
			byTarget[correction] += t.Count
		}
	}
	tallies := make([]Tally, 0, len(byTarget))
	for text, count := range byTarget {
		tallies = append(tallies, Tally{Text: text, Count: count})
	}
	return sortTallies(tallies, limit)
}

func (s *Store) typoTallies() []Tally {
	if s.db == nil {
		return s.mem.typoTallies()
	}
	var tallies []Tally
	_ = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(correctionsBucket).ForEach(func(k, v []byte) error {
			var entry correctionEntry
			if err := json.Unmarshal(v, &entry); err == nil {
				tallies = append(tallies, Tally{Text: string(k), Count: entry.Count})
			}
			return nil
		})
	})
	return tallies
}

func sortTallies(tallies []Tally, limit int) []Tally {
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Count != tallies[j].Count {
			return tallies[i].Count > tallies[j].Count
		}
		return tallies[i].Text < tallies[j].Text
	})
	if limit > 0 && len(tallies) > limit {
		tallies = tallies[:limit]
	}
	return tallies
}

// PathIndex returns the cached PATH executable listing for key, with the
// scan time so callers can enforce a TTL.
func (s *Store) PathIndex(key uint64) ([]string, time.Time, bool) {
	if s.db == nil {
		return s.mem.pathIndex(key)
	}
	var entry pathIndexEntry
	found := false
	_ = s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(pathIndexBucket).Get(pathIndexKey(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &entry); err == nil {
			found = true
		}
		return nil
	})
	return entry.Commands, entry.ScannedAt, found
}

// SetPathIndex caches a PATH executable listing under key.
func (s *Store) SetPathIndex(key uint64, commands []string) error {
	if s.db == nil {
		s.mem.setPathIndex(key, commands)
		return nil
	}
	data, err := json.Marshal(pathIndexEntry{Commands: commands, ScannedAt: time.Now()})
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(pathIndexBucket).Put(pathIndexKey(key), data)
	})
}

func pathIndexKey(key uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, key)
	return buf
}

// HistoryEnabled reports whether command recording is active. New stores
// default to enabled.
func (s *Store) HistoryEnabled() bool {
	if s.db == nil {
		return s.mem.historyEnabled
	}
	enabled := true
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(settingsBucket).Get(historyEnabledKey); raw != nil {
			enabled = string(raw) != "false"
		}
		return nil
	})
	return enabled
}

// SetHistoryEnabled toggles command recording. Existing history is kept
// either way; disabling only stops new entries.
func (s *Store) SetHistoryEnabled(enabled bool) error {
	if s.db == nil {
		s.mem.historyEnabled = enabled
		return nil
	}
	value := "true"
	if !enabled {
		value = "false"
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(settingsBucket).Put(historyEnabledKey, []byte(value))
	})
}

// ClearHistory removes all recorded commands.
func (s *Store) ClearHistory() error {
	return s.clearBucket(historyBucket, func() { s.mem.clearHistory() })
}

// ClearCorrections removes all learned corrections.
func (s *Store) ClearCorrections() error {
	return s.clearBucket(correctionsBucket, func() { s.mem.clearCorrections() })
}

// ClearPathIndex drops the cached PATH scans.
func (s *Store) ClearPathIndex() error {
	return s.clearBucket(pathIndexBucket, func() { s.mem.clearPathIndex() })
}

func (s *Store) clearBucket(name []byte, memClear func()) error {
	if s.db == nil {
		memClear()
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(name); err != nil {
			return err
		}
		_, err := tx.CreateBucket(name)
		return err
	})
}
