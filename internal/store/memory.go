package store

import (
	"sort"
	"time"
)

// memStore backs the in-memory fallback mode. A single invocation is
// synchronous, so no locking is needed.
type memStore struct {
	history        map[string]Entry
	corrections    map[string]correctionEntry
	pathIndexes    map[uint64]pathIndexEntry
	historyEnabled bool
}

func newMemStore() *memStore {
	return &memStore{
		history:        make(map[string]Entry),
		corrections:    make(map[string]correctionEntry),
		pathIndexes:    make(map[uint64]pathIndexEntry),
		historyEnabled: true,
	}
}

func (m *memStore) record(command string, success bool) {
	entry, ok := m.history[command]
	if !ok {
		entry = Entry{Command: command, FirstUsed: time.Now()}
	}
	bumpEntry(&entry, success)
	m.history[command] = entry
}

func (m *memStore) entries() []Entry {
	entries := make([]Entry, 0, len(m.history))
	for _, entry := range m.history {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Command < entries[j].Command
	})
	return entries
}

func (m *memStore) len() int {
	return len(m.history)
}

func (m *memStore) learnCorrection(typo, correction string) {
	entry := correctionEntry{Correction: correction}
	if prev, ok := m.corrections[typo]; ok && prev.Correction == correction {
		entry.Count = prev.Count
	}
	entry.Count++
	entry.LastUsed = time.Now()
	m.corrections[typo] = entry
}

func (m *memStore) correction(typo string) (string, bool) {
	entry, ok := m.corrections[typo]
	return entry.Correction, ok
}

func (m *memStore) allCorrections() map[string]string {
	out := make(map[string]string, len(m.corrections))
	for typo, entry := range m.corrections {
		out[typo] = entry.Correction
	}
	return out
}

func (m *memStore) typoTallies() []Tally {
	tallies := make([]Tally, 0, len(m.corrections))
	for typo, entry := range m.corrections {
		tallies = append(tallies, Tally{Text: typo, Count: entry.Count})
	}
	return tallies
}

func (m *memStore) pathIndex(key uint64) ([]string, time.Time, bool) {
	entry, ok := m.pathIndexes[key]
	return entry.Commands, entry.ScannedAt, ok
}

func (m *memStore) setPathIndex(key uint64, commands []string) {
	m.pathIndexes[key] = pathIndexEntry{Commands: commands, ScannedAt: time.Now()}
}

func (m *memStore) clearHistory() {
	m.history = make(map[string]Entry)
}

func (m *memStore) clearCorrections() {
	m.corrections = make(map[string]correctionEntry)
}

func (m *memStore) clearPathIndex() {
	m.pathIndexes = make(map[uint64]pathIndexEntry)
}
