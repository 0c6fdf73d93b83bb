// Package history implements the History collaborator:
// an append-only log of previously accepted input lines, consulted by
// Buffer.HistoryForward/HistoryBackward and by autosuggest.FromHistory. Grounded
// on peco's buffer.Memory (buffer/buffer.go), which held an accepted-line
// set behind a sync.RWMutex; the pipeline-accept machinery that fed that
// struct from a channel is dropped here since History has no streaming
// producer -- entries arrive one at a time via Append, from
// Buffer.ValidateAndHandle. Optional dedup (dedupe.go) reuses the
// btree-ordered-set shape of the line-selection set for membership
// testing, generalized from line.Line items to plain strings.
package history

import (
	"context"
	"sync"

	pdebug "github.com/lestrrat-go/pdebug/v2"
)

// History is a persistence-agnostic contract: entries
// are appended most-recently-last, and consulted most-recent-first.
// Concrete persistent backends (file-backed, SQLite-backed, ...) are
// external collaborators; Memory below is the in-memory reference
// implementation used by tests and as the default.
type History interface {
	// Append records a new entry. Empty strings are recorded as-is; callers
	// that want to skip blank lines should filter before calling Append.
	Append(entry string)

	// Len returns the number of recorded entries.
	Len() int

	// EntryAt returns the n-th oldest entry (0-based). ok is false if n is
	// out of range.
	EntryAt(n int) (entry string, ok bool)

	// Entries returns a copy of all entries, oldest first.
	Entries() []string
}

// Memory is the in-memory History implementation.
type Memory struct {
	mutex   sync.RWMutex
	entries []string
	seen    *dedupeSet
	// Bound, when positive, caps the number of retained entries; the
	// oldest entries are dropped once the bound is exceeded.
	Bound int
	// Dedupe, when true, moves a re-appended entry to the most-recent
	// position instead of keeping both copies -- the same erasedups
	// behavior shells offer for their own history files.
	Dedupe bool
}

// NewMemory creates an empty in-memory History. bound <= 0 means unbounded.
func NewMemory(bound int) *Memory {
	return &Memory{Bound: bound, seen: newDedupeSet()}
}

func (m *Memory) Append(entry string) {
	if pdebug.Enabled {
		g := pdebug.Marker(context.TODO(), "History.Append")
		defer g.End()
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Dedupe && m.seen.has(entry) {
		for i, e := range m.entries {
			if e == entry {
				m.entries = append(m.entries[:i], m.entries[i+1:]...)
				break
			}
		}
	}

	m.entries = append(m.entries, entry)
	if m.Dedupe {
		m.seen.add(entry)
	}

	if m.Bound > 0 && len(m.entries) > m.Bound {
		drop := len(m.entries) - m.Bound
		for _, dropped := range m.entries[:drop] {
			if m.Dedupe {
				m.seen.remove(dropped)
			}
		}
		m.entries = append([]string(nil), m.entries[drop:]...)
	}
}

func (m *Memory) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.entries)
}

func (m *Memory) EntryAt(n int) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if n < 0 || n >= len(m.entries) {
		return "", false
	}
	return m.entries[n], true
}

func (m *Memory) Entries() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	cp := make([]string, len(m.entries))
	copy(cp, m.entries)
	return cp
}
