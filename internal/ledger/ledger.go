// Package ledger keeps the persisted top-10 leaderboard.
//
// The whole board is one JSON record under a fixed key in a durable
// key-value store. Every write re-reads the latest record first, so two
// sessions sharing a store lose at most a concurrent submission rather than
// the whole board.
package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/vovakirdan/espresso-rush/internal/core"
	"github.com/vovakirdan/espresso-rush/internal/runner"
)

const (
	// StorageKey is the key the leaderboard record lives under.
	StorageKey = "espresso-rush-highscores"
	// Capacity is the number of entries kept.
	Capacity = 10
	// MaxNameLen is the longest display name, in characters.
	MaxNameLen = 12

	dateLayout = "2006-01-02"
)

// KV is the durable key-value storage the ledger persists to.
// Get returns nil, nil for a missing key.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Entry is one leaderboard row.
type Entry struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	CoffeeCount int    `json:"coffeeCount"`
	Date        string `json:"date"`
}

// Ledger reads and writes the leaderboard. Safe for concurrent use.
type Ledger struct {
	mu    sync.Mutex
	kv    KV
	clock core.Clock
}

// New creates a ledger over kv. A nil clock uses the system clock.
func New(kv KV, clock core.Clock) *Ledger {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Ledger{kv: kv, clock: clock}
}

// Entries returns the current leaderboard, best first.
func (l *Ledger) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// RecordRun reports whether a finished run earns a place on the board:
// there is a free slot, or it beats the lowest entry.
func (l *Ledger) RecordRun(summary runner.RunSummary) (bool, error) {
	entries, err := l.Entries()
	if err != nil {
		return false, err
	}
	return Qualifies(entries, summary.Score), nil
}

// Qualifies reports whether score would enter a board holding entries.
func Qualifies(entries []Entry, score int) bool {
	if len(entries) < Capacity {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// Submit adds a named entry for summary and persists the board. A blank
// name is ignored and returns 0 with no error so the caller can prompt
// again. Otherwise it returns the 1-based rank of the new entry, or 0 if it
// did not make the top Capacity.
func (l *Ledger) Submit(name string, summary runner.RunSummary) (int, error) {
	name = NormalizeName(name)
	if name == "" {
		return 0, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-read so submissions from other sessions are kept.
	entries, err := l.load()
	if err != nil {
		return 0, err
	}

	entry := Entry{
		Name:        name,
		Score:       summary.Score,
		CoffeeCount: summary.CoffeeCount,
		Date:        l.clock.Now().Format(dateLayout),
	}
	entries = append(entries, entry)
	newIdx := len(entries) - 1

	// Stable: equal scores keep submission order.
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].Score > entries[order[b]].Score
	})

	sorted := make([]Entry, 0, Capacity)
	rank := 0
	for pos, idx := range order {
		if pos >= Capacity {
			break
		}
		if idx == newIdx {
			rank = pos + 1
		}
		sorted = append(sorted, entries[idx])
	}

	if err := l.save(sorted); err != nil {
		return 0, err
	}
	return rank, nil
}

// Clear empties the leaderboard.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save([]Entry{})
}

// NormalizeName trims whitespace and truncates to MaxNameLen characters.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLen {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
}

// load reads the board. Missing or unparseable data is an empty board;
// only storage failures are errors.
func (l *Ledger) load() ([]Entry, error) {
	data, err := l.kv.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("ledger: cannot read leaderboard: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil
	}

	// Records written by other clients may be unsorted or oversized.
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	return entries, nil
}

func (l *Ledger) save(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("ledger: cannot encode leaderboard: %w", err)
	}
	if err := l.kv.Put(StorageKey, data); err != nil {
		return fmt.Errorf("ledger: cannot write leaderboard: %w", err)
	}
	return nil
}
