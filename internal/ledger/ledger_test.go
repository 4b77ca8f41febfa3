package ledger

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/espresso-rush/internal/core"
	"github.com/vovakirdan/espresso-rush/internal/runner"
	"github.com/vovakirdan/espresso-rush/internal/storage"
)

var testDay = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestLedger() (*Ledger, *MemoryStore) {
	kv := NewMemoryStore()
	return New(kv, core.NewManualClock(testDay)), kv
}

func run(score, coffees int) runner.RunSummary {
	return runner.RunSummary{Score: score, CoffeeCount: coffees}
}

func assertSorted(t *testing.T, entries []Entry) {
	t.Helper()
	if len(entries) > Capacity {
		t.Fatalf("leaderboard has %d entries, capacity is %d", len(entries), Capacity)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatalf("entries out of order at %d: %d > %d", i, entries[i].Score, entries[i-1].Score)
		}
	}
}

func TestSubmitAndEntries(t *testing.T) {
	l, _ := newTestLedger()

	for i, score := range []int{300, 100, 200} {
		rank, err := l.Submit(fmt.Sprintf("p%d", i), run(score, i))
		if err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
		if rank == 0 {
			t.Errorf("Submit(%d) should place on a short board", score)
		}
	}

	entries, err := l.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	assertSorted(t, entries)

	if entries[0].Name != "p0" || entries[0].Score != 300 {
		t.Errorf("top entry = %+v", entries[0])
	}
	if entries[0].Date != "2025-03-14" {
		t.Errorf("Date = %q, expected ISO calendar date", entries[0].Date)
	}
}

func TestSubmitEvictsLowest(t *testing.T) {
	l, _ := newTestLedger()

	// Ten entries, lowest 450
	for i := 0; i < Capacity; i++ {
		if _, err := l.Submit(fmt.Sprintf("r%d", i), run(450+i*100, i)); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	ok, err := l.RecordRun(run(500, 20))
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if !ok {
		t.Fatal("500 should qualify over a lowest of 450")
	}

	rank, err := l.Submit("Marta", run(500, 20))
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if rank != Capacity {
		t.Errorf("rank = %d, expected %d", rank, Capacity)
	}

	entries, _ := l.Entries()
	if len(entries) != Capacity {
		t.Fatalf("Expected %d entries, got %d", Capacity, len(entries))
	}
	assertSorted(t, entries)
	for _, e := range entries {
		if e.Score == 450 {
			t.Error("lowest entry should have been evicted")
		}
	}
	if last := entries[len(entries)-1]; last.Name != "Marta" || last.Score != 500 {
		t.Errorf("last entry = %+v, expected Marta/500", last)
	}
}

func TestRecordRunQualification(t *testing.T) {
	l, _ := newTestLedger()

	ok, _ := l.RecordRun(run(0, 0))
	if !ok {
		t.Error("any run qualifies on an empty board")
	}

	for i := 0; i < Capacity; i++ {
		l.Submit("x", run(100, 0))
	}

	tests := []struct {
		score int
		want  bool
	}{
		{99, false},
		{100, false}, // ties do not displace
		{101, true},
	}
	for _, tt := range tests {
		ok, err := l.RecordRun(run(tt.score, 0))
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
		if ok != tt.want {
			t.Errorf("RecordRun(%d) = %v, expected %v", tt.score, ok, tt.want)
		}
	}
}

func TestSubmitNonQualifyingFallsOff(t *testing.T) {
	l, _ := newTestLedger()
	for i := 0; i < Capacity; i++ {
		l.Submit("x", run(1000, 0))
	}

	rank, err := l.Submit("late", run(5, 0))
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if rank != 0 {
		t.Errorf("rank = %d, expected 0 for an entry that did not make the board", rank)
	}
	entries, _ := l.Entries()
	if len(entries) != Capacity {
		t.Errorf("Expected %d entries, got %d", Capacity, len(entries))
	}
}

func TestSubmitTiesKeepInsertionOrder(t *testing.T) {
	l, _ := newTestLedger()
	l.Submit("first", run(200, 0))
	l.Submit("second", run(200, 0))
	l.Submit("third", run(200, 0))

	entries, _ := l.Entries()
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Name != want {
			t.Errorf("entries[%d] = %q, expected %q", i, entries[i].Name, want)
		}
	}
}

func TestSubmitBlankNameIsNoop(t *testing.T) {
	l, kv := newTestLedger()

	for _, name := range []string{"", "   ", "\t\n"} {
		rank, err := l.Submit(name, run(999, 1))
		if err != nil {
			t.Errorf("Submit(%q) error = %v, expected none", name, err)
		}
		if rank != 0 {
			t.Errorf("Submit(%q) rank = %d, expected 0", name, rank)
		}
	}

	if v, _ := kv.Get(StorageKey); v != nil {
		t.Error("blank submissions must not write")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Marta  ", "Marta"},
		{"Super-Baginska", "Super-Bagins"},
		{"ÞórhildurÁsta", "ÞórhildurÁst"},
		{"exactly12chr", "exactly12chr"},
		{"eleven char ", "eleven char"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestMalformedRecordIsEmptyBoard(t *testing.T) {
	l, kv := newTestLedger()
	kv.Put(StorageKey, []byte("{not json"))

	entries, err := l.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v, expected empty board", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty board, got %d entries", len(entries))
	}

	// Submitting replaces the bad record.
	if _, err := l.Submit("Emilía", run(10, 1)); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	entries, _ = l.Entries()
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry after overwrite, got %d", len(entries))
	}
}

func TestSubmitRereadsLatest(t *testing.T) {
	kv := NewMemoryStore()
	a := New(kv, core.NewManualClock(testDay))
	b := New(kv, core.NewManualClock(testDay))

	a.Submit("alpha", run(100, 0))
	b.Submit("beta", run(200, 0))

	entries, _ := a.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected both sessions' entries, got %d", len(entries))
	}
	if entries[0].Name != "beta" {
		t.Errorf("top = %q, expected beta", entries[0].Name)
	}
}

func TestLoadNormalizesForeignRecord(t *testing.T) {
	l, kv := newTestLedger()

	// Unsorted, oversized record written by another client.
	var raw []byte
	raw = append(raw, '[')
	for i := 0; i < 12; i++ {
		if i > 0 {
			raw = append(raw, ',')
		}
		raw = append(raw, fmt.Sprintf(`{"name":"n%d","score":%d,"coffeeCount":0,"date":"2025-01-01"}`, i, i*10)...)
	}
	raw = append(raw, ']')
	kv.Put(StorageKey, raw)

	entries, err := l.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != Capacity {
		t.Errorf("Expected %d entries, got %d", Capacity, len(entries))
	}
	assertSorted(t, entries)
	if entries[0].Score != 110 {
		t.Errorf("top score = %d, expected 110", entries[0].Score)
	}
}

type failingKV struct{}

var errDown = errors.New("disk on fire")

func (failingKV) Get(string) ([]byte, error) { return nil, errDown }
func (failingKV) Put(string, []byte) error   { return errDown }

func TestStorageFailureIsReported(t *testing.T) {
	l := New(failingKV{}, nil)

	if _, err := l.Entries(); !errors.Is(err, errDown) {
		t.Errorf("Entries() error = %v, expected wrapped storage error", err)
	}
	if _, err := l.Submit("x", run(1, 0)); !errors.Is(err, errDown) {
		t.Errorf("Submit() error = %v, expected wrapped storage error", err)
	}
}

func TestLedgerOverSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}

	l := New(store, core.NewManualClock(testDay))
	if _, err := l.Submit("Marta", run(1234, 12)); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	store.Close()

	// Survives a process restart.
	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	entries, err := New(store, nil).Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Marta" || entries[0].CoffeeCount != 12 {
		t.Errorf("entries after reopen = %+v", entries)
	}
}

func TestClear(t *testing.T) {
	l, _ := newTestLedger()
	l.Submit("x", run(1, 0))

	if err := l.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	entries, _ := l.Entries()
	if len(entries) != 0 {
		t.Errorf("Expected empty board after Clear, got %d", len(entries))
	}
}
