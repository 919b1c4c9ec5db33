// Package report adapts the teacher's pkg/result table/checkpoint pair
// (oisee-z80-optimizer) to the prime-search domain: a sorted ledger of
// found primes, and gob-encoded checkpoints that let a long-running
// search resume instead of restarting.
package report

import (
	"encoding/json"
	"io"
	"sort"
	"sync"
	"time"
)

// Record describes one found prime.
type Record struct {
	Bits      int
	Decimal   string
	Trials    int
	Witnesses int // Miller-Rabin rounds actually run before acceptance
	Elapsed   time.Duration
}

// Ledger stores found-prime records, mirroring the teacher's
// pkg/result.Table (mutex-guarded slice, Add/Records returning a sorted
// copy).
type Ledger struct {
	mu      sync.Mutex
	records []Record
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add inserts a record into the ledger.
func (l *Ledger) Add(r Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
}

// Records returns a copy of all records, sorted by bit length descending
// then elapsed time ascending (fastest search for a given bit length
// first) — the same comparator shape as the teacher's BytesSaved-then-
// CyclesSaved sort.
func (l *Ledger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bits != out[j].Bits {
			return out[i].Bits > out[j].Bits
		}
		return out[i].Elapsed < out[j].Elapsed
	})
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// WriteJSON writes all records to w as a JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ReadJSON reads a JSON array of records from r.
func ReadJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
