package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/oisee/bigprime/pkg/bigint"
	"github.com/oisee/bigprime/pkg/primesearch"
)

func TestLedgerSortOrder(t *testing.T) {
	l := NewLedger()
	l.Add(Record{Bits: 16, Decimal: "40503", Elapsed: 5 * time.Millisecond})
	l.Add(Record{Bits: 32, Decimal: "3000000019", Elapsed: 50 * time.Millisecond})
	l.Add(Record{Bits: 32, Decimal: "3000000041", Elapsed: 10 * time.Millisecond})

	got := l.Records()
	if len(got) != 3 {
		t.Fatalf("Records() len = %d, want 3", len(got))
	}
	if got[0].Bits != 32 || got[0].Elapsed != 10*time.Millisecond {
		t.Fatalf("first record = %+v, want the faster 32-bit search first", got[0])
	}
	if got[2].Bits != 16 {
		t.Fatalf("last record should be the 16-bit entry, got %+v", got[2])
	}
}

func TestLedgerJSONRoundTrip(t *testing.T) {
	l := NewLedger()
	l.Add(Record{Bits: 16, Decimal: "40503", Trials: 10, Witnesses: 3, Elapsed: time.Second})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, l.Records()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got) != 1 || got[0].Decimal != "40503" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	var n bigint.Int
	n.Set(101)
	cand := primesearch.NewCandidate(&n)
	ckpt := &Checkpoint{
		Candidate: cand,
		NBits:     16,
		Trials:    10,
	}

	path := filepath.Join(t.TempDir(), "search.ckpt")
	if err := SaveCheckpoint(path, ckpt); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	loaded, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if loaded.Candidate.N != cand.N {
		t.Fatalf("loaded N = %s, want %s", loaded.Candidate.N.String(), cand.N.String())
	}
	if loaded.Candidate.Residues != cand.Residues {
		t.Fatalf("loaded residues diverge from saved")
	}
	if loaded.NBits != 16 || loaded.Trials != 10 {
		t.Fatalf("loaded params = %+v, want NBits=16 Trials=10", loaded)
	}
}

func TestLoadCheckpointMissingFile(t *testing.T) {
	if _, err := LoadCheckpoint(filepath.Join(t.TempDir(), "missing.ckpt")); err == nil {
		t.Fatal("expected an error loading a missing checkpoint file")
	}
}
