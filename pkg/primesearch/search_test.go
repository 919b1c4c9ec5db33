package primesearch

import (
	"context"
	"testing"

	"github.com/oisee/bigprime/pkg/bigint"
	"github.com/oisee/bigprime/pkg/miller"
	"github.com/oisee/bigprime/pkg/randsrc"
)

func bitBounds(t *testing.T, n *bigint.Int, nbits int) {
	t.Helper()
	lo, hi := bounds(nbits)
	if !bigint.LessOrEqual(&lo, n) {
		t.Fatalf("n below lower bound 2^%d", nbits-1)
	}
	if !bigint.Less(n, &hi) {
		t.Fatalf("n at/above upper bound 2^%d", nbits)
	}
	if n.IsEven() {
		t.Fatalf("n is even")
	}
}

func TestSearchFindsPrimeOfExactBitLength(t *testing.T) {
	for _, nbits := range []int{16, 24, 32} {
		src := randsrc.NewMathRandSeeded(uint64(nbits) + 1)
		n, _, err := Search(context.Background(), nbits, Options{Source: src})
		if err != nil {
			t.Fatalf("Search(%d) error: %v", nbits, err)
		}
		bitBounds(t, &n, nbits)
		if !miller.IsPrime(&n, miller.DefaultConfig, src) {
			t.Fatalf("Search(%d) returned non-prime %s", nbits, n.String())
		}
	}
}

func TestSearchParallelAgreesWithSerial(t *testing.T) {
	nbits := 24
	src := randsrc.NewMathRandSeeded(99)
	n, _, err := SearchParallel(context.Background(), nbits, Options{Source: src, Workers: 4})
	if err != nil {
		t.Fatalf("SearchParallel error: %v", err)
	}
	bitBounds(t, &n, nbits)
	if !miller.IsPrime(&n, miller.DefaultConfig, src) {
		t.Fatalf("SearchParallel returned non-prime %s", n.String())
	}
}

func TestSearchParallelSingleWorkerFallsBackToSerial(t *testing.T) {
	src := randsrc.NewMathRandSeeded(5)
	n, _, err := SearchParallel(context.Background(), 16, Options{Source: src, Workers: 1})
	if err != nil {
		t.Fatalf("SearchParallel error: %v", err)
	}
	bitBounds(t, &n, 16)
}

func TestSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := randsrc.NewMathRandSeeded(1)
	_, _, err := Search(ctx, 512, Options{Source: src})
	if err != ErrSearchCanceled {
		t.Fatalf("expected ErrSearchCanceled, got %v", err)
	}
}

func TestCandidateSieve(t *testing.T) {
	var n bigint.Int
	n.Set(9) // divisible by 3
	c := NewCandidate(&n)
	if c.Admits() {
		t.Fatalf("Candidate(9) should be rejected by the sieve (3 | 9)")
	}

	var p bigint.Int
	p.Set(97)
	c = NewCandidate(&p)
	if !c.Admits() {
		t.Fatalf("Candidate(97) should be admitted: 97 is prime")
	}
}

func TestCandidateRejectIncremental(t *testing.T) {
	var n bigint.Int
	n.Set(101)
	c := NewCandidate(&n)
	c.Reject()
	if c.N.String() != "103" {
		t.Fatalf("Reject advanced to %s, want 103", c.N.String())
	}
	fresh := NewCandidate(&c.N)
	if c.Residues != fresh.Residues {
		t.Fatalf("incremental residues %v diverged from recomputed %v", c.Residues, fresh.Residues)
	}
}
