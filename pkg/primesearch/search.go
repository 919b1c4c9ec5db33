// Package primesearch generates probable primes of a requested bit
// length (spec.md §4.J): draw a random candidate, reject most composites
// with an incremental wheel sieve against SmallPrimes, confirm the
// survivors with pkg/miller's Miller–Rabin test.
package primesearch

import (
	"context"
	"errors"

	"github.com/oisee/bigprime/pkg/bigint"
	"github.com/oisee/bigprime/pkg/miller"
	"github.com/oisee/bigprime/pkg/randsrc"
)

// ErrSearchCanceled is returned when ctx is canceled before a prime is
// found — the Go-idiomatic stand-in for spec.md §7's PrimeSearchExhausted,
// implemented as cooperative cancellation rather than a hard retry cap.
var ErrSearchCanceled = errors.New("primesearch: search canceled")

// Stats counts the work a search performed, for the CLI's "search
// complete" log line and benchmarking.
type Stats struct {
	Candidates     int // distinct odd N values considered (sieve + Miller-Rabin)
	SieveRejected  int
	MillerRejected int
	Trials         int // effective Miller-Rabin trial count this search ran with
}

// Options configures a search.
type Options struct {
	// Trials overrides the computed max(10, nbits/16) trial count when
	// positive; spec.md §4.J step 2 always computes one, so this is an
	// escape hatch for tests and benchmarking, not part of the core
	// contract.
	Trials int
	// Workers selects SearchParallel's fan-out when > 1; Search ignores
	// it entirely (it is always single-threaded).
	Workers int
	Source  randsrc.Source
}

func trialsFor(nbits, override int) int {
	if override > 0 {
		return override
	}
	t := nbits / 16
	if t < 10 {
		t = 10
	}
	return t
}

// bounds returns lo = 2^(nbits-1), hi = 2^nbits.
func bounds(nbits int) (lo, hi bigint.Int) {
	lo.One()
	hi.One()
	lo.ShiftLeftBits(nbits - 1)
	hi.ShiftLeftBits(nbits)
	return lo, hi
}

// Search runs the single-threaded reference search (spec.md §4.J) and
// returns a probable prime of exactly nbits bits.
func Search(ctx context.Context, nbits int, opts Options) (bigint.Int, Stats, error) {
	var stats Stats
	lo, hi := bounds(nbits)
	trials := trialsFor(nbits, opts.Trials)
	stats.Trials = trials
	cfg := miller.Config{TrialCount: trials}

	cand := nextCandidate(&lo, &hi, opts.Source)

	for {
		select {
		case <-ctx.Done():
			return bigint.Int{}, stats, ErrSearchCanceled
		default:
		}

		stats.Candidates++
		if !cand.Admits() {
			stats.SieveRejected++
			cand.Reject()
			continue
		}
		if miller.IsPrime(&cand.N, cfg, opts.Source) {
			return cand.N, stats, nil
		}
		stats.MillerRejected++
		cand.Reject()
	}
}

// ResumeSearch continues a search from a previously saved Candidate (see
// pkg/report.Checkpoint), instead of drawing a fresh random starting
// point.
func ResumeSearch(ctx context.Context, cand Candidate, nbits int, opts Options) (bigint.Int, Stats, error) {
	var stats Stats
	trials := trialsFor(nbits, opts.Trials)
	stats.Trials = trials
	cfg := miller.Config{TrialCount: trials}

	for {
		select {
		case <-ctx.Done():
			return bigint.Int{}, stats, ErrSearchCanceled
		default:
		}

		stats.Candidates++
		if !cand.Admits() {
			stats.SieveRejected++
			cand.Reject()
			continue
		}
		if miller.IsPrime(&cand.N, cfg, opts.Source) {
			return cand.N, stats, nil
		}
		stats.MillerRejected++
		cand.Reject()
	}
}

// nextCandidate draws a random odd N in [lo, hi) per spec.md §4.J step
// (a): draw an odd-biased value in [0, lo), add lo to force the top bit,
// then add 1 if the result is even (a safeguard: with lo a power of two
// the draw plus lo is already odd).
func nextCandidate(lo, hi *bigint.Int, src randsrc.Source) Candidate {
	n := randsrc.RandRange(lo, true, src)
	bigint.Add(lo, &n)
	if n.IsEven() {
		bigint.AddSmall(1, &n)
	}
	return NewCandidate(&n)
}
