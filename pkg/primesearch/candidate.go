package primesearch

import "github.com/oisee/bigprime/pkg/bigint"

// Candidate holds the incremental wheel-sieve state for one search
// trajectory: the current odd candidate N and, for each prime in
// SmallPrimes, N mod that prime. Reject() advances N by two and updates
// every residue in O(len(SmallPrimes)) instead of recomputing N mod p
// from scratch (spec.md §4.J).
type Candidate struct {
	N        bigint.Int
	Residues [len(SmallPrimes)]uint16
}

// NewCandidate seeds a Candidate from n (assumed already odd) and
// computes its initial residue table.
func NewCandidate(n *bigint.Int) Candidate {
	c := Candidate{N: *n}
	for i, p := range SmallPrimes {
		c.Residues[i] = uint16(bigint.ModSmall(uint64(p), &c.N))
	}
	return c
}

// Admits reports whether the sieve currently accepts N: true unless some
// small prime other than N itself divides it.
func (c *Candidate) Admits() bool {
	for i, p := range SmallPrimes {
		if c.Residues[i] == 0 {
			// N == p itself is admissible (p divides p, trivially);
			// anything else with a zero residue is composite.
			var pb bigint.Int
			pb.Set(uint64(p))
			if !bigint.Equal(&c.N, &pb) {
				return false
			}
		}
	}
	return true
}

// Reject advances the candidate to N+2 and updates every residue
// incrementally.
func (c *Candidate) Reject() {
	bigint.AddSmall(2, &c.N)
	for i, p := range SmallPrimes {
		c.Residues[i] += 2
		if c.Residues[i] >= p {
			c.Residues[i] -= p
		}
	}
}
