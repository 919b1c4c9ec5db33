// Package miller implements the Miller–Rabin probable-primality test
// (spec.md §4.I) on top of pkg/bigint, pkg/modreduce, and pkg/randsrc.
package miller

import (
	"github.com/oisee/bigprime/pkg/bigint"
	"github.com/oisee/bigprime/pkg/modreduce"
	"github.com/oisee/bigprime/pkg/randsrc"
)

// DefaultTrials is the trial count of DefaultConfig, matching the C
// source's default of 256. A zero-value Config does not use it: Trials()
// coerces a non-positive count to 3.
const DefaultTrials = 256

// Config controls a Miller–Rabin run.
type Config struct {
	// TrialCount is the number of witness rounds. Trials() coerces a
	// non-positive value to 3, per spec.md §7's TrialsOutOfRange rule
	// (the C source's "k == 0 => 3").
	TrialCount int
}

// DefaultConfig matches the C source's process-wide default.
var DefaultConfig = Config{TrialCount: DefaultTrials}

// Trials returns the effective trial count, coercing non-positive values
// to 3.
func (c Config) Trials() int {
	if c.TrialCount <= 0 {
		return 3
	}
	return c.TrialCount
}

// IsPrime runs cfg.Trials() rounds of Miller–Rabin on n, drawing witnesses
// from src. It returns false for every even n, including 2 — the
// algorithm's first check rejects all even numbers, 2 included; spec.md
// §8 requires this choice be documented rather than special-cased, since
// no caller in this codebase ever offers 2 as a search candidate (the
// wheel sieve's smallest prime is also 2, but rand_prime never emits
// candidates below the sieve, and every search candidate is odd — see
// pkg/primesearch).
func IsPrime(n *bigint.Int, cfg Config, src randsrc.Source) bool {
	if n.IsEven() {
		return false
	}

	var three bigint.Int
	three.Set(3)
	if bigint.LessOrEqual(n, &three) {
		// n in {1, 3}: the witness range [2, n-2] is empty or degenerate
		// below 5, so the loop below can't run. 1 is composite by
		// convention; 3 is prime. (2 already returned false above as an
		// even number, matching the documented IsPrime(2) == false rule.)
		var one bigint.Int
		one.One()
		return !bigint.Equal(n, &one)
	}

	var one bigint.Int
	one.One()

	nMinus1 := *n
	bigint.Sub(&one, &nMinus1)

	// Decompose n-1 = 2^s * d, d odd.
	m := nMinus1
	s := 0
	for m.IsEven() {
		m.ShiftRightBits(1)
		s++
	}
	d := m

	// Witnesses are drawn from [2, n-2] inclusive (spec.md §9 widens the
	// source's [2, n-2) construction): bound = n-3, draw in [0, n-3), +2.
	bound := *n
	bigint.Sub(&three, &bound)

	for i := 0; i < cfg.Trials(); i++ {
		a := randsrc.RandRange(&bound, false, src)
		bigint.AddSmall(2, &a)

		x, err := modreduce.PowMod(&a, &d, n)
		if err != nil {
			// n == 0 never reaches here: IsPrime's even check above
			// rejects 0 before any PowMod call.
			return false
		}
		if bigint.Equal(&x, &one) || bigint.Equal(&x, &nMinus1) {
			continue
		}

		witnessFailed := true
		for j := 0; j < s-1; j++ {
			squared := bigint.Mul(&x, &x)
			x, _ = modreduce.Mod(n, &squared)
			if bigint.Equal(&x, &one) {
				return false
			}
			if bigint.Equal(&x, &nMinus1) {
				witnessFailed = false
				break
			}
		}
		if witnessFailed {
			return false
		}
	}
	return true
}
