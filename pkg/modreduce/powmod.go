package modreduce

import "github.com/oisee/bigprime/pkg/bigint"

// PowMod computes a^x mod n via right-to-left binary exponentiation. It
// constructs exactly one Reducer for n and reuses it across every
// squaring and multiply step — the cache-reuse scenario the divisor table
// is built for, since n is constant for the whole loop while a and x
// change every iteration.
func PowMod(a, x, n *bigint.Int) (bigint.Int, error) {
	red, err := NewReducer(n)
	if err != nil {
		return bigint.Int{}, err
	}

	var r bigint.Int
	r.One()
	base := *a
	exp := *x

	for !exp.IsZero() {
		if exp.IsOdd() {
			t := bigint.Mul(&base, &r)
			r = red.Reduce(&t)
		}
		exp.ShiftRightBits(1)
		t := bigint.Mul(&base, &base)
		base = red.Reduce(&t)
	}
	return r, nil
}
