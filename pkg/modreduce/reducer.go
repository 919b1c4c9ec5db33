// Package modreduce provides accelerated modular reduction and modular
// exponentiation on top of pkg/bigint. The reduction cache spec.md §9
// describes as process-wide mutable state (a global "last divisor seen"
// and a table of its multiples) is instead owned by a Reducer value, so
// independent Reducers are safe to use from independent goroutines without
// a mutex — only a single Reducer shared across goroutines needs external
// synchronization.
package modreduce

import "github.com/oisee/bigprime/pkg/bigint"

// Reducer accelerates repeated reduction modulo a fixed divisor by
// precomputing a table of the divisor's first Base+1 multiples and binary
// searching it instead of the O(Base) linear probe bigint.DivMod performs
// per digit. It pays for itself when the same divisor is reduced against
// many times — exactly the Miller–Rabin witness loop's inner shape, where
// the modulus n is fixed across every squaring.
//
// Note the binary search over a precomputed table makes Reduce's timing
// depend on the dividend's value in a different (denser) way than the
// linear scan it replaces; this implementation makes no constant-time
// claim, matching spec.md's non-goal.
type Reducer struct {
	divisor bigint.Int
	cache   [bigint.Base + 1]bigint.Int
	built   bool
}

// NewReducer constructs a Reducer for the given divisor. The multiple
// table is built lazily on first Reduce call.
func NewReducer(divisor *bigint.Int) (*Reducer, error) {
	if divisor.IsZero() {
		return nil, bigint.ErrDivideByZero
	}
	r := &Reducer{divisor: *divisor}
	return r, nil
}

func (r *Reducer) build() {
	var t bigint.Int
	for k := 0; k <= bigint.Base; k++ {
		r.cache[k] = t
		bigint.Add(&r.divisor, &t)
	}
	r.built = true
}

// Reduce returns b mod the Reducer's divisor.
func (r *Reducer) Reduce(b *bigint.Int) bigint.Int {
	if bigint.Less(b, &r.divisor) {
		return *b
	}
	if !r.built {
		r.build()
	}

	var rem bigint.Int
	for i := bigint.Size - 1; i >= 0; i-- {
		rem.ShiftLeftDigits(1)
		bigint.AddSmall(b[i], &rem)
		if bigint.LessOrEqual(&r.divisor, &rem) {
			k := r.search(&rem)
			bigint.Sub(&r.cache[k], &rem)
		}
	}
	return rem
}

// search returns the largest k in [1, Base] with cache[k] <= r, by binary
// search over the cache (which holds cache[k] = k*divisor).
func (r *Reducer) search(rem *bigint.Int) int {
	if bigint.LessOrEqual(&r.cache[bigint.Base], rem) {
		return bigint.Base
	}
	lo, hi := 0, bigint.Base
	for hi > lo+1 {
		mid := (lo + hi) / 2
		if bigint.LessOrEqual(&r.cache[mid], rem) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Mod is the one-shot convenience form: Mod(a, b) == b mod a, building a
// fresh Reducer each call. Prefer constructing a Reducer directly when the
// same divisor will be reduced against repeatedly (PowMod does this).
func Mod(a, b *bigint.Int) (bigint.Int, error) {
	r, err := NewReducer(a)
	if err != nil {
		return bigint.Int{}, err
	}
	return r.Reduce(b), nil
}
