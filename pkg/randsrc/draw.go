package randsrc

import "github.com/oisee/bigprime/pkg/bigint"

// Rand fills every digit of a with a draw from src. Two biases are
// preserved from spec.md §4.H's evident intent, drawn uniformly rather
// than via the source's character-code arithmetic (spec.md's open
// question resolved in favor of a documented uniform draw, per SPEC_FULL
// §4a): the most significant digit is non-zero (drawn from [1,9]) so the
// value has no spurious leading zero bit pattern, and when prime is set
// the least significant digit is forced odd (drawn from {1,3,5,7,9}).
func Rand(a *bigint.Int, prime bool, src Source) {
	for i := 0; i < bigint.Size; i++ {
		a[i] = src.Digit()
	}
	a[bigint.Size-1] = 1 + src.Digit()%9
	if prime {
		a[0] = 1 + 2*(src.Digit()%5)
	}
}

// RandRange draws a raw value the size of b and reduces it modulo b,
// producing a value in [0, b). Not uniform in general — biased toward
// small values whenever Base^Size / b leaves a large remainder — which
// spec.md §4.H documents as acceptable for the primality search's use
// site (picking a Miller–Rabin witness, or a search candidate before the
// top bit is forced on).
func RandRange(b *bigint.Int, prime bool, src Source) bigint.Int {
	var a bigint.Int
	Rand(&a, prime, src)
	_, r, err := bigint.DivMod(b, &a)
	if err != nil {
		// b == 0 is a caller bug (spec.md never calls RandRange with a
		// zero bound); surface it the same way bigint's own zero-divisor
		// paths do rather than silently returning zero.
		panic("randsrc: RandRange with zero bound")
	}
	return r
}
