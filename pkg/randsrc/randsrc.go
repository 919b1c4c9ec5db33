// Package randsrc provides the pluggable randomness source spec.md §9
// asks for: the arithmetic core never seeds or reads a PRNG directly, so
// tests can supply a deterministic source and security-sensitive callers
// can supply a CSPRNG.
package randsrc

// Source draws uniform digits and bits. Digit must return a value in
// [0, bigint.Base); Bit must return 0 or 1.
type Source interface {
	Digit() uint8
	Bit() uint8
}
