// Package bigint implements a fixed-width, little-endian, base-256
// multiple-precision unsigned integer: a 256-digit array wrapping around
// modulo Base^Size rather than growing. It has no heap ownership and no
// aliasing between distinct Ints — every operation is a value-semantic
// in-place mutation of its destination argument(s).
package bigint

import "errors"

const (
	// Size is the digit count (N in the design doc). Capacity is Base^Size.
	Size = 256
	// DigitBits is the bit width of one digit; Base must stay a power of two
	// of this width so carries/borrows fit in a uint16 without overflow.
	DigitBits = 8
	// Base is the digit radix.
	Base = 256
)

// ErrDivideByZero is returned by operations that would divide by a zero
// divisor: DivMod, modreduce.NewReducer, modreduce.PowMod.
var ErrDivideByZero = errors.New("bigint: divide by zero")

// Int is a fixed-capacity unsigned integer: Size digits, each in [0, Base),
// index 0 holding the least significant digit. The zero value is zero.
//
// Invariants: every digit is in [0, Base) at rest; operations that would
// produce a value >= Base^Size silently discard the overflowing high
// digits (wrap-around modulo Base^Size) — callers are responsible for
// sizing Size generously enough for their domain. Leading high-order zero
// digits are normal.
type Int [Size]uint8

// Zero sets a to zero.
func (a *Int) Zero() {
	*a = Int{}
}

// One sets a to one.
func (a *Int) One() {
	a.Zero()
	a[0] = 1
}

// Set decomposes value in base Base, least significant digit first, until
// value is exhausted or Size digits are written.
func (a *Int) Set(value uint64) {
	a.Zero()
	for i := 0; value > 0 && i < Size; i++ {
		a[i] = uint8(value % Base)
		value /= Base
	}
}

// Copy sets a to b.
func (a *Int) Copy(b *Int) {
	*a = *b
}
