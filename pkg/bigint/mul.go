package bigint

// MulSmall sets b := b * x mod Base^Size, x a single digit. Carries the
// running product through a uint16 accumulator.
func MulSmall(x uint8, b *Int) {
	var acc uint16
	for i := 0; i < Size; i++ {
		acc += uint16(x) * uint16(b[i])
		b[i] = uint8(acc % Base)
		acc /= Base
	}
}

// Mul computes p := a * b, schoolbook O(Size^2), truncating at Base^Size.
// For each digit of a, a scratch copy of b is scaled by that digit,
// shifted into position, and accumulated into p.
func Mul(a, b *Int) Int {
	var p Int
	for i := 0; i < Size; i++ {
		if a[i] == 0 {
			continue
		}
		scratch := *b
		MulSmall(a[i], &scratch)
		scratch.ShiftLeftDigits(i)
		Add(&scratch, &p)
	}
	return p
}
