package bigint

// Add sets b := b + a mod Base^Size. Schoolbook addition with a carry held
// in a wider integer; the final carry out of the top digit is discarded.
func Add(a, b *Int) {
	var carry uint16
	for i := 0; i < Size; i++ {
		carry += uint16(b[i]) + uint16(a[i])
		b[i] = uint8(carry % Base)
		carry /= Base
	}
}

// AddSmall sets b := b + x mod Base^Size, x a single digit. Stops
// propagating the carry as soon as it reaches zero.
func AddSmall(x uint8, b *Int) {
	carry := uint16(x)
	for i := 0; i < Size; i++ {
		carry += uint16(b[i])
		b[i] = uint8(carry % Base)
		carry /= Base
		if carry == 0 {
			break
		}
	}
}

// Sub sets b := b - a mod Base^Size. Borrow-propagating schoolbook
// subtraction; if a > b the result wraps to Base^Size + b - a, matching
// the type's truncating contract. Callers needing saturating subtraction
// must compare with Less/LessOrEqual first.
func Sub(a, b *Int) {
	var borrow uint16
	for i := 0; i < Size; i++ {
		x := uint16(a[i]) + borrow
		if uint16(b[i]) < x {
			b[i] = uint8(Base + uint16(b[i]) - x)
			borrow = 1
		} else {
			b[i] = uint8(uint16(b[i]) - x)
			borrow = 0
		}
	}
}

// SubSmall sets b := b - x mod Base^Size, x a single digit.
func SubSmall(x uint8, b *Int) {
	borrow := uint16(x)
	for i := 0; i < Size; i++ {
		if uint16(b[i]) < borrow {
			b[i] = uint8(Base + uint16(b[i]) - borrow)
			borrow = 1
		} else {
			b[i] = uint8(uint16(b[i]) - borrow)
			borrow = 0
		}
	}
}
