package bigint

// Equal reports whether a and b hold the same value.
func Equal(a, b *Int) bool {
	return *a == *b
}

// Less reports whether a < b, scanning from the most significant digit
// down and returning on the first differing digit.
func Less(a, b *Int) bool {
	for i := Size - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return true
		}
		if a[i] > b[i] {
			return false
		}
	}
	return false
}

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b *Int) bool {
	for i := Size - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return true
		}
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether a == 0.
func (a *Int) IsZero() bool {
	return *a == Int{}
}

// IsEven reports whether a's least significant bit is 0.
func (a *Int) IsEven() bool {
	return a[0]&1 == 0
}

// IsOdd reports whether a's least significant bit is 1.
func (a *Int) IsOdd() bool {
	return a[0]&1 == 1
}
