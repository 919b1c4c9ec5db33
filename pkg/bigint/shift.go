package bigint

// ShiftLeftDigits sets a := a * Base^sh mod Base^Size, i.e. shifts whole
// digits. sh == 0 is a no-op; sh >= Size saturates to zero. Moves high
// digits first so the in-place shift never overwrites a digit it still
// needs to read.
func (a *Int) ShiftLeftDigits(sh int) {
	if sh == 0 {
		return
	}
	if sh > Size {
		sh = Size
	}
	for i := Size - 1; i >= sh; i-- {
		a[i] = a[i-sh]
	}
	for i := 0; i < sh && i < Size; i++ {
		a[i] = 0
	}
}

// ShiftRightDigits sets a := floor(a / Base^sh). sh == 0 is a no-op; sh >=
// Size saturates to zero.
func (a *Int) ShiftRightDigits(sh int) {
	if sh == 0 {
		return
	}
	if sh > Size {
		sh = Size
	}
	for i := 0; i < Size-sh; i++ {
		a[i] = a[i+sh]
	}
	for i := Size - sh; i < Size; i++ {
		a[i] = 0
	}
}

// ShiftLeftBits sets a := a << sh, sh counted in bits. Performs a digit
// shift by sh/DigitBits, then carries the high bits displaced from digit i
// into the low bits of digit i+1 for the remaining sh%DigitBits bits.
// Overflow past the top digit is discarded.
func (a *Int) ShiftLeftBits(sh int) {
	if sh == 0 {
		return
	}
	if sh >= Size*DigitBits {
		a.Zero()
		return
	}
	a.ShiftLeftDigits(sh / DigitBits)
	sh %= DigitBits
	if sh == 0 {
		return
	}
	var carry uint8
	for i := 0; i < Size; i++ {
		next := a[i] >> (DigitBits - sh)
		a[i] = a[i]<<sh | carry
		carry = next
	}
}

// ShiftRightBits sets a := a >> sh, sh counted in bits. Mirrors
// ShiftLeftBits.
func (a *Int) ShiftRightBits(sh int) {
	if sh == 0 {
		return
	}
	if sh >= Size*DigitBits {
		a.Zero()
		return
	}
	a.ShiftRightDigits(sh / DigitBits)
	sh %= DigitBits
	if sh == 0 {
		return
	}
	var carry uint8
	for i := Size - 1; i >= 0; i-- {
		next := a[i] << (DigitBits - sh)
		a[i] = a[i]>>sh | carry
		carry = next
	}
}
