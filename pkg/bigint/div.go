package bigint

// DivMod computes q = floor(b / a), r = b mod a, by schoolbook long
// division, most significant digit first. For each digit it finds the
// largest k in [1, Base] with k*a <= r by repeated addition; this is the
// correct-for-every-divisor, slow reference implementation — modreduce.
// Reducer exists precisely to avoid this loop's O(Size*Base) cost per
// digit when the same divisor is reused.
func DivMod(a, b *Int) (q, r Int, err error) {
	if a.IsZero() {
		return q, r, ErrDivideByZero
	}
	var t Int
	for i := Size - 1; i >= 0; i-- {
		r.ShiftLeftDigits(1)
		AddSmall(b[i], &r)
		if LessOrEqual(a, &r) {
			t.Zero()
			var k uint16
			for {
				k++
				Add(a, &t)
				if !LessOrEqual(&t, &r) {
					break
				}
			}
			q[i] = uint8(k - 1)
			Sub(a, &t)
			Sub(&t, &r)
		} else {
			q[i] = 0
		}
	}
	return q, r, nil
}

// ModSmall computes r = b mod a for a host-width divisor, via Horner's
// method digit by digit: r := (r*Base + b[i]) mod a.
func ModSmall(a uint64, b *Int) uint64 {
	var r uint64
	for i := Size - 1; i >= 0; i-- {
		r = (r*Base + uint64(b[i])) % a
	}
	return r
}
