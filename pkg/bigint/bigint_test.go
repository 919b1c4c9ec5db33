package bigint

import "testing"

func fromUint64(v uint64) Int {
	var a Int
	a.Set(v)
	return a
}

func TestComparisonTrichotomy(t *testing.T) {
	cases := []struct{ x, y uint64 }{
		{0, 0}, {1, 2}, {2, 1}, {255, 256}, {65536, 65535},
	}
	for _, c := range cases {
		a, b := fromUint64(c.x), fromUint64(c.y)
		lt, eq, gt := Less(&a, &b), Equal(&a, &b), Less(&b, &a)
		count := 0
		for _, v := range []bool{lt, eq, gt} {
			if v {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("trichotomy violated for %d,%d: lt=%v eq=%v gt=%v", c.x, c.y, lt, eq, gt)
		}
		if LessOrEqual(&a, &b) != (lt || eq) {
			t.Fatalf("less_or_equal disagrees with less/equal for %d,%d", c.x, c.y)
		}
	}
}

func TestAdditiveIdentityAndInverse(t *testing.T) {
	var zero Int
	a := fromUint64(123456)

	got := a
	Add(&zero, &got)
	if !Equal(&got, &a) {
		t.Fatalf("add(zero, a) != a")
	}

	got = a
	Sub(&a, &got)
	if !got.IsZero() {
		t.Fatalf("sub(a, a) != zero")
	}

	x, y := fromUint64(111), fromUint64(222)
	sum1, sum2 := x, y
	Add(&y, &sum1)
	Add(&x, &sum2)
	if !Equal(&sum1, &sum2) {
		t.Fatalf("add is not commutative")
	}

	sumXY := x
	Add(&y, &sumXY)
	backOut := sumXY
	Sub(&y, &backOut)
	if !Equal(&backOut, &x) {
		t.Fatalf("sub(add(a,b), b) != a")
	}
}

func TestShiftMultiplyEquivalence(t *testing.T) {
	a := fromUint64(17)
	viaShift := a
	viaShift.ShiftLeftBits(5)

	viaMul := a
	for i := 0; i < 5; i++ {
		MulSmall(2, &viaMul)
	}
	if !Equal(&viaShift, &viaMul) {
		t.Fatalf("shift_left_bits(a,5) != repeated mul_small(2,.): %s vs %s", viaShift.String(), viaMul.String())
	}

	viaDigitShift := a
	viaDigitShift.ShiftLeftDigits(1)
	var base Int
	base.Set(Base)
	viaMulBase := Mul(&base, &a)
	if !Equal(&viaDigitShift, &viaMulBase) {
		t.Fatalf("shift_left_digits(a,1) != a*Base")
	}
}

func TestShiftRoundTrip(t *testing.T) {
	a := fromUint64(1) // plenty of leading zero bits
	shifted := a
	shifted.ShiftLeftBits(40)
	shifted.ShiftRightBits(40)
	if !Equal(&shifted, &a) {
		t.Fatalf("round-trip shift failed: got %s want %s", shifted.String(), a.String())
	}
}

func TestDivisionLaw(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{17, 1000}, {1, 999999}, {7, 50}, {255, 65535}, {2, 1},
	}
	for _, c := range cases {
		a, b := fromUint64(c.a), fromUint64(c.b)
		q, r, err := DivMod(&a, &b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !Less(&r, &a) {
			t.Fatalf("remainder %s not < divisor %s", r.String(), a.String())
		}
		prod := Mul(&q, &a)
		Add(&r, &prod)
		if !Equal(&prod, &b) {
			t.Fatalf("q*a+r != b: got %s want %d", prod.String(), c.b)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	var zero, b Int
	b.Set(10)
	if _, _, err := DivMod(&zero, &b); err != ErrDivideByZero {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
}

func TestMulLiteral(t *testing.T) {
	a, b := fromUint64(15), fromUint64(17)
	p := Mul(&a, &b)
	if p.String() != "255" {
		t.Fatalf("15*17 = %s, want 255", p.String())
	}
}

func TestDivLiteral(t *testing.T) {
	a, b := fromUint64(17), fromUint64(1000)
	q, r, err := DivMod(&a, &b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.String() != "58" || r.String() != "14" {
		t.Fatalf("1000/17 = %s rem %s, want 58 rem 14", q.String(), r.String())
	}
}

func TestFormatBytes(t *testing.T) {
	a := fromUint64(255)
	if got := a.FormatBytes(); got != "255" {
		t.Fatalf("FormatBytes(255) = %q, want %q", got, "255")
	}
}

func TestParseDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "255", "1000000007", "123456789012345"}
	for _, s := range cases {
		a, err := ParseDecimal(s)
		if err != nil {
			t.Fatalf("ParseDecimal(%q): %v", s, err)
		}
		if got := a.String(); got != s {
			t.Fatalf("ParseDecimal(%q).String() = %q", s, got)
		}
	}
}

func TestParseDecimalInvalid(t *testing.T) {
	if _, err := ParseDecimal(""); err == nil {
		t.Fatal("expected error for empty string")
	}
	if _, err := ParseDecimal("12a3"); err == nil {
		t.Fatal("expected error for non-digit character")
	}
}

func TestModSmall(t *testing.T) {
	a := fromUint64(123456789)
	if got := ModSmall(97, &a); got != 123456789%97 {
		t.Fatalf("ModSmall = %d, want %d", got, 123456789%97)
	}
}
