package bigint

import (
	"fmt"
	"io"
	"strings"
)

// String renders a in decimal by repeatedly dividing by ten and collecting
// remainders least-significant-first, then reversing. "0" for the zero
// value.
func (a *Int) String() string {
	if a.IsZero() {
		return "0"
	}
	var ten Int
	ten.Set(10)
	x := *a
	var digits []byte
	for !x.IsZero() {
		q, r, _ := DivMod(&ten, &x)
		digits = append(digits, '0'+r[0])
		x = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// FprintDecimal writes a's decimal representation to w, prefixed by label.
func FprintDecimal(w io.Writer, label string, a *Int) error {
	_, err := fmt.Fprintf(w, " - %16s : %s\n", label, a.String())
	return err
}

// FormatBytes renders a's digits most-significant non-zero digit down to
// index 0, each as a decimal number with a field width of 3,
// space-separated.
func (a *Int) FormatBytes() string {
	top := 0
	for i := Size - 1; i >= 0; i-- {
		if a[i] != 0 {
			top = i
			break
		}
	}
	var sb strings.Builder
	for i := top; i >= 0; i-- {
		fmt.Fprintf(&sb, "%3d ", a[i])
	}
	return strings.TrimRight(sb.String(), " ")
}

// FprintBytes writes a's byte dump to w, prefixed by label.
func FprintBytes(w io.Writer, label string, a *Int) error {
	_, err := fmt.Fprintf(w, " - %16s : %s\n", label, a.FormatBytes())
	return err
}
