package bigint

import "fmt"

// ParseDecimal parses a base-10 digit string into an Int, via repeated
// mul-by-ten-then-add — the inverse of String's repeated-divide-by-ten.
func ParseDecimal(s string) (Int, error) {
	var a Int
	if s == "" {
		return a, fmt.Errorf("bigint: empty decimal string")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Int{}, fmt.Errorf("bigint: invalid decimal digit %q", c)
		}
		MulSmall(10, &a)
		AddSmall(uint8(c-'0'), &a)
	}
	return a, nil
}
