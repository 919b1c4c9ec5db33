package randsrc

import "crypto/rand"

// CryptoRand wraps crypto/rand for security-sensitive callers, per
// spec.md §9's note that the randomness interface should accept an
// injectable source so a CSPRNG can be supplied. Not the default: the
// spec's baseline contract is a non-cryptographic PRNG, and this type is
// strictly opt-in (the CLI's --crypto-rand flag).
type CryptoRand struct{}

// NewCryptoRand returns a Source backed by crypto/rand.
func NewCryptoRand() *CryptoRand {
	return &CryptoRand{}
}

func (CryptoRand) Digit() uint8 {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the OS entropy source is broken;
		// every standard library caller of crypto/rand treats this the
		// same way — there is no sane fallback.
		panic("randsrc: crypto/rand read failed: " + err.Error())
	}
	return b[0]
}

func (CryptoRand) Bit() uint8 {
	return CryptoRand{}.Digit() & 1
}
