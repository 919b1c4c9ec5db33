package randsrc

import (
	"math/rand/v2"
	"time"
)

// MathRand wraps math/rand/v2, the non-cryptographic PRNG spec.md assumes
// by default. Seeded from wall-clock time unless NewMathRandSeeded is used
// — matching the C source's srand(time(0)) policy while making
// determinism available for tests.
type MathRand struct {
	rng  *rand.Rand
	seed uint64
}

// NewMathRand seeds from the current time, mirroring the original
// srand(time(0)) policy.
func NewMathRand() *MathRand {
	return NewMathRandSeeded(uint64(time.Now().UnixNano()))
}

// NewMathRandSeeded seeds deterministically, for reproducible tests and
// the CLI's --seed flag.
func NewMathRandSeeded(seed uint64) *MathRand {
	return &MathRand{seed: seed, rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Fork derives an independent MathRand for worker index id, deterministic
// in the parent's seed and id — the same "baseSeed + id*const" shape the
// teacher's stoke.Run uses to seed independent MCMC chains.
func (m *MathRand) Fork(id int) *MathRand {
	return NewMathRandSeeded(m.seed + uint64(id)*0x9E3779B97F4A7C15)
}

func (m *MathRand) Digit() uint8 {
	return uint8(m.rng.IntN(256))
}

func (m *MathRand) Bit() uint8 {
	return uint8(m.rng.IntN(2))
}
