// Package rng provides the injectable random source used by the maze and graph
// generators.
//
// Generators never touch package-level random state directly. They receive a
// Source and draw from it, so tests can freeze outcomes with a seed and
// concurrent calls never share a stream unless the caller arranges it.
//
// Policy:
//   - Seeded mode uses a 32-bit linear congruential generator
//     (state = state·1664525 + 1013904223 mod 2^32, output state/2^32), so
//     the same seed yields the same sequence on every platform.
//   - Unseeded mode uses math/rand's goroutine-safe top-level functions.
//   - A caller-owned *rand.Rand can be adapted with FromRand; it is NOT
//     goroutine-safe and must not be shared across concurrent generations.
package rng

import "math/rand"

// LCG constants (Numerical Recipes).
const (
	lcgMultiplier uint32  = 1664525
	lcgIncrement  uint32  = 1013904223
	lcgModulus    float64 = 1 << 32
)

// Source produces uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

// LCG is a deterministic 32-bit linear congruential generator.
// The zero value is a valid generator seeded with 0.
type LCG struct {
	state uint32
}

// NewLCG returns an LCG whose initial state is seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Float64 advances the state and returns state/2^32.
// Arithmetic on uint32 wraps, which is exactly the mod 2^32 step.
func (l *LCG) Float64() float64 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return float64(l.state) / lcgModulus
}

// Uint32 advances the state and returns it raw.
func (l *LCG) Uint32() uint32 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return l.state
}

type ambient struct{}

func (ambient) Float64() float64 { return rand.Float64() }

// Default returns the process-ambient, non-deterministic source.
func Default() Source { return ambient{} }

type randSource struct{ r *rand.Rand }

func (s randSource) Float64() float64 { return s.r.Float64() }

// FromRand adapts a caller-owned *rand.Rand. A nil r yields Default().
func FromRand(r *rand.Rand) Source {
	if r == nil {
		return Default()
	}
	return randSource{r: r}
}

// Intn returns floor(src.Float64()·n), a uniform index in [0, n).
// Returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n { // guards against a misbehaving Source returning 1.0
		i = n - 1
	}
	return i
}
