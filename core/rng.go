package core

// Rand is the randomness source the generator draws from. IntN must
// return a uniform int in [0, n). *rand.Rand from math/rand/v2
// satisfies the interface as-is.
type Rand interface {
	IntN(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator
// (xorshift64). It is the default source when a caller supplies only
// a seed, keeping generation reproducible across runs and platforms.
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// IntN returns a random int in [0, n).
func (r *SimpleRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
