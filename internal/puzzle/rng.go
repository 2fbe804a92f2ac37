// Package puzzle implements the picross core: deterministic puzzle
// generation from a seed and pure evaluation of player progress.
// It has no dependencies outside the standard library so the whole
// pipeline is testable without a terminal.
package puzzle

// RNG is a deterministic pseudo-random source derived from a single seed.
// The state is a plain counter: every draw hashes the current counter
// value and then advances it by one, so a given seed always yields the
// same sequence of draws regardless of how they are consumed.
//
// Not safe for concurrent use; each generation run owns its own RNG.
type RNG struct {
	counter uint64
}

// NewRNG creates an RNG whose first draw is a function of seed.
func NewRNG(seed Seed) *RNG {
	return &RNG{counter: uint64(seed)}
}

// Next returns a value in [0, 1) and advances the counter.
// The result is a pure function of the counter before the increment:
// a SplitMix64-style avalanche turns the incrementing integer into a
// decorrelated 53-bit fraction.
func (r *RNG) Next() float64 {
	x := r.counter
	r.counter++

	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31

	return float64(x>>11) / float64(1<<53)
}

// Range returns an integer in [min, max] inclusive.
func (r *RNG) Range(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(r.Next()*float64(max-min+1))
}

// Bool returns true with probability chance.
func (r *RNG) Bool(chance float64) bool {
	return r.Next() < chance
}
