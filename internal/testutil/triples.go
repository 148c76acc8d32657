package testutil

import (
	"math"
	"math/rand"
)

// DeterministicTriples returns n coefficient triples (a, b, c) drawn from a
// fixed seed: a in [-amp, amp), b in [0, 2π), c in [-maxRate, maxRate).
func DeterministicTriples(seed int64, n int, amp, maxRate float64) [][3]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][3]float64, n)
	for i := range out {
		out[i] = [3]float64{
			(rng.Float64()*2 - 1) * amp,
			rng.Float64() * 2 * math.Pi,
			(rng.Float64()*2 - 1) * maxRate,
		}
	}
	return out
}

// Permute returns a shuffled copy of the index range [0, n) for a fixed seed.
func Permute(seed int64, n int) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}
