package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the sequence from the provided seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange returns a random int in [lo, hi]. Reversed bounds are swapped.
func (r *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// SampleIndices appends k distinct indices drawn uniformly from [0, n) to dst.
// k is clamped to n.
func (r *RNG) SampleIndices(dst []int, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return dst
	}
	start := len(dst)
	// Floyd's algorithm; k is tiny in practice so membership is a linear scan.
	for j := n - k; j < n; j++ {
		t := r.r.IntN(j + 1)
		if containsInt(dst[start:], t) {
			t = j
		}
		dst = append(dst, t)
	}
	return dst
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
