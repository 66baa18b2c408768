// Package sampling provides the random draw primitives shared by the
// synthetic dataset generators: uniform intervals, Bernoulli trials and a
// Poisson count sampler. All functions draw from an explicit *rand.Rand so
// callers control seeding and results stay reproducible.
package sampling

import (
	"math"
	"math/rand"
)

// Poisson draws a non-negative integer count from a Poisson distribution
// with the given rate using Knuth's algorithm.
//
// The algorithm compares a running product of uniform draws against
// L = e^(-lambda), consuming one draw per iteration. It is exact for small
// rates; for lambda above roughly 30 the threshold underflows and the loop
// degrades, which is acceptable here because every generator in this module
// stays well below that.
//
// A rate of zero (or a negative rate) deterministically returns 0 without
// consuming entropy. The textbook loop would still terminate almost surely
// at lambda = 0, but only because a uniform draw of exactly 1.0 has
// probability zero, and that guarantee does not hold on every random source.
//
// Parameters:
//   - lambda: Rate parameter (events per observation window)
//   - rng: Random source for the uniform draws
//
// Returns:
//   - int: Sampled count, always >= 0
func Poisson(lambda float64, rng *rand.Rand) int {
	if lambda <= 0 {
		return 0
	}

	threshold := math.Exp(-lambda)
	k := 0
	p := 1.0

	for {
		k++
		p *= rng.Float64()
		if p <= threshold {
			return k - 1
		}
	}
}

// Bernoulli draws a single success/failure trial with success probability p.
// Probabilities at or below 0 never succeed; at or above 1 they always do.
func Bernoulli(p float64, rng *rand.Rand) bool {
	return rng.Float64() < p
}

// Uniform draws a float64 uniformly from the half-open interval [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
