// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import "math/rand"

// Source is the single randomness primitive the combat core depends on.
// Every roll, scheduler delay, and effect step that needs randomness pulls
// from a Source rather than touching a clock or a package-level global.
//
// Implementations must be reproducible: two Sources built from the same
// seed, driven with the same call sequence, must produce identical results
// indefinitely. Source is not safe for concurrent use — the combat core is
// single-threaded cooperative (see the scheduler package) and never shares
// one Source across goroutines.
type Source interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64

	// Intn returns a pseudo-random number in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Seed returns the seed this Source was constructed from, for logging
	// and for Monte Carlo harnesses that report the seed of a failing run.
	Seed() int64
}

// mathRandSource implements Source on top of math/rand's default algorithm.
// math/rand.NewSource documents exactly the property the combat core needs:
// a given seed always produces the same sequence, on any platform, for as
// long as the algorithm is unchanged.
type mathRandSource struct {
	seed int64
	rnd  *rand.Rand
}

// NewSource creates a deterministic Source from a seed. Two Sources created
// with the same seed produce identical sequences.
func NewSource(seed int64) Source {
	return &mathRandSource{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)), //nolint:gosec // determinism, not security, is the requirement here
	}
}

// Float64 returns the next uniform value in [0, 1).
func (s *mathRandSource) Float64() float64 {
	return s.rnd.Float64()
}

// Intn returns the next uniform value in [0, n).
func (s *mathRandSource) Intn(n int) int {
	return s.rnd.Intn(n)
}

// Seed returns the seed this Source was constructed from.
func (s *mathRandSource) Seed() int64 {
	return s.seed
}

// WeightedRound performs zero-bias rounding of a fractional value: it rounds
// up with probability equal to the fractional part, and down otherwise, so
// that over many calls the average of the rounded results converges on x.
// The scheduler uses this to turn a fractional action delay into an integer
// number of time units without systematically favoring faster or slower
// combatants.
func WeightedRound(x float64, src Source) int {
	whole := int(x)
	frac := x - float64(whole)
	if src.Float64() < frac {
		return whole + 1
	}
	return whole
}
