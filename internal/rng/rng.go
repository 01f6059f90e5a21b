// Package rng provides the seedable randomness source used by every
// probabilistic part of the simulation. A fixed seed reproduces an
// identical full game trace, which replay and the tests rely on.
package rng

import (
	"errors"
	"math/rand"
)

// ErrInvalidWeights is returned when a weighted table has no positive
// weight or contains a negative one.
var ErrInvalidWeights = errors.New("rng: invalid weights")

// Source is a deterministic random source. Not safe for concurrent use;
// the simulation is single-actor and turn-sequenced.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a Source from the given seed.
func New(seed int64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// IntN returns a uniform draw in [0, n).
func (s *Source) IntN(n int) int { return s.r.Intn(n) }

// Range returns a uniform draw in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// Coin returns true with probability 0.5.
func (s *Source) Coin() bool { return s.r.Intn(2) == 0 }

// WeightedChoice draws an index from weights, each index selected with
// probability proportional to its weight. Weights are positional rather
// than keyed so the draw order is stable across runs.
func (s *Source) WeightedChoice(weights []float64) (int, error) {
	var total float64
	for _, w := range weights {
		if w < 0 {
			return 0, ErrInvalidWeights
		}
		total += w
	}
	if total <= 0 {
		return 0, ErrInvalidWeights
	}

	roll := s.r.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if roll < acc {
			return i, nil
		}
	}
	// Floating point edge: roll landed on the total. Return the last
	// index with a positive weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return 0, ErrInvalidWeights
}
