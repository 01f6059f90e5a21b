package rng

import (
	"errors"
	"testing"
)

func TestDeterministicSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestWeightedChoiceBounds(t *testing.T) {
	s := New(1)
	weights := []float64{0.7, 0.2, 0.1}

	for i := 0; i < 1000; i++ {
		idx, err := s.WeightedChoice(weights)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestWeightedChoiceSkipsZeroWeight(t *testing.T) {
	s := New(7)
	weights := []float64{0, 1, 0}

	for i := 0; i < 100; i++ {
		idx, err := s.WeightedChoice(weights)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idx != 1 {
			t.Fatalf("expected index 1, got %d", idx)
		}
	}
}

func TestWeightedChoiceInvalid(t *testing.T) {
	s := New(1)

	cases := [][]float64{
		{},
		{0, 0, 0},
		{1, -0.5},
	}
	for _, weights := range cases {
		if _, err := s.WeightedChoice(weights); !errors.Is(err, ErrInvalidWeights) {
			t.Errorf("weights %v: expected ErrInvalidWeights, got %v", weights, err)
		}
	}
}
