package campaign

import (
	"errors"
	"testing"
)

func testCandidate() *Candidate {
	return NewCandidate(Setup{Name: "Morales", Funds: 10, Staff: 4, Energy: 80}, 100, 100)
}

func TestApplyDeltaAllOrNothing(t *testing.T) {
	c := testCandidate()

	err := c.ApplyDelta(-20, 1, -10, 5)
	if !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources, got %v", err)
	}

	// Nothing may have been applied, staff and energy included.
	if c.Funds != 10 || c.Staff != 4 || c.Energy != 80 || c.Momentum != 0 {
		t.Errorf("state mutated by rejected delta: %+v", c)
	}
}

func TestApplyDeltaClampsEnergyAndMomentum(t *testing.T) {
	c := testCandidate()

	if err := c.ApplyDelta(0, 0, 500, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Energy != 100 {
		t.Errorf("expected energy capped at 100, got %v", c.Energy)
	}
	if c.Momentum != 100 {
		t.Errorf("expected momentum capped at 100, got %v", c.Momentum)
	}

	if err := c.ApplyDelta(0, 0, -500, -500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Energy != 0 {
		t.Errorf("expected energy floored at 0, got %v", c.Energy)
	}
	if c.Momentum != -100 {
		t.Errorf("expected momentum floored at -100, got %v", c.Momentum)
	}
}

func TestApplyDeltaClampedStopsAtZero(t *testing.T) {
	c := testCandidate()

	c.ApplyDeltaClamped(-50, -50, 0, 0)
	if c.Funds != 0 {
		t.Errorf("expected funds 0, got %d", c.Funds)
	}
	if c.Staff != 0 {
		t.Errorf("expected staff 0, got %d", c.Staff)
	}
}

func TestDecayMomentum(t *testing.T) {
	c := testCandidate()
	c.Momentum = 40

	c.DecayMomentum(0.85)
	if c.Momentum != 34 {
		t.Errorf("expected momentum 34, got %v", c.Momentum)
	}

	c.Momentum = -40
	c.DecayMomentum(0.85)
	if c.Momentum != -34 {
		t.Errorf("expected momentum -34, got %v", c.Momentum)
	}
}
