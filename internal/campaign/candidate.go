// Package campaign holds the core data model of the simulation: candidate
// state, the action variants a campaign can take each turn, and the tunable
// effect table behind them.
package campaign

import "errors"

// ErrInsufficientResources is returned by ApplyDelta when an update would
// drive funds or staff negative. The update is all-or-nothing.
var ErrInsufficientResources = errors.New("campaign: insufficient resources")

// ErrInvalidAction is returned when an actor cannot afford an action's
// cost or the action is malformed. Recoverable: state is unchanged and
// the caller may re-prompt.
var ErrInvalidAction = errors.New("campaign: invalid action")

// Candidate is the mutable record of one participant's campaign metrics.
// Support is written only by the poll model.
type Candidate struct {
	Name     string
	Funds    int
	Staff    int
	Energy   float64
	Support  float64
	Momentum float64

	MaxEnergy   float64
	MaxMomentum float64
}

// Setup holds a candidate's starting resources.
type Setup struct {
	Name   string  `yaml:"name"`
	Funds  int     `yaml:"funds"`
	Staff  int     `yaml:"staff"`
	Energy float64 `yaml:"energy"`
}

// NewCandidate creates a candidate from starting resources.
func NewCandidate(s Setup, maxEnergy, maxMomentum float64) *Candidate {
	return &Candidate{
		Name:        s.Name,
		Funds:       s.Funds,
		Staff:       s.Staff,
		Energy:      min(s.Energy, maxEnergy),
		MaxEnergy:   maxEnergy,
		MaxMomentum: maxMomentum,
	}
}

// ApplyDelta applies a combined resource update. If the result would make
// funds or staff negative nothing is applied and ErrInsufficientResources
// is returned. Energy is clamped to [0, MaxEnergy] and momentum to
// [-MaxMomentum, MaxMomentum].
func (c *Candidate) ApplyDelta(funds, staff int, energy, momentum float64) error {
	if c.Funds+funds < 0 || c.Staff+staff < 0 {
		return ErrInsufficientResources
	}
	c.Funds += funds
	c.Staff += staff
	c.Energy = clamp(c.Energy+energy, 0, c.MaxEnergy)
	c.Momentum = clamp(c.Momentum+momentum, -c.MaxMomentum, c.MaxMomentum)
	return nil
}

// ApplyDeltaClamped applies an update like ApplyDelta but trims the funds
// and staff deltas so the result lands at exactly zero instead of failing.
// Events use this: they may empty a war chest, never overdraw it.
func (c *Candidate) ApplyDeltaClamped(funds, staff int, energy, momentum float64) {
	if c.Funds+funds < 0 {
		funds = -c.Funds
	}
	if c.Staff+staff < 0 {
		staff = -c.Staff
	}
	// Cannot fail after trimming.
	_ = c.ApplyDelta(funds, staff, energy, momentum)
}

// DecayMomentum pulls momentum toward zero by the given factor. Called
// once per turn before events.
func (c *Candidate) DecayMomentum(factor float64) {
	c.Momentum *= factor
}

// MomentumLabel describes the current momentum band for display.
func (c *Candidate) MomentumLabel() string {
	switch {
	case c.Momentum >= 50:
		return "Surging"
	case c.Momentum >= 20:
		return "Rising"
	case c.Momentum >= -20:
		return "Steady"
	case c.Momentum >= -50:
		return "Falling"
	default:
		return "Collapsing"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
