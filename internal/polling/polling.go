// Package polling converts candidate resources into public-support
// percentages. Each candidate's raw score is a weighted sum of normalized
// funds, staff, and momentum plus bounded noise; a softmax over the raw
// scores splits a configured decided-voter total, leaving the remainder
// undecided.
package polling

import (
	"fmt"
	"math"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/rng"
)

// Config holds the poll model's tunable weights.
type Config struct {
	// FundsWeight, StaffWeight, and MomentumWeight scale the normalized
	// resource terms of the raw score.
	FundsWeight    float64 `yaml:"funds_weight"`
	StaffWeight    float64 `yaml:"staff_weight"`
	MomentumWeight float64 `yaml:"momentum_weight"`

	// Volatility scales the zero-mean noise term.
	Volatility float64 `yaml:"volatility"`

	// Sharpness is the softmax temperature inverse: higher values turn
	// small score gaps into larger support gaps.
	Sharpness float64 `yaml:"sharpness"`

	// DecidedTotal is the support percentage split between candidates;
	// the rest is implicit undecided mass.
	DecidedTotal float64 `yaml:"decided_total"`
}

// DefaultConfig returns the stock poll weights.
func DefaultConfig() Config {
	return Config{
		FundsWeight:    1.0,
		StaffWeight:    0.6,
		MomentumWeight: 0.8,
		Volatility:     0.08,
		Sharpness:      2.5,
		DecidedTotal:   90,
	}
}

// Validate checks the config for startup errors.
func (c Config) Validate() error {
	if c.FundsWeight < 0 || c.StaffWeight < 0 || c.MomentumWeight < 0 {
		return fmt.Errorf("polling: weights must be non-negative")
	}
	if c.FundsWeight+c.StaffWeight+c.MomentumWeight == 0 {
		return fmt.Errorf("polling: at least one weight must be positive")
	}
	if c.Volatility < 0 {
		return fmt.Errorf("polling: volatility must be non-negative, got %v", c.Volatility)
	}
	if c.Sharpness <= 0 {
		return fmt.Errorf("polling: sharpness must be positive, got %v", c.Sharpness)
	}
	if c.DecidedTotal <= 0 || c.DecidedTotal > 100 {
		return fmt.Errorf("polling: decided_total must be in (0,100], got %v", c.DecidedTotal)
	}
	return nil
}

// Model computes support percentages from candidate state.
type Model struct {
	cfg Config
	rng *rng.Source
}

// New creates a poll model drawing noise from r.
func New(cfg Config, r *rng.Source) *Model {
	return &Model{cfg: cfg, rng: r}
}

// ComputeSupport recomputes and overwrites Support for every candidate.
// steady names candidates whose noise term is suppressed this turn (a
// rally steadies coverage). A noise draw is consumed for every candidate
// regardless, so the draw sequence does not depend on who rallied.
func (m *Model) ComputeSupport(cands []*campaign.Candidate, steady map[string]bool) {
	if len(cands) == 0 {
		return
	}

	maxFunds, maxStaff := 1.0, 1.0
	for _, c := range cands {
		maxFunds = math.Max(maxFunds, float64(c.Funds))
		maxStaff = math.Max(maxStaff, float64(c.Staff))
	}

	exps := make([]float64, len(cands))
	var sum float64
	for i, c := range cands {
		noise := m.cfg.Volatility * (2*m.rng.Float64() - 1)
		if steady[c.Name] {
			noise = 0
		}

		// Momentum maps [-max, max] onto [0, 1] so the raw score stays
		// comparable across terms.
		momentum := 0.5
		if c.MaxMomentum > 0 {
			momentum = (c.Momentum + c.MaxMomentum) / (2 * c.MaxMomentum)
		}

		score := m.cfg.FundsWeight*float64(c.Funds)/maxFunds +
			m.cfg.StaffWeight*float64(c.Staff)/maxStaff +
			m.cfg.MomentumWeight*momentum +
			noise

		exps[i] = math.Exp(m.cfg.Sharpness * score)
		sum += exps[i]
	}

	for i, c := range cands {
		share := m.cfg.DecidedTotal * exps[i] / sum
		c.Support = math.Min(math.Max(share, 0), 100)
	}
}
