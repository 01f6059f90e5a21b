package strategy

import (
	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/rng"
)

// ReactiveConfig tunes the reactive policy's thresholds.
type ReactiveConfig struct {
	// Margin is the support gap beyond which the policy switches to its
	// trailing or leading posture.
	Margin float64 `yaml:"margin"`
	// LowFunds forces fundraising below this war chest level.
	LowFunds int `yaml:"low_funds"`
	// ClosingShare is the final fraction of the campaign spent in the
	// closing push, biased hard toward ads and attacks.
	ClosingShare float64 `yaml:"closing_share"`
	// Spend is the budget committed to one ad buy or attack.
	Spend int `yaml:"spend"`
}

// DefaultReactiveConfig returns the stock reactive thresholds.
func DefaultReactiveConfig() ReactiveConfig {
	return ReactiveConfig{
		Margin:       5,
		LowFunds:     2,
		ClosingShare: 0.2,
		Spend:        3,
	}
}

// Reactive is the default opponent: it reads the poll gap and responds.
// Trailing by more than the margin biases toward attacks and ads, leading
// biases toward rallies and rest, and the closing stretch goes all-in on
// ads and attacks whether or not they are affordable.
type Reactive struct {
	cfg ReactiveConfig
}

// NewReactive creates a Reactive strategy.
func NewReactive(cfg ReactiveConfig) *Reactive {
	if cfg.Spend <= 0 {
		cfg.Spend = DefaultReactiveConfig().Spend
	}
	return &Reactive{cfg: cfg}
}

// Name implements Strategy.
func (s *Reactive) Name() string { return "reactive" }

// Choose implements Strategy.
func (s *Reactive) Choose(self *campaign.Candidate, opponents []*campaign.Candidate, turn, totalTurns int, r *rng.Source) campaign.Action {
	closing := totalTurns > 0 && float64(totalTurns-turn) < s.cfg.ClosingShare*float64(totalTurns)

	if !closing && self.Funds < s.cfg.LowFunds {
		return campaign.Fundraise()
	}

	var gap float64
	if lead := frontRunner(self, opponents); lead != "" {
		for _, o := range opponents {
			if o.Name == lead {
				gap = o.Support - self.Support
			}
		}
	}

	var w kindWeights
	switch {
	case closing:
		// Closing push: spend everything on visibility, affordability is
		// the simulator's problem.
		w = kindWeights{0, 0.45, 0.05, 0, 0.5}
	case gap > s.cfg.Margin:
		// Trailing: change the narrative.
		w = kindWeights{0.1, 0.3, 0.15, 0.05, 0.4}
	case gap < -s.cfg.Margin:
		// Leading: protect the position and the war chest.
		w = kindWeights{0.2, 0.05, 0.35, 0.35, 0.05}
	default:
		w = kindWeights{0.2, 0.25, 0.2, 0.1, 0.25}
	}

	return pick(w, self, opponents, s.cfg.Spend, r)
}
