package strategy

import (
	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/rng"
)

// Aggressive attacks and advertises regardless of position, fundraising
// only when broke.
type Aggressive struct {
	spend int
}

// NewAggressive creates an Aggressive strategy committing spend per move.
func NewAggressive(spend int) *Aggressive {
	if spend <= 0 {
		spend = DefaultReactiveConfig().Spend
	}
	return &Aggressive{spend: spend}
}

// Name implements Strategy.
func (s *Aggressive) Name() string { return "aggressive" }

// Choose implements Strategy.
func (s *Aggressive) Choose(self *campaign.Candidate, opponents []*campaign.Candidate, turn, totalTurns int, r *rng.Source) campaign.Action {
	if self.Funds < 1 {
		return campaign.Fundraise()
	}
	return pick(kindWeights{0.05, 0.35, 0.05, 0, 0.55}, self, opponents, s.spend, r)
}

// Passive conserves resources: it fundraises, rallies, and rests, and
// never goes negative.
type Passive struct{}

// NewPassive creates a Passive strategy.
func NewPassive() *Passive { return &Passive{} }

// Name implements Strategy.
func (s *Passive) Name() string { return "passive" }

// Choose implements Strategy.
func (s *Passive) Choose(self *campaign.Candidate, opponents []*campaign.Candidate, turn, totalTurns int, r *rng.Source) campaign.Action {
	return pick(kindWeights{0.4, 0, 0.3, 0.3, 0}, self, opponents, 0, r)
}
