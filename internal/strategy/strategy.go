// Package strategy decides an opponent's action each turn. A Strategy is a
// pure function of the visible state with no hidden memory, so alternate
// behaviors swap in without touching the simulator.
package strategy

import (
	"fmt"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/rng"
)

// Strategy chooses one action for self given the current field. The
// returned action may be unaffordable; the simulator downgrades it.
type Strategy interface {
	Name() string
	Choose(self *campaign.Candidate, opponents []*campaign.Candidate, turn, totalTurns int, r *rng.Source) campaign.Action
}

// ForName builds a strategy by its config name.
func ForName(name string, cfg ReactiveConfig) (Strategy, error) {
	switch name {
	case "reactive", "":
		return NewReactive(cfg), nil
	case "aggressive":
		return NewAggressive(cfg.Spend), nil
	case "passive":
		return NewPassive(), nil
	default:
		return nil, fmt.Errorf("strategy: unknown strategy %q", name)
	}
}

// kindWeights orders draw weights as
// [fundraise, advertise, rally, rest, attack].
type kindWeights [5]float64

var kinds = [5]campaign.ActionKind{
	campaign.ActionFundraise,
	campaign.ActionAdvertise,
	campaign.ActionRally,
	campaign.ActionRest,
	campaign.ActionAttack,
}

// pick draws a kind from the weights and shapes it into an action against
// the leading opponent.
func pick(w kindWeights, self *campaign.Candidate, opponents []*campaign.Candidate, spend int, r *rng.Source) campaign.Action {
	idx, err := r.WeightedChoice(w[:])
	if err != nil {
		return campaign.Rest()
	}
	if spend > self.Funds {
		spend = self.Funds
	}
	if spend < 1 {
		spend = 1
	}
	switch kinds[idx] {
	case campaign.ActionFundraise:
		return campaign.Fundraise()
	case campaign.ActionAdvertise:
		return campaign.Advertise(spend)
	case campaign.ActionRally:
		return campaign.Rally()
	case campaign.ActionRest:
		return campaign.Rest()
	case campaign.ActionAttack:
		target := frontRunner(self, opponents)
		if target == "" {
			return campaign.Advertise(spend)
		}
		return campaign.Attack(target, spend)
	}
	return campaign.Rest()
}

// frontRunner returns the name of the strongest candidate other than self.
func frontRunner(self *campaign.Candidate, opponents []*campaign.Candidate) string {
	var best *campaign.Candidate
	for _, o := range opponents {
		if o == self {
			continue
		}
		if best == nil || o.Support > best.Support {
			best = o
		}
	}
	if best == nil {
		return ""
	}
	return best.Name
}
