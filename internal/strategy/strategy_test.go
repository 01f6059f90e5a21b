package strategy

import (
	"testing"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/rng"
)

func opponentPair(selfSupport, otherSupport float64) (*campaign.Candidate, []*campaign.Candidate) {
	self := campaign.NewCandidate(campaign.Setup{Name: "Brook", Funds: 20, Staff: 5, Energy: 100}, 100, 100)
	other := campaign.NewCandidate(campaign.Setup{Name: "Adler", Funds: 20, Staff: 5, Energy: 100}, 100, 100)
	self.Support = selfSupport
	other.Support = otherSupport
	return self, []*campaign.Candidate{other, self}
}

func TestReactiveFundraisesWhenBroke(t *testing.T) {
	s := NewReactive(DefaultReactiveConfig())
	self, field := opponentPair(40, 45)
	self.Funds = 0

	a := s.Choose(self, field, 2, 20, rng.New(1))
	if a.Kind != campaign.ActionFundraise {
		t.Errorf("expected Fundraise when broke, got %s", a)
	}
}

func TestReactiveClosingPushIgnoresAffordability(t *testing.T) {
	s := NewReactive(DefaultReactiveConfig())
	self, field := opponentPair(40, 45)
	self.Funds = 0 // broke, but the closing push must not fall back to fundraising

	r := rng.New(1)
	for turn := 18; turn <= 20; turn++ {
		a := s.Choose(self, field, turn, 20, r)
		switch a.Kind {
		case campaign.ActionAdvertise, campaign.ActionAttack, campaign.ActionRally:
		default:
			t.Errorf("turn %d: expected a closing-push action, got %s", turn, a)
		}
	}
}

func TestReactiveTrailingPrefersOffense(t *testing.T) {
	s := NewReactive(DefaultReactiveConfig())
	self, field := opponentPair(30, 55)

	r := rng.New(42)
	offense := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		a := s.Choose(self, field, 5, 20, r)
		if a.Kind == campaign.ActionAttack || a.Kind == campaign.ActionAdvertise {
			offense++
		}
	}
	if offense < trials/2 {
		t.Errorf("trailing reactive chose offense only %d/%d times", offense, trials)
	}
}

func TestReactiveLeadingConserves(t *testing.T) {
	s := NewReactive(DefaultReactiveConfig())
	self, field := opponentPair(55, 30)

	r := rng.New(42)
	conserve := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		a := s.Choose(self, field, 5, 20, r)
		if a.Kind == campaign.ActionRally || a.Kind == campaign.ActionRest {
			conserve++
		}
	}
	if conserve < trials/2 {
		t.Errorf("leading reactive conserved only %d/%d times", conserve, trials)
	}
}

func TestAttackTargetsFrontRunner(t *testing.T) {
	s := NewAggressive(3)
	self, field := opponentPair(30, 55)

	r := rng.New(7)
	for i := 0; i < 100; i++ {
		a := s.Choose(self, field, 5, 20, r)
		if a.Kind == campaign.ActionAttack && a.Target != "Adler" {
			t.Fatalf("attack aimed at %q, want front-runner Adler", a.Target)
		}
	}
}

func TestPassiveNeverAttacksOrAdvertises(t *testing.T) {
	s := NewPassive()
	self, field := opponentPair(40, 45)

	r := rng.New(11)
	for i := 0; i < 200; i++ {
		a := s.Choose(self, field, 5, 20, r)
		if a.Kind == campaign.ActionAttack || a.Kind == campaign.ActionAdvertise {
			t.Fatalf("passive chose %s", a)
		}
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"reactive", "aggressive", "passive", ""} {
		if _, err := ForName(name, DefaultReactiveConfig()); err != nil {
			t.Errorf("name %q: unexpected error %v", name, err)
		}
	}
	if _, err := ForName("psychic", DefaultReactiveConfig()); err == nil {
		t.Error("expected error for unknown strategy name")
	}
}
