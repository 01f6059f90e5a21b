package events

import (
	"errors"
	"testing"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/rng"
)

func field() []*campaign.Candidate {
	a := campaign.NewCandidate(campaign.Setup{Name: "Adler", Funds: 1, Staff: 1, Energy: 50}, 100, 100)
	b := campaign.NewCandidate(campaign.Setup{Name: "Brook", Funds: 1, Staff: 1, Energy: 50}, 100, 100)
	a.Support = 48
	b.Support = 42
	return []*campaign.Candidate{a, b}
}

func TestNewRejectsBadTable(t *testing.T) {
	cases := []Config{
		{},
		{Table: []Weight{{Kind: KindScandal, Weight: 0}}},
		{Table: []Weight{{Kind: KindScandal, Weight: 1}, {Kind: KindGaffe, Weight: -0.2}}},
	}
	for i, cfg := range cases {
		if _, err := New(cfg, rng.New(1)); !errors.Is(err, rng.ErrInvalidWeights) {
			t.Errorf("case %d: expected ErrInvalidWeights, got %v", i, err)
		}
	}
}

func TestSlowNewsDrawsNothing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table = []Weight{{Kind: KindSlowNews, Weight: 1}}

	e, err := New(cfg, rng.New(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for turn := 1; turn <= 50; turn++ {
		if ev := e.Draw(turn, field()); ev != nil {
			t.Fatalf("turn %d: expected no event, got %v", turn, ev.Kind)
		}
	}
}

func TestScandalNeverOverdrawsFunds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table = []Weight{{Kind: KindScandal, Weight: 1}}
	cfg.ScandalFunds = Range{Lo: -10, Hi: -10}

	e, err := New(cfg, rng.New(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cands := field() // each has $1M, far less than the $10M hit
	for turn := 1; turn <= 20; turn++ {
		ev := e.Draw(turn, cands)
		if ev == nil {
			t.Fatalf("turn %d: expected a scandal", turn)
		}
		e.Apply(ev, cands)
		for _, c := range cands {
			if c.Funds < 0 {
				t.Fatalf("turn %d: %s funds went negative: %d", turn, c.Name, c.Funds)
			}
		}
	}
}

func TestTargetedEventTouchesOnlyTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table = []Weight{{Kind: KindGaffe, Weight: 1}}

	e, err := New(cfg, rng.New(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cands := field()
	ev := e.Draw(1, cands)
	if ev == nil || ev.Target == "" {
		t.Fatalf("expected a targeted gaffe, got %+v", ev)
	}
	e.Apply(ev, cands)

	for _, c := range cands {
		if c.Name == ev.Target {
			if c.Momentum >= 0 {
				t.Errorf("target %s momentum should drop, got %v", c.Name, c.Momentum)
			}
		} else if c.Momentum != 0 {
			t.Errorf("bystander %s was touched: momentum %v", c.Name, c.Momentum)
		}
	}
}

func TestDrawDeterministicAcrossRuns(t *testing.T) {
	run := func() []Kind {
		e, err := New(DefaultConfig(), rng.New(42))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cands := field()
		var kinds []Kind
		for turn := 1; turn <= 30; turn++ {
			if ev := e.Draw(turn, cands); ev != nil {
				kinds = append(kinds, ev.Kind)
			} else {
				kinds = append(kinds, KindSlowNews)
			}
		}
		return kinds
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestKindYAMLRoundTrip(t *testing.T) {
	for k, name := range kindNames {
		parsed, err := ParseKind(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if parsed != k {
			t.Errorf("round trip %q: got %v, want %v", name, parsed, k)
		}
	}
	if _, err := ParseKind("earthquake"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
