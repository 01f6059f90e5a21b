// Package events draws and applies the random campaign events that perturb
// candidate state between actions. Every effect routes through the clamped
// delta path: an event may empty a resource, never overdraw it, and never
// fails a turn.
package events

import (
	"fmt"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/rng"
)

// Kind enumerates the event variants. SlowNews is the no-op draw.
type Kind int

const (
	KindSlowNews Kind = iota
	KindNewsCycle
	KindScandal
	KindEndorsement
	KindGaffe
	KindViral
	KindCrisis
)

var kindNames = map[Kind]string{
	KindSlowNews:    "slow_news",
	KindNewsCycle:   "news_cycle",
	KindScandal:     "scandal",
	KindEndorsement: "endorsement",
	KindGaffe:       "gaffe",
	KindViral:       "viral",
	KindCrisis:      "crisis",
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a config name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("events: unknown kind %q", name)
}

// UnmarshalYAML decodes a Kind from its config name.
func (k *Kind) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a Kind as its config name.
func (k Kind) MarshalYAML() (any, error) { return k.String(), nil }

// Event is one drawn event with its fully resolved effect, so a recorded
// event replays identically.
type Event struct {
	Kind     Kind
	Turn     int
	Target   string // empty for field-wide events
	Headline string
	Detail   string

	MomentumDelta float64
	FundsDelta    int
	EnergyDelta   float64
}

// Weight pairs an event kind with its draw weight. The table is a slice,
// not a map, so draw order is stable.
type Weight struct {
	Kind   Kind    `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}

// Range is a [lo, hi] effect interval.
type Range struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Config holds the event table and per-kind effect ranges.
type Config struct {
	Table []Weight `yaml:"table"`

	ScandalMomentum     Range   `yaml:"scandal_momentum"`
	ScandalFunds        Range   `yaml:"scandal_funds"`
	EndorsementMomentum Range   `yaml:"endorsement_momentum"`
	EndorsementFunds    Range   `yaml:"endorsement_funds"`
	GaffeMomentum       Range   `yaml:"gaffe_momentum"`
	ViralMomentum       Range   `yaml:"viral_momentum"`
	NewsCycleMomentum   Range   `yaml:"news_cycle_momentum"`
	CrisisMomentum      Range   `yaml:"crisis_momentum"`
	CrisisEnergy        float64 `yaml:"crisis_energy"`
}

// DefaultConfig returns the stock event table: mostly quiet news weeks,
// with scandals and endorsements as rare shocks.
func DefaultConfig() Config {
	return Config{
		Table: []Weight{
			{Kind: KindSlowNews, Weight: 0.55},
			{Kind: KindNewsCycle, Weight: 0.15},
			{Kind: KindScandal, Weight: 0.06},
			{Kind: KindEndorsement, Weight: 0.06},
			{Kind: KindGaffe, Weight: 0.07},
			{Kind: KindViral, Weight: 0.06},
			{Kind: KindCrisis, Weight: 0.05},
		},
		ScandalMomentum:     Range{Lo: -15, Hi: -5},
		ScandalFunds:        Range{Lo: -2, Hi: 0},
		EndorsementMomentum: Range{Lo: 5, Hi: 15},
		EndorsementFunds:    Range{Lo: 1, Hi: 3},
		GaffeMomentum:       Range{Lo: -10, Hi: -5},
		ViralMomentum:       Range{Lo: 5, Hi: 20},
		NewsCycleMomentum:   Range{Lo: 2, Hi: 6},
		CrisisMomentum:      Range{Lo: -10, Hi: 10},
		CrisisEnergy:        -10,
	}
}

// Validate checks the event table eagerly; a bad table is a startup error,
// never a mid-game one.
func (c Config) Validate() error {
	if len(c.Table) == 0 {
		return fmt.Errorf("events: %w: empty table", rng.ErrInvalidWeights)
	}
	var total float64
	for _, w := range c.Table {
		if w.Weight < 0 {
			return fmt.Errorf("events: %w: negative weight for %s", rng.ErrInvalidWeights, w.Kind)
		}
		total += w.Weight
	}
	if total <= 0 {
		return fmt.Errorf("events: %w: table sums to zero", rng.ErrInvalidWeights)
	}
	return nil
}

// Engine draws weighted events and applies their effects.
type Engine struct {
	cfg     Config
	weights []float64
	rng     *rng.Source
}

// New creates an Engine, validating the table up front.
func New(cfg Config, r *rng.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	weights := make([]float64, len(cfg.Table))
	for i, w := range cfg.Table {
		weights[i] = w.Weight
	}
	return &Engine{cfg: cfg, weights: weights, rng: r}, nil
}

// Draw makes one weighted draw for the turn and resolves the event against
// the current field. Returns nil on a slow news week.
func (e *Engine) Draw(turn int, cands []*campaign.Candidate) *Event {
	idx, err := e.rng.WeightedChoice(e.weights)
	if err != nil {
		// Table was validated at construction.
		return nil
	}
	kind := e.cfg.Table[idx].Kind
	if kind == KindSlowNews || len(cands) == 0 {
		return nil
	}

	ev := &Event{Kind: kind, Turn: turn}
	switch kind {
	case KindNewsCycle:
		ev.MomentumDelta = e.rng.Range(e.cfg.NewsCycleMomentum.Lo, e.cfg.NewsCycleMomentum.Hi)

	case KindScandal:
		// Scandals chase the front-runner.
		ev.Target = cands[e.leaderWeightedIndex(cands)].Name
		ev.MomentumDelta = e.rng.Range(e.cfg.ScandalMomentum.Lo, e.cfg.ScandalMomentum.Hi)
		ev.FundsDelta = int(e.rng.Range(e.cfg.ScandalFunds.Lo, e.cfg.ScandalFunds.Hi))

	case KindEndorsement:
		ev.Target = cands[e.rng.IntN(len(cands))].Name
		ev.MomentumDelta = e.rng.Range(e.cfg.EndorsementMomentum.Lo, e.cfg.EndorsementMomentum.Hi)
		ev.FundsDelta = int(e.rng.Range(e.cfg.EndorsementFunds.Lo, e.cfg.EndorsementFunds.Hi))

	case KindGaffe:
		ev.Target = cands[e.rng.IntN(len(cands))].Name
		ev.MomentumDelta = e.rng.Range(e.cfg.GaffeMomentum.Lo, e.cfg.GaffeMomentum.Hi)

	case KindViral:
		ev.Target = cands[e.rng.IntN(len(cands))].Name
		ev.MomentumDelta = e.rng.Range(e.cfg.ViralMomentum.Lo, e.cfg.ViralMomentum.Hi)

	case KindCrisis:
		ev.Target = cands[e.leaderWeightedIndex(cands)].Name
		ev.MomentumDelta = e.rng.Range(e.cfg.CrisisMomentum.Lo, e.cfg.CrisisMomentum.Hi)
		ev.EnergyDelta = e.cfg.CrisisEnergy
	}

	ev.Headline, ev.Detail = headline(e.rng, kind, ev.Target)
	return ev
}

// Apply applies a drawn event to the field. Field-wide events touch every
// candidate; targeted events touch only their target. All effects clamp.
func (e *Engine) Apply(ev *Event, cands []*campaign.Candidate) {
	if ev == nil {
		return
	}
	switch ev.Kind {
	case KindNewsCycle:
		// The cycle turns against the leader and lifts the pack.
		leader := leaderIndex(cands)
		for i, c := range cands {
			if i == leader {
				c.ApplyDeltaClamped(0, 0, 0, -ev.MomentumDelta)
			} else {
				c.ApplyDeltaClamped(0, 0, 0, ev.MomentumDelta/2)
			}
		}
	case KindCrisis:
		for _, c := range cands {
			delta := 0.0
			if c.Name == ev.Target {
				delta = ev.MomentumDelta
			}
			c.ApplyDeltaClamped(0, 0, ev.EnergyDelta, delta)
		}
	default:
		for _, c := range cands {
			if c.Name == ev.Target {
				c.ApplyDeltaClamped(ev.FundsDelta, 0, ev.EnergyDelta, ev.MomentumDelta)
			}
		}
	}
}

// leaderWeightedIndex picks a candidate with probability proportional to
// support, so shocks land on whoever is ahead more often. Falls back to
// uniform before the first poll.
func (e *Engine) leaderWeightedIndex(cands []*campaign.Candidate) int {
	weights := make([]float64, len(cands))
	for i, c := range cands {
		weights[i] = c.Support + 1
	}
	idx, err := e.rng.WeightedChoice(weights)
	if err != nil {
		return e.rng.IntN(len(cands))
	}
	return idx
}

func leaderIndex(cands []*campaign.Candidate) int {
	best := 0
	for i, c := range cands {
		if c.Support > cands[best].Support {
			best = i
		}
	}
	return best
}
