// Package sim runs the campaign state machine. A simulator advances from
// NotStarted through InProgress to Concluded, one validated player action
// per turn, with a fixed per-turn protocol: player action, momentum decay,
// event, opponent actions, poll, record.
package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/events"
	"github.com/jdmills/campaigncraft/internal/polling"
	"github.com/jdmills/campaigncraft/internal/rng"
	"github.com/jdmills/campaigncraft/internal/strategy"
)

// ErrNotStarted is returned when the simulation has not been started.
var ErrNotStarted = errors.New("sim: not started")

// ErrSimulationEnded is returned by AdvanceTurn after the election turn.
// Signals caller misuse rather than a game condition.
var ErrSimulationEnded = errors.New("sim: simulation ended")

// Phase is the simulator lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseConcluded
)

// Opponent pairs an opponent's starting resources with its decision policy.
type Opponent struct {
	Setup    campaign.Setup
	Strategy strategy.Strategy
}

// Config holds everything a simulation run needs. All balance numbers are
// tunable here rather than fixed in code.
type Config struct {
	Turns         int
	Seed          int64
	MaxEnergy     float64
	MaxMomentum   float64
	MomentumDecay float64
	// DefaultSpend sizes the ad buys and attacks offered to the player.
	DefaultSpend int

	Player    campaign.Setup
	Opponents []Opponent

	Actions campaign.ActionTable
	Poll    polling.Config
	Events  events.Config
}

// Validate checks the configuration eagerly; nothing here may fail
// mid-simulation.
func (c Config) Validate() error {
	if c.Turns <= 0 {
		return fmt.Errorf("sim: turns must be positive, got %d", c.Turns)
	}
	if c.MaxEnergy <= 0 {
		return fmt.Errorf("sim: max_energy must be positive, got %v", c.MaxEnergy)
	}
	if c.MomentumDecay < 0 || c.MomentumDecay >= 1 {
		return fmt.Errorf("sim: momentum_decay must be in [0,1), got %v", c.MomentumDecay)
	}
	if c.Player.Name == "" {
		return fmt.Errorf("sim: player needs a name")
	}
	if len(c.Opponents) == 0 {
		return fmt.Errorf("sim: at least one opponent required")
	}
	seen := map[string]bool{c.Player.Name: true}
	for _, o := range c.Opponents {
		if o.Setup.Name == "" {
			return fmt.Errorf("sim: opponent needs a name")
		}
		if seen[o.Setup.Name] {
			return fmt.Errorf("sim: duplicate candidate name %q", o.Setup.Name)
		}
		seen[o.Setup.Name] = true
		if o.Strategy == nil {
			return fmt.Errorf("sim: opponent %q has no strategy", o.Setup.Name)
		}
	}
	if err := c.Actions.Validate(); err != nil {
		return err
	}
	if err := c.Poll.Validate(); err != nil {
		return err
	}
	return c.Events.Validate()
}

type opponent struct {
	cand  *campaign.Candidate
	strat strategy.Strategy
}

// Simulator is the turn-sequenced campaign state machine. Not safe for
// concurrent use; all mutation happens inside AdvanceTurn.
type Simulator struct {
	cfg   Config
	phase Phase
	turn  int

	rng    *rng.Source
	poll   *polling.Model
	events *events.Engine

	player    *campaign.Candidate
	cands     []*campaign.Candidate
	opponents []opponent

	history []Turn
	result  *Result
}

// New creates an unstarted simulator for cfg.
func New(cfg Config) *Simulator {
	return &Simulator{cfg: cfg, phase: PhaseNotStarted}
}

// Start validates the configuration, builds the field, and runs the
// opening poll. Configuration errors surface here, never mid-game.
func (s *Simulator) Start() error {
	if s.phase != PhaseNotStarted {
		return fmt.Errorf("%w: already started", ErrSimulationEnded)
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	s.rng = rng.New(s.cfg.Seed)
	s.poll = polling.New(s.cfg.Poll, s.rng)

	engine, err := events.New(s.cfg.Events, s.rng)
	if err != nil {
		return err
	}
	s.events = engine

	s.player = campaign.NewCandidate(s.cfg.Player, s.cfg.MaxEnergy, s.cfg.MaxMomentum)
	s.cands = []*campaign.Candidate{s.player}
	for _, o := range s.cfg.Opponents {
		cand := campaign.NewCandidate(o.Setup, s.cfg.MaxEnergy, s.cfg.MaxMomentum)
		s.cands = append(s.cands, cand)
		s.opponents = append(s.opponents, opponent{cand: cand, strat: o.Strategy})
	}

	// Opening poll so standings are meaningful before the first action.
	s.poll.ComputeSupport(s.cands, nil)

	s.turn = 1
	s.phase = PhaseInProgress
	return nil
}

// Phase returns the lifecycle state.
func (s *Simulator) Phase() Phase { return s.phase }

// TurnNumber returns the turn about to be played (1..Turns).
func (s *Simulator) TurnNumber() int { return s.turn }

// TotalTurns returns the campaign length.
func (s *Simulator) TotalTurns() int { return s.cfg.Turns }

// Seed returns the run's random seed, for save/replay.
func (s *Simulator) Seed() int64 { return s.cfg.Seed }

// AdvanceTurn plays one full turn driven by the player's action. An
// unaffordable or malformed action fails with ErrInvalidAction before any
// mutation, leaving the turn replayable. After the final turn the
// simulator concludes; further calls fail with ErrSimulationEnded.
func (s *Simulator) AdvanceTurn(a campaign.Action) (*Turn, error) {
	switch s.phase {
	case PhaseNotStarted:
		return nil, ErrNotStarted
	case PhaseConcluded:
		return nil, ErrSimulationEnded
	}

	// (1) Validate and apply the player action. Apply checks the full
	// cost before mutating anything, keeping the turn atomic.
	target, err := s.resolveTarget(s.player, a)
	if err != nil {
		return nil, err
	}
	playerOut, err := s.cfg.Actions.Apply(s.player, target, a, s.rng)
	if err != nil {
		return nil, err
	}

	steady := map[string]bool{}
	if a.Kind == campaign.ActionRally {
		steady[s.player.Name] = true
	}

	// (2) Momentum decay for the whole field.
	for _, c := range s.cands {
		c.DecayMomentum(s.cfg.MomentumDecay)
	}

	// (3) Event draw and apply.
	ev := s.events.Draw(s.turn, s.cands)
	s.events.Apply(ev, s.cands)

	// (4) Opponent actions.
	var oppOuts []campaign.Outcome
	for _, o := range s.opponents {
		choice := o.strat.Choose(o.cand, s.cands, s.turn, s.cfg.Turns, s.rng)
		choice = s.downgrade(o.cand, choice)

		tgt, terr := s.resolveTarget(o.cand, choice)
		if terr != nil {
			choice, tgt = campaign.Rest(), nil
		}
		out, aerr := s.cfg.Actions.Apply(o.cand, tgt, choice, s.rng)
		if aerr != nil {
			// Downgrade guarantees affordability; Rest cannot fail.
			out, _ = s.cfg.Actions.Apply(o.cand, nil, campaign.Rest(), s.rng)
		}
		if out.Action.Kind == campaign.ActionRally {
			steady[o.cand.Name] = true
		}
		oppOuts = append(oppOuts, out)
	}

	// (5) Poll recomputation.
	s.poll.ComputeSupport(s.cands, steady)

	// (6) Record the turn.
	rec := Turn{
		Index:     s.turn,
		Player:    playerOut,
		Event:     ev,
		Opponents: oppOuts,
		Standings: s.snapshot(),
	}
	s.history = append(s.history, rec)

	// (7) Advance or conclude.
	if s.turn >= s.cfg.Turns {
		s.phase = PhaseConcluded
		s.result = s.computeResult()
	} else {
		s.turn++
	}
	return &rec, nil
}

// ValidActions returns the actions the player can currently afford, so a
// front end never offers a move guaranteed to fail. Rest is always valid.
func (s *Simulator) ValidActions() []campaign.Action {
	if s.phase != PhaseInProgress {
		return nil
	}
	spend := s.cfg.DefaultSpend
	if spend > s.player.Funds {
		spend = s.player.Funds
	}

	var out []campaign.Action
	add := func(a campaign.Action) {
		if s.cfg.Actions.CanAfford(s.player, a) {
			out = append(out, a)
		}
	}
	add(campaign.Fundraise())
	if spend > 0 {
		add(campaign.Advertise(spend))
	}
	add(campaign.Rally())
	add(campaign.Rest())
	if spend > 0 {
		for _, o := range s.opponents {
			add(campaign.Attack(o.cand.Name, spend))
		}
	}
	return out
}

// History returns the completed turn records in order.
func (s *Simulator) History() []Turn { return s.history }

// LatestTurn returns the most recent turn record, or nil before the first.
func (s *Simulator) LatestTurn() *Turn {
	if len(s.history) == 0 {
		return nil
	}
	return &s.history[len(s.history)-1]
}

// Standings returns the current field snapshot, player first.
func (s *Simulator) Standings() []Standing {
	if s.phase == PhaseNotStarted {
		return nil
	}
	return s.snapshot()
}

// PlayerName returns the player's candidate name.
func (s *Simulator) PlayerName() string { return s.cfg.Player.Name }

// Result returns the election result, or nil before the campaign concludes.
func (s *Simulator) Result() *Result { return s.result }

// resolveTarget maps an attack's target name to its candidate. Non-attack
// actions resolve to nil.
func (s *Simulator) resolveTarget(actor *campaign.Candidate, a campaign.Action) (*campaign.Candidate, error) {
	if a.Kind != campaign.ActionAttack {
		return nil, nil
	}
	for _, c := range s.cands {
		if c.Name == a.Target {
			if c == actor {
				return nil, fmt.Errorf("%w: cannot attack self", campaign.ErrInvalidAction)
			}
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown attack target %q", campaign.ErrInvalidAction, a.Target)
}

// downgrade substitutes the cheapest acceptable alternative for an action
// the actor cannot afford: shrink the spend, then fundraise, then rest.
func (s *Simulator) downgrade(c *campaign.Candidate, a campaign.Action) campaign.Action {
	if a.Spend > c.Funds {
		a.Spend = c.Funds
	}
	if a.Spend > 0 && s.cfg.Actions.CanAfford(c, a) {
		return a
	}
	if a.Spend == 0 && s.cfg.Actions.CanAfford(c, a) &&
		a.Kind != campaign.ActionAdvertise && a.Kind != campaign.ActionAttack {
		return a
	}
	if fr := campaign.Fundraise(); s.cfg.Actions.CanAfford(c, fr) {
		return fr
	}
	return campaign.Rest()
}

func (s *Simulator) snapshot() []Standing {
	out := make([]Standing, len(s.cands))
	for i, c := range s.cands {
		out[i] = Standing{
			Name:     c.Name,
			Funds:    c.Funds,
			Staff:    c.Staff,
			Energy:   c.Energy,
			Support:  c.Support,
			Momentum: c.Momentum,
		}
	}
	return out
}

// computeResult ranks the field by support, breaking ties by momentum and
// finally by coin flip.
func (s *Simulator) computeResult() *Result {
	standings := s.snapshot()
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Support > standings[j].Support
	})

	res := &Result{Standings: standings}
	top := standings[0]
	res.Winner = top.Name

	if len(standings) > 1 && standings[1].Support == top.Support {
		second := standings[1]
		switch {
		case top.Momentum > second.Momentum:
			res.TieBreak = "momentum"
		case top.Momentum < second.Momentum:
			res.Winner, res.TieBreak = second.Name, "momentum"
		case s.rng.Coin():
			res.TieBreak = "coin"
		default:
			res.Winner, res.TieBreak = second.Name, "coin"
		}
	}
	return res
}
