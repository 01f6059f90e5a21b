package campaign

import (
	"fmt"

	"github.com/jdmills/campaigncraft/internal/rng"
)

// ActionTable is the cost/effect table behind the action variants. It is
// data, not logic: balance changes are config edits.
type ActionTable struct {
	FundraiseEnergy   float64 `yaml:"fundraise_energy"`
	FundraiseBase     int     `yaml:"fundraise_base"`
	FundraisePerStaff int     `yaml:"fundraise_per_staff"`
	FundraiseSpread   int     `yaml:"fundraise_spread"`

	AdvertiseEnergy float64 `yaml:"advertise_energy"`
	AdvertiseRate   float64 `yaml:"advertise_rate"`

	RallyStaff  int     `yaml:"rally_staff"`
	RallyEnergy float64 `yaml:"rally_energy"`
	RallyRate   float64 `yaml:"rally_rate"`

	RestRestore float64 `yaml:"rest_restore"`

	AttackEnergy   float64 `yaml:"attack_energy"`
	AttackRate     float64 `yaml:"attack_rate"`
	BackfireChance float64 `yaml:"backfire_chance"`
}

// DefaultActionTable returns the stock balance numbers.
func DefaultActionTable() ActionTable {
	return ActionTable{
		FundraiseEnergy:   15,
		FundraiseBase:     3,
		FundraisePerStaff: 1,
		FundraiseSpread:   3,

		AdvertiseEnergy: 10,
		AdvertiseRate:   1.5,

		RallyStaff:  2,
		RallyEnergy: 20,
		RallyRate:   4,

		RestRestore: 30,

		AttackEnergy:   10,
		AttackRate:     2,
		BackfireChance: 0.3,
	}
}

// Validate checks the table for configuration errors.
func (t ActionTable) Validate() error {
	if t.BackfireChance < 0 || t.BackfireChance > 1 {
		return fmt.Errorf("backfire_chance must be in [0,1], got %v", t.BackfireChance)
	}
	if t.RestRestore <= 0 {
		return fmt.Errorf("rest_restore must be positive, got %v", t.RestRestore)
	}
	return nil
}

// Cost returns the funds, staff, and energy an action consumes up front.
func (t ActionTable) Cost(a Action) (funds, staff int, energy float64) {
	switch a.Kind {
	case ActionFundraise:
		return 0, 0, t.FundraiseEnergy
	case ActionAdvertise:
		return a.Spend, 0, t.AdvertiseEnergy
	case ActionRally:
		return 0, t.RallyStaff, t.RallyEnergy
	case ActionRest:
		return 0, 0, 0
	case ActionAttack:
		return a.Spend, 0, t.AttackEnergy
	default:
		return 0, 0, 0
	}
}

// CanAfford reports whether c can pay the action's full cost right now.
func (t ActionTable) CanAfford(c *Candidate, a Action) bool {
	funds, staff, energy := t.Cost(a)
	return c.Funds >= funds && c.Staff >= staff && c.Energy >= energy
}

// Outcome summarizes what an applied action did, for transcripts and the
// event log.
type Outcome struct {
	Actor    string
	Action   Action
	Raised   int
	Backfire bool
	Summary  string
}

// Apply executes the action for actor. The affordability check happens
// before any mutation; on failure the actor is unchanged and
// ErrInvalidAction is returned. target is required for Attack and must
// not be the actor.
func (t ActionTable) Apply(actor, target *Candidate, a Action, r *rng.Source) (Outcome, error) {
	out := Outcome{Actor: actor.Name, Action: a}

	if !t.CanAfford(actor, a) {
		return out, fmt.Errorf("%w: %s cannot afford %s", ErrInvalidAction, actor.Name, a)
	}
	if a.Kind == ActionAttack && (target == nil || target == actor) {
		return out, fmt.Errorf("%w: attack needs an opposing target", ErrInvalidAction)
	}
	if (a.Kind == ActionAdvertise || a.Kind == ActionAttack) && a.Spend <= 0 {
		return out, fmt.Errorf("%w: %s requires a positive spend", ErrInvalidAction, a.Kind)
	}

	switch a.Kind {
	case ActionFundraise:
		raised := t.FundraiseBase + t.FundraisePerStaff*actor.Staff
		if t.FundraiseSpread > 0 {
			raised += r.IntN(t.FundraiseSpread + 1)
		}
		out.Raised = raised
		out.Summary = fmt.Sprintf("%s raised $%dM", actor.Name, raised)
		return out, actor.ApplyDelta(raised, 0, -t.FundraiseEnergy, 0)

	case ActionAdvertise:
		gain := float64(a.Spend) * t.AdvertiseRate
		out.Summary = fmt.Sprintf("%s ran a $%dM ad buy", actor.Name, a.Spend)
		return out, actor.ApplyDelta(-a.Spend, 0, -t.AdvertiseEnergy, gain)

	case ActionRally:
		gain := float64(actor.Staff) * t.RallyRate
		out.Summary = fmt.Sprintf("%s held a rally", actor.Name)
		return out, actor.ApplyDelta(0, -t.RallyStaff, -t.RallyEnergy, gain)

	case ActionRest:
		out.Summary = fmt.Sprintf("%s took a day off the trail", actor.Name)
		return out, actor.ApplyDelta(0, 0, t.RestRestore, 0)

	case ActionAttack:
		hit := float64(a.Spend) * t.AttackRate
		if err := actor.ApplyDelta(-a.Spend, 0, -t.AttackEnergy, 0); err != nil {
			return out, err
		}
		target.ApplyDeltaClamped(0, 0, 0, -hit)
		out.Summary = fmt.Sprintf("%s attacked %s", actor.Name, target.Name)
		if r.Float64() < t.BackfireChance {
			actor.ApplyDeltaClamped(0, 0, 0, -hit/2)
			out.Backfire = true
			out.Summary += " — it backfired"
		}
		return out, nil

	default:
		return out, fmt.Errorf("%w: unknown action kind %d", ErrInvalidAction, a.Kind)
	}
}
