package campaign

import "fmt"

// ActionKind enumerates the action variants.
type ActionKind int

const (
	ActionFundraise ActionKind = iota
	ActionAdvertise
	ActionRally
	ActionRest
	ActionAttack
)

// String returns the display name of the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionFundraise:
		return "Fundraise"
	case ActionAdvertise:
		return "Advertise"
	case ActionRally:
		return "Rally"
	case ActionRest:
		return "Rest"
	case ActionAttack:
		return "Attack"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a pure value describing one campaign move. Spend is the funds
// committed by Advertise and Attack; Target names the candidate an Attack
// is aimed at. Actions carry no identity beyond the turn they apply in.
type Action struct {
	Kind   ActionKind
	Spend  int
	Target string
}

// Fundraise returns a fundraising action.
func Fundraise() Action { return Action{Kind: ActionFundraise} }

// Advertise returns an ad buy of the given size.
func Advertise(spend int) Action { return Action{Kind: ActionAdvertise, Spend: spend} }

// Rally returns a rally action.
func Rally() Action { return Action{Kind: ActionRally} }

// Rest returns a rest action.
func Rest() Action { return Action{Kind: ActionRest} }

// Attack returns an attack on target funded with spend.
func Attack(target string, spend int) Action {
	return Action{Kind: ActionAttack, Spend: spend, Target: target}
}

// String formats the action for transcripts and logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionAdvertise:
		return fmt.Sprintf("Advertise($%d)", a.Spend)
	case ActionAttack:
		return fmt.Sprintf("Attack(%s, $%d)", a.Target, a.Spend)
	default:
		return a.Kind.String()
	}
}
