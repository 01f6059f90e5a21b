package sim

import (
	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/events"
)

// Standing is one candidate's metrics snapshot after a poll.
type Standing struct {
	Name     string  `json:"name"`
	Funds    int     `json:"funds"`
	Staff    int     `json:"staff"`
	Energy   float64 `json:"energy"`
	Support  float64 `json:"support"`
	Momentum float64 `json:"momentum"`
}

// Turn is the record of one completed turn. Appended by the simulator and
// never mutated afterward.
type Turn struct {
	Index     int
	Player    campaign.Outcome
	Event     *events.Event
	Opponents []campaign.Outcome
	Standings []Standing
}

// Result is the election outcome, valid once the simulation concludes.
type Result struct {
	Winner string
	// TieBreak records how a support tie was resolved: "" for an outright
	// win, otherwise "momentum" or "coin".
	TieBreak  string
	Standings []Standing
}
