// Package game wires the simulation subsystems into one playable session
// and manages their lifecycle for the front ends.
package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdmills/campaigncraft/internal/electoral"
	"github.com/jdmills/campaigncraft/internal/sim"
	"github.com/jdmills/campaigncraft/internal/transcript"
)

// Game owns a running simulation plus its presentation and persistence
// collaborators.
type Game struct {
	Sim     *sim.Simulator
	Regions []electoral.Region
	Store   *transcript.Store

	RunID uuid.UUID
	cfg   Config
}

// NewGame builds and starts a game session from cfg. A zero seed is
// replaced with the clock so casual runs differ; pass an explicit seed
// for reproducible games.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	simCfg, err := cfg.SimConfig()
	if err != nil {
		return nil, err
	}

	s := sim.New(simCfg)
	if err := s.Start(); err != nil {
		return nil, err
	}

	g := &Game{
		Sim:     s,
		Regions: electoral.DefaultMap(),
		RunID:   uuid.New(),
		cfg:     cfg,
	}

	if cfg.Database != "" {
		store, err := transcript.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		g.Store = store
	}
	return g, nil
}

// Projection maps the player's race against the leading opponent onto the
// electoral map. Display only; the election is decided by support.
func (g *Game) Projection() electoral.Projection {
	standings := g.Sim.Standings()
	player := standings[0]

	rival := standings[1]
	for _, st := range standings[1:] {
		if st.Support > rival.Support {
			rival = st
		}
	}
	return electoral.Project(g.Regions, player.Name, player.Support, rival.Name, rival.Support)
}

// SaveTranscript persists the concluded run if a store is configured.
func (g *Game) SaveTranscript() error {
	if g.Store == nil || g.Sim.Result() == nil {
		return nil
	}
	return g.Store.SaveRun(g.RunID, g.Sim.Seed(), g.Sim.PlayerName(), g.Sim.History(), g.Sim.Result())
}

// Close releases the game's resources.
func (g *Game) Close() {
	if g.Store != nil {
		g.Store.Close()
	}
}
