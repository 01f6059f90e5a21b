package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jdmills/campaigncraft/internal/campaign"
)

func TestDefaultConfigStartsClean(t *testing.T) {
	cfg := DefaultConfig()
	simCfg, err := cfg.SimConfig()
	if err != nil {
		t.Fatalf("sim config: %v", err)
	}
	simCfg.Seed = 1 // Validate runs at Start
	if err := simCfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadFromFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
turns: 8
seed: 42
player:
  name: Vega
  funds: 12
  staff: 3
  energy: 90
opponents:
  - name: Cruz
    funds: 12
    staff: 3
    energy: 90
    strategy: aggressive
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Turns != 8 || cfg.Seed != 42 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Player.Name != "Vega" {
		t.Errorf("player: %+v", cfg.Player)
	}
	if len(cfg.Opponents) != 1 || cfg.Opponents[0].Strategy != "aggressive" {
		t.Errorf("opponents: %+v", cfg.Opponents)
	}
	// Untouched sections keep their defaults.
	if cfg.MomentumDecay != DefaultConfig().MomentumDecay {
		t.Errorf("momentum decay default lost: %v", cfg.MomentumDecay)
	}
	if cfg.Actions.BackfireChance != campaign.DefaultActionTable().BackfireChance {
		t.Errorf("action table default lost: %v", cfg.Actions.BackfireChance)
	}
}

func TestSimConfigRejectsUnknownStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Opponents[0].Strategy = "psychic"
	if _, err := cfg.SimConfig(); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestGamePlaysToConclusion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Turns = 6
	cfg.Seed = 42
	cfg.Database = filepath.Join(t.TempDir(), "runs.db")

	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	defer g.Close()

	for g.Sim.Result() == nil {
		actions := g.Sim.ValidActions()
		if len(actions) == 0 {
			t.Fatal("no valid actions offered")
		}
		if _, err := g.Sim.AdvanceTurn(actions[0]); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	proj := g.Projection()
	if proj.VotesA+proj.VotesB+proj.TossupVotes != 538 {
		t.Errorf("projection lost votes: %+v", proj)
	}

	if err := g.SaveTranscript(); err != nil {
		t.Fatalf("save transcript: %v", err)
	}
	run, turns, err := g.Store.LoadRun(g.RunID)
	if err != nil {
		t.Fatalf("load transcript: %v", err)
	}
	if run.Winner != g.Sim.Result().Winner {
		t.Errorf("stored winner %q, want %q", run.Winner, g.Sim.Result().Winner)
	}
	if len(turns) != 6 {
		t.Errorf("expected 6 stored turns, got %d", len(turns))
	}
}
