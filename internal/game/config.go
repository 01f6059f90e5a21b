package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/events"
	"github.com/jdmills/campaigncraft/internal/polling"
	"github.com/jdmills/campaigncraft/internal/sim"
	"github.com/jdmills/campaigncraft/internal/strategy"
)

// OpponentConfig configures one opponent: starting resources plus the
// decision policy to run them with.
type OpponentConfig struct {
	campaign.Setup `yaml:",inline"`
	Strategy       string `yaml:"strategy"`
}

// Config holds the full game configuration. Every balance number the
// simulation uses is a field here; nothing is hard-coded in the engine.
type Config struct {
	Turns         int     `yaml:"turns"`
	Seed          int64   `yaml:"seed"`
	MaxEnergy     float64 `yaml:"max_energy"`
	MaxMomentum   float64 `yaml:"max_momentum"`
	MomentumDecay float64 `yaml:"momentum_decay"`
	DefaultSpend  int     `yaml:"default_spend"`

	Player    campaign.Setup   `yaml:"player"`
	Opponents []OpponentConfig `yaml:"opponents"`

	Reactive strategy.ReactiveConfig `yaml:"reactive"`
	Actions  campaign.ActionTable    `yaml:"actions"`
	Poll     polling.Config          `yaml:"poll"`
	Events   events.Config           `yaml:"events"`

	// Database is the transcript SQLite path; empty disables persistence.
	Database string `yaml:"database"`
}

// DefaultConfig returns a Config with reasonable defaults: a 20-turn
// two-way race against a reactive challenger.
func DefaultConfig() Config {
	return Config{
		Turns:         20,
		Seed:          0,
		MaxEnergy:     100,
		MaxMomentum:   100,
		MomentumDecay: 0.85,
		DefaultSpend:  3,
		Player:        campaign.Setup{Name: "You", Funds: 15, Staff: 4, Energy: 100},
		Opponents: []OpponentConfig{
			{
				Setup:    campaign.Setup{Name: "The Challenger", Funds: 15, Staff: 4, Energy: 100},
				Strategy: "reactive",
			},
		},
		Reactive: strategy.DefaultReactiveConfig(),
		Actions:  campaign.DefaultActionTable(),
		Poll:     polling.DefaultConfig(),
		Events:   events.DefaultConfig(),
	}
}

// LoadFromFile reads a YAML config over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// SimConfig resolves strategy names and assembles the simulator config.
func (c Config) SimConfig() (sim.Config, error) {
	var opponents []sim.Opponent
	for _, oc := range c.Opponents {
		strat, err := strategy.ForName(oc.Strategy, c.Reactive)
		if err != nil {
			return sim.Config{}, fmt.Errorf("opponent %q: %w", oc.Name, err)
		}
		opponents = append(opponents, sim.Opponent{Setup: oc.Setup, Strategy: strat})
	}
	return sim.Config{
		Turns:         c.Turns,
		Seed:          c.Seed,
		MaxEnergy:     c.MaxEnergy,
		MaxMomentum:   c.MaxMomentum,
		MomentumDecay: c.MomentumDecay,
		DefaultSpend:  c.DefaultSpend,
		Player:        c.Player,
		Opponents:     opponents,
		Actions:       c.Actions,
		Poll:          c.Poll,
		Events:        c.Events,
	}, nil
}
