// Command autoplay runs a full campaign without the TUI: the player is
// driven by a random pick over the affordable actions each turn. Useful for
// balance tuning and for generating transcripts to replay.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/jdmills/campaigncraft/internal/game"
	"github.com/jdmills/campaigncraft/internal/rng"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 1, "simulation seed")
	db := flag.String("db", "", "SQLite path for run transcripts (empty disables)")
	runs := flag.Int("runs", 1, "number of campaigns to play")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadFromFile(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Database = *db

	for i := 0; i < *runs; i++ {
		cfg.Seed = *seed + int64(i)
		if err := playOne(cfg); err != nil {
			slog.Error("run failed", "seed", cfg.Seed, "error", err)
			os.Exit(1)
		}
	}
}

func playOne(cfg game.Config) error {
	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("campaign started",
		"seed", g.Sim.Seed(),
		"player", g.Sim.PlayerName(),
		"turns", g.Sim.TotalTurns(),
	)

	// Independent source so the player's picks never perturb the
	// simulation's own draw sequence.
	picker := rng.New(g.Sim.Seed() + 1)

	for g.Sim.Result() == nil {
		actions := g.Sim.ValidActions()
		action := actions[picker.IntN(len(actions))]

		turn, err := g.Sim.AdvanceTurn(action)
		if err != nil {
			return err
		}

		attrs := []any{
			"turn", turn.Index,
			"action", action.String(),
		}
		if turn.Event != nil {
			attrs = append(attrs, "event", turn.Event.Headline)
		}
		for _, st := range turn.Standings {
			if st.Name == g.Sim.PlayerName() {
				attrs = append(attrs,
					"support", st.Support,
					"funds", "$"+humanize.Comma(int64(st.Funds)),
				)
			}
		}
		slog.Info("turn played", attrs...)
	}

	result := g.Sim.Result()
	proj := g.Projection()
	slog.Info("campaign concluded",
		"winner", result.Winner,
		"tiebreak", result.TieBreak,
		"map", humanize.Comma(int64(proj.VotesA))+"-"+humanize.Comma(int64(proj.VotesB)),
		"landslide", proj.Landslide(),
	)

	if err := g.SaveTranscript(); err != nil {
		return err
	}
	if g.Store != nil {
		slog.Info("transcript saved", "run", g.RunID.String())
	}
	return nil
}
