package main

import (
	"flag"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdmills/campaigncraft/internal/game"
	"github.com/jdmills/campaigncraft/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "simulation seed (0 picks one from the clock)")
	name := flag.String("name", "", "override the player candidate's name")
	db := flag.String("db", "", "SQLite path for run transcripts (empty disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
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
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *name != "" {
		cfg.Player.Name = *name
	}
	if *db != "" {
		cfg.Database = *db
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	model := tui.NewModel(g, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("tui error", "error", err)
		os.Exit(1)
	}
}
