package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/tanelorn/internal/config"
	"github.com/jwebster45206/tanelorn/internal/game"
	"github.com/jwebster45206/tanelorn/internal/logger"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

func main() {
	cfg := config.Load()

	logFile, err := logger.OpenFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.Setup(cfg, logFile)

	seed := cfg.Seed
	var r dice.Roller
	if seed == 0 {
		r, seed = dice.NewFromTime()
	} else {
		r = dice.New(seed)
	}
	log.Info("Session starting", "seed", seed, "player", cfg.PlayerName, "environment", cfg.Environment)

	g := game.New(content.Default(), r, log, cfg.PlayerName,
		game.WithStartingTurns(cfg.StartingTurns),
		game.WithBountyCount(cfg.BountyCount))

	p := tea.NewProgram(NewBBS(g), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.WithError(log, err).Error("Program failed")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	final := g.Player()
	log.Info("Session ended", "level", final.Level, "gold", final.Gold, "turns", final.TurnsRemaining)
}
