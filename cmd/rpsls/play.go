package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/tui"
)

type PlayCmd struct {
	Bot    string `default:"frequency" env:"RPSLS_BOT" help:"Bot to play against"`
	Rounds int    `default:"10" help:"Rounds in the match"`
	Seed   int64  `default:"0" help:"RNG seed (0 for random)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger, err := setupLogger(g)
	if err != nil {
		return err
	}
	// Log lines would tear the alt screen; only errors get through.
	logger.SetLevel(max(logger.GetLevel(), log.ErrorLevel))

	return tui.Run(tui.Config{
		Rounds: c.Rounds,
		Bot:    c.Bot,
		Seed:   c.Seed,
		Logger: logger,
	}, tea.WithAltScreen())
}
