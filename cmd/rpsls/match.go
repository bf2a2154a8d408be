package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/rpsls/internal/bot"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/match"
	"github.com/lox/rpsls/internal/randutil"
)

type MatchCmd struct {
	A      string `arg:"" optional:"" default:"random" help:"Bot in seat player_0"`
	B      string `arg:"" optional:"" default:"counter" help:"Bot in seat player_1"`
	Rounds int    `default:"100" help:"Rounds in the match"`
	Seed   int64  `default:"0" env:"RPSLS_SEED" help:"RNG seed (0 for random)"`
	Render bool   `help:"Print the state after every round"`
}

func (c *MatchCmd) Run(g *Globals) error {
	logger, err := setupLogger(g)
	if err != nil {
		return err
	}
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed(c.Seed)
	var agents [game.NumParties]bot.Agent
	for i, name := range []string{c.A, c.B} {
		agent, err := bot.New(name, randutil.New(randutil.Derive(seed, i)), logger)
		if err != nil {
			return err
		}
		agents[i] = agent
	}

	var render io.Writer
	if c.Render {
		render = os.Stdout
	}
	runner := match.NewRunner(match.Config{Rounds: c.Rounds, Logger: logger, Render: render})

	res, err := runner.Play(ctx, agents, randutil.New(randutil.Derive(seed, 2)), seed)
	if err != nil {
		return err
	}

	fmt.Printf("Match %s (seed %d), %d rounds\n", res.ID, res.Seed, res.Rounds)
	names := [game.NumParties]string{c.A, c.B}
	for _, p := range game.Parties() {
		fmt.Printf("  %s %-10s total %+4d  rounds won %d\n", p, names[p], res.Totals[p], res.Wins[p])
	}
	fmt.Printf("  ties %d\n", res.Ties)
	if winner, ok := res.Winner(); ok {
		fmt.Printf("Winner: %s (%s)\n", winner, names[winner])
	} else {
		fmt.Println("Match drawn")
	}
	return nil
}
