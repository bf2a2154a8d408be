// Package match plays a complete match between two agents.
package match

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lox/rpsls/internal/bot"
	"github.com/lox/rpsls/internal/env"
	"github.com/lox/rpsls/internal/game"
)

// Config controls how matches are played.
type Config struct {
	Rounds int
	Logger *log.Logger
	// Render, when set, receives the rendered state after every round.
	Render io.Writer
}

// Result summarizes a finished match.
type Result struct {
	ID      string
	Seed    int64
	Rounds  int
	Totals  [game.NumParties]int
	Wins    [game.NumParties]int
	Ties    int
	Moves   [game.NumParties][game.NumMoves]int
	History []game.RoundResult
}

// Winner returns the party with the higher total, or false on a drawn match.
func (r *Result) Winner() (game.Party, bool) {
	switch {
	case r.Totals[game.PlayerA] > r.Totals[game.PlayerB]:
		return game.PlayerA, true
	case r.Totals[game.PlayerB] > r.Totals[game.PlayerA]:
		return game.PlayerB, true
	}
	return game.PlayerA, false
}

// Runner plays matches with a fixed configuration.
type Runner struct {
	config Config
	logger *log.Logger
}

// NewRunner creates a runner.
func NewRunner(config Config) *Runner {
	if config.Rounds <= 0 {
		config.Rounds = game.DefaultRounds
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{config: config, logger: logger.WithPrefix("match")}
}

// Play runs one match between agents, which are indexed by party. rng
// drives the env's substitution of missing moves and seed is recorded in
// the result for replay.
func (r *Runner) Play(ctx context.Context, agents [game.NumParties]bot.Agent, rng *rand.Rand, seed int64) (*Result, error) {
	result := &Result{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Seed: seed,
	}

	engine := game.NewEngine(
		game.WithRounds(r.config.Rounds),
		game.WithLogger(r.logger),
		game.WithRoundHook(func(rr game.RoundResult) {
			result.record(rr)
		}),
	)
	e := env.Wrap(engine, rng, r.logger)

	r.logger.Debug("Starting match", "id", result.ID, "seed", seed, "rounds", r.config.Rounds)

	obs, err := e.Reset()
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}

	for !e.Dones()[e.AgentSelection()] {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match %s interrupted after %d rounds: %w", result.ID, result.Rounds, err)
		}

		party := e.AgentSelection()
		action := agents[party].Act(obs)

		obs, err = e.Step(action)
		if err != nil {
			return nil, fmt.Errorf("round %d, %s played %s: %w", result.Rounds+1, party, action, err)
		}

		if r.config.Render != nil && e.AgentSelection() == game.PlayerA {
			if err := e.Render(r.config.Render); err != nil {
				return nil, fmt.Errorf("render: %w", err)
			}
		}
	}

	r.logger.Debug("Match complete",
		"id", result.ID,
		"rounds", result.Rounds,
		"totals", fmt.Sprintf("%d/%d", result.Totals[game.PlayerA], result.Totals[game.PlayerB]))

	return result, nil
}

func (r *Result) record(rr game.RoundResult) {
	r.Rounds = rr.Round
	r.History = append(r.History, rr)
	for _, p := range game.Parties() {
		r.Totals[p] += rr.Rewards[p]
		if m := rr.Moves[p]; m.Valid() {
			r.Moves[p][m]++
		}
	}
	if winner, ok := rr.Winner(); ok {
		r.Wins[winner]++
	} else {
		r.Ties++
	}
}
