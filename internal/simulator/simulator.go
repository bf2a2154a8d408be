// Package simulator plays many independent matches between two bots and
// aggregates the results for the first of them, the challenger.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rpsls/internal/bot"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/match"
	"github.com/lox/rpsls/internal/randutil"
	"github.com/lox/rpsls/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrTimeout is returned when a single match exceeds its time budget.
var ErrTimeout = errors.New("match timed out")

// AgentFactory builds a named agent for one match.
type AgentFactory func(name string, rng *rand.Rand, logger *log.Logger) (bot.Agent, error)

// Config holds configuration for running simulations.
type Config struct {
	Matches     int
	Rounds      int
	Seed        int64 // 0 picks a random seed
	Concurrency int
	Timeout     time.Duration // Per match; 0 disables
	SwapSeats   bool          // Play every seed from both seats
	Challenger  string
	Opponent    string

	Logger   *log.Logger
	Clock    quartz.Clock
	NewAgent AgentFactory
	// Progress is called after every finished match. It may be called from
	// several goroutines at once.
	Progress func(done, total int)
}

// Summary is the outcome of a simulation.
type Summary struct {
	Challenger string
	Opponent   string
	Seed       int64
	Rounds     int
	SwapSeats  bool
	Stats      *statistics.Statistics
	Elapsed    time.Duration
}

// Simulator runs batches of matches.
type Simulator struct {
	config Config
	logger *log.Logger
	runner *match.Runner
}

// New validates config and creates a simulator.
func New(config Config) (*Simulator, error) {
	if config.Matches <= 0 {
		return nil, fmt.Errorf("matches must be positive, got %d", config.Matches)
	}
	if config.Rounds <= 0 {
		config.Rounds = game.DefaultRounds
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.NewAgent == nil {
		config.NewAgent = bot.New
		for _, name := range []string{config.Challenger, config.Opponent} {
			if !bot.Valid(name) {
				return nil, fmt.Errorf("unknown bot %q", name)
			}
		}
	}
	config.Seed = randutil.Seed(config.Seed)

	logger := config.Logger.WithPrefix("simulator")
	return &Simulator{
		config: config,
		logger: logger,
		runner: match.NewRunner(match.Config{Rounds: config.Rounds, Logger: logger}),
	}, nil
}

// Seed returns the base seed in use, which is fixed even when the
// configured seed was 0.
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// Run plays every match and returns the aggregated statistics. Results are
// added in match order, so a fixed seed always yields the same summary.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	seats := 1
	if s.config.SwapSeats {
		seats = 2
	}
	total := s.config.Matches * seats
	results := make([]statistics.MatchResult, total)
	start := s.config.Clock.Now()

	s.logger.Info("Starting simulation",
		"challenger", s.config.Challenger,
		"opponent", s.config.Opponent,
		"matches", s.config.Matches,
		"rounds", s.config.Rounds,
		"seed", s.config.Seed,
		"swap", s.config.SwapSeats,
		"concurrency", s.config.Concurrency)

	var finished atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i := range total {
		if gctx.Err() != nil {
			break
		}
		seed := s.config.Seed + int64(i/seats)
		seat := game.Party(i % seats)

		g.Go(func() error {
			r, err := s.playMatch(gctx, seed, seat)
			if err != nil {
				return fmt.Errorf("match %d (seed %d, seat %s): %w", i/seats+1, seed, seat, err)
			}
			results[i] = r
			done := int(finished.Add(1))
			if s.config.Progress != nil {
				s.config.Progress(done, total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	summary := &Summary{
		Challenger: s.config.Challenger,
		Opponent:   s.config.Opponent,
		Seed:       s.config.Seed,
		Rounds:     s.config.Rounds,
		SwapSeats:  s.config.SwapSeats,
		Stats:      stats,
		Elapsed:    s.config.Clock.Since(start),
	}

	s.logger.Info("Simulation complete",
		"matches", stats.Matches,
		"mean", fmt.Sprintf("%.3f", stats.Mean()),
		"elapsed", summary.Elapsed)

	return summary, nil
}

// playMatch runs one match with the challenger in seat. The challenger,
// opponent and env draw from separate streams derived from seed, so the
// challenger sees the same randomness from either seat.
func (s *Simulator) playMatch(ctx context.Context, seed int64, seat game.Party) (statistics.MatchResult, error) {
	challenger, err := s.config.NewAgent(s.config.Challenger, randutil.New(randutil.Derive(seed, 0)), s.logger)
	if err != nil {
		return statistics.MatchResult{}, err
	}
	opponent, err := s.config.NewAgent(s.config.Opponent, randutil.New(randutil.Derive(seed, 1)), s.logger)
	if err != nil {
		return statistics.MatchResult{}, err
	}

	var agents [game.NumParties]bot.Agent
	agents[seat] = challenger
	agents[seat.Opponent()] = opponent

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timedOut atomic.Bool
	if s.config.Timeout > 0 {
		timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
			timedOut.Store(true)
			cancel()
		}, "simulator", "match")
		defer timer.Stop()
	}

	res, err := s.runner.Play(ctx, agents, randutil.New(randutil.Derive(seed, 2)), seed)
	if err != nil {
		if timedOut.Load() {
			return statistics.MatchResult{}, fmt.Errorf("%w after %v", ErrTimeout, s.config.Timeout)
		}
		return statistics.MatchResult{}, err
	}

	opp := seat.Opponent()
	return statistics.MatchResult{
		Seed:      seed,
		Seat:      seat,
		Net:       res.Totals[seat],
		Rounds:    res.Rounds,
		RoundWins: res.Wins[seat],
		RoundLoss: res.Wins[opp],
		RoundTies: res.Ties,
		Moves:     res.Moves[seat],
		OppMoves:  res.Moves[opp],
	}, nil
}
