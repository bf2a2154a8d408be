package simulator

import (
	"context"
	"io"
	rand "math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rpsls/internal/bot"
	"github.com/lox/rpsls/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestConstantMatchup(t *testing.T) {
	sim, err := New(Config{
		Matches:     8,
		Rounds:      10,
		Seed:        1,
		Concurrency: 4,
		Challenger:  "rock",
		Opponent:    "scissors",
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	summary, err := sim.Run(context.Background())
	require.NoError(t, err)

	s := summary.Stats
	assert.Equal(t, 8, s.Matches)
	assert.Equal(t, 8, s.MatchWins)
	assert.InDelta(t, 10.0, s.Mean(), 1e-9)
	assert.Zero(t, s.Variance())
	assert.Equal(t, 80, s.Moves[game.Rock])
	assert.Equal(t, 80, s.OppMoves[game.Scissors])
}

func TestSwapSeats(t *testing.T) {
	sim, err := New(Config{
		Matches:    5,
		Rounds:     4,
		Seed:       9,
		SwapSeats:  true,
		Challenger: "spock",
		Opponent:   "scissors",
		Logger:     quietLogger(),
	})
	require.NoError(t, err)

	summary, err := sim.Run(context.Background())
	require.NoError(t, err)

	s := summary.Stats
	assert.Equal(t, 10, s.Matches)
	assert.Equal(t, 5, s.Seats[game.PlayerA].Matches)
	assert.Equal(t, 5, s.Seats[game.PlayerB].Matches)
	assert.InDelta(t, 4.0, s.SeatMean(game.PlayerA), 1e-9)
	assert.InDelta(t, 4.0, s.SeatMean(game.PlayerB), 1e-9)
}

func TestDeterministicForSeed(t *testing.T) {
	run := func(concurrency int) []float64 {
		sim, err := New(Config{
			Matches:     20,
			Rounds:      25,
			Seed:        1234,
			Concurrency: concurrency,
			Challenger:  "frequency",
			Opponent:    "random",
			Logger:      quietLogger(),
		})
		require.NoError(t, err)
		summary, err := sim.Run(context.Background())
		require.NoError(t, err)
		return summary.Stats.Values
	}

	assert.Equal(t, run(1), run(8))
}

func TestRandomSeedIsRecorded(t *testing.T) {
	sim, err := New(Config{Matches: 1, Challenger: "random", Opponent: "random", Logger: quietLogger()})
	require.NoError(t, err)
	assert.NotZero(t, sim.Seed())

	summary, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sim.Seed(), summary.Seed)
	assert.Equal(t, game.DefaultRounds, summary.Stats.Rounds)
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(Config{Matches: 0, Challenger: "random", Opponent: "random"})
	assert.Error(t, err)

	_, err = New(Config{Matches: 1, Challenger: "random", Opponent: "dynamite"})
	assert.ErrorContains(t, err, "dynamite")
}

func TestProgress(t *testing.T) {
	var mu sync.Mutex
	var calls []int
	sim, err := New(Config{
		Matches:     6,
		Rounds:      3,
		Seed:        5,
		Concurrency: 3,
		Challenger:  "cycle",
		Opponent:    "counter",
		Logger:      quietLogger(),
		Progress: func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 6, total)
			calls = append(calls, done)
		},
	})
	require.NoError(t, err)

	_, err = sim.Run(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, calls)
}

func TestMatchTimeout(t *testing.T) {
	mClock := quartz.NewMock(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The slow agent advances the mock clock past the match deadline on its
	// first move, as if it had been thinking for too long.
	slow := func(name string, rng *rand.Rand, logger *log.Logger) (bot.Agent, error) {
		if name != "slow" {
			return bot.New(name, rng, logger)
		}
		return bot.AgentFunc(func(game.Move) game.Move {
			_, w := mClock.AdvanceNext()
			w.MustWait(ctx)
			return game.Rock
		}), nil
	}

	sim, err := New(Config{
		Matches:    1,
		Rounds:     10,
		Seed:       1,
		Timeout:    time.Second,
		Challenger: "slow",
		Opponent:   "random",
		Logger:     quietLogger(),
		Clock:      mClock,
		NewAgent:   slow,
	})
	require.NoError(t, err)

	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCancelledRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim, err := New(Config{Matches: 3, Seed: 1, Challenger: "random", Opponent: "random", Logger: quietLogger()})
	require.NoError(t, err)

	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
