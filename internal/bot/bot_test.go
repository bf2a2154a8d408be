package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRegistry(t *testing.T) {
	names := Names()
	for _, want := range []string{"random", "cycle", "copycat", "counter", "frequency", "rock", "spock"} {
		assert.Contains(t, names, want)
		assert.True(t, Valid(want))
		assert.NotEmpty(t, Describe(want))
	}
	assert.IsIncreasing(t, names)

	_, err := New("dynamite", randutil.New(1), quietLogger())
	assert.ErrorContains(t, err, "unknown bot")
}

func TestEveryBotPlaysLegalMoves(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			agent, err := New(name, randutil.New(1), quietLogger())
			require.NoError(t, err)

			obs := game.None
			for i := range 50 {
				m := agent.Act(obs)
				require.True(t, m.Valid(), "round %d: %s", i, m)
				obs = game.Move(i % game.NumMoves)
			}
		})
	}
}

func TestConstantBot(t *testing.T) {
	agent, err := New("Lizard", randutil.New(1), quietLogger())
	require.NoError(t, err)
	for _, obs := range []game.Move{game.None, game.Rock, game.Spock} {
		assert.Equal(t, game.Lizard, agent.Act(obs))
	}
}

func TestCycleBot(t *testing.T) {
	c := NewCycleBot()
	var got []game.Move
	for range 7 {
		got = append(got, c.Act(game.None))
	}
	assert.Equal(t, []game.Move{game.Rock, game.Paper, game.Scissors, game.Lizard, game.Spock, game.Rock, game.Paper}, got)
}

func TestCopyBot(t *testing.T) {
	c := NewCopyBot(randutil.New(1), quietLogger())
	assert.Equal(t, game.Spock, c.Act(game.Spock))
	assert.True(t, c.Act(game.None).Valid())
}

func TestCounterBot(t *testing.T) {
	c := NewCounterBot(randutil.New(1), quietLogger())
	for _, m := range game.Moves() {
		assert.True(t, game.Beats(c.Act(m), m))
	}
}

func TestFrequencyBot(t *testing.T) {
	f := NewFrequencyBot(randutil.New(1), quietLogger())
	f.Act(game.Paper)
	f.Act(game.Paper)
	played := f.Act(game.Rock)
	assert.True(t, game.Beats(played, game.Paper), "should counter paper, played %s", played)

	f.Act(game.Rock)
	played = f.Act(game.Rock)
	assert.True(t, game.Beats(played, game.Rock), "should counter rock, played %s", played)
}

func TestAgentFunc(t *testing.T) {
	var a Agent = AgentFunc(func(obs game.Move) game.Move { return obs })
	assert.Equal(t, game.Scissors, a.Act(game.Scissors))
}
