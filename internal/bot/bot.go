// Package bot provides move policies that play a match from observations.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/game"
)

// Agent chooses a move from the latest observation. Agents receive only
// what their party may observe: the opponent's move from the previous
// round, or game.None before the first round resolves.
type Agent interface {
	Act(obs game.Move) game.Move
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(obs game.Move) game.Move

func (f AgentFunc) Act(obs game.Move) game.Move { return f(obs) }

// Factory builds a fresh agent for one match.
type Factory func(rng *rand.Rand, logger *log.Logger) Agent

type registration struct {
	factory     Factory
	description string
}

var registry = map[string]registration{
	"random": {
		factory:     func(rng *rand.Rand, _ *log.Logger) Agent { return NewRandBot(rng) },
		description: "uniformly random moves",
	},
	"cycle": {
		factory:     func(_ *rand.Rand, _ *log.Logger) Agent { return NewCycleBot() },
		description: "rock, paper, scissors, lizard, spock, repeat",
	},
	"copycat": {
		factory:     func(rng *rand.Rand, logger *log.Logger) Agent { return NewCopyBot(rng, logger) },
		description: "repeats the opponent's last move",
	},
	"counter": {
		factory:     func(rng *rand.Rand, logger *log.Logger) Agent { return NewCounterBot(rng, logger) },
		description: "beats the opponent's last move",
	},
	"frequency": {
		factory:     func(rng *rand.Rand, logger *log.Logger) Agent { return NewFrequencyBot(rng, logger) },
		description: "beats the opponent's most frequent move",
	},
}

func init() {
	for _, m := range game.Moves() {
		name := strings.ToLower(m.String())
		registry[name] = registration{
			factory:     func(_ *rand.Rand, _ *log.Logger) Agent { return NewConstantBot(m) },
			description: fmt.Sprintf("always plays %s", m),
		}
	}
}

// New creates the named agent.
func New(name string, rng *rand.Rand, logger *log.Logger) (Agent, error) {
	reg, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	if logger == nil {
		logger = log.Default()
	}
	return reg.factory(rng, logger.WithPrefix(name)), nil
}

// Names returns the registered bot names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns a one-line description of the named bot.
func Describe(name string) string {
	return registry[strings.ToLower(name)].description
}

// Valid reports whether name is a registered bot.
func Valid(name string) bool {
	_, ok := registry[strings.ToLower(name)]
	return ok
}
