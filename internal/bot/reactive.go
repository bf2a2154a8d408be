package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/game"
)

// CopyBot repeats whatever the opponent played last round.
type CopyBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

func NewCopyBot(rng *rand.Rand, logger *log.Logger) *CopyBot {
	return &CopyBot{rng: rng, logger: logger}
}

func (c *CopyBot) Act(obs game.Move) game.Move {
	if !obs.Valid() {
		return randomMove(c.rng)
	}
	return obs
}

// CounterBot plays the move that beats the opponent's last move.
type CounterBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

func NewCounterBot(rng *rand.Rand, logger *log.Logger) *CounterBot {
	return &CounterBot{rng: rng, logger: logger}
}

func (c *CounterBot) Act(obs game.Move) game.Move {
	if !obs.Valid() {
		return randomMove(c.rng)
	}
	m := game.Counter(obs)
	c.logger.Debug("Countering last move", "seen", obs, "playing", m)
	return m
}

// FrequencyBot tracks how often the opponent plays each move and counters
// the most common one. Ties go to the most recently seen move.
type FrequencyBot struct {
	rng    *rand.Rand
	logger *log.Logger
	counts [game.NumMoves]int
}

func NewFrequencyBot(rng *rand.Rand, logger *log.Logger) *FrequencyBot {
	return &FrequencyBot{rng: rng, logger: logger}
}

func (f *FrequencyBot) Act(obs game.Move) game.Move {
	if !obs.Valid() {
		return randomMove(f.rng)
	}
	f.counts[obs]++

	best := obs
	for _, m := range game.Moves() {
		if f.counts[m] > f.counts[best] {
			best = m
		}
	}
	played := game.Counter(best)
	f.logger.Debug("Countering most frequent move", "frequent", best, "count", f.counts[best], "playing", played)
	return played
}

func randomMove(rng *rand.Rand) game.Move {
	return game.Move(rng.IntN(game.NumMoves))
}
