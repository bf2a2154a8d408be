package bot

import (
	rand "math/rand/v2"

	"github.com/lox/rpsls/internal/game"
)

// RandBot plays uniformly random moves.
type RandBot struct {
	rng *rand.Rand
}

func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

func (r *RandBot) Act(game.Move) game.Move {
	return game.Move(r.rng.IntN(game.NumMoves))
}

// ConstantBot always plays the same move.
type ConstantBot struct {
	move game.Move
}

func NewConstantBot(m game.Move) *ConstantBot {
	return &ConstantBot{move: m}
}

func (c *ConstantBot) Act(game.Move) game.Move {
	return c.move
}

// CycleBot walks the moves in index order.
type CycleBot struct {
	next game.Move
}

func NewCycleBot() *CycleBot {
	return &CycleBot{}
}

func (c *CycleBot) Act(game.Move) game.Move {
	m := c.next
	c.next = (c.next + 1) % game.NumMoves
	return m
}
