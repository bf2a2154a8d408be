package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is one of the five playable moves, or None when no move is visible.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
	Lizard
	Spock
	None
)

// NumMoves is the size of the legal action alphabet.
const NumMoves = 5

var moveNames = [...]string{"ROCK", "PAPER", "SCISSORS", "LIZARD", "SPOCK", "NONE"}

// Moves returns the playable moves in index order.
func Moves() []Move {
	return []Move{Rock, Paper, Scissors, Lizard, Spock}
}

func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Valid reports whether m is a playable move.
func (m Move) Valid() bool {
	return m >= Rock && m <= Spock
}

// ParseMove parses a move name, its initial (k for spock) or its index.
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "s":
		return Scissors, nil
	case "lizard", "l":
		return Lizard, nil
	case "spock", "k":
		return Spock, nil
	case "none", "":
		return None, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= int(None) {
		return Move(n), nil
	}
	return None, fmt.Errorf("unknown move %q", s)
}

// cyclePos places each move on the cycle rock, spock, paper, lizard,
// scissors. Every move beats the two moves preceding it on that cycle.
var cyclePos = [NumMoves]int{
	Rock:     0,
	Paper:    2,
	Scissors: 4,
	Lizard:   3,
	Spock:    1,
}

// Beats reports whether a defeats b. Both moves must be playable.
func Beats(a, b Move) bool {
	d := (cyclePos[a] - cyclePos[b] + NumMoves) % NumMoves
	return d == 1 || d == 2
}

// Payoff returns the rewards for a pair of moves played by party A and
// party B. The winner receives 1, the loser -1 and a tie pays nothing.
//
// Payoff panics if either move is not playable; callers must never store
// such a move as a resolved pair.
func Payoff(a, b Move) (int, int) {
	if !a.Valid() || !b.Valid() {
		panic(fmt.Sprintf("game: no payoff for moves (%s, %s)", a, b))
	}
	switch {
	case a == b:
		return 0, 0
	case Beats(a, b):
		return 1, -1
	default:
		return -1, 1
	}
}

// Counter returns a move that beats m. The lower-indexed winner is chosen
// when two moves qualify.
func Counter(m Move) Move {
	if !m.Valid() {
		return None
	}
	for _, c := range Moves() {
		if c != m && Beats(c, m) {
			return c
		}
	}
	return None
}
