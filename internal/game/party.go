package game

import "fmt"

// Party identifies one of the two participants in a match.
type Party int

const (
	PlayerA Party = iota
	PlayerB
)

// NumParties is the fixed number of participants.
const NumParties = 2

// Parties returns both parties in turn order.
func Parties() []Party {
	return []Party{PlayerA, PlayerB}
}

// Opponent returns the other party.
func (p Party) Opponent() Party {
	return 1 - p
}

func (p Party) String() string {
	return fmt.Sprintf("player_%d", int(p))
}

// Info carries per-party auxiliary data. It is always empty.
type Info map[string]any
