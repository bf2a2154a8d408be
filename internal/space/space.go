// Package space describes the value ranges of actions and observations.
package space

import (
	"fmt"
	rand "math/rand/v2"
)

// Discrete is the set of integers {0, 1, ..., N-1}.
type Discrete struct {
	N int
}

// Contains reports whether x lies in the space.
func (d Discrete) Contains(x int) bool {
	return x >= 0 && x < d.N
}

// Sample draws a uniformly random element of the space.
func (d Discrete) Sample(rng *rand.Rand) int {
	return rng.IntN(d.N)
}

func (d Discrete) String() string {
	return fmt.Sprintf("Discrete(%d)", d.N)
}
