// Package game implements the core of a two-party rock-paper-scissors-lizard-spock match.
//
// The main type is Engine, which owns all round state for a single match:
// pending moves, what each party is allowed to observe, the rewards for the
// round just resolved, the shared done flags and the round counter.
//
// # Basic Usage
//
// Parties act one at a time, but a move stays hidden from the opponent until
// both have committed for the current round:
//
//	e := game.NewEngine(game.WithRounds(10))
//	obs := e.Reset()            // observation for player_0
//	obs = e.Step(game.Rock)     // player_0 acts, returns player_1's observation
//	obs = e.Step(game.Scissors) // round resolves, returns player_0's observation
//	e.Reward(game.PlayerA)      // 1
//
// # Architecture
//
// Engine delegates turn order to a Scheduler, which cycles over the two
// parties and reports whether the party that just acted closes the round.
// Payoffs come from Payoff, a pure function over two moves.
//
// Engine performs no validation of its own. Out-of-range actions and calls out
// of order are rejected by the wrappers in the env package.
package game
