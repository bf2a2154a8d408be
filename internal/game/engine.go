package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/space"
)

// DefaultRounds is the match horizon used when none is configured.
const DefaultRounds = 100

// Phase is the match-level state derived from the scheduler and done flags.
type Phase int

const (
	Idle Phase = iota
	AwaitingFirstMove
	AwaitingSecondMove
	MatchDone
)

func (p Phase) String() string {
	switch p {
	case AwaitingFirstMove:
		return "awaiting-first-move"
	case AwaitingSecondMove:
		return "awaiting-second-move"
	case MatchDone:
		return "match-done"
	default:
		return "idle"
	}
}

// RoundResult describes a resolved round.
type RoundResult struct {
	Round   int
	Moves   [NumParties]Move
	Rewards [NumParties]int
	Done    bool
}

// Winner returns the party that won the round, or false on a tie.
func (r RoundResult) Winner() (Party, bool) {
	switch {
	case r.Rewards[PlayerA] > 0:
		return PlayerA, true
	case r.Rewards[PlayerB] > 0:
		return PlayerB, true
	}
	return PlayerA, false
}

// Option configures an Engine.
type Option func(*Engine)

// WithRounds sets the number of rounds in a match.
func WithRounds(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.rounds = n
		}
	}
}

// WithLogger sets the logger used for round resolution messages.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.WithPrefix("engine")
		}
	}
}

// WithRoundHook registers a function invoked after every resolved round.
func WithRoundHook(fn func(RoundResult)) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, fn)
	}
}

// Engine owns the round state of a single match. It is not safe for
// concurrent use; callers serialize Reset, Step and Observe.
type Engine struct {
	rounds int
	logger *log.Logger
	hooks  []func(RoundResult)

	scheduler    *Scheduler
	current      Party
	started      bool
	pending      [NumParties]Move
	observations [NumParties]Move
	rewards      [NumParties]int
	cumulative   [NumParties]int
	dones        [NumParties]bool
	round        int
}

// NewEngine creates an engine. Reset must be called before Step.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rounds:    DefaultRounds,
		logger:    log.New(io.Discard),
		scheduler: NewScheduler([NumParties]Party{PlayerA, PlayerB}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.clear()
	return e
}

func (e *Engine) clear() {
	for _, p := range Parties() {
		e.pending[p] = None
		e.observations[p] = None
		e.rewards[p] = 0
		e.cumulative[p] = 0
		e.dones[p] = false
	}
	e.round = 0
}

// Reset starts a new match and returns the observation of the first party
// to act.
func (e *Engine) Reset() Move {
	e.clear()
	e.current = e.scheduler.Reset()
	e.started = true
	e.logger.Debug("Match reset", "rounds", e.rounds, "first", e.current)
	return e.Observe(e.current)
}

// Step records action for the party to act, resolves the round when that
// party closes it, and returns the observation of the next party to act.
//
// Step does not validate action. None is tolerated and resolves the round
// as a no contest.
func (e *Engine) Step(action Move) Move {
	agent := e.current
	e.pending[agent] = action

	if e.scheduler.IsLast() {
		e.resolve()
	} else {
		e.pending[agent.Opponent()] = None
	}

	e.current = e.scheduler.Next()
	return e.Observe(e.current)
}

func (e *Engine) resolve() {
	a, b := e.pending[PlayerA], e.pending[PlayerB]

	var ra, rb int
	if a != None && b != None {
		ra, rb = Payoff(a, b)
	}
	e.rewards[PlayerA], e.rewards[PlayerB] = ra, rb
	e.cumulative[PlayerA] += ra
	e.cumulative[PlayerB] += rb

	e.round++
	done := e.round >= e.rounds
	for _, p := range Parties() {
		e.dones[p] = done
		e.observations[p] = e.pending[p.Opponent()]
	}

	result := RoundResult{
		Round:   e.round,
		Moves:   [NumParties]Move{a, b},
		Rewards: [NumParties]int{ra, rb},
		Done:    done,
	}
	e.logger.Debug("Round resolved",
		"round", e.round,
		PlayerA.String(), a,
		PlayerB.String(), b,
		"rewards", fmt.Sprintf("%+d/%+d", ra, rb),
		"done", done)

	for _, fn := range e.hooks {
		fn(result)
	}
}

// Observe returns what p may currently see: the opponent's move from the
// most recently completed round, or None before any round completes.
func (e *Engine) Observe(p Party) Move {
	return e.observations[p]
}

// Current returns the party to act next.
func (e *Engine) Current() Party {
	return e.current
}

// Phase reports where the match stands.
func (e *Engine) Phase() Phase {
	switch {
	case !e.started:
		return Idle
	case e.dones[PlayerA]:
		return MatchDone
	case e.scheduler.IsLast():
		return AwaitingSecondMove
	default:
		return AwaitingFirstMove
	}
}

// Round returns the number of completed rounds.
func (e *Engine) Round() int {
	return e.round
}

// Rounds returns the match horizon.
func (e *Engine) Rounds() int {
	return e.rounds
}

// Pending returns the most recent committed move of p, or None.
func (e *Engine) Pending(p Party) Move {
	return e.pending[p]
}

// Reward returns p's reward for the round just resolved.
func (e *Engine) Reward(p Party) int {
	return e.rewards[p]
}

// Cumulative returns the sum of p's rewards in the current match.
func (e *Engine) Cumulative(p Party) int {
	return e.cumulative[p]
}

// Done reports whether the match is over. Both parties always agree.
func (e *Engine) Done(p Party) bool {
	return e.dones[p]
}

// Agents returns the parties in turn order.
func (e *Engine) Agents() []Party {
	return Parties()
}

// Rewards returns a snapshot of the per-party rewards.
func (e *Engine) Rewards() map[Party]int {
	out := make(map[Party]int, NumParties)
	for _, p := range Parties() {
		out[p] = e.rewards[p]
	}
	return out
}

// Dones returns a snapshot of the per-party done flags.
func (e *Engine) Dones() map[Party]bool {
	out := make(map[Party]bool, NumParties)
	for _, p := range Parties() {
		out[p] = e.dones[p]
	}
	return out
}

// Infos returns an empty info map per party.
func (e *Engine) Infos() map[Party]Info {
	out := make(map[Party]Info, NumParties)
	for _, p := range Parties() {
		out[p] = Info{}
	}
	return out
}

// ActionSpace describes the legal actions of every party.
func (e *Engine) ActionSpace() space.Discrete {
	return space.Discrete{N: NumMoves}
}

// ObservationSpace describes observations, which include the None sentinel.
func (e *Engine) ObservationSpace() space.Discrete {
	return space.Discrete{N: NumMoves + 1}
}

// Render writes the most recent committed move of each party.
func (e *Engine) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Current state: %s: %s, %s: %s\n",
		PlayerA, e.pending[PlayerA], PlayerB, e.pending[PlayerB])
	return err
}
