// Package env wraps the round engine with the checks it leaves to its
// callers: action bounds, the None sentinel, and call order.
package env

import (
	"errors"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/space"
)

var (
	// ErrActionOutOfBounds is returned for an action outside the action space.
	ErrActionOutOfBounds = errors.New("action out of bounds")
	// ErrResetRequired is returned when the match is used before Reset.
	ErrResetRequired = errors.New("reset must be called first")
	// ErrMatchDone is returned when stepping a finished match.
	ErrMatchDone = errors.New("match is done")
)

// Env is the match interface exposed to players and runners.
type Env interface {
	Reset() (game.Move, error)
	Step(action game.Move) (game.Move, error)
	Observe(p game.Party) (game.Move, error)
	Render(w io.Writer) error

	AgentSelection() game.Party
	Agents() []game.Party
	Rewards() map[game.Party]int
	Dones() map[game.Party]bool
	Infos() map[game.Party]game.Info
	ActionSpace() space.Discrete
	ObservationSpace() space.Discrete
}

// Wrap returns the engine behind the full wrapper stack: order enforcement,
// then sentinel randomization, then bounds checking.
func Wrap(e *game.Engine, rng *rand.Rand, logger *log.Logger) Env {
	return OrderEnforcing(RandomizeNone(BoundsCheck(Raw(e)), rng, logger))
}

type raw struct {
	engine *game.Engine
}

// Raw exposes the engine without any checks.
func Raw(e *game.Engine) Env {
	return &raw{engine: e}
}

func (r *raw) Reset() (game.Move, error) {
	return r.engine.Reset(), nil
}

func (r *raw) Step(action game.Move) (game.Move, error) {
	return r.engine.Step(action), nil
}

func (r *raw) Observe(p game.Party) (game.Move, error) {
	return r.engine.Observe(p), nil
}

func (r *raw) Render(w io.Writer) error {
	return r.engine.Render(w)
}

func (r *raw) AgentSelection() game.Party { return r.engine.Current() }
func (r *raw) Agents() []game.Party { return r.engine.Agents() }
func (r *raw) Rewards() map[game.Party]int { return r.engine.Rewards() }
func (r *raw) Dones() map[game.Party]bool { return r.engine.Dones() }
func (r *raw) Infos() map[game.Party]game.Info { return r.engine.Infos() }
func (r *raw) ActionSpace() space.Discrete { return r.engine.ActionSpace() }
func (r *raw) ObservationSpace() space.Discrete { return r.engine.ObservationSpace() }

// wrapper forwards everything to the inner Env; concrete wrappers override
// the methods they check.
type wrapper struct {
	Env
}
