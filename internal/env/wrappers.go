package env

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/game"
)

type boundsCheck struct {
	wrapper
}

// BoundsCheck rejects actions outside the action space.
func BoundsCheck(inner Env) Env {
	return &boundsCheck{wrapper{inner}}
}

func (b *boundsCheck) Step(action game.Move) (game.Move, error) {
	if !b.ActionSpace().Contains(int(action)) {
		return game.None, fmt.Errorf("%w: %d not in %s", ErrActionOutOfBounds, int(action), b.ActionSpace())
	}
	return b.Env.Step(action)
}

type randomizeNone struct {
	wrapper
	rng    *rand.Rand
	logger *log.Logger
}

// RandomizeNone replaces the None sentinel with a uniformly sampled legal
// move before passing it on.
func RandomizeNone(inner Env, rng *rand.Rand, logger *log.Logger) Env {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &randomizeNone{wrapper: wrapper{inner}, rng: rng, logger: logger.WithPrefix("env")}
}

func (r *randomizeNone) Step(action game.Move) (game.Move, error) {
	if action == game.None {
		action = game.Move(r.ActionSpace().Sample(r.rng))
		r.logger.Warn("Step received no move, substituting a random one",
			"party", r.AgentSelection(), "move", action)
	}
	return r.Env.Step(action)
}

type orderEnforcing struct {
	wrapper
	hasReset bool
}

// OrderEnforcing rejects calls made before Reset and steps taken after the
// match has finished.
func OrderEnforcing(inner Env) Env {
	return &orderEnforcing{wrapper: wrapper{inner}}
}

func (o *orderEnforcing) Reset() (game.Move, error) {
	obs, err := o.Env.Reset()
	if err != nil {
		return obs, err
	}
	o.hasReset = true
	return obs, nil
}

func (o *orderEnforcing) Step(action game.Move) (game.Move, error) {
	if !o.hasReset {
		return game.None, fmt.Errorf("step: %w", ErrResetRequired)
	}
	if o.done() {
		return game.None, fmt.Errorf("step: %w", ErrMatchDone)
	}
	return o.Env.Step(action)
}

func (o *orderEnforcing) Observe(p game.Party) (game.Move, error) {
	if !o.hasReset {
		return game.None, fmt.Errorf("observe: %w", ErrResetRequired)
	}
	return o.Env.Observe(p)
}

func (o *orderEnforcing) Render(w io.Writer) error {
	if !o.hasReset {
		return fmt.Errorf("render: %w", ErrResetRequired)
	}
	return o.Env.Render(w)
}

func (o *orderEnforcing) done() bool {
	for _, d := range o.Dones() {
		if !d {
			return false
		}
	}
	return true
}
