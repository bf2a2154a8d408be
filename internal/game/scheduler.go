package game

// Turn is the scheduler's position within a round.
type Turn int

const (
	// Unstarted is the position before the first call to Next.
	Unstarted Turn = iota - 1
	FirstMove
	SecondMove
)

func (t Turn) String() string {
	switch t {
	case FirstMove:
		return "first-move"
	case SecondMove:
		return "second-move"
	default:
		return "unstarted"
	}
}

// Scheduler cycles over a fixed party order, one party per step.
type Scheduler struct {
	order [NumParties]Party
	turn  Turn
}

// NewScheduler returns an unstarted scheduler. Call Next to select the
// first party.
func NewScheduler(order [NumParties]Party) *Scheduler {
	return &Scheduler{order: order, turn: Unstarted}
}

// Reset rewinds the scheduler and returns the first party to act.
func (s *Scheduler) Reset() Party {
	s.turn = Unstarted
	return s.Next()
}

// Next advances to the following party and returns it.
func (s *Scheduler) Next() Party {
	if s.turn == SecondMove {
		s.turn = FirstMove
	} else {
		s.turn++
	}
	return s.order[s.turn]
}

// IsLast reports whether the currently selected party closes the round.
func (s *Scheduler) IsLast() bool {
	return s.turn == SecondMove
}

// Turn returns the scheduler's position within the round.
func (s *Scheduler) Turn() Turn {
	return s.turn
}

// Current returns the selected party. It is only meaningful once Next has
// been called.
func (s *Scheduler) Current() Party {
	if s.turn == Unstarted {
		return s.order[0]
	}
	return s.order[s.turn]
}
