// Package statistics aggregates match results from one player's point of view.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/rpsls/internal/game"
)

// MatchResult is one match as seen by the tracked player.
type MatchResult struct {
	Seed      int64
	Seat      game.Party         // Seat the tracked player occupied
	Net       int                // Tracked player's total reward
	Rounds    int
	RoundWins int
	RoundLoss int
	RoundTies int
	Moves     [game.NumMoves]int // Moves the tracked player made
	OppMoves  [game.NumMoves]int // Moves the opponent made
}

// SeatStats tracks results for one seat.
type SeatStats struct {
	Matches int
	SumNet  float64
}

// Statistics accumulates match results.
type Statistics struct {
	Matches int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Every match's net result, for median and percentiles

	MatchWins   int
	MatchLosses int
	MatchDraws  int

	Rounds    int
	RoundWins int
	RoundLoss int
	RoundTies int

	Moves    [game.NumMoves]int
	OppMoves [game.NumMoves]int

	Seats [game.NumParties]SeatStats
}

// Add incorporates a match result.
func (s *Statistics) Add(r MatchResult) {
	net := float64(r.Net)
	s.Matches++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	switch {
	case r.Net > 0:
		s.MatchWins++
	case r.Net < 0:
		s.MatchLosses++
	default:
		s.MatchDraws++
	}

	s.Rounds += r.Rounds
	s.RoundWins += r.RoundWins
	s.RoundLoss += r.RoundLoss
	s.RoundTies += r.RoundTies

	for m := range game.NumMoves {
		s.Moves[m] += r.Moves[m]
		s.OppMoves[m] += r.OppMoves[m]
	}

	if r.Seat == game.PlayerA || r.Seat == game.PlayerB {
		s.Seats[r.Seat].Matches++
		s.Seats[r.Seat].SumNet += net
	}
}

// Mean returns the average net reward per match.
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumNet / float64(s.Matches)
}

// Variance returns the sample variance of the net reward per match.
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumNet2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net reward.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the net reward at p, between 0 and 1, interpolating
// between neighbouring values.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of matches won.
func (s *Statistics) WinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.MatchWins) / float64(s.Matches)
}

// RoundWinRate returns the fraction of rounds won.
func (s *Statistics) RoundWinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.RoundWins) / float64(s.Rounds)
}

// SeatMean returns the average net reward from the given seat.
func (s *Statistics) SeatMean(seat game.Party) float64 {
	ss := s.Seats[seat]
	if ss.Matches == 0 {
		return 0
	}
	return ss.SumNet / float64(ss.Matches)
}

// MoveFrequency returns the fraction of the tracked player's moves that were m.
func (s *Statistics) MoveFrequency(m game.Move) float64 {
	total := 0
	for _, c := range s.Moves {
		total += c
	}
	if total == 0 || !m.Valid() {
		return 0
	}
	return float64(s.Moves[m]) / float64(total)
}

// Validate checks the accumulated counts are consistent.
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid match count: %d", s.Matches)
	}
	if len(s.Values) != s.Matches {
		return fmt.Errorf("values length (%d) does not match match count (%d)", len(s.Values), s.Matches)
	}
	if s.MatchWins+s.MatchLosses+s.MatchDraws != s.Matches {
		return fmt.Errorf("match outcomes (%d/%d/%d) do not add up to %d",
			s.MatchWins, s.MatchLosses, s.MatchDraws, s.Matches)
	}
	if s.RoundWins+s.RoundLoss+s.RoundTies != s.Rounds {
		return fmt.Errorf("round outcomes (%d/%d/%d) do not add up to %d",
			s.RoundWins, s.RoundLoss, s.RoundTies, s.Rounds)
	}
	if got := s.Seats[game.PlayerA].Matches + s.Seats[game.PlayerB].Matches; got != s.Matches {
		return fmt.Errorf("seat totals (%d) do not match match count (%d)", got, s.Matches)
	}
	if net := float64(s.RoundWins - s.RoundLoss); math.Abs(net-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: round balance %.0f, net total %.0f", net, s.SumNet)
	}
	return nil
}

// PValue returns the two-sided p-value for the hypothesis that the true
// mean is zero, using the normal approximation.
func (s *Statistics) PValue() float64 {
	se := s.StdError()
	if se == 0 {
		if s.Mean() == 0 {
			return 1
		}
		return 0
	}
	z := math.Abs(s.Mean() / se)
	return math.Erfc(z / math.Sqrt2)
}

// EffectSize returns Cohen's d of the mean against zero.
func (s *Statistics) EffectSize() float64 {
	sd := s.StdDev()
	if sd == 0 {
		return 0
	}
	return s.Mean() / sd
}

// InterpretEffectSize returns a human-readable interpretation of Cohen's d.
func InterpretEffectSize(d float64) string {
	switch absd := math.Abs(d); {
	case absd < 0.2:
		return "negligible"
	case absd < 0.5:
		return "small"
	case absd < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// InterpretPValue returns a human-readable interpretation of a p-value.
func InterpretPValue(p, alpha float64) string {
	switch {
	case p < 0.001:
		return "highly significant"
	case p < 0.01:
		return "very significant"
	case p < alpha:
		return "significant"
	case p < 0.10:
		return "marginally significant"
	default:
		return "not significant"
	}
}
