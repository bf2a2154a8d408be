// Package report renders simulation summaries as text and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/simulator"
	"github.com/lox/rpsls/internal/statistics"
)

// Report is the JSON form of a simulation summary.
type Report struct {
	Challenger string         `json:"challenger"`
	Opponent   string         `json:"opponent"`
	Seed       int64          `json:"seed"`
	Rounds     int            `json:"rounds_per_match"`
	SwapSeats  bool           `json:"swap_seats"`
	Matches    int            `json:"matches"`
	Mean       float64        `json:"mean"`
	StdDev     float64        `json:"stddev"`
	CI95       [2]float64     `json:"ci95"`
	Median     float64        `json:"median"`
	PValue     float64        `json:"p_value"`
	EffectSize float64        `json:"effect_size"`
	WinRate    float64        `json:"win_rate"`
	Wins       int            `json:"wins"`
	Losses     int            `json:"losses"`
	Draws      int            `json:"draws"`
	RoundWins  int            `json:"round_wins"`
	RoundLoss  int            `json:"round_losses"`
	RoundTies  int            `json:"round_ties"`
	Moves      map[string]int `json:"moves"`
	OppMoves   map[string]int `json:"opponent_moves"`
	ElapsedMs  int64          `json:"elapsed_ms"`
}

// New builds a report from a summary.
func New(s *simulator.Summary) *Report {
	st := s.Stats
	lo, hi := st.ConfidenceInterval95()
	r := &Report{
		Challenger: s.Challenger,
		Opponent:   s.Opponent,
		Seed:       s.Seed,
		Rounds:     s.Rounds,
		SwapSeats:  s.SwapSeats,
		Matches:    st.Matches,
		Mean:       st.Mean(),
		StdDev:     st.StdDev(),
		CI95:       [2]float64{lo, hi},
		Median:     st.Median(),
		PValue:     st.PValue(),
		EffectSize: st.EffectSize(),
		WinRate:    st.WinRate(),
		Wins:       st.MatchWins,
		Losses:     st.MatchLosses,
		Draws:      st.MatchDraws,
		RoundWins:  st.RoundWins,
		RoundLoss:  st.RoundLoss,
		RoundTies:  st.RoundTies,
		Moves:      make(map[string]int, game.NumMoves),
		OppMoves:   make(map[string]int, game.NumMoves),
		ElapsedMs:  s.Elapsed.Milliseconds(),
	}
	for _, m := range game.Moves() {
		r.Moves[m.String()] = st.Moves[m]
		r.OppMoves[m.String()] = st.OppMoves[m]
	}
	return r
}

// WriteText prints a human-readable summary.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s: %d matches of %d rounds (seed %d", r.Challenger, r.Opponent, r.Matches, r.Rounds, r.Seed)
	if r.SwapSeats {
		b.WriteString(", seats swapped")
	}
	b.WriteString(")\n")
	fmt.Fprintf(&b, "  mean %+.3f per match (±%.3f, 95%% CI [%.3f, %.3f]), median %+.1f\n",
		r.Mean, r.StdDev, r.CI95[0], r.CI95[1], r.Median)
	fmt.Fprintf(&b, "  p=%.4f (%s), effect size %.2f (%s)\n",
		r.PValue, statistics.InterpretPValue(r.PValue, 0.05),
		r.EffectSize, statistics.InterpretEffectSize(r.EffectSize))
	fmt.Fprintf(&b, "  matches  %d won, %d lost, %d drawn (%.1f%% won)\n", r.Wins, r.Losses, r.Draws, 100*r.WinRate)
	fmt.Fprintf(&b, "  rounds   %d won, %d lost, %d tied\n", r.RoundWins, r.RoundLoss, r.RoundTies)
	b.WriteString("  moves   ")
	for _, m := range game.Moves() {
		fmt.Fprintf(&b, " %s=%d", m, r.Moves[m.String()])
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  elapsed  %dms\n", r.ElapsedMs)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile writes the report as indented JSON. Readers see either the
// previous file or the complete new one, never a partial write.
func (r *Report) WriteFile(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return writeFileAtomic(filename, append(data, '\n'), 0o644)
}

func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
