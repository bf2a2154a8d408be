package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/simulator"
	"github.com/lox/rpsls/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() *simulator.Summary {
	stats := &statistics.Statistics{}
	for _, net := range []int{3, -1} {
		wins, losses := 0, 0
		if net > 0 {
			wins = net
		} else {
			losses = -net
		}
		r := statistics.MatchResult{Net: net, Rounds: 5, RoundWins: wins, RoundLoss: losses, RoundTies: 5 - wins - losses}
		r.Moves[game.Rock] = 5
		r.OppMoves[game.Paper] = 5
		stats.Add(r)
	}
	return &simulator.Summary{
		Challenger: "counter",
		Opponent:   "random",
		Seed:       7,
		Rounds:     5,
		SwapSeats:  true,
		Stats:      stats,
		Elapsed:    1500 * time.Millisecond,
	}
}

func TestNew(t *testing.T) {
	r := New(sampleSummary())
	assert.Equal(t, 2, r.Matches)
	assert.InDelta(t, 1.0, r.Mean, 1e-9)
	assert.Equal(t, 1, r.Wins)
	assert.Equal(t, 1, r.Losses)
	assert.Equal(t, 10, r.Moves["ROCK"])
	assert.Equal(t, 10, r.OppMoves["PAPER"])
	assert.Equal(t, int64(1500), r.ElapsedMs)
}

func TestWriteText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, New(sampleSummary()).WriteText(&b))
	out := b.String()
	assert.Contains(t, out, "counter vs random: 2 matches of 5 rounds (seed 7, seats swapped)")
	assert.Contains(t, out, "1 won, 1 lost, 0 drawn")
	assert.Contains(t, out, "ROCK=10")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	require.NoError(t, New(sampleSummary()).WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "counter", got.Challenger)
	assert.Equal(t, 2, got.Matches)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileMissingDir(t *testing.T) {
	err := New(sampleSummary()).WriteFile(filepath.Join(t.TempDir(), "nope", "report.json"))
	assert.Error(t, err)
}
