package main

import (
	"testing"
	"time"

	"github.com/lox/rpsls/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateFlagsOverrideConfig(t *testing.T) {
	cfg, err := config.Parse([]byte(`
simulation {
  matches = 10
  seed    = 3
}
player "challenger" {
  bot = "cycle"
}
`), "test.hcl")
	require.NoError(t, err)

	cmd := &SimulateCmd{Opponent: "rock", Matches: 25, Timeout: 2 * time.Second, Swap: true}
	cmd.apply(cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "cycle", cfg.Player(config.RoleChallenger).Bot)
	assert.Equal(t, "rock", cfg.Player(config.RoleOpponent).Bot)
	assert.Equal(t, 25, cfg.Simulation.Matches)
	assert.Equal(t, int64(3), cfg.Simulation.Seed)
	assert.True(t, cfg.Simulation.SwapSeats)

	d, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}
