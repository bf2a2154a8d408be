// Package config loads simulation settings from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/rpsls/internal/bot"
	"github.com/lox/rpsls/internal/game"
)

// Config is the complete simulation configuration.
//
//	match {
//	  rounds = 100
//	}
//
//	simulation {
//	  matches     = 1000
//	  seed        = 42
//	  concurrency = 8
//	  timeout     = "5s"
//	  swap_seats  = true
//	}
//
//	player "challenger" {
//	  bot = "frequency"
//	}
//
//	player "opponent" {
//	  bot = "random"
//	}
type Config struct {
	Match      *MatchSettings      `hcl:"match,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
}

// MatchSettings configures a single match.
type MatchSettings struct {
	Rounds int `hcl:"rounds,optional"`
}

// SimulationSettings configures a batch of matches.
type SimulationSettings struct {
	Matches     int    `hcl:"matches,optional"`
	Seed        int64  `hcl:"seed,optional"`
	Concurrency int    `hcl:"concurrency,optional"`
	Timeout     string `hcl:"timeout,optional"`
	SwapSeats   bool   `hcl:"swap_seats,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// PlayerConfig binds a bot to a role.
type PlayerConfig struct {
	Role string `hcl:"role,label"`
	Bot  string `hcl:"bot"`
}

const (
	RoleChallenger = "challenger"
	RoleOpponent   = "opponent"
)

// Default returns the default configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Match == nil {
		c.Match = &MatchSettings{}
	}
	if c.Match.Rounds == 0 {
		c.Match.Rounds = game.DefaultRounds
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Matches == 0 {
		c.Simulation.Matches = 1000
	}
	if c.Simulation.Concurrency == 0 {
		c.Simulation.Concurrency = 4
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = "10s"
	}
	if c.Simulation.LogLevel == "" {
		c.Simulation.LogLevel = "info"
	}

	if c.Player(RoleChallenger) == nil {
		c.Players = append(c.Players, PlayerConfig{Role: RoleChallenger, Bot: "frequency"})
	}
	if c.Player(RoleOpponent) == nil {
		c.Players = append(c.Players, PlayerConfig{Role: RoleOpponent, Bot: "random"})
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Match.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Match.Rounds)
	}
	if c.Simulation.Matches < 1 {
		return fmt.Errorf("matches must be at least 1, got %d", c.Simulation.Matches)
	}
	if c.Simulation.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Simulation.Concurrency)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, p := range c.Players {
		if p.Role != RoleChallenger && p.Role != RoleOpponent {
			return fmt.Errorf("player %q: role must be %q or %q", p.Role, RoleChallenger, RoleOpponent)
		}
		if seen[p.Role] {
			return fmt.Errorf("player %q declared more than once", p.Role)
		}
		seen[p.Role] = true
		if !bot.Valid(p.Bot) {
			return fmt.Errorf("player %q: unknown bot %q", p.Role, p.Bot)
		}
	}
	return nil
}

// Timeout returns the per-match timeout.
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Simulation.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative, got %v", d)
	}
	return d, nil
}

// Player returns the player with the given role, or nil.
func (c *Config) Player(role string) *PlayerConfig {
	for i := range c.Players {
		if c.Players[i].Role == role {
			return &c.Players[i]
		}
	}
	return nil
}
