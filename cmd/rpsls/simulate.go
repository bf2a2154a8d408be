package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/config"
	"github.com/lox/rpsls/internal/report"
	"github.com/lox/rpsls/internal/simulator"
)

// SimulateCmd plays a batch of matches. Flags left at their zero value fall
// back to the config file, then to built-in defaults.
type SimulateCmd struct {
	Config      string        `short:"c" default:"rpsls.hcl" env:"RPSLS_CONFIG" help:"HCL config file (optional)"`
	Challenger  string        `help:"Bot whose results are reported"`
	Opponent    string        `help:"Bot it plays against"`
	Matches     int           `short:"n" help:"Number of matches"`
	Rounds      int           `help:"Rounds per match"`
	Seed        int64         `env:"RPSLS_SEED" help:"RNG seed (0 for random)"`
	Concurrency int           `short:"j" help:"Matches played in parallel"`
	Timeout     time.Duration `help:"Per-match timeout"`
	Swap        bool          `help:"Play every seed from both seats"`
	Output      string        `short:"o" type:"path" help:"Write a JSON report to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	logger, err := setupLogger(g)
	if err != nil {
		return err
	}
	if g.LogLevel == "info" && cfg.Simulation.LogLevel != "info" {
		if level, err := log.ParseLevel(cfg.Simulation.LogLevel); err == nil {
			logger.SetLevel(level)
		}
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	sim, err := simulator.New(simulator.Config{
		Matches:     cfg.Simulation.Matches,
		Rounds:      cfg.Match.Rounds,
		Seed:        cfg.Simulation.Seed,
		Concurrency: cfg.Simulation.Concurrency,
		Timeout:     timeout,
		SwapSeats:   cfg.Simulation.SwapSeats,
		Challenger:  cfg.Player(config.RoleChallenger).Bot,
		Opponent:    cfg.Player(config.RoleOpponent).Bot,
		Logger:      logger,
		Progress:    progressLogger(logger),
	})
	if err != nil {
		return err
	}

	summary, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	rep := report.New(summary)
	if err := rep.WriteText(os.Stdout); err != nil {
		return err
	}
	if c.Output != "" {
		if err := rep.WriteFile(c.Output); err != nil {
			return err
		}
		logger.Info("Wrote report", "file", c.Output)
	}
	return nil
}

// apply overlays flags that were set on top of the loaded config.
func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Challenger != "" {
		cfg.Player(config.RoleChallenger).Bot = c.Challenger
	}
	if c.Opponent != "" {
		cfg.Player(config.RoleOpponent).Bot = c.Opponent
	}
	if c.Matches != 0 {
		cfg.Simulation.Matches = c.Matches
	}
	if c.Rounds != 0 {
		cfg.Match.Rounds = c.Rounds
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Concurrency != 0 {
		cfg.Simulation.Concurrency = c.Concurrency
	}
	if c.Timeout != 0 {
		cfg.Simulation.Timeout = c.Timeout.String()
	}
	if c.Swap {
		cfg.Simulation.SwapSeats = true
	}
}

// progressLogger logs roughly every tenth of the run.
func progressLogger(logger *log.Logger) func(done, total int) {
	return func(done, total int) {
		step := max(total/10, 1)
		if done%step == 0 || done == total {
			logger.Info("Progress", "done", done, "total", total)
		}
	}
}
