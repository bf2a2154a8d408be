package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// setupLogger configures a stderr logger at the requested level.
func setupLogger(g *Globals) (*log.Logger, error) {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return logger, nil
}
