package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `default:"info" enum:"debug,info,warn,error" env:"RPSLS_LOG_LEVEL" help:"Log level (${enum})"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a match against a bot in the terminal"`
	Match    MatchCmd         `cmd:"" help:"Play one match between two bots"`
	Simulate SimulateCmd      `cmd:"" help:"Play many matches between two bots and report statistics"`
	Bots     BotsCmd          `cmd:"" help:"List available bots"`
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rpsls"),
		kong.Description("Rock, paper, scissors, lizard, spock for humans and bots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
