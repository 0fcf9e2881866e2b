package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play 21 Bust against the computer"`
	Simulate SimulateCmd      `cmd:"" help:"Play bot-only rounds and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bust"),
		kong.Description("21 Bust, a simplified game of Blackjack"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
