package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Sit down at the tables (interactive TUI)"`
	Simulate SimulateCmd      `cmd:"" help:"Estimate return-to-player over many seeded rounds"`
	Paytable PaytableCmd      `cmd:"" help:"Print the configured slot machine paytables"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardhall"),
		kong.Description("A terminal casino: blackjack, high/low and slot machines"),
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
