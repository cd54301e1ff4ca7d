package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"pokertally.hcl" help:"Path to HCL configuration file"`
	Debug   bool             `help:"Enable debug logging"`

	Net      NetCmd      `cmd:"" help:"Per-player net winnings from ledger exports"`
	Vpip     VPIPCmd     `cmd:"" help:"Per-player VPIP from hand-history logs"`
	Sessions SessionsCmd `cmd:"" help:"Dump consolidated per-player-per-day sessions"`
	Report   ReportCmd   `cmd:"" help:"Full report: nets, VPIP and net-over-time"`
}

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokertally"),
		kong.Description("Poker ledger and hand-history analysis for home games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
