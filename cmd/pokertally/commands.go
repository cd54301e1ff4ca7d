package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/homegame/pokertally/cmd/pokertally/shared"
	"github.com/homegame/pokertally/internal/analytics"
	"github.com/homegame/pokertally/internal/config"
	"github.com/homegame/pokertally/internal/identity"
	"github.com/homegame/pokertally/internal/ingest"
	"github.com/homegame/pokertally/internal/ledger"
	"github.com/homegame/pokertally/internal/report"
)

// setup loads configuration, the logger and the player roster shared by
// every command. A missing roster file is not fatal: analysis still runs,
// with every player reported under their raw nickname.
func setup(cli *CLI) (*config.Config, *log.Logger, []identity.RegisteredPlayer, error) {
	logger := shared.SetupLogger(cli.Debug)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, nil, nil, err
	}

	roster, err := ingest.Roster(cfg.Data.RosterFile)
	if err != nil {
		logger.Warn("no roster loaded; reporting raw nicknames", "err", err)
		roster = nil
	} else {
		logger.Debug("loaded roster", "players", len(roster))
	}

	if cfg.Data.StartingDataFile != "" {
		entries, err := ingest.StartingData(cfg.Data.StartingDataFile)
		if err != nil {
			logger.Warn("no starting data loaded", "err", err)
		} else {
			roster = identity.MergeStartingData(roster, entries)
		}
	}

	return cfg, logger, roster, nil
}

func consolidated(cfg *config.Config, logger *log.Logger, roster []identity.RegisteredPlayer) ([]ledger.ConsolidatedSession, error) {
	sessions, err := ingest.LedgerDir(cfg.Data.LedgerDir, logger)
	if err != nil {
		return nil, err
	}
	return ledger.Consolidate(sessions, roster), nil
}

// NetCmd prints per-player net winnings.
type NetCmd struct{}

func (c *NetCmd) Run(cli *CLI) error {
	cfg, logger, roster, err := setup(cli)
	if err != nil {
		return err
	}

	consolidatedSessions, err := consolidated(cfg, logger, roster)
	if err != nil {
		return err
	}

	rows := report.NetRows(consolidatedSessions, roster)
	fmt.Print(report.RenderNetTable(rows, cfg.Report.CurrencySymbol))
	return nil
}

// VPIPCmd prints per-player VPIP percentages.
type VPIPCmd struct{}

func (c *VPIPCmd) Run(cli *CLI) error {
	cfg, logger, roster, err := setup(cli)
	if err != nil {
		return err
	}

	logs, err := ingest.LogDir(cfg.Data.LogDir, roster, logger)
	if err != nil {
		return err
	}

	rows := report.VPIPRows(analytics.VPIP(logs))
	fmt.Print(report.RenderVPIPTable(rows))
	return nil
}

// SessionsCmd dumps the consolidated per-player-per-day aggregates.
type SessionsCmd struct{}

func (c *SessionsCmd) Run(cli *CLI) error {
	cfg, logger, roster, err := setup(cli)
	if err != nil {
		return err
	}

	consolidatedSessions, err := consolidated(cfg, logger, roster)
	if err != nil {
		return err
	}

	for _, s := range consolidatedSessions {
		fmt.Printf("%s %s net=%s buy_in=%s time_played_ms=%d\n",
			s.Date.Format("2006-01-02"), s.Nickname,
			s.Net.StringFixed(2), s.BuyIn.StringFixed(2), s.TimePlayedMs)
	}
	return nil
}

// ReportCmd prints the full report: net table, VPIP table and per-player
// net-over-time.
type ReportCmd struct{}

func (c *ReportCmd) Run(cli *CLI) error {
	cfg, logger, roster, err := setup(cli)
	if err != nil {
		return err
	}

	consolidatedSessions, err := consolidated(cfg, logger, roster)
	if err != nil {
		return err
	}
	logs, err := ingest.LogDir(cfg.Data.LogDir, roster, logger)
	if err != nil {
		return err
	}

	fmt.Print(report.RenderNetTable(report.NetRows(consolidatedSessions, roster), cfg.Report.CurrencySymbol))
	fmt.Println()
	fmt.Print(report.RenderVPIPTable(report.VPIPRows(analytics.VPIP(logs))))
	fmt.Println()
	fmt.Print(report.RenderTimeline(report.TimelineRows(analytics.CumulativeNets(consolidatedSessions, roster)), cfg.Report.CurrencySymbol))
	return nil
}
