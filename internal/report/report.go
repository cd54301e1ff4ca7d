// Package report turns aggregate maps into roster-complete rows and renders
// them as styled terminal tables. This is the layer that unions registered
// players with no recorded activity in at zero, which the aggregators
// deliberately do not.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/analytics"
	"github.com/homegame/pokertally/internal/identity"
	"github.com/homegame/pokertally/internal/ledger"
)

// NetRow is one line of the winnings report.
type NetRow struct {
	Nickname    string
	Net         decimal.Decimal
	BuyIn       decimal.Decimal
	HoursPlayed float64
}

// NetRows aggregates consolidated sessions into one row per identity,
// sorted by net descending. Every roster player appears even with zero
// activity, seeded with their initial balance when one is recorded.
func NetRows(sessions []ledger.ConsolidatedSession, roster []identity.RegisteredPlayer) []NetRow {
	byName := make(map[string]*NetRow)
	row := func(name string) *NetRow {
		r := byName[name]
		if r == nil {
			r = &NetRow{Nickname: name}
			byName[name] = r
		}
		return r
	}

	for i := range roster {
		r := row(roster[i].Name)
		if roster[i].Initial != nil {
			r.Net = r.Net.Add(roster[i].Initial.NetAmount)
		}
	}
	for _, s := range sessions {
		r := row(s.Nickname)
		r.Net = r.Net.Add(s.Net)
		r.BuyIn = r.BuyIn.Add(s.BuyIn)
		r.HoursPlayed += float64(s.TimePlayedMs) / float64(3600*1000)
	}

	rows := make([]NetRow, 0, len(byName))
	for _, r := range byName {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Net.Equal(rows[j].Net) {
			return rows[i].Net.GreaterThan(rows[j].Net)
		}
		return rows[i].Nickname < rows[j].Nickname
	})
	return rows
}

// VPIPRow is one line of the VPIP report.
type VPIPRow struct {
	Nickname string
	Percent  float64
}

// VPIPRows sorts the aggregator's percentage map for display, highest first.
func VPIPRows(percentages map[string]float64) []VPIPRow {
	rows := make([]VPIPRow, 0, len(percentages))
	for nickname, pct := range percentages {
		rows = append(rows, VPIPRow{Nickname: nickname, Percent: pct})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Percent != rows[j].Percent {
			return rows[i].Percent > rows[j].Percent
		}
		return rows[i].Nickname < rows[j].Nickname
	})
	return rows
}

// TimelineRow is one player's series in the cumulative-net report.
type TimelineRow struct {
	Nickname string
	Points   []analytics.NetPoint
	Final    decimal.Decimal
}

// TimelineRows orders cumulative series by final net descending, matching
// the legend ordering of the original winnings chart.
func TimelineRows(series map[string][]analytics.NetPoint) []TimelineRow {
	rows := make([]TimelineRow, 0, len(series))
	for nickname, points := range series {
		row := TimelineRow{Nickname: nickname, Points: points}
		if len(points) > 0 {
			row.Final = points[len(points)-1].Net
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Final.Equal(rows[j].Final) {
			return rows[i].Final.GreaterThan(rows[j].Final)
		}
		return rows[i].Nickname < rows[j].Nickname
	})
	return rows
}
