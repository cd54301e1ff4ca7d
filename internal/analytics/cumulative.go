package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/identity"
	"github.com/homegame/pokertally/internal/ledger"
)

// NetPoint is one step of a player's running total.
type NetPoint struct {
	Date time.Time
	Net  decimal.Decimal // cumulative through this date
}

// CumulativeNets builds each player's running net over time from their
// consolidated sessions, seeded with any initial balances carried in the
// roster. Points are date-ordered; one point per (player, date).
func CumulativeNets(sessions []ledger.ConsolidatedSession, roster []identity.RegisteredPlayer) map[string][]NetPoint {
	type event struct {
		date time.Time
		net  decimal.Decimal
	}
	eventsByPlayer := make(map[string][]event)

	for i := range roster {
		if roster[i].Initial == nil {
			continue
		}
		eventsByPlayer[roster[i].Name] = append(eventsByPlayer[roster[i].Name], event{
			date: roster[i].Initial.Date,
			net:  roster[i].Initial.NetAmount,
		})
	}
	for _, s := range sessions {
		eventsByPlayer[s.Nickname] = append(eventsByPlayer[s.Nickname], event{date: s.Date, net: s.Net})
	}

	out := make(map[string][]NetPoint, len(eventsByPlayer))
	for name, events := range eventsByPlayer {
		sort.SliceStable(events, func(i, j int) bool { return events[i].date.Before(events[j].date) })

		var points []NetPoint
		running := decimal.Zero
		for _, ev := range events {
			running = running.Add(ev.net)
			if n := len(points); n > 0 && points[n-1].Date.Equal(ev.date) {
				points[n-1].Net = running
				continue
			}
			points = append(points, NetPoint{Date: ev.date, Net: running})
		}
		out[name] = points
	}

	return out
}
