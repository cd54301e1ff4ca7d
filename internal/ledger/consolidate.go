package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/identity"
)

// ConsolidatedSession is the per-player-per-day aggregate of every ledger
// session matched to one identity, canonical or raw.
type ConsolidatedSession struct {
	Nickname     string
	Date         time.Time // UTC midnight
	Net          decimal.Decimal
	BuyIn        decimal.Decimal
	TimePlayedMs int64
}

type dayTotals struct {
	net    decimal.Decimal
	buyIn  decimal.Decimal
	timeMs int64
}

// Consolidate merges session records into one aggregate per (identity, date).
//
// Registered players are processed first, in mapping-file order, claiming
// every record that matches by ID, nickname or canonical name. Records left
// over are grouped under their raw nickname, except those whose nickname
// rides an ID already claimed by a registered player: counting those again
// would double-book the same seat under a second alias.
//
// An empty session list yields an empty result. Registered players with no
// matched sessions emit nothing here; the reporting layer unions them in at
// zero when it wants a complete roster.
func Consolidate(sessions []SessionRecord, roster []identity.RegisteredPlayer) []ConsolidatedSession {
	var out []ConsolidatedSession

	// Each record is claimed at most once; with players processed in
	// mapping-file order this is the same first-match-wins rule Resolve uses,
	// and it keeps total net conserved even when two players claim one ID.
	claimed := make([]bool, len(sessions))
	for i := range roster {
		player := &roster[i]
		byDate := make(map[time.Time]*dayTotals)
		for j := range sessions {
			s := &sessions[j]
			if claimed[j] || (!player.HasID(s.PlayerID) && !player.HasNickname(s.Nickname)) {
				continue
			}
			claimed[j] = true
			addSession(byDate, s)
		}
		out = append(out, flatten(player.Name, byDate)...)
	}

	// Nicknames already accounted for: canonical names, registered nicknames,
	// and any raw nickname seen on a claimed ID.
	processed := make(map[string]struct{})
	claimedIDs := make(map[string]struct{})
	for i := range roster {
		processed[roster[i].Name] = struct{}{}
		for nick := range roster[i].Nicknames {
			processed[nick] = struct{}{}
		}
		for id := range roster[i].IDs {
			claimedIDs[id] = struct{}{}
		}
	}
	for i := range sessions {
		if _, ok := claimedIDs[sessions[i].PlayerID]; ok {
			processed[sessions[i].Nickname] = struct{}{}
		}
	}

	unmapped := make(map[string]map[time.Time]*dayTotals)
	for j := range sessions {
		s := &sessions[j]
		if claimed[j] {
			continue
		}
		if _, ok := processed[s.Nickname]; ok {
			continue
		}
		byDate := unmapped[s.Nickname]
		if byDate == nil {
			byDate = make(map[time.Time]*dayTotals)
			unmapped[s.Nickname] = byDate
		}
		addSession(byDate, s)
	}

	nicknames := make([]string, 0, len(unmapped))
	for nick := range unmapped {
		nicknames = append(nicknames, nick)
	}
	sort.Strings(nicknames)
	for _, nick := range nicknames {
		out = append(out, flatten(nick, unmapped[nick])...)
	}

	return out
}

func addSession(byDate map[time.Time]*dayTotals, s *SessionRecord) {
	date := sessionDate(s.StartAt)
	totals := byDate[date]
	if totals == nil {
		totals = &dayTotals{}
		byDate[date] = totals
	}
	totals.net = totals.net.Add(s.Net)
	totals.buyIn = totals.buyIn.Add(s.BuyIn)
	if played := s.EndAt.Sub(s.StartAt); played > 0 {
		totals.timeMs += played.Milliseconds()
	}
}

// flatten emits one ConsolidatedSession per date, date-ordered so results are
// stable regardless of map iteration.
func flatten(nickname string, byDate map[time.Time]*dayTotals) []ConsolidatedSession {
	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]ConsolidatedSession, 0, len(dates))
	for _, date := range dates {
		totals := byDate[date]
		out = append(out, ConsolidatedSession{
			Nickname:     nickname,
			Date:         date,
			Net:          totals.net,
			BuyIn:        totals.buyIn,
			TimePlayedMs: totals.timeMs,
		})
	}
	return out
}

// sessionDate truncates a start time to its UTC calendar day. Which day a
// record contributes to is always derived from its own start time.
func sessionDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
