// Package analytics derives per-player statistics from parsed hands and
// consolidated ledger sessions.
package analytics

import (
	"math"

	"github.com/homegame/pokertally/internal/handlog"
)

// VPIP computes Voluntarily-Put-money-In-Pot percentages per canonical
// nickname across every log. A player VPIPs a hand by betting, calling or
// raising strictly before the first board card; blind posts never count.
// Nicknames with zero tracked hands are omitted rather than reported as 0%.
func VPIP(logs []*handlog.Log) map[string]float64 {
	// Merge each log's nickname -> IDs mapping across all logs.
	nicknameToIDs := make(map[string]map[string]struct{})
	for _, l := range logs {
		for nickname, ids := range l.NicknameToIDs {
			set := nicknameToIDs[nickname]
			if set == nil {
				set = make(map[string]struct{})
				nicknameToIDs[nickname] = set
			}
			for _, id := range ids {
				set[id] = struct{}{}
			}
		}
	}

	totalHands := make(map[string]int) // platform ID -> hands played
	vpipHands := make(map[string]int)  // platform ID -> hands VPIPed

	for _, l := range logs {
		for _, hand := range l.Hands {
			inHand := make(map[string]struct{})
			for _, id := range hand.NicknameToID {
				inHand[id] = struct{}{}
			}
			for id := range inHand {
				totalHands[id]++
			}

			vpiped := make(map[string]struct{})
			for _, move := range hand.Actions {
				pm, ok := move.(handlog.PlayerMove)
				if !ok {
					break // first board card ends the preflop window
				}
				switch pm.Action {
				case handlog.ActionBet, handlog.ActionCall, handlog.ActionRaise:
					vpiped[pm.PlayerID] = struct{}{}
				}
			}
			for id := range vpiped {
				vpipHands[id]++
			}
		}
	}

	percentages := make(map[string]float64)
	for nickname, ids := range nicknameToIDs {
		total, vpip := 0, 0
		for id := range ids {
			total += totalHands[id]
			vpip += vpipHands[id]
		}
		if total == 0 {
			continue
		}
		pct := float64(vpip) / float64(total) * 100
		percentages[nickname] = math.Round(pct*10) / 10
	}

	return percentages
}
