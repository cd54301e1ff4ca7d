// Package identity maps the platform's throwaway nicknames and player IDs to
// the canonical players registered for a group.
package identity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InitialDetails seeds a player's balance before any ledger data exists,
// typically carried over from a previous tracking spreadsheet.
type InitialDetails struct {
	NetAmount decimal.Decimal
	Date      time.Time
}

// RegisteredPlayer is one canonical identity from the uploaded mapping file.
// Name, and every entry in Nicknames, is lowercase. The struct is immutable
// for the duration of an analysis run.
type RegisteredPlayer struct {
	Name      string
	IDs       map[string]struct{}
	Nicknames map[string]struct{}
	Initial   *InitialDetails
}

// HasID reports whether the player has ever used the given platform ID.
func (p *RegisteredPlayer) HasID(id string) bool {
	_, ok := p.IDs[id]
	return ok
}

// HasNickname reports whether the lowercased nickname belongs to the player,
// either as a recorded nickname or as the canonical name itself.
func (p *RegisteredPlayer) HasNickname(nickname string) bool {
	if nickname == p.Name {
		return true
	}
	_, ok := p.Nicknames[nickname]
	return ok
}

// Resolve maps a raw nickname/ID pair to a canonical player name. The first
// player in roster order that matches by ID or nickname wins; multiple
// players claiming the same ID are not detected. Unknown players pass
// through under their lowercased raw nickname so that unmapped activity is
// still reported rather than dropped.
func Resolve(nickname, id string, roster []RegisteredPlayer) string {
	lower := strings.ToLower(nickname)
	for i := range roster {
		if roster[i].HasID(id) || roster[i].HasNickname(lower) {
			return roster[i].Name
		}
	}
	return lower
}
