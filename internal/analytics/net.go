package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/ledger"
)

// NetByPlayer sums consolidated session nets per identity. Registered
// players with no activity do not appear; the reporting layer unions the
// roster in at zero when a complete listing is wanted.
func NetByPlayer(sessions []ledger.ConsolidatedSession) map[string]decimal.Decimal {
	nets := make(map[string]decimal.Decimal)
	for _, s := range sessions {
		nets[s.Nickname] = nets[s.Nickname].Add(s.Net)
	}
	return nets
}
