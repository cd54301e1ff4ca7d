package identity

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/poker"
)

// rosterEntry is the wire shape of one player in registered_players.json.
type rosterEntry struct {
	PlayedIDs       []string `json:"played_ids"`
	PlayedNicknames []string `json:"played_nicknames"`
	InitialDetails  *struct {
		InitialNetAmount decimal.Decimal `json:"initial_net_amount"`
		InitialDate      string          `json:"initial_date"`
	} `json:"initial_details"`
}

// LoadRoster parses a registered-players JSON document: an object keyed by
// display name. File order is preserved because Resolve is first-match-wins,
// so the document is walked token by token instead of unmarshalled into a
// map.
func LoadRoster(r io.Reader) ([]RegisteredPlayer, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: registered players JSON: %v", poker.ErrMalformedInput, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: registered players JSON: expected top-level object", poker.ErrMalformedInput)
	}

	var roster []RegisteredPlayer
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: registered players JSON: %v", poker.ErrMalformedInput, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: registered players JSON: non-string key", poker.ErrMalformedInput)
		}

		var entry rosterEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: registered player %q: %v", poker.ErrMalformedInput, name, err)
		}

		player := RegisteredPlayer{
			Name:      strings.ToLower(name),
			IDs:       make(map[string]struct{}, len(entry.PlayedIDs)),
			Nicknames: make(map[string]struct{}, len(entry.PlayedNicknames)),
		}
		for _, id := range entry.PlayedIDs {
			player.IDs[strings.TrimSpace(id)] = struct{}{}
		}
		for _, nick := range entry.PlayedNicknames {
			player.Nicknames[strings.ToLower(strings.TrimSpace(nick))] = struct{}{}
		}
		if entry.InitialDetails != nil {
			date, err := time.ParseInLocation("2006-01-02", entry.InitialDetails.InitialDate, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("%w: registered player %q: initial date %q", poker.ErrMalformedInput, name, entry.InitialDetails.InitialDate)
			}
			player.Initial = &InitialDetails{
				NetAmount: entry.InitialDetails.InitialNetAmount,
				Date:      date,
			}
		}
		roster = append(roster, player)
	}

	return roster, nil
}
