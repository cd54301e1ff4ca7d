package identity

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/poker"
)

// StartingDataEntry is one line of the legacy starting-balance CSV used
// before initial_details moved into the registered-players file.
type StartingDataEntry struct {
	Name string
	Net  decimal.Decimal
	Date time.Time
}

// LoadStartingData parses the legacy starting-data format: bare lines of
// player_name,net_amount,YYYY-MM-DD with no header.
func LoadStartingData(r io.Reader) ([]StartingDataEntry, error) {
	var entries []StartingDataEntry

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		parts := strings.Split(text, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: starting data line %d: expected name,net,date", poker.ErrMalformedInput, line)
		}

		net, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: starting data line %d: net %q", poker.ErrMalformedInput, line, parts[1])
		}
		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(parts[2]), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: starting data line %d: date %q", poker.ErrMalformedInput, line, parts[2])
		}

		entries = append(entries, StartingDataEntry{
			Name: strings.ToLower(strings.TrimSpace(parts[0])),
			Net:  net,
			Date: date,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading starting data: %w", err)
	}

	return entries, nil
}

// MergeStartingData folds legacy starting balances into a roster. An entry
// for a registered player without initial details fills them in; an entry
// for an unknown name becomes a roster player of its own so the balance
// still shows up in reports. Players that already carry initial details
// keep them: the mapping file wins over the legacy CSV.
func MergeStartingData(roster []RegisteredPlayer, entries []StartingDataEntry) []RegisteredPlayer {
	merged := append([]RegisteredPlayer(nil), roster...)
	byName := make(map[string]int, len(merged))
	for i := range merged {
		byName[merged[i].Name] = i
	}

	for _, entry := range entries {
		if i, ok := byName[entry.Name]; ok {
			if merged[i].Initial == nil {
				merged[i].Initial = &InitialDetails{NetAmount: entry.Net, Date: entry.Date}
			}
			continue
		}
		merged = append(merged, RegisteredPlayer{
			Name:    entry.Name,
			Initial: &InitialDetails{NetAmount: entry.Net, Date: entry.Date},
		})
		byName[entry.Name] = len(merged) - 1
	}

	return merged
}
