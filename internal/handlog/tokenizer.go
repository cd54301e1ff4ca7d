package handlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/homegame/pokertally/internal/money"
	"github.com/homegame/pokertally/internal/poker"
)

// entry is one row of the hand-log CSV, already in chronological order.
type entry struct {
	Text  string
	At    time.Time
	Order int
}

const (
	startMarker = "-- starting hand #"
	endMarker   = "-- ending hand #"
)

// adminPatterns identify administrative table chatter that never belongs to a
// hand and never breaks a hand's contiguity.
var adminPatterns = []string{
	"requested a seat",
	"approved the player",
	"stand up with the stack",
	"sit back with the stack",
	"joined the game",
	"quits the game",
	"stand up to leave",
	"sit back at the table",
}

func isAdminEntry(text string) bool {
	for _, p := range adminPatterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// readEntries parses the CSV (header entry,at,order), reverses the
// newest-first export into chronological order and drops admin chatter.
func readEntries(r io.Reader) ([]entry, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: hand log CSV: %v", poker.ErrMalformedInput, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: hand log CSV: no entries", poker.ErrMalformedInput)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"entry", "at", "order"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: hand log CSV: missing column %q", poker.ErrMalformedInput, name)
		}
	}

	rows = rows[1:]
	entries := make([]entry, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		text := row[col["entry"]]
		if isAdminEntry(text) {
			continue
		}
		at, err := money.ParseUTCTime(row[col["at"]])
		if err != nil {
			return nil, fmt.Errorf("hand log row %d: %w", i, err)
		}
		order, err := strconv.Atoi(strings.TrimSpace(row[col["order"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: hand log row %d: order %q", poker.ErrMalformedInput, i, row[col["order"]])
		}
		entries = append(entries, entry{Text: text, At: at, Order: order})
	}

	return entries, nil
}

// splitHands slices chronological entries into per-hand segments, each
// running from a start marker to its matching end marker inclusive. A start
// with no end before the next start (or end of file) yields an error in
// place of that segment, so callers can skip the one bad hand and keep the
// rest.
func splitHands(entries []entry) ([][]entry, []error) {
	var (
		segments [][]entry
		failures []error
		current  []entry
	)

	incomplete := func(c []entry) error {
		return fmt.Errorf("%w: hand starting at %q has no end marker", poker.ErrIncompleteRecord, c[0].Text)
	}

	for _, e := range entries {
		switch {
		case strings.HasPrefix(e.Text, startMarker):
			if current != nil {
				failures = append(failures, incomplete(current))
			}
			current = []entry{e}
		case current != nil:
			current = append(current, e)
			if strings.HasPrefix(e.Text, endMarker) {
				segments = append(segments, current)
				current = nil
			}
		}
	}
	if current != nil {
		failures = append(failures, incomplete(current))
	}

	return segments, failures
}
