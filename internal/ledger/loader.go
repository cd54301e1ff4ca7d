// Package ledger loads per-session ledger exports and consolidates them into
// per-player-per-day aggregates.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/money"
	"github.com/homegame/pokertally/internal/poker"
)

// SessionRecord is one row of a ledger export. Net is trusted from the
// source rather than recomputed from buy-in/buy-out.
type SessionRecord struct {
	Nickname string // lowercase
	PlayerID string
	StartAt  time.Time
	EndAt    time.Time // zero only when no row in the file carried an end time
	BuyIn    decimal.Decimal
	BuyOut   *decimal.Decimal
	Stack    decimal.Decimal
	Net      decimal.Decimal
}

var ledgerColumns = []string{
	"player_nickname", "player_id", "session_start_at", "session_end_at",
	"buy_in", "buy_out", "stack", "net",
}

// LoadSessions parses a ledger CSV into session records in file order.
//
// A row missing session_start_at borrows the nearest neighbor's original
// value, preferring the previous row; a row with no usable neighbor fails the
// whole file. A row missing session_end_at is treated as still seated when
// the export was generated and is defaulted to the latest end time observed
// anywhere in the file. Any unparseable timestamp or amount also fails the
// whole file: a ledger is loaded completely or not at all.
func LoadSessions(r io.Reader) ([]SessionRecord, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: ledger CSV: %v", poker.ErrMalformedInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: ledger CSV: empty file", poker.ErrMalformedInput)
	}

	col, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}
	rows = rows[1:]

	field := func(row []string, name string) string {
		return strings.TrimSpace(row[col[name]])
	}

	sessions := make([]SessionRecord, 0, len(rows))
	var latestEnd time.Time
	missingEnd := make([]int, 0)

	for i, row := range rows {
		startStr := field(row, "session_start_at")
		if startStr == "" {
			// Borrow a neighbor's original start value; inference never
			// cascades through another inferred row.
			switch {
			case i > 0 && field(rows[i-1], "session_start_at") != "":
				startStr = field(rows[i-1], "session_start_at")
			case i < len(rows)-1 && field(rows[i+1], "session_start_at") != "":
				startStr = field(rows[i+1], "session_start_at")
			default:
				return nil, fmt.Errorf("%w: ledger row %d: no start time on row or any neighbor", poker.ErrIncompleteRecord, i)
			}
		}
		startAt, err := money.ParseUTCTime(startStr)
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: %w", i, err)
		}

		rec := SessionRecord{
			Nickname: strings.ToLower(field(row, "player_nickname")),
			PlayerID: field(row, "player_id"),
			StartAt:  startAt,
		}

		if endStr := field(row, "session_end_at"); endStr != "" {
			endAt, err := money.ParseUTCTime(endStr)
			if err != nil {
				return nil, fmt.Errorf("ledger row %d: %w", i, err)
			}
			rec.EndAt = endAt
			if endAt.After(latestEnd) {
				latestEnd = endAt
			}
		} else {
			missingEnd = append(missingEnd, i)
		}

		if rec.BuyIn, err = money.CentsToDollars(field(row, "buy_in")); err != nil {
			return nil, fmt.Errorf("ledger row %d: buy_in: %w", i, err)
		}
		if buyOutStr := field(row, "buy_out"); buyOutStr != "" {
			buyOut, err := money.CentsToDollars(buyOutStr)
			if err != nil {
				return nil, fmt.Errorf("ledger row %d: buy_out: %w", i, err)
			}
			rec.BuyOut = &buyOut
		}
		if rec.Stack, err = money.CentsToDollars(field(row, "stack")); err != nil {
			return nil, fmt.Errorf("ledger row %d: stack: %w", i, err)
		}
		if rec.Net, err = money.CentsToDollars(field(row, "net")); err != nil {
			return nil, fmt.Errorf("ledger row %d: net: %w", i, err)
		}

		sessions = append(sessions, rec)
	}

	for _, i := range missingEnd {
		sessions[i].EndAt = latestEnd
	}

	return sessions, nil
}

func columnIndex(header []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range ledgerColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: ledger CSV: missing column %q", poker.ErrMalformedInput, name)
		}
	}
	return col, nil
}
