// Package money provides the scalar parsing helpers used by every ingestion
// path: exact-decimal currency conversion and UTC timestamp parsing.
package money

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/poker"
)

// CentsToDollars converts an integer-cents string (as exported by the
// platform's ledger CSV) to exact decimal dollars. "12345" becomes 123.45
// with no floating point involved.
func CentsToDollars(cents string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(cents))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: monetary value %q: %v", poker.ErrMalformedInput, cents, err)
	}
	return d.Shift(-2), nil
}

// timeLayouts covers the export's ISO-8601 variants: with a trailing Z, with
// an explicit offset, or bare (treated as UTC). Fractional seconds optional.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseUTCTime parses an ISO-8601 timestamp and normalizes it to UTC.
func ParseUTCTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: timestamp %q", poker.ErrMalformedInput, s)
}
