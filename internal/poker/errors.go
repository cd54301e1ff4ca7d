package poker

import "errors"

// The two failure categories shared by every ingestion path. Loaders wrap
// these with context via fmt.Errorf("...: %w", ...) so callers can classify
// failures with errors.Is without caring which package produced them.
var (
	// ErrMalformedInput marks text that could not be parsed at all: a bad
	// timestamp, amount, card rank, stack line or player-info fragment.
	ErrMalformedInput = errors.New("malformed input")

	// ErrIncompleteRecord marks structurally truncated input: a hand with a
	// start marker but no end marker, or a ledger row whose start time cannot
	// be derived from any neighbor.
	ErrIncompleteRecord = errors.New("incomplete record")
)
