// Package poker holds the domain basics shared by the ledger and hand-log
// ingestion packages: playing cards and the common error categories.
package poker

import (
	"fmt"
	"regexp"
)

// Suit is one of the four suit glyphs as they appear in the platform's logs.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Card is a single playing card. Rank keeps the log's own notation, so tens
// are "10" rather than "T".
type Card struct {
	Rank string
	Suit Suit
}

func (c Card) String() string {
	return c.Rank + string(c.Suit)
}

// cardPattern matches tokens like "A♠" or "10♥" anywhere in a log line.
var cardPattern = regexp.MustCompile(`(\d{1,2}|[JQKA])([♠♥♦♣])`)

var validRanks = map[string]struct{}{
	"2": {}, "3": {}, "4": {}, "5": {}, "6": {}, "7": {}, "8": {}, "9": {},
	"10": {}, "J": {}, "Q": {}, "K": {}, "A": {},
}

// ParseCards extracts every card token from a line of log text. Lines with no
// card tokens yield an empty slice; a token with a numeric rank outside 2-10
// is a hard error.
func ParseCards(text string) ([]Card, error) {
	var cards []Card
	for _, m := range cardPattern.FindAllStringSubmatch(text, -1) {
		rank, suit := m[1], m[2]
		if _, ok := validRanks[rank]; !ok {
			return nil, fmt.Errorf("%w: invalid card rank %q in %q", ErrMalformedInput, rank, text)
		}
		cards = append(cards, Card{Rank: rank, Suit: Suit(suit)})
	}
	return cards, nil
}
