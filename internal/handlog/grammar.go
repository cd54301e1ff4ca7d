package handlog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/poker"
)

// Micro-parsers for the fragments embedded in log lines: hand IDs, player
// info, amounts, and the starting-stack roll call.

var (
	handIDPattern = regexp.MustCompile(`#\d+ \(id: ([^)]+)\)`)
	stackPattern  = regexp.MustCompile(`^#\d+ "([^"]+) @ ([^"]+)" \((\d+\.?\d*)\)`)

	amountOfPattern        = regexp.MustCompile(`of (\d+\.?\d*)`)
	amountRaisesToPattern  = regexp.MustCompile(`raises to (\d+\.?\d*)`)
	amountCollectedPattern = regexp.MustCompile(`collected (\d+\.?\d*)`)
	amountCallsPattern     = regexp.MustCompile(`calls (\d+\.?\d*)`)
	amountBetsPattern      = regexp.MustCompile(`bets (\d+\.?\d*)`)
	amountTrailingPattern  = regexp.MustCompile(`[a-z] (\d+\.?\d*)"?,?$`)
)

// parseHandID extracts the hand ID from a start marker like
// "-- starting hand #179 (id: bzhgiiupyhku) --".
func parseHandID(text string) (string, error) {
	m := handIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("%w: no hand id in %q", poker.ErrMalformedInput, text)
	}
	return m[1], nil
}

// parsePlayerInfo splits player text like `edwin @ 9M0NBGM9an` (quotes
// optional) into nickname and platform ID.
func parsePlayerInfo(text string) (nickname, playerID string, err error) {
	text = strings.Trim(text, `"`)
	parts := strings.Split(text, "@")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: player info %q", poker.ErrMalformedInput, text)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// parseAmount pulls the monetary amount out of an action line. The matched
// keyword decides which pattern applies; blind posts and uncalled returns
// phrase the amount with "of", raises with "raises to", and anything else
// falls back to a trailing number.
func parseAmount(text string) (decimal.Decimal, error) {
	patterns := []struct {
		keyword string
		re      *regexp.Regexp
	}{
		{"of ", amountOfPattern},
		{"raises to ", amountRaisesToPattern},
		{"collected ", amountCollectedPattern},
		{"calls ", amountCallsPattern},
		{"bets ", amountBetsPattern},
	}
	for _, p := range patterns {
		if !strings.Contains(text, p.keyword) {
			continue
		}
		if m := p.re.FindStringSubmatch(text); m != nil {
			return decimal.NewFromString(m[1])
		}
	}

	m := amountTrailingPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: no amount in %q", poker.ErrMalformedInput, text)
	}
	return decimal.NewFromString(m[1])
}

const stackPrefix = "Player stacks: "

// parseStartingStacks parses the roll-call line that opens every hand:
//
//	Player stacks: #1 "Nicky @ 23ejw2m6D-" (27.25) | #3 "glenny @ O4o2WcWz3Z" (17.40)
//
// Returns stacks keyed by platform ID.
func parseStartingStacks(text string) (map[string]decimal.Decimal, error) {
	if !strings.HasPrefix(text, stackPrefix) {
		return nil, fmt.Errorf("%w: not a stack line: %q", poker.ErrMalformedInput, text)
	}

	stacks := make(map[string]decimal.Decimal)
	for _, entry := range strings.Split(strings.TrimPrefix(text, stackPrefix), " | ") {
		m := stackPattern.FindStringSubmatch(strings.TrimSpace(entry))
		if m == nil {
			return nil, fmt.Errorf("%w: stack entry %q", poker.ErrMalformedInput, entry)
		}
		amount, err := decimal.NewFromString(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: stack amount in %q", poker.ErrMalformedInput, entry)
		}
		stacks[m[2]] = amount
	}
	return stacks, nil
}
