package handlog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/identity"
	"github.com/homegame/pokertally/internal/poker"
)

// stackSearchWindow is how many entries past the start marker the starting
// stack roll call may appear.
const stackSearchWindow = 5

// parseHand turns one delimited hand segment into a Hand. Any malformed
// entry aborts this hand only.
func parseHand(segment []entry, roster []identity.RegisteredPlayer) (Hand, error) {
	startIdx, endIdx := -1, -1
	var handID string
	for i, e := range segment {
		if strings.HasPrefix(e.Text, startMarker) {
			startIdx = i
			id, err := parseHandID(e.Text)
			if err != nil {
				return Hand{}, err
			}
			handID = id
		} else if strings.HasPrefix(e.Text, endMarker) {
			endIdx = i
			break
		}
	}
	if startIdx < 0 {
		return Hand{}, fmt.Errorf("%w: no hand start marker", poker.ErrIncompleteRecord)
	}
	if endIdx < 0 {
		return Hand{}, fmt.Errorf("%w: hand %s has no end marker", poker.ErrIncompleteRecord, handID)
	}

	stacks, err := findStartingStacks(segment, startIdx)
	if err != nil {
		return Hand{}, fmt.Errorf("hand %s: %w", handID, err)
	}

	hand := Hand{
		ID:                  handID,
		StartingStacks:      stacks,
		CollectedByPlayerID: make(map[string]decimal.Decimal),
		NicknameToID:        make(map[string]string),
	}

	entries := segment[startIdx:endIdx]
	for _, e := range entries {
		if board, ok, err := parseBoardMove(e); err != nil {
			return Hand{}, fmt.Errorf("hand %s: %w", handID, err)
		} else if ok {
			switch board.move.Action {
			case BoardFlop, BoardSecondFlop:
				hand.CommunityCards = board.allCards
			default:
				hand.CommunityCards = append(hand.CommunityCards, board.move.Cards...)
			}
			hand.Actions = append(hand.Actions, board.move)
			continue
		}

		if err := parsePlayerEntry(e, roster, &hand); err != nil {
			return Hand{}, fmt.Errorf("hand %s: %w", handID, err)
		}
	}

	if len(hand.Actions) == 0 {
		return Hand{}, fmt.Errorf("%w: hand %s has no actions", poker.ErrMalformedInput, handID)
	}

	hand.StartTime = entries[0].At
	hand.EndTime = entries[len(entries)-1].At
	hand.PotSize = potSize(hand.Actions)

	return hand, nil
}

func findStartingStacks(segment []entry, startIdx int) (map[string]decimal.Decimal, error) {
	limit := startIdx + stackSearchWindow
	if limit > len(segment) {
		limit = len(segment)
	}
	for i := startIdx; i < limit; i++ {
		if strings.HasPrefix(segment[i].Text, stackPrefix) {
			return parseStartingStacks(segment[i].Text)
		}
	}
	return nil, fmt.Errorf("%w: no starting stacks", poker.ErrMalformedInput)
}

// boardResult carries the emitted move plus every card parsed from the line;
// street lines repeat the full board, so the flop keeps all of it while
// turn/river moves keep only the newly revealed card.
type boardResult struct {
	move     BoardMove
	allCards []poker.Card
}

var boardStreets = []struct {
	marker string
	action BoardAction
	second BoardAction
}{
	{"Flop", BoardFlop, BoardSecondFlop},
	{"Turn", BoardTurn, BoardSecondTurn},
	{"River", BoardRiver, BoardSecondRiver},
}

func parseBoardMove(e entry) (boardResult, bool, error) {
	for _, street := range boardStreets {
		if !strings.Contains(e.Text, street.marker+":") && !strings.Contains(e.Text, street.marker+" (second run):") {
			continue
		}

		cards, err := poker.ParseCards(e.Text)
		if err != nil {
			return boardResult{}, false, err
		}
		if len(cards) == 0 {
			return boardResult{}, false, fmt.Errorf("%w: street line with no cards: %q", poker.ErrMalformedInput, e.Text)
		}

		action := street.action
		if strings.Contains(e.Text, "second run") {
			action = street.second
		}

		moveCards := cards
		if street.action != BoardFlop {
			// Turn/River lines repeat the whole board; the move carries only
			// the newly revealed card.
			moveCards = cards[len(cards)-1:]
		}

		return boardResult{
			move: BoardMove{
				Action: action,
				Cards:  moveCards,
				At:     e.At,
				Order:  e.Order,
				Raw:    e.Text,
			},
			allCards: cards,
		}, true, nil
	}
	return boardResult{}, false, nil
}

// classifyPlayerAction finds the first action keyword present in a line.
// Uncalled returns are phrased "Uncalled bet of X returned to ..." so they
// are matched on both fragments rather than the contiguous keyword.
func classifyPlayerAction(text string) (PlayerAction, bool) {
	lower := strings.ToLower(text)
	for _, a := range playerActionOrder {
		if a == ActionUncalledReturn {
			if strings.Contains(lower, "uncalled bet") && strings.Contains(lower, "returned") {
				return a, true
			}
			continue
		}
		if strings.Contains(text, string(a)) {
			return a, true
		}
	}
	return "", false
}

// parsePlayerEntry classifies a line by its action keyword and records the
// resulting move on the hand. Lines with no action keyword (markers, stack
// roll calls) are ignored.
func parsePlayerEntry(e entry, roster []identity.RegisteredPlayer, hand *Hand) error {
	action, found := classifyPlayerAction(e.Text)
	if !found {
		return nil
	}

	playerText := e.Text
	if strings.Contains(e.Text, `"`) {
		parts := strings.Split(e.Text, `"`)
		if len(parts) < 2 {
			return fmt.Errorf("%w: player text %q", poker.ErrMalformedInput, e.Text)
		}
		playerText = parts[1]
	}

	nickname, playerID, err := parsePlayerInfo(playerText)
	if err != nil {
		return err
	}

	canonical := identity.Resolve(nickname, playerID, roster)
	hand.NicknameToID[canonical] = playerID

	move := PlayerMove{
		PlayerID: playerID,
		Nickname: nickname,
		Action:   action,
		At:       e.At,
		Order:    e.Order,
		Raw:      e.Text,
	}

	switch action {
	case ActionBet, ActionCall, ActionRaise, ActionPost, ActionUncalledReturn:
		amount, err := parseAmount(e.Text)
		if err != nil {
			return err
		}
		move.Amount = &amount
	case ActionShow:
		cards, err := poker.ParseCards(e.Text)
		if err != nil {
			return err
		}
		move.Cards = cards
	case ActionCollect:
		amount, err := parseAmount(e.Text)
		if err != nil {
			return err
		}
		move.Amount = &amount
		hand.CollectedByPlayerID[playerID] = hand.CollectedByPlayerID[playerID].Add(amount)
	}

	hand.Actions = append(hand.Actions, move)
	return nil
}

// potSize sums bet, call and raise amounts and subtracts uncalled returns.
// This is an approximation: multi-way side pots are not reconstructed.
func potSize(actions []Move) decimal.Decimal {
	pot := decimal.Zero
	for _, m := range actions {
		pm, ok := m.(PlayerMove)
		if !ok || pm.Amount == nil {
			continue
		}
		switch pm.Action {
		case ActionBet, ActionCall, ActionRaise:
			pot = pot.Add(*pm.Amount)
		case ActionUncalledReturn:
			pot = pot.Sub(*pm.Amount)
		}
	}
	return pot
}
