// Package handlog parses the platform's hand-history exports: a
// reverse-chronological CSV of free-text log lines that gets tokenized into
// hand boundaries and parsed into structured hands, moves and cards.
package handlog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/homegame/pokertally/internal/poker"
)

// PlayerAction is the keyword that identifies a player's move in a log line.
type PlayerAction string

const (
	ActionFold           PlayerAction = "folds"
	ActionCheck          PlayerAction = "checks"
	ActionCall           PlayerAction = "calls"
	ActionBet            PlayerAction = "bets"
	ActionRaise          PlayerAction = "raises"
	ActionShow           PlayerAction = "shows"
	ActionCollect        PlayerAction = "collected"
	ActionUncalledReturn PlayerAction = "uncalled bet returned"
	ActionPost           PlayerAction = "posts"
)

// playerActionOrder is the keyword match precedence for classifying a line.
// First keyword found in the text wins.
var playerActionOrder = []PlayerAction{
	ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise,
	ActionShow, ActionCollect, ActionUncalledReturn, ActionPost,
}

// BoardAction is a street reveal. Second-run variants occur when the players
// agree to deal the remaining board twice and split the pot.
type BoardAction string

const (
	BoardFlop        BoardAction = "flop"
	BoardTurn        BoardAction = "turn"
	BoardRiver       BoardAction = "river"
	BoardSecondFlop  BoardAction = "second flop"
	BoardSecondTurn  BoardAction = "second turn"
	BoardSecondRiver BoardAction = "second river"
)

// Move is one entry in a hand's chronological action list: either a
// PlayerMove or a BoardMove. When and Seq together give the deterministic
// ordering key (Seq breaks ties between entries sharing a timestamp).
type Move interface {
	When() time.Time
	Seq() int
}

// PlayerMove is a single player's action within a hand.
type PlayerMove struct {
	PlayerID string
	Nickname string // raw nickname as it appeared in the line
	Action   PlayerAction
	Amount   *decimal.Decimal // bets, calls, raises, posts, uncalled returns
	Cards    []poker.Card     // shows
	At       time.Time
	Order    int
	Raw      string
}

func (m PlayerMove) When() time.Time { return m.At }
func (m PlayerMove) Seq() int        { return m.Order }

// BoardMove is a street reveal. Cards holds only what the move revealed: the
// three flop cards, or the single turn/river card.
type BoardMove struct {
	Action BoardAction
	Cards  []poker.Card
	At     time.Time
	Order  int
	Raw    string
}

func (m BoardMove) When() time.Time { return m.At }
func (m BoardMove) Seq() int        { return m.Order }

// Hand is one fully parsed poker hand.
type Hand struct {
	ID             string
	StartTime      time.Time
	EndTime        time.Time
	StartingStacks map[string]decimal.Decimal // platform ID -> stack
	PotSize        decimal.Decimal
	CommunityCards []poker.Card
	Actions        []Move

	// CollectedByPlayerID accumulates pot winnings per platform ID; a
	// split-board hand can collect more than once.
	CollectedByPlayerID map[string]decimal.Decimal

	// NicknameToID maps each canonical (or passthrough) nickname that acted
	// in this hand to the platform ID it used.
	NicknameToID map[string]string
}

// Log is one parsed hand-history file.
type Log struct {
	Hands []Hand

	// Date is the calendar date of the chronologically earliest entry.
	Date time.Time

	// NicknameToIDs merges every hand's NicknameToID: each canonical
	// nickname to all platform IDs it used across the file.
	NicknameToIDs map[string][]string
}
