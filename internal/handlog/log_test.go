package handlog

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestParseLog(t *testing.T) {
	csv := buildLogCSV(
		"-- starting hand #1 (id: abc) --",
		`Player stacks: #1 "alice @ id1" (10.00) | #2 "bob @ id2" (10.00)`,
		`"alice @ id1" bets 2.00`,
		`"bob @ id2" calls 2.00`,
		"-- ending hand #1 --",
	)

	parsed, err := ParseLog(strings.NewReader(csv), nil, quietLogger())
	require.NoError(t, err)

	require.Len(t, parsed.Hands, 1)
	hand := parsed.Hands[0]
	assert.Equal(t, "abc", hand.ID)
	assert.Equal(t, "4", hand.PotSize.String())
	assert.Equal(t, map[string][]string{"alice": {"id1"}, "bob": {"id2"}}, parsed.NicknameToIDs)
	assert.Equal(t, time.Date(2023, 1, 27, 0, 0, 0, 0, time.UTC), parsed.Date)
}

func TestParseLogSkipsBadHandKeepsRest(t *testing.T) {
	csv := buildLogCSV(
		"-- starting hand #1 (id: broken) --",
		`"alice @ id1" bets 1.00`, // no stack line: hand is invalid
		"-- ending hand #1 --",
		"-- starting hand #2 (id: good) --",
		`Player stacks: #1 "alice @ id1" (10.00)`,
		`"alice @ id1" bets 1.00`,
		"-- ending hand #2 --",
	)

	parsed, err := ParseLog(strings.NewReader(csv), nil, quietLogger())
	require.NoError(t, err)
	require.Len(t, parsed.Hands, 1)
	assert.Equal(t, "good", parsed.Hands[0].ID)
}

func TestParseLogIncompleteHandProducesNoHands(t *testing.T) {
	csv := buildLogCSV(
		"-- starting hand #1 (id: abc) --",
		`Player stacks: #1 "alice @ id1" (10.00)`,
		`"alice @ id1" bets 1.00`,
	)

	parsed, err := ParseLog(strings.NewReader(csv), nil, quietLogger())
	require.NoError(t, err)
	assert.Empty(t, parsed.Hands)
}

func TestParseLogMergesIDsAcrossHands(t *testing.T) {
	csv := buildLogCSV(
		"-- starting hand #1 (id: a) --",
		`Player stacks: #1 "alice @ id1" (10.00)`,
		`"alice @ id1" bets 1.00`,
		"-- ending hand #1 --",
		"-- starting hand #2 (id: b) --",
		`Player stacks: #1 "alice @ id2" (10.00)`,
		`"alice @ id2" bets 1.00`,
		"-- ending hand #2 --",
	)

	parsed, err := ParseLog(strings.NewReader(csv), nil, quietLogger())
	require.NoError(t, err)
	require.Len(t, parsed.Hands, 2)
	assert.ElementsMatch(t, []string{"id1", "id2"}, parsed.NicknameToIDs["alice"])
}

func TestParseLogEmptyFile(t *testing.T) {
	_, err := ParseLog(strings.NewReader("entry,at,order\n"), nil, quietLogger())
	require.Error(t, err)
}
