package handlog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homegame/pokertally/internal/poker"
)

// buildLogCSV writes entries newest-first, the way the platform exports them.
func buildLogCSV(chronological ...string) string {
	var b strings.Builder
	b.WriteString("entry,at,order\n")
	for i := len(chronological) - 1; i >= 0; i-- {
		// Quote the entry so embedded commas survive.
		b.WriteString(`"` + strings.ReplaceAll(chronological[i], `"`, `""`) + `"`)
		b.WriteString(",2023-01-27T21:00:")
		b.WriteString([]string{"00", "01", "02", "03", "04", "05", "06", "07", "08", "09"}[i%10])
		b.WriteString("Z,")
		b.WriteString([]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}[i%10])
		b.WriteString("\n")
	}
	return b.String()
}

func TestReadEntriesReversesAndFilters(t *testing.T) {
	csv := buildLogCSV(
		"-- starting hand #1 (id: abc) --",
		`The player "eve @ id9" requested a seat.`,
		`"alice @ id1" bets 2.00`,
		"-- ending hand #1 --",
	)

	entries, err := readEntries(strings.NewReader(csv))
	require.NoError(t, err)

	// Admin entry dropped; chronological order restored.
	require.Len(t, entries, 3)
	assert.Contains(t, entries[0].Text, "starting hand")
	assert.Contains(t, entries[1].Text, "bets")
	assert.Contains(t, entries[2].Text, "ending hand")
}

func TestReadEntriesMissingColumn(t *testing.T) {
	_, err := readEntries(strings.NewReader("entry,at\nfoo,2023-01-27T21:00:00Z\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, poker.ErrMalformedInput))
}

func TestIsAdminEntry(t *testing.T) {
	admin := []string{
		`The player "eve @ id9" requested a seat.`,
		`The admin approved the player "eve @ id9" participation with a stack of 10.00.`,
		`The player "bob @ id2" stand up with the stack of 4.35.`,
		`The player "bob @ id2" sit back with the stack of 4.35.`,
		`The player "carol @ id5" joined the game with a stack of 10.00.`,
		`The player "carol @ id5" quits the game with a stack of 12.00.`,
	}
	for _, text := range admin {
		if !isAdminEntry(text) {
			t.Fatalf("expected admin entry: %q", text)
		}
	}

	if isAdminEntry(`"alice @ id1" bets 2.00`) {
		t.Fatal("bet line misclassified as admin")
	}
}

func TestSplitHands(t *testing.T) {
	entries := testSegment(
		"-- starting hand #1 (id: a) --",
		`"alice @ id1" bets 1.00`,
		"-- ending hand #1 --",
		"-- starting hand #2 (id: b) --",
		`"bob @ id2" checks`,
		"-- ending hand #2 --",
	)

	segments, failures := splitHands(entries)
	require.Empty(t, failures)
	require.Len(t, segments, 2)
	assert.Len(t, segments[0], 3)
	assert.Len(t, segments[1], 3)
}

func TestSplitHandsIncompleteAtEOF(t *testing.T) {
	entries := testSegment(
		"-- starting hand #1 (id: a) --",
		`"alice @ id1" bets 1.00`,
	)

	segments, failures := splitHands(entries)
	assert.Empty(t, segments)
	require.Len(t, failures, 1)
	assert.True(t, errors.Is(failures[0], poker.ErrIncompleteRecord))
}

func TestSplitHandsStartBeforeEnd(t *testing.T) {
	entries := testSegment(
		"-- starting hand #1 (id: a) --",
		`"alice @ id1" bets 1.00`,
		"-- starting hand #2 (id: b) --",
		`"bob @ id2" checks`,
		"-- ending hand #2 --",
	)

	segments, failures := splitHands(entries)
	require.Len(t, segments, 1)
	require.Len(t, failures, 1)
	assert.True(t, errors.Is(failures[0], poker.ErrIncompleteRecord))
	assert.Contains(t, segments[0][0].Text, "#2")
}
