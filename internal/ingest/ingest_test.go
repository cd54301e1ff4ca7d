package ingest

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const ledgerHeader = "player_nickname,player_id,session_start_at,session_end_at,buy_in,buy_out,stack,net\n"

func TestLedgerDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.csv", ledgerHeader+
		"Alice,id1,2023-01-27T20:00:00Z,2023-01-27T23:00:00Z,1000,1500,0,500\n")
	writeFile(t, dir, "bad.csv", ledgerHeader+
		"Bob,id2,,,1000,,1000,0\n") // no derivable start time
	writeFile(t, dir, "notes.txt", "ignored")

	sessions, err := LedgerDir(dir, quietLogger())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "alice", sessions[0].Nickname)
}

func TestLedgerDirCombinesFilesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", ledgerHeader+
		"Bob,id2,2023-01-28T20:00:00Z,2023-01-28T21:00:00Z,1000,,1000,0\n")
	writeFile(t, dir, "a.csv", ledgerHeader+
		"Alice,id1,2023-01-27T20:00:00Z,2023-01-27T21:00:00Z,1000,,1000,0\n")

	sessions, err := LedgerDir(dir, quietLogger())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "alice", sessions[0].Nickname)
	assert.Equal(t, "bob", sessions[1].Nickname)
}

func TestLogDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.csv", "entry,at,order\n"+
		"\"-- ending hand #1 --\",2023-01-27T21:00:03Z,3\n"+
		"\"\"\"alice @ id1\"\" bets 2.00\",2023-01-27T21:00:02Z,2\n"+
		"\"Player stacks: #1 \"\"alice @ id1\"\" (10.00)\",2023-01-27T21:00:01Z,1\n"+
		"\"-- starting hand #1 (id: abc) --\",2023-01-27T21:00:00Z,0\n")
	writeFile(t, dir, "empty.csv", "entry,at,order\n")

	logs, err := LogDir(dir, nil, quietLogger())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Len(t, logs[0].Hands, 1)
	assert.Equal(t, "abc", logs[0].Hands[0].ID)
}

func TestRoster(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "registered_players.json",
		`{"Alice": {"played_ids": ["id1"], "played_nicknames": ["Al"]}}`)

	roster, err := Roster(filepath.Join(dir, "registered_players.json"))
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "alice", roster[0].Name)
}

func TestRosterMissingFile(t *testing.T) {
	_, err := Roster(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
