package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "data/ledgers", cfg.Data.LedgerDir)
	assert.Equal(t, "$", cfg.Report.CurrencySymbol)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokertally.hcl")
	content := `
data {
  ledger_dir  = "/srv/poker/ledgers"
  log_dir     = "/srv/poker/logs"
  roster_file = "/srv/poker/players.json"
}

report {
  currency_symbol = "€"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/poker/ledgers", cfg.Data.LedgerDir)
	assert.Equal(t, "/srv/poker/logs", cfg.Data.LogDir)
	assert.Equal(t, "/srv/poker/players.json", cfg.Data.RosterFile)
	assert.Equal(t, "€", cfg.Report.CurrencySymbol)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokertally.hcl")
	content := `
data {
  ledger_dir = "/srv/poker/ledgers"
}

report {}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/poker/ledgers", cfg.Data.LedgerDir)
	assert.Equal(t, "data/logs", cfg.Data.LogDir)
	assert.Equal(t, "$", cfg.Report.CurrencySymbol)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokertally.hcl")
	require.NoError(t, os.WriteFile(path, []byte("data {{{"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
