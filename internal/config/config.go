// Package config loads the analysis configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete pokertally configuration.
type Config struct {
	Data   DataSettings   `hcl:"data,block"`
	Report ReportSettings `hcl:"report,block"`
}

// DataSettings names where the uploaded exports live on disk.
type DataSettings struct {
	LedgerDir        string `hcl:"ledger_dir,optional"`
	LogDir           string `hcl:"log_dir,optional"`
	RosterFile       string `hcl:"roster_file,optional"`
	StartingDataFile string `hcl:"starting_data_file,optional"`
}

// ReportSettings controls presentation.
type ReportSettings struct {
	CurrencySymbol string `hcl:"currency_symbol,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Data: DataSettings{
			LedgerDir:  "data/ledgers",
			LogDir:     "data/logs",
			RosterFile: "data/registered_players.json",
		},
		Report: ReportSettings{
			CurrencySymbol: "$",
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Data.LedgerDir == "" {
		cfg.Data.LedgerDir = defaults.Data.LedgerDir
	}
	if cfg.Data.LogDir == "" {
		cfg.Data.LogDir = defaults.Data.LogDir
	}
	if cfg.Data.RosterFile == "" {
		cfg.Data.RosterFile = defaults.Data.RosterFile
	}
	if cfg.Report.CurrencySymbol == "" {
		cfg.Report.CurrencySymbol = defaults.Report.CurrencySymbol
	}

	return &cfg, nil
}
