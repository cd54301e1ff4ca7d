// Package ingest loads whole directories of ledger and hand-log exports.
// Files are parsed in parallel and failures are isolated per file: one bad
// export is skipped and reported, the rest of the batch survives.
package ingest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/homegame/pokertally/internal/handlog"
	"github.com/homegame/pokertally/internal/identity"
	"github.com/homegame/pokertally/internal/ledger"
)

// maxParallelFiles bounds the file fan-out; parses are CPU-bound so there is
// no point spawning one goroutine per file in a big archive.
const maxParallelFiles = 8

// Roster loads the registered-players JSON from disk.
func Roster(path string) ([]identity.RegisteredPlayer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening roster")
	}
	defer f.Close()

	roster, err := identity.LoadRoster(f)
	return roster, errors.Wrapf(err, "roster %s", path)
}

// StartingData loads the legacy starting-balance CSV from disk.
func StartingData(path string) ([]identity.StartingDataEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening starting data")
	}
	defer f.Close()

	entries, err := identity.LoadStartingData(f)
	return entries, errors.Wrapf(err, "starting data %s", path)
}

// LedgerDir loads every ledger CSV under dir and returns the combined
// session list, ordered by file name. Files that fail to parse are skipped
// and logged.
func LedgerDir(dir string, logger *log.Logger) ([]ledger.SessionRecord, error) {
	files, err := csvFiles(dir)
	if err != nil {
		return nil, err
	}

	perFile := make([][]ledger.SessionRecord, len(files))
	g := new(errgroup.Group)
	g.SetLimit(maxParallelFiles)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			records, err := loadLedgerFile(path)
			if err != nil {
				logger.Warn("skipping ledger file", "file", filepath.Base(path), "err", err)
				return nil
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []ledger.SessionRecord
	for _, records := range perFile {
		all = append(all, records...)
	}
	logger.Info("loaded ledger sessions", "files", len(files), "sessions", len(all))
	return all, nil
}

// LogDir parses every hand-log CSV under dir. Files that fail to parse are
// skipped and logged; bad hands inside a file are already skipped by
// handlog.ParseLog.
func LogDir(dir string, roster []identity.RegisteredPlayer, logger *log.Logger) ([]*handlog.Log, error) {
	files, err := csvFiles(dir)
	if err != nil {
		return nil, err
	}

	perFile := make([]*handlog.Log, len(files))
	g := new(errgroup.Group)
	g.SetLimit(maxParallelFiles)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			parsed, err := loadLogFile(path, roster, logger)
			if err != nil {
				logger.Warn("skipping hand log", "file", filepath.Base(path), "err", err)
				return nil
			}
			perFile[i] = parsed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var logs []*handlog.Log
	hands := 0
	for _, parsed := range perFile {
		if parsed != nil {
			logs = append(logs, parsed)
			hands += len(parsed.Hands)
		}
	}
	logger.Info("loaded hand logs", "files", len(files), "logs", len(logs), "hands", hands)
	return logs, nil
}

func loadLedgerFile(path string) ([]ledger.SessionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening ledger")
	}
	defer f.Close()

	records, err := ledger.LoadSessions(f)
	return records, errors.Wrapf(err, "ledger %s", filepath.Base(path))
}

func loadLogFile(path string, roster []identity.RegisteredPlayer, logger *log.Logger) (*handlog.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening hand log")
	}
	defer f.Close()

	parsed, err := handlog.ParseLog(f, roster, logger)
	return parsed, errors.Wrapf(err, "hand log %s", filepath.Base(path))
}

func csvFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
