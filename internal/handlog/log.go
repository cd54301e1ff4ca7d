package handlog

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/homegame/pokertally/internal/identity"
	"github.com/homegame/pokertally/internal/poker"
)

// ParseLog parses one hand-history file. Individual malformed or incomplete
// hands are skipped and reported through the logger; the rest of the file
// survives. The error return is reserved for files that are unusable as a
// whole (unreadable CSV, no entries at all).
func ParseLog(r io.Reader, roster []identity.RegisteredPlayer, logger *log.Logger) (*Log, error) {
	entries, err := readEntries(r)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: hand log has no usable entries", poker.ErrMalformedInput)
	}

	segments, failures := splitHands(entries)
	for _, fail := range failures {
		logger.Warn("skipping incomplete hand", "err", fail)
	}

	parsed := &Log{
		Date:          dateOf(entries[0].At),
		NicknameToIDs: make(map[string][]string),
	}

	for _, segment := range segments {
		hand, err := parseHand(segment, roster)
		if err != nil {
			logger.Warn("skipping unparseable hand", "err", err)
			continue
		}
		parsed.Hands = append(parsed.Hands, hand)
	}

	for _, hand := range parsed.Hands {
		for nickname, id := range hand.NicknameToID {
			if !containsString(parsed.NicknameToIDs[nickname], id) {
				parsed.NicknameToIDs[nickname] = append(parsed.NicknameToIDs[nickname], id)
			}
		}
	}

	return parsed, nil
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
