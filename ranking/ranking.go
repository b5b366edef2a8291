// Package ranking stores finished runs: who played, how long the run took
// and the total score.
package ranking

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidRecord is returned for a record with no name, no time or no score.
var ErrInvalidRecord = errors.New("ranking: invalid record")

// Record is one finished run.
type Record struct {
	Username string `json:"Username"`
	GameTime string `json:"Game_time"`
	Score    int    `json:"Score"`
}

// NewRecord builds a record from a raw name, the run length in seconds and
// the total score.
func NewRecord(name string, seconds, score int) (Record, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return Record{}, fmt.Errorf("%w: empty username", ErrInvalidRecord)
	case seconds <= 0:
		return Record{}, fmt.Errorf("%w: game time %d", ErrInvalidRecord, seconds)
	case score == 0:
		return Record{}, fmt.Errorf("%w: zero score", ErrInvalidRecord)
	}
	return Record{Username: name, GameTime: FormatGameTime(seconds), Score: score}, nil
}

// FormatGameTime renders seconds as MM:SS.
func FormatGameTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Sort orders records by score descending, then by game time ascending.
// Equal records keep their order.
func Sort(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return compareGameTime(a.GameTime, b.GameTime)
	})
}

// compareGameTime orders MM:SS strings; runs past 99 minutes have a longer
// minutes field and sort after every shorter one.
func compareGameTime(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// Store persists records.
type Store interface {
	Add(Record) error
	All() ([]Record, error)
	Close() error
}
