// internal/daily/daily.go
//
// Deterministic daily mystery selection.
// The day index is derived from the elapsed days since the start of the
// current year (UTC), so every call within one calendar day resolves to the
// same catalog entry and consecutive days walk the whole catalog before
// repeating.

package daily

import (
	"time"

	"github.com/mysterydaily/go-server/internal/catalog"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DayIndex returns the number of whole days between the start of now's year
// (UTC) and now. Never negative, even for instants in the first partial day.
func DayIndex(now time.Time) int {
	now = now.UTC()
	anchor := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	idx := int(now.Sub(anchor) / (24 * time.Hour))
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Select maps now to one catalog entry: puzzles[DayIndex(now) mod len].
// All calls within one UTC calendar day return the same puzzle.
// The catalog must be non-empty (enforced by catalog.Load).
func Select(puzzles []catalog.Puzzle, now time.Time) catalog.Puzzle {
	return puzzles[DayIndex(now)%len(puzzles)]
}
