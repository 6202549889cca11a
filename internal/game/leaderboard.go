// internal/game/leaderboard.go
//
// Ranked top-10 leaderboard with deterministic tie-breaking.
// Ordering (ascending = better): attempts, then hints used, then earlier
// solve time. Each username holds at most one entry; a repeat solve only
// replaces it when strictly better, so a historical best is never lost.

package game

import (
	"sort"
)

// topN is the leaderboard cap after every mutation.
const topN = 10

// Entry is one solver's best result for an instance's daily mystery.
type Entry struct {
	Username  string `json:"username"`
	Attempts  int    `json:"attempts"`
	HintsUsed int    `json:"hintsUsed"`
	SolvedAt  int64  `json:"time"` // unix milliseconds
}

// Better reports whether e sorts strictly before other under the ranking
// order.
func (e Entry) Better(other Entry) bool {
	if e.Attempts != other.Attempts {
		return e.Attempts < other.Attempts
	}
	if e.HintsUsed != other.HintsUsed {
		return e.HintsUsed < other.HintsUsed
	}
	return e.SolvedAt < other.SolvedAt
}

// Submit merges cand into board and returns the new ranked, capped board.
// Pure function: the input slice is not mutated and persistence is the
// caller's responsibility.
func Submit(board []Entry, cand Entry) []Entry {
	out := make([]Entry, 0, len(board)+1)

	replaced := false
	for _, e := range board {
		if e.Username == cand.Username {
			replaced = true
			if cand.Better(e) {
				out = append(out, cand)
			} else {
				out = append(out, e)
			}
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, cand)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Better(out[j]) })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
