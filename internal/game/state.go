// internal/game/state.go
//
// Core type definitions for the mystery game engine.
// A State is the per-instance persisted record: which puzzle the instance
// is serving today, how far hint reveal has progressed, whether today's
// mystery has been solved, and the ranked leaderboard.

package game

import (
	"github.com/mysterydaily/go-server/internal/catalog"
)

// State holds the persisted state of a single game instance.
// It is serialized to JSON into the key-value store, keyed by InstanceID.
type State struct {
	InstanceID    string         `json:"instanceId"`
	Puzzle        catalog.Puzzle `json:"puzzle"`
	CreatedOn     string         `json:"createdOn"` // YYYY-MM-DD day stamp, immutable for the day
	HintsRevealed int            `json:"hintsRevealed"`
	Solved        bool           `json:"solved"`
	Leaderboard   []Entry        `json:"leaderboard"`
}

// New constructs a fresh State for an instance and its puzzle of the day.
func New(instanceID string, p catalog.Puzzle, dateKey string) *State {
	return &State{
		InstanceID:  instanceID,
		Puzzle:      p,
		CreatedOn:   dateKey,
		Leaderboard: []Entry{},
	}
}

// RevealedHints returns the hints disclosed so far, in reveal order.
func (s *State) RevealedHints() []string {
	n := s.HintsRevealed
	if n > len(s.Puzzle.Hints) {
		n = len(s.Puzzle.Hints)
	}
	return s.Puzzle.Hints[:n]
}
