// internal/game/hints.go
//
// Hint-reveal progression. HintsRevealed is monotonically non-decreasing
// within [0, len(hints)]; once the last hint is out, further requests
// re-serve it without advancing. An exhausted hint request is a normal
// occurrence, not a failure.

package game

// Hint is the payload produced by NextHint.
type Hint struct {
	Text       string `json:"hint"`
	HintNumber int    `json:"hintNumber"`
	TotalHints int    `json:"totalHints"`
}

// NextHint advances the state's hint progression by one (clamped at the
// total) and returns the hint now at the frontier. With zero hints in the
// puzzle it returns an empty Hint with TotalHints 0.
func NextHint(s *State) Hint {
	total := len(s.Puzzle.Hints)
	if total == 0 {
		return Hint{TotalHints: 0}
	}
	if s.HintsRevealed < total {
		s.HintsRevealed++
	}
	return Hint{
		Text:       s.Puzzle.Hints[s.HintsRevealed-1],
		HintNumber: s.HintsRevealed,
		TotalHints: total,
	}
}
