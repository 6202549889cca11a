package game

import (
	"testing"

	"github.com/mysterydaily/go-server/internal/catalog"
)

func TestNextHintProgression(t *testing.T) {
	st := New("inst", catalog.Puzzle{
		Question: "q",
		Answer:   "a",
		Hints:    []string{"one", "two", "three"},
	}, "2025-06-01")

	// Four consecutive requests: numbers 1,2,3,3 — never 4.
	wantNums := []int{1, 2, 3, 3}
	wantText := []string{"one", "two", "three", "three"}
	for i, want := range wantNums {
		h := NextHint(st)
		if h.HintNumber != want {
			t.Errorf("request %d: hintNumber = %d, want %d", i+1, h.HintNumber, want)
		}
		if h.Text != wantText[i] {
			t.Errorf("request %d: text = %q, want %q", i+1, h.Text, wantText[i])
		}
		if h.TotalHints != 3 {
			t.Errorf("request %d: totalHints = %d, want 3", i+1, h.TotalHints)
		}
	}
	if st.HintsRevealed != 3 {
		t.Errorf("hintsRevealed = %d, want 3", st.HintsRevealed)
	}
}

func TestNextHintNoHints(t *testing.T) {
	st := New("inst", catalog.Puzzle{Question: "q", Answer: "a"}, "2025-06-01")
	h := NextHint(st)
	if h.TotalHints != 0 || h.HintNumber != 0 || h.Text != "" {
		t.Errorf("expected empty hint, got %+v", h)
	}
	if st.HintsRevealed != 0 {
		t.Errorf("hintsRevealed = %d, want 0", st.HintsRevealed)
	}
}

func TestRevealedHints(t *testing.T) {
	st := New("inst", catalog.Puzzle{Hints: []string{"one", "two"}, Question: "q", Answer: "a"}, "2025-06-01")
	if got := st.RevealedHints(); len(got) != 0 {
		t.Errorf("expected none revealed, got %v", got)
	}
	NextHint(st)
	if got := st.RevealedHints(); len(got) != 1 || got[0] != "one" {
		t.Errorf("expected [one], got %v", got)
	}
}
