package game

import (
	"fmt"
	"testing"
)

func TestSubmitReplacesOnFewerAttempts(t *testing.T) {
	board := Submit(nil, Entry{Username: "A", Attempts: 3, HintsUsed: 1, SolvedAt: 100})
	board = Submit(board, Entry{Username: "A", Attempts: 2, HintsUsed: 2, SolvedAt: 200})

	if len(board) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(board))
	}
	// Lower attempts wins even though hints increased.
	if board[0].Attempts != 2 || board[0].HintsUsed != 2 {
		t.Errorf("expected replacement {2,2}, got %+v", board[0])
	}
}

func TestSubmitKeepsBetterHistoricalScore(t *testing.T) {
	board := Submit(nil, Entry{Username: "A", Attempts: 2, HintsUsed: 2, SolvedAt: 100})
	board = Submit(board, Entry{Username: "A", Attempts: 2, HintsUsed: 3, SolvedAt: 200})

	if len(board) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(board))
	}
	// Same attempts, worse hints: first entry untouched.
	if board[0].HintsUsed != 2 || board[0].SolvedAt != 100 {
		t.Errorf("expected original {2,2,100} kept, got %+v", board[0])
	}
}

func TestSubmitTieBreakBySolveTime(t *testing.T) {
	board := Submit(nil, Entry{Username: "late", Attempts: 2, HintsUsed: 1, SolvedAt: 500})
	board = Submit(board, Entry{Username: "early", Attempts: 2, HintsUsed: 1, SolvedAt: 100})

	if board[0].Username != "early" || board[1].Username != "late" {
		t.Errorf("expected earlier solve ranked first, got %v then %v",
			board[0].Username, board[1].Username)
	}
}

func TestSubmitCapsAtTen(t *testing.T) {
	var board []Entry
	for i := 1; i <= 11; i++ {
		board = Submit(board, Entry{
			Username: fmt.Sprintf("user%02d", i),
			Attempts: i,
			SolvedAt: int64(i),
		})
	}
	if len(board) != 10 {
		t.Fatalf("expected board capped at 10, got %d", len(board))
	}
	// The 11th (worst) submission is the one dropped.
	for _, e := range board {
		if e.Username == "user11" {
			t.Error("worst entry should have been dropped")
		}
	}
	if board[0].Username != "user01" || board[9].Username != "user10" {
		t.Errorf("unexpected ordering: first=%s last=%s", board[0].Username, board[9].Username)
	}
}

func TestSubmitDoesNotMutateInput(t *testing.T) {
	orig := []Entry{
		{Username: "A", Attempts: 5, SolvedAt: 1},
		{Username: "B", Attempts: 1, SolvedAt: 2},
	}
	_ = Submit(orig, Entry{Username: "C", Attempts: 2, SolvedAt: 3})

	if orig[0].Username != "A" || orig[1].Username != "B" {
		t.Errorf("input slice mutated: %+v", orig)
	}
}

func TestBetterOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b Entry
		want bool
	}{
		{"fewer attempts", Entry{Attempts: 1, HintsUsed: 9}, Entry{Attempts: 2}, true},
		{"more attempts", Entry{Attempts: 3}, Entry{Attempts: 2, HintsUsed: 9}, false},
		{"fewer hints on tie", Entry{Attempts: 2, HintsUsed: 0}, Entry{Attempts: 2, HintsUsed: 1}, true},
		{"earlier time on full tie", Entry{Attempts: 2, SolvedAt: 1}, Entry{Attempts: 2, SolvedAt: 2}, true},
		{"identical is not better", Entry{Attempts: 2, SolvedAt: 5}, Entry{Attempts: 2, SolvedAt: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Better(tt.b); got != tt.want {
				t.Errorf("Better = %v, want %v", got, tt.want)
			}
		})
	}
}
