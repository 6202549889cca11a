package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mysterydaily/go-server/internal/catalog"
	"github.com/mysterydaily/go-server/internal/game"
	"github.com/mysterydaily/go-server/internal/store"
)

// Single-entry catalog so the selected puzzle is independent of the
// test clock's day index.
var testPuzzles = []catalog.Puzzle{
	{ID: 1, Question: "what am I?", Answer: "an echo", Hints: []string{"h1", "h2", "h3"}},
}

func newTestCoordinator(t *testing.T) (*Coordinator, *time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	c := New(store.NewMemory(), testPuzzles, game.NewValidator(game.PolicyExact, 0))
	c.SetClock(func() time.Time { return now })
	return c, &now
}

func handle(t *testing.T, c *Coordinator, instance, user string, ev Inbound) Outbound {
	t.Helper()
	out, err := c.Handle(context.Background(), instance, user, ev)
	if err != nil {
		t.Fatalf("Handle(%s): %v", ev.Type, err)
	}
	return out
}

func TestReadyNeverLeaksAnswer(t *testing.T) {
	c, _ := newTestCoordinator(t)

	out := handle(t, c, "inst-1", "sherlock", Inbound{Type: EventReady})
	if out.Type != EventInitialData {
		t.Fatalf("type = %q, want initialData", out.Type)
	}
	init := out.Data.(InitialData)
	if init.Username != "sherlock" {
		t.Errorf("username = %q", init.Username)
	}
	if init.Question == "" {
		t.Error("question missing")
	}

	raw, _ := json.Marshal(out)
	var flat map[string]any
	_ = json.Unmarshal(raw, &flat)
	data := flat["data"].(map[string]any)
	for _, v := range data {
		if s, ok := v.(string); ok && s == "an echo" {
			t.Fatal("initialData leaked the raw answer")
		}
	}
	if init.AnswerShape != "__ ____" {
		t.Errorf("answerShape = %q, want masked shape", init.AnswerShape)
	}
}

func TestAnonymousUsernameDefault(t *testing.T) {
	c, _ := newTestCoordinator(t)
	out := handle(t, c, "inst-1", "  ", Inbound{Type: EventReady})
	if got := out.Data.(InitialData).Username; got != AnonymousUser {
		t.Errorf("username = %q, want %q", got, AnonymousUser)
	}
}

func TestEndToEndSolveFlow(t *testing.T) {
	c, _ := newTestCoordinator(t)
	const inst = "inst-e2e"

	// ready
	out := handle(t, c, inst, "watson", Inbound{Type: EventReady})
	if init := out.Data.(InitialData); init.Solved || init.HintsRevealed != 0 {
		t.Fatalf("fresh state: %+v", init)
	}

	// wrong answer
	out = handle(t, c, inst, "watson", Inbound{Type: EventSubmitAnswer,
		Data: &SubmitData{Answer: "a shadow", Attempts: 1}})
	if res := out.Data.(AnswerResult); res.Correct || len(res.Leaderboard) != 0 {
		t.Fatalf("wrong answer: %+v", res)
	}

	// hint
	out = handle(t, c, inst, "watson", Inbound{Type: EventRequestHint})
	if h := out.Data.(HintProvided); h.HintNumber != 1 || h.Text != "h1" {
		t.Fatalf("hint: %+v", h)
	}

	// correct answer
	out = handle(t, c, inst, "watson", Inbound{Type: EventSubmitAnswer,
		Data: &SubmitData{Answer: " An Echo ", Attempts: 2, HintsUsed: 1}})
	res := out.Data.(AnswerResult)
	if !res.Correct || res.AlreadySolved {
		t.Fatalf("correct answer: %+v", res)
	}
	if len(res.Leaderboard) != 1 || res.Leaderboard[0].Username != "watson" ||
		res.Leaderboard[0].Attempts != 2 || res.Leaderboard[0].HintsUsed != 1 {
		t.Fatalf("leaderboard: %+v", res.Leaderboard)
	}
	firstBoard, _ := json.Marshal(res.Leaderboard)

	// subsequent submission is a no-op, board byte-identical
	out = handle(t, c, inst, "watson", Inbound{Type: EventSubmitAnswer,
		Data: &SubmitData{Answer: "an echo", Attempts: 3}})
	res = out.Data.(AnswerResult)
	if !res.AlreadySolved {
		t.Fatal("expected alreadySolved no-op")
	}
	secondBoard, _ := json.Marshal(res.Leaderboard)
	if string(firstBoard) != string(secondBoard) {
		t.Errorf("leaderboard changed on no-op:\n%s\n%s", firstBoard, secondBoard)
	}

	// hint requests after solve are no-ops too
	out = handle(t, c, inst, "watson", Inbound{Type: EventRequestHint})
	if h := out.Data.(HintProvided); !h.AlreadySolved || h.HintNumber != 1 {
		t.Fatalf("post-solve hint: %+v", h)
	}
}

func TestUnknownEvent(t *testing.T) {
	c, _ := newTestCoordinator(t)
	_, err := c.Handle(context.Background(), "inst-1", "u", Inbound{Type: "selfDestruct"})
	if !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestStateSurvivesWithinDayAndRollsOver(t *testing.T) {
	c, now := newTestCoordinator(t)
	const inst = "inst-day"

	handle(t, c, inst, "u", Inbound{Type: EventRequestHint})
	handle(t, c, inst, "u", Inbound{Type: EventRequestHint})

	// Later the same day: progress survives.
	*now = now.Add(6 * time.Hour)
	out := handle(t, c, inst, "u", Inbound{Type: EventReady})
	if init := out.Data.(InitialData); init.HintsRevealed != 2 {
		t.Fatalf("same day: hintsRevealed = %d, want 2", init.HintsRevealed)
	}

	// Next day: fresh state, progress reset.
	*now = now.AddDate(0, 0, 1)
	out = handle(t, c, inst, "u", Inbound{Type: EventReady})
	if init := out.Data.(InitialData); init.HintsRevealed != 0 || init.Solved {
		t.Fatalf("next day: %+v", init)
	}
}

func TestSolvedStaysTerminalForOtherUsers(t *testing.T) {
	c, _ := newTestCoordinator(t)
	const inst = "inst-multi"

	handle(t, c, inst, "first", Inbound{Type: EventSubmitAnswer,
		Data: &SubmitData{Answer: "an echo", Attempts: 1}})

	// A second user on the same instance: the daily mystery is solved.
	out := handle(t, c, inst, "second", Inbound{Type: EventSubmitAnswer,
		Data: &SubmitData{Answer: "an echo", Attempts: 1}})
	res := out.Data.(AnswerResult)
	if !res.AlreadySolved {
		t.Fatal("expected no-op for solved instance")
	}
	if len(res.Leaderboard) != 1 || res.Leaderboard[0].Username != "first" {
		t.Fatalf("leaderboard should be unchanged: %+v", res.Leaderboard)
	}
}

func TestOnSolveHook(t *testing.T) {
	c, _ := newTestCoordinator(t)

	var got *game.Entry
	c.OnSolve = func(ctx context.Context, instanceID string, e game.Entry) {
		if instanceID == "inst-hook" {
			got = &e
		}
	}

	handle(t, c, "inst-hook", "hooked", Inbound{Type: EventSubmitAnswer,
		Data: &SubmitData{Answer: "an echo", Attempts: 4, HintsUsed: 2}})
	if got == nil {
		t.Fatal("OnSolve not called")
	}
	if got.Username != "hooked" || got.Attempts != 4 || got.HintsUsed != 2 {
		t.Errorf("OnSolve entry: %+v", got)
	}
}

func TestAttemptCountClampedToOne(t *testing.T) {
	c, _ := newTestCoordinator(t)
	out := handle(t, c, "inst-clamp", "u", Inbound{Type: EventSubmitAnswer,
		Data: &SubmitData{Answer: "an echo", Attempts: 0, HintsUsed: -3}})
	res := out.Data.(AnswerResult)
	if res.Leaderboard[0].Attempts != 1 || res.Leaderboard[0].HintsUsed != 0 {
		t.Errorf("expected clamped entry, got %+v", res.Leaderboard[0])
	}
}

// failingKV returns an error on every write.
type failingKV struct{ store.KV }

func (f failingKV) Set(ctx context.Context, key, value string) error {
	return errors.New("redis down")
}

func TestPersistFailurePropagates(t *testing.T) {
	c := New(failingKV{store.NewMemory()}, testPuzzles, game.NewValidator(game.PolicyExact, 0))
	_, err := c.Handle(context.Background(), "inst-fail", "u", Inbound{Type: EventReady})
	if err == nil {
		t.Fatal("expected persistence error to propagate")
	}
}

func TestNilSubmitDataIsIncorrect(t *testing.T) {
	c, _ := newTestCoordinator(t)
	out := handle(t, c, "inst-nil", "u", Inbound{Type: EventSubmitAnswer})
	if res := out.Data.(AnswerResult); res.Correct {
		t.Fatal("missing data should score as incorrect")
	}
}
