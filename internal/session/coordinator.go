// internal/session/coordinator.go
//
// Orchestrates game state in response to inbound events.
// Responsibilities:
//   - Lazily create / day-roll per-instance state via the daily selector.
//   - Dispatch ready / requestHint / submitAnswer to the game engine.
//   - Persist updated state through the KV collaborator before answering.
//   - Serialize access per instance: load, mutate, and persist run as one
//     critical section so concurrent submissions cannot clobber each
//     other's leaderboard.
//
// The coordinator never renders anything and never talks to a transport;
// the httpserver package adapts HTTP requests onto Handle.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/mysterydaily/go-server/internal/catalog"
	"github.com/mysterydaily/go-server/internal/daily"
	"github.com/mysterydaily/go-server/internal/game"
	"github.com/mysterydaily/go-server/internal/store"
)

// ErrUnknownEvent is returned for an inbound event type outside the
// recognized set. The session survives; the caller gets an error reply.
var ErrUnknownEvent = errors.New("session: unknown event type")

// AnonymousUser is the identity placeholder when no username is supplied.
const AnonymousUser = "anonymous"

// Coordinator wires the catalog, selector, validator, and KV store into
// the event protocol.
type Coordinator struct {
	kv        store.KV
	puzzles   []catalog.Puzzle
	validator game.Validator
	now       func() time.Time

	// OnSolve, when set, is called after a correct answer has been
	// persisted. Used to record solve history outside the hot path.
	OnSolve func(ctx context.Context, instanceID string, e game.Entry)

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per-instance critical sections
}

// New constructs a Coordinator. The catalog must be non-empty.
func New(kv store.KV, puzzles []catalog.Puzzle, v game.Validator) *Coordinator {
	return &Coordinator{
		kv:        kv,
		puzzles:   puzzles,
		validator: v,
		now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

// SetClock overrides the time source (tests).
func (c *Coordinator) SetClock(now func() time.Time) { c.now = now }

// Handle processes one inbound event for an instance and returns the
// outbound reply. username identifies the caller; empty means anonymous.
func (c *Coordinator) Handle(ctx context.Context, instanceID, username string, ev Inbound) (Outbound, error) {
	if username = strings.TrimSpace(username); username == "" {
		username = AnonymousUser
	}

	lock := c.lockFor(instanceID)
	lock.Lock()
	defer lock.Unlock()

	st, err := c.getOrCreate(ctx, instanceID)
	if err != nil {
		return Outbound{}, err
	}

	switch ev.Type {
	case EventReady:
		return c.handleReady(st, username), nil
	case EventRequestHint:
		return c.handleHint(ctx, st)
	case EventSubmitAnswer:
		return c.handleSubmit(ctx, st, username, ev.Data)
	default:
		return Outbound{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// GetOrCreate exposes state creation to the instance-creation route so a
// fresh instance can be primed eagerly.
func (c *Coordinator) GetOrCreate(ctx context.Context, instanceID string) (*game.State, error) {
	lock := c.lockFor(instanceID)
	lock.Lock()
	defer lock.Unlock()
	return c.getOrCreate(ctx, instanceID)
}

// getOrCreate loads the persisted state for an instance, creating or
// day-rolling it when absent or stale. Caller must hold the instance lock.
//
// Selection follows the persisted-stamp policy: the puzzle chosen on first
// access of a day is stored with its day stamp and reused for the rest of
// that day; only a differing stamp triggers re-selection.
func (c *Coordinator) getOrCreate(ctx context.Context, instanceID string) (*game.State, error) {
	now := c.now()
	today := daily.DateKey(now)
	key := stateKey(instanceID)

	raw, err := c.kv.Get(ctx, key)
	if err == nil {
		var st game.State
		if jsonErr := json.Unmarshal([]byte(raw), &st); jsonErr == nil && st.CreatedOn == today {
			return &st, nil
		}
		// stale day stamp or unreadable record: fall through and re-create
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load state %s: %w", instanceID, err)
	}

	st := game.New(instanceID, daily.Select(c.puzzles, now), today)
	if err := c.persist(ctx, st); err != nil {
		return nil, err
	}
	log.Debug().Str("instance", instanceID).Int("puzzle", st.Puzzle.ID).Msg("created game state")
	return st, nil
}

func (c *Coordinator) handleReady(st *game.State, username string) Outbound {
	return Outbound{Type: EventInitialData, Data: InitialData{
		Username:      username,
		Question:      st.Puzzle.Question,
		AnswerShape:   answerShape(st.Puzzle.Answer),
		Hints:         st.RevealedHints(),
		HintsRevealed: st.HintsRevealed,
		TotalHints:    len(st.Puzzle.Hints),
		Solved:        st.Solved,
		Leaderboard:   st.Leaderboard,
	}}
}

func (c *Coordinator) handleHint(ctx context.Context, st *game.State) (Outbound, error) {
	if st.Solved {
		// Informational no-op: re-serve the frontier without advancing.
		h := game.Hint{HintNumber: st.HintsRevealed, TotalHints: len(st.Puzzle.Hints)}
		if st.HintsRevealed > 0 {
			h.Text = st.Puzzle.Hints[st.HintsRevealed-1]
		}
		return Outbound{Type: EventHintProvided, Data: HintProvided{Hint: h, AlreadySolved: true}}, nil
	}

	h := game.NextHint(st)
	if err := c.persist(ctx, st); err != nil {
		return Outbound{}, err
	}
	return Outbound{Type: EventHintProvided, Data: HintProvided{Hint: h}}, nil
}

func (c *Coordinator) handleSubmit(ctx context.Context, st *game.State, username string, data *SubmitData) (Outbound, error) {
	if st.Solved {
		return Outbound{Type: EventAnswerResult, Data: AnswerResult{
			Correct:       true,
			AlreadySolved: true,
			Leaderboard:   st.Leaderboard,
		}}, nil
	}
	if data == nil {
		data = &SubmitData{}
	}

	if !c.validator.IsCorrect(data.Answer, st.Puzzle) {
		return Outbound{Type: EventAnswerResult, Data: AnswerResult{
			Correct:     false,
			Leaderboard: st.Leaderboard,
		}}, nil
	}

	entry := game.Entry{
		Username:  username,
		Attempts:  data.Attempts,
		HintsUsed: data.HintsUsed,
		SolvedAt:  c.now().UnixMilli(),
	}
	if entry.Attempts < 1 {
		entry.Attempts = 1
	}
	if entry.HintsUsed < 0 {
		entry.HintsUsed = 0
	}

	st.Solved = true
	st.Leaderboard = game.Submit(st.Leaderboard, entry)
	if err := c.persist(ctx, st); err != nil {
		return Outbound{}, err
	}

	if c.OnSolve != nil {
		c.OnSolve(ctx, st.InstanceID, entry)
	}
	return Outbound{Type: EventAnswerResult, Data: AnswerResult{
		Correct:     true,
		Leaderboard: st.Leaderboard,
	}}, nil
}

// persist serializes the state and writes it through the KV collaborator.
// A failed write fails the whole operation; no reply claims a mutation
// that was never stored.
func (c *Coordinator) persist(ctx context.Context, st *game.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state %s: %w", st.InstanceID, err)
	}
	if err := c.kv.Set(ctx, stateKey(st.InstanceID), string(raw)); err != nil {
		return fmt.Errorf("persist state %s: %w", st.InstanceID, err)
	}
	return nil
}

// lockFor returns the mutex guarding one instance's read-modify-write.
func (c *Coordinator) lockFor(instanceID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.locks[instanceID]; ok {
		return l
	}
	l := &sync.Mutex{}
	c.locks[instanceID] = l
	return l
}

// stateKey builds the KV key for an instance's game state.
func stateKey(instanceID string) string {
	return "mystery:" + instanceID
}

// answerShape masks letters and digits of the answer, keeping word breaks
// and punctuation so the view can render blanks without leaking the text.
func answerShape(answer string) string {
	var b strings.Builder
	for _, r := range answer {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
