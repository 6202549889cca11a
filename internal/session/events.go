// internal/session/events.go
//
// Event shapes for the coordinator boundary. The transport layer decodes
// inbound messages into Inbound and encodes Outbound back out; the shapes
// here are transport-agnostic.

package session

import (
	"github.com/mysterydaily/go-server/internal/game"
)

// Inbound event types.
const (
	EventReady        = "ready"
	EventRequestHint  = "requestHint"
	EventSubmitAnswer = "submitAnswer"
)

// Outbound event types.
const (
	EventInitialData  = "initialData"
	EventHintProvided = "hintProvided"
	EventAnswerResult = "answerResult"
)

// Inbound is a tagged event received from a game view.
type Inbound struct {
	Type string      `json:"type"`
	Data *SubmitData `json:"data,omitempty"` // present for submitAnswer
}

// SubmitData carries a submitted answer. Attempt counting is owned by the
// submitting session; the server only receives the count.
type SubmitData struct {
	Answer    string `json:"answer"`
	Attempts  int    `json:"attempts"`
	HintsUsed int    `json:"hintsUsed"`
	Timestamp int64  `json:"timestamp"`
}

// Outbound is a tagged event emitted back to the game view.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// InitialData answers a ready event. The raw answer is never included;
// AnswerShape is a masked rendering of it.
type InitialData struct {
	Username      string       `json:"username"`
	Question      string       `json:"currentPuzzleQuestion"`
	AnswerShape   string       `json:"answerShape"`
	Hints         []string     `json:"hints"`
	HintsRevealed int          `json:"hintsRevealed"`
	TotalHints    int          `json:"totalHints"`
	Solved        bool         `json:"solved"`
	Leaderboard   []game.Entry `json:"leaderboard"`
}

// HintProvided answers a requestHint event. AlreadySolved marks the
// informational no-op served after the mystery is solved.
type HintProvided struct {
	game.Hint
	AlreadySolved bool `json:"alreadySolved,omitempty"`
}

// AnswerResult answers a submitAnswer event. AlreadySolved marks the
// no-op response to a submission after the mystery is solved; such
// submissions are never re-scored.
type AnswerResult struct {
	Correct       bool         `json:"correct"`
	AlreadySolved bool         `json:"alreadySolved,omitempty"`
	Leaderboard   []game.Entry `json:"leaderboard"`
}
