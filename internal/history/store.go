// internal/history/store.go
//
// SQLite-backed solve history. Every correct answer is recorded here so
// user stats survive instance expiry in the KV store. One row per user
// per instance per day (repeat solves are ignored on insert).

package history

import (
	"context"
	"database/sql"
	"time"
)

// Solve is a single recorded solve.
type Solve struct {
	InstanceID string    `json:"instanceId"`
	Username   string    `json:"username"`
	SolvedOn   string    `json:"solvedOn"` // YYYY-MM-DD
	Attempts   int       `json:"attempts"`
	HintsUsed  int       `json:"hintsUsed"`
	SolvedAt   time.Time `json:"solvedAt"`
}

// Stats aggregates a user's solve history.
type Stats struct {
	Solves       int `json:"solves"`
	BestAttempts int `json:"bestAttempts"`
	HintsUsed    int `json:"hintsUsed"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertSolve records a solve. Respects UNIQUE(instance_id, username,
// solved_on); a duplicate insert is silently ignored.
func (s *Store) InsertSolve(ctx context.Context, r Solve) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO solves(instance_id, username, solved_on, attempts, hints_used, solved_at)
		 VALUES(?,?,?,?,?,?)`,
		r.InstanceID, r.Username, r.SolvedOn, r.Attempts, r.HintsUsed,
		r.SolvedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// StatsFor aggregates all recorded solves for a username.
// A user with no solves gets zeroes, not an error.
func (s *Store) StatsFor(ctx context.Context, username string) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(MIN(attempts), 0), COALESCE(SUM(hints_used), 0)
		 FROM solves WHERE username=?`, username,
	).Scan(&st.Solves, &st.BestAttempts, &st.HintsUsed)
	return st, err
}

// Recent returns a user's latest solves, newest first.
func (s *Store) Recent(ctx context.Context, username string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT instance_id, username, solved_on, attempts, hints_used, solved_at
		 FROM solves WHERE username=? ORDER BY solved_at DESC LIMIT ?`,
		username, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		var r Solve
		var solvedAt string
		if err := rows.Scan(&r.InstanceID, &r.Username, &r.SolvedOn, &r.Attempts, &r.HintsUsed, &solvedAt); err != nil {
			return nil, err
		}
		r.SolvedAt, _ = time.Parse(time.RFC3339, solvedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}
