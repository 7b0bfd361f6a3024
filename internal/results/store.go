// internal/results/store.go
//
// SQL-backed store for finished puzzle results.
// A row is written when a session ends (solved or failed) and feeds the
// leaderboard: solved puzzles ranked by hints used, then validation
// attempts, then elapsed time. Guests are tracked by anonymous cookie id
// and their rows can be claimed by an account on signup/login.

package results

import (
	"context"
	"database/sql"
)

// Result is one finished session. Exactly one of UserID/AnonymousID is set.
type Result struct {
	UserID      string `json:"userId,omitempty"`
	AnonymousID string `json:"-"`
	Language    string `json:"language"`
	Proverbs    int    `json:"proverbs"`
	Solved      bool   `json:"solved"`
	Attempts    int    `json:"attempts"`
	Hints       int    `json:"hints"`
	ElapsedMs   int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert writes one result row.
func (s *Store) Insert(ctx context.Context, r Result) error {
	user := sql.NullString{String: r.UserID, Valid: r.UserID != ""}
	anon := sql.NullString{String: r.AnonymousID, Valid: r.UserID == "" && r.AnonymousID != ""}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results(user_id, anonymous_id, language, proverbs, solved, attempts, hints, elapsed_ms)
		 VALUES(?,?,?,?,?,?,?,?)`,
		user, anon, r.Language, r.Proverbs, r.Solved, r.Attempts, r.Hints, r.ElapsedMs,
	)
	return err
}

// ClaimAnon transfers a guest's result rows to a user account after auth.
func (s *Store) ClaimAnon(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE results SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`,
		userID, anonID)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID    string `json:"userId"`
	Hints     int    `json:"hints"`
	Attempts  int    `json:"attempts"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard fetches the top solved results for a language, best first.
// Default limit is 20 if not specified.
func (s *Store) Leaderboard(ctx context.Context, language string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(user_id, anonymous_id), hints, attempts, elapsed_ms
		FROM results
		WHERE solved=1 AND language=?
		ORDER BY hints ASC, attempts ASC, elapsed_ms ASC, created_at ASC
		LIMIT ?`, language, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Hints, &r.Attempts, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Mine returns a user's recent results, newest first.
func (s *Store) Mine(ctx context.Context, userID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT language, proverbs, solved, attempts, hints, elapsed_ms
		FROM results
		WHERE user_id=?
		ORDER BY created_at DESC
		LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		r := Result{UserID: userID}
		if err := rows.Scan(&r.Language, &r.Proverbs, &r.Solved, &r.Attempts, &r.Hints, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
